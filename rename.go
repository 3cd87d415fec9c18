// rename implements a rename expression in relational algebra

package rom

import (
	"github.com/pdswan/rom/att"
)

// Rename creates a new dataset with attributes renamed according to names,
// which maps old names to new ones.  If a new name is already used by another
// attribute of a tuple, the renamed value replaces it.
func (d1 *Dataset) Rename(names map[att.Attribute]att.Attribute) *Dataset {
	tuples := make([]att.Tuple, len(d1.tuples))
	for i, tup := range d1.tuples {
		tuples[i] = tup.Rename(names)
	}
	return d1.derive(tuples)
}
