// setdiff implements a set difference expression in relational algebra

package rom

import (
	"github.com/pdswan/rom/att"
)

// SetDiff creates a new dataset with the tuples of d1 that are not equal to
// any tuple of d2, in d1's order.
func (d1 *Dataset) SetDiff(d2 *Dataset) *Dataset {
	tuples := make([]att.Tuple, 0, len(d1.tuples))
	for _, tup := range d1.tuples {
		if !d2.Contains(tup) {
			tuples = append(tuples, tup)
		}
	}

	d1.opts.Logger.V(1).Info("setdiff", "left", d1.Len(), "right", d2.Len(), "result", len(tuples))
	return d1.derive(tuples)
}
