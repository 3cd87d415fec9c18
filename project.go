// project implements a project expression in relational algebra

package rom

import (
	"github.com/pdswan/rom/att"
)

// Project creates a new dataset whose tuples keep only the named attributes.
// Names a tuple does not have are left out of that tuple, and the kept
// attributes stay in the tuple's order rather than the order of names.
// Unlike a relational projection, duplicate tuples are kept.
func (d1 *Dataset) Project(names ...att.Attribute) *Dataset {
	tuples := make([]att.Tuple, len(d1.tuples))
	for i, tup := range d1.tuples {
		tuples[i] = tup.Select(names...)
	}

	d1.opts.Logger.V(1).Info("project", "attributes", names, "result", len(tuples))
	return d1.derive(tuples)
}
