// union implements a union expression in relational algebra

package rom

import (
	"github.com/pdswan/rom/att"
)

// Union creates a new dataset with the tuples of d1 followed by the tuples of
// d2, without duplicates.  The first occurrence of each tuple is kept.
func (d1 *Dataset) Union(d2 *Dataset) *Dataset {
	tuples := make([]att.Tuple, 0, len(d1.tuples)+len(d2.tuples))
	d3 := d1.derive(tuples)
	for _, body := range [][]att.Tuple{d1.tuples, d2.tuples} {
		for _, tup := range body {
			if !d3.Contains(tup) {
				d3.tuples = append(d3.tuples, tup)
			}
		}
	}

	d1.opts.Logger.V(1).Info("union", "left", d1.Len(), "right", d2.Len(), "result", d3.Len())
	return d3
}
