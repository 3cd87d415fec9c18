// groupby implements a group by expression in relational algebra

package rom

import (
	"slices"

	"github.com/pdswan/rom/att"
)

// GroupBy creates a new dataset with one tuple for every distinct
// combination of values of the named attributes, in the order the
// combinations are first seen.  fn receives the tuples of one group as a
// dataset and returns the aggregate attributes, which are merged onto the
// grouping attributes.  Tuples missing a grouping attribute are grouped
// apart from tuples where it is nil.
func (d1 *Dataset) GroupBy(names []att.Attribute, fn func(group *Dataset) att.Tuple) *Dataset {
	var keys []att.Tuple
	var groups [][]att.Tuple
	for _, tup := range d1.tuples {
		key := tup.Select(names...)
		i := slices.IndexFunc(keys, key.Equal)
		if i < 0 {
			keys = append(keys, key)
			groups = append(groups, nil)
			i = len(keys) - 1
		}
		groups[i] = append(groups[i], tup)
	}

	tuples := make([]att.Tuple, len(keys))
	for i, key := range keys {
		tuples[i] = key.Merge(fn(d1.derive(groups[i])))
	}

	d1.opts.Logger.V(1).Info("groupby", "attributes", names, "source", d1.Len(), "groups", len(tuples))
	return d1.derive(tuples)
}
