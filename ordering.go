// ordering sorts datasets by attribute values

package rom

import (
	"slices"

	"github.com/pdswan/rom/att"
	"github.com/pdswan/rom/order"
)

// Order creates a new dataset sorted ascending by the named attributes, using
// the dataset's nil policy.  See OrderBy.
func (d1 *Dataset) Order(names ...att.Attribute) (*Dataset, error) {
	return d1.OrderBy(d1.opts.Nils, names...)
}

// OrderBy creates a new dataset sorted ascending by the named attributes.
// The first name is the primary key and each later name breaks ties of the
// ones before it.  Null values, missing attributes included, are placed
// according to nils.  The sort is stable, so tuples that compare equal keep
// their relative order.
//
// If two present values have no natural ordering, an *OrderError is
// returned.
func (d1 *Dataset) OrderBy(nils order.NilPolicy, names ...att.Attribute) (*Dataset, error) {
	c := order.New(nils, order.WithCollation(d1.opts.Collation))

	tuples := d1.Tuples()
	var err error
	slices.SortStableFunc(tuples, func(tup1, tup2 att.Tuple) int {
		for _, name := range names {
			res, cerr := c.Compare(tup1.Lookup(name), tup2.Lookup(name))
			if cerr != nil {
				if err == nil {
					err = &OrderError{Attribute: name, Err: cerr}
				}
				return 0
			}
			if res != 0 {
				return res
			}
		}
		return 0
	})
	if err != nil {
		return nil, err
	}

	d1.opts.Logger.V(1).Info("order", "attributes", names, "nils", nils.String(), "result", len(tuples))
	return d1.derive(tuples), nil
}
