// restrict implements a restrict expression in relational algebra

package rom

import (
	"github.com/pdswan/rom/att"
)

// Restrict creates a new dataset with the tuples that satisfy c, in their
// original order.  Criteria that are neither equalities nor a predicate are
// rejected with ErrNoCriteria.
func (d1 *Dataset) Restrict(c att.Criteria) (*Dataset, error) {
	if c.IsZero() {
		return nil, ErrNoCriteria
	}

	tuples := make([]att.Tuple, 0, len(d1.tuples))
	for _, tup := range d1.tuples {
		ok, err := c.Match(tup)
		if err != nil {
			return nil, err
		}
		if ok {
			tuples = append(tuples, tup)
		}
	}

	d1.opts.Logger.V(1).Info("restrict", "criteria", c.String(), "source", d1.Len(), "result", len(tuples))
	return d1.derive(tuples), nil
}
