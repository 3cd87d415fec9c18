// join implements a natural join expression in relational algebra

package rom

import (
	"github.com/sourcegraph/conc/iter"

	"github.com/pdswan/rom/att"
)

// Join is the natural join of the receiver with d2.  See the Join function.
func (d1 *Dataset) Join(d2 *Dataset) *Dataset {
	return Join(d1, d2)
}

// Join merges every tuple of d1 with every tuple of d2 it shares at least
// one (name, value) pair with.  On a name collision the value from d2 wins.
// Tuples of d1 without a match are dropped.  The result is in d1's order,
// and within the matches of one d1 tuple, in d2's order.  It carries the
// options of d1.
//
// This is a nested loop join.  When the options allow more than one join
// worker, the matches of the d1 tuples are searched concurrently.
func Join(d1, d2 *Dataset) *Dataset {
	matches := matchAll(d1, d2)

	tuples := make([]att.Tuple, 0, len(d1.tuples))
	for i, tup1 := range d1.tuples {
		for _, tup2 := range matches[i] {
			tuples = append(tuples, tup1.Merge(tup2))
		}
	}

	d1.opts.Logger.V(1).Info("join", "left", d1.Len(), "right", d2.Len(), "result", len(tuples))
	return d1.derive(tuples)
}

// matchAll returns, for every tuple of d1, the tuples of d2 it intersects.
func matchAll(d1, d2 *Dataset) [][]att.Tuple {
	match := func(tup1 *att.Tuple) []att.Tuple {
		var res []att.Tuple
		for _, tup2 := range d2.tuples {
			if tup1.Intersects(tup2) {
				res = append(res, tup2)
			}
		}
		return res
	}

	if d1.opts.JoinWorkers == 1 || len(d1.tuples) < 2 {
		matches := make([][]att.Tuple, len(d1.tuples))
		for i := range d1.tuples {
			matches[i] = match(&d1.tuples[i])
		}
		return matches
	}

	mapper := iter.Mapper[att.Tuple, []att.Tuple]{MaxGoroutines: d1.opts.JoinWorkers}
	return mapper.Map(d1.tuples, match)
}
