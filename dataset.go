package rom

import (
	"github.com/pdswan/rom/att"
)

// Dataset is an ordered sequence of tuples.  A Dataset is not safe for
// concurrent mutation; the read only operators may run concurrently as long
// as nothing inserts or deletes.
type Dataset struct {
	tuples []att.Tuple
	opts   Options
}

// New creates a Dataset holding a copy of tuples.
func New(tuples []att.Tuple, opts ...Option) *Dataset {
	d := &Dataset{
		tuples: make([]att.Tuple, len(tuples)),
		opts:   newOptions(opts),
	}
	copy(d.tuples, tuples)
	return d
}

// derive creates a dataset owning tuples, with the options of d.
func (d *Dataset) derive(tuples []att.Tuple) *Dataset {
	return &Dataset{tuples: tuples, opts: d.opts}
}

// Options returns the options the dataset was created with.
func (d *Dataset) Options() Options {
	return d.opts
}

// Len returns the cardinality of the dataset.
func (d *Dataset) Len() int {
	return len(d.tuples)
}

// At returns the tuple at position i.
func (d *Dataset) At(i int) att.Tuple {
	return d.tuples[i]
}

// Tuples returns a copy of the tuples in dataset order.
func (d *Dataset) Tuples() []att.Tuple {
	res := make([]att.Tuple, len(d.tuples))
	copy(res, d.tuples)
	return res
}

// Each calls fn for every tuple in order, until fn returns false.
func (d *Dataset) Each(fn func(i int, tup att.Tuple) bool) {
	for i, tup := range d.tuples {
		if !fn(i, tup) {
			return
		}
	}
}

// Contains reports whether the dataset holds a tuple equal to tup.
func (d *Dataset) Contains(tup att.Tuple) bool {
	return d.index(tup) >= 0
}

func (d *Dataset) index(tup att.Tuple) int {
	for i, tup2 := range d.tuples {
		if tup2.Equal(tup) {
			return i
		}
	}
	return -1
}

// Equal reports whether both datasets hold equal tuples in the same order.
func (d1 *Dataset) Equal(d2 *Dataset) bool {
	if len(d1.tuples) != len(d2.tuples) {
		return false
	}
	for i := range d1.tuples {
		if !d1.tuples[i].Equal(d2.tuples[i]) {
			return false
		}
	}
	return true
}

// Map creates a new dataset by applying fn to every tuple.
func (d1 *Dataset) Map(fn func(att.Tuple) att.Tuple) *Dataset {
	tuples := make([]att.Tuple, len(d1.tuples))
	for i, tup := range d1.tuples {
		tuples[i] = fn(tup)
	}
	return d1.derive(tuples)
}

// FlatMap creates a new dataset from the concatenation of fn's results for
// every tuple.
func (d1 *Dataset) FlatMap(fn func(att.Tuple) []att.Tuple) *Dataset {
	tuples := make([]att.Tuple, 0, len(d1.tuples))
	for _, tup := range d1.tuples {
		tuples = append(tuples, fn(tup)...)
	}
	return d1.derive(tuples)
}
