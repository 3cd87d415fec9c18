// mutate holds the operations that change a dataset in place

package rom

import (
	"github.com/pdswan/rom/att"
)

// Insert appends tup to the dataset and returns the dataset.
func (d *Dataset) Insert(tup att.Tuple) *Dataset {
	d.tuples = append(d.tuples, tup)
	return d
}

// Append is Insert, for chaining: d.Append(t1).Append(t2).
func (d *Dataset) Append(tup att.Tuple) *Dataset {
	return d.Insert(tup)
}

// Delete removes the first tuple equal to tup and returns the dataset.
// Deleting a tuple that is not in the dataset does nothing.
func (d *Dataset) Delete(tup att.Tuple) *Dataset {
	if i := d.index(tup); i >= 0 {
		d.tuples = append(d.tuples[:i:i], d.tuples[i+1:]...)
	}
	return d
}

// DeleteAll removes every tuple equal to tup and returns the dataset.
func (d *Dataset) DeleteAll(tup att.Tuple) *Dataset {
	kept := make([]att.Tuple, 0, len(d.tuples))
	for _, tup2 := range d.tuples {
		if !tup2.Equal(tup) {
			kept = append(kept, tup2)
		}
	}
	d.tuples = kept
	return d
}
