package rom

import (
	"github.com/pdswan/rom/att"
)

// This file contains example data for a suppliers, parts & orders database, using
// the example provided by C. J. Date in his book "Database in Depth" in Figure 1-3.
// The datasets are functions so that tests that mutate them do not leak into
// other tests.

// suppliers dataset
func suppliers(opts ...Option) *Dataset {
	return New([]att.Tuple{
		att.MustFromPairs("SNO", 1, "SName", "Smith", "Status", 20, "City", "London"),
		att.MustFromPairs("SNO", 2, "SName", "Jones", "Status", 10, "City", "Paris"),
		att.MustFromPairs("SNO", 3, "SName", "Blake", "Status", 30, "City", "Paris"),
		att.MustFromPairs("SNO", 4, "SName", "Clark", "Status", 20, "City", "London"),
		att.MustFromPairs("SNO", 5, "SName", "Adams", "Status", 30, "City", "Athens"),
	}, opts...)
}

// parts dataset
func parts(opts ...Option) *Dataset {
	return New([]att.Tuple{
		att.MustFromPairs("PNO", 1, "PName", "Nut", "Color", "Red", "Weight", 12.0, "City", "London"),
		att.MustFromPairs("PNO", 2, "PName", "Bolt", "Color", "Green", "Weight", 17.0, "City", "Paris"),
		att.MustFromPairs("PNO", 3, "PName", "Screw", "Color", "Blue", "Weight", 17.0, "City", "Oslo"),
		att.MustFromPairs("PNO", 4, "PName", "Screw", "Color", "Red", "Weight", 14.0, "City", "London"),
		att.MustFromPairs("PNO", 5, "PName", "Cam", "Color", "Blue", "Weight", 12.0, "City", "Paris"),
		att.MustFromPairs("PNO", 6, "PName", "Cog", "Color", "Red", "Weight", 19.0, "City", "London"),
	}, opts...)
}

// orders dataset
func orders(opts ...Option) *Dataset {
	return New([]att.Tuple{
		att.MustFromPairs("PNO", 1, "SNO", 1, "Qty", 300),
		att.MustFromPairs("PNO", 1, "SNO", 2, "Qty", 200),
		att.MustFromPairs("PNO", 1, "SNO", 3, "Qty", 400),
		att.MustFromPairs("PNO", 2, "SNO", 1, "Qty", 300),
		att.MustFromPairs("PNO", 2, "SNO", 2, "Qty", 400),
		att.MustFromPairs("PNO", 3, "SNO", 2, "Qty", 200),
		att.MustFromPairs("PNO", 4, "SNO", 2, "Qty", 200),
		att.MustFromPairs("PNO", 4, "SNO", 4, "Qty", 300),
		att.MustFromPairs("PNO", 4, "SNO", 5, "Qty", 400),
	}, opts...)
}

// row is shorthand for a literal tuple.
func row(kv ...any) att.Tuple {
	return att.MustFromPairs(kv...)
}
