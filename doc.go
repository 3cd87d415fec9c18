// Package rom implements an in-memory dataset of tuples and the relational
// operators over it.
//
// Basics
//
// A tuple (att.Tuple) is an ordered mapping from attribute names to values.
// A Dataset is an ordered sequence of tuples.  Unlike a relation in the
// strict sense, a Dataset keeps duplicates and has an order, which is the
// insertion order until the dataset is sorted.
//
// The operators are:
//
// Join, which merges every pair of tuples from two datasets that share at
// least one identical (name, value) pair.  Tuples from the left dataset with
// no match produce nothing.  On a name collision the right tuple's value
// wins.
//
// Restrict, which keeps the tuples that satisfy att.Criteria: either a set of
// attribute equalities or a predicate.
//
// Project, which keeps only the named attributes of every tuple.
//
// Order, which sorts tuples by one or more attributes, placing null values
// first or last according to an order.NilPolicy.
//
// Rename, Union, SetDiff and GroupBy complete the algebra.
//
// Every operator returns a new Dataset and leaves its inputs alone.  Insert
// and Delete are the only operations that change a Dataset, and they do it in
// place.  The Options a Dataset is created with are carried over to every
// Dataset derived from it.
//
// A Storage holds named datasets, and datasets can be read from and written
// to YAML or JSON.
package rom

// variable naming conventions
//
// d, d1, d2, ... all represent datasets.  If there is an operation which
// has an output dataset, the output dataset will have the highest number
// after the d.
//
// tup, tup1, tup2, ... all represent tuples going through some relational
// transformation.
