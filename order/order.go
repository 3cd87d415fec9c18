// Package order implements the nil aware comparator used to sort datasets.
//
// A Comparator evaluates an explicit chain of rules for a pair of values.
// The chain holds one rule placing null values first or last, followed by
// the natural comparison of the values.  The first rule that produces a
// definite result decides.
package order

import (
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// NilPolicy selects whether null values sort before or after present ones.
type NilPolicy int

const (
	// NilsLast sorts null values after present ones.  It is the default.
	NilsLast NilPolicy = iota
	// NilsFirst sorts null values before present ones.
	NilsFirst
)

func (p NilPolicy) String() string {
	switch p {
	case NilsFirst:
		return "first"
	case NilsLast:
		return "last"
	}
	return "unknown"
}

// ParseNilPolicy parses "first" or "last".  The empty string is NilsLast.
func ParseNilPolicy(s string) (NilPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "first":
		return NilsFirst, nil
	case "last", "":
		return NilsLast, nil
	}
	return NilsLast, &PolicyError{Found: s}
}

// Rule is a single step of a comparison chain.
type Rule int

const (
	// MissingFirst orders a null value before a present one.
	MissingFirst Rule = iota + 1
	// MissingLast orders a null value after a present one.
	MissingLast
	// DefaultCompare is the natural comparison of the values.  Two null
	// values compare equal.
	DefaultCompare
)

func (r Rule) String() string {
	switch r {
	case MissingFirst:
		return "missing-first"
	case MissingLast:
		return "missing-last"
	case DefaultCompare:
		return "default-compare"
	}
	return "unknown"
}

// RulesFor returns the comparison chain for a nil policy.  DefaultCompare is
// always the last rule.
func RulesFor(p NilPolicy) []Rule {
	if p == NilsFirst {
		return []Rule{MissingFirst, DefaultCompare}
	}
	return []Rule{MissingLast, DefaultCompare}
}

// Operand is a value being compared.  It reports whether it is null, which
// covers both absent attributes and attributes holding nil.
type Operand interface {
	IsNull() bool
	Interface() any
}

// Comparator compares operands with a chain of rules.  A Comparator with a
// collation is not safe for concurrent use.
type Comparator struct {
	rules    []Rule
	collator *collate.Collator
}

// Option configures a Comparator.
type Option func(*Comparator)

// WithCollation compares strings with the collation rules of a language
// instead of byte order.  language.Und keeps byte order.
func WithCollation(tag language.Tag) Option {
	return func(c *Comparator) {
		if tag != language.Und {
			c.collator = collate.New(tag)
		}
	}
}

// New creates a comparator for the nil policy.
func New(p NilPolicy, opts ...Option) *Comparator {
	c := &Comparator{rules: RulesFor(p)}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Rules returns the comparator's chain.
func (c *Comparator) Rules() []Rule {
	res := make([]Rule, len(c.rules))
	copy(res, c.rules)
	return res
}

// Compare returns a negative number when a sorts before b, a positive number
// when it sorts after, and zero when they are equal.  It fails when two
// present values have no natural ordering.
func (c *Comparator) Compare(a, b Operand) (int, error) {
	for _, r := range c.rules {
		if res, ok, err := c.apply(r, a, b); ok || err != nil {
			return res, err
		}
	}
	return 0, nil
}

// apply evaluates one rule; ok is false if the rule does not decide.
func (c *Comparator) apply(r Rule, a, b Operand) (res int, ok bool, err error) {
	an, bn := a.IsNull(), b.IsNull()
	switch r {
	case MissingFirst:
		switch {
		case an && !bn:
			return -1, true, nil
		case bn && !an:
			return 1, true, nil
		}
	case MissingLast:
		switch {
		case an && !bn:
			return 1, true, nil
		case bn && !an:
			return -1, true, nil
		}
	case DefaultCompare:
		if an && bn {
			return 0, true, nil
		}
		res, err := c.natural(a.Interface(), b.Interface())
		return res, err == nil, err
	}
	return 0, false, nil
}
