package att

import (
	"fmt"
	"strings"
)

type criteriaKind int

const (
	noCriteria criteriaKind = iota
	equalityCriteria
	predicateCriteria
)

// Criteria selects tuples for a restriction.  It is either a set of
// attribute equalities, all of which have to hold, or a predicate.  The
// zero value is neither and is rejected by Match.
type Criteria struct {
	kind criteriaKind
	eq   []Pair
	pred Predicate
}

// Equality creates criteria that hold for tuples where every attribute in m
// equals the given value.  An empty map matches every tuple.
func Equality(m map[Attribute]any) Criteria {
	return Criteria{kind: equalityCriteria, eq: FromMap(m).pairs}
}

// Where is Equality with the attributes given as alternating names and
// values, as in Where("City", "London", "Status", 20).  It panics on
// malformed arguments, like MustFromPairs.
func Where(kv ...any) Criteria {
	return Criteria{kind: equalityCriteria, eq: MustFromPairs(kv...).pairs}
}

// Satisfying creates criteria that hold for tuples satisfying p.
func Satisfying(p Predicate) Criteria {
	return Criteria{kind: predicateCriteria, pred: p}
}

// IsZero reports whether the criteria were never set.  A predicate
// criteria without a predicate, or with an ad-hoc predicate without a
// function, is zero as well.
func (c Criteria) IsZero() bool {
	switch c.kind {
	case equalityCriteria:
		return false
	case predicateCriteria:
		if a, ok := c.pred.(AdHoc); ok {
			return a.F == nil
		}
		return c.pred == nil
	}
	return true
}

// Match reports whether the tuple satisfies the criteria.  It returns
// ErrNoCriteria for zero criteria.
//
// An equality against nil holds both for attributes holding nil and for
// missing attributes.
func (c Criteria) Match(t Tuple) (bool, error) {
	switch c.kind {
	case equalityCriteria:
		for _, p := range c.eq {
			v := t.Lookup(p.Name)
			if p.Value == nil {
				if !v.IsNull() {
					return false, nil
				}
				continue
			}
			if !v.Equal(p.Value) {
				return false, nil
			}
		}
		return true, nil
	case predicateCriteria:
		if c.IsZero() {
			return false, ErrNoCriteria
		}
		return c.pred.Eval(t), nil
	}
	return false, ErrNoCriteria
}

// String representation of the criteria
func (c Criteria) String() string {
	switch c.kind {
	case equalityCriteria:
		s := make([]string, len(c.eq))
		for i, p := range c.eq {
			s[i] = fmt.Sprintf("%v == %s", p.Name, formatValue(p.Value))
		}
		return "{" + strings.Join(s, ", ") + "}"
	case predicateCriteria:
		if c.pred != nil {
			return c.pred.String()
		}
	}
	return "<none>"
}
