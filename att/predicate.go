// predicate defines logical predicates used in a dataset's restrict

package att

import (
	"fmt"

	"github.com/pdswan/rom/order"
)

// Predicate is a boolean condition over a single tuple, used for restrict.
type Predicate interface {
	// Eval evaluates the predicate on a tuple
	Eval(t Tuple) bool

	// Domain is the set of attributes the predicate reads
	Domain() []Attribute

	String() string

	// infix boolean expressions
	And(p2 Predicate) AndPred
	Or(p2 Predicate) OrPred
	Xor(p2 Predicate) XorPred
}

// Not predicate
func Not(p Predicate) NotPred {
	// Prefix not is a lot more comprehensible than postfix!  To that end, it
	// is not a part of the interface because that would require postfix.
	return NotPred{p}
}

// NotPred represents a logical not of a predicate
type NotPred struct {
	P Predicate
}

// String representation of Not
func (p NotPred) String() string {
	return fmt.Sprintf("!(%v)", p.P)
}

// Domain is the set of attributes the predicate reads
func (p NotPred) Domain() []Attribute {
	return p.P.Domain()
}

// Eval evaluates a predicate on an input tuple
func (p NotPred) Eval(t Tuple) bool {
	return !p.P.Eval(t)
}

// And predicate
func (p1 NotPred) And(p2 Predicate) AndPred {
	return AndPred{p1, p2}
}

// Or predicate
func (p1 NotPred) Or(p2 Predicate) OrPred {
	return OrPred{p1, p2}
}

// Xor predicate
func (p1 NotPred) Xor(p2 Predicate) XorPred {
	return XorPred{p1, p2}
}

// AndPred represents a logical and predicate
type AndPred struct {
	P1 Predicate
	P2 Predicate
}

// String representation of And
func (p AndPred) String() string {
	return fmt.Sprintf("(%v) && (%v)", p.P1, p.P2)
}

// Domain is the set of attributes the predicate reads
func (p AndPred) Domain() []Attribute {
	return unionAttributes(p.P1.Domain(), p.P2.Domain())
}

// Eval evaluates a predicate on an input tuple
func (p AndPred) Eval(t Tuple) bool {
	return p.P1.Eval(t) && p.P2.Eval(t)
}

// And predicate
func (p1 AndPred) And(p2 Predicate) AndPred {
	return AndPred{p1, p2}
}

// Or predicate
func (p1 AndPred) Or(p2 Predicate) OrPred {
	return OrPred{p1, p2}
}

// Xor predicate
func (p1 AndPred) Xor(p2 Predicate) XorPred {
	return XorPred{p1, p2}
}

// OrPred represents a logical or predicate
type OrPred struct {
	P1 Predicate
	P2 Predicate
}

// String representation of Or
func (p OrPred) String() string {
	return fmt.Sprintf("(%v) || (%v)", p.P1, p.P2)
}

// Domain is the set of attributes the predicate reads
func (p OrPred) Domain() []Attribute {
	return unionAttributes(p.P1.Domain(), p.P2.Domain())
}

// Eval evaluates a predicate on an input tuple
func (p OrPred) Eval(t Tuple) bool {
	return p.P1.Eval(t) || p.P2.Eval(t)
}

// And predicate
func (p1 OrPred) And(p2 Predicate) AndPred {
	return AndPred{p1, p2}
}

// Or predicate
func (p1 OrPred) Or(p2 Predicate) OrPred {
	return OrPred{p1, p2}
}

// Xor predicate
func (p1 OrPred) Xor(p2 Predicate) XorPred {
	return XorPred{p1, p2}
}

// XorPred represents a logical xor predicate
type XorPred struct {
	P1 Predicate
	P2 Predicate
}

// String representation of Xor
func (p XorPred) String() string {
	return fmt.Sprintf("(%v) != (%v)", p.P1, p.P2)
}

// Domain is the set of attributes the predicate reads
func (p XorPred) Domain() []Attribute {
	return unionAttributes(p.P1.Domain(), p.P2.Domain())
}

// Eval evaluates a predicate on an input tuple
func (p XorPred) Eval(t Tuple) bool {
	return p.P1.Eval(t) != p.P2.Eval(t)
}

// And predicate
func (p1 XorPred) And(p2 Predicate) AndPred {
	return AndPred{p1, p2}
}

// Or predicate
func (p1 XorPred) Or(p2 Predicate) OrPred {
	return OrPred{p1, p2}
}

// Xor predicate
func (p1 XorPred) Xor(p2 Predicate) XorPred {
	return XorPred{p1, p2}
}

// AdHoc is a Predicate that can implement any function on a tuple.  Atts
// lists the attributes the function reads; it is only used for Domain and
// String.
// I expect that this will typically be constructed with anonymous functions.
type AdHoc struct {
	F    func(Tuple) bool
	Atts []Attribute
}

// Func wraps a function as an AdHoc predicate.
func Func(f func(Tuple) bool, atts ...Attribute) AdHoc {
	return AdHoc{F: f, Atts: atts}
}

// String representation of AdHoc
func (p AdHoc) String() string {
	return "func(" + attributeList(p.Atts) + ")"
}

// Domain is the set of attributes the predicate reads
func (p AdHoc) Domain() []Attribute {
	return p.Atts
}

// Eval evaluates a predicate on an input tuple
func (p AdHoc) Eval(t Tuple) bool {
	return p.F(t)
}

// And predicate
func (p1 AdHoc) And(p2 Predicate) AndPred {
	return AndPred{p1, p2}
}

// Or predicate
func (p1 AdHoc) Or(p2 Predicate) OrPred {
	return OrPred{p1, p2}
}

// Xor predicate
func (p1 AdHoc) Xor(p2 Predicate) XorPred {
	return XorPred{p1, p2}
}

// The comparison predicates take an interface because the right hand side
// might be a literal, or another attribute.

// CmpPred compares an attribute with a literal or another attribute.
type CmpPred struct {
	op  string
	att []Attribute
	lit any
}

func newCmpPred(op string, att1 Attribute, v any) CmpPred {
	if att2, ok := v.(Attribute); ok {
		return CmpPred{op: op, att: []Attribute{att1, att2}}
	}
	return CmpPred{op: op, att: []Attribute{att1}, lit: v}
}

// EQ is equal to (==).  A missing attribute is never equal to anything.
func (att1 Attribute) EQ(v any) CmpPred { return newCmpPred("==", att1, v) }

// NE is not equal to (!=), the negation of EQ.
func (att1 Attribute) NE(v any) CmpPred { return newCmpPred("!=", att1, v) }

// LT is less than (<), using the natural ordering of the values.  Null or
// incomparable values never satisfy an ordering comparison.
func (att1 Attribute) LT(v any) CmpPred { return newCmpPred("<", att1, v) }

// LE is less than or equal to (<=)
func (att1 Attribute) LE(v any) CmpPred { return newCmpPred("<=", att1, v) }

// GT is greater than (>)
func (att1 Attribute) GT(v any) CmpPred { return newCmpPred(">", att1, v) }

// GE is greater than or equal to (>=)
func (att1 Attribute) GE(v any) CmpPred { return newCmpPred(">=", att1, v) }

// String representation of the comparison
func (p CmpPred) String() string {
	if len(p.att) == 2 {
		return fmt.Sprintf("%v %s %v", p.att[0], p.op, p.att[1])
	}
	return fmt.Sprintf("%v %s %v", p.att[0], p.op, p.lit)
}

// Domain is the set of attributes the predicate reads
func (p CmpPred) Domain() []Attribute {
	return p.att
}

// Eval evaluates a predicate on an input tuple
func (p CmpPred) Eval(t Tuple) bool {
	v1 := t.Lookup(p.att[0])
	v2 := Present(p.lit)
	if len(p.att) == 2 {
		v2 = t.Lookup(p.att[1])
	}
	switch p.op {
	case "==":
		return v1.Present() && v2.Present() && valueEqual(v1.Interface(), v2.Interface())
	case "!=":
		return !(v1.Present() && v2.Present() && valueEqual(v1.Interface(), v2.Interface()))
	}
	if v1.IsNull() || v2.IsNull() {
		return false
	}
	c, err := order.Natural(v1.Interface(), v2.Interface())
	if err != nil {
		return false
	}
	switch p.op {
	case "<":
		return c < 0
	case "<=":
		return c <= 0
	case ">":
		return c > 0
	default:
		return c >= 0
	}
}

// And predicate
func (p1 CmpPred) And(p2 Predicate) AndPred {
	return AndPred{p1, p2}
}

// Or predicate
func (p1 CmpPred) Or(p2 Predicate) OrPred {
	return OrPred{p1, p2}
}

// Xor predicate
func (p1 CmpPred) Xor(p2 Predicate) XorPred {
	return XorPred{p1, p2}
}

// PresentPred is satisfied by tuples that have the attribute.
type PresentPred struct {
	att Attribute
}

// Present is satisfied when the tuple has the attribute, even with a nil
// value.
func (att1 Attribute) Present() PresentPred { return PresentPred{att1} }

// String representation of Present
func (p PresentPred) String() string {
	return fmt.Sprintf("present(%v)", p.att)
}

// Domain is the set of attributes the predicate reads
func (p PresentPred) Domain() []Attribute {
	return []Attribute{p.att}
}

// Eval evaluates a predicate on an input tuple
func (p PresentPred) Eval(t Tuple) bool {
	return t.Has(p.att)
}

// And predicate
func (p1 PresentPred) And(p2 Predicate) AndPred {
	return AndPred{p1, p2}
}

// Or predicate
func (p1 PresentPred) Or(p2 Predicate) OrPred {
	return OrPred{p1, p2}
}

// Xor predicate
func (p1 PresentPred) Xor(p2 Predicate) XorPred {
	return XorPred{p1, p2}
}
