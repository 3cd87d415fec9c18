package att

import (
	"fmt"
	"reflect"
)

// Value is the result of looking up an attribute in a tuple.  It keeps an
// absent attribute apart from an attribute that is present with a nil
// value.
type Value struct {
	v       any
	present bool
}

// Missing is the Value of an attribute that is not in a tuple.
var Missing = Value{}

// Present wraps v as the value of an attribute that exists.
func Present(v any) Value {
	return Value{v: v, present: true}
}

// Present reports whether the attribute exists in the tuple.
func (v Value) Present() bool { return v.present }

// IsMissing reports whether the attribute is absent from the tuple.
func (v Value) IsMissing() bool { return !v.present }

// IsNull is true for absent attributes and for attributes holding nil.
func (v Value) IsNull() bool { return !v.present || v.v == nil }

// Interface returns the underlying value, or nil if it is missing.
func (v Value) Interface() any { return v.v }

// Equal reports whether the value is present and equal to x.
func (v Value) Equal(x any) bool {
	return v.present && valueEqual(v.v, x)
}

func (v Value) String() string {
	if !v.present {
		return "<missing>"
	}
	return formatValue(v.v)
}

// valueEqual is value equality: both the dynamic types and the contents have
// to match, so int(1) and float64(1) are different values.
func valueEqual(a, b any) bool {
	return reflect.DeepEqual(a, b)
}

func formatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return "nil"
	case string:
		return fmt.Sprintf("%q", x)
	default:
		return fmt.Sprintf("%v", x)
	}
}
