package order

import (
	"cmp"
	"encoding/json"
	"reflect"
	"strings"
	"time"

	"github.com/spf13/cast"
)

// Natural compares two present values by their natural ordering.  Numbers of
// any integer or floating point kind compare numerically with each other,
// strings compare by bytes, false sorts before true, and times compare
// chronologically.  Named types compare like their underlying kind, and a
// json.Number is a number.  Other combinations are an *IncomparableError.
func Natural(a, b any) (int, error) {
	return natural(a, b, nil)
}

func (c *Comparator) natural(a, b any) (int, error) {
	if c.collator == nil {
		return natural(a, b, nil)
	}
	return natural(a, b, c.collator.CompareString)
}

func natural(a, b any, compareString func(a, b string) int) (int, error) {
	if ta, ok := a.(time.Time); ok {
		if tb, ok := b.(time.Time); ok {
			return ta.Compare(tb), nil
		}
		return 0, &IncomparableError{A: a, B: b}
	}

	a, b = underlying(a), underlying(b)
	ka, kb := kindOf(a), kindOf(b)
	switch {
	case ka == signedKind && kb == signedKind:
		return cmp.Compare(cast.ToInt64(a), cast.ToInt64(b)), nil
	case ka == unsignedKind && kb == unsignedKind:
		return cmp.Compare(cast.ToUint64(a), cast.ToUint64(b)), nil
	case ka == signedKind && kb == unsignedKind:
		return compareSignedUnsigned(cast.ToInt64(a), cast.ToUint64(b)), nil
	case ka == unsignedKind && kb == signedKind:
		return -compareSignedUnsigned(cast.ToInt64(b), cast.ToUint64(a)), nil
	case ka.numeric() && kb.numeric():
		fa, err := cast.ToFloat64E(a)
		if err != nil {
			return 0, &IncomparableError{A: a, B: b}
		}
		fb, err := cast.ToFloat64E(b)
		if err != nil {
			return 0, &IncomparableError{A: a, B: b}
		}
		return cmp.Compare(fa, fb), nil
	case ka == stringKind && kb == stringKind:
		sa, sb := a.(string), b.(string)
		if compareString != nil {
			return compareString(sa, sb), nil
		}
		return strings.Compare(sa, sb), nil
	case ka == boolKind && kb == boolKind:
		ba, bb := a.(bool), b.(bool)
		switch {
		case ba == bb:
			return 0, nil
		case bb:
			return -1, nil
		default:
			return 1, nil
		}
	}
	return 0, &IncomparableError{A: a, B: b}
}

// compareSignedUnsigned compares integers of mixed signedness without going
// through float64, which is inexact above 2^53.
func compareSignedUnsigned(i int64, u uint64) int {
	if i < 0 {
		return -1
	}
	return cmp.Compare(uint64(i), u)
}

type valueKind int

const (
	otherKind valueKind = iota
	signedKind
	unsignedKind
	floatKind
	stringKind
	boolKind
)

func (k valueKind) numeric() bool {
	return k == signedKind || k == unsignedKind || k == floatKind
}

// underlying converts values of named scalar types to the predeclared type
// of their kind, so that cast and the type switches below see them.
func underlying(v any) any {
	if v == nil {
		return nil
	}
	if _, ok := v.(json.Number); ok {
		return v
	}
	rv := reflect.ValueOf(v)
	if rv.Type().PkgPath() == "" {
		return v
	}
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint()
	case reflect.Float32, reflect.Float64:
		return rv.Float()
	case reflect.String:
		return rv.String()
	case reflect.Bool:
		return rv.Bool()
	}
	return v
}

func kindOf(v any) valueKind {
	if v == nil {
		return otherKind
	}
	if _, ok := v.(json.Number); ok {
		return floatKind
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return signedKind
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return unsignedKind
	case reflect.Float32, reflect.Float64:
		return floatKind
	case reflect.String:
		return stringKind
	case reflect.Bool:
		return boolKind
	}
	return otherKind
}
