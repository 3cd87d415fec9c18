// tuple defines the ordered attribute to value mapping that makes up a row

package att

import (
	"strings"
)

// Tuple is an ordered mapping from attribute names to values.  Names are
// unique within a tuple.  The order of the attributes is kept for iteration
// and display, but it does not take part in equality.
//
// Tuples are immutable: every method that changes attributes returns a new
// tuple.
type Tuple struct {
	pairs []Pair
}

// New creates a tuple from pairs.  If a name occurs more than once the later
// value wins, and the attribute keeps the position of its first occurrence.
func New(pairs ...Pair) Tuple {
	t := Tuple{pairs: make([]Pair, 0, len(pairs))}
	for _, p := range pairs {
		if i := t.index(p.Name); i >= 0 {
			t.pairs[i].Value = p.Value
			continue
		}
		t.pairs = append(t.pairs, p)
	}
	return t
}

// FromPairs creates a tuple from alternating names and values, as in
// FromPairs("id", 1, "name", "Smith").
func FromPairs(kv ...any) (Tuple, error) {
	if len(kv)%2 != 0 {
		return Tuple{}, ErrOddPairs
	}
	pairs := make([]Pair, 0, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		var name Attribute
		switch n := kv[i].(type) {
		case string:
			name = Attribute(n)
		case Attribute:
			name = n
		default:
			return Tuple{}, &NameError{Position: i, Found: kv[i]}
		}
		pairs = append(pairs, Pair{Name: name, Value: kv[i+1]})
	}
	return New(pairs...), nil
}

// MustFromPairs is like FromPairs but panics if the arguments are malformed.
// It simplifies the literal construction of tuples.
func MustFromPairs(kv ...any) Tuple {
	t, err := FromPairs(kv...)
	if err != nil {
		panic(err)
	}
	return t
}

// FromMap creates a tuple from a map.  Go maps are unordered, so the
// attributes are sorted by name.
func FromMap(m map[Attribute]any) Tuple {
	names := make([]Attribute, 0, len(m))
	for k := range m {
		names = append(names, k)
	}
	names = sortAttributes(names)
	pairs := make([]Pair, len(names))
	for i, n := range names {
		pairs[i] = Pair{Name: n, Value: m[n]}
	}
	return Tuple{pairs: pairs}
}

func (t Tuple) index(name Attribute) int {
	for i, p := range t.pairs {
		if p.Name == name {
			return i
		}
	}
	return -1
}

// Lookup returns the value of an attribute, which is Missing if the tuple
// does not have it.
func (t Tuple) Lookup(name Attribute) Value {
	if i := t.index(name); i >= 0 {
		return Present(t.pairs[i].Value)
	}
	return Missing
}

// Get returns the value of an attribute and whether it was present.
func (t Tuple) Get(name Attribute) (any, bool) {
	v := t.Lookup(name)
	return v.Interface(), v.Present()
}

// Has reports whether the tuple has the attribute.
func (t Tuple) Has(name Attribute) bool {
	return t.index(name) >= 0
}

// Len is the degree of the tuple.
func (t Tuple) Len() int {
	return len(t.pairs)
}

// Names returns the attribute names in tuple order.
func (t Tuple) Names() []Attribute {
	names := make([]Attribute, len(t.pairs))
	for i, p := range t.pairs {
		names[i] = p.Name
	}
	return names
}

// Pairs returns a copy of the (name, value) pairs in tuple order.
func (t Tuple) Pairs() []Pair {
	res := make([]Pair, len(t.pairs))
	copy(res, t.pairs)
	return res
}

// Map returns the attributes as a map.
func (t Tuple) Map() map[Attribute]any {
	m := make(map[Attribute]any, len(t.pairs))
	for _, p := range t.pairs {
		m[p.Name] = p.Value
	}
	return m
}

// Merge returns a new tuple with the attributes of t overlaid with those of
// t2.  Values from t2 win on a name collision; names only in t2 are appended
// in t2's order.
func (t Tuple) Merge(t2 Tuple) Tuple {
	pairs := make([]Pair, len(t.pairs), len(t.pairs)+len(t2.pairs))
	copy(pairs, t.pairs)
	res := Tuple{pairs: pairs}
	for _, p := range t2.pairs {
		if i := res.index(p.Name); i >= 0 {
			res.pairs[i].Value = p.Value
			continue
		}
		res.pairs = append(res.pairs, p)
	}
	return res
}

// Equal reports whether both tuples hold the same set of (name, value)
// pairs, regardless of order.
func (t Tuple) Equal(t2 Tuple) bool {
	if len(t.pairs) != len(t2.pairs) {
		return false
	}
	for _, p := range t.pairs {
		if !t2.Lookup(p.Name).Equal(p.Value) {
			return false
		}
	}
	return true
}

// Intersects reports whether the tuples share at least one identical
// (name, value) pair.
func (t Tuple) Intersects(t2 Tuple) bool {
	for _, p := range t.pairs {
		if t2.Lookup(p.Name).Equal(p.Value) {
			return true
		}
	}
	return false
}

// Select returns a tuple with only the named attributes.  Names the tuple
// does not have are ignored, and the retained attributes keep the tuple's
// order.
func (t Tuple) Select(names ...Attribute) Tuple {
	pairs := make([]Pair, 0, len(names))
	for _, p := range t.pairs {
		if containsAttribute(names, p.Name) {
			pairs = append(pairs, p)
		}
	}
	return Tuple{pairs: pairs}
}

// Rename returns a tuple with attributes renamed according to names, which
// maps old names to new ones.  Attributes not in names keep their name.  If
// a new name collides with an existing one, the renamed value wins.
func (t Tuple) Rename(names map[Attribute]Attribute) Tuple {
	res := Tuple{pairs: make([]Pair, 0, len(t.pairs))}
	for _, p := range t.pairs {
		n, renamed := names[p.Name]
		if renamed {
			p.Name = n
		}
		if j := res.index(p.Name); j >= 0 {
			if renamed {
				res.pairs[j].Value = p.Value
			}
			continue
		}
		res.pairs = append(res.pairs, p)
	}
	return res
}

// String returns a text representation of the tuple, e.g. {id: 1, name: "a"}
func (t Tuple) String() string {
	s := make([]string, len(t.pairs))
	for i, p := range t.pairs {
		s[i] = string(p.Name) + ": " + formatValue(p.Value)
	}
	return "{" + strings.Join(s, ", ") + "}"
}
