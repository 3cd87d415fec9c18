package att

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromPairs(t *testing.T) {
	tup, err := FromPairs("id", 1, Attribute("name"), "Smith", "id", 2)
	require.NoError(t, err)
	assert.Equal(t, []Attribute{"id", "name"}, tup.Names())
	assert.Equal(t, 2, tup.Lookup("id").Interface())

	_, err = FromPairs("id", 1, "name")
	assert.ErrorIs(t, err, ErrOddPairs)

	_, err = FromPairs(1, "id")
	var nerr *NameError
	require.ErrorAs(t, err, &nerr)
	assert.Equal(t, 0, nerr.Position)

	assert.Panics(t, func() { MustFromPairs("id") })
}

func TestFromMap(t *testing.T) {
	tup := FromMap(map[Attribute]any{"b": 2, "a": 1, "c": 3})
	assert.Equal(t, []Attribute{"a", "b", "c"}, tup.Names())
}

func TestLookup(t *testing.T) {
	tup := MustFromPairs("id", 1, "note", nil)

	v := tup.Lookup("id")
	assert.True(t, v.Present())
	assert.False(t, v.IsNull())
	assert.Equal(t, 1, v.Interface())

	// present with a nil value is not the same as missing
	v = tup.Lookup("note")
	assert.True(t, v.Present())
	assert.True(t, v.IsNull())
	assert.False(t, v.IsMissing())

	v = tup.Lookup("city")
	assert.False(t, v.Present())
	assert.True(t, v.IsMissing())
	assert.True(t, v.IsNull())
	assert.Equal(t, Missing, v)

	_, ok := tup.Get("city")
	assert.False(t, ok)
	assert.True(t, tup.Has("note"))
	assert.False(t, tup.Has("city"))
}

func TestMerge(t *testing.T) {
	left := MustFromPairs("x", 1, "y", 2)
	right := MustFromPairs("y", 9, "z", 3)

	merged := left.Merge(right)
	assert.True(t, merged.Equal(MustFromPairs("x", 1, "y", 9, "z", 3)))
	assert.Equal(t, []Attribute{"x", "y", "z"}, merged.Names())

	// the inputs are untouched
	assert.Equal(t, 2, left.Lookup("y").Interface())
	assert.Equal(t, 2, right.Len())
}

func TestEqual(t *testing.T) {
	var equalTests = []struct {
		name string
		t1   Tuple
		t2   Tuple
		out  bool
	}{
		{"same order", MustFromPairs("a", 1, "b", "x"), MustFromPairs("a", 1, "b", "x"), true},
		{"other order", MustFromPairs("a", 1, "b", "x"), MustFromPairs("b", "x", "a", 1), true},
		{"other value", MustFromPairs("a", 1), MustFromPairs("a", 2), false},
		{"other type", MustFromPairs("a", 1), MustFromPairs("a", 1.0), false},
		{"subset", MustFromPairs("a", 1), MustFromPairs("a", 1, "b", 2), false},
		{"nil vs missing", MustFromPairs("a", 1, "b", nil), MustFromPairs("a", 1, "c", nil), false},
		{"nested", MustFromPairs("a", []any{1, 2}), MustFromPairs("a", []any{1, 2}), true},
		{"empty", New(), Tuple{}, true},
	}
	for _, tt := range equalTests {
		assert.Equal(t, tt.out, tt.t1.Equal(tt.t2), tt.name)
		assert.Equal(t, tt.out, tt.t2.Equal(tt.t1), tt.name)
	}
}

func TestIntersects(t *testing.T) {
	tup := MustFromPairs("id", 1, "name", "a")
	assert.True(t, tup.Intersects(MustFromPairs("name", "a", "age", 9)))
	assert.False(t, tup.Intersects(MustFromPairs("name", "b", "age", 2)))
	// same value under another name is not a shared pair
	assert.False(t, tup.Intersects(MustFromPairs("other", "a")))
	assert.False(t, tup.Intersects(New()))
}

func TestSelect(t *testing.T) {
	tup := MustFromPairs("a", 1, "b", 2, "c", 3)

	sel := tup.Select("c", "a", "missing")
	assert.Equal(t, []Attribute{"a", "c"}, sel.Names())
	assert.True(t, sel.Select("c", "a").Equal(sel))
	assert.Equal(t, 0, tup.Select().Len())
}

func TestRename(t *testing.T) {
	tup := MustFromPairs("a", 1, "b", 2, "c", 3)

	r := tup.Rename(map[Attribute]Attribute{"a": "x"})
	assert.Equal(t, []Attribute{"x", "b", "c"}, r.Names())
	assert.Equal(t, 1, r.Lookup("x").Interface())

	// collision: the renamed value replaces the existing one
	r = tup.Rename(map[Attribute]Attribute{"c": "a"})
	assert.Equal(t, []Attribute{"a", "b"}, r.Names())
	assert.Equal(t, 3, r.Lookup("a").Interface())

	// swapping names
	r = tup.Rename(map[Attribute]Attribute{"a": "b", "b": "a"})
	assert.True(t, r.Equal(MustFromPairs("b", 1, "a", 2, "c", 3)))
}

func TestTupleString(t *testing.T) {
	tup := MustFromPairs("id", 1, "name", "Smith", "note", nil)
	assert.Equal(t, `{id: 1, name: "Smith", note: nil}`, tup.String())
	assert.Equal(t, "{}", New().String())
	assert.Equal(t, "<missing>", tup.Lookup("city").String())
}
