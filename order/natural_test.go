package order

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type celsius float64

type color string

func TestNatural(t *testing.T) {
	now := time.Now()

	var naturalTests = []struct {
		name string
		a, b any
		out  int
	}{
		{"ints", 1, 2, -1},
		{"int kinds", int8(3), int64(2), 1},
		{"uints", uint(2), uint32(2), 0},
		{"int and uint", -1, uint(1), -1},
		{"uint and int", uint(1), -1, 1},
		{"large int and uint", int64(9007199254740993), uint64(9007199254740992), 1},
		{"large uint and int", uint64(9007199254740992), int64(9007199254740993), -1},
		{"max uint", uint64(1<<64 - 1), int64(1<<63 - 1), 1},
		{"equal int and uint", int64(7), uint8(7), 0},
		{"int and float", 2, 1.5, 1},
		{"large ints", int64(1) << 62, int64(1)<<62 + 1, -1},
		{"named float", celsius(10), 9.5, 1},
		{"json number", json.Number("10"), 9, 1},
		{"strings", "apple", "banana", -1},
		{"named strings", color("red"), "blue", 1},
		{"bools", false, true, -1},
		{"equal bools", true, true, 0},
		{"times", now, now.Add(time.Second), -1},
	}
	for _, tt := range naturalTests {
		res, err := Natural(tt.a, tt.b)
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.out, sign(res), tt.name)
	}
}

func TestNaturalIncomparable(t *testing.T) {
	var incomparableTests = []struct {
		name string
		a, b any
	}{
		{"string and int", "1", 1},
		{"bool and int", true, 1},
		{"time and string", time.Now(), "now"},
		{"slices", []any{1}, []any{2}},
		{"maps", map[string]any{}, map[string]any{}},
		{"nil", nil, 1},
	}
	for _, tt := range incomparableTests {
		_, err := Natural(tt.a, tt.b)
		var ierr *IncomparableError
		assert.ErrorAs(t, err, &ierr, tt.name)
	}
}
