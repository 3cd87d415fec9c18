// Package att represents attributes, the tuples built from them, and the
// predicates and criteria constructed from attributes.
package att

import (
	"sort"
	"strings"
)

// Attribute represents a particular attribute's name in a tuple
type Attribute string

// Pair is a single (name, value) entry of a tuple.
type Pair struct {
	Name  Attribute
	Value any
}

// Attributes converts a list of strings into attributes, in the same order.
func Attributes(names ...string) []Attribute {
	atts := make([]Attribute, len(names))
	for i, n := range names {
		atts[i] = Attribute(n)
	}
	return atts
}

// sortAttributes returns a sorted copy of the input attributes.
func sortAttributes(atts []Attribute) []Attribute {
	res := make([]Attribute, len(atts))
	copy(res, atts)
	sort.Slice(res, func(i, j int) bool { return res[i] < res[j] })
	return res
}

// unionAttributes produces a union of two sets of attributes, without dups
// assuming that the input attributes are already unique. This returns a copy
// and does not modify the inputs.
func unionAttributes(att1 []Attribute, att2 []Attribute) []Attribute {
	// For small sets of attributes (which should be typical!) this should be
	// faster than a map.
	att := make([]Attribute, len(att1))
	copy(att, att1)
Found:
	for _, v2 := range att2 {
		for _, v1 := range att1 {
			if v1 == v2 {
				continue Found
			}
		}
		att = append(att, v2)
	}
	return att
}

// containsAttribute reports whether name is one of atts.
func containsAttribute(atts []Attribute, name Attribute) bool {
	for _, a := range atts {
		if a == name {
			return true
		}
	}
	return false
}

// attributeList renders attributes as "{a, b, c}".
func attributeList(atts []Attribute) string {
	s := make([]string, len(atts))
	for i, a := range atts {
		s[i] = string(a)
	}
	return "{" + strings.Join(s, ", ") + "}"
}
