// strings deals with string representation of datasets

package rom

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/pdswan/rom/att"
)

// Heading returns the attribute names of all tuples in d, in the order they
// are first seen.
func Heading(d *Dataset) []att.Attribute {
	var names []att.Attribute
	seen := make(map[att.Attribute]struct{})
	for _, tup := range d.tuples {
		for _, name := range tup.Names() {
			if _, ok := seen[name]; !ok {
				seen[name] = struct{}{}
				names = append(names, name)
			}
		}
	}
	return names
}

// String returns a text table of the dataset.  A tuple without one of the
// heading's attributes has a blank cell for it.
func (d *Dataset) String() string {
	heading := Heading(d)

	cells := make([][]string, len(d.tuples)+1)
	cells[0] = make([]string, len(heading))
	for j, name := range heading {
		cells[0][j] = string(name)
	}
	for i, tup := range d.tuples {
		row := make([]string, len(heading))
		for j, name := range heading {
			if v := tup.Lookup(name); v.Present() {
				row[j] = cellString(v.Interface())
			}
		}
		cells[i+1] = row
	}

	widths := make([]int, len(heading))
	for _, row := range cells {
		for j, c := range row {
			if n := utf8.RuneCountInString(c); n > widths[j] {
				widths[j] = n
			}
		}
	}

	var b strings.Builder
	sep := separator(widths)
	b.WriteString(sep)
	for i, row := range cells {
		b.WriteString("\n |")
		for j, c := range row {
			pad := widths[j] - utf8.RuneCountInString(c)
			b.WriteString(" " + strings.Repeat(" ", pad) + c + " |")
		}
		if i == 0 {
			b.WriteString("\n" + sep)
		}
	}
	b.WriteString("\n" + sep)
	return b.String()
}

func separator(widths []int) string {
	s := " +"
	for _, w := range widths {
		s += strings.Repeat("-", w+2) + "+"
	}
	return s
}

func cellString(v any) string {
	if v == nil {
		return "nil"
	}
	return fmt.Sprintf("%v", v)
}

// GoString returns a Go expression that builds the dataset.
func (d *Dataset) GoString() string {
	var b strings.Builder
	b.WriteString("rom.New([]att.Tuple{\n")
	for _, tup := range d.tuples {
		b.WriteString("\tatt.MustFromPairs(")
		for i, p := range tup.Pairs() {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%q, %#v", string(p.Name), p.Value)
		}
		b.WriteString("),\n")
	}
	b.WriteString("})")
	return b.String()
}
