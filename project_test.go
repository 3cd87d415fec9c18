package rom

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdswan/rom/att"
)

// tests for project op
func TestProject(t *testing.T) {
	d := parts().Project("City", "PNO")

	assert.Equal(t, 6, d.Len())
	assert.True(t, d.At(0).Equal(row("PNO", 1, "City", "London")))
	// tuple order, not argument order
	assert.Equal(t, []att.Attribute{"PNO", "City"}, d.At(0).Names())
	// duplicates stay
	d = parts().Project("City")
	assert.Equal(t, 6, d.Len())
}

func TestProjectMissing(t *testing.T) {
	d := New([]att.Tuple{
		row("a", 1, "b", 2),
		row("b", 3),
		row("c", 4),
	}).Project("a", "b", "z")

	assert.True(t, d.Equal(New([]att.Tuple{
		row("a", 1, "b", 2),
		row("b", 3),
		att.New(),
	})))
}

func TestProjectIdempotent(t *testing.T) {
	names := att.Attributes("SNO", "City")
	once := suppliers().Project(names...)
	twice := once.Project(names...)
	assert.True(t, once.Equal(twice))
}

func TestProjectDoesNotMutate(t *testing.T) {
	d := parts()
	d.Project("PNO")
	assert.Equal(t, 5, d.At(0).Len())
}
