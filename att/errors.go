// errors are the ways that tuples and criteria can be built incorrectly

package att

import (
	"errors"
	"fmt"
)

// ErrOddPairs is returned when a tuple is built from an odd number of
// alternating names and values.
var ErrOddPairs = errors.New("att: odd number of arguments, expected name/value pairs")

// ErrNoCriteria is returned when a restriction is requested without either
// equality criteria or a predicate.
var ErrNoCriteria = errors.New("att: criteria has neither equalities nor a predicate")

// NameError represents an error that occurs when an attribute name in a list
// of alternating names and values is not a string.
type NameError struct {
	Position int
	Found    any
}

func (e *NameError) Error() string {
	return fmt.Sprintf("att: expected attribute name at position %d, found '%T'", e.Position, e.Found)
}
