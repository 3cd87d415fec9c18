// errors are the failures of the dataset operators

package rom

import (
	"fmt"

	"github.com/pdswan/rom/att"
)

// ErrNoCriteria is returned by Restrict when the criteria hold neither
// equalities nor a predicate.
var ErrNoCriteria = att.ErrNoCriteria

// OrderError represents a failure to compare the values of an attribute
// while sorting.
type OrderError struct {
	Attribute att.Attribute
	Err       error
}

func (e *OrderError) Error() string {
	return fmt.Sprintf("rom: cannot order by %q: %v", e.Attribute, e.Err)
}

func (e *OrderError) Unwrap() error {
	return e.Err
}
