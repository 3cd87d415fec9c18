package order

import "fmt"

// IncomparableError represents two present values without a natural
// ordering between them, such as a string and a number.
type IncomparableError struct {
	A any
	B any
}

func (e *IncomparableError) Error() string {
	return fmt.Sprintf("order: comparison of %T with %T failed", e.A, e.B)
}

// PolicyError represents an unknown nil policy name.
type PolicyError struct {
	Found string
}

func (e *PolicyError) Error() string {
	return fmt.Sprintf("order: unknown nil policy %q, expected \"first\" or \"last\"", e.Found)
}
