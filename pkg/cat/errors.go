package cat

import (
	"errors"
	"fmt"

	"github.com/dd0wney/cluso-semantics/pkg/pregroup"
)

// ErrTypeMismatch is the sentinel for any domain/codomain mismatch.
var ErrTypeMismatch = errors.New("type mismatch")

// TypeMismatchError reports the two object sequences that failed to line up
// during composition, arrow construction, or grammatical reduction.
type TypeMismatchError struct {
	Op       string // Operation that failed (e.g. "Compose", "Then", "Parse")
	Expected pregroup.Ty
	Got      pregroup.Ty
}

// Error implements the error interface.
func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("%s: %v: expected %s, got %s", e.Op, ErrTypeMismatch, e.Expected, e.Got)
}

// Unwrap returns the sentinel for error chain support.
func (e *TypeMismatchError) Unwrap() error {
	return ErrTypeMismatch
}

// Is reports whether the target matches the type-mismatch sentinel.
func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}

// NewTypeMismatch builds a TypeMismatchError for the given operation.
func NewTypeMismatch(op string, expected, got pregroup.Ty) error {
	return &TypeMismatchError{Op: op, Expected: expected, Got: got}
}
