package grammar

import (
	"errors"
	"fmt"

	"github.com/dd0wney/cluso-semantics/pkg/pregroup"
)

// ErrNotAdjoint is the sentinel for cup/cap construction between types that
// are not an adjacent adjoint pair.
var ErrNotAdjoint = errors.New("types are not adjoints")

// ErrNoWords is returned when a parse is constructed with an empty sentence.
var ErrNoWords = errors.New("parse has no words")

// ErrNotWord is returned when a parse is given a box that is not a Word.
var ErrNotWord = errors.New("box is not a word")

// ErrNotReduction is returned when a parse reduction contains boxes other
// than cups and caps.
var ErrNotReduction = errors.New("reduction contains non-cup/cap boxes")

// AdjointError reports the two types that failed the adjacency check.
type AdjointError struct {
	Op string
	X  pregroup.Ty
	Y  pregroup.Ty
}

// Error implements the error interface.
func (e *AdjointError) Error() string {
	return fmt.Sprintf("%s(%s, %s): %v", e.Op, e.X, e.Y, ErrNotAdjoint)
}

// Unwrap returns the sentinel for error chain support.
func (e *AdjointError) Unwrap() error {
	return ErrNotAdjoint
}

// NewAdjointError builds an AdjointError for the given operation.
func NewAdjointError(op string, x, y pregroup.Ty) error {
	return &AdjointError{Op: op, X: x, Y: y}
}
