package functor

import (
	"errors"
	"fmt"
)

// ErrNoImage is the sentinel for an object or generator with no registered
// semantic image.
var ErrNoImage = errors.New("no semantic image registered")

// FunctorDomainError reports the object or box a functor could not map.
type FunctorDomainError struct {
	Kind string // "object" or "box"
	Name string
}

// Error implements the error interface.
func (e *FunctorDomainError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Kind, e.Name, ErrNoImage)
}

// Unwrap returns the sentinel for error chain support.
func (e *FunctorDomainError) Unwrap() error {
	return ErrNoImage
}
