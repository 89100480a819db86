package diagram

import (
	"errors"
	"fmt"
)

// ErrInterchange is the sentinel for a blocked interchange: the two boxes
// share a wire and cannot slide past each other.
var ErrInterchange = errors.New("boxes are connected")

// InterchangeError reports the two layers that could not be interchanged.
type InterchangeError struct {
	I, J int
}

// Error implements the error interface.
func (e *InterchangeError) Error() string {
	return fmt.Sprintf("interchange layers %d and %d: %v", e.I, e.J, ErrInterchange)
}

// Unwrap returns the sentinel for error chain support.
func (e *InterchangeError) Unwrap() error {
	return ErrInterchange
}

// LayoutError reports a malformed boxes/offsets layout: mismatched lengths
// or an offset that falls outside the wires feeding its layer.
type LayoutError struct {
	Boxes   int
	Offsets int
	Layer   int
	Offset  int
}

// Error implements the error interface.
func (e *LayoutError) Error() string {
	if e.Boxes != e.Offsets {
		return fmt.Sprintf("layout: %d boxes but %d offsets", e.Boxes, e.Offsets)
	}
	return fmt.Sprintf("layout: offset %d out of range at layer %d", e.Offset, e.Layer)
}
