package shape

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrOutOfRange   = errors.New("index out of range")
	ErrInvalidShape = errors.New("invalid shape")
	ErrInvalidState = errors.New("invalid state")
)

// RangeError reports the first index that fell outside its dimension.
// Dim is -1 when the computed offset, not a single index, left the buffer.
type RangeError struct {
	Dim    int
	Extent int
	Index  int
}

// Error implements the error interface.
func (e *RangeError) Error() string {
	if e.Dim < 0 {
		return fmt.Sprintf("%v: offset %d exceeds buffer of %d elements", ErrOutOfRange, e.Index, e.Extent)
	}
	return fmt.Sprintf("%v: index %d for dimension %d (extent %d)", ErrOutOfRange, e.Index, e.Dim, e.Extent)
}

// Unwrap lets errors.Is match ErrOutOfRange.
func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}

// ShapeError describes why a shape was rejected.
type ShapeError struct {
	Shape    Shape
	Dim      int // Offending dimension, -1 if the shape as a whole is at fault
	Capacity int // Elements available in the buffer, 0 if not checked
	Reason   string
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	if e.Dim >= 0 {
		return fmt.Sprintf("%v %v: dimension %d: %s", ErrInvalidShape, e.Shape, e.Dim, e.Reason)
	}
	return fmt.Sprintf("%v %v: %s", ErrInvalidShape, e.Shape, e.Reason)
}

// Unwrap lets errors.Is match ErrInvalidShape.
func (e *ShapeError) Unwrap() error {
	return ErrInvalidShape
}
