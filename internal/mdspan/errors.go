package mdspan

import "github.com/born-ml/mdspan/internal/shape"

// Errors reported by checked accessors and by shape changes.
var (
	ErrOutOfRange   = shape.ErrOutOfRange
	ErrInvalidShape = shape.ErrInvalidShape
	ErrInvalidState = shape.ErrInvalidState
)

// RangeError carries the dimension, extent and index of a rejected access.
type RangeError = shape.RangeError

// ShapeError carries the shape and reason of a rejected shape.
type ShapeError = shape.ShapeError
