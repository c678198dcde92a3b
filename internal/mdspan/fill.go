package mdspan

import (
	"fmt"

	"github.com/born-ml/mdspan/internal/parallel"
	"github.com/born-ml/mdspan/internal/shape"
)

// Layout is the part of a view that Fill needs: its buffer and its shape.
// Both Span and DynSpan implement it.
type Layout[T any] interface {
	Data() []T
	Shape() shape.Shape
}

// Fill sets every element of v to fn(idx), where idx is the element's index
// tuple. Rows of the leading dimension are filled concurrently according to
// cfg; fn must be safe for concurrent use.
//
// Fails with ErrInvalidShape if the buffer is shorter than the shape
// requires, before any element is written.
func Fill[T any](v Layout[T], fn func(idx []int) T, cfg parallel.Config) error {
	data, sh := v.Data(), v.Shape()
	if data == nil {
		return fmt.Errorf("fill: %w: view has no buffer", ErrInvalidState)
	}
	if len(sh) == 0 {
		if len(data) == 0 {
			return fmt.Errorf("fill: %w", &RangeError{Dim: -1, Index: 0})
		}
		data[0] = fn(nil)
		return nil
	}
	if err := sh.Fits(len(data)); err != nil {
		return fmt.Errorf("fill: %w", err)
	}

	rows, rowLen := sh[0], sh.StrideOf(0)
	inner := sh.Drop()
	parallel.ForRows(rows, rowLen, func(r int) {
		idx := make([]int, len(sh))
		idx[0] = r
		block := data[r*rowLen : (r+1)*rowLen]
		walk(block, inner, func(sub []int, p *T) bool {
			copy(idx[1:], sub)
			*p = fn(idx)
			return true
		})
	}, cfg)
	return nil
}
