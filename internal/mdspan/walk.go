package mdspan

import "github.com/born-ml/mdspan/internal/shape"

// Walk calls fn for every index tuple of s in row-major order, together with
// a pointer to the addressed element. Walking stops when fn returns false.
//
// idx is reused between calls and must not be retained. Walking stops at the
// end of the bound buffer if it holds fewer than Len elements.
func (s Span[T]) Walk(fn func(idx []int, v *T) bool) {
	walk(s.data, s.shape, fn)
}

// Walk calls fn for every index tuple of d in row-major order.
// See Span.Walk.
func (d DynSpan[T]) Walk(fn func(idx []int, v *T) bool) {
	walk(d.data, d.shape, fn)
}

// walk exploits row-major contiguity: the flat offset advances by one for
// every step of the odometer.
func walk[T any](data []T, sh shape.Shape, fn func(idx []int, v *T) bool) {
	n := min(sh.NumElements(), len(data))
	if n == 0 {
		return
	}
	idx := make([]int, len(sh))
	for off := range n {
		if !fn(idx, &data[off]) {
			return
		}
		for d := len(sh) - 1; d >= 0; d-- {
			idx[d]++
			if idx[d] < sh[d] {
				break
			}
			idx[d] = 0
		}
	}
}
