package mdspan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fiveDims = []int{100, 8, 5, 25, 2}

func TestFiveDimensionalOversizeRejected(t *testing.T) {
	_, err := NewDynSpan(seq(1000), fiveDims...)
	assert.ErrorIs(t, err, ErrInvalidShape)
}

func TestFiveDimensionalSpanAtMatchesSub(t *testing.T) {
	if testing.Short() {
		t.Skip("walks 200000 elements")
	}
	s := MustSpan(seq(200000), fiveDims...)

	checked := 0
	s.Walk(func(idx []int, v *int) bool {
		a, b, c, d, e := idx[0], idx[1], idx[2], idx[3], idx[4]
		p, err := s.At(a, b, c, d, e)
		if err != nil || p != s.Sub(a).Sub(b).Sub(c).Sub(d).Elem(e) || p != v {
			t.Errorf("mismatch at %v (err %v)", idx, err)
			return false
		}
		checked++
		return true
	})
	require.Equal(t, 200000, checked)
}

func TestFiveDimensionalDynSpanAtMatchesSub(t *testing.T) {
	if testing.Short() {
		t.Skip("walks 200000 elements")
	}
	d, err := NewDynSpan(seq(200000), fiveDims...)
	require.NoError(t, err)

	checked := 0
	d.Walk(func(idx []int, v *int) bool {
		p, err := d.At(idx...)
		if err != nil || p != v {
			t.Errorf("At%v: %v", idx, err)
			return false
		}

		sub := d
		for _, i := range idx[:len(idx)-1] {
			if sub, err = sub.Sub(i); err != nil {
				t.Errorf("Sub%v: %v", idx, err)
				return false
			}
		}
		if sub.Elem(idx[len(idx)-1]) != p {
			t.Errorf("chained access differs at %v", idx)
			return false
		}
		checked++
		return true
	})
	require.Equal(t, 200000, checked)
}

func TestFiveDimensionalOutOfRange(t *testing.T) {
	s := MustSpan(seq(200000), fiveDims...)
	for dim := range fiveDims {
		idx := make([]int, len(fiveDims))
		idx[dim] = fiveDims[dim]
		_, err := s.At(idx...)
		assert.ErrorIs(t, err, ErrOutOfRange, "dimension %d", dim)

		idx[dim] = -1
		_, err = s.At(idx...)
		assert.ErrorIs(t, err, ErrOutOfRange, "dimension %d", dim)
	}
}
