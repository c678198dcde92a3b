package parallel

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFor(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinChunkSize = 16

	var counter int64
	n := 1000

	For(n, func(_ int) {
		atomic.AddInt64(&counter, 1)
	}, cfg)

	assert.Equal(t, int64(n), counter)
}

func TestForRows(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 4, MinChunkSize: 8}

	rows, rowLen := 37, 5
	seen := make([]int32, rows)

	ForRows(rows, rowLen, func(r int) {
		atomic.AddInt32(&seen[r], 1)
	}, cfg)

	for r, n := range seen {
		assert.Equal(t, int32(1), n, "row %d visited %d times", r, n)
	}
}

func TestForRows_Sequential(t *testing.T) {
	var order []int
	ForRows(5, 100, func(r int) {
		order = append(order, r)
	}, Sequential())

	assert.Equal(t, []int{0, 1, 2, 3, 4}, order)
}

func TestForRows_SmallWork(t *testing.T) {
	// Below MinChunkSize the rows run in order on the caller's goroutine.
	cfg := DefaultConfig()
	cfg.Enabled = true
	cfg.NumWorkers = 8

	var order []int
	ForRows(3, 2, func(r int) {
		order = append(order, r)
	}, cfg)

	assert.Equal(t, []int{0, 1, 2}, order)
}

func TestForRows_Empty(t *testing.T) {
	called := false
	ForRows(0, 10, func(int) { called = true }, DefaultConfig())
	assert.False(t, called)
}

func BenchmarkForRows(b *testing.B) {
	cfg := DefaultConfig()
	rows, rowLen := 1024, 256

	b.Run("parallel", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var sum int64
			ForRows(rows, rowLen, func(r int) {
				atomic.AddInt64(&sum, int64(r))
			}, cfg)
		}
	})

	b.Run("sequential", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var sum int64
			ForRows(rows, rowLen, func(r int) {
				atomic.AddInt64(&sum, int64(r))
			}, Sequential())
		}
	})
}
