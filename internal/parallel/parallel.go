// Package parallel fans row-wise work over a view's leading dimension out to
// worker goroutines.
//
// Rows of a row-major view occupy disjoint ranges of the buffer, so workers
// that each write only their own rows need no further synchronization.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Number of worker goroutines to use.
	MinChunkSize int  // Minimum elements per goroutine to avoid overhead.
}

// DefaultConfig returns sensible defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 4096,
	}
}

// Sequential returns a config that runs everything on the calling goroutine.
func Sequential() Config {
	return Config{NumWorkers: 1, MinChunkSize: 1}
}

// For executes f(i) for i in [0, n) with optional parallelism.
// Falls back to sequential execution if parallelism is disabled or n is too small.
func For(n int, f func(i int), cfg Config) {
	ForRows(n, 1, f, cfg)
}

// ForRows executes f(row) for every row in [0, rows), where each row covers
// rowLen elements. Rows are grouped so that every goroutine handles at least
// MinChunkSize elements.
func ForRows(rows, rowLen int, f func(row int), cfg Config) {
	rowLen = max(rowLen, 1)
	workers := max(cfg.NumWorkers, 1)
	if !cfg.Enabled || workers == 1 || rows < 2 || rows*rowLen < cfg.MinChunkSize {
		for r := 0; r < rows; r++ {
			f(r)
		}
		return
	}

	minRows := max((cfg.MinChunkSize+rowLen-1)/rowLen, 1)
	chunk := max((rows+workers-1)/workers, minRows)

	var wg sync.WaitGroup
	for start := 0; start < rows; start += chunk {
		end := min(start+chunk, rows)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for r := s; r < e; r++ {
				f(r)
			}
		}(start, end)
	}
	wg.Wait()
}
