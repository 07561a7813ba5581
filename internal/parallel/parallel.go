// Package parallel provides chunked data-parallel loops for the
// numerical kernels in this module.
//
// The kernels are associative reductions (gradient sums, squared-error
// sums) and independent per-element loops, so iterations may run in
// any order. Callers must tolerate floating-point differences caused
// by reduction order.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls how loops are split across goroutines.
type Config struct {
	Workers  int // number of goroutines; values <= 1 force sequential execution
	MinChunk int // loops shorter than this run sequentially
}

// Default returns a configuration sized to the available CPUs.
func Default() Config {
	return Config{
		Workers:  runtime.NumCPU(),
		MinChunk: 64,
	}
}

// For executes f(i) for i in [0, n), splitting the range across
// goroutines when the loop is large enough to pay for the overhead.
func For(n int, cfg Config, f func(i int)) {
	if cfg.Workers <= 1 || n < cfg.MinChunk {
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	chunk := max((n+cfg.Workers-1)/cfg.Workers, cfg.MinChunk)

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				f(i)
			}
		}(start, end)
	}
	wg.Wait()
}

// Sum reduces f(i) for i in [0, n) to a single total. Each goroutine
// accumulates a partial sum over its chunk; the partials are combined
// after all chunks finish. The order in which terms are added is
// unspecified.
func Sum(n int, cfg Config, f func(i int) float64) float64 {
	if cfg.Workers <= 1 || n < cfg.MinChunk {
		var total float64
		for i := 0; i < n; i++ {
			total += f(i)
		}
		return total
	}

	chunk := max((n+cfg.Workers-1)/cfg.Workers, cfg.MinChunk)
	numChunks := (n + chunk - 1) / chunk
	partials := make([]float64, numChunks)

	var wg sync.WaitGroup
	for c := 0; c < numChunks; c++ {
		start := c * chunk
		end := min(start+chunk, n)
		wg.Add(1)
		go func(c, s, e int) {
			defer wg.Done()
			var sum float64
			for i := s; i < e; i++ {
				sum += f(i)
			}
			partials[c] = sum
		}(c, start, end)
	}
	wg.Wait()

	var total float64
	for _, p := range partials {
		total += p
	}
	return total
}
