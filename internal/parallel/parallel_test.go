package parallel

import (
	"math"
	"sync/atomic"
	"testing"
)

func TestFor_CoversAllIndices(t *testing.T) {
	const n = 1000

	cfg := Config{Workers: 4, MinChunk: 8}
	counts := make([]int32, n)
	For(n, cfg, func(i int) {
		atomic.AddInt32(&counts[i], 1)
	})

	for i, c := range counts {
		if c != 1 {
			t.Fatalf("index %d visited %d times, want 1", i, c)
		}
	}
}

func TestFor_SequentialFallback(t *testing.T) {
	// Loops below MinChunk must run on the calling goroutine, in order.
	cfg := Config{Workers: 4, MinChunk: 64}
	var order []int
	For(10, cfg, func(i int) {
		order = append(order, i)
	})

	if len(order) != 10 {
		t.Fatalf("visited %d indices, want 10", len(order))
	}
	for i, v := range order {
		if v != i {
			t.Fatalf("order[%d] = %d, want %d", i, v, i)
		}
	}
}

func TestSum_MatchesSequential(t *testing.T) {
	const n = 10_000
	f := func(i int) float64 { return float64(i%7) * 0.25 }

	var want float64
	for i := 0; i < n; i++ {
		want += f(i)
	}

	got := Sum(n, Config{Workers: 8, MinChunk: 16}, f)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Sum = %v, want %v", got, want)
	}
}

func TestSum_Empty(t *testing.T) {
	got := Sum(0, Default(), func(int) float64 { return 1 })
	if got != 0 {
		t.Errorf("Sum over empty range = %v, want 0", got)
	}
}

func TestSum_SingleWorker(t *testing.T) {
	got := Sum(100, Config{Workers: 1, MinChunk: 1}, func(i int) float64 { return 1 })
	if got != 100 {
		t.Errorf("Sum = %v, want 100", got)
	}
}
