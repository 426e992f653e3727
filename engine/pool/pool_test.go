package pool

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
)

func TestParallelForCoversAllElements(t *testing.T) {
	p := New(4)
	defer p.Close()

	const n = 1000
	var touched [n]int32
	err := p.ParallelFor(context.Background(), n, func(start, end int) error {
		for i := start; i < end; i++ {
			atomic.AddInt32(&touched[i], 1)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("ParallelFor: %v", err)
	}
	for i, v := range touched {
		if v != 1 {
			t.Fatalf("element %d touched %d times, want exactly 1", i, v)
		}
	}
}

func TestParallelForPropagatesFirstError(t *testing.T) {
	p := New(4)
	defer p.Close()

	boom := errors.New("boom")
	err := p.ParallelFor(context.Background(), 1000, func(start, end int) error {
		if start == 0 {
			return boom
		}
		return nil
	})
	if !errors.Is(err, boom) {
		t.Fatalf("ParallelFor error = %v, want %v", err, boom)
	}
}

func TestParallelForEmptyRange(t *testing.T) {
	p := New(2)
	defer p.Close()
	called := false
	if err := p.ParallelFor(context.Background(), 0, func(int, int) error {
		called = true
		return nil
	}); err != nil {
		t.Fatalf("ParallelFor: %v", err)
	}
	if called {
		t.Error("fn must not be called for an empty range")
	}
}

func TestBucketSizeAlignment(t *testing.T) {
	got := bucketSize(1000, 4)
	if got%bucketAlign != 0 {
		t.Errorf("bucketSize(1000, 4) = %d, not a multiple of %d", got, bucketAlign)
	}
}

func TestNewEnforcesMinimumWorkers(t *testing.T) {
	p := New(1)
	defer p.Close()
	if p.NumWorkers() < 2 {
		t.Errorf("NumWorkers() = %d, want >= 2", p.NumWorkers())
	}
}
