// Package worker provides a generic fan-out/fan-in pool for per-file
// analysis. Files are independent (no shared mutable state beyond read-only
// deny-lists), so scans parallelize safely; results come back in input order
// so parallel and sequential runs produce byte-identical reports.
package worker

import (
	"runtime"
	"sync"
)

// Pool fans work items out to a fixed number of goroutines and collects
// results preserving the input order.
type Pool[In, Out any] struct {
	concurrency int
}

// NewPool creates a pool with the given concurrency. Zero or negative means
// one worker per CPU.
func NewPool[In, Out any](concurrency int) *Pool[In, Out] {
	if concurrency <= 0 {
		concurrency = runtime.NumCPU()
	}
	return &Pool[In, Out]{concurrency: concurrency}
}

// Map applies fn to every item and returns the outputs in input order. fn is
// responsible for capturing its own failures in Out; the pool never drops or
// reorders items.
func (p *Pool[In, Out]) Map(items []In, fn func(In) Out) []Out {
	if len(items) == 0 {
		return nil
	}

	workers := p.concurrency
	if workers > len(items) {
		workers = len(items)
	}

	results := make([]Out, len(items))
	jobs := make(chan int, len(items))
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = fn(items[i])
			}
		}()
	}

	for i := range items {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return results
}
