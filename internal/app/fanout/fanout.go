// Package fanout runs a function over a slice with a fixed pool of workers.
// Results come back in input order, one per item, so callers can report
// partial success without correlating indexes themselves.
package fanout

import (
	"context"
	"sync"
)

// Result holds the outcome for the item at the same index of the input.
type Result[R any] struct {
	Value R
	Err   error
}

// Run applies fn to every item using at most maxWorkers goroutines
// (minimum one). Workers pull indexes from a shared queue; once ctx is done,
// items not yet started get ctx.Err() and fn is not called for them. An item
// already running is not interrupted, so fn should watch ctx if it blocks.
//
// Run returns after every item has a result. An empty input yields an empty,
// non-nil slice.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	results := make([]Result[R], len(items))
	if len(items) == 0 {
		return results
	}

	workers := min(max(maxWorkers, 1), len(items))

	queue := make(chan int, len(items))
	for i := range items {
		queue <- i
	}
	close(queue)

	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		go func() {
			defer wg.Done()
			for idx := range queue {
				if err := ctx.Err(); err != nil {
					results[idx] = Result[R]{Err: err}
					continue
				}
				val, err := fn(ctx, items[idx])
				results[idx] = Result[R]{Value: val, Err: err}
			}
		}()
	}

	wg.Wait()
	return results
}

// Count splits results into successes and failures.
func Count[R any](results []Result[R]) (ok, failed int) {
	for _, r := range results {
		if r.Err != nil {
			failed++
		} else {
			ok++
		}
	}
	return ok, failed
}
