package parallel

import (
	"errors"
	"runtime"
	"sync"
)

// ErrPoolClosed is returned by MapOrdered when the pool refused a task
// because it was already closed.
var ErrPoolClosed = errors.New("parallel: pool is closed")

// ResolveThreadCount maps the user-facing -t/--threads flag to a worker
// count: 0 means "all cores", any positive value is used as-is, anything
// else defaults to 1 (spec §5).
func ResolveThreadCount(requested int) int {
	switch {
	case requested == 0:
		return runtime.NumCPU()
	case requested > 0:
		return requested
	default:
		return 1
	}
}

// MapOrdered runs fn(i, items[i]) across pool's workers and returns results
// in the original index order, restoring order after a content-free split
// (spec §5: path/walk body tokenisation is "a pure map with no data
// dependence; results are gathered into an ordered vector before the
// sequential offset-walk"; the same shape evaluates independent
// (coverage, quorum) growth pairs).
func MapOrdered[T any, R any](pool *WorkerPool, items []T, fn func(i int, item T) (R, error)) ([]R, error) {
	results := make([]R, len(items))
	errs := make([]error, len(items))
	var wg sync.WaitGroup
	wg.Add(len(items))
	for i, item := range items {
		i, item := i, item
		if ok := pool.Submit(func() {
			defer wg.Done()
			r, err := fn(i, item)
			results[i] = r
			errs[i] = err
		}); !ok {
			errs[i] = ErrPoolClosed
			wg.Done()
		}
	}
	wg.Wait()
	for _, e := range errs {
		if e != nil {
			return nil, e
		}
	}
	return results, nil
}
