package utils

import (
	"context"
	"sync"

	"github.com/CPU-commits/RedInclusion/res"
	"golang.org/x/sync/semaphore"
)

// Runs do for every index with at most semWeight goroutines alive.
// The first error stops new work and is returned once all started work ends.
func Concurrency(
	semWeight int64,
	count int,
	do func(index int, setError func(errRes *res.ErrorRes)),
) *res.ErrorRes {
	var wg sync.WaitGroup
	var once sync.Once
	var firstErr *res.ErrorRes

	sem := semaphore.NewWeighted(semWeight)
	// Ctx with cancel if error
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	setError := func(errRes *res.ErrorRes) {
		once.Do(func() {
			firstErr = errRes
			cancel()
		})
	}

	for i := 0; i < count; i++ {
		if err := sem.Acquire(ctx, 1); err != nil {
			break
		}
		wg.Add(1)
		go func(index int) {
			defer wg.Done()
			// Free semaphore
			defer sem.Release(1)

			do(index, setError)
		}(i)
	}
	wg.Wait()
	return firstErr
}
