package channel_utils

import (
	"github.com/Tejasai37/papercast/application/ports/outbound"
	"sync"
)

// Dispatch runs task on the worker pool, or on its own goroutine when the
// pool refuses it (saturated or released).
func Dispatch(workerPool outbound.TaskDispatcher, task func()) {
	if err := workerPool.Submit(task); err != nil {
		go task()
	}
}

// MergeChannels fans the given channels into one. The merged channel is closed
// once every input is drained; callers must read it to completion.
func MergeChannels[T any](workerPool outbound.TaskDispatcher, channels ...<-chan T) <-chan T {
	var wg sync.WaitGroup
	merged := make(chan T)

	output := func(c <-chan T) {
		defer wg.Done()
		for val := range c {
			merged <- val
		}
	}

	wg.Add(len(channels))
	for _, c := range channels {
		ch := c
		Dispatch(workerPool, func() {
			output(ch)
		})
	}

	Dispatch(workerPool, func() {
		wg.Wait()
		close(merged)
	})

	return merged
}

// Drain collects every value from ch until it is closed.
func Drain[T any](ch <-chan T) []T {
	values := make([]T, 0)
	for val := range ch {
		values = append(values, val)
	}
	return values
}
