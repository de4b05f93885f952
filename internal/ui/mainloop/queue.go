// Package mainloop serializes work onto the single goroutine that owns the
// carousel state. Background goroutines never touch widgets; they post a
// completion back through a Queue and the loop goroutine runs it.
package mainloop

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/bnema/chartdeck/internal/logging"
)

// Queue is a FIFO of tasks drained by the loop goroutine.
type Queue struct {
	ctx      context.Context
	mu       sync.Mutex
	tasks    []func()
	wake     chan struct{}
	inflight atomic.Int64
	closed   bool
}

func NewQueue(ctx context.Context) *Queue {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Queue{
		ctx:  ctx,
		wake: make(chan struct{}, 1),
	}
}

// Post enqueues fn to run on the loop goroutine. Safe from any goroutine.
func (q *Queue) Post(fn func()) {
	if fn == nil {
		return
	}

	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.tasks = append(q.tasks, fn)
	q.mu.Unlock()

	select {
	case q.wake <- struct{}{}:
	default:
	}
}

// Go runs work on a new goroutine and posts done back to the loop once it
// returns. done still runs if work panics.
func (q *Queue) Go(work, done func()) {
	q.inflight.Add(1)
	go func() {
		func() {
			defer logging.Recover(q.ctx, "background work", nil)
			if work != nil {
				work()
			}
		}()
		q.Post(func() {
			defer q.inflight.Add(-1)
			if done != nil {
				done()
			}
		})
	}()
}

// Ready is signalled whenever a task is posted.
func (q *Queue) Ready() <-chan struct{} {
	return q.wake
}

// Drain runs every task queued so far, including tasks posted by the tasks
// themselves, and reports how many ran. Call it from the loop goroutine only.
func (q *Queue) Drain() int {
	ran := 0
	for {
		q.mu.Lock()
		batch := q.tasks
		q.tasks = nil
		q.mu.Unlock()

		if len(batch) == 0 {
			return ran
		}
		for _, fn := range batch {
			q.run(fn)
			ran++
		}
	}
}

// run isolates a panicking task so the rest of the batch still runs.
func (q *Queue) run(fn func()) {
	defer logging.Recover(q.ctx, "loop task", nil)
	fn()
}

// Pending reports queued tasks plus background work that has not posted yet.
func (q *Queue) Pending() int {
	q.mu.Lock()
	n := len(q.tasks)
	q.mu.Unlock()
	return n + int(q.inflight.Load())
}

// Wait blocks until a task is posted or ctx ends.
func (q *Queue) Wait(ctx context.Context) error {
	select {
	case <-q.wake:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// RunUntilIdle drains the queue on the calling goroutine until no task is
// queued and no background work is outstanding. Headless rendering and tests
// use it in place of an interactive loop.
func (q *Queue) RunUntilIdle(ctx context.Context) error {
	for {
		q.Drain()
		if q.Pending() == 0 {
			return nil
		}
		if err := q.Wait(ctx); err != nil {
			return err
		}
	}
}

// Close drops queued tasks and rejects new ones.
func (q *Queue) Close() {
	q.mu.Lock()
	q.closed = true
	q.tasks = nil
	q.mu.Unlock()
}
