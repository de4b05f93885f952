package mainloop

// Lazy is a value initialized at most once on a background goroutine.
// Get and the callbacks it schedules run on the loop goroutine, so waiters
// need no locking of their own.
type Lazy[T any] struct {
	queue    *Queue
	init     func() (T, error)
	started  bool
	resolved bool
	value    T
	err      error
	waiters  []func(T, error)
}

func NewLazy[T any](queue *Queue, init func() (T, error)) *Lazy[T] {
	return &Lazy[T]{queue: queue, init: init}
}

// Get calls cb with the value once it is available. When the value is already
// resolved cb runs immediately; otherwise it runs from the queue.
func (l *Lazy[T]) Get(cb func(T, error)) {
	if l.resolved {
		if cb != nil {
			cb(l.value, l.err)
		}
		return
	}

	if cb != nil {
		l.waiters = append(l.waiters, cb)
	}
	if l.started {
		return
	}
	l.started = true

	var (
		value T
		err   error
	)
	l.queue.Go(func() {
		value, err = l.init()
	}, func() {
		l.value, l.err, l.resolved = value, err, true
		waiters := l.waiters
		l.waiters = nil
		for _, w := range waiters {
			w(value, err)
		}
	})
}

// Peek returns the value and its load error once resolved. ok is false
// while the load is pending or has not started.
func (l *Lazy[T]) Peek() (value T, ok bool, err error) {
	return l.value, l.resolved, l.err
}
