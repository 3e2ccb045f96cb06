// Package debounce delays an action until a quiet period without new
// triggers has elapsed. It has no UI dependencies; time is injectable.
package debounce

import (
	"sync"
	"time"
)

// Timer is the subset of *time.Timer the debouncer needs.
type Timer interface {
	Stop() bool
}

// Clock schedules f after d. The real clock is time.AfterFunc.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type realClock struct{}

func (realClock) AfterFunc(d time.Duration, f func()) Timer { return time.AfterFunc(d, f) }

// Option customizes a Debouncer.
type Option[T any] func(*Debouncer[T])

// WithClock replaces the wall clock, typically with a fake in tests.
func WithClock[T any](c Clock) Option[T] {
	return func(d *Debouncer[T]) { d.clock = c }
}

// Debouncer calls fn with the latest triggered value once delay has passed
// without another Trigger. At most one call is in flight per quiet period.
type Debouncer[T any] struct {
	delay time.Duration
	fn    func(T)
	clock Clock

	mu      sync.Mutex
	timer   Timer
	pending bool
	value   T
	seq     uint64
}

// New builds a debouncer calling fn after delay of inactivity.
func New[T any](delay time.Duration, fn func(T), opts ...Option[T]) *Debouncer[T] {
	d := &Debouncer[T]{delay: delay, fn: fn, clock: realClock{}}
	for _, o := range opts {
		o(d)
	}
	return d
}

// Trigger records v and restarts the quiet period.
func (d *Debouncer[T]) Trigger(v T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.value = v
	d.pending = true
	d.seq++
	seq := d.seq
	d.timer = d.clock.AfterFunc(d.delay, func() { d.fire(seq) })
}

// Flush fires immediately if a value is pending. It reports whether fn ran.
func (d *Debouncer[T]) Flush() bool {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
	}
	return d.take(d.seq)
}

// Stop cancels a pending call.
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.pending = false
}

// Pending reports whether a call is scheduled.
func (d *Debouncer[T]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending
}

func (d *Debouncer[T]) fire(seq uint64) {
	d.mu.Lock()
	d.take(seq)
}

// take must be called with d.mu held; it releases the lock before calling fn.
// A timer from a superseded Trigger (seq mismatch) does nothing.
func (d *Debouncer[T]) take(seq uint64) bool {
	if !d.pending || seq != d.seq {
		d.mu.Unlock()
		return false
	}
	v := d.value
	d.pending = false
	d.timer = nil
	d.mu.Unlock()

	d.fn(v)
	return true
}
