package search

import (
	"sync"
	"time"
)

// Debouncer defers a dispatch until calls have been quiet for a fixed window.
// Each Call replaces the pending value and restarts the single timer, so only
// the last value of a burst is delivered. There is never more than one
// pending timer.
type Debouncer struct {
	wait     time.Duration
	dispatch func(string)

	mu      sync.Mutex
	timer   *time.Timer
	gen     uint64 // bumped on every Call/Stop/Flush; stale timers compare and bail
	pending bool
	value   string
}

// NewDebouncer returns a Debouncer that calls dispatch with the latest value
// once wait has elapsed without a newer Call. dispatch runs on its own
// goroutine, never while the Debouncer's lock is held.
func NewDebouncer(wait time.Duration, dispatch func(string)) *Debouncer {
	return &Debouncer{wait: wait, dispatch: dispatch}
}

// Call schedules value for dispatch, superseding any pending value.
func (d *Debouncer) Call(value string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	gen := d.gen
	d.value = value
	d.pending = true
	d.timer = time.AfterFunc(d.wait, func() { d.fire(gen) })
}

// Pending reports whether a dispatch is scheduled.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending
}

// Flush dispatches the pending value immediately, on the caller's goroutine.
// It is a no-op when nothing is pending.
func (d *Debouncer) Flush() {
	value, ok := d.take(0, true)
	if ok {
		d.dispatch(value)
	}
}

// Stop cancels any pending dispatch.
func (d *Debouncer) Stop() {
	d.take(0, true)
}

func (d *Debouncer) fire(gen uint64) {
	value, ok := d.take(gen, false)
	if ok {
		d.dispatch(value)
	}
}

// take clears the pending value and returns it. Timer callbacks pass their
// generation; if a newer Call has happened since, they get nothing.
func (d *Debouncer) take(gen uint64, force bool) (string, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.pending || (!force && gen != d.gen) {
		return "", false
	}
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.gen++
	d.pending = false
	return d.value, true
}
