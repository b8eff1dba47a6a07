// Package debounce coalesces rapid event bursts into a single trailing call.
// The config watcher uses it to fold editor write storms into one reload.
package debounce

import (
	"sync"
	"time"
)

// Debouncer runs a function after a quiet period has elapsed
type Debouncer struct {
	mu       sync.Mutex
	timer    *time.Timer
	duration time.Duration
}

// New creates a debouncer with the given quiet period
func New(duration time.Duration) *Debouncer {
	return &Debouncer{
		duration: duration,
	}
}

// Debounce schedules fn to run once the quiet period passes without
// another call. A newer call replaces the pending one, so only the
// trailing function within a burst survives.
func (d *Debouncer) Debounce(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.duration, fn)
}

// Cancel discards any pending call. Safe to call repeatedly and after
// the timer already fired.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Immediate cancels any pending call and runs fn right away
func (d *Debouncer) Immediate(fn func()) {
	d.Cancel()
	fn()
}
