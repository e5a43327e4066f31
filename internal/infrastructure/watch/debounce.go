package watch

import (
	"sync"
	"time"
)

// Debouncer holds a callback until the workspace has been quiet for a full
// settle interval. Editors emit several filesystem events per save; callers
// funnel them all through Trigger and react once.
type Debouncer struct {
	settle time.Duration
	fn     func()

	mu    sync.Mutex
	timer *time.Timer
}

// NewDebouncer creates a debouncer that invokes fn once no Trigger has been
// seen for the settle interval.
func NewDebouncer(settle time.Duration, fn func()) *Debouncer {
	return &Debouncer{settle: settle, fn: fn}
}

// Trigger pushes the deadline out. The first call arms the timer; every
// later call, including ones after Stop or after the callback has fired,
// re-arms it.
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer == nil {
		d.timer = time.AfterFunc(d.settle, d.fn)
		return
	}
	d.timer.Reset(d.settle)
}

// Stop cancels the pending callback, if any. The debouncer stays usable;
// the next Trigger arms a fresh timer.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
