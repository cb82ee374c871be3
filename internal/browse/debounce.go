package browse

import (
	"sync"
	"time"
)

// DefaultDebounce is the quiet period applied to search-as-you-type input.
const DefaultDebounce = 500 * time.Millisecond

// Debouncer coalesces rapid successive triggers into one callback after a
// quiet period. A new trigger cancels the pending one; Stop cancels any
// pending timer so nothing fires after teardown.
type Debouncer struct {
	mu      sync.Mutex
	delay   time.Duration
	timer   *time.Timer
	stopped bool
}

// NewDebouncer builds a debouncer with the given delay.
func NewDebouncer(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	return &Debouncer{delay: delay}
}

// Trigger schedules fn after the quiet period, replacing any pending call.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

// Stop cancels any pending call and rejects further triggers.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
