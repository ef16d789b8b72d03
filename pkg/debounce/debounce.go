// Package debounce provides a trailing-edge debounce wrapper for collapsing
// bursts of calls into a single deferred invocation, e.g. running validation
// once typing pauses instead of on every keystroke.
package debounce

import (
	"sync"
	"time"
)

type debouncer struct {
	mu    sync.Mutex
	timer *time.Timer
	fn    func()
	wait  time.Duration
}

// New wraps fn so that each call to the returned function cancels any pending
// invocation and schedules a new one to fire after wait with no further
// calls. Trailing-edge only: fn never runs on the leading call, and the only
// way to postpone a pending run is to call the wrapper again.
//
// The pending timer belongs exclusively to the returned wrapper; separate
// wrappers never interfere. The wrapper is safe for concurrent use.
func New(fn func(), wait time.Duration) func() {
	d := &debouncer{fn: fn, wait: wait}
	return d.call
}

func (d *debouncer) call() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}

	d.timer = time.AfterFunc(d.wait, d.fn)
}
