package resync

import (
	"sync"
	"sync/atomic"
)

// Once is a sync.Once that can be reset.
// Lazy singletons use it so that unit tests can force them to be recreated.
type Once struct {
	m    sync.Mutex
	done atomic.Bool
}

// Do calls f if and only if Do has not been invoked since the last Reset.
func (o *Once) Do(f func()) {
	if o.done.Load() {
		return
	}
	o.m.Lock()
	defer o.m.Unlock()
	if !o.done.Load() {
		defer o.done.Store(true)
		f()
	}
}

// Reset makes the next call to Do run its function again.
func (o *Once) Reset() {
	o.m.Lock()
	defer o.m.Unlock()
	o.done.Store(false)
}
