package clock

import (
	"time"
)

// Clock abstracts time to make timestamps reproducible in unit tests.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (c systemClock) Now() time.Time {
	return time.Now()
}

// FrozenClock returns the same time until moved forward.
type FrozenClock struct {
	now time.Time
}

// FastForward moves the frozen time.
func (c *FrozenClock) FastForward(d time.Duration) time.Time {
	c.now = c.now.Add(d)
	return c.now
}

func (c *FrozenClock) Now() time.Time {
	return c.now
}

var current Clock = systemClock{}

// Now is the same as time.Now() but makes possible to control time from unit tests.
func Now() time.Time {
	return current.Now()
}

// FreezeAt stops the time at the given point.
func FreezeAt(point time.Time) *FrozenClock {
	frozen := &FrozenClock{now: point}
	current = frozen
	return frozen
}

// Freeze stops the time now.
// Times are truncated to the second to survive a roundtrip in the database.
func Freeze() *FrozenClock {
	return FreezeAt(time.Now().Truncate(time.Second))
}

// Unfreeze restores the system clock.
func Unfreeze() {
	current = systemClock{}
}
