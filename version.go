package onceguard

import (
	"sync"

	"github.com/jonboulle/clockwork"
)

// VersionClock issues strictly increasing wall-clock versions, suitable
// as the version argument of Register and Do. Ties within one millisecond
// are broken by incrementing, so no two calls return the same value and
// no value is ever zero.
type VersionClock struct {
	clock clockwork.Clock
	mu    sync.Mutex
	last  int64
}

// NewVersionClock creates a VersionClock on the given clock.
// A nil clock means real time; tests pass a clockwork fake.
func NewVersionClock(clock clockwork.Clock) *VersionClock {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &VersionClock{clock: clock}
}

// Next returns the next version: the current Unix time in milliseconds,
// or one past the previously issued version if the clock has not moved.
func (c *VersionClock) Next() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	v := c.clock.Now().UnixMilli()
	if v <= c.last {
		v = c.last + 1
	}
	c.last = v
	return v
}
