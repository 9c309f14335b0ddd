// Package clock provides the wall clock used by time-dependent rules.
package clock

import (
	"sync"
	"time"

	"localdrop/internal/domain/service"
)

type realClock struct{}

// NewRealClock returns a clock reading the system time in UTC.
func NewRealClock() service.Clock {
	return realClock{}
}

func (realClock) Now() time.Time {
	return time.Now().UTC()
}

// FixedClock is a settable clock for tests and local tooling.
type FixedClock struct {
	mu          sync.Mutex
	currentTime time.Time
}

// NewFixedClock returns a clock stopped at t.
func NewFixedClock(t time.Time) *FixedClock {
	return &FixedClock{currentTime: t}
}

func (c *FixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.currentTime
}

// Set moves the clock to t.
func (c *FixedClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.currentTime = t
}

// Add advances the clock by d.
func (c *FixedClock) Add(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.currentTime = c.currentTime.Add(d)
}
