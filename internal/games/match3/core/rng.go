package core

import (
	"math/rand"
	"time"
)

// Source is the random source the engine draws from.
// Intn returns a uniform integer in [0, n).
// *math/rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// NewSource returns a seeded Source. The same seed yields the same games.
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// Clock supplies the current time for fever and crazy windows.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock backed by time.Now.
func SystemClock() Clock {
	return systemClock{}
}

// ManualClock is a Clock that only moves when told to.
// Used by tests and headless simulation.
type ManualClock struct {
	now time.Time
}

// NewManualClock creates a ManualClock starting at start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the current manual time.
func (c *ManualClock) Now() time.Time {
	return c.now
}

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}
