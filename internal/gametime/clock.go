// Package gametime provides the game clock. Game time is decoupled
// from wall time: the runner advances it at a configurable speed, and
// large jumps (offline catch-up, fast-forward) are ordinary advances.
package gametime

import (
	"sync"
	"time"
)

// Clock is an advanceable game-time source.
type Clock struct {
	mu      sync.Mutex
	current time.Time
}

// NewClock creates a clock starting at the given game time.
func NewClock(start time.Time) *Clock {
	return &Clock{current: start}
}

// Now returns the current game time.
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Advance moves game time forward by d and returns the new time.
// Negative advances are ignored: game time never runs backwards.
func (c *Clock) Advance(d time.Duration) time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	if d > 0 {
		c.current = c.current.Add(d)
	}
	return c.current
}

// AdvanceDays moves game time forward by whole days.
func (c *Clock) AdvanceDays(days int) time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	if days > 0 {
		c.current = c.current.AddDate(0, 0, days)
	}
	return c.current
}

// SameDay reports whether two timestamps fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// SameMonth reports whether two timestamps fall in the same calendar
// month.
func SameMonth(a, b time.Time) bool {
	ay, am, _ := a.Date()
	by, bm, _ := b.Date()
	return ay == by && am == bm
}
