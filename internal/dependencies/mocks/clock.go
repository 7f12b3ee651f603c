package mocks

import (
	"sync"
	"time"

	"github.com/kefmc/tournament-engine/internal/dependencies/clock"
)

// MockClock is a settable Clock. With a non-zero Step every reading moves
// the clock on, which keeps millisecond ids distinct across calls.
type MockClock struct {
	mu      sync.Mutex
	current time.Time
	step    time.Duration
}

var _ clock.Clock = (*MockClock)(nil)

// NewMockClock creates a MockClock set to t
func NewMockClock(t time.Time) *MockClock {
	return &MockClock{current: t}
}

// Now returns the mocked time, then applies the step
func (c *MockClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.current
	c.current = c.current.Add(c.step)
	return now
}

// Advance moves the clock forward by d
func (c *MockClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = c.current.Add(d)
}

// SetStep makes every reading advance the clock by d
func (c *MockClock) SetStep(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.step = d
}
