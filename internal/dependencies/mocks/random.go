package mocks

import (
	"github.com/kefmc/tournament-engine/internal/dependencies/random"
)

// MockRandom replays queued draws in order and records every bound it was
// asked for. A drained queue yields 0.
type MockRandom struct {
	queue []int
	next  int

	// IntnBounds records the n passed to every Intn call
	IntnBounds []int
}

var _ random.Random = (*MockRandom)(nil)

// NewMockRandom creates a MockRandom preloaded with draws
func NewMockRandom(draws ...int) *MockRandom {
	return &MockRandom{queue: draws}
}

// Intn returns the next queued draw
func (r *MockRandom) Intn(n int) int {
	r.IntnBounds = append(r.IntnBounds, n)
	if r.next >= len(r.queue) {
		return 0
	}
	v := r.queue[r.next]
	r.next++
	return v
}

// QueueIntn appends draws to the queue
func (r *MockRandom) QueueIntn(values ...int) {
	r.queue = append(r.queue, values...)
}

// Remaining reports how many queued draws are left
func (r *MockRandom) Remaining() int {
	return len(r.queue) - r.next
}
