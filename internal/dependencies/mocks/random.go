package mocks

import (
	"github.com/ruzibekov24/farosat-gramm-bot/internal/dependencies/random"
)

// MockRandom is a mock implementation of Random for testing
type MockRandom struct {
	// IntnResults is a queue of results to return from Intn
	IntnResults []int
	intnIndex   int

	// IntBetweenResults is a queue of results to return from IntBetween
	IntBetweenResults []int
	intBetweenIndex   int
}

// Ensure MockRandom implements Random
var _ random.Random = (*MockRandom)(nil)

// NewMockRandom creates a new MockRandom
func NewMockRandom() *MockRandom {
	return &MockRandom{}
}

// Intn returns the next queued result, or 0 if none remaining
func (r *MockRandom) Intn(n int) int {
	if r.intnIndex >= len(r.IntnResults) {
		return 0
	}
	result := r.IntnResults[r.intnIndex]
	r.intnIndex++
	return result
}

// IntBetween returns the next queued result, or min if none remaining.
// Queued values are returned as-is; tests are responsible for queueing
// values inside the interval they exercise.
func (r *MockRandom) IntBetween(min, max int) int {
	if r.intBetweenIndex >= len(r.IntBetweenResults) {
		return min
	}
	result := r.IntBetweenResults[r.intBetweenIndex]
	r.intBetweenIndex++
	return result
}

// QueueIntn adds values to the Intn result queue
func (r *MockRandom) QueueIntn(values ...int) {
	r.IntnResults = append(r.IntnResults, values...)
}

// QueueIntBetween adds values to the IntBetween result queue
func (r *MockRandom) QueueIntBetween(values ...int) {
	r.IntBetweenResults = append(r.IntBetweenResults, values...)
}

// Reset clears all queued results
func (r *MockRandom) Reset() {
	r.IntnResults = nil
	r.intnIndex = 0
	r.IntBetweenResults = nil
	r.intBetweenIndex = 0
}
