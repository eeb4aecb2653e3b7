package mocks

import (
	"fmt"

	"github.com/mcoot/connectfour-go/internal/dependencies/random"
)

// MockRandom is a mock implementation of Random for testing
type MockRandom struct {
	// UUIDResults is a queue of results to return from UUID
	UUIDResults []string
	uuidIndex   int
	generated   int
}

// Ensure MockRandom implements Random
var _ random.Random = (*MockRandom)(nil)

// NewMockRandom creates a new MockRandom
func NewMockRandom() *MockRandom {
	return &MockRandom{}
}

// UUID returns the next queued result, or a sequential fallback once the
// queue is drained
func (r *MockRandom) UUID() string {
	if r.uuidIndex < len(r.UUIDResults) {
		result := r.UUIDResults[r.uuidIndex]
		r.uuidIndex++
		return result
	}
	r.generated++
	return fmt.Sprintf("mock-uuid-%d", r.generated)
}

// QueueUUID adds values to the UUID result queue
func (r *MockRandom) QueueUUID(values ...string) {
	r.UUIDResults = append(r.UUIDResults, values...)
}
