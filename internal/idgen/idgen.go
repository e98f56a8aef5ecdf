// Package idgen produces identifiers for planners, day workouts, students and users.
package idgen

import (
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Generator returns a new unique opaque identifier on every call.
type Generator interface {
	NewID() string
}

// ObjectIDGenerator issues MongoDB ObjectID hex strings. An ObjectID combines a
// timestamp, a per-process random value and an incrementing counter, so ids
// created within the same second are still distinct.
type ObjectIDGenerator struct{}

func (ObjectIDGenerator) NewID() string {
	return primitive.NewObjectID().Hex()
}

// Sequence issues prefix-1, prefix-2, ... and is meant for tests and fixtures.
type Sequence struct {
	mu     sync.Mutex
	prefix string
	next   int
}

func NewSequence(prefix string) *Sequence {
	return &Sequence{prefix: prefix}
}

func (s *Sequence) NewID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	return fmt.Sprintf("%s-%d", s.prefix, s.next)
}
