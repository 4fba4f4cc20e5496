package tierstore

import (
	"sync"

	"github.com/alexanderramin/tierboard/internal/domain"
)

// Store holds the current tier collection. Apply is the commit primitive for
// transformations; Replace swaps in a whole collection when loading a new
// board. It has a single writer and any number of readers.
type Store struct {
	mu      sync.RWMutex
	tiers   domain.Collection
	version uint64
}

// New seeds a store with a private copy of initial.
func New(initial domain.Collection) *Store {
	return &Store{tiers: initial.Clone()}
}

// Current returns the committed collection without copying. Callers must
// treat it as read-only; transformations in this package never mutate it.
func (s *Store) Current() domain.Collection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tiers
}

// Snapshot returns a deep copy of the committed collection.
func (s *Store) Snapshot() domain.Collection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tiers.Clone()
}

// Version counts commits. Replace and applied transformations bump it;
// transformations that report no change do not.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// Replace commits next as the observed state without consulting the current one.
func (s *Store) Replace(next domain.Collection) {
	s.mu.Lock()
	s.tiers = next
	s.version++
	s.mu.Unlock()
}

// Apply runs fn against the current collection and commits its result when
// fn reports that it applied. The read and the commit happen under one lock,
// so no intermediate state is observable.
func (s *Store) Apply(fn func(domain.Collection) (domain.Collection, bool)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, ok := fn(s.tiers)
	if !ok {
		return false
	}
	s.tiers = next
	s.version++
	return true
}
