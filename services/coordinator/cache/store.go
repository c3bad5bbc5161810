// Package cache holds the coordinator's session-side entity state: a single
// confirmed base per entity kind plus an optimistic overlay for mutations
// still waiting on the store. Confirmed state always wins over optimistic
// state; applying the same change event twice converges to the same result.
package cache

import (
	"sync"

	"github.com/campuspool/campuspool/internal/pkg/models"
)

// Store keeps one entity kind for one session. base holds server-confirmed
// entities keyed by their real id; overlay holds optimistic entries keyed by
// the temp id of the mutation that produced them.
type Store[T any] struct {
	mu      sync.RWMutex
	key     func(T) string
	base    map[string]T
	overlay map[string]T
}

// NewStore creates a store using key to derive an entity's identity
func NewStore[T any](key func(T) string) *Store[T] {
	return &Store[T]{
		key:     key,
		base:    make(map[string]T),
		overlay: make(map[string]T),
	}
}

// ApplyConfirmed folds one server-confirmed change into the base. Map
// semantics make re-applying the same event a no-op, so replayed or
// duplicated feed events converge.
func (s *Store[T]) ApplyConfirmed(op models.ChangeOperation, item T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.key(item)
	switch op {
	case models.ChangeOpDelete:
		delete(s.base, id)
	default:
		s.base[id] = item
	}
}

// ApplyOptimistic records a locally predicted entity under the mutation's
// temp id. It shadows the base entry with the same identity until confirmed
// or rolled back.
func (s *Store[T]) ApplyOptimistic(tempID string, item T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.overlay[tempID] = item
}

// Confirm replaces an optimistic entry with the store's authoritative version
func (s *Store[T]) Confirm(tempID string, item T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.overlay, tempID)
	s.base[s.key(item)] = item
}

// Rollback discards an optimistic entry after a failed mutation
func (s *Store[T]) Rollback(tempID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.overlay, tempID)
}

// Get returns the current view of one entity: the optimistic version when a
// pending mutation shadows it, otherwise the confirmed one.
func (s *Store[T]) Get(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.overlay {
		if s.key(item) == id {
			return item, true
		}
	}
	item, ok := s.base[id]
	return item, ok
}

// Snapshot returns the merged view: all confirmed entities with pending
// optimistic versions layered on top. Optimistic entities with no real id
// yet appear under their temp id.
func (s *Store[T]) Snapshot() map[string]T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	merged := make(map[string]T, len(s.base)+len(s.overlay))
	for id, item := range s.base {
		merged[id] = item
	}
	for tempID, item := range s.overlay {
		id := s.key(item)
		if id == "" || id == zeroUUID {
			id = tempID
		}
		merged[id] = item
	}
	return merged
}

// Replace swaps the whole confirmed base, used when hydrating a session
func (s *Store[T]) Replace(items []T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.base = make(map[string]T, len(items))
	for _, item := range items {
		s.base[s.key(item)] = item
	}
}

// Len reports the number of confirmed entities
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.base)
}

// PendingCount reports the number of unconfirmed optimistic entries
func (s *Store[T]) PendingCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.overlay)
}

const zeroUUID = "00000000-0000-0000-0000-000000000000"
