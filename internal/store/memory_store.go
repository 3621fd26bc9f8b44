package store

import (
	"sync"

	"github.com/preston-bernstein/football-admin-service/internal/domain/fixtures"
)

// MemoryStore keeps a thread-safe snapshot of fixtures in memory, preserving
// the order in which the backend returned them.
type MemoryStore struct {
	mu       sync.RWMutex
	order    []string
	fixtures map[string]fixtures.Fixture
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		fixtures: make(map[string]fixtures.Fixture),
	}
}

// ListFixtures returns a copy of the current fixtures in backend order.
func (s *MemoryStore) ListFixtures() []fixtures.Fixture {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]fixtures.Fixture, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, s.fixtures[id])
	}
	return result
}

// GetFixture retrieves a fixture by ID.
func (s *MemoryStore) GetFixture(id string) (fixtures.Fixture, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	f, ok := s.fixtures[id]
	return f, ok
}

// SetFixtures replaces the existing fixtures with a new snapshot.
func (s *MemoryStore) SetFixtures(list []fixtures.Fixture) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.order = make([]string, 0, len(list))
	s.fixtures = make(map[string]fixtures.Fixture, len(list))
	for _, f := range list {
		if _, dup := s.fixtures[f.ID]; !dup {
			s.order = append(s.order, f.ID)
		}
		s.fixtures[f.ID] = f
	}
}

// Update applies fn to the cached fixture under the write lock. It reports
// false, leaving the store untouched, when id is unknown.
func (s *MemoryStore) Update(id string, fn func(fixtures.Fixture) fixtures.Fixture) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.fixtures[id]
	if !ok {
		return false
	}
	s.fixtures[id] = fn(f)
	return true
}

// Delete drops a cached fixture and reports whether it was present.
func (s *MemoryStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.fixtures[id]; !ok {
		return false
	}
	delete(s.fixtures, id)
	for i, known := range s.order {
		if known == id {
			s.order = append(s.order[:i:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// Len reports how many fixtures are cached.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}
