package testutil

import (
	"github.com/preston-bernstein/football-admin-service/internal/domain/fixtures"
	"github.com/preston-bernstein/football-admin-service/internal/store"
)

// NewStoreWithFixtures builds an in-memory store preloaded with fixtures.
func NewStoreWithFixtures(list []fixtures.Fixture) *store.MemoryStore {
	ms := store.NewMemoryStore()
	if len(list) > 0 {
		ms.SetFixtures(list)
	}
	return ms
}
