package store

import (
	"testing"

	"github.com/preston-bernstein/football-admin-service/internal/domain/fixtures"
)

func TestMemoryStoreSetAndGet(t *testing.T) {
	s := NewMemoryStore()

	s.SetFixtures([]fixtures.Fixture{
		{ID: "1", Venue: "North Field"},
		{ID: "2", Venue: "South Field"},
	})

	if got := len(s.ListFixtures()); got != 2 {
		t.Fatalf("expected 2 fixtures, got %d", got)
	}

	f, ok := s.GetFixture("1")
	if !ok {
		t.Fatalf("expected to find fixture with id 1")
	}
	if f.Venue != "North Field" {
		t.Fatalf("unexpected venue %s", f.Venue)
	}
}

func TestMemoryStoreKeepsBackendOrder(t *testing.T) {
	s := NewMemoryStore()
	s.SetFixtures([]fixtures.Fixture{{ID: "c"}, {ID: "a"}, {ID: "b"}, {ID: "a"}})

	list := s.ListFixtures()
	if len(list) != 3 || s.Len() != 3 {
		t.Fatalf("expected duplicates collapsed to 3, got %d", len(list))
	}
	if list[0].ID != "c" || list[1].ID != "a" || list[2].ID != "b" {
		t.Fatalf("unexpected order %+v", list)
	}
}

func TestMemoryStoreGetNotFound(t *testing.T) {
	s := NewMemoryStore()
	if _, ok := s.GetFixture("missing"); ok {
		t.Fatalf("expected missing id to return false")
	}
}

func TestMemoryStoreSetReplacesSnapshot(t *testing.T) {
	s := NewMemoryStore()
	s.SetFixtures([]fixtures.Fixture{{ID: "old"}})

	s.SetFixtures([]fixtures.Fixture{{ID: "new"}})

	if _, ok := s.GetFixture("old"); ok {
		t.Fatalf("expected old fixture to be removed after replace")
	}
	if _, ok := s.GetFixture("new"); !ok {
		t.Fatalf("expected new fixture to be present")
	}
}

func TestMemoryStoreListReturnsCopy(t *testing.T) {
	s := NewMemoryStore()
	s.SetFixtures([]fixtures.Fixture{{ID: "copy", Venue: "original"}})

	list := s.ListFixtures()
	list[0].Venue = "mutated"

	f, _ := s.GetFixture("copy")
	if f.Venue != "original" {
		t.Fatalf("expected store to remain unchanged, got %s", f.Venue)
	}
}

func TestMemoryStoreUpdate(t *testing.T) {
	s := NewMemoryStore()
	s.SetFixtures([]fixtures.Fixture{{ID: "f1", Status: fixtures.StatusScheduled}})

	ok := s.Update("f1", func(f fixtures.Fixture) fixtures.Fixture {
		f.Status = fixtures.StatusLive
		return f
	})
	if !ok {
		t.Fatalf("expected update to succeed")
	}
	if f, _ := s.GetFixture("f1"); f.Status != fixtures.StatusLive {
		t.Fatalf("expected live status, got %s", f.Status)
	}

	called := false
	if s.Update("missing", func(f fixtures.Fixture) fixtures.Fixture { called = true; return f }) {
		t.Fatalf("expected unknown id to report false")
	}
	if called {
		t.Fatalf("expected fn not to run for unknown id")
	}
}

func TestMemoryStoreDelete(t *testing.T) {
	s := NewMemoryStore()
	s.SetFixtures([]fixtures.Fixture{{ID: "1"}, {ID: "2"}, {ID: "3"}})

	if !s.Delete("2") {
		t.Fatalf("expected cached fixture to be deleted")
	}
	if s.Delete("2") {
		t.Fatalf("expected second delete to report a miss")
	}

	got := s.ListFixtures()
	if len(got) != 2 || got[0].ID != "1" || got[1].ID != "3" {
		t.Fatalf("expected order 1,3 after delete, got %+v", got)
	}
	if s.Len() != 2 {
		t.Fatalf("expected 2 fixtures, got %d", s.Len())
	}
}
