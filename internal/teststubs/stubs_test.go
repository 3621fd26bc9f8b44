package teststubs

import (
	"context"
	"testing"

	"github.com/preston-bernstein/football-admin-service/internal/domain/fixtures"
)

func TestStubLiveSourceTracksCalls(t *testing.T) {
	s := &StubLiveSource{Fixtures: []fixtures.Fixture{{ID: "f1"}}, Notify: make(chan struct{})}
	if resp := s.ListLiveFixtures(context.Background()); !resp.Success() || len(resp.Data) != 1 {
		t.Fatalf("unexpected response %+v", resp)
	}
	s.SetFail(true, "down")
	if resp := s.ListLiveFixtures(context.Background()); resp.Success() || resp.Message != "down" {
		t.Fatalf("expected failure envelope, got %+v", resp)
	}
	if s.Calls.Load() != 2 {
		t.Fatalf("expected call count 2, got %d", s.Calls.Load())
	}
}

func TestStubSinkKeepsLastBatch(t *testing.T) {
	var s StubSink
	if _, ok := s.Last(); ok {
		t.Fatalf("expected empty sink")
	}
	s.Replace([]fixtures.Fixture{{ID: "a"}})
	s.Replace([]fixtures.Fixture{{ID: "b"}})
	last, ok := s.Last()
	if !ok || last[0].ID != "b" {
		t.Fatalf("unexpected last batch %+v", last)
	}
}
