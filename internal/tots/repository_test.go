package tots

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/preston-bernstein/football-admin-service/internal/domain/tots"
)

func repositories(t *testing.T) map[string]Repository {
	t.Helper()
	sqlite, err := OpenSQLite(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = sqlite.Close() })
	return map[string]Repository{
		"memory": NewMemoryStore(),
		"sqlite": sqlite,
	}
}

func TestRepositoryContract(t *testing.T) {
	for name, repo := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			if _, err := repo.GetSession(ctx, "s1"); !errors.Is(err, ErrNotFound) {
				t.Fatalf("expected ErrNotFound, got %v", err)
			}

			older := openSession("s0")
			older.StartDate = older.StartDate.AddDate(0, -1, 0)
			for _, s := range []tots.Session{older, openSession("s1")} {
				if err := repo.SaveSession(ctx, s); err != nil {
					t.Fatalf("save session: %v", err)
				}
			}
			sessions, err := repo.ListSessions(ctx)
			if err != nil || len(sessions) != 2 || sessions[0].ID != "s1" {
				t.Fatalf("expected newest first, got %+v err=%v", sessions, err)
			}
			got, err := repo.GetSession(ctx, "s1")
			if err != nil || !got.StartDate.Equal(openSession("s1").StartDate) || !got.Active {
				t.Fatalf("unexpected session %+v err=%v", got, err)
			}

			got.Finalized = true
			if err := repo.SaveSession(ctx, got); err != nil {
				t.Fatalf("update session: %v", err)
			}
			if again, _ := repo.GetSession(ctx, "s1"); !again.Finalized {
				t.Fatalf("expected update persisted")
			}

			pool := SeedCandidates()[:3]
			if err := repo.SaveCandidates(ctx, "s1", pool); err != nil {
				t.Fatalf("save candidates: %v", err)
			}
			cands, err := repo.ListCandidates(ctx, "s1")
			if err != nil || !reflect.DeepEqual(cands, pool) {
				t.Fatalf("expected candidates in order, got %+v err=%v", cands, err)
			}

			first := tots.Vote{SessionID: "s1", UserID: "u1", PlayerIDs: []string{"a"}, SubmittedAt: testNow}
			second := tots.Vote{SessionID: "s1", UserID: "u1", PlayerIDs: []string{"b", "c"}, SubmittedAt: testNow.Add(1)}
			admin := tots.Vote{SessionID: "s1", UserID: "u1", PlayerIDs: []string{"z"}, Admin: true, SubmittedAt: testNow}
			for _, v := range []tots.Vote{first, second, admin} {
				if err := repo.SaveVote(ctx, v); err != nil {
					t.Fatalf("save vote: %v", err)
				}
			}
			v, err := repo.GetVote(ctx, "s1", "u1", false)
			if err != nil || !reflect.DeepEqual(v.PlayerIDs, []string{"b", "c"}) {
				t.Fatalf("expected overwritten vote, got %+v err=%v", v, err)
			}
			votes, err := repo.ListVotes(ctx, "s1")
			if err != nil || len(votes) != 2 {
				t.Fatalf("expected user and admin votes, got %+v err=%v", votes, err)
			}
			if _, err := repo.GetVote(ctx, "s1", "u2", false); !errors.Is(err, ErrNotFound) {
				t.Fatalf("expected ErrNotFound for missing vote, got %v", err)
			}

			results := Tally("s1", pool, votes, testNow)
			if err := repo.SaveResults(ctx, results); err != nil {
				t.Fatalf("save results: %v", err)
			}
			stored, err := repo.GetResults(ctx, "s1")
			if err != nil || stored.SessionID != "s1" || len(stored.Tally) != len(pool) {
				t.Fatalf("unexpected results %+v err=%v", stored, err)
			}
			if _, err := repo.GetResults(ctx, "s0"); !errors.Is(err, ErrNotFound) {
				t.Fatalf("expected ErrNotFound for missing results, got %v", err)
			}
		})
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	repo := NewMemoryStore()
	ctx := context.Background()
	if err := Seed(ctx, repo, testNow); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := Seed(ctx, repo, testNow); err != nil {
		t.Fatalf("reseed: %v", err)
	}
	sessions, _ := repo.ListSessions(ctx)
	if len(sessions) != 1 || !sessions[0].Open(testNow) {
		t.Fatalf("expected one open seeded session, got %+v", sessions)
	}
	cands, _ := repo.ListCandidates(ctx, sessions[0].ID)
	if len(cands) != len(SeedCandidates()) {
		t.Fatalf("expected seed pool, got %d", len(cands))
	}
}
