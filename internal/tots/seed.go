package tots

import (
	"context"
	"fmt"
	"time"

	"github.com/preston-bernstein/football-admin-service/internal/domain/players"
	"github.com/preston-bernstein/football-admin-service/internal/domain/tots"
)

// SeedCandidates is the dev candidate pool used for new sessions.
func SeedCandidates() []tots.Candidate {
	mk := func(id, name, team string, pos players.Position) tots.Candidate {
		return tots.Candidate{PlayerID: id, Name: name, TeamName: team, Position: pos}
	}
	return []tots.Candidate{
		mk("gk-1", "Daniel Okafor", "Engineering", players.PositionGoalkeeper),
		mk("gk-2", "Samuel Adeyemi", "Law", players.PositionGoalkeeper),
		mk("def-1", "Ibrahim Musa", "Engineering", players.PositionDefender),
		mk("def-2", "Chinedu Eze", "Medicine", players.PositionDefender),
		mk("def-3", "Tobi Adebayo", "Science", players.PositionDefender),
		mk("def-4", "Yusuf Bello", "Law", players.PositionDefender),
		mk("def-5", "Emeka Nwosu", "Arts", players.PositionDefender),
		mk("mid-1", "Kelechi Obi", "Medicine", players.PositionMidfielder),
		mk("mid-2", "Femi Ajayi", "Engineering", players.PositionMidfielder),
		mk("mid-3", "Ahmed Sani", "Science", players.PositionMidfielder),
		mk("mid-4", "Segun Olawale", "Arts", players.PositionMidfielder),
		mk("fwd-1", "Victor Osimhen", "Engineering", players.PositionForward),
		mk("fwd-2", "Ade Lookman", "Law", players.PositionForward),
		mk("fwd-3", "Moses Simon", "Medicine", players.PositionForward),
		mk("fwd-4", "Taiwo Awoniyi", "Science", players.PositionForward),
	}
}

// Seed stores one open session around now with the seed pool, unless
// sessions already exist.
func Seed(ctx context.Context, repo Repository, now time.Time) error {
	existing, err := repo.ListSessions(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	now = now.UTC()
	season := fmt.Sprintf("%d/%d", now.Year(), now.Year()+1)
	s := tots.Session{
		ID:        "seed-session",
		Name:      "Team of the Season " + season,
		Season:    season,
		StartDate: now.AddDate(0, 0, -7),
		EndDate:   now.AddDate(0, 0, 14),
		Active:    true,
		CreatedAt: now,
	}
	if err := repo.SaveSession(ctx, s); err != nil {
		return err
	}
	return repo.SaveCandidates(ctx, s.ID, SeedCandidates())
}
