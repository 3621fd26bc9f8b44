package filter

import (
	"testing"

	"github.com/preston-bernstein/football-admin-service/internal/domain/fixtures"
	"github.com/preston-bernstein/football-admin-service/internal/domain/players"
	"github.com/preston-bernstein/football-admin-service/internal/domain/teams"
)

func sampleFixtures() []fixtures.Fixture {
	return []fixtures.Fixture{
		{ID: "1", HomeTeam: teams.Ref{Name: "Engineering"}, AwayTeam: teams.Ref{Name: "Law"}, Status: fixtures.StatusLive, Type: "league", Venue: "Main Bowl"},
		{ID: "2", HomeTeam: teams.Ref{Name: "Medicine"}, AwayTeam: teams.Ref{Name: "Arts"}, Status: fixtures.StatusScheduled, Type: "cup", Venue: "Annex"},
		{ID: "3", HomeTeam: teams.Ref{Name: "Law"}, AwayTeam: teams.Ref{Name: "Science"}, Status: fixtures.StatusCompleted, Type: "league", Competition: "Inter-Faculty"},
		{ID: "4", HomeTeam: teams.Ref{Name: "Arts"}, AwayTeam: teams.Ref{Name: "Engineering"}, Status: fixtures.StatusLive, Type: "cup"},
	}
}

func TestFilteredViewIsSubsetSatisfyingPredicate(t *testing.T) {
	source := sampleFixtures()
	cases := []struct {
		name string
		pred Predicate[fixtures.Fixture]
	}{
		{"status live", FixtureStatus("live")},
		{"status upper", FixtureStatus("COMPLETED")},
		{"status unknown", FixtureStatus("abandoned")},
		{"type cup", FixtureType("cup")},
		{"search law", FixtureSearch("law")},
		{"search venue", FixtureSearch("bowl")},
		{"search competition", FixtureSearch("faculty")},
		{"search none", FixtureSearch("zzz")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			filtered := Apply(source, tc.pred)
			if len(filtered) > len(source) {
				t.Fatalf("filtered view larger than source: %d > %d", len(filtered), len(source))
			}
			for _, f := range filtered {
				if !tc.pred(f) {
					t.Fatalf("fixture %s does not satisfy predicate", f.ID)
				}
			}
		})
	}
}

func TestDisabledSelectorsKeepEverything(t *testing.T) {
	source := sampleFixtures()
	for _, sel := range []string{"", "all", "ALL", "  "} {
		if got := Fixtures(source, sel, sel, sel); len(got) != len(source) {
			t.Fatalf("selector %q: expected %d, got %d", sel, len(source), len(got))
		}
	}
}

func TestCombinedSelectorsIntersect(t *testing.T) {
	got := Fixtures(sampleFixtures(), "live", "cup", "eng")
	if len(got) != 1 || got[0].ID != "4" {
		t.Fatalf("expected only fixture 4, got %+v", got)
	}
}

func TestApplyKeepsSourceOrder(t *testing.T) {
	got := Apply(sampleFixtures(), FixtureType("league"))
	if len(got) != 2 || got[0].ID != "1" || got[1].ID != "3" {
		t.Fatalf("unexpected order %+v", got)
	}
}

func TestSearchOverSearchable(t *testing.T) {
	roster := []players.Player{
		{ID: "p1", Name: "Ada Obi", TeamName: "Engineering"},
		{ID: "p2", Name: "Tunde Bello", TeamName: "Law"},
	}
	got := Apply(roster, Search[players.Player]("BELLO"))
	if len(got) != 1 || got[0].ID != "p2" {
		t.Fatalf("expected p2, got %+v", got)
	}
	if got := Apply(roster, Search[players.Player]("")); len(got) != 2 {
		t.Fatalf("expected empty query to keep all, got %d", len(got))
	}
	byTeam := Apply(roster, Search[players.Player]("engineer"))
	if len(byTeam) != 1 || byTeam[0].ID != "p1" {
		t.Fatalf("expected team name to be searchable, got %+v", byTeam)
	}
}

func TestEqualOnPlayers(t *testing.T) {
	roster := []players.Player{
		{ID: "p1", Position: players.PositionGoalkeeper},
		{ID: "p2", Position: players.PositionForward},
	}
	pos := Equal(func(p players.Player) string { return string(p.Position) }, "gk")
	got := Apply(roster, pos)
	if len(got) != 1 || got[0].ID != "p1" {
		t.Fatalf("expected goalkeeper only, got %+v", got)
	}
}
