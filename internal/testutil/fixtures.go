package testutil

import (
	"fmt"
	"time"

	"github.com/preston-bernstein/football-admin-service/internal/domain/fixtures"
	"github.com/preston-bernstein/football-admin-service/internal/domain/teams"
)

// SampleKickoff is the scheduled time used by SampleFixture.
var SampleKickoff = time.Date(2026, 4, 11, 15, 0, 0, 0, time.UTC)

// SampleFixture returns a minimal fixture with the provided id and status.
func SampleFixture(id string, status fixtures.Status) fixtures.Fixture {
	f := fixtures.Fixture{
		ID:          id,
		HomeTeam:    teams.Ref{ID: "home-" + id, Name: "Engineering"},
		AwayTeam:    teams.Ref{ID: "away-" + id, Name: "Law"},
		Competition: "Faculty Cup",
		Type:        "league",
		ScheduledAt: SampleKickoff,
		Venue:       "Main Bowl",
		Status:      status,
	}
	if status == fixtures.StatusLive || status == fixtures.StatusCompleted {
		f.Result = &fixtures.Result{}
	}
	return f
}

// SampleFixtures returns one fixture per status, ids "f1".."f5" in display order.
func SampleFixtures() []fixtures.Fixture {
	out := make([]fixtures.Fixture, 0, len(fixtures.Statuses))
	for i, s := range fixtures.Statuses {
		out = append(out, SampleFixture(fmt.Sprintf("f%d", i+1), s))
	}
	return out
}
