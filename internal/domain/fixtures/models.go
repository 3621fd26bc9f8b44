package fixtures

import (
	"fmt"
	"strings"
	"time"

	"github.com/preston-bernstein/football-admin-service/internal/domain/teams"
)

// Status is the fixture lifecycle state as reported by the backend.
type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusLive      Status = "live"
	StatusPostponed Status = "postponed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Statuses lists every known status in display order.
var Statuses = []Status{StatusScheduled, StatusLive, StatusPostponed, StatusCompleted, StatusCancelled}

// ParseStatus accepts any casing and rejects unknown values.
func ParseStatus(raw string) (Status, error) {
	candidate := Status(strings.ToLower(strings.TrimSpace(raw)))
	for _, s := range Statuses {
		if s == candidate {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown fixture status %q", raw)
}

// Side identifies the home or away team of a fixture.
type Side string

const (
	SideHome Side = "home"
	SideAway Side = "away"
)

// Valid reports whether s is home or away.
func (s Side) Valid() bool {
	return s == SideHome || s == SideAway
}

// Score captures home and away goals.
type Score struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

// Result is the scoreline of a started or finished fixture.
type Result struct {
	Home      int    `json:"home"`
	Away      int    `json:"away"`
	Penalties *Score `json:"penalties,omitempty"`
}

// SideStats holds per-team counters.
type SideStats struct {
	Possession    int `json:"possession"`
	Shots         int `json:"shots"`
	ShotsOnTarget int `json:"shotsOnTarget"`
	Corners       int `json:"corners"`
	Fouls         int `json:"fouls"`
	YellowCards   int `json:"yellowCards"`
	RedCards      int `json:"redCards"`
	Offsides      int `json:"offsides"`
}

// Statistics holds both sides' counters.
type Statistics struct {
	Home SideStats `json:"home"`
	Away SideStats `json:"away"`
}

// GoalScorer records one goal.
type GoalScorer struct {
	PlayerID   string `json:"playerId"`
	PlayerName string `json:"playerName"`
	Side       Side   `json:"side"`
	Minute     int    `json:"minute"`
	OwnGoal    bool   `json:"ownGoal,omitempty"`
	Penalty    bool   `json:"penalty,omitempty"`
}

// Postponement explains why a fixture moved.
type Postponement struct {
	Reason  string     `json:"reason"`
	NewDate *time.Time `json:"newDate,omitempty"`
}

// Fixture is a scheduled or completed match between two teams.
type Fixture struct {
	ID           string          `json:"id"`
	HomeTeam     teams.Ref       `json:"homeTeam"`
	AwayTeam     teams.Ref       `json:"awayTeam"`
	Competition  string          `json:"competition,omitempty"`
	Type         string          `json:"type,omitempty"`
	ScheduledAt  time.Time       `json:"scheduledAt"`
	Venue        string          `json:"venue"`
	Status       Status          `json:"status"`
	Result       *Result         `json:"result,omitempty"`
	Statistics   *Statistics     `json:"statistics,omitempty"`
	GoalScorers  []GoalScorer    `json:"goalScorers,omitempty"`
	Timeline     []TimelineEvent `json:"timeline,omitempty"`
	Lineups      []Lineup        `json:"lineups,omitempty"`
	Postponement *Postponement   `json:"postponement,omitempty"`
	Minute       int             `json:"minute,omitempty"`
	InjuryTime   int             `json:"injuryTime,omitempty"`
}

// Label renders "Home vs Away" for logs and search.
func (f Fixture) Label() string {
	return f.HomeTeam.Name + " vs " + f.AwayTeam.Name
}

// StatusUpdate is the partial update used to change a fixture's status.
type StatusUpdate struct {
	Status  Status     `json:"status"`
	Reason  string     `json:"reason,omitempty"`
	NewDate *time.Time `json:"newDate,omitempty"`
}

// Patch is the partial update admins send for schedule/venue edits.
type Patch struct {
	ScheduledAt *time.Time `json:"scheduledAt,omitempty"`
	Venue       *string    `json:"venue,omitempty"`
	Competition *string    `json:"competition,omitempty"`
}

// NewFixture is the creation payload.
type NewFixture struct {
	HomeTeamID    string    `json:"homeTeamId"`
	AwayTeamID    string    `json:"awayTeamId"`
	CompetitionID string    `json:"competitionId"`
	ScheduledAt   time.Time `json:"scheduledAt"`
	Venue         string    `json:"venue"`
}
