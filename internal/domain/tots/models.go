package tots

import (
	"time"

	"github.com/preston-bernstein/football-admin-service/internal/domain/players"
)

// Session is one Team of the Season voting window.
type Session struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Season    string    `json:"season"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	Active    bool      `json:"active"`
	Finalized bool      `json:"finalized"`
	CreatedAt time.Time `json:"createdAt"`
}

// Open reports whether votes are accepted at now.
func (s Session) Open(now time.Time) bool {
	if !s.Active || s.Finalized {
		return false
	}
	return !now.Before(s.StartDate) && !now.After(s.EndDate)
}

// Expired reports whether the window has closed at now.
func (s Session) Expired(now time.Time) bool {
	return now.After(s.EndDate)
}

// NewSession is the creation payload.
type NewSession struct {
	Name      string    `json:"name"`
	Season    string    `json:"season"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

// Candidate is a player eligible for selection in a session.
type Candidate struct {
	PlayerID string           `json:"playerId"`
	Name     string           `json:"name"`
	TeamName string           `json:"teamName"`
	Position players.Position `json:"position"`
}

// Roster groups a session's candidates by position.
type Roster map[players.Position][]Candidate

// GroupByPosition buckets candidates, preserving input order inside each bucket.
func GroupByPosition(candidates []Candidate) Roster {
	roster := make(Roster, len(players.Positions))
	for _, p := range players.Positions {
		roster[p] = []Candidate{}
	}
	for _, c := range candidates {
		roster[c.Position] = append(roster[c.Position], c)
	}
	return roster
}

// Vote is a single user's selection for a session.
type Vote struct {
	SessionID   string    `json:"sessionId"`
	UserID      string    `json:"userId"`
	PlayerIDs   []string  `json:"playerIds"`
	Admin       bool      `json:"admin,omitempty"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// Result is the tally for one selected player.
type Result struct {
	Position   players.Position `json:"position"`
	PlayerID   string           `json:"playerId"`
	Name       string           `json:"name"`
	TeamName   string           `json:"teamName"`
	Votes      int              `json:"votes"`
	AdminVotes int              `json:"adminVotes"`
}

// Results is the finalized outcome of a session.
type Results struct {
	SessionID   string    `json:"sessionId"`
	FinalizedAt time.Time `json:"finalizedAt"`
	TotalVotes  int       `json:"totalVotes"`
	Team        []Result  `json:"team"`
	Tally       []Result  `json:"tally"`
}
