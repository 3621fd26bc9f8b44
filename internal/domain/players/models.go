package players

import (
	"fmt"
	"strings"
)

// Position is the closed set of short position codes.
type Position string

const (
	PositionGoalkeeper Position = "GK"
	PositionDefender   Position = "DEF"
	PositionMidfielder Position = "MID"
	PositionForward    Position = "FWD"
)

// Positions lists positions in pitch order (goal outwards).
var Positions = []Position{PositionGoalkeeper, PositionDefender, PositionMidfielder, PositionForward}

// ParsePosition accepts any casing and rejects unknown codes.
func ParsePosition(raw string) (Position, error) {
	candidate := Position(strings.ToUpper(strings.TrimSpace(raw)))
	for _, p := range Positions {
		if p == candidate {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown position %q", raw)
}

// Player is a roster entry.
type Player struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Position     Position `json:"position"`
	JerseyNumber int      `json:"jerseyNumber"`
	TeamID       string   `json:"teamId,omitempty"`
	TeamName     string   `json:"teamName,omitempty"`
}

// Key returns the player ID.
func (p Player) Key() string { return p.ID }

// SearchFields lists the text matched by roster search.
func (p Player) SearchFields() []string { return []string{p.Name, p.TeamName} }
