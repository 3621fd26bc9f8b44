package fixtures

// LiveState is the admin-side mirror of a fixture's in-play state. It is
// initialized from a fetched fixture and pushed back as a whole.
type LiveState struct {
	Status       Status `json:"status"`
	Minute       int    `json:"minute"`
	InjuryTime   int    `json:"injuryTime"`
	Score        Score  `json:"score"`
	PenaltyScore *Score `json:"penaltyScore,omitempty"`
}

// LiveStateFrom copies the live fields out of f.
func LiveStateFrom(f Fixture) LiveState {
	state := LiveState{
		Status:     f.Status,
		Minute:     f.Minute,
		InjuryTime: f.InjuryTime,
	}
	if f.Result != nil {
		state.Score = Score{Home: f.Result.Home, Away: f.Result.Away}
		if f.Result.Penalties != nil {
			p := *f.Result.Penalties
			state.PenaltyScore = &p
		}
	}
	return state
}

// Apply writes s onto f and returns the patched copy.
func (s LiveState) Apply(f Fixture) Fixture {
	f.Status = s.Status
	f.Minute = s.Minute
	f.InjuryTime = s.InjuryTime
	result := Result{Home: s.Score.Home, Away: s.Score.Away}
	if s.PenaltyScore != nil {
		p := *s.PenaltyScore
		result.Penalties = &p
	}
	f.Result = &result
	return f
}

// EventType enumerates timeline entries.
type EventType string

const (
	EventGoal         EventType = "goal"
	EventOwnGoal      EventType = "own_goal"
	EventPenaltyGoal  EventType = "penalty_goal"
	EventYellowCard   EventType = "yellow_card"
	EventRedCard      EventType = "red_card"
	EventSubstitution EventType = "substitution"
	EventKickoff      EventType = "kickoff"
	EventHalfTime     EventType = "half_time"
	EventFullTime     EventType = "full_time"
)

var eventTypes = map[EventType]struct{}{
	EventGoal: {}, EventOwnGoal: {}, EventPenaltyGoal: {}, EventYellowCard: {}, EventRedCard: {},
	EventSubstitution: {}, EventKickoff: {}, EventHalfTime: {}, EventFullTime: {},
}

// Valid reports whether t is a known event type.
func (t EventType) Valid() bool {
	_, ok := eventTypes[t]
	return ok
}

// IsGoal reports whether the event changes the scoreline.
func (t EventType) IsGoal() bool {
	return t == EventGoal || t == EventOwnGoal || t == EventPenaltyGoal
}

// TimelineEvent is one entry of a fixture's match timeline.
type TimelineEvent struct {
	ID              string    `json:"id,omitempty"`
	Type            EventType `json:"type"`
	Minute          int       `json:"minute"`
	InjuryTime      int       `json:"injuryTime,omitempty"`
	Side            Side      `json:"side,omitempty"`
	PlayerID        string    `json:"playerId,omitempty"`
	PlayerName      string    `json:"playerName,omitempty"`
	RelatedPlayerID string    `json:"relatedPlayerId,omitempty"`
	Note            string    `json:"note,omitempty"`
}

// GoalScorer converts a goal event to a scorer entry.
func (e TimelineEvent) GoalScorer() (GoalScorer, bool) {
	if !e.Type.IsGoal() {
		return GoalScorer{}, false
	}
	return GoalScorer{
		PlayerID:   e.PlayerID,
		PlayerName: e.PlayerName,
		Side:       e.Side,
		Minute:     e.Minute,
		OwnGoal:    e.Type == EventOwnGoal,
		Penalty:    e.Type == EventPenaltyGoal,
	}, true
}

// LineupPlayer is a player slot in a lineup.
type LineupPlayer struct {
	PlayerID     string `json:"playerId"`
	Name         string `json:"name,omitempty"`
	Position     string `json:"position,omitempty"`
	JerseyNumber int    `json:"jerseyNumber,omitempty"`
}

// Lineup is one side's formation with starters and substitutes.
type Lineup struct {
	Side        Side           `json:"side"`
	Formation   string         `json:"formation"`
	Starters    []LineupPlayer `json:"starters"`
	Substitutes []LineupPlayer `json:"substitutes"`
}
