package live

import "github.com/preston-bernstein/football-admin-service/internal/domain/fixtures"

// Draft is the admin's unsaved edit of one fixture's live state.
type Draft struct {
	FixtureID string             `json:"fixtureId"`
	State     fixtures.LiveState `json:"state"`
}

func (d *Draft) SetStatus(raw string) error {
	status, err := fixtures.ParseStatus(raw)
	if err != nil {
		return ErrInvalidStatus
	}
	d.State.Status = status
	return nil
}

func (d *Draft) SetMinute(minute int) error {
	if minute < 0 {
		return ErrNegative
	}
	d.State.Minute = minute
	return nil
}

func (d *Draft) SetInjuryTime(minutes int) error {
	if minutes < 0 {
		return ErrNegative
	}
	d.State.InjuryTime = minutes
	return nil
}

func (d *Draft) SetScore(home, away int) error {
	if home < 0 || away < 0 {
		return ErrNegative
	}
	d.State.Score = fixtures.Score{Home: home, Away: away}
	return nil
}

func (d *Draft) SetPenaltyScore(home, away int) error {
	if home < 0 || away < 0 {
		return ErrNegative
	}
	d.State.PenaltyScore = &fixtures.Score{Home: home, Away: away}
	return nil
}

func (d *Draft) ClearPenaltyScore() {
	d.State.PenaltyScore = nil
}

// ValidateState applies the draft edit rules to a state received whole.
func ValidateState(s fixtures.LiveState) error {
	if _, err := fixtures.ParseStatus(string(s.Status)); err != nil {
		return ErrInvalidStatus
	}
	if s.Minute < 0 || s.InjuryTime < 0 || s.Score.Home < 0 || s.Score.Away < 0 {
		return ErrNegative
	}
	if p := s.PenaltyScore; p != nil && (p.Home < 0 || p.Away < 0) {
		return ErrNegative
	}
	return nil
}
