// Package fixtures models the admin fixture-creation form and its submission.
package fixtures

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/preston-bernstein/football-admin-service/internal/app/notice"
	domain "github.com/preston-bernstein/football-admin-service/internal/domain/fixtures"
	"github.com/preston-bernstein/football-admin-service/internal/envelope"
	"github.com/preston-bernstein/football-admin-service/internal/logging"
)

var (
	ErrHomeTeamRequired    = errors.New("home team is required")
	ErrAwayTeamRequired    = errors.New("away team is required")
	ErrSameTeams           = errors.New("home and away teams must differ")
	ErrCompetitionRequired = errors.New("competition is required")
	ErrDateRequired        = errors.New("kick-off date is required")
	ErrVenueRequired       = errors.New("venue is required")
)

// Draft is the unsaved fixture-creation form.
type Draft struct {
	HomeTeamID    string    `json:"homeTeamId"`
	AwayTeamID    string    `json:"awayTeamId"`
	CompetitionID string    `json:"competitionId"`
	ScheduledAt   time.Time `json:"scheduledAt"`
	Venue         string    `json:"venue"`
}

// Validate returns the first failing rule, checked in form order.
func (d Draft) Validate() error {
	home := strings.TrimSpace(d.HomeTeamID)
	away := strings.TrimSpace(d.AwayTeamID)
	switch {
	case home == "":
		return ErrHomeTeamRequired
	case away == "":
		return ErrAwayTeamRequired
	case home == away:
		return ErrSameTeams
	case strings.TrimSpace(d.CompetitionID) == "":
		return ErrCompetitionRequired
	case d.ScheduledAt.IsZero():
		return ErrDateRequired
	case strings.TrimSpace(d.Venue) == "":
		return ErrVenueRequired
	}
	return nil
}

// CanSubmit gates the submit action; identical teams always disable it.
func (d Draft) CanSubmit() bool {
	return d.Validate() == nil
}

func (d Draft) payload() domain.NewFixture {
	return domain.NewFixture{
		HomeTeamID:    strings.TrimSpace(d.HomeTeamID),
		AwayTeamID:    strings.TrimSpace(d.AwayTeamID),
		CompetitionID: strings.TrimSpace(d.CompetitionID),
		ScheduledAt:   d.ScheduledAt.UTC(),
		Venue:         strings.TrimSpace(d.Venue),
	}
}

// Backend is the single call the creator needs.
type Backend interface {
	CreateFixture(ctx context.Context, draft domain.NewFixture) envelope.Response[domain.Fixture]
}

// Creator holds one pending draft per admin and submits it.
type Creator struct {
	backend Backend
	logger  *slog.Logger

	mu     sync.Mutex
	drafts map[string]Draft
}

func NewCreator(backend Backend, logger *slog.Logger) *Creator {
	return &Creator{backend: backend, logger: logger, drafts: make(map[string]Draft)}
}

// SetDraft replaces owner's pending draft. An empty draft is dropped.
func (c *Creator) SetDraft(owner string, d Draft) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if d == (Draft{}) {
		delete(c.drafts, owner)
		return
	}
	c.drafts[owner] = d
}

func (c *Creator) Draft(owner string) Draft {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.drafts[owner]
}

// Submit validates d and creates the fixture. Owner's draft is cleared on
// success and retained on failure.
func (c *Creator) Submit(ctx context.Context, owner string, d Draft) (domain.Fixture, notice.Notice) {
	c.SetDraft(owner, d)
	if err := d.Validate(); err != nil {
		return domain.Fixture{}, notice.Error(err.Error())
	}

	resp := c.backend.CreateFixture(ctx, d.payload())
	if !resp.Success() {
		return domain.Fixture{}, notice.Error(resp.Message)
	}

	c.SetDraft(owner, Draft{})
	logging.Info(logging.FromContext(ctx, c.logger), "fixture created",
		slog.String(logging.FieldFixtureID, resp.Data.ID),
	)
	return resp.Data, notice.FromEnvelope(resp, "Fixture created")
}
