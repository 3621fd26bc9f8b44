package backend

import (
	"context"
	"net/http"
	"time"

	"github.com/preston-bernstein/football-admin-service/internal/domain/fixtures"
	"github.com/preston-bernstein/football-admin-service/internal/envelope"
)

const fixturesPath = "/fixtures"

// ListFixtures returns fixtures, optionally filtered by status and competition.
func (c *Client) ListFixtures(ctx context.Context, status fixtures.Status, competition string) envelope.Response[[]fixtures.Fixture] {
	return call[[]fixtures.Fixture](ctx, c, request{
		op:     "fixtures.list",
		method: http.MethodGet,
		path:   fixturesPath,
		query:  queryOf("status", string(status), "competition", competition),
	})
}

// ListLiveFixtures returns fixtures currently in play or scheduled for today.
func (c *Client) ListLiveFixtures(ctx context.Context) envelope.Response[[]fixtures.Fixture] {
	return call[[]fixtures.Fixture](ctx, c, request{
		op:     "fixtures.live",
		method: http.MethodGet,
		path:   fixturesPath + "/live",
	})
}

func (c *Client) GetFixture(ctx context.Context, id string) envelope.Response[fixtures.Fixture] {
	return call[fixtures.Fixture](ctx, c, request{
		op:     "fixtures.get",
		method: http.MethodGet,
		path:   fixturesPath + joinPath(id),
	})
}

func (c *Client) CreateFixture(ctx context.Context, draft fixtures.NewFixture) envelope.Response[fixtures.Fixture] {
	return call[fixtures.Fixture](ctx, c, request{
		op:     "fixtures.create",
		method: http.MethodPost,
		path:   fixturesPath,
		body:   draft,
	})
}

func (c *Client) UpdateFixture(ctx context.Context, id string, patch fixtures.Patch) envelope.Response[fixtures.Fixture] {
	return call[fixtures.Fixture](ctx, c, request{
		op:     "fixtures.update",
		method: http.MethodPatch,
		path:   fixturesPath + joinPath(id),
		body:   patch,
	})
}

func (c *Client) DeleteFixture(ctx context.Context, id string) envelope.Response[Ack] {
	return call[Ack](ctx, c, request{
		op:     "fixtures.delete",
		method: http.MethodDelete,
		path:   fixturesPath + joinPath(id),
	})
}

// UpdateFixtureStatus changes status; reason and newDate only matter for postponements.
func (c *Client) UpdateFixtureStatus(ctx context.Context, id string, status fixtures.Status, reason string, newDate *time.Time) envelope.Response[fixtures.Fixture] {
	return call[fixtures.Fixture](ctx, c, request{
		op:     "fixtures.status",
		method: http.MethodPut,
		path:   fixturesPath + joinPath(id, "status"),
		body:   fixtures.StatusUpdate{Status: status, Reason: reason, NewDate: newDate},
	})
}

func (c *Client) UpdateFixtureScore(ctx context.Context, id string, score fixtures.Score) envelope.Response[fixtures.Fixture] {
	return call[fixtures.Fixture](ctx, c, request{
		op:     "fixtures.score",
		method: http.MethodPut,
		path:   fixturesPath + joinPath(id, "score"),
		body:   score,
	})
}

// UpdateLiveState pushes the whole admin live draft in one call.
func (c *Client) UpdateLiveState(ctx context.Context, id string, state fixtures.LiveState) envelope.Response[fixtures.Fixture] {
	return call[fixtures.Fixture](ctx, c, request{
		op:     "fixtures.live_state",
		method: http.MethodPut,
		path:   fixturesPath + joinPath(id, "live"),
		body:   state,
	})
}

func (c *Client) AddTimelineEvent(ctx context.Context, id string, event fixtures.TimelineEvent) envelope.Response[fixtures.TimelineEvent] {
	return call[fixtures.TimelineEvent](ctx, c, request{
		op:     "fixtures.timeline.add",
		method: http.MethodPost,
		path:   fixturesPath + joinPath(id, "timeline"),
		body:   event,
	})
}

func (c *Client) DeleteTimelineEvent(ctx context.Context, id, eventID string) envelope.Response[Ack] {
	return call[Ack](ctx, c, request{
		op:     "fixtures.timeline.delete",
		method: http.MethodDelete,
		path:   fixturesPath + joinPath(id, "timeline", eventID),
	})
}

func (c *Client) UpdateLineup(ctx context.Context, id string, lineup fixtures.Lineup) envelope.Response[fixtures.Lineup] {
	return call[fixtures.Lineup](ctx, c, request{
		op:     "fixtures.lineup",
		method: http.MethodPut,
		path:   fixturesPath + joinPath(id, "lineup"),
		body:   lineup,
	})
}
