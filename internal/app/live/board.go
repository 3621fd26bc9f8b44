// Package live holds the admin live-match board: the cached fixtures, the
// per-fixture drafts admins edit, and the pushes that sync them to the backend.
package live

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/preston-bernstein/football-admin-service/internal/app/notice"
	"github.com/preston-bernstein/football-admin-service/internal/domain/fixtures"
	"github.com/preston-bernstein/football-admin-service/internal/envelope"
	"github.com/preston-bernstein/football-admin-service/internal/filter"
	"github.com/preston-bernstein/football-admin-service/internal/logging"
	"github.com/preston-bernstein/football-admin-service/internal/store"
)

var (
	ErrUnknownFixture = errors.New("fixture not loaded")
	ErrNegative       = errors.New("value must not be negative")
	ErrInvalidStatus  = errors.New("invalid fixture status")
	ErrInvalidEvent   = errors.New("invalid timeline event")
	ErrInvalidLineup  = errors.New("lineup requires a side and a formation")
)

// Backend is the slice of the API client the board needs.
type Backend interface {
	ListLiveFixtures(ctx context.Context) envelope.Response[[]fixtures.Fixture]
	UpdateLiveState(ctx context.Context, id string, state fixtures.LiveState) envelope.Response[fixtures.Fixture]
	AddTimelineEvent(ctx context.Context, id string, event fixtures.TimelineEvent) envelope.Response[fixtures.TimelineEvent]
	UpdateLineup(ctx context.Context, id string, lineup fixtures.Lineup) envelope.Response[fixtures.Lineup]
}

// Board is shared by HTTP handlers and the live poller.
type Board struct {
	backend Backend
	store   *store.MemoryStore
	logger  *slog.Logger

	mu      sync.Mutex
	loading bool
	loaded  bool
}

func NewBoard(backend Backend, st *store.MemoryStore, logger *slog.Logger) *Board {
	if st == nil {
		st = store.NewMemoryStore()
	}
	return &Board{backend: backend, store: st, logger: logger}
}

// Load fetches live fixtures. A failed fetch leaves the cache as it was.
func (b *Board) Load(ctx context.Context) notice.Notice {
	b.mu.Lock()
	b.loading = true
	b.mu.Unlock()
	defer func() {
		b.mu.Lock()
		b.loading = false
		b.mu.Unlock()
	}()

	resp := b.backend.ListLiveFixtures(ctx)
	if !resp.Success() {
		return notice.Error(resp.Message)
	}
	b.store.SetFixtures(resp.Data)

	b.mu.Lock()
	b.loaded = true
	b.mu.Unlock()

	logging.Debug(logging.FromContext(ctx, b.logger), "live board refreshed",
		slog.Int(logging.FieldCount, len(resp.Data)),
	)
	return notice.Success(resp.Message)
}

// Loading reports whether a fetch is in flight.
func (b *Board) Loading() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.loading
}

// Loaded reports whether at least one fetch succeeded.
func (b *Board) Loaded() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.loaded
}

// Fixtures returns the cached fixtures narrowed by status and search query.
func (b *Board) Fixtures(status, query string) []fixtures.Fixture {
	return filter.Fixtures(b.store.ListFixtures(), status, "", query)
}

func (b *Board) Fixture(id string) (fixtures.Fixture, bool) {
	return b.store.GetFixture(id)
}

// Draft returns an editable live state initialized from the cached fixture.
func (b *Board) Draft(id string) (Draft, error) {
	f, ok := b.store.GetFixture(id)
	if !ok {
		return Draft{}, ErrUnknownFixture
	}
	return Draft{FixtureID: id, State: fixtures.LiveStateFrom(f)}, nil
}

// Push sends state to the backend and, on success, patches the cached fixture.
func (b *Board) Push(ctx context.Context, id string, state fixtures.LiveState) notice.Notice {
	if err := ValidateState(state); err != nil {
		return notice.Error(err.Error())
	}
	resp := b.backend.UpdateLiveState(ctx, id, state)
	if !resp.Success() {
		return notice.Error(resp.Message)
	}
	b.store.Update(id, state.Apply)
	logging.Info(logging.FromContext(ctx, b.logger), "live state pushed",
		slog.String(logging.FieldFixtureID, id),
		slog.String("status", string(state.Status)),
	)
	return notice.FromEnvelope(resp, "Match updated")
}

// AddEvent posts a timeline event and appends the stored copy to the cache.
func (b *Board) AddEvent(ctx context.Context, id string, event fixtures.TimelineEvent) notice.Notice {
	if !event.Type.Valid() || event.Minute < 0 || event.InjuryTime < 0 {
		return notice.Error(ErrInvalidEvent.Error())
	}
	if event.Side != "" && !event.Side.Valid() {
		return notice.Error(ErrInvalidEvent.Error())
	}
	resp := b.backend.AddTimelineEvent(ctx, id, event)
	if !resp.Success() {
		return notice.Error(resp.Message)
	}
	stored := resp.Data
	if stored.Type == "" {
		stored = event
	}
	b.store.Update(id, func(f fixtures.Fixture) fixtures.Fixture {
		f.Timeline = append(append([]fixtures.TimelineEvent(nil), f.Timeline...), stored)
		if scorer, ok := stored.GoalScorer(); ok {
			f.GoalScorers = append(append([]fixtures.GoalScorer(nil), f.GoalScorers...), scorer)
		}
		return f
	})
	return notice.FromEnvelope(resp, "Event added")
}

// SetLineup pushes one side's lineup and replaces it in the cache.
func (b *Board) SetLineup(ctx context.Context, id string, lineup fixtures.Lineup) notice.Notice {
	if !lineup.Side.Valid() || lineup.Formation == "" {
		return notice.Error(ErrInvalidLineup.Error())
	}
	resp := b.backend.UpdateLineup(ctx, id, lineup)
	if !resp.Success() {
		return notice.Error(resp.Message)
	}
	b.store.Update(id, func(f fixtures.Fixture) fixtures.Fixture {
		lineups := make([]fixtures.Lineup, 0, len(f.Lineups)+1)
		for _, l := range f.Lineups {
			if l.Side != lineup.Side {
				lineups = append(lineups, l)
			}
		}
		f.Lineups = append(lineups, lineup)
		return f
	})
	return notice.FromEnvelope(resp, "Lineup saved")
}

// Put refreshes one cached fixture with a copy the backend returned. Fixtures
// that are not on the board stay off it.
func (b *Board) Put(f fixtures.Fixture) {
	if f.ID == "" {
		return
	}
	b.store.Update(f.ID, func(fixtures.Fixture) fixtures.Fixture { return f })
}

// RemoveEvent drops a deleted timeline event from the cached fixture, along
// with the goal scorer it produced.
func (b *Board) RemoveEvent(id, eventID string) {
	if eventID == "" {
		return
	}
	b.store.Update(id, func(f fixtures.Fixture) fixtures.Fixture {
		timeline := make([]fixtures.TimelineEvent, 0, len(f.Timeline))
		var removed *fixtures.TimelineEvent
		for i, e := range f.Timeline {
			if removed == nil && e.ID == eventID {
				removed = &f.Timeline[i]
				continue
			}
			timeline = append(timeline, e)
		}
		if removed == nil {
			return f
		}
		f.Timeline = timeline
		if scorer, ok := removed.GoalScorer(); ok {
			f.GoalScorers = withoutScorer(f.GoalScorers, scorer)
		}
		return f
	})
}

func withoutScorer(scorers []fixtures.GoalScorer, target fixtures.GoalScorer) []fixtures.GoalScorer {
	out := make([]fixtures.GoalScorer, 0, len(scorers))
	dropped := false
	for _, s := range scorers {
		if !dropped && s == target {
			dropped = true
			continue
		}
		out = append(out, s)
	}
	return out
}

// Remove drops a deleted fixture from the board.
func (b *Board) Remove(id string) {
	b.store.Delete(id)
}

// Replace swaps the cache with fixtures fetched elsewhere (the poller).
func (b *Board) Replace(list []fixtures.Fixture) {
	b.store.SetFixtures(list)
	b.mu.Lock()
	b.loaded = true
	b.mu.Unlock()
}
