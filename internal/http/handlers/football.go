package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/preston-bernstein/football-admin-service/internal/app/live"
	"github.com/preston-bernstein/football-admin-service/internal/domain/fixtures"
	"github.com/preston-bernstein/football-admin-service/internal/envelope"
	"github.com/preston-bernstein/football-admin-service/internal/filter"
	"github.com/preston-bernstein/football-admin-service/internal/http/requestutil"
	"github.com/preston-bernstein/football-admin-service/internal/timeutil"
)

// FootballHandler serves the public fixture pages.
type FootballHandler struct {
	backend FixtureReader
	board   *live.Board
	logger  *slog.Logger
}

func NewFootballHandler(b FixtureReader, board *live.Board, logger *slog.Logger) *FootballHandler {
	return &FootballHandler{backend: b, board: board, logger: logger}
}

// FixtureView adds display strings rendered in the caller's time zone.
type FixtureView struct {
	fixtures.Fixture
	Date        string `json:"date"`
	DisplayDate string `json:"displayDate"`
	Kickoff     string `json:"kickoff"`
}

func newFixtureViews(list []fixtures.Fixture, loc *time.Location) []FixtureView {
	views := make([]FixtureView, 0, len(list))
	for _, f := range list {
		views = append(views, newFixtureView(f, loc))
	}
	return views
}

func newFixtureView(f fixtures.Fixture, loc *time.Location) FixtureView {
	return FixtureView{
		Fixture:     f,
		Date:        timeutil.FormatDate(f.ScheduledAt, loc),
		DisplayDate: timeutil.FormatDisplayDate(f.ScheduledAt, loc),
		Kickoff:     timeutil.FormatKickoff(f.ScheduledAt, loc),
	}
}

// Fixtures handles GET /football/fixtures. Besides the admin filters it
// accepts date (YYYY-MM-DD) and tz (IANA zone, default UTC).
func (h *FootballHandler) Fixtures(w http.ResponseWriter, r *http.Request) {
	loc, ok := h.location(w, r)
	if !ok {
		return
	}
	var day time.Time
	if raw := requestutil.Query(r, "date"); raw != "" {
		parsed, err := timeutil.ParseDate(raw, loc)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "date must be YYYY-MM-DD", h.logger)
			return
		}
		day = parsed
	}
	status, ok := statusParam(w, r, h.logger)
	if !ok {
		return
	}

	resp := h.backend.ListFixtures(r.Context(), status, requestutil.Query(r, "competition"))
	if !resp.Success() {
		respond(w, r, http.StatusOK, resp, h.logger)
		return
	}
	list := filter.Fixtures(resp.Data, string(status), requestutil.Query(r, "type"), requestutil.Query(r, "q"))
	if !day.IsZero() {
		list = filter.Apply(list, filter.Predicate[fixtures.Fixture](func(f fixtures.Fixture) bool {
			return timeutil.SameDay(f.ScheduledAt, day)
		}))
	}
	writeJSON(w, http.StatusOK, envelope.OK(resp.Message, newFixtureViews(list, loc)), loggerFromContext(r, h.logger))
}

// Fixture handles GET /football/fixtures/{id}.
func (h *FootballHandler) Fixture(w http.ResponseWriter, r *http.Request) {
	loc, ok := h.location(w, r)
	if !ok {
		return
	}
	resp := h.backend.GetFixture(r.Context(), pathVar(r, "id"))
	if !resp.Success() {
		respond(w, r, http.StatusOK, resp, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, envelope.OK(resp.Message, newFixtureView(resp.Data, loc)), loggerFromContext(r, h.logger))
}

// Live handles GET /football/live from the polled board.
func (h *FootballHandler) Live(w http.ResponseWriter, r *http.Request) {
	loc, ok := h.location(w, r)
	if !ok {
		return
	}
	if !h.board.Loaded() {
		if n := h.board.Load(r.Context()); !n.OK() {
			writeError(w, r, http.StatusBadGateway, n.Message, h.logger)
			return
		}
	}
	list := h.board.Fixtures(requestutil.Query(r, "status"), requestutil.Query(r, "q"))
	writeJSON(w, http.StatusOK, envelope.OK("", newFixtureViews(list, loc)), loggerFromContext(r, h.logger))
}

func (h *FootballHandler) location(w http.ResponseWriter, r *http.Request) (*time.Location, bool) {
	raw := requestutil.Query(r, "tz")
	if raw == "" {
		return time.UTC, true
	}
	loc, err := time.LoadLocation(raw)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "unknown time zone", h.logger)
		return nil, false
	}
	return loc, true
}
