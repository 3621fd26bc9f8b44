package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	appfixtures "github.com/preston-bernstein/football-admin-service/internal/app/fixtures"
	"github.com/preston-bernstein/football-admin-service/internal/app/live"
	"github.com/preston-bernstein/football-admin-service/internal/backend"
	"github.com/preston-bernstein/football-admin-service/internal/domain/fixtures"
	"github.com/preston-bernstein/football-admin-service/internal/envelope"
	"github.com/preston-bernstein/football-admin-service/internal/filter"
	"github.com/preston-bernstein/football-admin-service/internal/http/requestutil"
	"github.com/preston-bernstein/football-admin-service/internal/logging"
	"github.com/preston-bernstein/football-admin-service/internal/roles"
)

// FixtureReader is the read side used by the public fixture pages.
type FixtureReader interface {
	ListFixtures(ctx context.Context, status fixtures.Status, competition string) envelope.Response[[]fixtures.Fixture]
	GetFixture(ctx context.Context, id string) envelope.Response[fixtures.Fixture]
}

// FixtureBackend is the part of the API client the admin fixture pages call directly.
type FixtureBackend interface {
	FixtureReader
	UpdateFixture(ctx context.Context, id string, patch fixtures.Patch) envelope.Response[fixtures.Fixture]
	DeleteFixture(ctx context.Context, id string) envelope.Response[backend.Ack]
	UpdateFixtureStatus(ctx context.Context, id string, status fixtures.Status, reason string, newDate *time.Time) envelope.Response[fixtures.Fixture]
	UpdateFixtureScore(ctx context.Context, id string, score fixtures.Score) envelope.Response[fixtures.Fixture]
	DeleteTimelineEvent(ctx context.Context, id, eventID string) envelope.Response[backend.Ack]
}

// FixturesHandler serves the admin fixture list, the creation form and the
// live-match board.
type FixturesHandler struct {
	backend FixtureBackend
	board   *live.Board
	creator *appfixtures.Creator
	logger  *slog.Logger
}

func NewFixturesHandler(b FixtureBackend, board *live.Board, creator *appfixtures.Creator, logger *slog.Logger) *FixturesHandler {
	return &FixturesHandler{backend: b, board: board, creator: creator, logger: logger}
}

// List handles GET /admin/fixtures with status, type, q and competition filters.
func (h *FixturesHandler) List(w http.ResponseWriter, r *http.Request) {
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
	writeJSON(w, http.StatusOK, envelope.OK(resp.Message, list), loggerFromContext(r, h.logger))
}

// Create handles POST /admin/fixtures. The draft stays pending when the
// submission fails.
func (h *FixturesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var draft appfixtures.Draft
	if !decodeBody(w, r, &draft, h.logger) {
		return
	}
	created, n := h.creator.Submit(r.Context(), draftOwner(r), draft)
	respondNotice(w, r, http.StatusCreated, n, created, h.logger)
}

type draftView struct {
	Draft     appfixtures.Draft `json:"draft"`
	CanSubmit bool              `json:"canSubmit"`
	Error     string            `json:"error,omitempty"`
}

func newDraftView(d appfixtures.Draft) draftView {
	view := draftView{Draft: d, CanSubmit: d.CanSubmit()}
	if err := d.Validate(); err != nil {
		view.Error = err.Error()
	}
	return view
}

// draftOwner keys the creation draft by the signed-in admin.
func draftOwner(r *http.Request) string {
	u, _ := roles.UserFrom(r.Context())
	return u.ID
}

// GetDraft handles GET /admin/fixtures/draft.
func (h *FixturesHandler) GetDraft(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, envelope.OK("", newDraftView(h.creator.Draft(draftOwner(r)))), loggerFromContext(r, h.logger))
}

// SaveDraft handles PUT /admin/fixtures/draft and reports whether it can be
// submitted.
func (h *FixturesHandler) SaveDraft(w http.ResponseWriter, r *http.Request) {
	var draft appfixtures.Draft
	if !decodeBody(w, r, &draft, h.logger) {
		return
	}
	h.creator.SetDraft(draftOwner(r), draft)
	writeJSON(w, http.StatusOK, envelope.OK("Draft saved", newDraftView(draft)), loggerFromContext(r, h.logger))
}

// Get handles GET /admin/fixtures/{id}.
func (h *FixturesHandler) Get(w http.ResponseWriter, r *http.Request) {
	respond(w, r, http.StatusOK, h.backend.GetFixture(r.Context(), pathVar(r, "id")), h.logger)
}

// Update handles PATCH /admin/fixtures/{id}.
func (h *FixturesHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch fixtures.Patch
	if !decodeBody(w, r, &patch, h.logger) {
		return
	}
	resp := h.backend.UpdateFixture(r.Context(), pathVar(r, "id"), patch)
	if resp.Success() {
		h.board.Put(resp.Data)
	}
	respond(w, r, http.StatusOK, resp, h.logger)
}

// Delete handles DELETE /admin/fixtures/{id}.
func (h *FixturesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := pathVar(r, "id")
	resp := h.backend.DeleteFixture(r.Context(), id)
	if resp.Success() {
		h.board.Remove(id)
		logging.Info(loggerFromContext(r, h.logger), "fixture deleted", slog.String(logging.FieldFixtureID, id))
	}
	respond(w, r, http.StatusOK, resp, h.logger)
}

type statusUpdate struct {
	Status  string     `json:"status"`
	Reason  string     `json:"reason"`
	NewDate *time.Time `json:"newDate"`
}

// UpdateStatus handles PUT /admin/fixtures/{id}/status. Postponing requires a
// reason.
func (h *FixturesHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var body statusUpdate
	if !decodeBody(w, r, &body, h.logger) {
		return
	}
	status, err := fixtures.ParseStatus(body.Status)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, live.ErrInvalidStatus.Error(), h.logger)
		return
	}
	reason := strings.TrimSpace(body.Reason)
	if status == fixtures.StatusPostponed && reason == "" {
		writeError(w, r, http.StatusBadRequest, "a reason is required to postpone a fixture", h.logger)
		return
	}
	resp := h.backend.UpdateFixtureStatus(r.Context(), pathVar(r, "id"), status, reason, body.NewDate)
	if resp.Success() {
		h.board.Put(resp.Data)
	}
	respond(w, r, http.StatusOK, resp, h.logger)
}

// UpdateScore handles PUT /admin/fixtures/{id}/score, a scoreline correction
// that leaves the rest of the live state alone.
func (h *FixturesHandler) UpdateScore(w http.ResponseWriter, r *http.Request) {
	var score fixtures.Score
	if !decodeBody(w, r, &score, h.logger) {
		return
	}
	if score.Home < 0 || score.Away < 0 {
		writeError(w, r, http.StatusBadRequest, live.ErrNegative.Error(), h.logger)
		return
	}
	id := pathVar(r, "id")
	resp := h.backend.UpdateFixtureScore(r.Context(), id, score)
	if resp.Success() {
		h.board.Put(resp.Data)
		logging.Info(loggerFromContext(r, h.logger), "fixture score corrected", slog.String(logging.FieldFixtureID, id))
	}
	respond(w, r, http.StatusOK, resp, h.logger)
}

// Live handles GET /admin/fixtures/live. The board is loaded on first use and
// kept fresh by the poller afterwards.
func (h *FixturesHandler) Live(w http.ResponseWriter, r *http.Request) {
	if !h.board.Loaded() {
		if n := h.board.Load(r.Context()); !n.OK() {
			writeError(w, r, http.StatusBadGateway, n.Message, h.logger)
			return
		}
	}
	list := h.board.Fixtures(requestutil.Query(r, "status"), requestutil.Query(r, "q"))
	writeJSON(w, http.StatusOK, envelope.OK("", list), loggerFromContext(r, h.logger))
}

// LiveDraft handles GET /admin/fixtures/{id}/live.
func (h *FixturesHandler) LiveDraft(w http.ResponseWriter, r *http.Request) {
	draft, err := h.board.Draft(pathVar(r, "id"))
	if err != nil {
		writeError(w, r, http.StatusNotFound, err.Error(), h.logger)
		return
	}
	writeJSON(w, http.StatusOK, envelope.OK("", draft), loggerFromContext(r, h.logger))
}

// liveUpdate carries the fields an admin changed; nil fields keep the
// current value.
type liveUpdate struct {
	Status         *string         `json:"status"`
	Minute         *int            `json:"minute"`
	InjuryTime     *int            `json:"injuryTime"`
	Score          *fixtures.Score `json:"score"`
	PenaltyScore   *fixtures.Score `json:"penaltyScore"`
	ClearPenalties bool            `json:"clearPenalties"`
}

func (u liveUpdate) apply(d *live.Draft) error {
	if u.Status != nil {
		if err := d.SetStatus(*u.Status); err != nil {
			return err
		}
	}
	if u.Minute != nil {
		if err := d.SetMinute(*u.Minute); err != nil {
			return err
		}
	}
	if u.InjuryTime != nil {
		if err := d.SetInjuryTime(*u.InjuryTime); err != nil {
			return err
		}
	}
	if u.Score != nil {
		if err := d.SetScore(u.Score.Home, u.Score.Away); err != nil {
			return err
		}
	}
	switch {
	case u.ClearPenalties:
		d.ClearPenaltyScore()
	case u.PenaltyScore != nil:
		if err := d.SetPenaltyScore(u.PenaltyScore.Home, u.PenaltyScore.Away); err != nil {
			return err
		}
	}
	return nil
}

// PushLive handles PUT /admin/fixtures/{id}/live.
func (h *FixturesHandler) PushLive(w http.ResponseWriter, r *http.Request) {
	var body liveUpdate
	if !decodeBody(w, r, &body, h.logger) {
		return
	}
	id := pathVar(r, "id")
	draft, err := h.board.Draft(id)
	if err != nil {
		writeError(w, r, http.StatusNotFound, err.Error(), h.logger)
		return
	}
	if err := body.apply(&draft); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), h.logger)
		return
	}
	n := h.board.Push(r.Context(), id, draft.State)
	fixture, _ := h.board.Fixture(id)
	respondNotice(w, r, http.StatusOK, n, fixture, h.logger)
}

// AddEvent handles POST /admin/fixtures/{id}/timeline.
func (h *FixturesHandler) AddEvent(w http.ResponseWriter, r *http.Request) {
	var event fixtures.TimelineEvent
	if !decodeBody(w, r, &event, h.logger) {
		return
	}
	id := pathVar(r, "id")
	n := h.board.AddEvent(r.Context(), id, event)
	fixture, _ := h.board.Fixture(id)
	respondNotice(w, r, http.StatusCreated, n, fixture, h.logger)
}

// DeleteEvent handles DELETE /admin/fixtures/{id}/timeline/{eventID}.
func (h *FixturesHandler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id, eventID := pathVar(r, "id"), pathVar(r, "eventID")
	resp := h.backend.DeleteTimelineEvent(r.Context(), id, eventID)
	if resp.Success() {
		h.board.RemoveEvent(id, eventID)
	}
	respond(w, r, http.StatusOK, resp, h.logger)
}

// SetLineup handles PUT /admin/fixtures/{id}/lineup.
func (h *FixturesHandler) SetLineup(w http.ResponseWriter, r *http.Request) {
	var lineup fixtures.Lineup
	if !decodeBody(w, r, &lineup, h.logger) {
		return
	}
	n := h.board.SetLineup(r.Context(), pathVar(r, "id"), lineup)
	respondNotice(w, r, http.StatusOK, n, lineup, h.logger)
}

// statusParam parses the optional status query; an unknown value is a 400.
func statusParam(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (fixtures.Status, bool) {
	raw := requestutil.Query(r, "status")
	if raw == "" || strings.EqualFold(raw, "all") {
		return "", true
	}
	status, err := fixtures.ParseStatus(raw)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, live.ErrInvalidStatus.Error(), logger)
		return "", false
	}
	return status, true
}
