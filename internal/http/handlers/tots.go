package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/preston-bernstein/football-admin-service/internal/domain/tots"
	"github.com/preston-bernstein/football-admin-service/internal/envelope"
	"github.com/preston-bernstein/football-admin-service/internal/http/requestutil"
	"github.com/preston-bernstein/football-admin-service/internal/logging"
	"github.com/preston-bernstein/football-admin-service/internal/roles"
	totssvc "github.com/preston-bernstein/football-admin-service/internal/tots"
)

// TOTSHandler serves Team of the Season voting for fans and admins.
type TOTSHandler struct {
	svc    totssvc.Service
	logger *slog.Logger
}

func NewTOTSHandler(svc totssvc.Service, logger *slog.Logger) *TOTSHandler {
	return &TOTSHandler{svc: svc, logger: logger}
}

type votePayload struct {
	PlayerIDs []string `json:"playerIds"`
}

// candidatesView is the voting page: matches for the query, the same list
// grouped by position, and a spelling suggestion when nothing matched.
type candidatesView struct {
	Candidates []tots.Candidate `json:"candidates"`
	ByPosition tots.Roster      `json:"byPosition"`
	Suggestion *tots.Candidate  `json:"suggestion,omitempty"`
}

func (h *TOTSHandler) Sessions(w http.ResponseWriter, r *http.Request) {
	respond(w, r, http.StatusOK, h.svc.ListSessions(r.Context()), h.logger)
}

func (h *TOTSHandler) Active(w http.ResponseWriter, r *http.Request) {
	respond(w, r, http.StatusOK, h.svc.ActiveSession(r.Context()), h.logger)
}

// Candidates handles GET .../sessions/{id}/candidates?q=.
func (h *TOTSHandler) Candidates(w http.ResponseWriter, r *http.Request) {
	resp := h.svc.Candidates(r.Context(), pathVar(r, "id"))
	if !resp.Success() {
		respond(w, r, http.StatusOK, resp, h.logger)
		return
	}
	query := requestutil.Query(r, "q")
	matches := totssvc.SearchCandidates(resp.Data, query)
	if matches == nil {
		matches = []tots.Candidate{}
	}
	view := candidatesView{Candidates: matches, ByPosition: tots.GroupByPosition(matches)}
	if len(matches) == 0 && query != "" {
		if c, ok := totssvc.ClosestCandidate(resp.Data, query); ok {
			view.Suggestion = &c
		}
	}
	writeJSON(w, http.StatusOK, envelope.OK(resp.Message, view), loggerFromContext(r, h.logger))
}

// Vote handles GET .../sessions/{id}/vote for the signed-in user.
func (h *TOTSHandler) Vote(w http.ResponseWriter, r *http.Request) {
	user, ok := h.voter(w, r)
	if !ok {
		return
	}
	respond(w, r, http.StatusOK, h.svc.GetUserVote(r.Context(), pathVar(r, "id"), user.ID), h.logger)
}

// SubmitVote handles POST .../sessions/{id}/vote. A repeat vote replaces the
// earlier one.
func (h *TOTSHandler) SubmitVote(w http.ResponseWriter, r *http.Request) {
	user, ok := h.voter(w, r)
	if !ok {
		return
	}
	var body votePayload
	if !decodeBody(w, r, &body, h.logger) {
		return
	}
	resp := h.svc.SubmitUserVote(r.Context(), pathVar(r, "id"), user.ID, body.PlayerIDs)
	respond(w, r, http.StatusCreated, resp, h.logger)
}

func (h *TOTSHandler) Results(w http.ResponseWriter, r *http.Request) {
	respond(w, r, http.StatusOK, h.svc.Results(r.Context(), pathVar(r, "id")), h.logger)
}

// CreateSession handles POST /admin/tots/sessions.
func (h *TOTSHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var body tots.NewSession
	if !decodeBody(w, r, &body, h.logger) {
		return
	}
	body.Name = strings.TrimSpace(body.Name)
	resp := h.svc.CreateSession(r.Context(), body)
	if resp.Success() {
		logging.Info(loggerFromContext(r, h.logger), "tots session created",
			slog.String(logging.FieldSessionID, resp.Data.ID),
		)
	}
	respond(w, r, http.StatusCreated, resp, h.logger)
}

// Finalize handles POST /admin/tots/sessions/{id}/finalize.
func (h *TOTSHandler) Finalize(w http.ResponseWriter, r *http.Request) {
	respond(w, r, http.StatusOK, h.svc.Finalize(r.Context(), pathVar(r, "id")), h.logger)
}

// AdminVote handles POST /admin/tots/sessions/{id}/admin-vote.
func (h *TOTSHandler) AdminVote(w http.ResponseWriter, r *http.Request) {
	user, ok := h.voter(w, r)
	if !ok {
		return
	}
	var body votePayload
	if !decodeBody(w, r, &body, h.logger) {
		return
	}
	resp := h.svc.SubmitAdminVote(r.Context(), pathVar(r, "id"), user.ID, body.PlayerIDs)
	respond(w, r, http.StatusCreated, resp, h.logger)
}

func (h *TOTSHandler) voter(w http.ResponseWriter, r *http.Request) (roles.User, bool) {
	user, ok := roles.UserFrom(r.Context())
	if !ok || !user.Authenticated() {
		writeError(w, r, http.StatusUnauthorized, "Please sign in to continue.", h.logger)
		return roles.User{}, false
	}
	return user, true
}
