package handlers

import (
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/football-admin-service/internal/app/roster"
	"github.com/preston-bernstein/football-admin-service/internal/domain/players"
	"github.com/preston-bernstein/football-admin-service/internal/envelope"
	"github.com/preston-bernstein/football-admin-service/internal/filter"
	"github.com/preston-bernstein/football-admin-service/internal/http/requestutil"
)

// RosterHandler exposes one roster container as a CRUD resource. Mutations
// answer with the refetched list.
type RosterHandler[T roster.Entry] struct {
	roster *roster.Container[T]
	extra  func(*http.Request) []filter.Predicate[T]
	logger *slog.Logger
}

func NewRosterHandler[T roster.Entry](c *roster.Container[T], logger *slog.Logger) *RosterHandler[T] {
	return &RosterHandler[T]{roster: c, logger: logger}
}

// NewPlayersHandler adds the position and teamId list filters.
func NewPlayersHandler(c *roster.Container[players.Player], logger *slog.Logger) *RosterHandler[players.Player] {
	h := NewRosterHandler(c, logger)
	h.extra = func(r *http.Request) []filter.Predicate[players.Player] {
		return []filter.Predicate[players.Player]{
			roster.ByPosition(requestutil.Query(r, "position")),
			roster.ByTeam(requestutil.Query(r, "teamId")),
		}
	}
	return h
}

// List refetches the roster and filters it by ?q=.
func (h *RosterHandler[T]) List(w http.ResponseWriter, r *http.Request) {
	if n := h.roster.Load(r.Context()); !n.OK() {
		writeError(w, r, http.StatusBadGateway, n.Message, h.logger)
		return
	}
	var extra []filter.Predicate[T]
	if h.extra != nil {
		extra = h.extra(r)
	}
	items := h.roster.Search(requestutil.Query(r, "q"), extra...)
	if items == nil {
		items = []T{}
	}
	writeJSON(w, http.StatusOK, envelope.OK("", items), loggerFromContext(r, h.logger))
}

// Get serves one entry from the cache, loading the roster first if needed.
func (h *RosterHandler[T]) Get(w http.ResponseWriter, r *http.Request) {
	id := pathVar(r, "id")
	item, ok := h.roster.Find(id)
	if !ok {
		if n := h.roster.Load(r.Context()); !n.OK() {
			writeError(w, r, http.StatusBadGateway, n.Message, h.logger)
			return
		}
		item, ok = h.roster.Find(id)
	}
	if !ok {
		writeError(w, r, http.StatusNotFound, "entry not found", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, envelope.OK("", item), loggerFromContext(r, h.logger))
}

func (h *RosterHandler[T]) Create(w http.ResponseWriter, r *http.Request) {
	var item T
	if !decodeBody(w, r, &item, h.logger) {
		return
	}
	n := h.roster.Create(r.Context(), item)
	respondNotice(w, r, http.StatusCreated, n, h.roster.Items(), h.logger)
}

func (h *RosterHandler[T]) Update(w http.ResponseWriter, r *http.Request) {
	var item T
	if !decodeBody(w, r, &item, h.logger) {
		return
	}
	n := h.roster.Update(r.Context(), pathVar(r, "id"), item)
	respondNotice(w, r, http.StatusOK, n, h.roster.Items(), h.logger)
}

func (h *RosterHandler[T]) Delete(w http.ResponseWriter, r *http.Request) {
	n := h.roster.Delete(r.Context(), pathVar(r, "id"))
	respondNotice(w, r, http.StatusOK, n, h.roster.Items(), h.logger)
}
