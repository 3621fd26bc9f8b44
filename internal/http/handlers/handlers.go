// Package handlers holds the HTTP handlers behind the service's routes. Every
// response body is a {code, message, data} envelope.
package handlers

import (
	"log/slog"
	nethttp "net/http"
	"time"

	"github.com/preston-bernstein/football-admin-service/internal/envelope"
	"github.com/preston-bernstein/football-admin-service/internal/poller"
)

// Handler serves the operational endpoints.
type Handler struct {
	logger   *slog.Logger
	statusFn func() poller.Status
}

// NewHandler constructs a Handler. statusFn may be nil when no poller runs.
func NewHandler(logger *slog.Logger, statusFn func() poller.Status) *Handler {
	return &Handler{
		logger:   logger,
		statusFn: statusFn,
	}
}

type readiness struct {
	Status              string     `json:"status"`
	ConsecutiveFailures int        `json:"consecutiveFailures"`
	LastSuccess         *time.Time `json:"lastSuccess,omitempty"`
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, envelope.OK("ok", map[string]string{"status": "ok"}), h.logger)
}

// Ready reports readiness for traffic: the live poller has succeeded recently.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if h.statusFn == nil {
		writeJSON(w, nethttp.StatusOK, envelope.OK("ready", readiness{Status: "ready"}), h.logger)
		return
	}
	status := h.statusFn()
	if status.IsReady() {
		body := readiness{Status: "ready", ConsecutiveFailures: status.ConsecutiveFailures}
		if !status.LastSuccess.IsZero() {
			last := status.LastSuccess
			body.LastSuccess = &last
		}
		writeJSON(w, nethttp.StatusOK, envelope.OK("ready", body), h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, msg, h.logger)
}

// NotFound answers unmatched routes with a failure envelope.
func NotFound(logger *slog.Logger) nethttp.Handler {
	return nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		writeError(w, r, nethttp.StatusNotFound, "not found", logger)
	})
}

// MethodNotAllowed answers a known path called with the wrong method.
func MethodNotAllowed(logger *slog.Logger) nethttp.Handler {
	return nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", logger)
	})
}
