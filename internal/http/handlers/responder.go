package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/preston-bernstein/football-admin-service/internal/app/notice"
	"github.com/preston-bernstein/football-admin-service/internal/envelope"
	"github.com/preston-bernstein/football-admin-service/internal/http/middleware"
	"github.com/preston-bernstein/football-admin-service/internal/http/requestutil"
	"github.com/preston-bernstein/football-admin-service/internal/logging"
)

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logging.Error(logger, "failed to encode response", err)
	}
}

// writeError answers with a failure envelope. The request id travels in the
// X-Request-ID header set by the logging middleware.
func writeError(w http.ResponseWriter, r *http.Request, status int, message string, logger *slog.Logger) {
	if w.Header().Get("X-Request-ID") == "" {
		if reqID := middleware.RequestIDFromContext(r.Context()); reqID != "" {
			w.Header().Set("X-Request-ID", reqID)
		}
	}
	writeJSON(w, status, envelope.Failure[any](message), loggerFromContext(r, logger))
}

// respond writes resp with status on success. Failed reads are reported as
// 502 (the backend could not serve them), failed writes as 400.
func respond[T any](w http.ResponseWriter, r *http.Request, status int, resp envelope.Response[T], logger *slog.Logger) {
	if !resp.Success() {
		writeError(w, r, failureStatus(r), resp.Message, logger)
		return
	}
	writeJSON(w, status, resp, loggerFromContext(r, logger))
}

// respondNotice converts a view-model notice into an envelope carrying data.
func respondNotice[T any](w http.ResponseWriter, r *http.Request, status int, n notice.Notice, data T, logger *slog.Logger) {
	if !n.OK() {
		writeError(w, r, failureStatus(r), n.Message, logger)
		return
	}
	writeJSON(w, status, envelope.OK(n.Message, data), loggerFromContext(r, logger))
}

func failureStatus(r *http.Request) int {
	if r.Method == http.MethodGet {
		return http.StatusBadGateway
	}
	return http.StatusBadRequest
}

// decodeBody decodes the JSON request body into dest, answering 400 on error.
func decodeBody(w http.ResponseWriter, r *http.Request, dest any, logger *slog.Logger) bool {
	if err := requestutil.DecodeJSON(w, r, dest); err != nil {
		msg := "invalid request body"
		if errors.Is(err, requestutil.ErrEmptyBody) {
			msg = "request body is required"
		}
		logging.Debug(loggerFromContext(r, logger), "request body rejected", slog.Any("err", err))
		writeError(w, r, http.StatusBadRequest, msg, logger)
		return false
	}
	return true
}

func pathVar(r *http.Request, key string) string {
	return mux.Vars(r)[key]
}

func loggerFromContext(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if r == nil {
		return fallback
	}
	return logging.FromContext(r.Context(), fallback)
}
