package middleware

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/preston-bernstein/football-admin-service/internal/backend"
	"github.com/preston-bernstein/football-admin-service/internal/envelope"
	"github.com/preston-bernstein/football-admin-service/internal/logging"
	"github.com/preston-bernstein/football-admin-service/internal/roles"
)

const (
	msgSignInRequired = "Please sign in to continue."
	msgForbidden      = "You do not have permission to perform this action."
)

// ProfileFetcher resolves the caller from the credentials on ctx.
type ProfileFetcher interface {
	Profile(ctx context.Context) envelope.Response[roles.User]
}

// Credentials forwards the caller's bearer token and cookies to every backend
// call made while serving the request.
func Credentials(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := backend.WithCredentials(r.Context(), backend.CredentialsFromRequest(r))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Authenticate loads the caller's profile and stores it on the context.
// Requests without credentials, or whose profile lookup fails, get a 401.
func Authenticate(profiles ProfileFetcher, baseLogger *slog.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			creds := backend.CredentialsFrom(ctx)
			if creds.Token == "" && len(creds.Cookies) == 0 {
				creds = backend.CredentialsFromRequest(r)
				ctx = backend.WithCredentials(ctx, creds)
			}
			if creds.Token == "" && len(creds.Cookies) == 0 {
				writeFailure(w, http.StatusUnauthorized, msgSignInRequired)
				return
			}

			resp := profiles.Profile(ctx)
			if !resp.Success() || !resp.Data.Authenticated() {
				logging.Warn(logging.FromContext(ctx, baseLogger), "profile lookup rejected",
					slog.String("message", resp.Message),
				)
				writeFailure(w, http.StatusUnauthorized, msgSignInRequired)
				return
			}
			next.ServeHTTP(w, r.WithContext(roles.WithUser(ctx, resp.Data)))
		})
	}
}

// Require rejects with 403 unless allow accepts the authenticated user.
// It must run after Authenticate.
func Require(allow func(roles.User) bool) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := roles.UserFrom(r.Context())
			if !ok {
				writeFailure(w, http.StatusUnauthorized, msgSignInRequired)
				return
			}
			if !allow(user) {
				logging.Warn(logging.FromContext(r.Context(), nil), "role check failed",
					slog.String("role", string(user.Role)),
				)
				writeFailure(w, http.StatusForbidden, msgForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func writeFailure(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(envelope.Failure[any](message))
}
