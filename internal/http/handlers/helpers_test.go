package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"

	"github.com/preston-bernstein/football-admin-service/internal/backend"
	"github.com/preston-bernstein/football-admin-service/internal/envelope"
	"github.com/preston-bernstein/football-admin-service/internal/roles"
	"github.com/preston-bernstein/football-admin-service/internal/testutil"
)

func newTestClient(t *testing.T) (*testutil.FakeBackend, *backend.Client) {
	t.Helper()
	fb := testutil.NewFakeBackend(t)
	return fb, backend.NewClient(backend.Config{BaseURL: fb.URL()})
}

// call runs h with the given path variables and an optional JSON body.
func call(h http.HandlerFunc, method, target, body string, vars map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if vars != nil {
		req = mux.SetURLVars(req, vars)
	}
	return testutil.ServeRequest(h, req)
}

// callAs is call with a signed-in user on the request context.
func callAs(user roles.User, h http.HandlerFunc, method, target, body string, vars map[string]string) *httptest.ResponseRecorder {
	return call(func(w http.ResponseWriter, r *http.Request) {
		h(w, r.WithContext(roles.WithUser(r.Context(), user)))
	}, method, target, body, vars)
}

func decodeEnvelope[T any](t *testing.T, rr *httptest.ResponseRecorder) envelope.Response[T] {
	t.Helper()
	var resp envelope.Response[T]
	testutil.DecodeJSON(t, rr, &resp)
	return resp
}

func expectFailure(t *testing.T, rr *httptest.ResponseRecorder, status int, message string) {
	t.Helper()
	testutil.AssertStatus(t, rr, status)
	resp := decodeEnvelope[any](t, rr)
	if resp.Success() {
		t.Fatalf("expected failure envelope, got %+v", resp)
	}
	if message != "" && resp.Message != message {
		t.Fatalf("expected message %q, got %q", message, resp.Message)
	}
}
