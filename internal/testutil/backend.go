package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// RecordedRequest is one call received by FakeBackend.
type RecordedRequest struct {
	Method        string
	Path          string
	Query         string
	Authorization string
	Body          []byte
}

// FakeBackend is an httptest server answering with canned envelopes per route.
type FakeBackend struct {
	server *httptest.Server

	mu       sync.Mutex
	routes   map[string]fakeRoute
	requests []RecordedRequest
}

type fakeRoute struct {
	status int
	body   any
}

// NewFakeBackend starts a fake backend closed automatically at test cleanup.
// Unknown routes answer 404 with a "99" envelope.
func NewFakeBackend(t *testing.T) *FakeBackend {
	t.Helper()
	fb := &FakeBackend{routes: map[string]fakeRoute{}}
	fb.server = httptest.NewServer(http.HandlerFunc(fb.serve))
	t.Cleanup(fb.server.Close)
	return fb
}

// URL returns the base URL to hand to the backend client.
func (fb *FakeBackend) URL() string {
	return fb.server.URL
}

// Reply registers a "00" envelope for method and path.
func (fb *FakeBackend) Reply(method, path, message string, data any) {
	fb.ReplyStatus(method, path, http.StatusOK, map[string]any{"code": "00", "message": message, "data": data})
}

// Fail registers a "99" envelope for method and path.
func (fb *FakeBackend) Fail(method, path string, status int, message string) {
	fb.ReplyStatus(method, path, status, map[string]any{"code": "99", "message": message, "data": nil})
}

// ReplyStatus registers an arbitrary JSON body and status.
func (fb *FakeBackend) ReplyStatus(method, path string, status int, body any) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	fb.routes[method+" "+path] = fakeRoute{status: status, body: body}
}

// Requests returns a copy of the calls received so far.
func (fb *FakeBackend) Requests() []RecordedRequest {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return append([]RecordedRequest(nil), fb.requests...)
}

// Last returns the most recent call, if any.
func (fb *FakeBackend) Last() (RecordedRequest, bool) {
	reqs := fb.Requests()
	if len(reqs) == 0 {
		return RecordedRequest{}, false
	}
	return reqs[len(reqs)-1], true
}

func (fb *FakeBackend) serve(w http.ResponseWriter, r *http.Request) {
	var body []byte
	if r.Body != nil {
		var raw json.RawMessage
		if err := json.NewDecoder(r.Body).Decode(&raw); err == nil {
			body = raw
		}
	}

	fb.mu.Lock()
	fb.requests = append(fb.requests, RecordedRequest{
		Method:        r.Method,
		Path:          r.URL.Path,
		Query:         r.URL.RawQuery,
		Authorization: r.Header.Get("Authorization"),
		Body:          body,
	})
	route, ok := fb.routes[r.Method+" "+r.URL.Path]
	fb.mu.Unlock()

	if !ok {
		route = fakeRoute{
			status: http.StatusNotFound,
			body:   map[string]any{"code": "99", "message": "route not found", "data": nil},
		}
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(route.status)
	_ = json.NewEncoder(w).Encode(route.body)
}
