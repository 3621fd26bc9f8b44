package handlers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/preston-bernstein/football-admin-service/internal/app/notice"
	"github.com/preston-bernstein/football-admin-service/internal/envelope"
	"github.com/preston-bernstein/football-admin-service/internal/poller"
	"github.com/preston-bernstein/football-admin-service/internal/testutil"
)

func TestHealth(t *testing.T) {
	h := NewHandler(nil, nil)

	rr := testutil.Serve(http.HandlerFunc(h.Health), http.MethodGet, "/health", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	resp := decodeEnvelope[map[string]string](t, rr)
	if !resp.Success() || resp.Data["status"] != "ok" {
		t.Fatalf("unexpected health body %+v", resp)
	}
}

func TestHealthShuttingDownReturnsServiceUnavailable(t *testing.T) {
	h := NewHandler(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	ctx, cancel := context.WithCancel(req.Context())
	cancel()
	rr := testutil.ServeRequest(http.HandlerFunc(h.Health), req.WithContext(ctx))

	expectFailure(t, rr, http.StatusServiceUnavailable, "shutting down")
}

func TestReady(t *testing.T) {
	last := time.Date(2026, 4, 11, 15, 0, 0, 0, time.UTC)
	cases := []struct {
		name    string
		status  func() poller.Status
		want    int
		message string
	}{
		{name: "no poller", status: nil, want: http.StatusOK},
		{
			name:   "recent success",
			status: func() poller.Status { return poller.Status{LastSuccess: last, ConsecutiveFailures: 1} },
			want:   http.StatusOK,
		},
		{
			name:    "never succeeded",
			status:  func() poller.Status { return poller.Status{} },
			want:    http.StatusServiceUnavailable,
			message: "not ready",
		},
		{
			name: "failing",
			status: func() poller.Status {
				return poller.Status{LastSuccess: last, ConsecutiveFailures: 3, LastError: "backend unreachable"}
			},
			want:    http.StatusServiceUnavailable,
			message: "backend unreachable",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := NewHandler(nil, tc.status)
			rr := testutil.Serve(http.HandlerFunc(h.Ready), http.MethodGet, "/ready", nil)
			if tc.want != http.StatusOK {
				expectFailure(t, rr, tc.want, tc.message)
				return
			}
			testutil.AssertStatus(t, rr, http.StatusOK)
			resp := decodeEnvelope[readiness](t, rr)
			if resp.Data.Status != "ready" {
				t.Fatalf("expected ready, got %+v", resp.Data)
			}
		})
	}
}

func TestRespondMapsFailureStatusByMethod(t *testing.T) {
	failed := envelope.Failure[string]("Fixture not found")
	h := func(w http.ResponseWriter, r *http.Request) {
		respond(w, r, http.StatusOK, failed, nil)
	}

	expectFailure(t, call(h, http.MethodGet, "/x", "", nil), http.StatusBadGateway, "Fixture not found")
	expectFailure(t, call(h, http.MethodPost, "/x", "", nil), http.StatusBadRequest, "Fixture not found")
}

func TestRespondNotice(t *testing.T) {
	ok := func(w http.ResponseWriter, r *http.Request) {
		respondNotice(w, r, http.StatusCreated, notice.Success("Created"), []string{"a"}, nil)
	}
	rr := call(ok, http.MethodPost, "/x", "", nil)
	testutil.AssertStatus(t, rr, http.StatusCreated)
	resp := decodeEnvelope[[]string](t, rr)
	if resp.Message != "Created" || len(resp.Data) != 1 {
		t.Fatalf("unexpected body %+v", resp)
	}

	bad := func(w http.ResponseWriter, r *http.Request) {
		respondNotice(w, r, http.StatusCreated, notice.Error("Jersey number taken"), []string{"a"}, nil)
	}
	expectFailure(t, call(bad, http.MethodPost, "/x", "", nil), http.StatusBadRequest, "Jersey number taken")
}

func TestFailureEnvelopeCarriesNullData(t *testing.T) {
	rr := call(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusTeapot, "boom", nil)
	}, http.MethodGet, "/x", "", nil)

	testutil.AssertStatus(t, rr, http.StatusTeapot)
	if got := rr.Header().Get("Content-Type"); got != "application/json" {
		t.Fatalf("expected content type json, got %s", got)
	}
	if !bytes.Contains(rr.Body.Bytes(), []byte(`"data":null`)) {
		t.Fatalf("expected null data, got %s", rr.Body.String())
	}
}

func TestWriteJSONLogsEncodeError(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	rr := testutil.Serve(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, make(chan int), logger)
	}), http.MethodGet, "/encode-error", nil)

	testutil.AssertStatus(t, rr, http.StatusOK)
	if !bytes.Contains(buf.Bytes(), []byte("failed to encode response")) {
		t.Fatalf("expected encode error to be logged, got %s", buf.String())
	}
}

func TestDecodeBodyRejectsEmptyAndUnknownFields(t *testing.T) {
	h := func(w http.ResponseWriter, r *http.Request) {
		var dest struct {
			Name string `json:"name"`
		}
		if decodeBody(w, r, &dest, nil) {
			writeJSON(w, http.StatusOK, envelope.OK("", dest.Name), nil)
		}
	}

	expectFailure(t, call(h, http.MethodPost, "/x", "", nil), http.StatusBadRequest, "request body is required")
	expectFailure(t, call(h, http.MethodPost, "/x", `{"nope":1}`, nil), http.StatusBadRequest, "invalid request body")

	rr := call(h, http.MethodPost, "/x", `{"name":"ok"}`, nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
}
