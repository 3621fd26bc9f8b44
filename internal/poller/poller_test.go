package poller

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/preston-bernstein/football-admin-service/internal/domain/fixtures"
	"github.com/preston-bernstein/football-admin-service/internal/metrics"
	"github.com/preston-bernstein/football-admin-service/internal/teststubs"
)

func TestPollerFetchesAndFeedsSink(t *testing.T) {
	source := &teststubs.StubLiveSource{
		Fixtures: []fixtures.Fixture{{ID: "live-1", Status: fixtures.StatusLive}},
		Notify:   make(chan struct{}),
	}
	sink := &teststubs.StubSink{}

	p := New(source, sink, nil, nil, 10*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p.Start(ctx)

	select {
	case <-source.Notify:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("timed out waiting for initial fetch")
	}

	time.Sleep(30 * time.Millisecond) // allow at least one ticker fire

	cancel()
	_ = p.Stop(context.Background())

	last, ok := sink.Last()
	if !ok || len(last) != 1 || last[0].ID != "live-1" {
		t.Fatalf("unexpected sink contents: %+v", last)
	}
	if source.Calls.Load() < 1 {
		t.Fatalf("expected at least one fetch call")
	}
}

func TestPollerStopsOnContextCancel(t *testing.T) {
	source := &teststubs.StubLiveSource{Notify: make(chan struct{})}
	p := New(source, &teststubs.StubSink{}, nil, nil, 5*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())

	p.Start(ctx)

	select {
	case <-source.Notify:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("timed out waiting for initial fetch")
	}

	cancel()
	_ = p.Stop(context.Background())

	time.Sleep(10 * time.Millisecond)
	callsAfterStop := source.Calls.Load()
	time.Sleep(20 * time.Millisecond)
	if source.Calls.Load() != callsAfterStop {
		t.Fatalf("expected no additional fetches after stop; before=%d after=%d", callsAfterStop, source.Calls.Load())
	}
}

func TestPollerStopIsIdempotent(t *testing.T) {
	p := New(&teststubs.StubLiveSource{}, &teststubs.StubSink{}, nil, nil, time.Hour)

	if err := p.Stop(context.Background()); err != nil {
		t.Fatalf("first stop returned error: %v", err)
	}
	if err := p.Stop(context.Background()); err != nil {
		t.Fatalf("second stop returned error: %v", err)
	}
}

func TestPollerStartIsIdempotent(t *testing.T) {
	p := New(&teststubs.StubLiveSource{}, &teststubs.StubSink{}, nil, nil, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p.Start(ctx)
	p.Start(ctx) // should no-op

	if err := p.Stop(context.Background()); err != nil {
		t.Fatalf("stop returned error: %v", err)
	}
}

func TestPollerDefaultsInterval(t *testing.T) {
	p := New(&teststubs.StubLiveSource{}, &teststubs.StubSink{}, nil, nil, 0)
	if p.interval != defaultInterval {
		t.Fatalf("expected default interval %s, got %s", defaultInterval, p.interval)
	}
}

func TestPollerStartReturnsWhenAlreadyStarted(t *testing.T) {
	p := New(&teststubs.StubLiveSource{}, &teststubs.StubSink{}, nil, nil, time.Hour)
	p.started = true
	p.Start(context.Background())
	if p.ticker != nil {
		t.Fatalf("expected ticker not to be created when already started")
	}
}

func TestPollerStatusTracksFailuresAndSuccess(t *testing.T) {
	source := &teststubs.StubLiveSource{Fail: true, Message: "backend down"}
	sink := &teststubs.StubSink{}
	p := New(source, sink, nil, metrics.NewRecorder(), time.Millisecond)
	ctx := context.Background()

	p.fetchOnce(ctx)
	status := p.Status()
	if status.ConsecutiveFailures != 1 {
		t.Fatalf("expected 1 failure, got %d", status.ConsecutiveFailures)
	}
	if status.LastError != "backend down" {
		t.Fatalf("expected backend message recorded, got %q", status.LastError)
	}
	if status.IsReady() {
		t.Fatalf("expected not ready after failure")
	}
	if _, ok := sink.Last(); ok {
		t.Fatalf("failed fetch must not reach the sink")
	}

	source.SetFail(false, "")
	p.fetchOnce(ctx)
	status = p.Status()
	if status.ConsecutiveFailures != 0 || status.LastError != "" {
		t.Fatalf("expected failures reset, got %+v", status)
	}
	if !status.IsReady() {
		t.Fatalf("expected ready after success")
	}
}

func TestStatusNotReadyAfterRepeatedFailures(t *testing.T) {
	s := Status{LastSuccess: time.Now(), ConsecutiveFailures: 3}
	if s.IsReady() {
		t.Fatalf("expected not ready after three failures")
	}
}

func TestPollerNilSinkDoesNotPanic(t *testing.T) {
	source := &teststubs.StubLiveSource{Fixtures: []fixtures.Fixture{{ID: "f1"}}}
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
	p := New(source, nil, logger, nil, time.Minute)
	p.fetchOnce(context.Background())
	if !p.Status().IsReady() {
		t.Fatalf("expected success without a sink")
	}
}
