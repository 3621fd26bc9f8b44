package testutil

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/preston-bernstein/football-admin-service/internal/poller"
)

// StubPoller stands in for the live-fixture poller.
type StubPoller struct {
	StartCalls int
	StopCalls  int
	Err        error
	StatusVal  poller.Status
}

func (p *StubPoller) Start(context.Context) { p.StartCalls++ }

func (p *StubPoller) Stop(context.Context) error {
	p.StopCalls++
	return p.Err
}

func (p *StubPoller) Status() poller.Status { return p.StatusVal }

// StubScheduler stands in for the TOTS housekeeping scheduler. It is safe to
// call from the server goroutine while a test reads Counts.
type StubScheduler struct {
	mu       sync.Mutex
	starts   int
	stops    int
	StartErr error
	StopErr  error
}

func (s *StubScheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.starts++
	return s.StartErr
}

func (s *StubScheduler) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stops++
	return s.StopErr
}

// Counts returns how many times Start and Stop ran.
func (s *StubScheduler) Counts() (starts, stops int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.starts, s.stops
}

// StubHTTPServer records calls and returns canned errors.
type StubHTTPServer struct {
	AddrVal       string
	HandlerVal    http.Handler
	ListenCalls   int
	ShutdownCalls int
	ListenErr     error
	ShutdownErr   error
}

// FailingHTTPServer fails to listen, as when the port is taken.
func FailingHTTPServer() *StubHTTPServer {
	return &StubHTTPServer{AddrVal: ":0", HandlerVal: http.NewServeMux(), ListenErr: errors.New("listen failure")}
}

// ClosedHTTPServer returns http.ErrServerClosed from ListenAndServe.
func ClosedHTTPServer() *StubHTTPServer {
	return &StubHTTPServer{AddrVal: ":0", HandlerVal: http.NewServeMux(), ListenErr: http.ErrServerClosed}
}

func (s *StubHTTPServer) ListenAndServe() error {
	s.ListenCalls++
	return s.ListenErr
}

func (s *StubHTTPServer) Shutdown(context.Context) error {
	s.ShutdownCalls++
	return s.ShutdownErr
}

func (s *StubHTTPServer) Addr() string          { return s.AddrVal }
func (s *StubHTTPServer) Handler() http.Handler { return s.HandlerVal }

// BlockingHTTPServer holds Shutdown until Unblock closes or the context ends.
type BlockingHTTPServer struct {
	AddrVal       string
	HandlerVal    http.Handler
	ShutdownCalls int
	Unblock       chan struct{}
}

func (b *BlockingHTTPServer) ListenAndServe() error { return nil }

func (b *BlockingHTTPServer) Shutdown(ctx context.Context) error {
	b.ShutdownCalls++
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-b.Unblock:
		return nil
	}
}

func (b *BlockingHTTPServer) Addr() string          { return b.AddrVal }
func (b *BlockingHTTPServer) Handler() http.Handler { return b.HandlerVal }
