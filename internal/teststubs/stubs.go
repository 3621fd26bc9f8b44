package teststubs

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/preston-bernstein/football-admin-service/internal/domain/fixtures"
	"github.com/preston-bernstein/football-admin-service/internal/envelope"
)

// StubLiveSource is a test double for poller.Source.
type StubLiveSource struct {
	mu       sync.Mutex
	Fixtures []fixtures.Fixture
	Message  string
	Fail     bool
	Calls    atomic.Int32
	Notify   chan struct{}
}

// ListLiveFixtures returns the configured fixtures, or a failure envelope when Fail is set.
func (s *StubLiveSource) ListLiveFixtures(ctx context.Context) envelope.Response[[]fixtures.Fixture] {
	_ = ctx
	if s.Notify != nil {
		select {
		case <-s.Notify:
		default:
			close(s.Notify)
		}
	}
	s.Calls.Add(1)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Fail {
		return envelope.Failure[[]fixtures.Fixture](s.Message)
	}
	return envelope.OK("ok", append([]fixtures.Fixture(nil), s.Fixtures...))
}

// SetFail toggles failure mode while a poller may be running.
func (s *StubLiveSource) SetFail(fail bool, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Fail = fail
	s.Message = message
}

// StubSink is a test double for poller.Sink.
type StubSink struct {
	mu       sync.Mutex
	Replaced [][]fixtures.Fixture
}

func (s *StubSink) Replace(list []fixtures.Fixture) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Replaced = append(s.Replaced, list)
}

// Last returns the most recent batch handed to the sink.
func (s *StubSink) Last() ([]fixtures.Fixture, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.Replaced) == 0 {
		return nil, false
	}
	return s.Replaced[len(s.Replaced)-1], true
}
