package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/preston-bernstein/football-admin-service/internal/metrics"
)

type stubListener struct {
	addr net.Addr
}

func (s *stubListener) Accept() (net.Conn, error) { return nil, errors.New("accept failure") }
func (s *stubListener) Close() error              { return nil }
func (s *stubListener) Addr() net.Addr            { return s.addr }

func TestNetHTTPServerServesInjectedListener(t *testing.T) {
	l := &stubListener{addr: &net.TCPAddr{IP: net.IPv4zero, Port: 0}}
	s := netHTTPServer{srv: &http.Server{Handler: http.NewServeMux()}, listener: l}

	if err := s.ListenAndServe(); err == nil {
		t.Fatalf("expected serve error from stub listener")
	}
}

func TestNetHTTPServerListenReturnsAfterShutdown(t *testing.T) {
	srv := &http.Server{Addr: "127.0.0.1:0", Handler: http.NewServeMux()}
	s := netHTTPServer{srv: srv}
	done := make(chan error, 1)
	go func() { done <- s.ListenAndServe() }()

	time.Sleep(50 * time.Millisecond)
	_ = s.Shutdown(context.Background())

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("listen did not return after shutdown")
	}
}

func TestServerHTTPSettings(t *testing.T) {
	cfg := testConfig(t, "http://localhost:1")
	cfg.Server.Port = "4100"

	srv, err := newServerWithMetrics(cfg, nil, metrics.NewRecorder())
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	if srv.httpServer.Addr() != ":4100" {
		t.Fatalf("expected port from config, got %q", srv.httpServer.Addr())
	}
	inner := srv.httpServer.(netHTTPServer).srv
	if inner.WriteTimeout <= inner.ReadTimeout {
		t.Fatalf("expected write timeout to exceed read timeout, got %s/%s", inner.WriteTimeout, inner.ReadTimeout)
	}
	if inner.IdleTimeout != idleTimeout {
		t.Fatalf("expected idle timeout %s, got %s", idleTimeout, inner.IdleTimeout)
	}
}
