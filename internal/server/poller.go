package server

import (
	"context"

	"github.com/preston-bernstein/football-admin-service/internal/poller"
)

// Poller defines the minimal poller behavior needed by the server.
type Poller interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
	Status() poller.Status
}

// Scheduler is the daily TOTS housekeeping loop.
type Scheduler interface {
	Start() error
	Stop() error
}
