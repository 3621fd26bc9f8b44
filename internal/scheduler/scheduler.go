// Package scheduler runs the daily TOTS housekeeping jobs.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/preston-bernstein/football-admin-service/internal/logging"
	"github.com/preston-bernstein/football-admin-service/internal/snapshots"
	"github.com/preston-bernstein/football-admin-service/internal/tots"
)

const jobTimeout = 5 * time.Minute

// Scheduler finalizes expired TOTS sessions and backfills result snapshots
// once a day at a fixed UTC hour.
type Scheduler struct {
	s       gocron.Scheduler
	tots    tots.Service
	syncer  *snapshots.Syncer
	hourUTC int
	logger  *slog.Logger
	now     func() time.Time
}

// New builds a scheduler; syncer may be nil.
func New(svc tots.Service, syncer *snapshots.Syncer, hourUTC int, logger *slog.Logger) (*Scheduler, error) {
	if hourUTC < 0 || hourUTC > 23 {
		return nil, fmt.Errorf("finalize hour %d out of range", hourUTC)
	}
	s, err := gocron.NewScheduler(gocron.WithLocation(time.UTC))
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}
	return &Scheduler{
		s:       s,
		tots:    svc,
		syncer:  syncer,
		hourUTC: hourUTC,
		logger:  logger,
		now:     time.Now,
	}, nil
}

// Start registers the jobs and starts the scheduler.
func (s *Scheduler) Start() error {
	_, err := s.s.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(uint(s.hourUTC), 0, 0))),
		gocron.NewTask(s.finalizeExpired),
		gocron.WithName("tots-finalizer"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("failed to create finalizer job: %w", err)
	}

	if s.syncer != nil {
		_, err = s.s.NewJob(
			gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(uint(s.hourUTC), 30, 0))),
			gocron.NewTask(s.syncSnapshots),
			gocron.WithName("tots-snapshot-sync"),
			gocron.WithSingletonMode(gocron.LimitModeReschedule),
		)
		if err != nil {
			return fmt.Errorf("failed to create snapshot sync job: %w", err)
		}
	}

	s.s.Start()
	logging.Info(s.logger, "scheduler started", slog.Int("finalize_hour_utc", s.hourUTC))
	return nil
}

// Stop waits for running jobs and shuts the scheduler down.
func (s *Scheduler) Stop() error {
	if err := s.s.Shutdown(); err != nil {
		return fmt.Errorf("failed to stop scheduler: %w", err)
	}
	return nil
}

func (s *Scheduler) finalizeExpired() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	done := tots.FinalizeExpired(ctx, s.tots, s.now(), s.logger)
	logging.Info(s.logger, "tots finalizer run complete", slog.Int(logging.FieldCount, len(done)))
}

func (s *Scheduler) syncSnapshots() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()
	s.syncer.Run(ctx)
}
