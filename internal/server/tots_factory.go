package server

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/preston-bernstein/football-admin-service/internal/backend"
	"github.com/preston-bernstein/football-admin-service/internal/config"
	"github.com/preston-bernstein/football-admin-service/internal/logging"
	"github.com/preston-bernstein/football-admin-service/internal/metrics"
	"github.com/preston-bernstein/football-admin-service/internal/snapshots"
	"github.com/preston-bernstein/football-admin-service/internal/tots"
)

type totsComponents struct {
	service tots.Service
	writer  *snapshots.Writer
	store   *snapshots.FSStore
	syncer  *snapshots.Syncer
	// closer releases the local SQLite store, when one is open.
	closer io.Closer
}

// buildTOTS picks the remote backend or the local mock, and wires result
// snapshots to whichever is chosen.
func buildTOTS(ctx context.Context, cfg config.TOTSConfig, client *backend.Client, logger *slog.Logger, rec *metrics.Recorder, now func() time.Time) (totsComponents, error) {
	writer := snapshots.NewWriter(cfg.ResultsDir, cfg.RetentionDays)
	store := snapshots.NewFSStore(cfg.ResultsDir)
	out := totsComponents{writer: writer, store: store}

	if !cfg.UseMock {
		out.service = tots.NewRemoteService(client, writer, store, logger, rec)
		out.syncer = snapshots.NewSyncer(tots.ResultsSource{Service: out.service}, writer, logger)
		return out, nil
	}

	repo, closer, err := openRepository(ctx, cfg.MockDSN)
	if err != nil {
		return totsComponents{}, err
	}
	if now == nil {
		now = time.Now
	}
	if err := tots.Seed(ctx, repo, now()); err != nil {
		if closer != nil {
			closer.Close()
		}
		return totsComponents{}, fmt.Errorf("seed tots store: %w", err)
	}
	logging.Warn(logger, "tots running against the local mock store", slog.Bool("persistent", closer != nil))

	out.service = tots.NewMockService(repo, tots.MockOptions{
		Now:     now,
		Writer:  writer,
		Reader:  store,
		Logger:  logger,
		Metrics: rec,
	})
	out.syncer = snapshots.NewSyncer(tots.ResultsSource{Service: out.service}, writer, logger)
	out.closer = closer
	return out, nil
}

func openRepository(ctx context.Context, dsn string) (tots.Repository, io.Closer, error) {
	if dsn == "" {
		return tots.NewMemoryStore(), nil, nil
	}
	db, err := tots.OpenSQLite(ctx, dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("open tots store: %w", err)
	}
	return db, db, nil
}
