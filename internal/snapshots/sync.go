package snapshots

import (
	"context"
	"log/slog"

	"github.com/preston-bernstein/football-admin-service/internal/domain/tots"
	"github.com/preston-bernstein/football-admin-service/internal/envelope"
	"github.com/preston-bernstein/football-admin-service/internal/logging"
)

// Source lists sessions and serves finalized results.
type Source interface {
	ListSessions(ctx context.Context) envelope.Response[[]tots.Session]
	SessionResults(ctx context.Context, sessionID string) envelope.Response[tots.Results]
}

// Syncer backfills results snapshots for finalized sessions missing locally.
type Syncer struct {
	source Source
	writer *Writer
	store  *FSStore
	logger *slog.Logger
}

// NewSyncer constructs a snapshot syncer.
func NewSyncer(source Source, writer *Writer, logger *slog.Logger) *Syncer {
	return &Syncer{
		source: source,
		writer: writer,
		store:  NewFSStore(writer.BasePath()),
		logger: logger,
	}
}

// Run performs one backfill pass and prunes expired snapshots. It returns
// how many snapshots were written.
func (s *Syncer) Run(ctx context.Context) int {
	if s == nil || s.source == nil || s.writer == nil {
		return 0
	}
	sessions := s.source.ListSessions(ctx)
	if !sessions.Success() {
		logging.Warn(s.logger, "snapshot sync: list sessions failed", slog.String("message", sessions.Message))
		return 0
	}

	written := 0
	for _, session := range sessions.Data {
		if ctx.Err() != nil {
			break
		}
		if !session.Finalized || s.store.HasResults(session.ID) {
			continue
		}
		if s.fetchAndWrite(ctx, session.ID) {
			written++
		}
	}

	if err := s.writer.Prune(); err != nil {
		logging.Warn(s.logger, "snapshot prune failed", slog.Any("error", err))
	}
	logging.Info(s.logger, "snapshot sync complete", slog.Int(logging.FieldCount, written))
	return written
}

func (s *Syncer) fetchAndWrite(ctx context.Context, sessionID string) bool {
	resp := s.source.SessionResults(ctx, sessionID)
	if !resp.Success() {
		logging.Warn(s.logger, "snapshot fetch failed",
			slog.String(logging.FieldSessionID, sessionID),
			slog.String("message", resp.Message),
		)
		return false
	}
	results := resp.Data
	if results.SessionID == "" {
		results.SessionID = sessionID
	}
	if err := s.writer.WriteResults(results); err != nil {
		logging.Error(s.logger, "snapshot write failed", err, slog.String(logging.FieldSessionID, sessionID))
		return false
	}
	return true
}
