package tots

import (
	"context"
	"log/slog"
	"time"

	"github.com/preston-bernstein/football-admin-service/internal/logging"
)

// FinalizeExpired finalizes every active session whose voting window closed
// before now. It returns the ids it finalized.
func FinalizeExpired(ctx context.Context, svc Service, now time.Time, logger *slog.Logger) []string {
	resp := svc.ListSessions(ctx)
	if !resp.Success() {
		logging.Warn(logger, "tots finalizer: list sessions failed", slog.String("message", resp.Message))
		return nil
	}

	var done []string
	for _, s := range resp.Data {
		if ctx.Err() != nil {
			break
		}
		if s.Finalized || !s.Active || !s.Expired(now) {
			continue
		}
		result := svc.Finalize(ctx, s.ID)
		if !result.Success() {
			logging.Warn(logger, "tots finalizer: finalize failed",
				slog.String(logging.FieldSessionID, s.ID),
				slog.String("message", result.Message),
			)
			continue
		}
		done = append(done, s.ID)
	}
	return done
}
