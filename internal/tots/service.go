// Package tots implements Team of the Season voting: the service contract the
// HTTP layer talks to, a backend-backed implementation and local dev stores.
package tots

import (
	"context"

	"github.com/preston-bernstein/football-admin-service/internal/domain/players"
	"github.com/preston-bernstein/football-admin-service/internal/domain/tots"
	"github.com/preston-bernstein/football-admin-service/internal/envelope"
)

// Service is implemented by RemoteService (production) and MockService (dev).
// userID is ignored by RemoteService, which identifies the voter from the
// forwarded credentials.
type Service interface {
	ListSessions(ctx context.Context) envelope.Response[[]tots.Session]
	ActiveSession(ctx context.Context) envelope.Response[tots.Session]
	CreateSession(ctx context.Context, s tots.NewSession) envelope.Response[tots.Session]
	Candidates(ctx context.Context, sessionID string) envelope.Response[[]tots.Candidate]
	SubmitUserVote(ctx context.Context, sessionID, userID string, playerIDs []string) envelope.Response[tots.Vote]
	GetUserVote(ctx context.Context, sessionID, userID string) envelope.Response[tots.Vote]
	SubmitAdminVote(ctx context.Context, sessionID, userID string, playerIDs []string) envelope.Response[tots.Vote]
	Finalize(ctx context.Context, sessionID string) envelope.Response[tots.Results]
	Results(ctx context.Context, sessionID string) envelope.Response[tots.Results]
}

// ResultsWriter persists finalized results.
type ResultsWriter interface {
	WriteResults(results tots.Results) error
}

// ResultsReader loads previously persisted results.
type ResultsReader interface {
	LoadResults(sessionID string) (tots.Results, error)
}

// Formation is the number of slots per position in the Team of the Season.
var Formation = map[players.Position]int{
	players.PositionGoalkeeper: 1,
	players.PositionDefender:   4,
	players.PositionMidfielder: 3,
	players.PositionForward:    3,
}

const (
	voteKindUser  = "user"
	voteKindAdmin = "admin"
)

// ResultsSource exposes a Service through the snapshot syncer's source
// contract.
type ResultsSource struct {
	Service
}

// SessionResults returns the finalized results for sessionID.
func (s ResultsSource) SessionResults(ctx context.Context, sessionID string) envelope.Response[tots.Results] {
	return s.Results(ctx, sessionID)
}
