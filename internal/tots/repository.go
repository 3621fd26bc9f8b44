package tots

import (
	"context"
	"errors"

	"github.com/preston-bernstein/football-admin-service/internal/domain/tots"
)

// ErrNotFound is returned by repositories for unknown keys.
var ErrNotFound = errors.New("not found")

// Repository is the persistence behind MockService. Votes are keyed by
// session, user and the admin flag; saving the same key overwrites.
type Repository interface {
	ListSessions(ctx context.Context) ([]tots.Session, error)
	GetSession(ctx context.Context, id string) (tots.Session, error)
	SaveSession(ctx context.Context, s tots.Session) error
	ListCandidates(ctx context.Context, sessionID string) ([]tots.Candidate, error)
	SaveCandidates(ctx context.Context, sessionID string, candidates []tots.Candidate) error
	SaveVote(ctx context.Context, v tots.Vote) error
	GetVote(ctx context.Context, sessionID, userID string, admin bool) (tots.Vote, error)
	ListVotes(ctx context.Context, sessionID string) ([]tots.Vote, error)
	SaveResults(ctx context.Context, r tots.Results) error
	GetResults(ctx context.Context, sessionID string) (tots.Results, error)
}
