package backend

import (
	"context"
	"net/http"

	"github.com/preston-bernstein/football-admin-service/internal/domain/tots"
	"github.com/preston-bernstein/football-admin-service/internal/envelope"
)

const totsPath = "/tots/sessions"

type votePayload struct {
	PlayerIDs []string `json:"playerIds"`
}

func (c *Client) ListSessions(ctx context.Context) envelope.Response[[]tots.Session] {
	return call[[]tots.Session](ctx, c, request{op: "tots.sessions", method: http.MethodGet, path: totsPath})
}

func (c *Client) ActiveSession(ctx context.Context) envelope.Response[tots.Session] {
	return call[tots.Session](ctx, c, request{op: "tots.active", method: http.MethodGet, path: "/tots/active"})
}

func (c *Client) CreateSession(ctx context.Context, s tots.NewSession) envelope.Response[tots.Session] {
	return call[tots.Session](ctx, c, request{op: "tots.create", method: http.MethodPost, path: totsPath, body: s})
}

func (c *Client) SessionCandidates(ctx context.Context, sessionID string) envelope.Response[[]tots.Candidate] {
	return call[[]tots.Candidate](ctx, c, request{
		op:     "tots.candidates",
		method: http.MethodGet,
		path:   totsPath + joinPath(sessionID, "candidates"),
	})
}

// SubmitVote records the calling user's selection for the session.
func (c *Client) SubmitVote(ctx context.Context, sessionID string, playerIDs []string) envelope.Response[tots.Vote] {
	return call[tots.Vote](ctx, c, request{
		op:     "tots.vote",
		method: http.MethodPost,
		path:   totsPath + joinPath(sessionID, "vote"),
		body:   votePayload{PlayerIDs: playerIDs},
	})
}

func (c *Client) UserVote(ctx context.Context, sessionID string) envelope.Response[tots.Vote] {
	return call[tots.Vote](ctx, c, request{
		op:     "tots.user_vote",
		method: http.MethodGet,
		path:   totsPath + joinPath(sessionID, "vote"),
	})
}

func (c *Client) SubmitAdminVote(ctx context.Context, sessionID string, playerIDs []string) envelope.Response[tots.Vote] {
	return call[tots.Vote](ctx, c, request{
		op:     "tots.admin_vote",
		method: http.MethodPost,
		path:   totsPath + joinPath(sessionID, "admin-vote"),
		body:   votePayload{PlayerIDs: playerIDs},
	})
}

func (c *Client) FinalizeSession(ctx context.Context, sessionID string) envelope.Response[tots.Results] {
	return call[tots.Results](ctx, c, request{
		op:     "tots.finalize",
		method: http.MethodPost,
		path:   totsPath + joinPath(sessionID, "finalize"),
	})
}

func (c *Client) SessionResults(ctx context.Context, sessionID string) envelope.Response[tots.Results] {
	return call[tots.Results](ctx, c, request{
		op:     "tots.results",
		method: http.MethodGet,
		path:   totsPath + joinPath(sessionID, "results"),
	})
}
