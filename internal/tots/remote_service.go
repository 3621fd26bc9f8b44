package tots

import (
	"context"
	"log/slog"

	"github.com/preston-bernstein/football-admin-service/internal/backend"
	"github.com/preston-bernstein/football-admin-service/internal/domain/tots"
	"github.com/preston-bernstein/football-admin-service/internal/envelope"
	"github.com/preston-bernstein/football-admin-service/internal/metrics"
)

// RemoteService implements Service by calling the sports backend.
type RemoteService struct {
	client  *backend.Client
	writer  ResultsWriter
	reader  ResultsReader
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func NewRemoteService(client *backend.Client, writer ResultsWriter, reader ResultsReader, logger *slog.Logger, rec *metrics.Recorder) *RemoteService {
	return &RemoteService{client: client, writer: writer, reader: reader, logger: logger, metrics: rec}
}

func (r *RemoteService) ListSessions(ctx context.Context) envelope.Response[[]tots.Session] {
	return r.client.ListSessions(ctx)
}

func (r *RemoteService) ActiveSession(ctx context.Context) envelope.Response[tots.Session] {
	return r.client.ActiveSession(ctx)
}

func (r *RemoteService) CreateSession(ctx context.Context, s tots.NewSession) envelope.Response[tots.Session] {
	if err := validateNewSession(s); err != nil {
		return envelope.Failure[tots.Session](err.Error())
	}
	return r.client.CreateSession(ctx, s)
}

func (r *RemoteService) Candidates(ctx context.Context, sessionID string) envelope.Response[[]tots.Candidate] {
	return r.client.SessionCandidates(ctx, sessionID)
}

func (r *RemoteService) SubmitUserVote(ctx context.Context, sessionID, _ string, playerIDs []string) envelope.Response[tots.Vote] {
	resp := r.client.SubmitVote(ctx, sessionID, playerIDs)
	if resp.Success() {
		r.metrics.RecordVote(voteKindUser)
	}
	return resp
}

func (r *RemoteService) GetUserVote(ctx context.Context, sessionID, _ string) envelope.Response[tots.Vote] {
	return r.client.UserVote(ctx, sessionID)
}

func (r *RemoteService) SubmitAdminVote(ctx context.Context, sessionID, _ string, playerIDs []string) envelope.Response[tots.Vote] {
	resp := r.client.SubmitAdminVote(ctx, sessionID, playerIDs)
	if resp.Success() {
		r.metrics.RecordVote(voteKindAdmin)
	}
	return resp
}

// Finalize asks the backend to close the session and snapshots the results.
func (r *RemoteService) Finalize(ctx context.Context, sessionID string) envelope.Response[tots.Results] {
	resp := r.client.FinalizeSession(ctx, sessionID)
	if resp.Success() {
		results := resp.Data
		if results.SessionID == "" {
			results.SessionID = sessionID
		}
		writeSnapshot(ctx, r.writer, r.logger, results)
	}
	return resp
}

// Results falls back to a local snapshot when the backend cannot answer.
func (r *RemoteService) Results(ctx context.Context, sessionID string) envelope.Response[tots.Results] {
	resp := r.client.SessionResults(ctx, sessionID)
	if resp.Success() || r.reader == nil {
		return resp
	}
	if cached, err := r.reader.LoadResults(sessionID); err == nil {
		return envelope.OK("Results retrieved from snapshot", cached)
	}
	return resp
}
