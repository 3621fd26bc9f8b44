package tots

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/preston-bernstein/football-admin-service/internal/domain/players"
	"github.com/preston-bernstein/football-admin-service/internal/domain/tots"
	"github.com/preston-bernstein/football-admin-service/internal/envelope"
	"github.com/preston-bernstein/football-admin-service/internal/logging"
	"github.com/preston-bernstein/football-admin-service/internal/metrics"
)

const (
	msgSessionNotFound  = "Session not found"
	msgVotingClosed     = "Voting is closed for this session"
	msgEmptySelection   = "Select at least one player"
	msgDuplicatePlayer  = "Each player can only be selected once"
	msgNoVote           = "You have not voted in this session yet"
	msgNoActiveSession  = "No active TOTS session"
	msgAlreadyFinalized = "Session is already finalized"
	msgResultsPending   = "Results are not available until the session is finalized"
	msgStoreFailure     = "Unable to process the request right now"
)

// MockOptions configures MockService.
type MockOptions struct {
	Now     func() time.Time
	NewID   func() string
	Pool    []tots.Candidate
	Writer  ResultsWriter
	Reader  ResultsReader
	Logger  *slog.Logger
	Metrics *metrics.Recorder
}

// MockService implements Service over a local Repository so the voting flow
// works without the real backend.
type MockService struct {
	repo    Repository
	now     func() time.Time
	newID   func() string
	pool    []tots.Candidate
	writer  ResultsWriter
	reader  ResultsReader
	logger  *slog.Logger
	metrics *metrics.Recorder

	// writeMu serializes vote submission and finalization.
	writeMu sync.Mutex
}

func NewMockService(repo Repository, opts MockOptions) *MockService {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.NewID == nil {
		opts.NewID = uuid.NewString
	}
	if opts.Pool == nil {
		opts.Pool = SeedCandidates()
	}
	return &MockService{
		repo:    repo,
		now:     opts.Now,
		newID:   opts.NewID,
		pool:    opts.Pool,
		writer:  opts.Writer,
		reader:  opts.Reader,
		logger:  opts.Logger,
		metrics: opts.Metrics,
	}
}

func (m *MockService) ListSessions(ctx context.Context) envelope.Response[[]tots.Session] {
	sessions, err := m.repo.ListSessions(ctx)
	if err != nil {
		return storeFailure[[]tots.Session](ctx, m.logger, "tots.sessions", err)
	}
	if sessions == nil {
		sessions = []tots.Session{}
	}
	return envelope.OK("Sessions retrieved", sessions)
}

// ActiveSession prefers the newest session open now, then the newest active one.
func (m *MockService) ActiveSession(ctx context.Context) envelope.Response[tots.Session] {
	sessions, err := m.repo.ListSessions(ctx)
	if err != nil {
		return storeFailure[tots.Session](ctx, m.logger, "tots.active", err)
	}
	now := m.now()
	var fallback *tots.Session
	for i := range sessions {
		s := sessions[i]
		if s.Open(now) {
			return envelope.OK("Active session retrieved", s)
		}
		if fallback == nil && s.Active && !s.Finalized {
			fallback = &sessions[i]
		}
	}
	if fallback != nil {
		return envelope.OK("Active session retrieved", *fallback)
	}
	return envelope.Failure[tots.Session](msgNoActiveSession)
}

func (m *MockService) CreateSession(ctx context.Context, in tots.NewSession) envelope.Response[tots.Session] {
	if err := validateNewSession(in); err != nil {
		return envelope.Failure[tots.Session](err.Error())
	}
	s := tots.Session{
		ID:        m.newID(),
		Name:      strings.TrimSpace(in.Name),
		Season:    strings.TrimSpace(in.Season),
		StartDate: in.StartDate.UTC(),
		EndDate:   in.EndDate.UTC(),
		Active:    true,
		CreatedAt: m.now().UTC(),
	}
	if err := m.repo.SaveSession(ctx, s); err != nil {
		return storeFailure[tots.Session](ctx, m.logger, "tots.create", err)
	}
	if err := m.repo.SaveCandidates(ctx, s.ID, m.pool); err != nil {
		return storeFailure[tots.Session](ctx, m.logger, "tots.create", err)
	}
	logging.Info(logging.FromContext(ctx, m.logger), "tots session created",
		slog.String(logging.FieldSessionID, s.ID),
	)
	return envelope.OK("Session created", s)
}

func (m *MockService) Candidates(ctx context.Context, sessionID string) envelope.Response[[]tots.Candidate] {
	if _, err := m.repo.GetSession(ctx, sessionID); err != nil {
		return sessionFailure[[]tots.Candidate](ctx, m.logger, "tots.candidates", err)
	}
	candidates, err := m.repo.ListCandidates(ctx, sessionID)
	if err != nil {
		return storeFailure[[]tots.Candidate](ctx, m.logger, "tots.candidates", err)
	}
	if candidates == nil {
		candidates = []tots.Candidate{}
	}
	return envelope.OK("Candidates retrieved", candidates)
}

// SubmitUserVote replaces any earlier vote by the same user for the session.
func (m *MockService) SubmitUserVote(ctx context.Context, sessionID, userID string, playerIDs []string) envelope.Response[tots.Vote] {
	return m.submit(ctx, sessionID, userID, playerIDs, false)
}

func (m *MockService) SubmitAdminVote(ctx context.Context, sessionID, userID string, playerIDs []string) envelope.Response[tots.Vote] {
	return m.submit(ctx, sessionID, userID, playerIDs, true)
}

// GetUserVote returns the ids last submitted by userID.
func (m *MockService) GetUserVote(ctx context.Context, sessionID, userID string) envelope.Response[tots.Vote] {
	v, err := m.repo.GetVote(ctx, sessionID, userID, false)
	if errors.Is(err, ErrNotFound) {
		return envelope.Failure[tots.Vote](msgNoVote)
	}
	if err != nil {
		return storeFailure[tots.Vote](ctx, m.logger, "tots.user_vote", err)
	}
	return envelope.OK("Vote retrieved", v)
}

func (m *MockService) submit(ctx context.Context, sessionID, userID string, playerIDs []string, admin bool) envelope.Response[tots.Vote] {
	op, kind := "tots.vote", voteKindUser
	if admin {
		op, kind = "tots.admin_vote", voteKindAdmin
	}
	if strings.TrimSpace(userID) == "" {
		return envelope.Failure[tots.Vote]("Sign in to vote")
	}

	m.writeMu.Lock()
	defer m.writeMu.Unlock()

	session, err := m.repo.GetSession(ctx, sessionID)
	if err != nil {
		return sessionFailure[tots.Vote](ctx, m.logger, op, err)
	}
	now := m.now()
	if !session.Open(now) {
		return envelope.Failure[tots.Vote](msgVotingClosed)
	}
	candidates, err := m.repo.ListCandidates(ctx, sessionID)
	if err != nil {
		return storeFailure[tots.Vote](ctx, m.logger, op, err)
	}
	if err := validateSelection(playerIDs, candidates); err != nil {
		return envelope.Failure[tots.Vote](err.Error())
	}

	vote := tots.Vote{
		SessionID:   sessionID,
		UserID:      userID,
		PlayerIDs:   append([]string(nil), playerIDs...),
		Admin:       admin,
		SubmittedAt: now.UTC(),
	}
	if err := m.repo.SaveVote(ctx, vote); err != nil {
		return storeFailure[tots.Vote](ctx, m.logger, op, err)
	}
	m.metrics.RecordVote(kind)
	logging.Info(logging.FromContext(ctx, m.logger), "tots vote recorded",
		slog.String(logging.FieldSessionID, sessionID),
		slog.String("kind", kind),
		slog.Int(logging.FieldCount, len(playerIDs)),
	)
	return envelope.OK("Vote submitted", vote)
}

// Finalize tallies the session, closes it and persists the results.
func (m *MockService) Finalize(ctx context.Context, sessionID string) envelope.Response[tots.Results] {
	m.writeMu.Lock()
	defer m.writeMu.Unlock()

	session, err := m.repo.GetSession(ctx, sessionID)
	if err != nil {
		return sessionFailure[tots.Results](ctx, m.logger, "tots.finalize", err)
	}
	if session.Finalized {
		return envelope.Failure[tots.Results](msgAlreadyFinalized)
	}
	candidates, err := m.repo.ListCandidates(ctx, sessionID)
	if err != nil {
		return storeFailure[tots.Results](ctx, m.logger, "tots.finalize", err)
	}
	votes, err := m.repo.ListVotes(ctx, sessionID)
	if err != nil {
		return storeFailure[tots.Results](ctx, m.logger, "tots.finalize", err)
	}

	results := Tally(sessionID, candidates, votes, m.now())
	if err := m.repo.SaveResults(ctx, results); err != nil {
		return storeFailure[tots.Results](ctx, m.logger, "tots.finalize", err)
	}
	session.Finalized = true
	session.Active = false
	if err := m.repo.SaveSession(ctx, session); err != nil {
		return storeFailure[tots.Results](ctx, m.logger, "tots.finalize", err)
	}
	writeSnapshot(ctx, m.writer, m.logger, results)

	logging.Info(logging.FromContext(ctx, m.logger), "tots session finalized",
		slog.String(logging.FieldSessionID, sessionID),
		slog.Int(logging.FieldCount, results.TotalVotes),
	)
	return envelope.OK("Session finalized", results)
}

func (m *MockService) Results(ctx context.Context, sessionID string) envelope.Response[tots.Results] {
	r, err := m.repo.GetResults(ctx, sessionID)
	if err == nil {
		return envelope.OK("Results retrieved", r)
	}
	if !errors.Is(err, ErrNotFound) {
		return storeFailure[tots.Results](ctx, m.logger, "tots.results", err)
	}
	if m.reader != nil {
		if r, err := m.reader.LoadResults(sessionID); err == nil {
			return envelope.OK("Results retrieved", r)
		}
	}
	if _, err := m.repo.GetSession(ctx, sessionID); err != nil {
		return sessionFailure[tots.Results](ctx, m.logger, "tots.results", err)
	}
	return envelope.Failure[tots.Results](msgResultsPending)
}

func sessionFailure[T any](ctx context.Context, logger *slog.Logger, op string, err error) envelope.Response[T] {
	if errors.Is(err, ErrNotFound) {
		return envelope.Failure[T](msgSessionNotFound)
	}
	return storeFailure[T](ctx, logger, op, err)
}

func storeFailure[T any](ctx context.Context, logger *slog.Logger, op string, err error) envelope.Response[T] {
	logging.Error(logging.FromContext(ctx, logger), "tots store failure", err,
		slog.String(logging.FieldOperation, op),
	)
	return envelope.Failure[T](msgStoreFailure)
}

func writeSnapshot(ctx context.Context, w ResultsWriter, logger *slog.Logger, results tots.Results) {
	if w == nil {
		return
	}
	if err := w.WriteResults(results); err != nil {
		logging.Error(logging.FromContext(ctx, logger), "tots results snapshot failed", err,
			slog.String(logging.FieldSessionID, results.SessionID),
		)
	}
}

func validateNewSession(in tots.NewSession) error {
	switch {
	case strings.TrimSpace(in.Name) == "":
		return errors.New("Session name is required")
	case in.StartDate.IsZero() || in.EndDate.IsZero():
		return errors.New("Start and end dates are required")
	case !in.EndDate.After(in.StartDate):
		return errors.New("End date must be after start date")
	}
	return nil
}

// validateSelection checks ids are non-empty, unique, known and fit Formation.
func validateSelection(ids []string, candidates []tots.Candidate) error {
	if len(ids) == 0 {
		return errors.New(msgEmptySelection)
	}
	byID := make(map[string]tots.Candidate, len(candidates))
	for _, c := range candidates {
		byID[c.PlayerID] = c
	}
	seen := make(map[string]struct{}, len(ids))
	perPosition := make(map[players.Position]int, len(Formation))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			return errors.New(msgDuplicatePlayer)
		}
		seen[id] = struct{}{}
		c, ok := byID[id]
		if !ok {
			return fmt.Errorf("Unknown player %q", id)
		}
		perPosition[c.Position]++
		if limit := Formation[c.Position]; perPosition[c.Position] > limit {
			return fmt.Errorf("Too many %s players selected (max %d)", c.Position, limit)
		}
	}
	return nil
}
