package tots

import (
	"context"
	"sort"
	"sync"

	"github.com/preston-bernstein/football-admin-service/internal/domain/tots"
)

type voteKey struct {
	sessionID string
	userID    string
	admin     bool
}

// MemoryStore is a thread-safe in-process Repository for development.
type MemoryStore struct {
	mu         sync.RWMutex
	sessions   map[string]tots.Session
	candidates map[string][]tots.Candidate
	votes      map[voteKey]tots.Vote
	results    map[string]tots.Results
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions:   make(map[string]tots.Session),
		candidates: make(map[string][]tots.Candidate),
		votes:      make(map[voteKey]tots.Vote),
		results:    make(map[string]tots.Results),
	}
}

// ListSessions returns sessions newest first.
func (m *MemoryStore) ListSessions(context.Context) ([]tots.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]tots.Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		out = append(out, s)
	}
	sortSessions(out)
	return out, nil
}

func (m *MemoryStore) GetSession(_ context.Context, id string) (tots.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[id]
	if !ok {
		return tots.Session{}, ErrNotFound
	}
	return s, nil
}

func (m *MemoryStore) SaveSession(_ context.Context, s tots.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
	return nil
}

func (m *MemoryStore) ListCandidates(_ context.Context, sessionID string) ([]tots.Candidate, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]tots.Candidate(nil), m.candidates[sessionID]...), nil
}

func (m *MemoryStore) SaveCandidates(_ context.Context, sessionID string, candidates []tots.Candidate) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.candidates[sessionID] = append([]tots.Candidate(nil), candidates...)
	return nil
}

func (m *MemoryStore) SaveVote(_ context.Context, v tots.Vote) error {
	v.PlayerIDs = append([]string(nil), v.PlayerIDs...)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.votes[voteKey{v.SessionID, v.UserID, v.Admin}] = v
	return nil
}

func (m *MemoryStore) GetVote(_ context.Context, sessionID, userID string, admin bool) (tots.Vote, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.votes[voteKey{sessionID, userID, admin}]
	if !ok {
		return tots.Vote{}, ErrNotFound
	}
	v.PlayerIDs = append([]string(nil), v.PlayerIDs...)
	return v, nil
}

// ListVotes returns the session's votes ordered by submission time.
func (m *MemoryStore) ListVotes(_ context.Context, sessionID string) ([]tots.Vote, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []tots.Vote
	for k, v := range m.votes {
		if k.sessionID == sessionID {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].SubmittedAt.Equal(out[j].SubmittedAt) {
			return out[i].SubmittedAt.Before(out[j].SubmittedAt)
		}
		return out[i].UserID < out[j].UserID
	})
	return out, nil
}

func (m *MemoryStore) SaveResults(_ context.Context, r tots.Results) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results[r.SessionID] = r
	return nil
}

func (m *MemoryStore) GetResults(_ context.Context, sessionID string) (tots.Results, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	r, ok := m.results[sessionID]
	if !ok {
		return tots.Results{}, ErrNotFound
	}
	return r, nil
}

func sortSessions(list []tots.Session) {
	sort.Slice(list, func(i, j int) bool {
		if !list[i].StartDate.Equal(list[j].StartDate) {
			return list[i].StartDate.After(list[j].StartDate)
		}
		return list[i].ID < list[j].ID
	})
}
