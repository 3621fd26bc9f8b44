package snapshots

import (
	"encoding/json"
	"errors"
	"os"

	"github.com/preston-bernstein/football-admin-service/internal/domain/tots"
)

// ErrNotFound is returned when no results snapshot exists for a session.
var ErrNotFound = errors.New("results snapshot not found")

// Store defines how snapshots are loaded.
type Store interface {
	LoadResults(sessionID string) (tots.Results, error)
}

// FSStore loads snapshots from the filesystem.
type FSStore struct {
	basePath string
}

// NewFSStore constructs an FS-backed snapshot store rooted at basePath.
func NewFSStore(basePath string) *FSStore {
	return &FSStore{basePath: basePath}
}

// LoadResults reads {basePath}/results/{sessionID}.json.
func (s *FSStore) LoadResults(sessionID string) (tots.Results, error) {
	if s == nil {
		return tots.Results{}, errors.New("snapshot store not configured")
	}
	if sessionID == "" {
		return tots.Results{}, errors.New("session id required")
	}
	f, err := os.Open(ResultsPath(s.basePath, sessionID))
	if err != nil {
		if os.IsNotExist(err) {
			return tots.Results{}, ErrNotFound
		}
		return tots.Results{}, err
	}
	defer f.Close()

	var payload tots.Results
	if err := json.NewDecoder(f).Decode(&payload); err != nil {
		return tots.Results{}, err
	}
	if payload.SessionID == "" {
		payload.SessionID = sessionID
	}
	return payload, nil
}

// HasResults reports whether a snapshot is stored for sessionID.
func (s *FSStore) HasResults(sessionID string) bool {
	if s == nil || sessionID == "" {
		return false
	}
	_, err := os.Stat(ResultsPath(s.basePath, sessionID))
	return err == nil
}
