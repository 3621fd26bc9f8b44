package snapshots

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/preston-bernstein/football-admin-service/internal/domain/tots"
)

const defaultRetentionDays = 365

// Writer persists finalized TOTS results and the manifest, pruning expired files.
type Writer struct {
	basePath      string
	retentionDays int
	now           func() time.Time
}

// NewWriter constructs a writer rooted at basePath with a rolling retention window.
func NewWriter(basePath string, retentionDays int) *Writer {
	if retentionDays <= 0 {
		retentionDays = defaultRetentionDays
	}
	return &Writer{
		basePath:      basePath,
		retentionDays: retentionDays,
		now:           time.Now,
	}
}

// BasePath exposes the writer root path (primarily for testing).
func (w *Writer) BasePath() string {
	if w == nil {
		return ""
	}
	return w.basePath
}

// WriteResults stores results atomically and refreshes the manifest.
// Rewriting identical content only touches the manifest.
func (w *Writer) WriteResults(results tots.Results) error {
	if w == nil {
		return errors.New("snapshot writer not configured")
	}
	if results.SessionID == "" {
		return errors.New("session id required")
	}
	if results.FinalizedAt.IsZero() {
		results.FinalizedAt = w.now().UTC()
	}

	target := ResultsPath(w.basePath, results.SessionID)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("encode results %s: %w", results.SessionID, err)
	}

	if existing, err := os.ReadFile(target); err != nil || !bytes.Equal(existing, data) {
		tmp := target + ".tmp"
		if err := os.WriteFile(tmp, data, 0o644); err != nil {
			return err
		}
		if err := os.Rename(tmp, target); err != nil {
			return err
		}
	}
	return w.updateManifest(SessionEntry{SessionID: results.SessionID, FinalizedAt: results.FinalizedAt.UTC()})
}

func (w *Writer) updateManifest(entry SessionEntry) error {
	m, _ := readManifest(filepath.Join(w.basePath, manifestFile), w.retentionDays)
	now := w.now().UTC()

	sessions := make([]SessionEntry, 0, len(m.Results.Sessions)+1)
	for _, s := range m.Results.Sessions {
		if s.SessionID != entry.SessionID {
			sessions = append(sessions, s)
		}
	}
	sessions = append(sessions, entry)

	m.Results.Sessions = w.prune(sessions, now)
	m.Results.LastRefreshed = now
	m.Retention.ResultsDays = w.retentionDays
	return writeManifest(w.basePath, m, now)
}

// Prune drops results older than the retention window and rewrites the manifest.
func (w *Writer) Prune() error {
	if w == nil {
		return errors.New("snapshot writer not configured")
	}
	m, err := readManifest(filepath.Join(w.basePath, manifestFile), w.retentionDays)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	now := w.now().UTC()
	m.Results.Sessions = w.prune(m.Results.Sessions, now)
	return writeManifest(w.basePath, m, now)
}

func (w *Writer) prune(sessions []SessionEntry, now time.Time) []SessionEntry {
	cutoff := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -w.retentionDays)
	keep := make([]SessionEntry, 0, len(sessions))
	for _, s := range sessions {
		if s.FinalizedAt.Before(cutoff) {
			_ = os.Remove(ResultsPath(w.basePath, s.SessionID))
			continue
		}
		keep = append(keep, s)
	}
	sort.Slice(keep, func(i, j int) bool { return keep[i].SessionID < keep[j].SessionID })
	return keep
}
