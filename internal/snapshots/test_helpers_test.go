package snapshots

import (
	"os"
	"testing"
	"time"

	"github.com/preston-bernstein/football-admin-service/internal/domain/players"
	"github.com/preston-bernstein/football-admin-service/internal/domain/tots"
)

func sampleResults(sessionID string, finalizedAt time.Time) tots.Results {
	return tots.Results{
		SessionID:   sessionID,
		FinalizedAt: finalizedAt,
		TotalVotes:  3,
		Team: []tots.Result{
			{Position: players.PositionGoalkeeper, PlayerID: "gk1", Name: "Keeper", Votes: 3},
		},
	}
}

func fixedWriter(t *testing.T, now time.Time, retentionDays int) *Writer {
	t.Helper()
	w := NewWriter(t.TempDir(), retentionDays)
	w.now = func() time.Time { return now }
	return w
}

func requireResultsExist(t *testing.T, w *Writer, sessionID string) {
	t.Helper()
	if _, err := os.Stat(ResultsPath(w.BasePath(), sessionID)); err != nil {
		t.Fatalf("expected results for %s to be written: %v", sessionID, err)
	}
}

func sessionIDs(m Manifest) []string {
	ids := make([]string, 0, len(m.Results.Sessions))
	for _, s := range m.Results.Sessions {
		ids = append(ids, s.SessionID)
	}
	return ids
}

func assertIDsEqual(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("ids length mismatch: got %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("ids mismatch at %d: got %v, want %v", i, got, want)
		}
	}
}
