package tots

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/preston-bernstein/football-admin-service/internal/domain/tots"
)

var testNow = time.Date(2026, 4, 10, 12, 0, 0, 0, time.UTC)

func openSession(id string) tots.Session {
	return tots.Session{
		ID:        id,
		Name:      "TOTS " + id,
		Season:    "2025/2026",
		StartDate: testNow.AddDate(0, 0, -3),
		EndDate:   testNow.AddDate(0, 0, 3),
		Active:    true,
		CreatedAt: testNow.AddDate(0, 0, -4),
	}
}

type recordingWriter struct {
	written []tots.Results
	err     error
}

func (w *recordingWriter) WriteResults(r tots.Results) error {
	w.written = append(w.written, r)
	return w.err
}

type mapReader map[string]tots.Results

func (m mapReader) LoadResults(id string) (tots.Results, error) {
	r, ok := m[id]
	if !ok {
		return tots.Results{}, ErrNotFound
	}
	return r, nil
}

func newMock(t *testing.T, opts MockOptions) (*MockService, *MemoryStore) {
	t.Helper()
	repo := NewMemoryStore()
	ctx := context.Background()
	if err := repo.SaveSession(ctx, openSession("s1")); err != nil {
		t.Fatalf("seed session: %v", err)
	}
	if err := repo.SaveCandidates(ctx, "s1", SeedCandidates()); err != nil {
		t.Fatalf("seed candidates: %v", err)
	}
	clock := testNow
	if opts.Now == nil {
		opts.Now = func() time.Time { return clock }
	}
	if opts.NewID == nil {
		var n int
		opts.NewID = func() string { n++; return "id-" + strconv.Itoa(n) }
	}
	return NewMockService(repo, opts), repo
}
