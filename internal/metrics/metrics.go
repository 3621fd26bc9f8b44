package metrics

import (
	"sync"
	"time"
)

type operationStats struct {
	calls           int
	failures        int
	retries         int
	lastCallLatency time.Duration
}

// Recorder captures in-memory counters about backend calls and mirrors them to
// OpenTelemetry instruments when those are configured.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]*operationStats
	votes map[string]int
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*operationStats),
		votes: make(map[string]int),
		otel:  otel,
	}
}

// RecordBackendCall counts one backend operation. failed covers both transport
// errors and "99" envelopes; the two are not distinguished downstream.
func (r *Recorder) RecordBackendCall(operation string, duration time.Duration, failed bool) {
	if r == nil {
		return
	}
	r.mu.Lock()
	stats := r.ensureStatsLocked(operation)
	stats.calls++
	stats.lastCallLatency = duration
	if failed {
		stats.failures++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordBackendCall(operation, duration, failed)
	}
}

// RecordBackendRetry tracks a retried read attempt.
func (r *Recorder) RecordBackendRetry(operation string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.ensureStatsLocked(operation).retries++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordBackendRetry(operation)
	}
}

// RecordVote tracks a TOTS vote submission by kind ("user" or "admin").
func (r *Recorder) RecordVote(kind string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.votes[kind]++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordVote(kind)
	}
}

// Votes returns the number of votes recorded for kind.
func (r *Recorder) Votes(kind string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.votes[kind]
}

// Snapshot is a copy of the stats recorded for one backend operation.
type Snapshot struct {
	Calls           int
	Failures        int
	Retries         int
	LastCallLatency time.Duration
}

// Snapshot returns a copy of the current stats for the operation.
func (r *Recorder) Snapshot(operation string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	stats, ok := r.stats[operation]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Calls:           stats.calls,
		Failures:        stats.failures,
		Retries:         stats.retries,
		LastCallLatency: stats.lastCallLatency,
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// RecordPollerCycle tracks live poller cycles and errors.
func (r *Recorder) RecordPollerCycle(duration time.Duration, err error) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordPoller(duration, err)
}

func (r *Recorder) ensureStatsLocked(operation string) *operationStats {
	stats, ok := r.stats[operation]
	if !ok {
		stats = &operationStats{}
		r.stats[operation] = stats
	}
	return stats
}
