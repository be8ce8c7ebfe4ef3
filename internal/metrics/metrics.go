package metrics

import (
	"sync"
	"time"
)

type providerStats struct {
	calls           int
	errors          int
	retries         int
	lastCallLatency time.Duration
}

type computationStats struct {
	count        int
	lastDuration time.Duration
}

// Recorder captures lightweight, in-memory metrics and forwards them to OpenTelemetry
// instruments when configured. A nil Recorder is a no-op.
type Recorder struct {
	mu             sync.Mutex
	stats          map[string]*providerStats
	computations   map[string]*computationStats
	snapshotWrites int
	snapshotErrors int
	otel           *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats:        make(map[string]*providerStats),
		computations: make(map[string]*computationStats),
		otel:         otel,
	}
}

// RecordProviderAttempt increments counters for a provider call and stores the last observed latency.
func (r *Recorder) RecordProviderAttempt(provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStats(provider)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordProviderAttempt(provider, duration, err)
	}
}

// RecordProviderRetry tracks that a failed provider call is about to be retried.
func (r *Recorder) RecordProviderRetry(provider string) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.ensureStats(provider).retries++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordProviderRetry(provider)
	}
}

// ProviderCalls returns the total attempts recorded for a provider.
func (r *Recorder) ProviderCalls(provider string) int {
	return r.Snapshot(provider).Calls
}

// ProviderErrors returns the total failed attempts recorded for a provider.
func (r *Recorder) ProviderErrors(provider string) int {
	return r.Snapshot(provider).Errors
}

// ProviderRetries returns the number of retries scheduled for a provider.
func (r *Recorder) ProviderRetries(provider string) int {
	return r.Snapshot(provider).Retries
}

// LastCallLatency returns the last recorded latency for a provider call.
func (r *Recorder) LastCallLatency(provider string) time.Duration {
	return r.Snapshot(provider).LastCallLatency
}

// Snapshot returns a copy of the current stats for the provider.
type Snapshot struct {
	Calls           int
	Errors          int
	Retries         int
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(provider string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[provider]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		Retries:         stats.retries,
		LastCallLatency: stats.lastCallLatency,
	}
}

// RecordComputation tracks one engine computation of the given kind.
func (r *Recorder) RecordComputation(kind string, duration time.Duration) {
	if r == nil {
		return
	}

	r.mu.Lock()
	c, ok := r.computations[kind]
	if !ok {
		c = &computationStats{}
		r.computations[kind] = c
	}
	c.count++
	c.lastDuration = duration
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordComputation(kind, duration)
	}
}

// Computations returns how many computations of kind have been recorded.
func (r *Recorder) Computations(kind string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.computations[kind]; ok {
		return c.count
	}
	return 0
}

// RecordSnapshotWrite tracks a standings snapshot write.
func (r *Recorder) RecordSnapshotWrite(err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	if err != nil {
		r.snapshotErrors++
	} else {
		r.snapshotWrites++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordSnapshotWrite(err)
	}
}

// SnapshotWrites returns successful and failed snapshot write counts.
func (r *Recorder) SnapshotWrites() (ok, failed int) {
	if r == nil {
		return 0, 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshotWrites, r.snapshotErrors
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// RecordPollerCycle tracks poller cycles and errors.
func (r *Recorder) RecordPollerCycle(duration time.Duration, err error) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordPoller(duration, err)
}

// ensureStats must be called with r.mu held.
func (r *Recorder) ensureStats(provider string) *providerStats {
	stats, ok := r.stats[provider]
	if !ok {
		stats = &providerStats{}
		r.stats[provider] = stats
	}
	return stats
}
