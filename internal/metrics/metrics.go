// Package metrics captures request, provider and featuring telemetry.
package metrics

import (
	"sync"
	"time"
)

type providerStats struct {
	calls           int
	errors          int
	lastCallLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics and forwards them to
// OpenTelemetry instruments when telemetry is enabled. The in-memory side
// keeps counters observable in tests without an exporter.
type Recorder struct {
	mu       sync.Mutex
	stats    map[string]*providerStats
	featured int
	otel     *otelInstruments
}

// NewRecorder returns a Recorder without telemetry export.
func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*providerStats),
		otel:  otel,
	}
}

// RecordProviderAttempt increments counters for an upstream call and stores
// the last observed latency.
func (r *Recorder) RecordProviderAttempt(provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	stats := r.ensureStats(provider)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	if r.otel != nil {
		r.otel.recordProviderAttempt(provider, duration, err)
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// RecordFeaturedComputation tracks one featuring-engine run over a day's games.
func (r *Recorder) RecordFeaturedComputation(gameCount int, duration time.Duration) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.featured++
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordFeatured(gameCount, duration)
	}
}

// RecordEnrichCycle tracks enrichment worker cycles and errors.
func (r *Recorder) RecordEnrichCycle(duration time.Duration, err error) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordEnrich(duration, err)
}

// ProviderCalls returns the total attempts recorded for a provider.
func (r *Recorder) ProviderCalls(provider string) int {
	return r.snapshot(provider).calls
}

// ProviderErrors returns the total failed attempts recorded for a provider.
func (r *Recorder) ProviderErrors(provider string) int {
	return r.snapshot(provider).errors
}

// LastCallLatency returns the last recorded latency for a provider call.
func (r *Recorder) LastCallLatency(provider string) time.Duration {
	return r.snapshot(provider).lastCallLatency
}

// FeaturedComputations returns how many featuring runs were recorded.
func (r *Recorder) FeaturedComputations() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.featured
}

func (r *Recorder) ensureStats(provider string) *providerStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[provider]
	if !ok {
		stats = &providerStats{}
		r.stats[provider] = stats
	}
	return stats
}

func (r *Recorder) snapshot(provider string) providerStats {
	if r == nil {
		return providerStats{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if stats, ok := r.stats[provider]; ok && stats != nil {
		return *stats
	}
	return providerStats{}
}
