// Package enrich backfills missing ESPN game IDs on stored recaps. The ID
// links a recap to its upstream box score and images; documents arrive from
// the editorial pipeline without it.
package enrich

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"nba-recap-service/internal/domain/recaps"
	"nba-recap-service/internal/logging"
	"nba-recap-service/internal/metrics"
	"nba-recap-service/internal/providers"
	"nba-recap-service/internal/store"
	"nba-recap-service/internal/timeutil"
)

const defaultInterval = 15 * time.Minute

// Worker periodically scans recent dates and fills in missing game IDs.
type Worker struct {
	provider providers.GameIDProvider
	store    store.Store
	logger   *slog.Logger
	metrics  *metrics.Recorder
	interval time.Duration
	days     int
	loc      *time.Location
	now      func() time.Time

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the enrichment loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether the worker has had a recent success and is not
// failing repeatedly. A worker that has not run yet is not ready.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// New constructs a Worker with sane defaults.
func New(provider providers.GameIDProvider, st store.Store, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration, days int, loc *time.Location) *Worker {
	if interval <= 0 {
		interval = defaultInterval
	}
	if days <= 0 {
		days = 1
	}
	return &Worker{
		provider: provider,
		store:    st,
		logger:   logger,
		metrics:  recorder,
		interval: interval,
		days:     days,
		loc:      loc,
		now:      time.Now,
		done:     make(chan struct{}),
	}
}

// Start begins enriching until the context is cancelled or Stop is called.
func (w *Worker) Start(ctx context.Context) {
	w.startMu.Lock()
	if w.started {
		w.startMu.Unlock()
		return
	}
	w.started = true
	w.startMu.Unlock()

	w.ticker = time.NewTicker(w.interval)

	go func() {
		w.logInfo("enrich worker started", slog.Int64(logging.FieldDurationMS, w.interval.Milliseconds()))
		// Initial pass on boot so fresh recaps get IDs quickly.
		w.enrichOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				w.stopTicker()
				w.logInfo("enrich worker stopped")
				return
			case <-w.done:
				w.stopTicker()
				w.logInfo("enrich worker stopped")
				return
			case <-w.ticker.C:
				w.enrichOnce(ctx)
			}
		}
	}()
}

// Stop halts the enrichment loop.
func (w *Worker) Stop(ctx context.Context) error {
	_ = ctx
	w.stopOnce.Do(func() {
		close(w.done)
		w.stopTicker()
	})
	return nil
}

func (w *Worker) enrichOnce(ctx context.Context) {
	start := time.Now()
	w.recordAttempt(start)

	var filled int
	var lastErr error
	for _, date := range timeutil.RecentDates(w.now(), w.loc, w.days) {
		n, err := w.enrichDate(ctx, date)
		filled += n
		if err != nil {
			lastErr = err
		}
		if ctx.Err() != nil {
			break
		}
	}

	if w.metrics != nil {
		w.metrics.RecordEnrichCycle(time.Since(start), lastErr)
	}
	if lastErr != nil {
		w.logError("enrich cycle finished with errors", lastErr, logging.FieldCount, filled)
		w.recordFailure(lastErr, start)
		return
	}
	w.recordSuccess(start)
	w.logInfo("enrich cycle complete",
		logging.FieldCount, filled,
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
}

// enrichDate fills IDs for one date and returns how many it set. A recap
// the provider cannot find is skipped, not an error; it may simply not be
// on the upstream scoreboard yet.
func (w *Worker) enrichDate(ctx context.Context, date string) (int, error) {
	records, err := w.store.RecordsByDate(ctx, date)
	if err != nil {
		return 0, err
	}

	filled := 0
	for _, record := range records {
		if record.EspnGameID != "" {
			continue
		}
		if err := w.enrichRecord(ctx, record); err != nil {
			if errors.Is(err, providers.ErrNotFound) {
				continue
			}
			return filled, err
		}
		filled++
	}
	return filled, nil
}

func (w *Worker) enrichRecord(ctx context.Context, record recaps.GameRecord) error {
	id, err := w.provider.FindGameID(ctx, record.HomeTeam, record.AwayTeam, record.Date)
	if err != nil {
		return err
	}
	return w.store.SetEspnGameID(ctx, record.ID, id)
}

func (w *Worker) stopTicker() {
	if w.ticker != nil {
		w.ticker.Stop()
	}
}

func (w *Worker) logInfo(msg string, args ...any) {
	if w.logger != nil {
		w.logger.Info(msg, args...)
	}
}

func (w *Worker) logError(msg string, err error, attrs ...any) {
	if w.logger != nil {
		w.logger.Error(msg, append(attrs, "error", err)...)
	}
}

func (w *Worker) recordAttempt(at time.Time) {
	w.statusMu.Lock()
	defer w.statusMu.Unlock()
	w.status.LastAttempt = at
}

func (w *Worker) recordSuccess(at time.Time) {
	w.statusMu.Lock()
	defer w.statusMu.Unlock()
	w.status.ConsecutiveFailures = 0
	w.status.LastError = ""
	w.status.LastSuccess = at
}

func (w *Worker) recordFailure(err error, at time.Time) {
	w.statusMu.Lock()
	defer w.statusMu.Unlock()
	w.status.ConsecutiveFailures++
	if err != nil {
		w.status.LastError = err.Error()
	}
	w.status.LastAttempt = at
}

// Status returns a snapshot of the worker's recent health.
func (w *Worker) Status() Status {
	w.statusMu.RLock()
	defer w.statusMu.RUnlock()
	return w.status
}
