// Package games assembles day and team recap responses: store reads, the
// featuring split, response caching and the on-disk snapshot fallback.
package games

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"nba-recap-service/internal/cache"
	"nba-recap-service/internal/domain/recaps"
	"nba-recap-service/internal/feature"
	"nba-recap-service/internal/metrics"
	"nba-recap-service/internal/snapshots"
	"nba-recap-service/internal/store"
)

// SnapshotWriter persists assembled day responses to disk.
type SnapshotWriter interface {
	WriteDay(payload recaps.DayResponse) error
}

// Service coordinates recap reads with featuring, caching and snapshots.
type Service struct {
	store    store.Store
	cache    *cache.TTLCache
	snaps    snapshots.Store
	writer   SnapshotWriter
	engine   *feature.Engine
	limit    int
	logger   *slog.Logger
	recorder *metrics.Recorder
}

// Config wires a Service. Cache, snapshots, writer, logger and recorder are
// all optional; Store and Engine are required.
type Config struct {
	Store         store.Store
	Cache         *cache.TTLCache
	Snapshots     snapshots.Store
	Writer        SnapshotWriter
	Engine        *feature.Engine
	FeaturedLimit int
	Logger        *slog.Logger
	Recorder      *metrics.Recorder
}

// NewService constructs a Service from cfg.
func NewService(cfg Config) *Service {
	limit := cfg.FeaturedLimit
	if limit <= 0 {
		limit = 3
	}
	return &Service{
		store:    cfg.Store,
		cache:    cfg.Cache,
		snaps:    cfg.Snapshots,
		writer:   cfg.Writer,
		engine:   cfg.Engine,
		limit:    limit,
		logger:   cfg.Logger,
		recorder: cfg.Recorder,
	}
}

// Day returns the featured/others split for a date. Store failures fall
// back to the latest on-disk snapshot when one exists.
func (s *Service) Day(ctx context.Context, date string) (recaps.DayResponse, error) {
	cacheKey := "records:date:" + date
	if cached, ok := s.cacheGet(cacheKey); ok {
		if resp, ok := cached.(recaps.DayResponse); ok {
			return resp, nil
		}
	}

	games, err := s.store.RecordsByDate(ctx, date)
	if err != nil {
		if snap, snapErr := s.loadSnapshot(date); snapErr == nil {
			if s.logger != nil {
				s.logger.Warn("store unavailable, served day snapshot",
					"date", date, "error", err)
			}
			return snap, nil
		}
		return recaps.DayResponse{}, fmt.Errorf("records for %s: %w", date, err)
	}

	resp := s.assembleDay(date, games)
	s.cacheSet(cacheKey, resp)
	if s.writer != nil {
		if writeErr := s.writer.WriteDay(resp); writeErr != nil && s.logger != nil {
			s.logger.Warn("day snapshot write failed", "date", date, "error", writeErr)
		}
	}
	return resp, nil
}

// Team returns up to limit recent recaps for a team, newest first.
func (s *Service) Team(ctx context.Context, team string, limit int) (recaps.TeamResponse, error) {
	if limit <= 0 {
		limit = 5
	}

	cacheKey := fmt.Sprintf("records:team:%s:%d", team, limit)
	if cached, ok := s.cacheGet(cacheKey); ok {
		if resp, ok := cached.(recaps.TeamResponse); ok {
			return resp, nil
		}
	}

	records, err := s.store.RecordsByTeam(ctx, team, limit)
	if err != nil {
		return recaps.TeamResponse{}, fmt.Errorf("records for team %s: %w", team, err)
	}

	resp := recaps.TeamResponse{Team: team, Records: records}
	if resp.Records == nil {
		resp.Records = []recaps.GameRecord{}
	}
	s.cacheSet(cacheKey, resp)
	return resp, nil
}

func (s *Service) assembleDay(date string, games []recaps.GameRecord) recaps.DayResponse {
	start := time.Now()
	featured := s.engine.FeaturedGames(games, s.limit)
	others := feature.OtherGames(games, featured)
	if s.recorder != nil {
		s.recorder.RecordFeaturedComputation(len(games), time.Since(start))
	}
	return recaps.NewDayResponse(date, featured, others)
}

func (s *Service) loadSnapshot(date string) (recaps.DayResponse, error) {
	if s.snaps == nil {
		return recaps.DayResponse{}, fmt.Errorf("snapshot store not configured")
	}
	return s.snaps.LoadDay(date)
}

func (s *Service) cacheGet(key string) (any, bool) {
	if s.cache == nil {
		return nil, false
	}
	return s.cache.Get(key)
}

func (s *Service) cacheSet(key string, value any) {
	if s.cache != nil {
		s.cache.Set(key, value)
	}
}
