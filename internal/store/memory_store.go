package store

import (
	"context"
	"sort"
	"strings"
	"sync"

	"nba-recap-service/internal/domain/recaps"
)

// MemoryStore keeps recaps in memory. Used in tests and when running
// without a database.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]recaps.GameRecord
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records: make(map[string]recaps.GameRecord),
	}
}

// Put inserts or replaces a recap.
func (s *MemoryStore) Put(record recaps.GameRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[record.ID] = record
}

// RecordsByDate returns every recap for the given date.
func (s *MemoryStore) RecordsByDate(ctx context.Context, date string) ([]recaps.GameRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]recaps.GameRecord, 0)
	for _, r := range s.records {
		if r.Date == date {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// RecordsByTeam returns up to limit recaps mentioning team on either side,
// most recent first.
func (s *MemoryStore) RecordsByTeam(ctx context.Context, team string, limit int) ([]recaps.GameRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	needle := strings.ToLower(team)
	s.mu.RLock()
	out := make([]recaps.GameRecord, 0)
	for _, r := range s.records {
		if strings.Contains(strings.ToLower(r.HomeTeam), needle) ||
			strings.Contains(strings.ToLower(r.AwayTeam), needle) {
			out = append(out, r)
		}
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date > out[j].Date
		}
		return out[i].ID < out[j].ID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// SetEspnGameID fills in the ESPN game ID for a stored recap.
func (s *MemoryStore) SetEspnGameID(ctx context.Context, id, espnGameID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.records[id]
	if !ok {
		return nil
	}
	r.EspnGameID = espnGameID
	s.records[id] = r
	return nil
}
