// Package snapshots persists assembled day responses to disk so a day's
// recaps stay servable when the database is unreachable.
package snapshots

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"nba-recap-service/internal/domain/recaps"
)

// Store defines how day snapshots are loaded.
type Store interface {
	LoadDay(date string) (recaps.DayResponse, error)
}

// FSStore loads snapshots from the filesystem.
type FSStore struct {
	basePath string
}

// NewFSStore constructs an FS-backed snapshot store rooted at basePath.
func NewFSStore(basePath string) *FSStore {
	return &FSStore{basePath: basePath}
}

// DayPath builds the path to a day snapshot for a given date.
func DayPath(basePath, date string) string {
	return filepath.Join(basePath, "days", fmt.Sprintf("%s.json", date))
}

// LoadDay reads the snapshot for a YYYY-MM-DD date from disk.
func (s *FSStore) LoadDay(date string) (recaps.DayResponse, error) {
	if s == nil {
		return recaps.DayResponse{}, errors.New("snapshot store not configured")
	}
	if date == "" {
		return recaps.DayResponse{}, errors.New("snapshot date required")
	}

	f, err := os.Open(DayPath(s.basePath, date))
	if err != nil {
		return recaps.DayResponse{}, err
	}
	defer f.Close()

	var payload recaps.DayResponse
	if err := json.NewDecoder(f).Decode(&payload); err != nil {
		return recaps.DayResponse{}, err
	}
	if payload.Date == "" {
		payload.Date = date
	}
	return payload, nil
}
