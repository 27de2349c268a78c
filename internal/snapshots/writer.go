package snapshots

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"nba-recap-service/internal/domain/recaps"
)

// Writer persists day snapshots atomically.
type Writer struct {
	basePath string
}

// NewWriter constructs a writer rooted at basePath.
func NewWriter(basePath string) *Writer {
	return &Writer{basePath: basePath}
}

// WriteDay stores the day response at {basePath}/days/{date}.json, writing
// to a temp file first so readers never see a partial snapshot.
func (w *Writer) WriteDay(payload recaps.DayResponse) error {
	if w == nil {
		return nil
	}
	if payload.Date == "" {
		return fmt.Errorf("snapshot write: date required")
	}

	path := DayPath(w.basePath, payload.Date)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("snapshot write: %w", err)
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("snapshot write: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("snapshot write: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("snapshot write: %w", err)
	}
	return nil
}
