// Package store persists and retrieves game recap documents.
package store

import (
	"context"
	"errors"

	"nba-recap-service/internal/domain/recaps"
)

// ErrUnavailable signals that the backing store could not be reached.
// Callers may fall back to snapshots when they see it.
var ErrUnavailable = errors.New("store unavailable")

// Store defines the contract for recap persistence.
type Store interface {
	// RecordsByDate returns every recap for a YYYY-MM-DD date.
	RecordsByDate(ctx context.Context, date string) ([]recaps.GameRecord, error)
	// RecordsByTeam returns up to limit recaps mentioning the team on
	// either side, most recent first.
	RecordsByTeam(ctx context.Context, team string, limit int) ([]recaps.GameRecord, error)
	// SetEspnGameID fills in the ESPN game ID for a recap.
	SetEspnGameID(ctx context.Context, id, espnGameID string) error
}
