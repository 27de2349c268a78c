// Package providers defines the upstream data contracts for box scores,
// game images, game-ID resolution and video highlights.
package providers

import (
	"context"
	"encoding/json"
)

// Video is a highlight search hit.
type Video struct {
	VideoID string `json:"videoId"`
	Title   string `json:"title"`
}

// Image is an editorial image attached to a game summary.
type Image struct {
	URL     string `json:"url"`
	Caption string `json:"caption,omitempty"`
}

// GameIDProvider resolves an upstream game ID from the matchup and date.
// Date is a YYYY-MM-DD string.
type GameIDProvider interface {
	FindGameID(ctx context.Context, homeTeam, awayTeam, date string) (string, error)
}

// BoxScoreProvider fetches the raw box score payload for a game.
type BoxScoreProvider interface {
	BoxScore(ctx context.Context, gameID string) (json.RawMessage, error)
}

// ImageProvider fetches editorial images for a game.
type ImageProvider interface {
	GameImages(ctx context.Context, gameID string) ([]Image, error)
}

// HighlightsProvider searches for highlight videos matching a query.
type HighlightsProvider interface {
	SearchHighlights(ctx context.Context, query string) ([]Video, error)
}
