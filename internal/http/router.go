// Package http registers the service's routes.
package http

import (
	nethttp "net/http"

	"nba-recap-service/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(handler *handlers.Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	mux.HandleFunc("/records/team/", handler.RecordsByTeam)
	mux.HandleFunc("/records/", handler.RecordsByDate)
	mux.HandleFunc("/boxscore/", handler.BoxScore)
	mux.HandleFunc("/game-images/", handler.GameImages)
	mux.HandleFunc("/youtube-search", handler.SearchHighlights)
	return mux
}
