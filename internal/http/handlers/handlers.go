package handlers

import (
	"errors"
	"log/slog"
	nethttp "net/http"
	"net/url"
	"strconv"
	"strings"

	appgames "nba-recap-service/internal/app/games"
	"nba-recap-service/internal/cache"
	"nba-recap-service/internal/enrich"
	"nba-recap-service/internal/logging"
	"nba-recap-service/internal/providers"
	"nba-recap-service/internal/store"
	"nba-recap-service/internal/timeutil"
)

const defaultTeamLimit = 5

// Handler wires HTTP routes to the recap service and upstream providers.
type Handler struct {
	svc        *appgames.Service
	boxScores  providers.BoxScoreProvider
	images     providers.ImageProvider
	highlights providers.HighlightsProvider
	cache      *cache.TTLCache
	logger     *slog.Logger
	statusFn   func() enrich.Status
}

// Config collects Handler dependencies. Providers, cache and statusFn are
// optional; routes backed by a missing provider answer 503.
type Config struct {
	Service    *appgames.Service
	BoxScores  providers.BoxScoreProvider
	Images     providers.ImageProvider
	Highlights providers.HighlightsProvider
	Cache      *cache.TTLCache
	Logger     *slog.Logger
	StatusFn   func() enrich.Status
}

// NewHandler constructs a Handler from cfg.
func NewHandler(cfg Config) *Handler {
	return &Handler{
		svc:        cfg.Service,
		boxScores:  cfg.BoxScores,
		images:     cfg.Images,
		highlights: cfg.Highlights,
		cache:      cfg.Cache,
		logger:     cfg.Logger,
		statusFn:   cfg.StatusFn,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes).
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if h.statusFn == nil {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	if h.statusFn().IsReady() {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := h.statusFn().LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, msg, h.logger)
}

// RecordsByDate serves /records/{date}: the day's recaps split into
// featured and others.
func (h *Handler) RecordsByDate(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	date, ok := pathParam(r.URL.Path, "/records/")
	if !ok {
		writeError(w, r, nethttp.StatusBadRequest, "date parameter is required", h.logger)
		return
	}
	if _, err := timeutil.ParseDate(date); err != nil {
		writeError(w, r, nethttp.StatusBadRequest, "invalid date format (expected YYYY-MM-DD)", h.logger)
		return
	}

	resp, err := h.svc.Day(r.Context(), date)
	if err != nil {
		h.logServiceError(r, "failed to fetch day records", err)
		writeError(w, r, storeStatus(err), "failed to fetch records", h.logger)
		return
	}

	logger := loggerFromContext(r, h.logger)
	if logger != nil {
		logger.Info("served day records",
			logging.FieldDate, date,
			logging.FieldCount, len(resp.Featured)+len(resp.Others),
		)
	}
	writeJSON(w, nethttp.StatusOK, resp, h.logger)
}

// RecordsByTeam serves /records/team/{team}?limit=N.
func (h *Handler) RecordsByTeam(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	team, ok := pathParam(r.URL.Path, "/records/team/")
	if !ok {
		writeError(w, r, nethttp.StatusBadRequest, "team name parameter is required", h.logger)
		return
	}

	limit := defaultTeamLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			writeError(w, r, nethttp.StatusBadRequest, "invalid limit", h.logger)
			return
		}
		limit = parsed
	}

	resp, err := h.svc.Team(r.Context(), team, limit)
	if err != nil {
		h.logServiceError(r, "failed to fetch team records", err)
		writeError(w, r, storeStatus(err), "failed to fetch records", h.logger)
		return
	}

	logger := loggerFromContext(r, h.logger)
	if logger != nil {
		logger.Info("served team records",
			logging.FieldTeam, team,
			logging.FieldCount, len(resp.Records),
		)
	}
	writeJSON(w, nethttp.StatusOK, resp, h.logger)
}

// BoxScore serves /boxscore/{gameId}: the raw upstream box score payload.
func (h *Handler) BoxScore(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if h.boxScores == nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "box scores not configured", h.logger)
		return
	}

	gameID, ok := pathParam(r.URL.Path, "/boxscore/")
	if !ok {
		writeError(w, r, nethttp.StatusBadRequest, "game id parameter is required", h.logger)
		return
	}

	cacheKey := "boxscore:" + gameID
	if cached, hit := h.cacheGet(cacheKey); hit {
		writeJSON(w, nethttp.StatusOK, cached, h.logger)
		return
	}

	boxscore, err := h.boxScores.BoxScore(r.Context(), gameID)
	if err != nil {
		h.writeProviderError(w, r, "failed to fetch box score", err)
		return
	}

	payload := map[string]any{"boxscore": boxscore}
	h.cacheSet(cacheKey, payload)
	writeJSON(w, nethttp.StatusOK, payload, h.logger)
}

// GameImages serves /game-images/{gameId}.
func (h *Handler) GameImages(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if h.images == nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "game images not configured", h.logger)
		return
	}

	gameID, ok := pathParam(r.URL.Path, "/game-images/")
	if !ok {
		writeError(w, r, nethttp.StatusBadRequest, "game id parameter is required", h.logger)
		return
	}

	cacheKey := "images:" + gameID
	if cached, hit := h.cacheGet(cacheKey); hit {
		writeJSON(w, nethttp.StatusOK, cached, h.logger)
		return
	}

	images, err := h.images.GameImages(r.Context(), gameID)
	if err != nil {
		h.writeProviderError(w, r, "failed to fetch game images", err)
		return
	}

	payload := map[string]any{"images": images}
	h.cacheSet(cacheKey, payload)
	writeJSON(w, nethttp.StatusOK, payload, h.logger)
}

// SearchHighlights serves /youtube-search?q=.
func (h *Handler) SearchHighlights(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if h.highlights == nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "highlight search not configured", h.logger)
		return
	}

	query := r.URL.Query().Get("q")
	if query == "" {
		writeError(w, r, nethttp.StatusBadRequest, "query parameter is required", h.logger)
		return
	}

	cacheKey := "youtube:" + query
	if cached, hit := h.cacheGet(cacheKey); hit {
		writeJSON(w, nethttp.StatusOK, cached, h.logger)
		return
	}

	videos, err := h.highlights.SearchHighlights(r.Context(), query)
	if err != nil {
		h.writeProviderError(w, r, "failed to search highlights", err)
		return
	}

	payload := map[string]any{"videos": videos}
	h.cacheSet(cacheKey, payload)
	writeJSON(w, nethttp.StatusOK, payload, h.logger)
}

func (h *Handler) writeProviderError(w nethttp.ResponseWriter, r *nethttp.Request, msg string, err error) {
	logger := loggerFromContext(r, h.logger)
	if logger != nil {
		if upstream, ok := providers.AsUpstreamError(err); ok {
			logger.Error(msg, "error", err,
				logging.FieldProvider, upstream.Provider,
				logging.FieldStatusCode, upstream.StatusCode,
			)
		} else {
			logger.Error(msg, "error", err)
		}
	}
	switch {
	case errors.Is(err, providers.ErrNotFound):
		writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
	default:
		writeError(w, r, nethttp.StatusBadGateway, msg, h.logger)
	}
}

func (h *Handler) logServiceError(r *nethttp.Request, msg string, err error) {
	logger := loggerFromContext(r, h.logger)
	if logger != nil {
		logger.Error(msg, "error", err)
	}
}

func (h *Handler) cacheGet(key string) (any, bool) {
	if h.cache == nil {
		return nil, false
	}
	return h.cache.Get(key)
}

func (h *Handler) cacheSet(key string, value any) {
	if h.cache != nil {
		h.cache.Set(key, value)
	}
}

// pathParam extracts and unescapes the single path segment after prefix.
func pathParam(path, prefix string) (string, bool) {
	raw := strings.TrimPrefix(path, prefix)
	if raw == "" || raw == path || strings.Contains(raw, "/") {
		return "", false
	}
	value, err := url.PathUnescape(raw)
	if err != nil || value == "" {
		return "", false
	}
	return value, true
}

func storeStatus(err error) int {
	if errors.Is(err, store.ErrUnavailable) {
		return nethttp.StatusBadGateway
	}
	return nethttp.StatusInternalServerError
}
