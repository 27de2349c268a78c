package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	nethttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	appgames "nba-recap-service/internal/app/games"
	"nba-recap-service/internal/domain/recaps"
	"nba-recap-service/internal/enrich"
	"nba-recap-service/internal/feature"
	apphttp "nba-recap-service/internal/http"
	"nba-recap-service/internal/http/handlers"
	"nba-recap-service/internal/providers"
	"nba-recap-service/internal/store"
	"nba-recap-service/internal/testutil"
)

type stubBoxScores struct {
	payload json.RawMessage
	err     error
}

func (s *stubBoxScores) BoxScore(ctx context.Context, gameID string) (json.RawMessage, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.payload, nil
}

type stubImages struct {
	images []providers.Image
	err    error
}

func (s *stubImages) GameImages(ctx context.Context, gameID string) ([]providers.Image, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.images, nil
}

type stubHighlights struct {
	videos []providers.Video
	err    error
	query  string
}

func (s *stubHighlights) SearchHighlights(ctx context.Context, query string) ([]providers.Video, error) {
	s.query = query
	if s.err != nil {
		return nil, s.err
	}
	return s.videos, nil
}

func newTestRouter(t *testing.T, mutate func(*handlers.Config)) nethttp.Handler {
	t.Helper()

	mem := store.NewMemoryStore()
	mem.Put(testutil.Game("g1", "Boston Celtics", "Los Angeles Lakers", 110, 105))
	mem.Put(testutil.Game("g2", "Utah Jazz", "Orlando Magic", 99, 92))

	svc := appgames.NewService(appgames.Config{
		Store:         mem,
		Engine:        feature.NewEngine(feature.DefaultRules()),
		FeaturedLimit: 1,
		Logger:        testutil.DiscardLogger(),
	})

	cfg := handlers.Config{
		Service: svc,
		Logger:  testutil.DiscardLogger(),
	}
	if mutate != nil {
		mutate(&cfg)
	}
	return apphttp.NewRouter(handlers.NewHandler(cfg))
}

func doRequest(t *testing.T, h nethttp.Handler, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, into any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), into); err != nil {
		t.Fatalf("decode failed: %v (body %s)", err, rec.Body.String())
	}
}

func TestHealth(t *testing.T) {
	h := newTestRouter(t, nil)
	rec := doRequest(t, h, nethttp.MethodGet, "/health")
	if rec.Code != nethttp.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body map[string]string
	decodeBody(t, rec, &body)
	if body["status"] != "ok" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestHealthMethodNotAllowed(t *testing.T) {
	h := newTestRouter(t, nil)
	rec := doRequest(t, h, nethttp.MethodPost, "/health")
	if rec.Code != nethttp.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
}

func TestReadyWithoutStatusFn(t *testing.T) {
	h := newTestRouter(t, nil)
	rec := doRequest(t, h, nethttp.MethodGet, "/ready")
	if rec.Code != nethttp.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestReadyReflectsWorkerStatus(t *testing.T) {
	status := enrich.Status{}
	h := newTestRouter(t, func(cfg *handlers.Config) {
		cfg.StatusFn = func() enrich.Status { return status }
	})

	rec := doRequest(t, h, nethttp.MethodGet, "/ready")
	if rec.Code != nethttp.StatusServiceUnavailable {
		t.Fatalf("expected 503 before first success, got %d", rec.Code)
	}

	status = enrich.Status{LastSuccess: time.Now()}
	rec = doRequest(t, h, nethttp.MethodGet, "/ready")
	if rec.Code != nethttp.StatusOK {
		t.Fatalf("expected 200 after success, got %d", rec.Code)
	}

	status = enrich.Status{LastSuccess: time.Now(), ConsecutiveFailures: 3, LastError: "upstream down"}
	rec = doRequest(t, h, nethttp.MethodGet, "/ready")
	if rec.Code != nethttp.StatusServiceUnavailable {
		t.Fatalf("expected 503 after repeated failures, got %d", rec.Code)
	}
}

func TestRecordsByDate(t *testing.T) {
	h := newTestRouter(t, nil)
	rec := doRequest(t, h, nethttp.MethodGet, "/records/2025-01-15")
	if rec.Code != nethttp.StatusOK {
		t.Fatalf("expected 200, got %d (body %s)", rec.Code, rec.Body.String())
	}

	var body recaps.DayResponse
	decodeBody(t, rec, &body)
	if body.Date != "2025-01-15" {
		t.Fatalf("unexpected date %q", body.Date)
	}
	if len(body.Featured)+len(body.Others) != 2 {
		t.Fatalf("expected 2 games total, got %d featured and %d others",
			len(body.Featured), len(body.Others))
	}
}

func TestRecordsByDateInvalid(t *testing.T) {
	h := newTestRouter(t, nil)
	for _, target := range []string{"/records/not-a-date", "/records/15-01-2025"} {
		rec := doRequest(t, h, nethttp.MethodGet, target)
		if rec.Code != nethttp.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", target, rec.Code)
		}
	}
}

func TestRecordsByDateStoreUnavailable(t *testing.T) {
	h := newTestRouter(t, func(cfg *handlers.Config) {
		cfg.Service = appgames.NewService(appgames.Config{
			Store:  failingStore{},
			Engine: feature.NewEngine(feature.DefaultRules()),
		})
	})
	rec := doRequest(t, h, nethttp.MethodGet, "/records/2025-01-15")
	if rec.Code != nethttp.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}
}

type failingStore struct{}

func (failingStore) RecordsByDate(ctx context.Context, date string) ([]recaps.GameRecord, error) {
	return nil, store.ErrUnavailable
}

func (failingStore) RecordsByTeam(ctx context.Context, team string, limit int) ([]recaps.GameRecord, error) {
	return nil, store.ErrUnavailable
}

func (failingStore) SetEspnGameID(ctx context.Context, id, espnGameID string) error {
	return store.ErrUnavailable
}

func TestRecordsByTeam(t *testing.T) {
	h := newTestRouter(t, nil)
	rec := doRequest(t, h, nethttp.MethodGet, "/records/team/celtics?limit=2")
	if rec.Code != nethttp.StatusOK {
		t.Fatalf("expected 200, got %d (body %s)", rec.Code, rec.Body.String())
	}

	var body recaps.TeamResponse
	decodeBody(t, rec, &body)
	if body.Team != "celtics" {
		t.Fatalf("unexpected team %q", body.Team)
	}
	if len(body.Records) != 1 || body.Records[0].ID != "g1" {
		t.Fatalf("unexpected records: %+v", body.Records)
	}
}

func TestRecordsByTeamHebrewName(t *testing.T) {
	mem := store.NewMemoryStore()
	mem.Put(recaps.GameRecord{ID: "he1", Date: "2025-01-15", HomeTeam: "בוסטון סלטיקס", AwayTeam: "מיאמי היט"})
	h := newTestRouter(t, func(cfg *handlers.Config) {
		cfg.Service = appgames.NewService(appgames.Config{
			Store:  mem,
			Engine: feature.NewEngine(feature.DefaultRules()),
		})
	})

	rec := doRequest(t, h, nethttp.MethodGet, "/records/team/%D7%A1%D7%9C%D7%98%D7%99%D7%A7%D7%A1")
	if rec.Code != nethttp.StatusOK {
		t.Fatalf("expected 200, got %d (body %s)", rec.Code, rec.Body.String())
	}

	var body recaps.TeamResponse
	decodeBody(t, rec, &body)
	if len(body.Records) != 1 || body.Records[0].ID != "he1" {
		t.Fatalf("unexpected records: %+v", body.Records)
	}
}

func TestRecordsByTeamInvalidLimit(t *testing.T) {
	h := newTestRouter(t, nil)
	for _, target := range []string{
		"/records/team/celtics?limit=abc",
		"/records/team/celtics?limit=0",
		"/records/team/celtics?limit=-1",
	} {
		rec := doRequest(t, h, nethttp.MethodGet, target)
		if rec.Code != nethttp.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", target, rec.Code)
		}
	}
}

func TestBoxScore(t *testing.T) {
	h := newTestRouter(t, func(cfg *handlers.Config) {
		cfg.BoxScores = &stubBoxScores{payload: json.RawMessage(`{"teams":[]}`)}
	})
	rec := doRequest(t, h, nethttp.MethodGet, "/boxscore/401585601")
	if rec.Code != nethttp.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body map[string]json.RawMessage
	decodeBody(t, rec, &body)
	if string(body["boxscore"]) != `{"teams":[]}` {
		t.Fatalf("unexpected payload: %s", body["boxscore"])
	}
}

func TestBoxScoreNotConfigured(t *testing.T) {
	h := newTestRouter(t, nil)
	rec := doRequest(t, h, nethttp.MethodGet, "/boxscore/401585601")
	if rec.Code != nethttp.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
}

func TestBoxScoreNotFound(t *testing.T) {
	h := newTestRouter(t, func(cfg *handlers.Config) {
		cfg.BoxScores = &stubBoxScores{err: providers.ErrNotFound}
	})
	rec := doRequest(t, h, nethttp.MethodGet, "/boxscore/401585601")
	if rec.Code != nethttp.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestBoxScoreUpstreamFailure(t *testing.T) {
	h := newTestRouter(t, func(cfg *handlers.Config) {
		cfg.BoxScores = &stubBoxScores{err: errors.New("timeout")}
	})
	rec := doRequest(t, h, nethttp.MethodGet, "/boxscore/401585601")
	if rec.Code != nethttp.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}
}

func TestGameImages(t *testing.T) {
	h := newTestRouter(t, func(cfg *handlers.Config) {
		cfg.Images = &stubImages{images: []providers.Image{{URL: "https://example.com/a.jpg", Caption: "Game winner"}}}
	})
	rec := doRequest(t, h, nethttp.MethodGet, "/game-images/401585601")
	if rec.Code != nethttp.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body struct {
		Images []providers.Image `json:"images"`
	}
	decodeBody(t, rec, &body)
	if len(body.Images) != 1 || body.Images[0].URL != "https://example.com/a.jpg" {
		t.Fatalf("unexpected images: %+v", body.Images)
	}
}

func TestGameImagesNotConfigured(t *testing.T) {
	h := newTestRouter(t, nil)
	rec := doRequest(t, h, nethttp.MethodGet, "/game-images/401585601")
	if rec.Code != nethttp.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
}

func TestSearchHighlights(t *testing.T) {
	stub := &stubHighlights{videos: []providers.Video{{VideoID: "abc123", Title: "Lakers vs Celtics Highlights"}}}
	h := newTestRouter(t, func(cfg *handlers.Config) {
		cfg.Highlights = stub
	})
	rec := doRequest(t, h, nethttp.MethodGet, "/youtube-search?q=lakers+celtics")
	if rec.Code != nethttp.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if stub.query != "lakers celtics" {
		t.Fatalf("unexpected query %q", stub.query)
	}

	var body struct {
		Videos []providers.Video `json:"videos"`
	}
	decodeBody(t, rec, &body)
	if len(body.Videos) != 1 || body.Videos[0].VideoID != "abc123" {
		t.Fatalf("unexpected videos: %+v", body.Videos)
	}
}

func TestSearchHighlightsMissingQuery(t *testing.T) {
	h := newTestRouter(t, func(cfg *handlers.Config) {
		cfg.Highlights = &stubHighlights{}
	})
	rec := doRequest(t, h, nethttp.MethodGet, "/youtube-search")
	if rec.Code != nethttp.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestSearchHighlightsNotConfigured(t *testing.T) {
	h := newTestRouter(t, nil)
	rec := doRequest(t, h, nethttp.MethodGet, "/youtube-search?q=lakers")
	if rec.Code != nethttp.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
}

func TestErrorBodyCarriesRequestID(t *testing.T) {
	h := newTestRouter(t, nil)
	req := httptest.NewRequest(nethttp.MethodGet, "/records/not-a-date", nil)
	req.Header.Set("X-Request-ID", "req-42")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var body map[string]string
	decodeBody(t, rec, &body)
	if body["requestId"] != "req-42" {
		t.Fatalf("expected request id echoed, got %v", body)
	}
}
