// Package espn fetches scoreboard and summary data from ESPN's public site
// API and maps it onto the service's provider contracts.
package espn

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"nba-recap-service/internal/providers"
	"nba-recap-service/internal/timeutil"
)

const (
	// Name identifies this provider in logs and metrics.
	Name = "espn"

	defaultBaseURL = "https://site.web.api.espn.com/apis/site/v2/sports/basketball/nba"
	defaultTimeout = 10 * time.Second
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config controls how the client reaches the upstream API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration
}

// Client fetches NBA data from ESPN.
type Client struct {
	baseURL    string
	httpClient httpDoer
}

// NewClient constructs an ESPN client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
	}
}

func normalizeBaseURL(base string) string {
	if base == "" {
		return defaultBaseURL
	}
	return strings.TrimRight(base, "/")
}

func resolveHTTPClient(client *http.Client, timeout time.Duration) httpDoer {
	if client != nil {
		return client
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &http.Client{Timeout: timeout}
}

// FindGameID resolves the ESPN game ID for a matchup by scanning the
// scoreboard for the given date. Team matching is tolerant: whitespace is
// stripped and either name may contain the other.
func (c *Client) FindGameID(ctx context.Context, homeTeam, awayTeam, date string) (string, error) {
	var sb scoreboardResponse
	url := fmt.Sprintf("%s/scoreboard?dates=%s", c.baseURL, timeutil.ESPNDate(date))
	if err := c.getJSON(ctx, url, &sb); err != nil {
		return "", err
	}

	for _, event := range sb.Events {
		if len(event.Competitions) == 0 {
			continue
		}
		home, away, ok := event.Competitions[0].sides()
		if !ok {
			continue
		}
		if matchTeams(homeTeam, home.Team.DisplayName) && matchTeams(awayTeam, away.Team.DisplayName) {
			return event.ID, nil
		}
	}
	return "", fmt.Errorf("game id for %s @ %s on %s: %w", awayTeam, homeTeam, date, providers.ErrNotFound)
}

// BoxScore returns the raw box score section of the game summary.
func (c *Client) BoxScore(ctx context.Context, gameID string) (json.RawMessage, error) {
	summary, err := c.summary(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if len(summary.BoxScore) == 0 || string(summary.BoxScore) == "null" {
		return nil, fmt.Errorf("box score for game %s: %w", gameID, providers.ErrNotFound)
	}
	return summary.BoxScore, nil
}

// GameImages returns the summary's editorial images with team logos and
// generic matchup shots filtered out.
func (c *Client) GameImages(ctx context.Context, gameID string) ([]providers.Image, error) {
	summary, err := c.summary(ctx, gameID)
	if err != nil {
		return nil, err
	}

	images := make([]providers.Image, 0)
	for _, img := range summary.allImages() {
		if isTeamLogo(img.URL) || isGenericCaption(img.Caption) {
			continue
		}
		images = append(images, providers.Image{URL: img.URL, Caption: img.Caption})
	}
	return images, nil
}

func (c *Client) summary(ctx context.Context, gameID string) (summaryResponse, error) {
	var payload summaryResponse
	url := fmt.Sprintf("%s/summary?event=%s", c.baseURL, gameID)
	if err := c.getJSON(ctx, url, &payload); err != nil {
		return summaryResponse{}, err
	}
	return payload, nil
}

func (c *Client) getJSON(ctx context.Context, url string, payload any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("espn: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("espn: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("espn %s: %w", url, providers.ErrNotFound)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &providers.UpstreamError{Provider: Name, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("espn: read body: %w", err)
	}
	if err := json.Unmarshal(body, payload); err != nil {
		return fmt.Errorf("espn: decode: %w", err)
	}
	return nil
}

func normalizeTeamName(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "")
}

// matchTeams reports whether two team names refer to the same franchise.
// Recap documents may carry short names ("Lakers") while ESPN uses full
// display names ("Los Angeles Lakers"), so containment counts either way.
func matchTeams(a, b string) bool {
	na := normalizeTeamName(a)
	nb := normalizeTeamName(b)
	if na == "" || nb == "" {
		return false
	}
	return na == nb || strings.Contains(na, nb) || strings.Contains(nb, na)
}
