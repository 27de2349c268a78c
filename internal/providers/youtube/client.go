// Package youtube scrapes the highlights channel's video listing and
// searches it by title. The channel page embeds its listing as a
// ytInitialData JSON blob; there is no official API key in play.
package youtube

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"nba-recap-service/internal/providers"
)

const (
	// Name identifies this provider in logs and metrics.
	Name = "youtube"

	defaultChannelURL = "https://www.youtube.com/@TheGametimeHighlights/videos"
	defaultTimeout    = 15 * time.Second

	// YouTube serves a degraded page to clients without a browser UA.
	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config controls how the client reaches the channel page.
type Config struct {
	ChannelURL string
	HTTPClient *http.Client
	Timeout    time.Duration
}

// Client searches a single channel's uploads for highlight videos.
type Client struct {
	channelURL string
	httpClient httpDoer
}

// NewClient constructs a youtube client with the provided configuration.
func NewClient(cfg Config) *Client {
	url := cfg.ChannelURL
	if url == "" {
		url = defaultChannelURL
	}
	httpClient := httpDoer(cfg.HTTPClient)
	if cfg.HTTPClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		channelURL: url,
		httpClient: httpClient,
	}
}

var initialDataPattern = regexp.MustCompile(`var ytInitialData = (\{.+?\});`)

// SearchHighlights fetches the channel listing and returns the videos whose
// titles match the query terms, best match first.
func (c *Client) SearchHighlights(ctx context.Context, query string) ([]providers.Video, error) {
	videos, err := c.channelVideos(ctx)
	if err != nil {
		return nil, err
	}
	return filterByQuery(videos, query), nil
}

func (c *Client) channelVideos(ctx context.Context) ([]providers.Video, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.channelURL, nil)
	if err != nil {
		return nil, fmt.Errorf("youtube: build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("youtube: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &providers.UpstreamError{Provider: Name, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("youtube: read body: %w", err)
	}

	m := initialDataPattern.FindSubmatch(body)
	if m == nil {
		return nil, fmt.Errorf("youtube: ytInitialData blob not found in channel page")
	}
	return parseInitialData(m[1])
}

// filterByQuery keeps videos whose titles contain query terms, ordered by
// how many terms matched. Terms shorter than two runes are noise and
// ignored; an empty query returns the listing untouched.
func filterByQuery(videos []providers.Video, query string) []providers.Video {
	terms := significantTerms(query)
	if len(terms) == 0 {
		return videos
	}

	type match struct {
		video providers.Video
		hits  int
	}
	matches := make([]match, 0, len(videos))
	for _, v := range videos {
		title := strings.ToLower(v.Title)
		hits := 0
		for _, term := range terms {
			if strings.Contains(title, term) {
				hits++
			}
		}
		if hits > 0 {
			matches = append(matches, match{video: v, hits: hits})
		}
	}

	// Stable selection sort by hit count; listings are small.
	out := make([]providers.Video, 0, len(matches))
	for hits := len(terms); hits > 0; hits-- {
		for _, m := range matches {
			if m.hits == hits {
				out = append(out, m.video)
			}
		}
	}
	return out
}

func significantTerms(query string) []string {
	fields := strings.Fields(strings.ToLower(query))
	terms := make([]string, 0, len(fields))
	for _, f := range fields {
		if len([]rune(f)) >= 2 {
			terms = append(terms, f)
		}
	}
	return terms
}
