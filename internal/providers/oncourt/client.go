package oncourt

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	domaincourt "github.com/preston-bernstein/nba-ratings-service/internal/domain/oncourt"
	"github.com/preston-bernstein/nba-ratings-service/internal/providers"
)

// Config controls how the on-court client reaches the upstream API.
type Config struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
	Timeout    time.Duration
}

// Client fetches per-player on-court team efficiency from the upstream stats API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient httpDoer
	now        func() time.Time
}

// NewClient constructs an on-court client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		apiKey:     cfg.APIKey,
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
		now:        time.Now,
	}
}

// Name identifies the upstream in logs and metrics.
func (c *Client) Name() string {
	return providerName
}

// FetchOnCourt retrieves the on-court dataset for a season and team.
func (c *Client) FetchOnCourt(ctx context.Context, season, teamCode string) (domaincourt.Dataset, error) {
	season = strings.TrimSpace(season)
	teamCode = strings.TrimSpace(teamCode)
	if season == "" {
		return domaincourt.Dataset{}, fmt.Errorf("%s: season is required", providerName)
	}

	req, err := c.buildRequest(ctx, season, teamCode)
	if err != nil {
		return domaincourt.Dataset{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domaincourt.Dataset{}, fmt.Errorf("%s: request failed: %w", providerName, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		return domaincourt.Dataset{}, &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After"), c.now()),
			Remaining:  resp.Header.Get("X-RateLimit-Remaining"),
			Message:    strings.TrimSpace(string(body)),
		}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		return domaincourt.Dataset{}, &providers.StatusError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(body)),
		}
	}

	var payload onCourtResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return domaincourt.Dataset{}, fmt.Errorf("%s: decode response: %w", providerName, err)
	}

	return mapDataset(season, teamCode, payload), nil
}

func (c *Client) buildRequest(ctx context.Context, season, teamCode string) (*http.Request, error) {
	endpoint := c.baseURL + "/seasons/" + url.PathEscape(season) + "/oncourt"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	if teamCode != "" {
		q := req.URL.Query()
		q.Set("team", teamCode)
		req.URL.RawQuery = q.Encode()
	}

	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	return req, nil
}
