// Cinegraph - Film Catalog Explorer for Semantic Knowledge Bases
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package tmdb

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/tomtom215/cinegraph/internal/config"
	"github.com/tomtom215/cinegraph/internal/logging"
	"github.com/tomtom215/cinegraph/internal/metrics"
)

const (
	// DefaultLanguage is sent when no language is configured.
	DefaultLanguage = "fr-FR"

	searchMoviePath = "/search/movie"
	maxErrorBody    = 4 << 10
)

// Movie is one entry of a movie search.
type Movie struct {
	ID            int     `json:"id"`
	Title         string  `json:"title"`
	OriginalTitle string  `json:"original_title,omitempty"`
	PosterPath    string  `json:"poster_path"`
	BackdropPath  string  `json:"backdrop_path"`
	Overview      string  `json:"overview"`
	VoteAverage   float64 `json:"vote_average"`
	ReleaseDate   string  `json:"release_date"`
}

// SearchResponse is the body of GET /search/movie.
type SearchResponse struct {
	Page         int     `json:"page"`
	Results      []Movie `json:"results"`
	TotalResults int     `json:"total_results"`
	TotalPages   int     `json:"total_pages"`
}

// First returns the first result, or nil when there is none.
func (r *SearchResponse) First() *Movie {
	if r == nil || len(r.Results) == 0 {
		return nil
	}
	return &r.Results[0]
}

// APIError is returned when TMDB answers with a non-200 status.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	var status struct {
		Message string `json:"status_message"`
	}
	if json.Unmarshal([]byte(e.Body), &status) == nil && status.Message != "" {
		return fmt.Sprintf("tmdb API returned status %d: %s", e.StatusCode, status.Message)
	}
	return fmt.Sprintf("tmdb API returned status %d: %s", e.StatusCode, e.Body)
}

// Client talks to the TMDB v3 API.
type Client struct {
	baseURL    string
	apiKey     string
	language   string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a TMDB client. Requests are paced at cfg.RateLimit per
// second; a non-positive rate disables pacing.
func NewClient(cfg *config.TMDBConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	language := cfg.Language
	if language == "" {
		language = DefaultLanguage
	}

	limit := rate.Inf
	burst := 1
	if cfg.RateLimit > 0 {
		limit = rate.Limit(cfg.RateLimit)
		burst = max(1, int(cfg.RateLimit))
	}

	return &Client{
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:   cfg.APIKey,
		language: language,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		limiter: rate.NewLimiter(limit, burst),
	}
}

// SearchMovie searches movies by title, optionally restricted to a release year.
func (c *Client) SearchMovie(ctx context.Context, title string, year *int) (*SearchResponse, error) {
	start := time.Now()
	resp, err := c.searchMovie(ctx, title, year)
	metrics.RecordTMDBRequest(time.Since(start), errorType(err))
	if err != nil {
		return nil, err
	}

	logging.Ctx(ctx).Debug().
		Str("title", title).
		Int("results", len(resp.Results)).
		Dur("duration", time.Since(start)).
		Msg("TMDB movie search")
	return resp, nil
}

func (c *Client) searchMovie(ctx context.Context, title string, year *int) (*SearchResponse, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("tmdb rate limiter: %w", err)
	}

	params := url.Values{}
	params.Set("api_key", c.apiKey)
	params.Set("query", title)
	if year != nil {
		params.Set("year", strconv.Itoa(*year))
	}
	params.Set("language", c.language)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+searchMoviePath+"?"+params.Encode(), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// The request URL carries the API key; keep only the cause.
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		return nil, fmt.Errorf("tmdb search request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &APIError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	var result SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: %v", errMalformedResponse, err)
	}
	return &result, nil
}

var errMalformedResponse = errors.New("failed to decode tmdb response")

// errorType classifies a request failure for the error_type metric label.
func errorType(err error) string {
	var apiErr *APIError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &apiErr):
		return "status_" + strconv.Itoa(apiErr.StatusCode)
	case errors.Is(err, errMalformedResponse):
		return "decode"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	default:
		return "transport"
	}
}
