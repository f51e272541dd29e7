// Cinegraph - Film Catalog Explorer for Semantic Knowledge Bases
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package sparql

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/cinegraph/internal/config"
	"github.com/tomtom215/cinegraph/internal/logging"
	"github.com/tomtom215/cinegraph/internal/metrics"
)

const (
	contentTypeQuery = "application/sparql-query"
	acceptResults    = "application/sparql-results+json, application/json;q=0.9"
	userAgent        = "Cinegraph/1.0"

	// maxErrorBody bounds how much of a failed response is kept in EndpointError.
	maxErrorBody = 4 << 10
)

// EndpointError is returned when the endpoint answers with a non-2xx status.
type EndpointError struct {
	StatusCode int
	Body       string
}

func (e *EndpointError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("sparql endpoint returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("sparql endpoint returned status %d: %s", e.StatusCode, e.Body)
}

// ping is the readiness probe. Every SPARQL 1.1 endpoint answers it with true.
var ping = Prepare("ping", `ASK {}`)

// Client executes queries against a SPARQL 1.1 protocol endpoint.
// It is safe for concurrent use.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// NewClient creates a client for cfg.Endpoint with cfg.Timeout per query.
func NewClient(cfg *config.SPARQLConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		endpoint: cfg.Endpoint,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Endpoint returns the configured endpoint URL.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Select runs a SELECT query and returns its binding rows in response order.
// A non-2xx response yields *EndpointError; transport and decoding failures
// are wrapped. Nothing is retried.
func (c *Client) Select(ctx context.Context, q Query) ([]Binding, error) {
	start := time.Now()

	doc, err := c.execute(ctx, q)
	if err != nil {
		metrics.RecordSPARQLQuery(q.Name, time.Since(start), 0, errorType(err))
		return nil, err
	}

	var rows []Binding
	if doc.Results != nil {
		rows = doc.Results.Bindings
	}
	if rows == nil {
		rows = []Binding{}
	}

	elapsed := time.Since(start)
	metrics.RecordSPARQLQuery(q.Name, elapsed, len(rows), "")
	logging.Ctx(ctx).Debug().
		Str("query", q.Name).
		Int("rows", len(rows)).
		Dur("duration", elapsed).
		Msg("SPARQL query executed")

	return rows, nil
}

// Ask runs an ASK query.
func (c *Client) Ask(ctx context.Context, q Query) (bool, error) {
	start := time.Now()

	doc, err := c.execute(ctx, q)
	if err != nil {
		metrics.RecordSPARQLQuery(q.Name, time.Since(start), 0, errorType(err))
		return false, err
	}
	if doc.Boolean == nil {
		err := fmt.Errorf("%w: ask query %s returned no boolean", errMalformedResults, q.Name)
		metrics.RecordSPARQLQuery(q.Name, time.Since(start), 0, errorType(err))
		return false, err
	}

	metrics.RecordSPARQLQuery(q.Name, time.Since(start), 1, "")
	return *doc.Boolean, nil
}

// Ping checks that the endpoint is reachable and answers queries.
func (c *Client) Ping(ctx context.Context) error {
	ok, err := c.Ask(ctx, ping.MustRender())
	if err != nil {
		return fmt.Errorf("sparql ping failed: %w", err)
	}
	if !ok {
		return fmt.Errorf("sparql ping returned false")
	}
	return nil
}

var errMalformedResults = errors.New("malformed sparql results")

func (c *Client) execute(ctx context.Context, q Query) (*resultsDocument, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(q.Text))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", contentTypeQuery)
	req.Header.Set("Accept", acceptResults)
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sparql query %s failed: %w", q.Name, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &EndpointError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	var doc resultsDocument
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: failed to decode results of %s: %v", errMalformedResults, q.Name, err)
	}

	return &doc, nil
}

// errorType classifies a query failure for the error_type metric label.
func errorType(err error) string {
	var endpointErr *EndpointError
	switch {
	case errors.As(err, &endpointErr):
		return "endpoint"
	case errors.Is(err, errMalformedResults):
		return "decode"
	default:
		return "transport"
	}
}
