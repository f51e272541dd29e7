// Cinegraph - Film Catalog Explorer for Semantic Knowledge Bases
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package api

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/cinegraph/internal/artwork"
	"github.com/tomtom215/cinegraph/internal/catalog"
	"github.com/tomtom215/cinegraph/internal/config"
	"github.com/tomtom215/cinegraph/internal/sparql"
	"github.com/tomtom215/cinegraph/internal/tmdb"
)

const testNS = "http://example.org/film#"

var errEndpointDown = errors.New("dial tcp 127.0.0.1:3030: connect: connection refused")

// fakeEndpoint answers SPARQL queries by query name.
type fakeEndpoint struct {
	mu      sync.Mutex
	rows    map[string][]sparql.Binding
	err     error
	pingErr error
	queries []sparql.Query
}

func newFakeEndpoint() *fakeEndpoint {
	return &fakeEndpoint{rows: map[string][]sparql.Binding{}}
}

func (f *fakeEndpoint) Select(_ context.Context, q sparql.Query) ([]sparql.Binding, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries = append(f.queries, q)
	if f.err != nil {
		return nil, f.err
	}
	return f.rows[q.Name], nil
}

func (f *fakeEndpoint) Ping(_ context.Context) error {
	return f.pingErr
}

func (f *fakeEndpoint) queryNames() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	names := make([]string, len(f.queries))
	for i, q := range f.queries {
		names[i] = q.Name
	}
	return names
}

// fakeTMDB returns one movie per known title.
type fakeTMDB struct {
	mu     sync.Mutex
	movies map[string]tmdb.Movie
	fail   map[string]bool
}

func (f *fakeTMDB) SearchMovie(_ context.Context, title string, _ *int) (*tmdb.SearchResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail[title] {
		return nil, errors.New("tmdb unavailable")
	}
	m, ok := f.movies[title]
	if !ok {
		return &tmdb.SearchResponse{Page: 1}, nil
	}
	return &tmdb.SearchResponse{Page: 1, Results: []tmdb.Movie{m}, TotalResults: 1}, nil
}

type testServer struct {
	endpoint *fakeEndpoint
	tmdb     *fakeTMDB
	handler  http.Handler
}

type serverOption func(*testServerConfig)

type testServerConfig struct {
	security    config.SecurityConfig
	api         config.APIConfig
	withoutTMDB bool
}

func withSecurity(sec config.SecurityConfig) serverOption {
	return func(c *testServerConfig) { c.security = sec }
}

func withAPI(api config.APIConfig) serverOption {
	return func(c *testServerConfig) { c.api = api }
}

func withoutTMDB() serverOption {
	return func(c *testServerConfig) { c.withoutTMDB = true }
}

// newTestServer wires the real catalog and artwork services over fakes.
func newTestServer(t *testing.T, opts ...serverOption) *testServer {
	t.Helper()

	cfg := testServerConfig{
		security: config.SecurityConfig{RateLimitDisabled: true},
		api:      config.APIConfig{DefaultPageSize: 20, MaxPageSize: 100},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	endpoint := newFakeEndpoint()
	fake := &fakeTMDB{movies: map[string]tmdb.Movie{}, fail: map[string]bool{}}

	var searcher artwork.Searcher = fake
	if cfg.withoutTMDB {
		searcher = nil
	}

	cat := catalog.NewService(endpoint, &config.SPARQLConfig{Namespace: testNS})
	art := artwork.NewService(searcher, nil, &config.TMDBConfig{
		ImageBaseURL:   "https://img.test/t/p",
		MaxConcurrency: 4,
	})
	handler := NewHandler(cat, art, endpoint, &cfg.api)

	return &testServer{
		endpoint: endpoint,
		tmdb:     fake,
		handler:  NewRouter(handler, &cfg.security).SetupChi(),
	}
}

func (s *testServer) do(t *testing.T, method, target string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

// envelope mirrors models.APIResponse with the data left undecoded.
type envelope struct {
	Status   string          `json:"status"`
	Data     json.RawMessage `json:"data"`
	Metadata struct {
		Pagination *struct {
			Page       int   `json:"page"`
			PageSize   int   `json:"page_size"`
			TotalItems int   `json:"total_items"`
			TotalPages int   `json:"total_pages"`
			Window     []int `json:"window"`
		} `json:"pagination"`
	} `json:"metadata"`
	Error *struct {
		Code    string                 `json:"code"`
		Message string                 `json:"message"`
		Details map[string]interface{} `json:"details"`
	} `json:"error"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder, wantStatus int) envelope {
	t.Helper()
	if rec.Code != wantStatus {
		t.Fatalf("status = %d, want %d; body: %s", rec.Code, wantStatus, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}
	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode response: %v; body: %s", err, rec.Body.String())
	}
	return env
}

func decodeData(t *testing.T, env envelope, dst interface{}) {
	t.Helper()
	if err := json.Unmarshal(env.Data, dst); err != nil {
		t.Fatalf("decode data: %v; data: %s", err, env.Data)
	}
}

func checkErrorCode(t *testing.T, env envelope, want string) {
	t.Helper()
	if env.Status != "error" {
		t.Errorf("status = %q, want error", env.Status)
	}
	if env.Error == nil {
		t.Fatalf("expected error object, got none")
	}
	if env.Error.Code != want {
		t.Errorf("error code = %q, want %q", env.Error.Code, want)
	}
}

func mustJSON(t *testing.T, v interface{}) []byte {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return data
}

// filmRow builds a binding for a film listing row.
func filmRow(local, title, year, genre string) sparql.Binding {
	b := sparql.Binding{
		"uri":   {Type: "uri", Value: testNS + local},
		"titre": {Type: "literal", Value: title},
	}
	if year != "" {
		b["annee"] = sparql.Value{Type: "literal", Value: year}
	}
	if genre != "" {
		b["genre"] = sparql.Value{Type: "literal", Value: genre}
	}
	return b
}
