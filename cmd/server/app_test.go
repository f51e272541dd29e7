// Cinegraph - Film Catalog Explorer for Semantic Knowledge Bases
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package main

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/tomtom215/cinegraph/internal/config"
)

func testConfig(tmdbEnabled bool) *config.Config {
	return &config.Config{
		SPARQL: config.SPARQLConfig{
			Endpoint:  "http://127.0.0.1:1/films/query",
			Namespace: "http://example.org/film#",
			Timeout:   time.Second,
		},
		TMDB: config.TMDBConfig{
			Enabled:        tmdbEnabled,
			APIKey:         "test-key",
			BaseURL:        "http://127.0.0.1:1/3",
			ImageBaseURL:   "https://image.tmdb.org/t/p",
			Language:       "fr-FR",
			Timeout:        time.Second,
			RateLimit:      10,
			MaxConcurrency: 2,
		},
		Server: config.ServerConfig{
			Host:    "127.0.0.1",
			Port:    8080,
			Timeout: 30 * time.Second,
		},
		API: config.APIConfig{
			DefaultPageSize: 20,
			MaxPageSize:     100,
		},
		Security: config.SecurityConfig{
			RateLimitDisabled: true,
		},
	}
}

func TestNewApplication(t *testing.T) {
	tests := []struct {
		name        string
		tmdbEnabled bool
	}{
		{"tmdb enabled", true},
		{"tmdb disabled", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newApplication(testConfig(tt.tmdbEnabled))

			if app.server.Addr != "127.0.0.1:8080" {
				t.Errorf("Addr = %q, want 127.0.0.1:8080", app.server.Addr)
			}
			if app.server.ReadHeaderTimeout != readHeaderTimeout {
				t.Errorf("ReadHeaderTimeout = %v, want %v", app.server.ReadHeaderTimeout, readHeaderTimeout)
			}
			if app.server.WriteTimeout != 30*time.Second {
				t.Errorf("WriteTimeout = %v, want 30s", app.server.WriteTimeout)
			}
			if got := app.artwork.Enabled(); got != tt.tmdbEnabled {
				t.Errorf("artwork.Enabled() = %v, want %v", got, tt.tmdbEnabled)
			}
		})
	}
}

func TestNewApplication_LivenessRoute(t *testing.T) {
	app := newApplication(testConfig(false))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health/live", nil)
	rec := httptest.NewRecorder()
	app.server.Handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}
}

func TestNewApplication_ReadyWithoutEndpoint(t *testing.T) {
	app := newApplication(testConfig(false))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health/ready", nil)
	rec := httptest.NewRecorder()
	app.server.Handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusServiceUnavailable)
	}
}
