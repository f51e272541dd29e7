// Cinegraph - Film Catalog Explorer for Semantic Knowledge Bases
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package api

import (
	"errors"
	"net/http"
	"testing"

	"github.com/tomtom215/cinegraph/internal/config"
)

func TestNewHandler(t *testing.T) {
	t.Parallel()

	handler := NewHandler(nil, nil, nil, nil)
	if handler == nil {
		t.Fatal("NewHandler returned nil")
	}
	if handler.config == nil {
		t.Error("Expected API config to default when nil")
	}
	if handler.startTime.IsZero() {
		t.Error("Expected start time to be set")
	}
}

func TestHandler_PageSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		cfg       config.APIConfig
		requested int
		want      int
	}{
		{"configured default", config.APIConfig{DefaultPageSize: 30, MaxPageSize: 100}, 0, 30},
		{"requested", config.APIConfig{DefaultPageSize: 30, MaxPageSize: 100}, 10, 10},
		{"capped", config.APIConfig{DefaultPageSize: 30, MaxPageSize: 100}, 500, 100},
		{"no configuration", config.APIConfig{}, 0, 20},
		{"no cap", config.APIConfig{}, 500, 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(nil, nil, nil, &tt.cfg)
			if got := h.pageSize(tt.requested); got != tt.want {
				t.Errorf("pageSize(%d) = %d, want %d", tt.requested, got, tt.want)
			}
		})
	}
}

func TestHealthLive(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)
	s.endpoint.pingErr = errors.New("down")

	env := decodeEnvelope(t, s.do(t, http.MethodGet, "/api/v1/health/live", nil), http.StatusOK)
	var data map[string]interface{}
	decodeData(t, env, &data)
	if data["alive"] != true {
		t.Errorf("alive = %v, want true", data["alive"])
	}
}

func TestHealthReady(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		pingErr    error
		wantStatus int
		wantState  string
	}{
		{"endpoint answers", nil, http.StatusOK, "ready"},
		{"endpoint down", errEndpointDown, http.StatusServiceUnavailable, "not_ready"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t)
			s.endpoint.pingErr = tt.pingErr

			env := decodeEnvelope(t, s.do(t, http.MethodGet, "/api/v1/health/ready", nil), tt.wantStatus)
			var data map[string]interface{}
			decodeData(t, env, &data)
			if data["status"] != tt.wantState {
				t.Errorf("status = %v, want %s", data["status"], tt.wantState)
			}
			if data["tmdb_enabled"] != true {
				t.Errorf("tmdb_enabled = %v, want true", data["tmdb_enabled"])
			}
		})
	}
}
