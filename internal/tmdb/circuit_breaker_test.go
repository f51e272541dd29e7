// Cinegraph - Film Catalog Explorer for Semantic Knowledge Bases
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package tmdb

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/cinegraph/internal/metrics"
)

func TestCircuitBreakerClient_PassesThrough(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(inceptionResponse))
	}))
	defer server.Close()

	name := "tmdb-test-pass"
	cbc := newCircuitBreakerClient(newTestClient(server.URL), name)

	resp, err := cbc.SearchMovie(context.Background(), "Inception", nil)
	checkNoError(t, err)
	checkStringEqual(t, "title", resp.First().Title, "Inception")
	checkStringEqual(t, "state", cbc.State(), "closed")

	if got := testutil.ToFloat64(metrics.CircuitBreakerRequests.WithLabelValues(name, "success")); got != 1 {
		t.Errorf("expected 1 success, got %v", got)
	}
}

func TestCircuitBreakerClient_OpensAfterFailures(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	name := "tmdb-test-open"
	cbc := newCircuitBreakerClient(newTestClient(server.URL), name)

	for i := 0; i < 10; i++ {
		_, err := cbc.SearchMovie(context.Background(), "Inception", nil)
		var apiErr *APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("request %d: expected *APIError, got %v", i, err)
		}
	}

	_, err := cbc.SearchMovie(context.Background(), "Inception", nil)
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Fatalf("expected ErrOpenState, got %v", err)
	}
	if got := hits.Load(); got != 10 {
		t.Errorf("expected the open breaker to skip the server, got %d hits", got)
	}

	checkStringEqual(t, "state", cbc.State(), "open")
	if got := testutil.ToFloat64(metrics.CircuitBreakerState.WithLabelValues(name)); got != 2 {
		t.Errorf("expected state gauge 2, got %v", got)
	}
	if got := testutil.ToFloat64(metrics.CircuitBreakerRequests.WithLabelValues(name, "rejected")); got != 1 {
		t.Errorf("expected 1 rejected request, got %v", got)
	}
	if got := testutil.ToFloat64(metrics.CircuitBreakerTransitions.WithLabelValues(name, "closed", "open")); got != 1 {
		t.Errorf("expected 1 closed->open transition, got %v", got)
	}
}

func TestCircuitBreakerClient_CanceledCallsDoNotTrip(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"results":[]}`))
	}))
	defer server.Close()

	cbc := newCircuitBreakerClient(newTestClient(server.URL), "tmdb-test-cancel")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for i := 0; i < 12; i++ {
		if _, err := cbc.SearchMovie(ctx, "Inception", nil); err == nil {
			t.Fatal("expected canceled context error")
		}
	}
	checkStringEqual(t, "state", cbc.State(), "closed")
}

func TestStateConversions(t *testing.T) {
	tests := []struct {
		state gobreaker.State
		str   string
		num   float64
	}{
		{gobreaker.StateClosed, "closed", 0},
		{gobreaker.StateHalfOpen, "half-open", 1},
		{gobreaker.StateOpen, "open", 2},
		{gobreaker.State(42), "unknown", -1},
	}
	for _, tt := range tests {
		checkStringEqual(t, "stateToString", stateToString(tt.state), tt.str)
		if got := stateToFloat(tt.state); got != tt.num {
			t.Errorf("stateToFloat(%v) = %v, want %v", tt.state, got, tt.num)
		}
	}
}
