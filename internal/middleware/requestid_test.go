// Cinegraph - Film Catalog Explorer for Semantic Knowledge Bases
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/tomtom215/cinegraph/internal/logging"
)

func serveWithRequestID(t *testing.T, header string) (responseID string, ctx context.Context) {
	t.Helper()
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx = r.Context()
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	if header != "" {
		req.Header.Set(RequestIDHeader, header)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	return rec.Header().Get(RequestIDHeader), ctx
}

func TestRequestID_GeneratesNewID(t *testing.T) {
	responseID, ctx := serveWithRequestID(t, "")

	if responseID == "" {
		t.Fatal("Expected X-Request-ID header in response")
	}
	if got := GetRequestID(ctx); got != responseID {
		t.Errorf("Context ID %q does not match response header %q", got, responseID)
	}
	if got := logging.RequestIDFromContext(ctx); got != responseID {
		t.Errorf("Logging context ID %q does not match %q", got, responseID)
	}
	if logging.CorrelationIDFromContext(ctx) == "" {
		t.Error("Expected a correlation ID in the logging context")
	}
}

func TestRequestID_PropagatesUpstreamID(t *testing.T) {
	responseID, ctx := serveWithRequestID(t, "proxy-1234")

	if responseID != "proxy-1234" {
		t.Errorf("Expected upstream ID to be echoed, got %q", responseID)
	}
	if GetRequestID(ctx) != "proxy-1234" {
		t.Errorf("Expected upstream ID in context, got %q", GetRequestID(ctx))
	}
}

func TestRequestID_RejectsMalformedUpstreamID(t *testing.T) {
	tests := []struct {
		name string
		id   string
	}{
		{"spaces", "id with spaces"},
		{"too long", strings.Repeat("a", maxRequestIDLength+1)},
		{"non ascii", "idé"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			responseID, _ := serveWithRequestID(t, tt.id)
			if responseID == tt.id || responseID == "" {
				t.Errorf("Expected a generated ID, got %q", responseID)
			}
		})
	}
}

func TestGetRequestID_Missing(t *testing.T) {
	if got := GetRequestID(context.Background()); got != "" {
		t.Errorf("Expected empty ID, got %q", got)
	}
}
