// Cinegraph - Film Catalog Explorer for Semantic Knowledge Bases
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/cinegraph/internal/logging"
	"github.com/tomtom215/cinegraph/internal/models"
)

// readinessTimeout bounds the SPARQL probe of HealthReady.
const readinessTimeout = 3 * time.Second

// HealthLive handles Kubernetes liveness probe requests
//
// @Summary Liveness probe
// @Description Returns 200 if the process is alive. Never touches the knowledge base.
// @Tags Health
// @Produce json
// @Success 200 {object} models.APIResponse "Process is alive"
// @Router /health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	respondSuccess(w, map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	}, start, nil)
}

// HealthReady handles Kubernetes readiness probe requests
//
// @Summary Readiness probe
// @Description Returns 200 when the SPARQL endpoint answers an ASK probe, 503 otherwise.
// @Tags Health
// @Produce json
// @Success 200 {object} models.APIResponse "Ready"
// @Failure 503 {object} models.APIResponse "SPARQL endpoint unreachable"
// @Router /health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	sparqlOK := true
	if h.pinger != nil {
		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()
		if err := h.pinger.Ping(ctx); err != nil {
			sparqlOK = false
			logging.Ctx(r.Context()).Warn().Err(err).Msg("Readiness probe failed")
		}
	}

	stats := h.artwork.Stats()
	data := map[string]interface{}{
		"sparql":          sparqlOK,
		"tmdb_enabled":    h.artwork.Enabled(),
		"artwork_entries": stats.Entries,
	}

	if !sparqlOK {
		data["status"] = "not_ready"
		respondJSON(w, http.StatusServiceUnavailable, &models.APIResponse{
			Status: "error",
			Data:   data,
			Metadata: models.Metadata{
				Timestamp:   time.Now(),
				QueryTimeMS: time.Since(start).Milliseconds(),
			},
			Error: &models.APIError{
				Code:    ErrCodeCatalogUnavailable,
				Message: catalogUnavailableMessage,
			},
		})
		return
	}

	data["status"] = "ready"
	respondSuccess(w, data, start, nil)
}
