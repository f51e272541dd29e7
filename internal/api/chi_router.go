// Cinegraph - Film Catalog Explorer for Semantic Knowledge Bases
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/cinegraph/internal/middleware"
)

// compressionLevel is the gzip level used for API responses.
const compressionLevel = 5

// SetupChi configures all HTTP routes using Chi router.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// ========================
	// Global Middleware Stack
	// ========================
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(RequestLogging())
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS()) // global so OPTIONS preflight is answered
	r.Use(chimiddleware.Compress(compressionLevel, "application/json"))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, r, http.StatusNotFound, ErrCodeNotFound, "Route not found", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, r, http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed, "Method not allowed", nil)
	})

	// ========================
	// Health Endpoints
	// ========================
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitHealth())
		r.Use(APISecurityHeaders())
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
	})

	// ========================
	// Catalog and Artwork Endpoints
	// ========================
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())
		r.Use(middleware.PrometheusMetrics)

		r.Route("/films", func(r chi.Router) {
			r.Get("/", router.handler.Films)
			r.Get("/search", router.handler.SearchFilms)
			r.Get("/details", router.handler.FilmDetails)
			r.Get("/recommendations", router.handler.Recommendations)
			r.Post("/recommendations/criteria", router.handler.RecommendationsByCriteria)
		})

		r.Route("/genres", func(r chi.Router) {
			r.Get("/", router.handler.Genres)
			r.Get("/films", router.handler.GenreFilms)
		})

		r.Get("/artwork", router.handler.Artwork)
		r.Post("/artwork/batch", router.handler.ArtworkBatch)
	})

	// ========================
	// Prometheus Metrics
	// ========================
	r.Handle("/metrics", promhttp.Handler())

	return r
}
