// Cinegraph - Film Catalog Explorer for Semantic Knowledge Bases
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

/*
Package middleware provides HTTP middleware shared by the API router.

Key Components:

  - RequestID: assigns or propagates X-Request-ID and seeds the logging
    context with request and correlation IDs
  - PrometheusMetrics: counts requests, observes latency and tracks in-flight
    requests, labelled by chi route pattern

Both have the chi middleware signature func(http.Handler) http.Handler:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Route("/api/v1", func(r chi.Router) {
	    r.Use(middleware.PrometheusMetrics)
	    r.Get("/films", h.Films)
	})

Labelling by route pattern keeps the endpoint label bounded: a request for
/api/v1/films/details?uri=... is recorded under /api/v1/films/details, and
requests that match no route are recorded as "unmatched".
*/
package middleware
