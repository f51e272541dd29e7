// Cinegraph - Film Catalog Explorer for Semantic Knowledge Bases
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

/*
Package tmdb is a minimal client for The Movie Database v3 API.

Only movie search is implemented, which is all artwork lookup needs:

	GET {base}/search/movie?api_key=...&query=...&year=...&language=fr-FR

Client paces outbound requests with a token bucket (golang.org/x/time/rate)
and reports request durations and failures to Prometheus. Non-200 responses
are returned as *APIError.

CircuitBreakerClient wraps Client with sony/gobreaker. After at least ten
requests in a one minute window with a failure rate of 60% or more, the
breaker opens and rejects calls for 30 seconds before probing again with up
to three half-open requests. State changes are exported through the
circuit_breaker_* metrics.

The API key is sent as a query parameter, so transport errors are stripped of
the request URL before they are returned or logged.
*/
package tmdb
