// Cinegraph - Film Catalog Explorer for Semantic Knowledge Bases
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Artwork lookup outcomes used as the "result" label of ArtworkLookups.
const (
	LookupHit      = "hit"
	LookupFound    = "found"
	LookupNotFound = "not_found"
	LookupError    = "error"
	LookupDisabled = "disabled"
)

var (
	// Knowledge Base (SPARQL) Metrics
	SPARQLQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sparql_query_duration_seconds",
			Help:    "Duration of SPARQL queries in seconds",
			Buckets: prometheus.DefBuckets, // 0.005s, 0.01s, 0.025s, 0.05s, 0.1s, 0.25s, 0.5s, 1s, 2.5s, 5s, 10s
		},
		[]string{"query"},
	)

	SPARQLQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sparql_query_errors_total",
			Help: "Total number of failed SPARQL queries",
		},
		[]string{"query", "error_type"}, // error_type: "endpoint", "transport", "decode"
	)

	SPARQLRowsReturned = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sparql_rows_returned",
			Help:    "Number of binding rows returned per SPARQL query",
			Buckets: []float64{0, 1, 10, 50, 100, 500, 1000, 5000},
		},
		[]string{"query"},
	)

	SPARQLEndpointUp = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "sparql_endpoint_up",
			Help: "Whether the last SPARQL endpoint probe succeeded (1) or failed (0)",
		},
	)

	// TMDB Metrics
	TMDBRequestDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "tmdb_request_duration_seconds",
			Help:    "Duration of TMDB search requests in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
	)

	TMDBRequestErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tmdb_request_errors_total",
			Help: "Total number of failed TMDB requests",
		},
		[]string{"error_type"}, // error_type: "status", "transport", "decode", "rate_limit"
	)

	// Artwork Cache Metrics
	ArtworkLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "artwork_lookups_total",
			Help: "Total number of artwork lookups by outcome",
		},
		[]string{"result"}, // result: "hit", "found", "not_found", "error", "disabled"
	)

	ArtworkCacheEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "artwork_cache_entries",
			Help: "Current number of memoized artwork lookups (including absent results)",
		},
	)

	ArtworkBatchSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "artwork_batch_size",
			Help:    "Number of films per batch artwork lookup",
			Buckets: []float64{1, 5, 10, 20, 50, 100},
		},
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)

	AppUptime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_uptime_seconds",
			Help: "Application uptime in seconds",
		},
	)
)

// RecordSPARQLQuery records a SPARQL query execution. errorType is empty on success.
func RecordSPARQLQuery(query string, duration time.Duration, rows int, errorType string) {
	SPARQLQueryDuration.WithLabelValues(query).Observe(duration.Seconds())
	if errorType != "" {
		SPARQLQueryErrors.WithLabelValues(query, errorType).Inc()
		return
	}
	SPARQLRowsReturned.WithLabelValues(query).Observe(float64(rows))
}

// RecordTMDBRequest records a TMDB request. errorType is empty on success.
func RecordTMDBRequest(duration time.Duration, errorType string) {
	TMDBRequestDuration.Observe(duration.Seconds())
	if errorType != "" {
		TMDBRequestErrors.WithLabelValues(errorType).Inc()
	}
}

// RecordArtworkLookup records the outcome of a single artwork lookup.
func RecordArtworkLookup(result string) {
	ArtworkLookups.WithLabelValues(result).Inc()
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint string, statusCode int, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(statusCode)).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordEndpointProbe records the outcome of a SPARQL endpoint probe.
func RecordEndpointProbe(up bool) {
	if up {
		SPARQLEndpointUp.Set(1)
		return
	}
	SPARQLEndpointUp.Set(0)
}

// UpdateUptime refreshes the uptime gauge.
func UpdateUptime(started time.Time) {
	AppUptime.Set(time.Since(started).Seconds())
}

// SetAppInfo publishes build information and starts the uptime clock.
func SetAppInfo(version, goVersion string, started time.Time) {
	AppInfo.WithLabelValues(version, goVersion).Set(1)
	AppUptime.Set(time.Since(started).Seconds())
}
