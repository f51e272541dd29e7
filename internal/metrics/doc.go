// Cinegraph - Film Catalog Explorer for Semantic Knowledge Bases
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered on the default registry through promauto and are
exposed at /metrics in Prometheus text format:

	curl http://localhost:3858/metrics

# Available Metrics

Knowledge base:
  - sparql_query_duration_seconds: Query latency (histogram), labels: query
  - sparql_query_errors_total: Failed queries (counter), labels: query, error_type
  - sparql_rows_returned: Binding rows per query (histogram), labels: query

TMDB and artwork:
  - tmdb_request_duration_seconds: Search request latency (histogram)
  - tmdb_request_errors_total: Failed requests (counter), labels: error_type
  - artwork_lookups_total: Lookups by outcome (counter), labels: result
  - artwork_cache_entries: Memoized keys, including absent results (gauge)
  - artwork_batch_size: Films per batch lookup (histogram)

HTTP API:
  - api_requests_total: Requests (counter), labels: method, endpoint, status_code
  - api_request_duration_seconds: Latency (histogram), labels: method, endpoint
  - api_active_requests: In-flight requests (gauge)
  - api_rate_limit_hits_total: Rate limit rejections (counter), labels: endpoint

Circuit breaker:
  - circuit_breaker_state: 0=closed, 1=half-open, 2=open (gauge), labels: name
  - circuit_breaker_requests_total: labels: name, result
  - circuit_breaker_consecutive_failures: labels: name
  - circuit_breaker_state_transitions_total: labels: name, from_state, to_state

# Example Queries

	# p95 SPARQL latency per query
	histogram_quantile(0.95, sum(rate(sparql_query_duration_seconds_bucket[5m])) by (le, query))

	# Artwork cache hit ratio
	sum(rate(artwork_lookups_total{result="hit"}[5m])) / sum(rate(artwork_lookups_total[5m]))
*/
package metrics
