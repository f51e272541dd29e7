// Cinegraph - Film Catalog Explorer for Semantic Knowledge Bases
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

// Package main is the entry point for the Cinegraph server.
//
// Cinegraph serves a film catalog stored in an RDF knowledge base to a
// browsing UI. Films, genres and recommendations come from a SPARQL
// endpoint; posters and backdrops come from The Movie Database (TMDB).
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: defaults, config.yaml, then environment variables (Koanf v2)
//  2. Logging: zerolog, with an slog bridge for the supervisor
//  3. Catalog: SPARQL protocol client and query service
//  4. Artwork: TMDB client behind a circuit breaker, and the artwork memo
//  5. HTTP API: chi router under /api/v1, Prometheus metrics at /metrics
//  6. Supervisor tree: HTTP server and SPARQL endpoint monitor
//
// # Configuration
//
// The most common settings:
//   - SPARQL_ENDPOINT: query endpoint (default: http://localhost:3030/films/sparql)
//   - SPARQL_NAMESPACE: vocabulary namespace (default: http://example.org/film#)
//   - TMDB_ENABLED, TMDB_API_KEY: enable artwork lookups
//   - HTTP_HOST, HTTP_PORT: listen address
//   - CORS_ORIGINS: comma-separated origins allowed to call the API
//
// # Example Usage
//
//	export SPARQL_ENDPOINT=http://localhost:3030/films/sparql
//	export TMDB_ENABLED=true
//	export TMDB_API_KEY=your-tmdb-api-key
//	export CORS_ORIGINS=http://localhost:5173
//	./cinegraph
//
// # Signal Handling
//
// SIGINT and SIGTERM stop the supervisor tree: the HTTP server stops
// accepting connections and waits for in-flight requests.
package main

import (
	"context"
	"errors"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/tomtom215/cinegraph/internal/config"
	"github.com/tomtom215/cinegraph/internal/logging"
	"github.com/tomtom215/cinegraph/internal/metrics"
	"github.com/tomtom215/cinegraph/internal/supervisor"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	started := time.Now()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("version", version).
		Str("sparql_endpoint", cfg.SPARQL.Endpoint).
		Str("namespace", cfg.SPARQL.Namespace).
		Bool("tmdb_enabled", cfg.TMDB.Enabled).
		Str("addr", cfg.Server.Addr()).
		Msg("Starting Cinegraph")

	metrics.SetAppInfo(version, runtime.Version(), started)

	app := newApplication(cfg)

	treeConfig := supervisor.DefaultTreeConfig()
	treeConfig.ShutdownTimeout = shutdownTimeout
	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), treeConfig)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}
	app.register(tree)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Shutdown signal received, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	stats := app.artwork.Stats()
	logging.Info().
		Int64("artwork_entries", stats.Entries).
		Int64("artwork_hits", stats.Hits).
		Int64("artwork_misses", stats.Misses).
		Msg("Application stopped gracefully")
}
