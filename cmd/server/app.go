// Cinegraph - Film Catalog Explorer for Semantic Knowledge Bases
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package main

import (
	"net/http"
	"time"

	"github.com/tomtom215/cinegraph/internal/api"
	"github.com/tomtom215/cinegraph/internal/artwork"
	"github.com/tomtom215/cinegraph/internal/cache"
	"github.com/tomtom215/cinegraph/internal/catalog"
	"github.com/tomtom215/cinegraph/internal/config"
	"github.com/tomtom215/cinegraph/internal/logging"
	"github.com/tomtom215/cinegraph/internal/models"
	"github.com/tomtom215/cinegraph/internal/sparql"
	"github.com/tomtom215/cinegraph/internal/supervisor"
	"github.com/tomtom215/cinegraph/internal/supervisor/services"
	"github.com/tomtom215/cinegraph/internal/tmdb"
)

const (
	shutdownTimeout   = 10 * time.Second
	probeInterval     = time.Minute
	readHeaderTimeout = 10 * time.Second
)

// application holds the wired components of the server.
type application struct {
	sparql  *sparql.Client
	catalog *catalog.Service
	artwork *artwork.Service
	server  *http.Server
}

// newApplication builds every component from cfg without starting anything.
func newApplication(cfg *config.Config) *application {
	client := sparql.NewClient(&cfg.SPARQL)
	cat := catalog.NewService(client, &cfg.SPARQL)

	var searcher artwork.Searcher
	if cfg.TMDB.Enabled {
		searcher = tmdb.NewCircuitBreakerClient(&cfg.TMDB)
		logging.Info().
			Str("language", cfg.TMDB.Language).
			Float64("rate_limit", cfg.TMDB.RateLimit).
			Int("max_concurrency", cfg.TMDB.MaxConcurrency).
			Msg("TMDB artwork lookups enabled")
	} else {
		logging.Info().Msg("TMDB artwork lookups disabled (TMDB_ENABLED=false)")
	}
	art := artwork.NewService(searcher, cache.NewMemo[*models.Artwork](), &cfg.TMDB)

	handler := api.NewHandler(cat, art, client, &cfg.API)
	router := api.NewRouter(handler, &cfg.Security)

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       2 * cfg.Server.Timeout,
	}

	return &application{
		sparql:  client,
		catalog: cat,
		artwork: art,
		server:  server,
	}
}

// register adds the long-running services to tree.
func (a *application) register(tree *supervisor.SupervisorTree) {
	tree.AddMonitorService(services.NewEndpointMonitorService(a.sparql, probeInterval))
	tree.AddAPIService(services.NewHTTPServerService(a.server, shutdownTimeout))
}
