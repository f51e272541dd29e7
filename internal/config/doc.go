// Cinegraph - Film Catalog Explorer for Semantic Knowledge Bases
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

/*
Package config provides centralized configuration management for Cinegraph.

Configuration is layered with Koanf v2: struct defaults, then an optional YAML
file (config.yaml, or the path in CONFIG_PATH), then environment variables.
Only explicitly mapped environment variables are read.

# Environment Variables

Knowledge base (SPARQLConfig):
  - SPARQL_ENDPOINT: Query endpoint (default: http://localhost:3030/films/sparql)
  - SPARQL_NAMESPACE: Vocabulary namespace (default: http://example.org/film#)
  - SPARQL_TIMEOUT: Per-query timeout (default: 30s)

Artwork (TMDBConfig):
  - TMDB_ENABLED: Enable TMDB lookups (default: false)
  - TMDB_API_KEY: API key (required when enabled)
  - TMDB_BASE_URL: API base (default: https://api.themoviedb.org/3)
  - TMDB_IMAGE_BASE_URL: Image CDN base (default: https://image.tmdb.org/t/p)
  - TMDB_LANGUAGE: Metadata language (default: fr-FR)
  - TMDB_TIMEOUT: Per-request timeout (default: 10s)
  - TMDB_RATE_LIMIT: Requests per second (default: 20)
  - TMDB_MAX_CONCURRENCY: Parallel lookups per batch (default: 8)

HTTP Server (ServerConfig, APIConfig, SecurityConfig):
  - HTTP_HOST: Bind address (default: 0.0.0.0)
  - HTTP_PORT: Listen port (default: 3858)
  - HTTP_TIMEOUT: Read/write timeout (default: 30s)
  - API_DEFAULT_PAGE_SIZE: Films per page (default: 20)
  - API_MAX_PAGE_SIZE: Upper bound for page_size (default: 100)
  - CORS_ORIGINS: Comma-separated allowed origins (default: *)
  - RATE_LIMIT_REQUESTS: Requests per window per IP (default: 100)
  - RATE_LIMIT_WINDOW: Rate limit window (default: 1m)
  - DISABLE_RATE_LIMIT: Disable rate limiting (default: false)

Logging (LoggingConfig):
  - LOG_LEVEL: trace, debug, info, warn, error (default: info)
  - LOG_FORMAT: json, console (default: json)
  - LOG_CALLER: Include caller file:line (default: false)

# Usage

	cfg, err := config.Load()
	if err != nil {
	    logging.Fatal().Err(err).Msg("Failed to load configuration")
	}
	catalogService := catalog.NewService(sparql.NewClient(&cfg.SPARQL), &cfg.SPARQL)

Load validates the result and returns an error describing the first invalid
setting, named by its environment variable.
*/
package config
