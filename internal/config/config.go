// Cinegraph - Film Catalog Explorer for Semantic Knowledge Bases
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration loaded from defaults, an optional
// config file, and environment variables.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in sensible defaults for all optional settings
//  2. Config File: Optional YAML config file (config.yaml) for persistent settings
//  3. Environment Variables: Override any setting via environment variables
//
// Configuration Categories:
//
//  1. Data Sources:
//     - SPARQL: Knowledge base query endpoint (required)
//     - TMDB: Artwork metadata API (optional)
//
//  2. HTTP Surface:
//     - Server: HTTP server configuration (port, host, timeout)
//     - API: Pagination limits
//     - Security: CORS and rate limiting
//
//  3. Observability:
//     - Logging: Log levels and output formats
//
// Example:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    logging.Fatal().Err(err).Msg("Failed to load config")
//	}
//	client := sparql.NewClient(&cfg.SPARQL)
//
// Thread Safety:
// Config is immutable after Load() and safe for concurrent read access from multiple goroutines.
type Config struct {
	SPARQL   SPARQLConfig   `koanf:"sparql"`
	TMDB     TMDBConfig     `koanf:"tmdb"`
	Server   ServerConfig   `koanf:"server"`
	API      APIConfig      `koanf:"api"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// SPARQLConfig holds the knowledge base connection settings.
//
// Environment Variables:
//   - SPARQL_ENDPOINT: Query endpoint URL (default: http://localhost:3030/films/sparql)
//   - SPARQL_NAMESPACE: Vocabulary namespace IRI (default: http://example.org/film#)
//   - SPARQL_TIMEOUT: Per-query HTTP timeout (default: 30s)
type SPARQLConfig struct {
	Endpoint  string        `koanf:"endpoint"`
	Namespace string        `koanf:"namespace"`
	Timeout   time.Duration `koanf:"timeout"`
}

// TMDBConfig holds The Movie Database API settings used for artwork lookups.
// When Enabled is false, every artwork lookup reports no artwork.
//
// Environment Variables:
//   - TMDB_ENABLED: Enable artwork lookups (default: false)
//   - TMDB_API_KEY: API key sent as the api_key query parameter
//   - TMDB_BASE_URL: API base URL (default: https://api.themoviedb.org/3)
//   - TMDB_IMAGE_BASE_URL: Image CDN base URL (default: https://image.tmdb.org/t/p)
//   - TMDB_LANGUAGE: Metadata language (default: fr-FR)
//   - TMDB_TIMEOUT: Per-request HTTP timeout (default: 10s)
//   - TMDB_RATE_LIMIT: Maximum requests per second (default: 20)
//   - TMDB_MAX_CONCURRENCY: Maximum in-flight lookups per batch (default: 8)
type TMDBConfig struct {
	Enabled        bool          `koanf:"enabled"`
	APIKey         string        `koanf:"api_key"`
	BaseURL        string        `koanf:"base_url"`
	ImageBaseURL   string        `koanf:"image_base_url"`
	Language       string        `koanf:"language"`
	Timeout        time.Duration `koanf:"timeout"`
	RateLimit      float64       `koanf:"rate_limit"`
	MaxConcurrency int           `koanf:"max_concurrency"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port    int           `koanf:"port"`
	Host    string        `koanf:"host"`
	Timeout time.Duration `koanf:"timeout"`
}

// Addr returns the listen address in host:port form.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// APIConfig holds API pagination settings
type APIConfig struct {
	DefaultPageSize int `koanf:"default_page_size"`
	MaxPageSize     int `koanf:"max_page_size"`
}

// SecurityConfig holds CORS and rate limiting settings
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// LoggingConfig holds logging configuration.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false - include caller file:line (default: false)
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	// Default: false
	Caller bool `koanf:"caller"`
}

// Load reads configuration with the following precedence (highest to lowest):
//  1. Environment variables
//  2. Config file (config.yaml if exists, or path specified in CONFIG_PATH env var)
//  3. Built-in defaults
//
// See LoadWithKoanf() for the underlying implementation.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
