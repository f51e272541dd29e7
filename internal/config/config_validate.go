// Cinegraph - Film Catalog Explorer for Semantic Knowledge Bases
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package config

import (
	"fmt"
	"time"
)

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateSPARQL(); err != nil {
		return err
	}

	if err := c.validateTMDB(); err != nil {
		return err
	}

	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateAPI(); err != nil {
		return err
	}

	if err := c.validateRateLimits(); err != nil {
		return err
	}

	return c.validateLogging()
}

// validateSPARQL validates the knowledge base endpoint and vocabulary namespace
func (c *Config) validateSPARQL() error {
	if c.SPARQL.Endpoint == "" {
		return fmt.Errorf("SPARQL_ENDPOINT is required")
	}
	if err := validateEndpointURL(c.SPARQL.Endpoint, "SPARQL_ENDPOINT"); err != nil {
		return fmt.Errorf("SPARQL_ENDPOINT is invalid: %w", err)
	}
	if err := validateNamespace(c.SPARQL.Namespace); err != nil {
		return fmt.Errorf("SPARQL_NAMESPACE is invalid: %w", err)
	}
	if c.SPARQL.Timeout <= 0 {
		return fmt.Errorf("SPARQL_TIMEOUT must be positive")
	}
	return nil
}

// validateTMDB validates TMDB configuration (only if enabled)
func (c *Config) validateTMDB() error {
	if !c.TMDB.Enabled {
		return nil
	}

	if c.TMDB.APIKey == "" {
		return fmt.Errorf("TMDB_API_KEY is required when TMDB_ENABLED=true")
	}
	if err := validateEndpointURL(c.TMDB.BaseURL, "TMDB_BASE_URL"); err != nil {
		return fmt.Errorf("TMDB_BASE_URL is invalid: %w", err)
	}
	if err := validateEndpointURL(c.TMDB.ImageBaseURL, "TMDB_IMAGE_BASE_URL"); err != nil {
		return fmt.Errorf("TMDB_IMAGE_BASE_URL is invalid: %w", err)
	}
	if c.TMDB.Timeout <= 0 {
		return fmt.Errorf("TMDB_TIMEOUT must be positive")
	}
	if c.TMDB.RateLimit <= 0 {
		return fmt.Errorf("TMDB_RATE_LIMIT must be positive")
	}
	if c.TMDB.MaxConcurrency < 1 || c.TMDB.MaxConcurrency > maxTMDBConcurrency {
		return fmt.Errorf("TMDB_MAX_CONCURRENCY must be between 1 and %d", maxTMDBConcurrency)
	}
	return nil
}

// validateServer validates server configuration
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	return nil
}

// validateAPI validates pagination bounds
func (c *Config) validateAPI() error {
	if c.API.DefaultPageSize < 1 {
		return fmt.Errorf("API_DEFAULT_PAGE_SIZE must be at least 1")
	}
	if c.API.MaxPageSize < c.API.DefaultPageSize {
		return fmt.Errorf("API_MAX_PAGE_SIZE (%d) must not be smaller than API_DEFAULT_PAGE_SIZE (%d)",
			c.API.MaxPageSize, c.API.DefaultPageSize)
	}
	return nil
}

const (
	minRateLimitRequests = 1           // Minimum 1 request allowed
	maxRateLimitRequests = 100000      // Maximum 100K requests per window
	minRateLimitWindow   = time.Second // Minimum 1 second window
	maxRateLimitWindow   = time.Hour   // Maximum 1 hour window

	maxTMDBConcurrency = 64
)

// validateRateLimits validates rate limiting configuration bounds.
func (c *Config) validateRateLimits() error {
	if c.Security.RateLimitDisabled {
		return nil
	}

	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

// validLogLevels defines the allowed log levels
var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// validLogFormats defines the allowed log formats
var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}
