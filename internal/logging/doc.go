// Cinegraph - Film Catalog Explorer for Semantic Knowledge Bases
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

// Package logging provides the zerolog-based structured logging used across Cinegraph.
//
// A single global logger is configured at startup:
//
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	})
//
//	logging.Info().Str("endpoint", cfg.SPARQL.Endpoint).Msg("Knowledge base configured")
//	logging.Warn().Err(err).Str("title", title).Msg("Artwork lookup failed")
//
// Handlers carry request and correlation IDs in the context and log through Ctx:
//
//	logging.Ctx(ctx).Debug().Str("query", q.Name).Msg("Executing SPARQL query")
//
// # Configuration
//
// Environment variables (read by internal/config):
//
//	LOG_LEVEL   - trace, debug, info, warn, error (default: info)
//	LOG_FORMAT  - json, console (default: json)
//	LOG_CALLER  - include caller file:line (default: false)
//
// Always terminate event chains with .Msg() or .Send(); an unterminated event is
// never written.
//
// The SlogHandler adapter lets libraries that expect *slog.Logger (the suture
// event hook in internal/supervisor) write through the same zerolog sink.
package logging
