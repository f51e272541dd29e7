// Cinegraph - Film Catalog Explorer for Semantic Knowledge Bases
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package api

import (
	"github.com/tomtom215/cinegraph/internal/config"
)

// Router sets up HTTP routes using Chi router.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a router for handler with CORS and rate limiting taken
// from sec. A nil sec uses the defaults.
func NewRouter(handler *Handler, sec *config.SecurityConfig) *Router {
	return &Router{
		handler:       handler,
		chiMiddleware: NewChiMiddleware(NewChiMiddlewareConfig(sec)),
	}
}
