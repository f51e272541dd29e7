// Cinegraph - Film Catalog Explorer for Semantic Knowledge Bases
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package api

import (
	"errors"
	"net/http"

	"github.com/tomtom215/cinegraph/internal/catalog"
	"github.com/tomtom215/cinegraph/internal/sparql"
)

// Error codes returned in APIResponse.Error.Code.
const (
	ErrCodeValidation         = "VALIDATION_ERROR"
	ErrCodeInvalidJSON        = "INVALID_JSON"
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeMethodNotAllowed   = "METHOD_NOT_ALLOWED"
	ErrCodeCatalogUnavailable = "CATALOG_UNAVAILABLE"
	ErrCodeRateLimited        = "RATE_LIMIT_EXCEEDED"
)

// catalogUnavailableMessage is shown to clients when the knowledge base
// cannot be reached.
const catalogUnavailableMessage = "connection impossible: the film catalog is unavailable"

// respondCatalogError maps a catalog failure to a response. Identifiers that
// cannot be bound into a query are client errors; anything else means the
// SPARQL endpoint failed.
func respondCatalogError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, sparql.ErrInvalidIRI), errors.Is(err, catalog.ErrInvalidStrategy):
		respondError(w, r, http.StatusBadRequest, ErrCodeValidation, err.Error(), nil)
	case r.Context().Err() != nil:
		// Client went away; nothing useful can be written.
		logRequestError(r, "Request canceled", err)
	default:
		respondError(w, r, http.StatusBadGateway, ErrCodeCatalogUnavailable, catalogUnavailableMessage, err)
	}
}
