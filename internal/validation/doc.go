// Cinegraph - Film Catalog Explorer for Semantic Knowledge Bases
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

/*
Package validation provides struct validation using go-playground/validator v10.

A single validator instance is created on first use (GetValidator) with
WithRequiredStructEnabled and two custom tags:

  - iri: the value can be bound into a SPARQL query as an IRI reference
    (see sparql.ValidateIRI)
  - imgsize: the value is a TMDB image size token (w92, w154, w185, w300,
    w342, w500, w780, w1280 or original)

Error messages name the request parameter, taken from the query or json
struct tag, so they can be returned to API clients as-is.

# Usage

	type detailsRequest struct {
	    URI string `query:"uri" validate:"required,iri"`
	}

	if verr := validation.ValidateStruct(&req); verr != nil {
	    apiErr := verr.ToAPIError()
	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
	    return
	}

ToAPIError always uses the VALIDATION_ERROR code. A single failure carries
field, tag and value details; several failures are listed under "fields".
*/
package validation
