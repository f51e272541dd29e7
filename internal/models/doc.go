// Cinegraph - Film Catalog Explorer for Semantic Knowledge Bases
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

/*
Package models defines data structures shared across Cinegraph.

Domain records:
  - Film: a film aggregated from knowledge base rows (one per IRI)
  - Genre: a genre IRI with its display name
  - Artwork: TMDB poster, backdrop, overview and rating for a film
  - FilmWithArtwork: a Film with its (possibly nil) Artwork

API envelopes:
  - APIResponse: standard response wrapper
  - APIError: error details
  - Metadata: response metadata (timestamp, timing, pagination)

Optional values are pointers or empty strings; constructors such as NewFilm
initialize slices so that JSON output never contains null lists.
*/
package models
