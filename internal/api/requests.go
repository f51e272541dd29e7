// Cinegraph - Film Catalog Explorer for Semantic Knowledge Bases
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package api

import "github.com/tomtom215/cinegraph/internal/models"

// FilmListRequest holds the query parameters of GET /films.
type FilmListRequest struct {
	Genre    string `query:"genre" validate:"max=200"`
	Sort     string `query:"sort" validate:"omitempty,oneof=title year-desc year-asc"`
	Page     int    `query:"page" validate:"min=0,max=100000"`
	PageSize int    `query:"page_size" validate:"min=0"`
	Artwork  bool   `query:"artwork"`
}

// SearchRequest holds the query parameters of GET /films/search.
type SearchRequest struct {
	Query string `query:"q" validate:"max=200"`
}

// FilmRequest identifies one film by IRI.
type FilmRequest struct {
	URI string `query:"uri" validate:"required,iri"`
}

// RecommendationsRequest holds the query parameters of GET /films/recommendations.
type RecommendationsRequest struct {
	URI string `query:"uri" validate:"required,iri"`
	By  string `query:"by" validate:"max=20"`
}

// GenreFilmsRequest identifies one genre by IRI.
type GenreFilmsRequest struct {
	URI string `query:"uri" validate:"required,iri"`
}

// ArtworkRequest holds the query parameters of GET /artwork.
type ArtworkRequest struct {
	Title        string `query:"title" validate:"required,max=300"`
	Year         *int   `query:"year" validate:"omitempty,min=1870,max=2200"`
	PosterSize   string `query:"poster_size" validate:"omitempty,imgsize"`
	BackdropSize string `query:"backdrop_size" validate:"omitempty,imgsize"`
}

// ArtworkBatchFilm is one entry of an artwork batch request: a film record
// as GET /films returns it. An artwork field, as returned with artwork=true,
// is accepted and replaced by a fresh lookup.
type ArtworkBatchFilm struct {
	models.Film
	Artwork *models.Artwork `json:"artwork,omitempty"`
}

// ArtworkBatchRequest is the JSON body of POST /artwork/batch.
type ArtworkBatchRequest struct {
	Films []ArtworkBatchFilm `json:"films" validate:"required,max=100,dive"`
}
