// Cinegraph - Film Catalog Explorer for Semantic Knowledge Bases
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package api

import (
	"net/http"
	"strings"
	"time"
)

// Genres lists every genre of the catalog.
//
// @Summary List genres
// @Tags Genres
// @Produce json
// @Success 200 {object} models.APIResponse{data=[]models.Genre}
// @Failure 502 {object} models.APIResponse "Knowledge base unavailable"
// @Router /genres [get]
func (h *Handler) Genres(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	genres, err := h.catalog.AllGenres(r.Context())
	if err != nil {
		respondCatalogError(w, r, err)
		return
	}
	respondSuccess(w, nonNil(genres), start, nil)
}

// GenreFilms lists the films of one genre.
//
// @Summary Films of a genre
// @Tags Genres
// @Produce json
// @Param uri query string true "Genre IRI"
// @Success 200 {object} models.APIResponse{data=[]models.Film}
// @Failure 400 {object} models.APIResponse "Invalid IRI"
// @Failure 502 {object} models.APIResponse "Knowledge base unavailable"
// @Router /genres/films [get]
func (h *Handler) GenreFilms(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req := GenreFilmsRequest{URI: strings.TrimSpace(r.URL.Query().Get("uri"))}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondErrorDetails(w, http.StatusBadRequest, apiErr)
		return
	}

	films, err := h.catalog.FilmsByGenre(r.Context(), req.URI)
	if err != nil {
		respondCatalogError(w, r, err)
		return
	}
	respondSuccess(w, nonNil(films), start, nil)
}
