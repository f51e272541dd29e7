// Cinegraph - Film Catalog Explorer for Semantic Knowledge Bases
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/tomtom215/cinegraph/internal/artwork"
	"github.com/tomtom215/cinegraph/internal/models"
)

// Artwork returns the TMDB artwork of one film. A film without artwork, or
// a TMDB failure, yields a null artwork rather than an error.
//
// @Summary Film artwork
// @Description Poster and backdrop of the first TMDB match for title and year, with URLs at the requested sizes.
// @Tags Artwork
// @Produce json
// @Param title query string true "Film title"
// @Param year query int false "Release year"
// @Param poster_size query string false "TMDB poster size" default(w500)
// @Param backdrop_size query string false "TMDB backdrop size" default(w1280)
// @Success 200 {object} models.APIResponse{data=models.ArtworkView}
// @Failure 400 {object} models.APIResponse "Invalid parameters"
// @Router /artwork [get]
func (h *Handler) Artwork(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	q := r.URL.Query()

	year, ok := getOptionalIntParam(r, "year")
	if !ok {
		respondError(w, r, http.StatusBadRequest, ErrCodeValidation, "year must be an integer", nil)
		return
	}

	req := ArtworkRequest{
		Title:        strings.TrimSpace(q.Get("title")),
		Year:         year,
		PosterSize:   strings.TrimSpace(q.Get("poster_size")),
		BackdropSize: strings.TrimSpace(q.Get("backdrop_size")),
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondErrorDetails(w, http.StatusBadRequest, apiErr)
		return
	}

	art := h.artwork.Lookup(r.Context(), req.Title, req.Year)
	respondSuccess(w, artwork.View(art, req.PosterSize, req.BackdropSize), start, nil)
}

// ArtworkBatch resolves artwork for a list of films. Result i belongs to
// film i; a failed lookup leaves only that position without artwork.
//
// @Summary Batch artwork lookup
// @Tags Artwork
// @Accept json
// @Produce json
// @Param request body ArtworkBatchRequest true "Films"
// @Success 200 {object} models.APIResponse{data=[]models.FilmWithArtwork}
// @Failure 400 {object} models.APIResponse "Invalid body"
// @Router /artwork/batch [post]
func (h *Handler) ArtworkBatch(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req ArtworkBatchRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeInvalidJSON, err.Error(), nil)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondErrorDetails(w, http.StatusBadRequest, apiErr)
		return
	}

	films := make([]models.Film, len(req.Films))
	for i := range req.Films {
		films[i] = req.Films[i].Film
	}

	respondSuccess(w, nonNil(h.artwork.LookupBatch(r.Context(), films)), start, nil)
}
