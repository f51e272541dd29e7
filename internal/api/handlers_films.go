// Cinegraph - Film Catalog Explorer for Semantic Knowledge Bases
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/tomtom215/cinegraph/internal/catalog"
	"github.com/tomtom215/cinegraph/internal/logging"
	"github.com/tomtom215/cinegraph/internal/models"
)

// FilmListResponse is the data payload of GET /films.
type FilmListResponse struct {
	// Films holds models.Film values, or models.FilmWithArtwork values when
	// artwork was requested.
	Films  interface{} `json:"films"`
	Genres []string    `json:"genres"`
}

// Films lists the catalog with genre filtering, sorting and pagination.
//
// @Summary List films
// @Description Returns one page of the catalog. The genre list covers the whole catalog.
// @Tags Films
// @Produce json
// @Param genre query string false "Genre name, or 'all'"
// @Param sort query string false "title, year-desc or year-asc" default(title)
// @Param page query int false "1-based page number" default(1)
// @Param page_size query int false "Films per page"
// @Param artwork query bool false "Attach TMDB artwork to the page"
// @Success 200 {object} models.APIResponse{data=FilmListResponse}
// @Failure 400 {object} models.APIResponse "Invalid parameters"
// @Failure 502 {object} models.APIResponse "Knowledge base unavailable"
// @Router /films [get]
func (h *Handler) Films(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req := FilmListRequest{
		Genre:    strings.TrimSpace(r.URL.Query().Get("genre")),
		Sort:     strings.TrimSpace(r.URL.Query().Get("sort")),
		Page:     getIntParam(r, "page", 1),
		PageSize: getIntParam(r, "page_size", 0),
		Artwork:  getBoolParam(r, "artwork"),
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondErrorDetails(w, http.StatusBadRequest, apiErr)
		return
	}

	films, err := h.catalog.AllFilms(r.Context())
	if err != nil {
		respondCatalogError(w, r, err)
		return
	}

	page := catalog.Browse(films, catalog.BrowseOptions{
		Genre:    req.Genre,
		Sort:     catalog.SortOrder(req.Sort),
		Page:     req.Page,
		PageSize: h.pageSize(req.PageSize),
	})

	resp := FilmListResponse{
		Films:  page.Items,
		Genres: nonNil(catalog.GenreNames(films)),
	}
	if req.Artwork {
		resp.Films = nonNil(h.artwork.LookupBatch(r.Context(), page.Items))
	}

	respondSuccess(w, resp, start, &models.PaginationInfo{
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalItems: page.TotalItems,
		TotalPages: page.TotalPages,
		Window:     nonNil(page.PageWindow),
	})
}

// SearchFilms searches titles, directors, actors and genres.
//
// @Summary Search films
// @Description Case-insensitive substring search. A blank term lists every film.
// @Tags Films
// @Produce json
// @Param q query string false "Search term"
// @Success 200 {object} models.APIResponse{data=[]models.Film}
// @Failure 400 {object} models.APIResponse "Invalid parameters"
// @Failure 502 {object} models.APIResponse "Knowledge base unavailable"
// @Router /films/search [get]
func (h *Handler) SearchFilms(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req := SearchRequest{Query: r.URL.Query().Get("q")}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondErrorDetails(w, http.StatusBadRequest, apiErr)
		return
	}

	films, err := h.catalog.Search(r.Context(), req.Query)
	if err != nil {
		respondCatalogError(w, r, err)
		return
	}
	respondSuccess(w, nonNil(films), start, nil)
}

// FilmDetails returns one film with its genres and cast.
//
// @Summary Film details
// @Tags Films
// @Produce json
// @Param uri query string true "Film IRI"
// @Success 200 {object} models.APIResponse{data=models.Film}
// @Failure 400 {object} models.APIResponse "Invalid IRI"
// @Failure 404 {object} models.APIResponse "Film not found"
// @Failure 502 {object} models.APIResponse "Knowledge base unavailable"
// @Router /films/details [get]
func (h *Handler) FilmDetails(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req := FilmRequest{URI: strings.TrimSpace(r.URL.Query().Get("uri"))}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondErrorDetails(w, http.StatusBadRequest, apiErr)
		return
	}

	film, err := h.catalog.FilmDetails(r.Context(), req.URI)
	if err != nil {
		respondCatalogError(w, r, err)
		return
	}
	if film == nil {
		respondError(w, r, http.StatusNotFound, ErrCodeNotFound, "Film not found", nil)
		return
	}
	respondSuccess(w, film, start, nil)
}

// Recommendations returns films related to a seed film.
//
// @Summary Film recommendations
// @Description Films sharing an actor, a genre or the director with the seed film. The seed is never included.
// @Tags Films
// @Produce json
// @Param uri query string true "Seed film IRI"
// @Param by query string false "actor, genre or director" default(actor)
// @Success 200 {object} models.APIResponse{data=[]models.Film}
// @Failure 400 {object} models.APIResponse "Invalid parameters"
// @Failure 502 {object} models.APIResponse "Knowledge base unavailable"
// @Router /films/recommendations [get]
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req := RecommendationsRequest{
		URI: strings.TrimSpace(r.URL.Query().Get("uri")),
		By:  r.URL.Query().Get("by"),
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondErrorDetails(w, http.StatusBadRequest, apiErr)
		return
	}

	strategy := catalog.StrategyActor
	if strings.TrimSpace(req.By) != "" {
		parsed, err := catalog.ParseStrategy(req.By)
		if err != nil {
			respondCatalogError(w, r, err)
			return
		}
		strategy = parsed
	}

	films, err := h.catalog.Recommend(r.Context(), req.URI, strategy)
	if err != nil {
		respondCatalogError(w, r, err)
		return
	}
	respondSuccess(w, nonNil(films), start, nil)
}

// RecommendationsByCriteria returns films matching a director, actors,
// genres and a release year.
//
// @Summary Recommendations by criteria
// @Description Every given criterion must match. An empty body object matches every film.
// @Tags Films
// @Accept json
// @Produce json
// @Param criteria body catalog.Criteria true "Criteria"
// @Success 200 {object} models.APIResponse{data=[]models.Film}
// @Failure 400 {object} models.APIResponse "Invalid body"
// @Failure 502 {object} models.APIResponse "Knowledge base unavailable"
// @Router /films/recommendations/criteria [post]
func (h *Handler) RecommendationsByCriteria(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var criteria catalog.Criteria
	if err := decodeJSONBody(w, r, &criteria); err != nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeInvalidJSON, err.Error(), nil)
		return
	}
	if apiErr := validateRequest(&criteria); apiErr != nil {
		respondErrorDetails(w, http.StatusBadRequest, apiErr)
		return
	}

	logging.Ctx(r.Context()).Debug().
		Bool("empty", criteria.IsEmpty()).
		Int("actors", len(criteria.Actors)).
		Int("genres", len(criteria.Genres)).
		Msg("Criteria recommendation")

	films, err := h.catalog.RecommendByCriteria(r.Context(), criteria)
	if err != nil {
		respondCatalogError(w, r, err)
		return
	}
	respondSuccess(w, nonNil(films), start, nil)
}
