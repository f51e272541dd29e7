// Cinegraph - Film Catalog Explorer for Semantic Knowledge Bases
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package api

import (
	"context"
	"time"

	"github.com/tomtom215/cinegraph/internal/cache"
	"github.com/tomtom215/cinegraph/internal/catalog"
	"github.com/tomtom215/cinegraph/internal/config"
	"github.com/tomtom215/cinegraph/internal/models"
)

// Catalog is the film catalog as seen by the HTTP handlers.
// *catalog.Service satisfies it.
type Catalog interface {
	AllFilms(ctx context.Context) ([]models.Film, error)
	FilmDetails(ctx context.Context, uri string) (*models.Film, error)
	Recommend(ctx context.Context, uri string, strategy catalog.Strategy) ([]models.Film, error)
	RecommendByCriteria(ctx context.Context, c catalog.Criteria) ([]models.Film, error)
	Search(ctx context.Context, term string) ([]models.Film, error)
	AllGenres(ctx context.Context) ([]models.Genre, error)
	FilmsByGenre(ctx context.Context, genreURI string) ([]models.Film, error)
}

// Artwork resolves film artwork. *artwork.Service satisfies it.
type Artwork interface {
	Lookup(ctx context.Context, title string, year *int) *models.Artwork
	LookupBatch(ctx context.Context, films []models.Film) []models.FilmWithArtwork
	Enabled() bool
	Stats() cache.Stats
}

// Pinger probes the SPARQL endpoint. *sparql.Client satisfies it.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler handles all HTTP API requests.
type Handler struct {
	catalog   Catalog
	artwork   Artwork
	pinger    Pinger
	config    *config.APIConfig
	startTime time.Time
}

// NewHandler creates a new API handler. pinger may be nil, in which case
// readiness only reflects that the process is up.
func NewHandler(cat Catalog, art Artwork, pinger Pinger, cfg *config.APIConfig) *Handler {
	if cfg == nil {
		cfg = &config.APIConfig{}
	}
	return &Handler{
		catalog:   cat,
		artwork:   art,
		pinger:    pinger,
		config:    cfg,
		startTime: time.Now(),
	}
}

// pageSize resolves a requested page size against the configured default and cap.
func (h *Handler) pageSize(requested int) int {
	size := requested
	if size <= 0 {
		size = h.config.DefaultPageSize
	}
	if size <= 0 {
		size = catalog.DefaultPageSize
	}
	if h.config.MaxPageSize > 0 && size > h.config.MaxPageSize {
		size = h.config.MaxPageSize
	}
	return size
}
