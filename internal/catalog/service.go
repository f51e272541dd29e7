// Cinegraph - Film Catalog Explorer for Semantic Knowledge Bases
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/tomtom215/cinegraph/internal/config"
	"github.com/tomtom215/cinegraph/internal/logging"
	"github.com/tomtom215/cinegraph/internal/models"
	"github.com/tomtom215/cinegraph/internal/sparql"
)

// DefaultNamespace is the vocabulary namespace used when none is configured.
const DefaultNamespace = "http://example.org/film#"

// Querier executes SELECT queries. *sparql.Client satisfies it.
type Querier interface {
	Select(ctx context.Context, q sparql.Query) ([]sparql.Binding, error)
}

// Service answers catalog questions against a SPARQL endpoint.
// It holds no mutable state and is safe for concurrent use.
type Service struct {
	querier   Querier
	namespace string
	ns        sparql.Term
}

// NewService creates a catalog service. An invalid namespace falls back to
// DefaultNamespace; config.Validate rejects such values before this point.
func NewService(q Querier, cfg *config.SPARQLConfig) *Service {
	namespace := DefaultNamespace
	if cfg != nil && cfg.Namespace != "" {
		namespace = cfg.Namespace
	}
	ns, err := sparql.IRI(namespace)
	if err != nil {
		logging.Error().Err(err).Str("namespace", namespace).Msg("Invalid SPARQL namespace, using default")
		namespace = DefaultNamespace
		ns = sparql.MustIRI(namespace)
	}
	return &Service{querier: q, namespace: namespace, ns: ns}
}

// Namespace returns the vocabulary namespace the service queries.
func (s *Service) Namespace() string {
	return s.namespace
}

// run renders stmt with the namespace and params bound, then executes it.
func (s *Service) run(ctx context.Context, stmt *sparql.Statement, params sparql.Params) ([]sparql.Binding, error) {
	bound := sparql.Params{"ns": s.ns}
	for k, v := range params {
		bound[k] = v
	}
	q, err := stmt.Render(bound)
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", stmt.Name(), err)
	}
	return s.querier.Select(ctx, q)
}

// iriParam validates an identifier supplied by a caller.
func iriParam(kind, value string) (sparql.Term, error) {
	t, err := sparql.IRI(value)
	if err != nil {
		return sparql.Term{}, fmt.Errorf("invalid %s identifier: %w", kind, err)
	}
	return t, nil
}

// AllFilms returns every film in the catalog ordered by title, one record per URI.
func (s *Service) AllFilms(ctx context.Context) ([]models.Film, error) {
	rows, err := s.run(ctx, allFilmsQuery, nil)
	if err != nil {
		return nil, err
	}
	films := groupFilms(rows)
	logging.Ctx(ctx).Debug().Int("rows", len(rows)).Int("films", len(films)).Msg("Fetched all films")
	return films, nil
}

// FilmDetails returns the film identified by uri with its genres and actors.
// It returns nil and no error when the film does not exist.
func (s *Service) FilmDetails(ctx context.Context, uri string) (*models.Film, error) {
	film, err := iriParam("film", uri)
	if err != nil {
		return nil, err
	}
	rows, err := s.run(ctx, filmDetailsQuery, sparql.Params{"film": film})
	if err != nil {
		return nil, err
	}
	return groupDetails(uri, rows), nil
}

// RecommendByActor returns films sharing at least one actor with the seed film.
func (s *Service) RecommendByActor(ctx context.Context, uri string) ([]models.Film, error) {
	return s.recommend(ctx, recommendByActorQuery, uri)
}

// RecommendByGenre returns films sharing at least one genre with the seed film.
func (s *Service) RecommendByGenre(ctx context.Context, uri string) ([]models.Film, error) {
	return s.recommend(ctx, recommendByGenreQuery, uri)
}

// RecommendByDirector returns films sharing a director with the seed film.
func (s *Service) RecommendByDirector(ctx context.Context, uri string) ([]models.Film, error) {
	return s.recommend(ctx, recommendByDirectorQuery, uri)
}

func (s *Service) recommend(ctx context.Context, stmt *sparql.Statement, uri string) ([]models.Film, error) {
	film, err := iriParam("film", uri)
	if err != nil {
		return nil, err
	}
	rows, err := s.run(ctx, stmt, sparql.Params{"film": film})
	if err != nil {
		return nil, err
	}
	return dedupFilms(rows, uri), nil
}

// Search returns films whose title, director, actor or genre contains term,
// case-insensitively. A blank term returns every film.
func (s *Service) Search(ctx context.Context, term string) ([]models.Film, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return s.AllFilms(ctx)
	}
	rows, err := s.run(ctx, searchQuery, sparql.Params{
		"term": sparql.Literal(strings.ToLower(term)),
	})
	if err != nil {
		return nil, err
	}
	films := groupFilms(rows)
	logging.Ctx(ctx).Debug().Str("term", term).Int("films", len(films)).Msg("Searched films")
	return films, nil
}

// AllGenres returns every genre ordered by name.
func (s *Service) AllGenres(ctx context.Context) ([]models.Genre, error) {
	rows, err := s.run(ctx, allGenresQuery, nil)
	if err != nil {
		return nil, err
	}
	return dedupGenres(rows), nil
}

// FilmsByGenre returns the films tagged with the given genre, ordered by title.
func (s *Service) FilmsByGenre(ctx context.Context, genreURI string) ([]models.Film, error) {
	genre, err := iriParam("genre", genreURI)
	if err != nil {
		return nil, err
	}
	rows, err := s.run(ctx, filmsByGenreQuery, sparql.Params{"genre": genre})
	if err != nil {
		return nil, err
	}
	return dedupFilms(rows, ""), nil
}
