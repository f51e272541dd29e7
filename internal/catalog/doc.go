// Cinegraph - Film Catalog Explorer for Semantic Knowledge Bases
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

/*
Package catalog answers film catalog questions against a SPARQL knowledge base.

Each operation renders a prepared statement from queries.go with caller data
bound as validated terms, executes it through a Querier, and normalizes the
denormalized result rows into models.Film records.

# Normalization

Two strategies are used depending on the query:

  - Grouping (AllFilms, FilmDetails, Search): rows are keyed by ?uri. The first
    row for a film provides its scalars; every row adds its genre and actor to
    insertion-ordered sets, so Genre is joined in first-seen order.
  - First-occurrence dedup (recommendations, FilmsByGenre, AllGenres): the first
    row for each ?uri wins and later rows are dropped.

Recommendations never contain the seed film. The query filters it out and the
normalizer drops it again.

# Browsing

Browse is a pure function over an already fetched film list that applies the
genre filter, sort order and pagination used by the UI, including the
five-page navigation window.

# Usage

	svc := catalog.NewService(sparql.NewClient(&cfg.SPARQL), &cfg.SPARQL)
	films, err := svc.AllFilms(ctx)
	page := catalog.Browse(films, catalog.BrowseOptions{Sort: catalog.SortYearDesc, Page: 2})

The service holds no mutable state and every call re-executes its query.
*/
package catalog
