// Cinegraph - Film Catalog Explorer for Semantic Knowledge Bases
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package catalog

import (
	"strings"

	"github.com/tomtom215/cinegraph/internal/models"
	"github.com/tomtom215/cinegraph/internal/sparql"
)

// Result variables shared by the catalog queries.
const (
	varURI      = "uri"
	varTitle    = "titre"
	varYear     = "annee"
	varDuration = "duree"
	varGenre    = "genre"
	varDirector = "realisateur"
	varActor    = "acteur"
	varName     = "nom"
)

// GenreSeparator joins a film's genre names into Film.Genre.
const GenreSeparator = ", "

// orderedSet is a set of strings that remembers insertion order.
type orderedSet struct {
	seen  map[string]struct{}
	items []string
}

func newOrderedSet() *orderedSet {
	return &orderedSet{seen: make(map[string]struct{})}
}

// add inserts s unless it is empty or already present.
func (s *orderedSet) add(v string) {
	if v == "" {
		return
	}
	if _, ok := s.seen[v]; ok {
		return
	}
	s.seen[v] = struct{}{}
	s.items = append(s.items, v)
}

func (s *orderedSet) slice() []string {
	out := make([]string, len(s.items))
	copy(out, s.items)
	return out
}

// filmFromRow seeds a Film from the scalar variables of one row.
func filmFromRow(uri string, row sparql.Binding) models.Film {
	title := row.Text(varTitle)
	if title == "" {
		title = titleFromIRI(uri)
	}
	f := models.NewFilm(uri, title)
	f.Year = row.IntPtr(varYear)
	f.Duration = row.IntPtr(varDuration)
	f.Director = row.Text(varDirector)
	return f
}

// titleFromIRI derives a display title from the local name of an IRI:
// http://example.org/film#The_Dark_Knight becomes "The Dark Knight".
func titleFromIRI(uri string) string {
	local := uri
	if i := strings.LastIndexAny(uri, "#/"); i >= 0 && i < len(uri)-1 {
		local = uri[i+1:]
	}
	return strings.ReplaceAll(local, "_", " ")
}

type filmGroup struct {
	film   models.Film
	genres *orderedSet
	actors *orderedSet
}

func (g *filmGroup) absorb(row sparql.Binding) {
	g.genres.add(row.Text(varGenre))
	g.actors.add(row.Text(varActor))
}

func (g *filmGroup) materialize() models.Film {
	f := g.film
	f.Genres = g.genres.slice()
	f.Genre = strings.Join(f.Genres, GenreSeparator)
	f.Actors = g.actors.slice()
	return f
}

// groupFilms collapses denormalized rows (one per film x genre x actor) into
// one Film per ?uri, in order of first appearance. Rows without ?uri are
// skipped. The first row for a URI provides the scalars; every row contributes
// its genre and actor, if bound.
func groupFilms(rows []sparql.Binding) []models.Film {
	order := make([]*filmGroup, 0, len(rows))
	byURI := make(map[string]*filmGroup, len(rows))

	for _, row := range rows {
		uri := row.Text(varURI)
		if uri == "" {
			continue
		}
		g, ok := byURI[uri]
		if !ok {
			g = &filmGroup{
				film:   filmFromRow(uri, row),
				genres: newOrderedSet(),
				actors: newOrderedSet(),
			}
			byURI[uri] = g
			order = append(order, g)
		}
		g.absorb(row)
	}

	films := make([]models.Film, len(order))
	for i, g := range order {
		films[i] = g.materialize()
	}
	return films
}

// groupDetails aggregates the rows of a single-film query, which do not
// select ?uri, into one Film. It returns nil when there are no rows.
func groupDetails(uri string, rows []sparql.Binding) *models.Film {
	if len(rows) == 0 {
		return nil
	}
	g := &filmGroup{
		film:   filmFromRow(uri, rows[0]),
		genres: newOrderedSet(),
		actors: newOrderedSet(),
	}
	for _, row := range rows {
		g.absorb(row)
	}
	f := g.materialize()
	return &f
}

// dedupFilms keeps the first row for each ?uri, dropping later rows for the
// same URI even when their other variables differ. Rows whose URI equals
// exclude are dropped as well.
func dedupFilms(rows []sparql.Binding, exclude string) []models.Film {
	seen := make(map[string]struct{}, len(rows))
	films := make([]models.Film, 0, len(rows))

	for _, row := range rows {
		uri := row.Text(varURI)
		if uri == "" || uri == exclude {
			continue
		}
		if _, ok := seen[uri]; ok {
			continue
		}
		seen[uri] = struct{}{}

		f := filmFromRow(uri, row)
		if genre := row.Text(varGenre); genre != "" {
			f.Genres = []string{genre}
			f.Genre = genre
		}
		films = append(films, f)
	}
	return films
}

// dedupGenres keeps the first row for each genre ?uri.
func dedupGenres(rows []sparql.Binding) []models.Genre {
	seen := make(map[string]struct{}, len(rows))
	genres := make([]models.Genre, 0, len(rows))

	for _, row := range rows {
		uri := row.Text(varURI)
		if uri == "" {
			continue
		}
		if _, ok := seen[uri]; ok {
			continue
		}
		seen[uri] = struct{}{}
		genres = append(genres, models.Genre{URI: uri, Name: row.Text(varName)})
	}
	return genres
}
