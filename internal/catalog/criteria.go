// Cinegraph - Film Catalog Explorer for Semantic Knowledge Bases
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/tomtom215/cinegraph/internal/models"
	"github.com/tomtom215/cinegraph/internal/sparql"
)

// Criteria restricts films by human-readable labels. Labels are resolved to
// IRIs in the catalog namespace ("Tim Burton" becomes ns:Tim_Burton).
// Zero-valued fields do not restrict; an empty Criteria matches every film.
type Criteria struct {
	Director string   `json:"director,omitempty" validate:"omitempty,max=200"`
	Actors   []string `json:"actors,omitempty" validate:"omitempty,max=20,dive,required,max=200"`
	Genres   []string `json:"genres,omitempty" validate:"omitempty,max=20,dive,required,max=200"`
	Year     *int     `json:"year,omitempty" validate:"omitempty,min=1870,max=2200"`
}

// IsEmpty reports whether no criterion is set.
func (c Criteria) IsEmpty() bool {
	return strings.TrimSpace(c.Director) == "" && len(c.Actors) == 0 && len(c.Genres) == 0 && c.Year == nil
}

// Template fragments; only these constant strings make up the query text.
const (
	criteriaHead = `
PREFIX ns: ${ns}
PREFIX rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#>

SELECT DISTINCT ?uri ?titre ?annee WHERE {
  ?uri rdf:type ns:Film .
  OPTIONAL { ?uri ns:titre ?titre }
  OPTIONAL { ?uri ns:releaseYear ?annee }
`
	criteriaDirector = "  ?uri ns:directedBy ${director} .\n"
	criteriaYear     = "  ?uri ns:releaseYear ${year} .\n"
	criteriaActors   = "  VALUES ?actor { ${actors} }\n  ?uri ns:hasActor ?actor .\n"
	criteriaGenres   = "  VALUES ?genre { ${genres} }\n  ?uri ns:hasGenre ?genre .\n"
	criteriaTail     = "}\n"
)

// criteriaStatement assembles the statement and its parameters for c.
func (s *Service) criteriaStatement(c Criteria) (*sparql.Statement, sparql.Params, error) {
	var b strings.Builder
	params := sparql.Params{}
	b.WriteString(criteriaHead)

	if director := strings.TrimSpace(c.Director); director != "" {
		t, err := sparql.LocalName(s.namespace, director)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid director %q: %w", director, err)
		}
		params["director"] = t
		b.WriteString(criteriaDirector)
	}

	if c.Year != nil {
		params["year"] = sparql.Integer(*c.Year)
		b.WriteString(criteriaYear)
	}

	actors, err := s.localNames("actor", c.Actors)
	if err != nil {
		return nil, nil, err
	}
	if !actors.IsZero() {
		params["actors"] = actors
		b.WriteString(criteriaActors)
	}

	genres, err := s.localNames("genre", c.Genres)
	if err != nil {
		return nil, nil, err
	}
	if !genres.IsZero() {
		params["genres"] = genres
		b.WriteString(criteriaGenres)
	}

	b.WriteString(criteriaTail)
	return sparql.Prepare("recommend_by_criteria", b.String()), params, nil
}

func (s *Service) localNames(kind string, labels []string) (sparql.Term, error) {
	terms := make([]sparql.Term, 0, len(labels))
	for _, label := range labels {
		if strings.TrimSpace(label) == "" {
			continue
		}
		t, err := sparql.LocalName(s.namespace, label)
		if err != nil {
			return sparql.Term{}, fmt.Errorf("invalid %s %q: %w", kind, label, err)
		}
		terms = append(terms, t)
	}
	return sparql.Values(terms...), nil
}

// RecommendByCriteria returns the films matching every criterion in c.
func (s *Service) RecommendByCriteria(ctx context.Context, c Criteria) ([]models.Film, error) {
	stmt, params, err := s.criteriaStatement(c)
	if err != nil {
		return nil, err
	}
	rows, err := s.run(ctx, stmt, params)
	if err != nil {
		return nil, err
	}
	return dedupFilms(rows, ""), nil
}
