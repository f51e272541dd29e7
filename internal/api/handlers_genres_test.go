// Cinegraph - Film Catalog Explorer for Semantic Knowledge Bases
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package api

import (
	"net/http"
	"reflect"
	"testing"

	"github.com/tomtom215/cinegraph/internal/models"
	"github.com/tomtom215/cinegraph/internal/sparql"
)

func TestGenres(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)
	s.endpoint.rows["all_genres"] = []sparql.Binding{
		{"uri": {Type: "uri", Value: testNS + "Drame"}, "nom": {Value: "Drame"}},
		{"uri": {Type: "uri", Value: testNS + "Thriller"}, "nom": {Value: "Thriller"}},
		{"uri": {Type: "uri", Value: testNS + "Drame"}, "nom": {Value: "Drame (bis)"}},
	}

	env := decodeEnvelope(t, s.do(t, http.MethodGet, "/api/v1/genres", nil), http.StatusOK)
	var genres []models.Genre
	decodeData(t, env, &genres)

	want := []models.Genre{
		{URI: testNS + "Drame", Name: "Drame"},
		{URI: testNS + "Thriller", Name: "Thriller"},
	}
	if !reflect.DeepEqual(genres, want) {
		t.Errorf("genres = %+v, want %+v", genres, want)
	}
}

func TestGenres_CatalogUnavailable(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)
	s.endpoint.err = errEndpointDown

	env := decodeEnvelope(t, s.do(t, http.MethodGet, "/api/v1/genres", nil), http.StatusBadGateway)
	checkErrorCode(t, env, ErrCodeCatalogUnavailable)
}

func TestGenreFilms(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)
	s.endpoint.rows["films_by_genre"] = []sparql.Binding{
		filmRow("Seven", "Seven", "1995", ""),
		filmRow("Seven", "Se7en", "1995", ""),
		filmRow("Heat", "Heat", "1995", ""),
	}

	env := decodeEnvelope(t, s.do(t, http.MethodGet, "/api/v1/genres/films?uri="+testNS+"Thriller", nil), http.StatusOK)
	var films []models.Film
	decodeData(t, env, &films)
	if got := filmTitles(films); !reflect.DeepEqual(got, []string{"Seven", "Heat"}) {
		t.Errorf("titles = %v, want [Seven Heat]", got)
	}
}

func TestGenreFilms_MissingURI(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)

	env := decodeEnvelope(t, s.do(t, http.MethodGet, "/api/v1/genres/films", nil), http.StatusBadRequest)
	checkErrorCode(t, env, ErrCodeValidation)
	if env.Error.Details["field"] != "uri" {
		t.Errorf("details field = %v, want uri", env.Error.Details["field"])
	}
}
