// Cinegraph - Film Catalog Explorer for Semantic Knowledge Bases
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package models

// Film is one film entity aggregated from the knowledge base.
//
// URI is the film's IRI and its identity: any list returned by the catalog
// contains at most one Film per URI. Optional scalars are pointers (Year,
// Duration) or empty strings (Director) when the knowledge base has no value.
// Genres and Actors hold distinct names in the order they were first seen;
// Genre is Genres joined with ", ".
//
// The validate tags apply when a client sends films back, as in an artwork
// batch request.
type Film struct {
	URI      string   `json:"uri" validate:"omitempty,iri"`
	Title    string   `json:"title" validate:"required,max=300"`
	Year     *int     `json:"year,omitempty"`
	Duration *int     `json:"duration,omitempty"`
	Genres   []string `json:"genres"`
	Genre    string   `json:"genre"`
	Director string   `json:"director,omitempty"`
	Actors   []string `json:"actors,omitempty"`
}

// NewFilm returns a Film with every optional field set to its absent value.
// Slices are empty rather than nil so they encode as [] in JSON.
func NewFilm(uri, title string) Film {
	return Film{
		URI:    uri,
		Title:  title,
		Genres: []string{},
		Actors: []string{},
	}
}

// HasYear reports whether the release year is known.
func (f *Film) HasYear() bool {
	return f.Year != nil
}

// YearValue returns the release year, or 0 when it is unknown.
func (f *Film) YearValue() int {
	if f.Year == nil {
		return 0
	}
	return *f.Year
}

// Genre is a film genre declared in the knowledge base.
type Genre struct {
	URI  string `json:"uri"`
	Name string `json:"name"`
}

// IntPtr returns a pointer to n.
func IntPtr(n int) *int {
	return &n
}
