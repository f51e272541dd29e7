// Cinegraph - Film Catalog Explorer for Semantic Knowledge Bases
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package ontology

// Film is one cleaned film record: a row of films_clean.csv.
type Film struct {
	Title    string
	Actors   []string
	Director string
	Genres   []string
	Year     int
	Runtime  int
}

// CleanStats describes one run of Clean.
type CleanStats struct {
	// Movies is the number of rows read from movies_metadata.csv.
	Movies int

	// Joined is the number of movies with a matching credits row.
	Joined int

	// Selected is the number of joined movies kept by popularity.
	Selected int

	// MissingCredits counts selected movies dropped for lack of a director
	// or of any actor.
	MissingCredits int

	// MissingYearOrRuntime counts movies dropped for an unparsable release
	// date or runtime.
	MissingYearOrRuntime int

	// Kept is the number of films returned.
	Kept int
}

// TurtleStats describes one run of WriteTurtle.
type TurtleStats struct {
	Films     int
	Actors    int
	Directors int
	Genres    int
	Triples   int

	// Skipped counts films whose title yields no identifier.
	Skipped int
}
