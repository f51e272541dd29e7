// Cinegraph - Film Catalog Explorer for Semantic Knowledge Bases
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

/*
Package ontology populates the film knowledge base from the TMDB metadata
dump (movies_metadata.csv and credits.csv).

The pipeline has two stages, each usable on its own:

	movies_metadata.csv + credits.csv
	        |  Clean: join on id, keep the most popular films,
	        |  first three actors, the director, all genres
	        v
	films_clean.csv (Title, Actors, Director, Genre, Year, Runtime)
	        |  WriteTurtle
	        v
	films.ttl in the catalog vocabulary (ns:titre, ns:nom, ns:hasActor ...)

The Turtle output uses the vocabulary constants of internal/catalog, so a
graph loaded from it answers every catalog query. Loading the file into the
SPARQL store (for example with the Graph Store Protocol) is left to the
store's own tooling.

# Identifiers

Entity IRIs are built from names: a kind prefix (film_, actor_, director_,
genre_) followed by the name with every run of characters outside
[A-Za-z0-9] replaced by a single underscore. Two different names that
clean to the same identifier get numeric suffixes; two films with the same
title are told apart by their release year first.

# Source Columns

The cast, crew and genres columns of the TMDB dump hold Python literals
(single-quoted strings, None, True). They are rewritten to JSON and decoded
with goccy/go-json.
*/
package ontology
