// Cinegraph - Film Catalog Explorer for Semantic Knowledge Bases
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package catalog

// Local names of the knowledge base vocabulary. Every term lives in the
// configured namespace (config.SPARQLConfig.Namespace); the queries in this
// package refer to them as ns:<name>.
const (
	ClassFilm     = "Film"
	ClassGenre    = "Genre"
	ClassActor    = "Actor"
	ClassDirector = "Director"

	PropTitle       = "titre"
	PropName        = "nom"
	PropReleaseYear = "releaseYear"
	PropDuration    = "duration"
	PropHasGenre    = "hasGenre"
	PropHasActor    = "hasActor"
	PropDirectedBy  = "directedBy"
)

// Properties lists the vocabulary properties in declaration order.
var Properties = []string{
	PropTitle,
	PropReleaseYear,
	PropDuration,
	PropName,
	PropHasActor,
	PropHasGenre,
	PropDirectedBy,
}

// Classes lists the vocabulary classes in declaration order.
var Classes = []string{ClassFilm, ClassActor, ClassDirector, ClassGenre}
