// Cinegraph - Film Catalog Explorer for Semantic Knowledge Bases
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package catalog

import "github.com/tomtom215/cinegraph/internal/sparql"

// Every statement binds ${ns} to the vocabulary namespace. Variable names
// (?titre, ?annee, ?duree, ?realisateur, ?acteur, ?nom) follow the
// knowledge base vocabulary.

var allFilmsQuery = sparql.Prepare("all_films", `
PREFIX ns: ${ns}
PREFIX rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#>

SELECT ?uri ?titre ?annee ?duree ?genre ?realisateur WHERE {
  ?uri rdf:type ns:Film .
  ?uri ns:titre ?titre .
  OPTIONAL { ?uri ns:releaseYear ?annee }
  OPTIONAL { ?uri ns:duration ?duree }
  OPTIONAL {
    ?uri ns:hasGenre ?genreUri .
    ?genreUri ns:nom ?genre .
  }
  OPTIONAL {
    ?uri ns:directedBy ?dirUri .
    ?dirUri ns:nom ?realisateur .
  }
}
ORDER BY ?titre
`)

var filmDetailsQuery = sparql.Prepare("film_details", `
PREFIX ns: ${ns}

SELECT ?titre ?annee ?duree ?genre ?realisateur ?acteur WHERE {
  ${film} ns:titre ?titre .
  OPTIONAL { ${film} ns:releaseYear ?annee }
  OPTIONAL { ${film} ns:duration ?duree }
  OPTIONAL {
    ${film} ns:hasGenre ?genreUri .
    ?genreUri ns:nom ?genre .
  }
  OPTIONAL {
    ${film} ns:directedBy ?dirUri .
    ?dirUri ns:nom ?realisateur .
  }
  OPTIONAL {
    ${film} ns:hasActor ?actorUri .
    ?actorUri ns:nom ?acteur .
  }
}
`)

var recommendByActorQuery = sparql.Prepare("recommend_by_actor", `
PREFIX ns: ${ns}

SELECT DISTINCT ?uri ?titre ?annee WHERE {
  ${film} ns:hasActor ?actor .
  ?uri ns:hasActor ?actor .
  ?uri ns:titre ?titre .
  OPTIONAL { ?uri ns:releaseYear ?annee }
  FILTER(?uri != ${film})
}
`)

var recommendByGenreQuery = sparql.Prepare("recommend_by_genre", `
PREFIX ns: ${ns}

SELECT DISTINCT ?uri ?titre ?annee WHERE {
  ${film} ns:hasGenre ?genre .
  ?uri ns:hasGenre ?genre .
  ?uri ns:titre ?titre .
  OPTIONAL { ?uri ns:releaseYear ?annee }
  FILTER(?uri != ${film})
}
`)

var recommendByDirectorQuery = sparql.Prepare("recommend_by_director", `
PREFIX ns: ${ns}

SELECT DISTINCT ?uri ?titre ?annee WHERE {
  ${film} ns:directedBy ?director .
  ?uri ns:directedBy ?director .
  ?uri ns:titre ?titre .
  OPTIONAL { ?uri ns:releaseYear ?annee }
  FILTER(?uri != ${film})
}
`)

var searchQuery = sparql.Prepare("search_films", `
PREFIX ns: ${ns}
PREFIX rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#>

SELECT ?uri ?titre ?annee ?duree ?genre ?realisateur ?acteur WHERE {
  ?uri rdf:type ns:Film .
  ?uri ns:titre ?titre .
  OPTIONAL { ?uri ns:releaseYear ?annee }
  OPTIONAL { ?uri ns:duration ?duree }
  OPTIONAL {
    ?uri ns:hasGenre ?genreUri .
    ?genreUri ns:nom ?genre .
  }
  OPTIONAL {
    ?uri ns:directedBy ?dirUri .
    ?dirUri ns:nom ?realisateur .
  }
  OPTIONAL {
    ?uri ns:hasActor ?actorUri .
    ?actorUri ns:nom ?acteur .
  }
  FILTER(
    CONTAINS(LCASE(COALESCE(?titre, "")), ${term}) ||
    CONTAINS(LCASE(COALESCE(?realisateur, "")), ${term}) ||
    CONTAINS(LCASE(COALESCE(?acteur, "")), ${term}) ||
    CONTAINS(LCASE(COALESCE(?genre, "")), ${term})
  )
}
ORDER BY ?titre
`)

var allGenresQuery = sparql.Prepare("all_genres", `
PREFIX ns: ${ns}
PREFIX rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#>

SELECT DISTINCT ?uri ?nom WHERE {
  ?uri rdf:type ns:Genre .
  ?uri ns:nom ?nom .
}
ORDER BY ?nom
`)

var filmsByGenreQuery = sparql.Prepare("films_by_genre", `
PREFIX ns: ${ns}

SELECT ?uri ?titre ?annee ?realisateur WHERE {
  ?uri ns:hasGenre ${genre} .
  ?uri ns:titre ?titre .
  OPTIONAL { ?uri ns:releaseYear ?annee }
  OPTIONAL {
    ?uri ns:directedBy ?dirUri .
    ?dirUri ns:nom ?realisateur .
  }
}
ORDER BY ?titre
`)
