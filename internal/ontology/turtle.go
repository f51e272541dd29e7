// Cinegraph - Film Catalog Explorer for Semantic Knowledge Bases
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package ontology

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/tomtom215/cinegraph/internal/catalog"
	"github.com/tomtom215/cinegraph/internal/logging"
	"github.com/tomtom215/cinegraph/internal/sparql"
)

// Identifier prefixes per entity kind.
const (
	filmPrefix     = "film_"
	actorPrefix    = "actor_"
	directorPrefix = "director_"
	genrePrefix    = "genre_"
)

var nonIdentifier = regexp.MustCompile(`[^A-Za-z0-9]+`)

// Identifier turns a name into the local part of an entity IRI: runs of
// characters outside [A-Za-z0-9] become one underscore, and leading or
// trailing underscores are dropped. It returns "" when nothing remains.
func Identifier(name string) string {
	return strings.Trim(nonIdentifier.ReplaceAllString(name, "_"), "_")
}

// entity is a named resource (actor, director or genre).
type entity struct {
	local string
	name  string
}

// registry hands out one local name per distinct name, keeping first-seen
// order and resolving identifier collisions with numeric suffixes.
type registry struct {
	prefix  string
	byName  map[string]string
	taken   map[string]bool
	ordered []entity
}

func newRegistry(prefix string, taken map[string]bool) *registry {
	return &registry{prefix: prefix, byName: map[string]string{}, taken: taken}
}

// local returns the local name for name, or "" when name has no identifier.
func (r *registry) local(name string) string {
	if l, ok := r.byName[name]; ok {
		return l
	}
	id := Identifier(name)
	if id == "" {
		return ""
	}
	l := claim(r.taken, r.prefix+id)
	r.byName[name] = l
	r.ordered = append(r.ordered, entity{local: l, name: name})
	return l
}

// claim reserves base, or base_2, base_3 ... when base is taken.
func claim(taken map[string]bool, base string) string {
	l := base
	for n := 2; taken[l]; n++ {
		l = base + "_" + strconv.Itoa(n)
	}
	taken[l] = true
	return l
}

// WriteTurtle writes films as a Turtle graph in the catalog vocabulary under
// namespace. The output declares the vocabulary classes and properties,
// then every genre, director and actor with its ns:nom, then every film with
// ns:titre, ns:releaseYear and ns:duration (both omitted when 0), and its
// ns:hasGenre, ns:directedBy and ns:hasActor links.
//
// Films whose title yields no identifier are skipped. A film whose
// identifier is already used gets its release year appended, then a
// numeric suffix.
func WriteTurtle(w io.Writer, namespace string, films []Film) (*TurtleStats, error) {
	if err := sparql.ValidateIRI(namespace); err != nil {
		return nil, fmt.Errorf("namespace: %w", err)
	}

	taken := map[string]bool{}
	genres := newRegistry(genrePrefix, taken)
	directors := newRegistry(directorPrefix, taken)
	actors := newRegistry(actorPrefix, taken)
	stats := &TurtleStats{}

	type filmNode struct {
		local    string
		film     Film
		genres   []string
		director string
		actors   []string
	}
	var nodes []filmNode

	for _, f := range films {
		id := Identifier(f.Title)
		if id == "" {
			stats.Skipped++
			logging.Warn().Str("title", f.Title).Msg("Film title yields no identifier, skipped")
			continue
		}
		base := filmPrefix + id
		if taken[base] && f.Year != 0 {
			base += "_" + strconv.Itoa(f.Year)
		}
		n := filmNode{local: claim(taken, base), film: f}
		for _, g := range f.Genres {
			if l := genres.local(g); l != "" {
				n.genres = appendUnique(n.genres, l)
			}
		}
		n.director = directors.local(f.Director)
		for _, a := range f.Actors {
			if l := actors.local(a); l != "" {
				n.actors = appendUnique(n.actors, l)
			}
		}
		nodes = append(nodes, n)
	}

	tw := &turtleWriter{w: bufio.NewWriter(w)}
	tw.printf("@prefix ns: <%s> .\n", namespace)
	tw.printf("@prefix rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#> .\n")
	tw.printf("@prefix rdfs: <http://www.w3.org/2000/01/rdf-schema#> .\n\n")

	for _, c := range catalog.Classes {
		tw.triple("ns:"+c, "rdf:type", "rdfs:Class")
	}
	for _, p := range catalog.Properties {
		tw.triple("ns:"+p, "rdf:type", "rdf:Property")
	}

	for _, group := range []struct {
		class string
		reg   *registry
		count *int
	}{
		{catalog.ClassGenre, genres, &stats.Genres},
		{catalog.ClassDirector, directors, &stats.Directors},
		{catalog.ClassActor, actors, &stats.Actors},
	} {
		tw.printf("\n")
		for _, e := range group.reg.ordered {
			tw.subject("ns:"+e.local, "rdf:type", "ns:"+group.class)
			tw.more("ns:"+catalog.PropName, sparql.Literal(e.name).String())
			tw.end()
		}
		*group.count = len(group.reg.ordered)
	}

	for _, n := range nodes {
		tw.printf("\n")
		tw.subject("ns:"+n.local, "rdf:type", "ns:"+catalog.ClassFilm)
		tw.more("ns:"+catalog.PropTitle, sparql.Literal(n.film.Title).String())
		if n.film.Year != 0 {
			tw.more("ns:"+catalog.PropReleaseYear, sparql.Integer(n.film.Year).String())
		}
		if n.film.Runtime != 0 {
			tw.more("ns:"+catalog.PropDuration, sparql.Integer(n.film.Runtime).String())
		}
		tw.objects("ns:"+catalog.PropHasGenre, n.genres)
		if n.director != "" {
			tw.more("ns:"+catalog.PropDirectedBy, "ns:"+n.director)
		}
		tw.objects("ns:"+catalog.PropHasActor, n.actors)
		tw.end()
	}
	stats.Films = len(nodes)

	if err := tw.flush(); err != nil {
		return stats, err
	}
	stats.Triples = tw.triples

	logging.Info().
		Int("films", stats.Films).
		Int("actors", stats.Actors).
		Int("directors", stats.Directors).
		Int("genres", stats.Genres).
		Int("triples", stats.Triples).
		Int("skipped", stats.Skipped).
		Msg("Wrote Turtle graph")

	return stats, nil
}

func appendUnique(list []string, s string) []string {
	for _, v := range list {
		if v == s {
			return list
		}
	}
	return append(list, s)
}

// turtleWriter emits subject blocks and counts triples. The first write
// error sticks and is returned by flush.
type turtleWriter struct {
	w       *bufio.Writer
	err     error
	triples int
}

func (t *turtleWriter) printf(format string, args ...interface{}) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintf(t.w, format, args...)
}

// triple writes a one-line statement.
func (t *turtleWriter) triple(s, p, o string) {
	t.triples++
	t.printf("%s %s %s .\n", s, p, o)
}

// subject opens a block with its first predicate and object.
func (t *turtleWriter) subject(s, p, o string) {
	t.triples++
	t.printf("%s %s %s", s, p, o)
}

// more continues the open block with another predicate.
func (t *turtleWriter) more(p, o string) {
	t.triples++
	t.printf(" ;\n    %s %s", p, o)
}

// objects continues the open block with a predicate and an object list.
func (t *turtleWriter) objects(p string, locals []string) {
	if len(locals) == 0 {
		return
	}
	objs := make([]string, len(locals))
	for i, l := range locals {
		objs[i] = "ns:" + l
	}
	t.triples += len(locals)
	t.printf(" ;\n    %s %s", p, strings.Join(objs, " , "))
}

func (t *turtleWriter) end() {
	t.printf(" .\n")
}

func (t *turtleWriter) flush() error {
	if t.err != nil {
		return t.err
	}
	return t.w.Flush()
}
