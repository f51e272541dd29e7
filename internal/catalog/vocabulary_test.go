// Cinegraph - Film Catalog Explorer for Semantic Knowledge Bases
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package catalog

import (
	"strings"
	"testing"
)

func TestVocabulary_UsedByQueries(t *testing.T) {
	var all strings.Builder
	for _, stmt := range []interface{ Text() string }{
		allFilmsQuery,
		filmDetailsQuery,
		recommendByActorQuery,
		recommendByGenreQuery,
		recommendByDirectorQuery,
		searchQuery,
		allGenresQuery,
		filmsByGenreQuery,
	} {
		all.WriteString(stmt.Text())
	}
	text := all.String()

	for _, term := range append([]string{ClassFilm, ClassGenre}, Properties...) {
		if !strings.Contains(text, "ns:"+term+" ") && !strings.Contains(text, "ns:"+term+"\n") {
			t.Errorf("no query refers to ns:%s", term)
		}
	}
}
