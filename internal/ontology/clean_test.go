// Cinegraph - Film Catalog Explorer for Semantic Knowledge Bases
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package ontology

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cinegraph/internal/logging"
)

const testMovies = `adult,genres,id,popularity,release_date,runtime,title
False,"[{'id': 878, 'name': 'Science Fiction'}, {'id': 53, 'name': 'Thriller'}]",27205,29.1,2010-07-14,148.0,Inception
False,"[{'id': 18, 'name': 'Drama'}]",807,18.4,1995-09-22,127.0,Se7en
False,"[{'id': 14, 'name': 'Fantasy'}]",587,9.5,2003-12-25,125.0,Big Fish
False,[],1,50.0,2001-01-01,90.0,No Credits
False,[],2,40.0,,90.0,No Date
False,[],3,35.0,2005-05-05,,No Runtime
False,[],1997-08-20,0.5,1997-08-20,80.0,Broken Id
False,"[{'id': 18, 'name': 'Drama'}]",807,99.0,1995-09-22,127.0,Se7en duplicate
`

const testCredits = `cast,crew,id
"[{'cast_id': 1, 'name': 'Leonardo DiCaprio', 'order': 0}, {'cast_id': 2, 'name': 'Joseph Gordon-Levitt', 'order': 1}, {'cast_id': 3, 'name': 'Ellen Page', 'order': 2}, {'cast_id': 4, 'name': 'Tom Hardy', 'order': 3}]","[{'job': 'Producer', 'name': 'Emma Thomas'}, {'job': 'Director', 'name': 'Christopher Nolan'}]",27205
"[{'name': 'Brad Pitt'}, {'name': 'Morgan Freeman'}]","[{'job': 'Director', 'name': 'David Fincher'}]",807
"[{'name': 'Ewan McGregor'}]","[{'job': 'Director', 'name': 'Tim Burton'}]",587
[],"[{'job': 'Director', 'name': 'Nobody'}]",1
"[{'name': 'A'}]","[{'job': 'Director', 'name': 'B'}]",2
"[{'name': 'A'}]","[{'job': 'Director', 'name': 'B'}]",3
`

func TestClean(t *testing.T) {
	films, stats, err := Clean(strings.NewReader(testMovies), strings.NewReader(testCredits), CleanOptions{})
	if err != nil {
		t.Fatalf("Clean: %v", err)
	}

	want := []Film{
		{
			Title:    "Inception",
			Actors:   []string{"Leonardo DiCaprio", "Joseph Gordon-Levitt", "Ellen Page"},
			Director: "Christopher Nolan",
			Genres:   []string{"Science Fiction", "Thriller"},
			Year:     2010,
			Runtime:  148,
		},
		{
			Title:    "Se7en",
			Actors:   []string{"Brad Pitt", "Morgan Freeman"},
			Director: "David Fincher",
			Genres:   []string{"Drama"},
			Year:     1995,
			Runtime:  127,
		},
		{
			Title:    "Big Fish",
			Actors:   []string{"Ewan McGregor"},
			Director: "Tim Burton",
			Genres:   []string{"Fantasy"},
			Year:     2003,
			Runtime:  125,
		},
	}
	if !reflect.DeepEqual(films, want) {
		t.Errorf("films =\n%+v\nwant\n%+v", films, want)
	}

	wantStats := CleanStats{
		Movies:               6,
		Joined:               6,
		Selected:             6,
		MissingCredits:       1,
		MissingYearOrRuntime: 2,
		Kept:                 3,
	}
	if *stats != wantStats {
		t.Errorf("stats = %+v, want %+v", *stats, wantStats)
	}
}

func TestClean_KeepsMostPopular(t *testing.T) {
	films, stats, err := Clean(strings.NewReader(testMovies), strings.NewReader(testCredits), CleanOptions{Limit: 2})
	if err != nil {
		t.Fatalf("Clean: %v", err)
	}
	// The two most popular joined movies lack credits and a date.
	if len(films) != 0 || stats.Selected != 2 {
		t.Errorf("films = %v, stats = %+v", films, stats)
	}

	films, _, err = Clean(strings.NewReader(testMovies), strings.NewReader(testCredits), CleanOptions{Limit: 4})
	if err != nil {
		t.Fatalf("Clean: %v", err)
	}
	if len(films) != 1 || films[0].Title != "Inception" {
		t.Errorf("films = %+v, want only Inception", films)
	}
}

func TestClean_MissingColumn(t *testing.T) {
	_, _, err := Clean(strings.NewReader("id,title\n1,X\n"), strings.NewReader(testCredits), CleanOptions{})
	if !errors.Is(err, ErrMissingColumn) {
		t.Errorf("err = %v, want ErrMissingColumn", err)
	}
}

func TestClean_UnreadableCellCountsAsEmpty(t *testing.T) {
	movies := "genres,id,popularity,release_date,runtime,title\n" +
		"[{'name': oops}],10,1.0,2000-01-01,100,Broken Genres\n"
	credits := "cast,crew,id\n" +
		"\"[{'name': 'Someone'}]\",\"[{'job': 'Director', 'name': 'Someone Else'}]\",10\n"

	films, _, err := Clean(strings.NewReader(movies), strings.NewReader(credits), CleanOptions{})
	if err != nil {
		t.Fatalf("Clean: %v", err)
	}
	if len(films) != 1 || len(films[0].Genres) != 0 {
		t.Errorf("films = %+v, want one film without genres", films)
	}
}

func TestClean_TracesDroppedFilms(t *testing.T) {
	var buf bytes.Buffer
	logging.SetLogger(logging.NewTestLogger(&buf))
	original := logging.GetLevel()
	defer func() {
		zerolog.SetGlobalLevel(original)
		logging.Init(logging.DefaultConfig())
	}()
	logging.SetLevelString("trace")

	if _, _, err := Clean(strings.NewReader(testMovies), strings.NewReader(testCredits), CleanOptions{}); err != nil {
		t.Fatalf("Clean: %v", err)
	}

	lines := strings.Split(buf.String(), "\n")
	traced := func(title, msg string) bool {
		for _, line := range lines {
			if strings.Contains(line, `"title":"`+title+`"`) && strings.Contains(line, msg) {
				return true
			}
		}
		return false
	}
	tests := []struct {
		title string
		msg   string
	}{
		{"No Credits", "Dropped film without director or cast"},
		{"No Date", "Dropped film without year or runtime"},
		{"No Runtime", "Dropped film without year or runtime"},
	}
	for _, tt := range tests {
		if !traced(tt.title, tt.msg) {
			t.Errorf("no %q trace for %q:\n%s", tt.msg, tt.title, buf.String())
		}
	}
}
