// Cinegraph - Film Catalog Explorer for Semantic Knowledge Bases
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package ontology

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// listSeparator joins actors and genres inside one films_clean.csv cell.
const listSeparator = "; "

// cleanColumns is the header of films_clean.csv.
var cleanColumns = []string{"Title", "Actors", "Director", "Genre", "Year", "Runtime"}

// WriteFilmsCSV writes films in the films_clean.csv layout.
func WriteFilmsCSV(w io.Writer, films []Film) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(cleanColumns); err != nil {
		return err
	}
	for _, f := range films {
		record := []string{
			f.Title,
			strings.Join(f.Actors, listSeparator),
			f.Director,
			strings.Join(f.Genres, listSeparator),
			strconv.Itoa(f.Year),
			strconv.Itoa(f.Runtime),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadFilmsCSV reads a films_clean.csv file. Year and Runtime may be empty
// (read as 0) or written as floats ("2010.0").
func ReadFilmsCSV(r io.Reader) ([]Film, error) {
	var (
		films  []Film
		rowErr error
		line   = 1
	)
	err := readCSV(r, cleanColumns, func(get func(string) string) {
		line++
		if rowErr != nil {
			return
		}
		f := Film{
			Title:    strings.TrimSpace(get("Title")),
			Actors:   splitList(get("Actors")),
			Director: strings.TrimSpace(get("Director")),
			Genres:   splitList(get("Genre")),
		}
		var ok bool
		if f.Year, ok = optionalInt(get("Year")); !ok {
			rowErr = fmt.Errorf("line %d: invalid Year %q", line, get("Year"))
			return
		}
		if f.Runtime, ok = optionalInt(get("Runtime")); !ok {
			rowErr = fmt.Errorf("line %d: invalid Runtime %q", line, get("Runtime"))
			return
		}
		films = append(films, f)
	})
	if err != nil {
		return nil, err
	}
	if rowErr != nil {
		return nil, rowErr
	}
	return films, nil
}

func splitList(cell string) []string {
	var out []string
	for _, part := range strings.Split(cell, ";") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func optionalInt(s string) (int, bool) {
	if strings.TrimSpace(s) == "" {
		return 0, true
	}
	return runtimeOf(s)
}
