// Cinegraph - Film Catalog Explorer for Semantic Knowledge Bases
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package ontology

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/tomtom215/cinegraph/internal/logging"
)

const (
	// DefaultLimit is the number of most popular films Clean keeps.
	DefaultLimit = 500

	// MaxActors is the number of leading cast members kept per film.
	MaxActors = 3
)

// ErrMissingColumn is returned when a source CSV lacks a required column.
var ErrMissingColumn = errors.New("missing column")

// CleanOptions tunes Clean.
type CleanOptions struct {
	// Limit is the number of most popular films to keep. Zero means
	// DefaultLimit.
	Limit int
}

type movieRow struct {
	id         int
	title      string
	popularity float64
	release    string
	runtime    string
	genres     string
}

type creditsRow struct {
	cast string
	crew string
}

// Clean joins the TMDB movies and credits dumps on id, keeps the Limit most
// popular movies and reduces each to a Film: the first MaxActors cast
// members, the first crew member whose job is Director, every genre, the
// release year and the runtime in minutes. Movies without a director, an
// actor, a release year or a runtime are dropped. Rows whose id is not a
// number are ignored and a repeated id keeps its first row. Unreadable
// cast, crew or genre cells count as empty.
func Clean(movies, credits io.Reader, opts CleanOptions) ([]Film, *CleanStats, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	stats := &CleanStats{}

	creditsByID, err := readCredits(credits)
	if err != nil {
		return nil, stats, fmt.Errorf("read credits: %w", err)
	}
	rows, err := readMovies(movies)
	if err != nil {
		return nil, stats, fmt.Errorf("read movies: %w", err)
	}
	stats.Movies = len(rows)

	joined := rows[:0]
	for _, m := range rows {
		if _, ok := creditsByID[m.id]; ok {
			joined = append(joined, m)
		}
	}
	stats.Joined = len(joined)
	logging.Info().Int("movies", stats.Movies).Int("joined", stats.Joined).Msg("Joined movies with credits")

	// Most popular first; unparsable popularity sorts last.
	sort.SliceStable(joined, func(i, j int) bool {
		return joined[i].popularity > joined[j].popularity
	})
	if len(joined) > limit {
		joined = joined[:limit]
	}
	stats.Selected = len(joined)

	films := make([]Film, 0, len(joined))
	for _, m := range joined {
		c := creditsByID[m.id]
		f := Film{
			Title:    strings.TrimSpace(m.title),
			Actors:   actorsOf(m.id, c.cast),
			Director: directorOf(m.id, c.crew),
			Genres:   genresOf(m.id, m.genres),
		}
		if f.Director == "" || len(f.Actors) == 0 {
			stats.MissingCredits++
			logging.Trace().Int("id", m.id).Str("title", f.Title).Msg("Dropped film without director or cast")
			continue
		}
		year, yearOK := yearOf(m.release)
		runtime, runtimeOK := runtimeOf(m.runtime)
		if !yearOK || !runtimeOK {
			stats.MissingYearOrRuntime++
			logging.Trace().Int("id", m.id).Str("title", f.Title).Msg("Dropped film without year or runtime")
			continue
		}
		f.Year, f.Runtime = year, runtime
		films = append(films, f)
	}
	stats.Kept = len(films)

	logging.Info().
		Int("selected", stats.Selected).
		Int("missing_credits", stats.MissingCredits).
		Int("missing_year_or_runtime", stats.MissingYearOrRuntime).
		Int("kept", stats.Kept).
		Msg("Cleaned film records")

	return films, stats, nil
}

func readMovies(r io.Reader) ([]movieRow, error) {
	var rows []movieRow
	seen := make(map[int]bool)
	err := readCSV(r, []string{"id", "title", "popularity", "release_date", "runtime", "genres"}, func(get func(string) string) {
		id, ok := parseID(get("id"))
		if !ok || seen[id] {
			return
		}
		seen[id] = true
		pop, err := strconv.ParseFloat(strings.TrimSpace(get("popularity")), 64)
		if err != nil || math.IsNaN(pop) {
			pop = math.Inf(-1)
		}
		rows = append(rows, movieRow{
			id:         id,
			title:      get("title"),
			popularity: pop,
			release:    get("release_date"),
			runtime:    get("runtime"),
			genres:     get("genres"),
		})
	})
	return rows, err
}

func readCredits(r io.Reader) (map[int]creditsRow, error) {
	out := make(map[int]creditsRow)
	err := readCSV(r, []string{"id", "cast", "crew"}, func(get func(string) string) {
		id, ok := parseID(get("id"))
		if !ok {
			return
		}
		if _, dup := out[id]; dup {
			return
		}
		out[id] = creditsRow{cast: get("cast"), crew: get("crew")}
	})
	return out, err
}

// readCSV streams the records of r to fn, which reads cells by header name.
// Every name in required must be present in the header.
func readCSV(r io.Reader, required []string, fn func(get func(string) string)) error {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err != nil {
		return fmt.Errorf("header: %w", err)
	}
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}
	for _, name := range required {
		if _, ok := index[name]; !ok {
			return fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
	}

	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		fn(func(name string) string {
			if i := index[name]; i < len(record) {
				return record[i]
			}
			return ""
		})
	}
}

// parseID accepts integer ids, including the float form pandas writes.
func parseID(s string) (int, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || f != math.Trunc(f) {
		return 0, false
	}
	return int(f), true
}

func actorsOf(id int, cell string) []string {
	cast, err := parseCredits(cell)
	if err != nil {
		logging.Warn().Err(err).Int("id", id).Msg("Unreadable cast")
		return nil
	}
	var out []string
	for _, c := range cast {
		if len(out) == MaxActors {
			break
		}
		if name := strings.TrimSpace(c.Name); name != "" {
			out = append(out, name)
		}
	}
	return out
}

func directorOf(id int, cell string) string {
	crew, err := parseCredits(cell)
	if err != nil {
		logging.Warn().Err(err).Int("id", id).Msg("Unreadable crew")
		return ""
	}
	for _, c := range crew {
		if c.Job == "Director" {
			return strings.TrimSpace(c.Name)
		}
	}
	return ""
}

func genresOf(id int, cell string) []string {
	genres, err := parseCredits(cell)
	if err != nil {
		logging.Warn().Err(err).Int("id", id).Msg("Unreadable genres")
		return nil
	}
	out := make([]string, 0, len(genres))
	for _, g := range genres {
		if name := strings.TrimSpace(g.Name); name != "" {
			out = append(out, name)
		}
	}
	return out
}

// yearOf returns the year of a YYYY-MM-DD release date.
func yearOf(release string) (int, bool) {
	head, _, found := strings.Cut(strings.TrimSpace(release), "-")
	if !found {
		return 0, false
	}
	year, err := strconv.Atoi(head)
	if err != nil {
		return 0, false
	}
	return year, true
}

// runtimeOf parses a runtime in minutes such as "148.0".
func runtimeOf(s string) (int, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return int(f), true
}
