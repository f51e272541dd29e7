// Cinegraph - Film Catalog Explorer for Semantic Knowledge Bases
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package catalog

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/tomtom215/cinegraph/internal/models"
)

// SortOrder selects the ordering applied by Browse.
type SortOrder string

const (
	SortTitle    SortOrder = "title"
	SortYearDesc SortOrder = "year-desc"
	SortYearAsc  SortOrder = "year-asc"
)

const (
	// DefaultPageSize is used when BrowseOptions.PageSize is not positive.
	DefaultPageSize = 20

	// GenreFilterAll disables the genre filter, as does an empty name.
	GenreFilterAll = "all"

	pageWindowSize = 5
)

// BrowseOptions controls filtering, ordering and pagination of a film list.
type BrowseOptions struct {
	Genre    string
	Sort     SortOrder
	Page     int
	PageSize int
}

// Page is one page of a browsed film list.
type Page struct {
	Items      []models.Film `json:"items"`
	Page       int           `json:"page"`
	PageSize   int           `json:"page_size"`
	TotalItems int           `json:"total_items"`
	TotalPages int           `json:"total_pages"`
	PageWindow []int         `json:"page_window"`
}

// newCollator returns a case-insensitive collator for display sorting.
// Collators are not safe for concurrent use, so each call gets its own.
func newCollator() *collate.Collator {
	return collate.New(language.French, collate.IgnoreCase)
}

// Browse filters films by genre, sorts them and returns the requested page.
// The input slice is not modified.
func Browse(films []models.Film, opts BrowseOptions) Page {
	filtered := filterByGenre(films, opts.Genre)
	sortFilms(filtered, opts.Sort)

	size := opts.PageSize
	if size <= 0 {
		size = DefaultPageSize
	}
	total := len(filtered)
	totalPages := (total + size - 1) / size

	page := opts.Page
	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}

	start := (page - 1) * size
	end := min(start+size, total)
	items := []models.Film{}
	if start < end {
		items = filtered[start:end]
	}

	return Page{
		Items:      items,
		Page:       page,
		PageSize:   size,
		TotalItems: total,
		TotalPages: totalPages,
		PageWindow: PageWindow(page, totalPages),
	}
}

// PageWindow returns at most five page numbers around current:
// all pages when there are five or fewer, the first five near the start,
// the last five near the end, and current-2..current+2 otherwise.
func PageWindow(current, totalPages int) []int {
	n := min(pageWindowSize, totalPages)
	window := make([]int, 0, max(n, 0))
	for i := 0; i < n; i++ {
		var p int
		switch {
		case totalPages <= pageWindowSize:
			p = i + 1
		case current <= 3:
			p = i + 1
		case current >= totalPages-2:
			p = totalPages - 4 + i
		default:
			p = current - 2 + i
		}
		window = append(window, p)
	}
	return window
}

func filterByGenre(films []models.Film, genre string) []models.Film {
	genre = strings.TrimSpace(genre)
	out := make([]models.Film, 0, len(films))
	if genre == "" || strings.EqualFold(genre, GenreFilterAll) {
		return append(out, films...)
	}
	for _, f := range films {
		if slices.ContainsFunc(f.Genres, func(g string) bool { return strings.EqualFold(g, genre) }) {
			out = append(out, f)
		}
	}
	return out
}

func sortFilms(films []models.Film, order SortOrder) {
	switch order {
	case SortYearDesc:
		slices.SortStableFunc(films, func(a, b models.Film) int {
			return b.YearValue() - a.YearValue()
		})
	case SortYearAsc:
		slices.SortStableFunc(films, func(a, b models.Film) int {
			return a.YearValue() - b.YearValue()
		})
	default:
		c := newCollator()
		slices.SortStableFunc(films, func(a, b models.Film) int {
			return c.CompareString(a.Title, b.Title)
		})
	}
}

// GenreNames returns the sorted, unique genre names present in films.
func GenreNames(films []models.Film) []string {
	set := newOrderedSet()
	for _, f := range films {
		for _, g := range f.Genres {
			set.add(g)
		}
	}
	names := set.slice()
	c := newCollator()
	slices.SortFunc(names, func(a, b string) int {
		return c.CompareString(a, b)
	})
	return names
}
