// Cinegraph - Film Catalog Explorer for Semantic Knowledge Bases
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package models

// Artwork is the TMDB metadata attached to a film, keyed by (title, year).
//
// Poster holds a w500 image URL and Backdrop a w1280 image URL; either is
// empty when TMDB has no image. TMDBID is 0 when unknown.
type Artwork struct {
	Poster      string   `json:"poster,omitempty"`
	Backdrop    string   `json:"backdrop,omitempty"`
	Overview    string   `json:"overview,omitempty"`
	VoteAverage *float64 `json:"vote_average,omitempty"`
	TMDBID      int      `json:"tmdb_id,omitempty"`
}

// FilmWithArtwork pairs a film with its artwork. Artwork is nil when the
// lookup found nothing or failed.
type FilmWithArtwork struct {
	Film
	Artwork *Artwork `json:"artwork"`
}

// ArtworkView is the artwork endpoint payload: the cached record plus URLs
// re-derived for the requested image sizes.
type ArtworkView struct {
	Artwork     *Artwork `json:"artwork"`
	PosterURL   string   `json:"poster_url,omitempty"`
	BackdropURL string   `json:"backdrop_url,omitempty"`
}
