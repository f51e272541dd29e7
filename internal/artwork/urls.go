// Cinegraph - Film Catalog Explorer for Semantic Knowledge Bases
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package artwork

import (
	"strings"

	"github.com/tomtom215/cinegraph/internal/models"
)

// ImageSizes lists the size tokens TMDB serves for posters and backdrops.
var ImageSizes = []string{"w92", "w154", "w185", "w300", "w342", "w500", "w780", "w1280", "original"}

// PosterURL returns the poster URL of art resized to size, e.g. "w185".
// It reports false when art is nil or has no poster.
func PosterURL(art *models.Artwork, size string) (string, bool) {
	if art == nil {
		return "", false
	}
	return resize(art.Poster, PosterSize, size)
}

// BackdropURL returns the backdrop URL of art resized to size.
// It reports false when art is nil or has no backdrop.
func BackdropURL(art *models.Artwork, size string) (string, bool) {
	if art == nil {
		return "", false
	}
	return resize(art.Backdrop, BackdropSize, size)
}

func resize(u, stored, size string) (string, bool) {
	if u == "" {
		return "", false
	}
	if size == "" {
		return u, true
	}
	return strings.Replace(u, "/"+stored+"/", "/"+size+"/", 1), true
}

// View builds the API representation of art with URLs at the requested sizes.
func View(art *models.Artwork, posterSize, backdropSize string) models.ArtworkView {
	v := models.ArtworkView{Artwork: art}
	v.PosterURL, _ = PosterURL(art, posterSize)
	v.BackdropURL, _ = BackdropURL(art, backdropSize)
	return v
}
