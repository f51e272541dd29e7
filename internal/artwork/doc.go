// Cinegraph - Film Catalog Explorer for Semantic Knowledge Bases
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

/*
Package artwork enriches films with poster and backdrop images from TMDB.

Lookups are keyed by "title-year" and memoized in a cache.Memo for the life of
the Service. A search with no results is remembered as nil artwork; a search
that fails is logged at warn level and retried on the next call. Concurrent
misses for one key are collapsed with singleflight.

LookupBatch fans out one lookup per film through an errgroup bounded by
TMDB_MAX_CONCURRENCY and returns results in input order.

Stored URLs use w500 posters and w1280 backdrops. PosterURL and BackdropURL
swap that size segment for another TMDB size token:

	url, ok := artwork.PosterURL(art, "w185")
*/
package artwork
