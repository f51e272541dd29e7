// Cinegraph - Film Catalog Explorer for Semantic Knowledge Bases
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

/*
Package cache provides a thread-safe, generic memoization table.

Memo keeps every entry for the lifetime of the instance. There is no TTL and
no eviction: the artwork service stores one entry per (title, year) pair it
has looked up, and a process restart is the only invalidation.

# Absent values

A Memo may store the zero value of its type parameter. For pointer types
that lets callers cache "looked up, found nothing" as nil while Get still
reports the key as present:

	m := cache.NewMemo[*models.Artwork]()
	m.Set("Unknown Film-", nil)

	art, ok := m.Get("Unknown Film-") // art == nil, ok == true

# Statistics

Stats reports hits, misses and the current entry count; HitRate derives the
hit percentage. Both are exposed on the artwork endpoint and as Prometheus
gauges.

# Ownership

Memo instances are constructed explicitly and injected where needed. There is
no package-level instance, so tests and multiple services stay isolated.
*/
package cache
