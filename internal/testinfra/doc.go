// Cinegraph - Film Catalog Explorer for Semantic Knowledge Bases
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

// Package testinfra provides container-backed infrastructure for integration tests.
//
// It uses testcontainers-go to boot Apache Jena Fuseki and load a small film
// catalog, so the catalog queries run against a real SPARQL endpoint:
//
//	fuseki, err := testinfra.NewFusekiContainer(ctx)
//	if err != nil {
//	    t.Fatal(err)
//	}
//	defer testinfra.CleanupContainer(t, ctx, fuseki.Container)
//	_ = fuseki.LoadTurtle(ctx, testinfra.SeedTurtle)
//
// Everything here is behind the integration build tag:
//
//	go test -tags integration ./internal/testinfra/...
//
// Tests are skipped when Docker is unavailable or with -short.
package testinfra
