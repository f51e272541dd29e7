// Cinegraph - Film Catalog Explorer for Semantic Knowledge Bases
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

/*
Package api provides the HTTP REST API layer for Cinegraph.

It exposes the film catalog and artwork lookups to the browsing UI as JSON.
Every response uses the models.APIResponse envelope:

	{"status":"success","data":...,"metadata":{"timestamp":...,"query_time_ms":3}}

Endpoints (all under /api/v1):

  - GET  /health/live, /health/ready
  - GET  /films?genre=&sort=&page=&page_size=&artwork=
  - GET  /films/search?q=
  - GET  /films/details?uri=
  - GET  /films/recommendations?uri=&by=actor|genre|director
  - POST /films/recommendations/criteria
  - GET  /genres, /genres/films?uri=
  - GET  /artwork?title=&year=&poster_size=&backdrop_size=
  - POST /artwork/batch

Prometheus metrics are served at /metrics.

Error Handling:

Failures of the SPARQL endpoint are answered with 502 and the code
CATALOG_UNAVAILABLE. Identifiers that are not valid IRIs and malformed
parameters are answered with 400 and VALIDATION_ERROR. Artwork failures are
never errors: the film simply has no artwork.

Usage Example:

	handler := api.NewHandler(catalogService, artworkService, sparqlClient, &cfg.API)
	router := api.NewRouter(handler, &cfg.Security)
	srv := &http.Server{Addr: cfg.Server.Addr(), Handler: router.SetupChi()}
*/
package api
