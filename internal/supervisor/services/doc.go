// Cinegraph - Film Catalog Explorer for Semantic Knowledge Bases
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

// Package services adapts the server's long-running components to the
// suture.Service interface so they can be placed in the supervisor tree.
//
// HTTPServerService wraps *http.Server and shuts it down gracefully when the
// supervisor stops. EndpointMonitorService probes the SPARQL endpoint on an
// interval and publishes its availability.
package services
