// Cinegraph - Film Catalog Explorer for Semantic Knowledge Bases
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

/*
Package supervisor provides process supervision for Cinegraph using suture v4.

The long-running parts of the server are organized into a small tree:

	RootSupervisor ("cinegraph")
	├── MonitorSupervisor ("monitor-layer")
	│   └── EndpointMonitorService
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Crashed services are restarted with suture's backoff, and a failure in the
monitor layer never interrupts request handling. Supervisor events are logged
through log/slog using the sutureslog adapter, which cmd/server points at the
zerolog logger.

# Usage Example

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddMonitorService(services.NewEndpointMonitorService(sparqlClient, time.Minute))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	err = tree.Serve(ctx)
*/
package supervisor
