// Cinegraph - Film Catalog Explorer for Semantic Knowledge Bases
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package services

import (
	"context"
	"time"

	"github.com/tomtom215/cinegraph/internal/logging"
	"github.com/tomtom215/cinegraph/internal/metrics"
)

const (
	defaultProbeInterval = time.Minute
	probeTimeout         = 5 * time.Second
)

// Pinger probes the SPARQL endpoint. *sparql.Client satisfies it.
type Pinger interface {
	Ping(ctx context.Context) error
}

// EndpointMonitorService probes the SPARQL endpoint periodically, publishes
// the result as the sparql_endpoint_up gauge and logs availability changes.
// It also refreshes the uptime gauge.
type EndpointMonitorService struct {
	pinger   Pinger
	interval time.Duration
	started  time.Time
	name     string

	// up is the last observed state; nil before the first probe.
	up *bool
}

// NewEndpointMonitorService creates a monitor probing every interval.
// A non-positive interval defaults to one minute.
func NewEndpointMonitorService(pinger Pinger, interval time.Duration) *EndpointMonitorService {
	if interval <= 0 {
		interval = defaultProbeInterval
	}
	return &EndpointMonitorService{
		pinger:   pinger,
		interval: interval,
		started:  time.Now(),
		name:     "sparql-endpoint-monitor",
	}
}

// Serve implements suture.Service. It probes once immediately, then on
// every tick until ctx is canceled.
func (m *EndpointMonitorService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.probe(ctx)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			m.probe(ctx)
		}
	}
}

func (m *EndpointMonitorService) probe(ctx context.Context) {
	probeCtx, cancel := context.WithTimeout(ctx, probeTimeout)
	err := m.pinger.Ping(probeCtx)
	cancel()

	if ctx.Err() != nil {
		return
	}

	up := err == nil
	metrics.RecordEndpointProbe(up)
	metrics.UpdateUptime(m.started)

	if m.up != nil && *m.up == up {
		return
	}
	m.up = &up

	if up {
		logging.Info().Msg("SPARQL endpoint available")
	} else {
		logging.Warn().Err(err).Msg("SPARQL endpoint unavailable")
	}
}

// String implements fmt.Stringer; suture uses it in log messages.
func (m *EndpointMonitorService) String() string {
	return m.name
}
