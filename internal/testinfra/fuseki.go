// Cinegraph - Film Catalog Explorer for Semantic Knowledge Bases
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

//go:build integration

package testinfra

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	// DefaultFusekiImage is an Apache Jena Fuseki server image.
	DefaultFusekiImage = "stain/jena-fuseki:latest"

	// DefaultFusekiPort is the Fuseki HTTP port.
	DefaultFusekiPort = "3030"

	// DefaultDataset is the dataset created at startup.
	DefaultDataset = "films"

	// DefaultAdminPassword is the admin password of test instances.
	DefaultAdminPassword = "cinegraph-test"

	// FilmNamespace is the vocabulary namespace of SeedTurtle.
	FilmNamespace = "http://example.org/film#"
)

// SeedTurtle is a small film catalog: five films, four genres, three
// directors. Big_Fish deliberately has no title.
//
//go:embed testdata/films.ttl
var SeedTurtle []byte

// FusekiContainer is a running Fuseki server with one dataset.
type FusekiContainer struct {
	testcontainers.Container
	URL           string
	Dataset       string
	AdminPassword string
}

// FusekiOption configures the Fuseki container.
type FusekiOption func(*fusekiConfig)

type fusekiConfig struct {
	image        string
	dataset      string
	password     string
	startTimeout time.Duration
}

// WithFusekiImage sets a custom Fuseki Docker image.
func WithFusekiImage(image string) FusekiOption {
	return func(c *fusekiConfig) {
		c.image = image
	}
}

// WithDataset sets the name of the dataset created at startup.
func WithDataset(name string) FusekiOption {
	return func(c *fusekiConfig) {
		c.dataset = name
	}
}

// WithStartTimeout sets the timeout for waiting for Fuseki to start.
func WithStartTimeout(timeout time.Duration) FusekiOption {
	return func(c *fusekiConfig) {
		c.startTimeout = timeout
	}
}

// NewFusekiContainer creates and starts a Fuseki container.
//
// Example:
//
//	fuseki, err := testinfra.NewFusekiContainer(ctx)
//	if err != nil {
//	    t.Fatal(err)
//	}
//	defer testinfra.CleanupContainer(t, ctx, fuseki.Container)
//	if err := fuseki.LoadTurtle(ctx, testinfra.SeedTurtle); err != nil {
//	    t.Fatal(err)
//	}
//	client := sparql.NewClient(&config.SPARQLConfig{Endpoint: fuseki.QueryEndpoint()})
func NewFusekiContainer(ctx context.Context, opts ...FusekiOption) (*FusekiContainer, error) {
	cfg := &fusekiConfig{
		image:        DefaultFusekiImage,
		dataset:      DefaultDataset,
		password:     DefaultAdminPassword,
		startTimeout: 90 * time.Second,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	req := testcontainers.ContainerRequest{
		Image:        cfg.image,
		ExposedPorts: []string{DefaultFusekiPort + "/tcp"},
		Env: map[string]string{
			"ADMIN_PASSWORD":   cfg.password,
			"FUSEKI_DATASET_1": cfg.dataset,
			"TDB":              "2",
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort(DefaultFusekiPort+"/tcp"),
			wait.ForHTTP("/$/ping").WithPort(DefaultFusekiPort+"/tcp"),
		).WithStartupTimeout(cfg.startTimeout),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("create fuseki container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		container.Terminate(ctx) //nolint:errcheck
		return nil, fmt.Errorf("get container host: %w", err)
	}

	port, err := container.MappedPort(ctx, DefaultFusekiPort)
	if err != nil {
		container.Terminate(ctx) //nolint:errcheck
		return nil, fmt.Errorf("get mapped port: %w", err)
	}

	return &FusekiContainer{
		Container:     container,
		URL:           fmt.Sprintf("http://%s:%s", host, port.Port()),
		Dataset:       cfg.dataset,
		AdminPassword: cfg.password,
	}, nil
}

// QueryEndpoint returns the SPARQL query endpoint of the dataset.
func (c *FusekiContainer) QueryEndpoint() string {
	return c.URL + "/" + c.Dataset + "/query"
}

// LoadTurtle adds a Turtle document to the default graph of the dataset
// through the Graph Store Protocol.
func (c *FusekiContainer) LoadTurtle(ctx context.Context, turtle []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL+"/"+c.Dataset+"/data?default", bytes.NewReader(turtle))
	if err != nil {
		return fmt.Errorf("build upload request: %w", err)
	}
	req.Header.Set("Content-Type", "text/turtle; charset=utf-8")
	req.SetBasicAuth("admin", c.AdminPassword)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("upload turtle: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("upload turtle: status %d: %s", resp.StatusCode, body)
	}
	return nil
}
