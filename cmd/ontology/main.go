// Cinegraph - Film Catalog Explorer for Semantic Knowledge Bases
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

// Command ontology builds the film knowledge base served by Cinegraph from
// the TMDB metadata dump.
//
// From the raw dump (movies_metadata.csv and credits.csv):
//
//	ontology -movies data/raw/movies_metadata.csv -credits data/raw/credits.csv \
//	    -clean-out data/processed/films_clean.csv -out films_ontology.ttl
//
// From an already cleaned file:
//
//	ontology -in data/processed/films_clean.csv -out films_ontology.ttl
//
// The namespace defaults to SPARQL_NAMESPACE (see internal/config), so the
// generated graph matches what the server queries. Load the Turtle file
// into the SPARQL store with its own tooling, for example:
//
//	curl -X POST -H 'Content-Type: text/turtle' --data-binary @films_ontology.ttl \
//	    'http://localhost:3030/films/data?default'
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/tomtom215/cinegraph/internal/config"
	"github.com/tomtom215/cinegraph/internal/logging"
	"github.com/tomtom215/cinegraph/internal/ontology"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}
	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	if err := run(os.Args[1:], cfg.SPARQL.Namespace, os.Stdout); err != nil {
		logging.Fatal().Err(err).Msg("Ontology generation failed")
	}
}

type options struct {
	movies    string
	credits   string
	in        string
	cleanOut  string
	out       string
	namespace string
	logLevel  string
	limit     int
}

func parseFlags(args []string, defaultNamespace string) (*options, error) {
	opts := &options{}
	fs := flag.NewFlagSet("ontology", flag.ContinueOnError)
	fs.StringVar(&opts.movies, "movies", "", "TMDB movies_metadata.csv")
	fs.StringVar(&opts.credits, "credits", "", "TMDB credits.csv")
	fs.StringVar(&opts.in, "in", "", "cleaned films CSV (instead of -movies and -credits)")
	fs.StringVar(&opts.cleanOut, "clean-out", "", "also write the cleaned films CSV here")
	fs.StringVar(&opts.out, "out", "films_ontology.ttl", "Turtle output file, - for stdout")
	fs.StringVar(&opts.namespace, "namespace", defaultNamespace, "vocabulary namespace")
	fs.IntVar(&opts.limit, "limit", ontology.DefaultLimit, "number of most popular films to keep")
	fs.StringVar(&opts.logLevel, "log-level", "", "override LOG_LEVEL (trace lists every dropped film)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	raw := opts.movies != "" || opts.credits != ""
	switch {
	case raw && opts.in != "":
		return nil, errors.New("use either -in or -movies with -credits")
	case raw && (opts.movies == "" || opts.credits == ""):
		return nil, errors.New("-movies and -credits go together")
	case !raw && opts.in == "":
		return nil, errors.New("one of -in or -movies with -credits is required")
	case opts.in != "" && opts.cleanOut != "":
		return nil, errors.New("-clean-out needs -movies and -credits")
	}
	return opts, nil
}

func run(args []string, defaultNamespace string, stdout io.Writer) error {
	opts, err := parseFlags(args, defaultNamespace)
	if err != nil {
		return err
	}
	if opts.logLevel != "" {
		logging.SetLevelString(opts.logLevel)
	}
	log := logging.WithComponent("ontology")

	films, err := loadFilms(opts)
	if err != nil {
		return err
	}

	if opts.cleanOut != "" {
		if err := writeFile(opts.cleanOut, stdout, func(w io.Writer) error {
			return ontology.WriteFilmsCSV(w, films)
		}); err != nil {
			return fmt.Errorf("write cleaned films: %w", err)
		}
		log.Info().Str("path", opts.cleanOut).Int("films", len(films)).Msg("Cleaned films written")
	}

	err = writeFile(opts.out, stdout, func(w io.Writer) error {
		_, err := ontology.WriteTurtle(w, opts.namespace, films)
		return err
	})
	if err != nil {
		return fmt.Errorf("write turtle: %w", err)
	}
	if opts.out != "-" {
		log.Info().Str("path", opts.out).Str("namespace", opts.namespace).Msg("Turtle graph written")
	}
	return nil
}

func loadFilms(opts *options) ([]ontology.Film, error) {
	if opts.in != "" {
		f, err := os.Open(opts.in)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return ontology.ReadFilmsCSV(f)
	}

	movies, err := os.Open(opts.movies)
	if err != nil {
		return nil, err
	}
	defer movies.Close()
	credits, err := os.Open(opts.credits)
	if err != nil {
		return nil, err
	}
	defer credits.Close()

	films, _, err := ontology.Clean(movies, credits, ontology.CleanOptions{Limit: opts.limit})
	return films, err
}

// writeFile writes through fn to path, or to stdout when path is "-".
func writeFile(path string, stdout io.Writer, fn func(io.Writer) error) (err error) {
	if path == "-" {
		return fn(stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()
	return fn(f)
}
