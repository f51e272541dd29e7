// Cinegraph - Film Catalog Explorer for Semantic Knowledge Bases
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package catalog

import (
	"context"
	"strings"
	"testing"

	"github.com/tomtom215/cinegraph/internal/config"
	"github.com/tomtom215/cinegraph/internal/models"
	"github.com/tomtom215/cinegraph/internal/sparql"
)

const testNS = "http://example.org/film#"

// fakeQuerier returns canned rows and records every query it receives.
type fakeQuerier struct {
	rows    []sparql.Binding
	err     error
	queries []sparql.Query
}

func (f *fakeQuerier) Select(_ context.Context, q sparql.Query) ([]sparql.Binding, error) {
	f.queries = append(f.queries, q)
	if f.err != nil {
		return nil, f.err
	}
	return f.rows, nil
}

func (f *fakeQuerier) lastQuery(t *testing.T) sparql.Query {
	t.Helper()
	if len(f.queries) == 0 {
		t.Fatal("expected a query to be executed")
	}
	return f.queries[len(f.queries)-1]
}

func newTestService(q Querier) *Service {
	return NewService(q, &config.SPARQLConfig{Namespace: testNS})
}

// row builds a binding from name/value pairs. Values of ?uri are IRIs,
// everything else is a plain literal.
func row(pairs ...string) sparql.Binding {
	b := sparql.Binding{}
	for i := 0; i+1 < len(pairs); i += 2 {
		typ := "literal"
		if pairs[i] == varURI {
			typ = "uri"
		}
		b[pairs[i]] = sparql.Value{Type: typ, Value: pairs[i+1]}
	}
	return b
}

func film(local string) string {
	return testNS + local
}

func checkNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func checkStringEqual(t *testing.T, fieldName, got, want string) {
	t.Helper()
	if got != want {
		t.Errorf("%s: expected %q, got %q", fieldName, want, got)
	}
}

func checkIntEqual(t *testing.T, fieldName string, got, want int) {
	t.Helper()
	if got != want {
		t.Errorf("%s: expected %d, got %d", fieldName, want, got)
	}
}

func checkStrings(t *testing.T, fieldName string, got, want []string) {
	t.Helper()
	if strings.Join(got, "|") != strings.Join(want, "|") || len(got) != len(want) {
		t.Errorf("%s: expected %q, got %q", fieldName, want, got)
	}
}

func checkContains(t *testing.T, text, substr string) {
	t.Helper()
	if !strings.Contains(text, substr) {
		t.Errorf("expected query to contain %q, got:\n%s", substr, text)
	}
}

func checkNotContains(t *testing.T, text, substr string) {
	t.Helper()
	if strings.Contains(text, substr) {
		t.Errorf("expected query not to contain %q, got:\n%s", substr, text)
	}
}

func uris(films []models.Film) []string {
	out := make([]string, len(films))
	for i, f := range films {
		out[i] = f.URI
	}
	return out
}
