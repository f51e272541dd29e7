// Cinegraph - Film Catalog Explorer for Semantic Knowledge Bases
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package sparql

import (
	"math"
	"strconv"
	"strings"
)

// Value is one RDF term in the SPARQL 1.1 JSON results format.
//
// Type is "uri", "literal" or "bnode" (older endpoints also send
// "typed-literal"). Datatype and Lang are set for typed and tagged literals.
type Value struct {
	Type     string `json:"type"`
	Value    string `json:"value"`
	Datatype string `json:"datatype,omitempty"`
	Lang     string `json:"xml:lang,omitempty"`
}

// Binding is one result row: variable name to value. Unbound variables
// (from OPTIONAL patterns) are simply missing.
type Binding map[string]Value

// Text returns the lexical value of variable name, or "" when unbound.
func (b Binding) Text(name string) string {
	return b[name].Value
}

// Has reports whether variable name is bound to a non-empty value.
func (b Binding) Has(name string) bool {
	v, ok := b[name]
	return ok && v.Value != ""
}

// Int parses variable name as an integer. Decimal and double lexical forms
// are truncated toward zero. ok is false when the variable is unbound or
// not numeric.
func (b Binding) Int(name string) (n int, ok bool) {
	raw := strings.TrimSpace(b.Text(name))
	if raw == "" {
		return 0, false
	}
	if n, err := strconv.Atoi(raw); err == nil {
		return n, true
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return int(f), true
}

// IntPtr is Int returning nil when the value is absent or not numeric.
func (b Binding) IntPtr(name string) *int {
	n, ok := b.Int(name)
	if !ok {
		return nil
	}
	return &n
}

// resultsDocument is the application/sparql-results+json body for both
// SELECT (head/results) and ASK (boolean) queries.
type resultsDocument struct {
	Head struct {
		Vars []string `json:"vars"`
	} `json:"head"`
	Results *struct {
		Bindings []Binding `json:"bindings"`
	} `json:"results,omitempty"`
	Boolean *bool `json:"boolean,omitempty"`
}
