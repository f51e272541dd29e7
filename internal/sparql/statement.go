// Cinegraph - Film Catalog Explorer for Semantic Knowledge Bases
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package sparql

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrUnboundParameter is returned by Render when a placeholder has no value.
var ErrUnboundParameter = errors.New("unbound query parameter")

// placeholder matches ${name}. The sequence is not valid SPARQL, so it cannot
// appear in a template by accident.
var placeholder = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// Params binds placeholder names to terms.
type Params map[string]Term

// Query is a rendered query ready to send. Name labels it in logs and metrics.
type Query struct {
	Name string
	Text string
}

// Statement is a named query template.
type Statement struct {
	name   string
	text   string
	params []string
}

// Prepare declares a query template. Placeholders are written ${name} and are
// substituted in a single pass by Render, so bound text is never re-scanned.
func Prepare(name, text string) *Statement {
	seen := make(map[string]bool)
	var params []string
	for _, m := range placeholder.FindAllStringSubmatch(text, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			params = append(params, m[1])
		}
	}
	return &Statement{
		name:   name,
		text:   strings.TrimSpace(text),
		params: params,
	}
}

// Name returns the statement name.
func (s *Statement) Name() string {
	return s.name
}

// Text returns the template text with its placeholders unbound.
func (s *Statement) Text() string {
	return s.text
}

// Parameters lists the distinct placeholder names in order of first use.
func (s *Statement) Parameters() []string {
	out := make([]string, len(s.params))
	copy(out, s.params)
	return out
}

// Render substitutes every placeholder with its bound term.
func (s *Statement) Render(params Params) (Query, error) {
	for _, name := range s.params {
		if t, ok := params[name]; !ok || t.IsZero() {
			return Query{}, fmt.Errorf("%w: %s in query %s", ErrUnboundParameter, name, s.name)
		}
	}

	text := placeholder.ReplaceAllStringFunc(s.text, func(m string) string {
		return params[m[2:len(m)-1]].text
	})

	return Query{Name: s.name, Text: text}, nil
}

// MustRender renders a statement that takes no parameters.
func (s *Statement) MustRender() Query {
	q, err := s.Render(nil)
	if err != nil {
		panic(err)
	}
	return q
}
