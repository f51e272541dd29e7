// Cinegraph - Film Catalog Explorer for Semantic Knowledge Bases
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package sparql

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidIRI is returned when a string cannot be used as an IRI reference.
var ErrInvalidIRI = errors.New("invalid IRI")

// Term is a piece of SPARQL syntax that can be bound to a template parameter.
// Terms are only produced by the constructors in this package, so their text
// is always a single well-formed token (or a list of them for Values).
type Term struct {
	text string
}

// String returns the SPARQL text of the term.
func (t Term) String() string {
	return t.text
}

// IsZero reports whether t was never constructed.
func (t Term) IsZero() bool {
	return t.text == ""
}

// ValidateIRI checks s against the IRIREF production of the SPARQL grammar:
// no '<', '>', '"', '{', '}', '|', '^', '`', '\' and no code point at or
// below U+0020. Empty IRIs are rejected as well.
func ValidateIRI(s string) error {
	if s == "" {
		return fmt.Errorf("%w: empty", ErrInvalidIRI)
	}
	for i, r := range s {
		if r <= 0x20 {
			return fmt.Errorf("%w: control or space character at offset %d", ErrInvalidIRI, i)
		}
		switch r {
		case '<', '>', '"', '{', '}', '|', '^', '`', '\\':
			return fmt.Errorf("%w: character %q at offset %d", ErrInvalidIRI, r, i)
		}
	}
	return nil
}

// IRI returns s as an IRI reference term, rendered as <s>.
func IRI(s string) (Term, error) {
	if err := ValidateIRI(s); err != nil {
		return Term{}, err
	}
	return Term{text: "<" + s + ">"}, nil
}

// MustIRI is like IRI but panics on invalid input. Use it only for constants.
func MustIRI(s string) Term {
	t, err := IRI(s)
	if err != nil {
		panic(err)
	}
	return t
}

// LocalName builds an IRI in namespace ns from a human label, replacing runs
// of whitespace with '_': LocalName("http://example.org/film#", "Tim Burton")
// renders as <http://example.org/film#Tim_Burton>.
func LocalName(ns, name string) (Term, error) {
	local := strings.Join(strings.Fields(name), "_")
	if local == "" {
		return Term{}, fmt.Errorf("%w: empty local name", ErrInvalidIRI)
	}
	return IRI(ns + local)
}

var literalEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
	"\b", `\b`,
	"\f", `\f`,
)

// Literal returns s as a double-quoted string literal with ECHAR escapes.
func Literal(s string) Term {
	return Term{text: `"` + literalEscaper.Replace(s) + `"`}
}

// Integer returns n as an integer literal.
func Integer(n int) Term {
	return Term{text: strconv.Itoa(n)}
}

// Values joins terms with spaces, for use inside a VALUES block:
//
//	VALUES ?actor { ${actors} }
func Values(terms ...Term) Term {
	parts := make([]string, 0, len(terms))
	for _, t := range terms {
		if !t.IsZero() {
			parts = append(parts, t.text)
		}
	}
	return Term{text: strings.Join(parts, " ")}
}
