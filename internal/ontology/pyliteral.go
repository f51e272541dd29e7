// Cinegraph - Film Catalog Explorer for Semantic Knowledge Bases
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package ontology

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/goccy/go-json"
)

// ErrPyLiteral is returned for text that is not a supported Python literal.
var ErrPyLiteral = errors.New("invalid python literal")

// pyLiteralToJSON rewrites a Python literal made of lists, tuples, dicts,
// strings, numbers, True, False and None into equivalent JSON text.
func pyLiteralToJSON(src string) ([]byte, error) {
	var out strings.Builder
	out.Grow(len(src))

	for i := 0; i < len(src); {
		c := src[i]
		switch {
		case c == '\'' || c == '"':
			s, n, err := readPyString(src[i:])
			if err != nil {
				return nil, fmt.Errorf("%w: offset %d: %v", ErrPyLiteral, i, err)
			}
			quoted, err := json.Marshal(s)
			if err != nil {
				return nil, err
			}
			out.Write(quoted)
			i += n
		case c == '(':
			out.WriteByte('[')
			i++
		case c == ')':
			out.WriteByte(']')
			i++
		case isIdentStart(c) && !inNumber(src, i):
			j := i
			for j < len(src) && isIdentStart(src[j]) {
				j++
			}
			switch word := src[i:j]; word {
			case "True":
				out.WriteString("true")
			case "False":
				out.WriteString("false")
			case "None":
				out.WriteString("null")
			default:
				return nil, fmt.Errorf("%w: unexpected name %q at offset %d", ErrPyLiteral, word, i)
			}
			i = j
		default:
			out.WriteByte(c)
			i++
		}
	}
	return []byte(out.String()), nil
}

// inNumber reports whether src[i] continues a numeric literal, as the e of
// 1e-05 does.
func inNumber(src string, i int) bool {
	return i > 0 && (src[i-1] >= '0' && src[i-1] <= '9' || src[i-1] == '.')
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// readPyString decodes the quoted string at the start of src and returns it
// with the number of bytes consumed.
func readPyString(src string) (string, int, error) {
	quote := src[0]
	var b strings.Builder
	for i := 1; i < len(src); {
		c := src[i]
		switch {
		case c == quote:
			return b.String(), i + 1, nil
		case c == '\\' && i+1 < len(src):
			n, err := writePyEscape(&b, src[i:])
			if err != nil {
				return "", 0, err
			}
			i += n
		default:
			_, size := utf8.DecodeRuneInString(src[i:])
			b.WriteString(src[i : i+size])
			i += size
		}
	}
	return "", 0, errors.New("unterminated string")
}

// writePyEscape decodes the escape sequence at the start of src (which
// begins with a backslash) and returns its length.
func writePyEscape(b *strings.Builder, src string) (int, error) {
	switch e := src[1]; e {
	case '\\', '\'', '"':
		b.WriteByte(e)
	case 'n':
		b.WriteByte('\n')
	case 't':
		b.WriteByte('\t')
	case 'r':
		b.WriteByte('\r')
	case 'x', 'u', 'U':
		width := 2
		switch e {
		case 'u':
			width = 4
		case 'U':
			width = 8
		}
		if len(src) < 2+width {
			return 0, fmt.Errorf("truncated \\%c escape", e)
		}
		code, err := strconv.ParseUint(src[2:2+width], 16, 32)
		if err != nil {
			return 0, fmt.Errorf("bad \\%c escape: %w", e, err)
		}
		b.WriteRune(rune(code))
		return 2 + width, nil
	default:
		// Unknown escapes keep their backslash, as in Python.
		b.WriteByte('\\')
		b.WriteByte(e)
	}
	return 2, nil
}

// credit is the subset of a TMDB cast, crew or genre entry the pipeline
// reads.
type credit struct {
	Name string `json:"name"`
	Job  string `json:"job"`
}

// parseCredits decodes a cast, crew or genres column. Empty cells decode to
// no entries.
func parseCredits(cell string) ([]credit, error) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return nil, nil
	}
	data, err := pyLiteralToJSON(cell)
	if err != nil {
		return nil, err
	}
	var out []credit
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPyLiteral, err)
	}
	return out, nil
}
