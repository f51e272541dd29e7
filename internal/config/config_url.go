// Cinegraph - Film Catalog Explorer for Semantic Knowledge Bases
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// validateEndpointURL validates an HTTP/HTTPS service URL.
// Paths are allowed (Fuseki serves datasets under /{dataset}/sparql), query
// parameters and fragments are not.
func validateEndpointURL(rawURL, fieldName string) error {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%s failed to parse URL: %w", fieldName, err)
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("%s scheme must be http or https, got: %s", fieldName, parsedURL.Scheme)
	}

	if parsedURL.Host == "" {
		return fmt.Errorf("%s host is required", fieldName)
	}

	if parsedURL.RawQuery != "" {
		return fmt.Errorf("%s should not contain query parameters, remove: ?%s", fieldName, parsedURL.RawQuery)
	}

	if parsedURL.Fragment != "" {
		return fmt.Errorf("%s should not contain a fragment: #%s", fieldName, parsedURL.Fragment)
	}

	return nil
}

// validateNamespace checks that the vocabulary namespace is an absolute IRI
// ending in '#' or '/', so that local names can be appended to it.
func validateNamespace(ns string) error {
	if ns == "" {
		return fmt.Errorf("namespace is required")
	}
	if strings.ContainsAny(ns, "<>\"{}|^`\\ ") {
		return fmt.Errorf("namespace contains characters not allowed in an IRI: %q", ns)
	}
	parsed, err := url.Parse(ns)
	if err != nil {
		return fmt.Errorf("failed to parse namespace: %w", err)
	}
	if parsed.Scheme == "" {
		return fmt.Errorf("namespace must be an absolute IRI, got: %s", ns)
	}
	if !strings.HasSuffix(ns, "#") && !strings.HasSuffix(ns, "/") {
		return fmt.Errorf("namespace must end with '#' or '/', got: %s", ns)
	}
	return nil
}
