// Cinegraph - Film Catalog Explorer for Semantic Knowledge Bases
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

/*
Package sparql builds parameterized SPARQL queries and executes them over the
SPARQL 1.1 protocol.

# Templates

Queries are declared once with Prepare and rendered with bound Terms:

	var filmDetails = sparql.Prepare("film_details", `
	    SELECT ?titre WHERE { ${film} ns:titre ?titre }
	`)

	film, err := sparql.IRI(uri)
	if err != nil {
	    return err // errors.Is(err, sparql.ErrInvalidIRI)
	}
	q, err := filmDetails.Render(sparql.Params{"film": film})

Caller data reaches a query only through IRI, LocalName, Literal, Integer and
Values. IRIs are checked against the IRIREF production and literals are
escaped, so a crafted identifier or search term cannot change the structure of
the query.

# Protocol

Client.Select and Client.Ask POST the query text with
Content-Type application/sparql-query and decode the
application/sparql-results+json response. A non-2xx status is reported as
*EndpointError. Every query is timed in sparql_query_duration_seconds and
failures are counted in sparql_query_errors_total.
*/
package sparql
