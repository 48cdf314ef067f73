// Package route holds the route table of the gateway: an ordered list of
// regular-expression path patterns, each bound to an Endpoint and a secured
// flag.
//
// Patterns are matched against the request path relative to the gateway
// prefix. A pattern matches when it matches at the start of the path; the
// rest of the path is not required to match. The first registered pattern
// that matches wins, so specific patterns must be mapped before general ones.
package route
