// Package http implements the HTTP request pipeline of the gateway.
//
// It exposes the chi router, the dispatch of requests to route endpoints and
// the middleware that surrounds it. Cross-cutting concerns such as request
// identity, response headers, access logging, metrics, panic recovery, CORS
// preflight and bearer-token authentication are handled in this package
// before a request reaches an endpoint.
package http
