// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package route

import "errors"

var (
	// ErrMissingHandlerReference is returned by Map and MapOne when a route
	// entry does not name a handler. It is a startup error.
	ErrMissingHandlerReference = errors.New("route config is missing the handler key")

	// ErrUnknownHandlerReference is returned by Map and MapOne when the
	// handler reference is not present in the Catalog. It is a startup error.
	ErrUnknownHandlerReference = errors.New("unknown handler reference")

	// ErrInvalidPattern is returned when a route pattern is not a valid
	// regular expression.
	ErrInvalidPattern = errors.New("invalid route pattern")

	// ErrRouteNotFound is returned by FindRoute and RequiresAuth when no
	// registered pattern matches the path.
	ErrRouteNotFound = errors.New("route not found")

	// ErrMethodNotSupported is returned by an Endpoint verb method that the
	// endpoint does not implement.
	ErrMethodNotSupported = errors.New("method not supported by endpoint")
)
