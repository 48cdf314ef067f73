// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication gate when reading the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrMissingBearerToken is returned by the gate when a secured route is
	// requested without an "Authorization" header at all.
	ErrMissingBearerToken = errors.New("missing `Authorization` header")

	// ErrBearerTokenRequired is returned when the "Authorization" header is
	// present but does not use the "Bearer " scheme.
	ErrBearerTokenRequired = errors.New("`Authorization` header must use the Bearer scheme")

	// ErrDiagnosticRouteMethod is returned when the route table is requested
	// with a verb other than GET.
	ErrDiagnosticRouteMethod = errors.New("route table is only available via GET")
)
