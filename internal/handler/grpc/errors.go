// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import "errors"

var (
	// ErrMissingBearerToken is returned when the "authorization" metadata is
	// absent.
	ErrMissingBearerToken = errors.New("missing authorization metadata")

	// ErrBearerTokenRequired is returned when the "authorization" metadata
	// does not use the "Bearer " scheme.
	ErrBearerTokenRequired = errors.New("authorization metadata must use the Bearer scheme")
)
