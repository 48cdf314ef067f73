// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package auth

import "errors"

// Sentinel errors returned by [Authenticator]. Callers match them with
// [errors.Is]; the pipeline maps each to its own response code.
var (
	// ErrMisconfiguration is returned by every operation while the
	// authenticator lacks an audience or a secret, names an unknown
	// algorithm, or holds key material that cannot be parsed. It is checked
	// before any cryptographic work.
	ErrMisconfiguration = errors.New("authenticator is misconfigured")

	// ErrInvalidToken is returned when a token is malformed, forged, signed
	// with another key or algorithm, or bound to another issuer or audience.
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken is returned when an otherwise valid token is past its
	// "exp" claim.
	ErrExpiredToken = errors.New("expired token")

	// errEncodingFailed wraps signing failures that are not configuration
	// problems (e.g. claims that cannot be serialised).
	errEncodingFailed = errors.New("error occurred during signing token")
)
