// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] and by the config
// file parser.
var (
	// ErrInvalidServerConfigs indicates invalid transport settings
	// (for example, missing HTTP address or a path prefix without a leading slash).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAuthConfigs indicates invalid token settings
	// (for example, a non-positive default TTL).
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
	// ErrUnknownBackendMode is returned when the config file names a backend
	// other than "sync".
	ErrUnknownBackendMode = errors.New(`the "backend" configuration can only be "sync"`)
	// ErrInvalidRoutesBlock is returned when the "routes" section of the
	// config file is not a mapping of pattern to route settings.
	ErrInvalidRoutesBlock = errors.New(`"routes" must be a mapping of path pattern to route settings`)
)
