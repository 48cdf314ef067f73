// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Audience and secret are deliberately not required here: the authenticator
// reports them as a misconfiguration on first use, so commands that never
// touch tokens still start.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: empty HTTP address", ErrInvalidServerConfigs)
	}

	if cfg.Server.PathPrefix != "" && !strings.HasPrefix(cfg.Server.PathPrefix, "/") {
		return fmt.Errorf("%w: path prefix %q must start with '/'", ErrInvalidServerConfigs, cfg.Server.PathPrefix)
	}

	if cfg.Auth.TTLSeconds <= 0 {
		return fmt.Errorf("%w: default TTL must be positive, got %d", ErrInvalidAuthConfigs, cfg.Auth.TTLSeconds)
	}

	if cfg.Backend != "" && cfg.Backend != "sync" {
		return fmt.Errorf("%w: got %q", ErrUnknownBackendMode, cfg.Backend)
	}

	return nil
}
