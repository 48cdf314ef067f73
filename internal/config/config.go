// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/spf13/pflag"
)

// DefaultConfigFilePath is the route file looked up when neither the
// --config-file flag nor the CONFIG_FILE variable is set. A missing default
// file is not an error; a missing explicitly requested file is.
const DefaultConfigFilePath = "config/app.yml"

// StructuredConfig is the top-level configuration container for the
// oriole gateway. It aggregates all sub-configurations and is populated by
// merging values from flags, environment variables, a YAML file and the
// built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Log holds logger level and output options.
	Log Log `envPrefix:"LOG_"`

	// Auth holds the token authenticator settings.
	Auth Auth `envPrefix:"JWT_"`

	// Server holds network address and routing settings for the HTTP and
	// gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// Routes is the ordered route table read from the config file.
	// Order is significant: earlier patterns shadow later ones.
	Routes []RouteEntry

	// Backend is the request handling mode named by the config file.
	// Only "sync" is supported.
	Backend string

	// ConfigFilePath is the path to the YAML configuration file.
	// Populated via the CONFIG_FILE environment variable or the -f / --config-file flag.
	ConfigFilePath string `env:"CONFIG_FILE"`

	// Debug forces debug-level logging. Set by the -d / --debug flag.
	Debug bool
}

// Log holds logger settings.
type Log struct {
	// Level is a zerolog level name (debug, info, warn, error).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`

	// Options is a space separated list of output options. "minimal" switches
	// to a compact console format without timestamps.
	// Env: LOG_OPTS
	Options string `env:"OPTS"`
}

// Auth holds the signing configuration of the token authenticator.
type Auth struct {
	// Algorithm is the JWS algorithm name (e.g. "HS512", "RS256").
	// Env: JWT_ALGORITHM
	Algorithm string `env:"ALGORITHM" yaml:"algorithm"`

	// Issuer is the "iss" claim of issued tokens and the expected issuer of
	// decoded ones.
	// Env: JWT_ISSUER
	Issuer string `env:"ISSUER" yaml:"issuer"`

	// Audience is the "aud" claim of issued tokens and the expected audience
	// of decoded ones. Required.
	// Env: JWT_AUDIENCE
	Audience string `env:"AUDIENCE" yaml:"audience"`

	// Secret is the HMAC secret, or a PEM encoded private key for asymmetric
	// algorithms. Required.
	// Env: JWT_SECRET
	Secret string `env:"SECRET" yaml:"secret"`

	// TTLSeconds is the default token lifetime in seconds.
	// Env: JWT_TTL
	TTLSeconds int `env:"TTL" yaml:"ttl"`
}

// DefaultTTL returns the default token lifetime as a [time.Duration].
func (a Auth) DefaultTTL() time.Duration {
	return time.Duration(a.TTLSeconds) * time.Second
}

// Server holds network and routing settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:5000").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS" yaml:"http_address"`

	// GRPCAddress is the TCP address of the optional gRPC server.
	// Empty disables gRPC.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS" yaml:"grpc_address"`

	// PathPrefix is the URL prefix under which configured routes are served.
	// Env: SERVER_PATH_PREFIX
	PathPrefix string `env:"PATH_PREFIX" yaml:"path_prefix"`

	// MetricsPath is where Prometheus metrics are exposed. Empty disables it.
	// Env: SERVER_METRICS_PATH
	MetricsPath string `env:"METRICS_PATH" yaml:"metrics_path"`

	// RequestTimeout bounds reading a request and writing its response.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" yaml:"request_timeout"`
}

// RouteEntry is one configured route: a path pattern, a reference to the
// endpoint that serves it, and whether it requires a bearer token.
type RouteEntry struct {
	Pattern string
	Handler string
	Secured bool
}

// defaultConfig returns the built-in defaults, merged last.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Log: Log{
			Level: "info",
		},
		Auth: Auth{
			Algorithm:  "HS512",
			Issuer:     "oriole-issuer",
			TTLSeconds: 3600,
		},
		Server: Server{
			HTTPAddress:    "0.0.0.0:5000",
			PathPrefix:     "/experimental",
			MetricsPath:    "/metrics",
			RequestTimeout: 30 * time.Second,
		},
		ConfigFilePath: DefaultConfigFilePath,
	}
}

// GetStructuredConfig loads, merges, and validates the application
// configuration. flags is the config bound by [RegisterFlags]; it may be nil
// when no command line is involved (tests).
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(flags *StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(flags).
		withEnv().
		withFile().
		withDefaults().
		build()
}

// RegisterFlags binds the command-line flags to a fresh *StructuredConfig and
// returns it. The returned value is populated once fs is parsed.
func RegisterFlags(fs *pflag.FlagSet) *StructuredConfig {
	cfg := new(StructuredConfig)
	bindFlags(fs, cfg)
	return cfg
}
