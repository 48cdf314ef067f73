// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources. For every field the first
// source that sets a non-zero value wins, in the following order:
//  1. Command-line flags
//  2. Environment variables
//  3. YAML config file (routes and optional server/auth blocks)
//  4. Built-in defaults
//
// The main entry point is [GetStructuredConfig].
package config
