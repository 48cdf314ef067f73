// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package route

import (
	"fmt"
	"regexp"
	"sync"

	"github.com/MKhiriev/oriole/internal/config"
	"github.com/MKhiriev/oriole/internal/logger"
)

// Route binds a path pattern to an Endpoint.
type Route struct {
	// Pattern is the regular expression as configured.
	Pattern string `json:"pattern"`

	// Handler is the catalog reference the Endpoint was resolved from.
	Handler string `json:"handler"`

	// Secured routes require a valid bearer token.
	Secured bool `json:"secured"`

	Endpoint Endpoint `json:"-"`

	re *regexp.Regexp
}

// Registry is the ordered route table.
//
// Routes are normally mapped once at startup and only read afterwards; the
// table is still guarded by a RWMutex so routes mapped later are serialized
// against lookups.
type Registry struct {
	mu      sync.RWMutex
	routes  []*Route
	catalog Catalog
	logger  *logger.Logger
}

// NewRegistry returns an empty Registry that resolves handler references
// through catalog.
func NewRegistry(catalog Catalog, log *logger.Logger) *Registry {
	return &Registry{
		catalog: catalog,
		logger:  log,
	}
}

// Map adds one route per entry, in order. It stops at the first entry that
// cannot be mapped.
func (r *Registry) Map(entries []config.RouteEntry) error {
	for _, entry := range entries {
		if err := r.MapOne(entry); err != nil {
			return err
		}
	}
	return nil
}

// MapOne resolves entry.Handler through the catalog, compiles entry.Pattern
// and appends the route to the table. Mapping a pattern that is already
// registered replaces that route in place, keeping its position.
func (r *Registry) MapOne(entry config.RouteEntry) error {
	if entry.Handler == "" {
		return fmt.Errorf("%w: %q", ErrMissingHandlerReference, entry.Pattern)
	}

	endpoint, ok := r.catalog.Resolve(entry.Handler)
	if !ok {
		return fmt.Errorf("%w: %q for route %q", ErrUnknownHandlerReference, entry.Handler, entry.Pattern)
	}

	re, err := regexp.Compile(`^(?:` + entry.Pattern + `)`)
	if err != nil {
		return fmt.Errorf("%w: %q: %w", ErrInvalidPattern, entry.Pattern, err)
	}

	route := &Route{
		Pattern:  entry.Pattern,
		Handler:  entry.Handler,
		Secured:  entry.Secured,
		Endpoint: endpoint,
		re:       re,
	}

	r.mu.Lock()
	replaced := false
	for i, existing := range r.routes {
		if existing.Pattern == entry.Pattern {
			r.routes[i] = route
			replaced = true
			break
		}
	}
	if !replaced {
		r.routes = append(r.routes, route)
	}
	r.mu.Unlock()

	r.logger.Info().
		Str("pattern", entry.Pattern).
		Str("handler", entry.Handler).
		Bool("secured", entry.Secured).
		Bool("replaced", replaced).
		Msg("route mapped")

	return nil
}

// FindRoute returns the first route, in mapping order, whose pattern matches
// at the start of path.
func (r *Registry) FindRoute(path string) (Route, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, route := range r.routes {
		if route.re.MatchString(path) {
			return *route, nil
		}
	}

	return Route{}, fmt.Errorf("%w: %q", ErrRouteNotFound, path)
}

// RequiresAuth reports whether the route serving path is secured.
func (r *Registry) RequiresAuth(path string) (bool, error) {
	route, err := r.FindRoute(path)
	if err != nil {
		return false, err
	}
	return route.Secured, nil
}

// Routes returns a snapshot of the table in mapping order.
func (r *Registry) Routes() []Route {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := make([]Route, 0, len(r.routes))
	for _, route := range r.routes {
		snapshot = append(snapshot, *route)
	}
	return snapshot
}

// Len returns the number of mapped routes.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.routes)
}
