// Package utils provides general-purpose helper utilities
// used across different parts of the gateway.
// Includes the per-request context, type-safe context keys,
// request id generation and JSON response writing.
package utils

import (
	"context"

	"github.com/MKhiriev/oriole/internal/auth"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// RequestCtxKey is the key under which the pipeline stores the
// RequestContext of the in-flight request.
var RequestCtxKey = contextKey("request")

// RequestContext is the per-request state created by the pipeline.
//
// ID is assigned when the request is received. Claims and UserID stay empty
// until the request passes the authentication gate; then they hold the
// decoded token claims and its "sub" claim.
type RequestContext struct {
	ID     string
	Claims auth.Claims
	UserID string
}

// Authenticated reports whether the request carried a valid bearer token.
func (rc RequestContext) Authenticated() bool {
	return rc.Claims != nil
}

// WithRequestContext returns a copy of ctx carrying rc.
//
// The pipeline replaces the stored value instead of mutating it, so a
// RequestContext read by an endpoint never changes underneath it.
func WithRequestContext(ctx context.Context, rc RequestContext) context.Context {
	return context.WithValue(ctx, RequestCtxKey, rc)
}

// RequestFromContext retrieves the RequestContext stored in ctx.
//
// Returns the value and an ok flag:
//   - ok == true : a RequestContext is present
//   - ok == false: ctx was not created by the pipeline
func RequestFromContext(ctx context.Context) (RequestContext, bool) {
	rc, ok := ctx.Value(RequestCtxKey).(RequestContext)
	return rc, ok
}

// RequestIDFromContext is a shortcut for RequestFromContext(ctx).ID.
func RequestIDFromContext(ctx context.Context) string {
	rc, _ := RequestFromContext(ctx)
	return rc.ID
}
