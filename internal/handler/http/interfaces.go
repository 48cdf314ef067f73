package http

import (
	"github.com/MKhiriev/oriole/internal/auth"
	"github.com/MKhiriev/oriole/internal/route"
)

//go:generate mockgen -source=interfaces.go -destination=../../mock/http_handler_mock.go -package=mock

// TokenDecoder verifies a bearer token and returns its claims.
// *auth.Authenticator satisfies it.
type TokenDecoder interface {
	Decode(tokenString string) (auth.Claims, error)
}

// RouteTable resolves request paths, relative to the gateway prefix, to
// routes. *route.Registry satisfies it.
type RouteTable interface {
	FindRoute(path string) (route.Route, error)
	RequiresAuth(path string) (bool, error)
	Routes() []route.Route
}
