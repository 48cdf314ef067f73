// Package endpoint contains the endpoints shipped with the gateway and the
// catalog that makes them addressable from the route configuration by
// reference ("endpoint.Ping", "endpoint.DynamicPing", ...).
package endpoint
