package http

import (
	"errors"
	"net/http"
	"reflect"

	"github.com/MKhiriev/oriole/internal/auth"
	"github.com/MKhiriev/oriole/internal/route"
)

// Error codes written to the "code" field of error bodies.
const (
	codeMissingBearerToken  = "missing_bearer_token"
	codeBearerTokenRequired = "bearer_token_required"
	codeInvalidToken        = "invalid_token"
	codeExpiredToken        = "expired_token"
	codeEndpointNotFound    = "endpoint_not_found"
	codeMethodNotAllowed    = "method_not_allowed"

	// Codes of errors raised outside the endpoint dispatch (unknown paths,
	// unrouted verbs, panics).
	codeHTTPNotFound            = "NotFound"
	codeHTTPMethodNotAllowed    = "MethodNotAllowed"
	codeHTTPInternalServerError = "InternalServerError"
)

type errorResponse struct {
	status int
	code   string
}

var errorStatusMap = map[error]errorResponse{
	ErrMissingBearerToken:    {status: http.StatusUnauthorized, code: codeMissingBearerToken},
	ErrBearerTokenRequired:   {status: http.StatusUnauthorized, code: codeBearerTokenRequired},
	ErrDiagnosticRouteMethod: {status: http.StatusMethodNotAllowed, code: codeMethodNotAllowed},

	auth.ErrInvalidToken:     {status: http.StatusUnauthorized, code: codeInvalidToken},
	auth.ErrExpiredToken:     {status: http.StatusUnauthorized, code: codeExpiredToken},
	auth.ErrMisconfiguration: {status: http.StatusInternalServerError, code: codeHTTPInternalServerError},

	route.ErrRouteNotFound:      {status: http.StatusNotFound, code: codeEndpointNotFound},
	route.ErrMethodNotSupported: {status: http.StatusMethodNotAllowed, code: codeMethodNotAllowed},
}

// responseFromError picks the status and code for err. Endpoint errors of
// type *route.HTTPError carry their own. Anything unknown is a 500 whose
// code is the type name of err.
func responseFromError(err error) errorResponse {
	var httpErr *route.HTTPError
	if errors.As(err, &httpErr) {
		return errorResponse{status: httpErr.Status, code: httpErr.Code}
	}

	for target, resp := range errorStatusMap {
		if errors.Is(err, target) {
			return resp
		}
	}

	return errorResponse{status: http.StatusInternalServerError, code: typeName(err)}
}

// typeName returns the name of the dynamic type of v, looking through
// pointers. Unnamed types yield "InternalServerError".
func typeName(v any) string {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Name() == "" {
		return codeHTTPInternalServerError
	}
	return t.Name()
}

// typePackage returns the import path of the dynamic type of v, looking
// through pointers.
func typePackage(v any) string {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return ""
	}
	return t.PkgPath()
}
