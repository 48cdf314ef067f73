package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/oriole/internal/logger"
	"github.com/MKhiriev/oriole/internal/route"
	"github.com/MKhiriev/oriole/internal/utils"
	"github.com/MKhiriev/oriole/models"
)

// diagnosticPath is the reserved path that lists the route table.
const diagnosticPath = "all"

// dispatch resolves the route for the request path and calls the endpoint
// method matching the request verb. The endpoint result is written as the
// JSON body of a 200 response.
func (h *Handler) dispatch(w http.ResponseWriter, r *http.Request) {
	path := requestPath(r)

	if path == diagnosticPath {
		h.listRoutes(w, r)
		return
	}

	rt, err := h.routes.FindRoute(path)
	if err != nil {
		h.writeErrorFrom(w, r, err, nil)
		return
	}

	result, err := route.Invoke(rt.Endpoint, r)
	if err != nil {
		var details any
		if errors.Is(err, route.ErrMethodNotSupported) {
			details = models.MethodNotAllowedDetails{
				HandlerClassName:  typeName(rt.Endpoint),
				HandlerModuleName: typePackage(rt.Endpoint),
				Method:            strings.ToUpper(r.Method),
			}
		}
		var httpErr *route.HTTPError
		if errors.As(err, &httpErr) {
			details = httpErr.Details
		}
		h.writeErrorFrom(w, r, err, details)
		return
	}

	h.writeJSON(w, r, result, http.StatusOK)
}

func (h *Handler) listRoutes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeErrorFrom(w, r, ErrDiagnosticRouteMethod, nil)
		return
	}
	h.writeJSON(w, r, h.routes.Routes(), http.StatusOK)
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	h.writeError(w, r, http.StatusNotFound, codeHTTPNotFound, nil)
}

func (h *Handler) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	h.writeError(w, r, http.StatusMethodNotAllowed, codeHTTPMethodNotAllowed, nil)
}

// writeErrorFrom writes the error body mapped from err. Errors that map to a
// 5xx status are logged.
func (h *Handler) writeErrorFrom(w http.ResponseWriter, r *http.Request, err error, details any) {
	resp := responseFromError(err)
	if resp.status >= http.StatusInternalServerError {
		logger.FromRequest(r).Err(err).Str("code", resp.code).Msg("endpoint failed")
	}
	h.writeError(w, r, resp.status, resp.code, details)
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, status int, code string, details any) {
	h.writeJSON(w, r, models.ErrorResponse{Code: code, Details: details}, status)
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}
