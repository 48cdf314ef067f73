package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// dispatchMethods are the verbs routed to endpoints. OPTIONS never reaches
// the router: preflight answers it first.
var dispatchMethods = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodDelete,
	http.MethodPatch,
}

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(
		h.withRequestContext,
		h.withFinalHeaders,
		h.withLogging,
		h.withMetrics,
		h.withRecovery,
		withPreflight,
	)

	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.methodNotAllowed)

	if h.metrics != nil && h.metricsPath != "" {
		router.Method(http.MethodGet, h.metricsPath, h.metrics.Handler())
	}

	// every path under the prefix goes through the gate to the route table
	router.Group(func(r chi.Router) {
		r.Use(h.authGate)
		for _, method := range dispatchMethods {
			r.MethodFunc(method, h.prefix+"/*", h.dispatch)
		}
	})

	return router
}

// requestPath returns the request path relative to the gateway prefix.
func requestPath(r *http.Request) string {
	return chi.URLParam(r, "*")
}
