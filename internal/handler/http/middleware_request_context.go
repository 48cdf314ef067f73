package http

import (
	"net/http"

	"github.com/MKhiriev/oriole/internal/utils"
	"github.com/rs/zerolog"
)

// withRequestContext assigns a fresh request id, stores an empty
// utils.RequestContext and a request-scoped logger tagged with the id in
// the request context.
func (h *Handler) withRequestContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := h.newRequestID()

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("request_id", requestID)
		})

		ctx := l.WithContext(r.Context())
		ctx = utils.WithRequestContext(ctx, utils.RequestContext{ID: requestID})

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
