package http

import (
	"net/http"

	"github.com/felixge/httpsnoop"
)

func (h *Handler) withMetrics(next http.Handler) http.Handler {
	if h.metrics == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m := httpsnoop.CaptureMetrics(next, w, r)
		h.metrics.observe(r.Method, m.Code, m.Duration)
	})
}
