package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/oriole/internal/utils"
)

const (
	serverIdentity = "zg-api/1.0"

	requestIDHeader = "X-Request-ID"
	stateHeader     = "X-State"
)

var (
	corsAllowHeaders = strings.Join([]string{"Content-Type", "Authorization", "X-State", "X-Cors-Mode"}, ", ")
	corsAllowMethods = strings.Join([]string{
		http.MethodPost, http.MethodGet, http.MethodOptions, http.MethodPut, http.MethodDelete, http.MethodPatch,
	}, ", ")
)

// withFinalHeaders sets the headers every response carries, whatever
// produced it: CORS, server identity, request id, X-State passthrough and
// cache prevention. They are set before the rest of the chain runs so they
// are in place when the status line is written.
func (h *Handler) withFinalHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := w.Header()

		allowCORS(header)

		header.Set("Server", serverIdentity)
		header.Set(requestIDHeader, utils.RequestIDFromContext(r.Context()))

		if state, ok := r.Header[stateHeader]; ok && len(state) > 0 {
			header.Set(stateHeader, state[0])
		}

		header.Set("Cache-Control", "no-cache, no-store, must-revalidate")
		header.Set("Pragma", "no-cache")
		header.Set("Expires", "0")

		next.ServeHTTP(w, r)
	})
}

func allowCORS(header http.Header) {
	header.Set("Access-Control-Allow-Origin", "*")
	header.Set("Access-Control-Allow-Headers", corsAllowHeaders)
	header.Set("Access-Control-Allow-Methods", corsAllowMethods)
}
