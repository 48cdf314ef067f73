package http

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/oriole/internal/logger"
)

// withRecovery turns a panic in the rest of the chain into an
// InternalServerError body. When the status line is already out the
// response is left as it is. http.ErrAbortHandler is re-raised so the server
// aborts the response as usual.
func (h *Handler) withRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rw := &responseWriter{ResponseWriter: w}

		defer func() {
			rvr := recover()
			if rvr == nil {
				return
			}
			if rvr == http.ErrAbortHandler {
				panic(rvr)
			}

			logger.FromRequest(r).Error().
				Str("panic", fmt.Sprint(rvr)).
				Bytes("stack", debug.Stack()).
				Bool("header_written", rw.wroteHeader).
				Msg("recovered from panic")

			if rw.wroteHeader {
				return
			}
			h.writeError(w, r, http.StatusInternalServerError, codeHTTPInternalServerError, nil)
		}()

		next.ServeHTTP(rw, r)
	})
}
