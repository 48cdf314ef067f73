package http

import "net/http"

// withPreflight answers every OPTIONS request with an empty 200 before any
// authentication or routing happens.
func withPreflight(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}

		allowCORS(w.Header())
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusOK)
	})
}
