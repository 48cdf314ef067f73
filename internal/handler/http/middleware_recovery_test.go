package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/oriole/internal/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestWithRecovery(t *testing.T) {
	tests := []struct {
		name       string
		next       http.HandlerFunc
		wantStatus int
		wantBody   string
	}{
		{
			name: "panic before anything is written",
			next: func(http.ResponseWriter, *http.Request) {
				panic("nothing written")
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"code":"InternalServerError","details":null}`,
		},
		{
			name: "panic after the body started",
			next: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte(`{"partial":`))
				panic("half written")
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"partial":`,
		},
		{
			name: "panic after an explicit status",
			next: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusAccepted)
				panic("status written")
			},
			wantStatus: http.StatusAccepted,
			wantBody:   ``,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logBuf bytes.Buffer
			h := &Handler{logger: logger.Nop()}

			req := injectLogger(httptest.NewRequest(http.MethodGet, "/experimental/x", nil), zerolog.New(&logBuf))
			rr := httptest.NewRecorder()

			assert.NotPanics(t, func() {
				h.withRecovery(tt.next).ServeHTTP(rr, req)
			})

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantBody, rr.Body.String())
			assert.Contains(t, logBuf.String(), "recovered from panic")
		})
	}
}

func TestWithRecovery_AbortHandlerIsRepanicked(t *testing.T) {
	h := &Handler{logger: logger.Nop()}
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(http.ErrAbortHandler)
	})

	req := injectLogger(httptest.NewRequest(http.MethodGet, "/experimental/x", nil), zerolog.Nop())

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		h.withRecovery(next).ServeHTTP(httptest.NewRecorder(), req)
	})
}
