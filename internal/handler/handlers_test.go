package handler

import (
	"testing"

	"github.com/MKhiriev/oriole/internal/auth"
	"github.com/MKhiriev/oriole/internal/config"
	"github.com/MKhiriev/oriole/internal/logger"
	"github.com/MKhiriev/oriole/internal/route"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDeps() (*route.Registry, *auth.Authenticator) {
	registry := route.NewRegistry(route.Catalog{}, logger.Nop())
	tokens := auth.New(config.Auth{Algorithm: "HS256", Audience: "aud", Secret: "secret"})
	return registry, tokens
}

func TestNewHandlers(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.Server
		wantHTTP bool
		wantGRPC bool
		wantErr  error
	}{
		{
			name:     "both addresses",
			cfg:      config.Server{HTTPAddress: ":8080", GRPCAddress: ":9090"},
			wantHTTP: true,
			wantGRPC: true,
		},
		{
			name:     "only HTTP",
			cfg:      config.Server{HTTPAddress: ":8080"},
			wantHTTP: true,
		},
		{
			name:     "only gRPC",
			cfg:      config.Server{GRPCAddress: ":9090"},
			wantGRPC: true,
		},
		{
			name:    "no addresses",
			cfg:     config.Server{},
			wantErr: errNoHandlersAreCreated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry, tokens := newTestDeps()

			h, err := NewHandlers(registry, tokens, nil, tt.cfg, logger.Nop())
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, h)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, h)
			assert.Equal(t, tt.wantHTTP, h.HTTP != nil)
			assert.Equal(t, tt.wantGRPC, h.GRPC != nil)
		})
	}
}

// TestNewHandlers_IndependentInstances verifies that two calls to NewHandlers
// produce independent *Handlers instances.
func TestNewHandlers_IndependentInstances(t *testing.T) {
	cfg := config.Server{HTTPAddress: ":8080", GRPCAddress: ":9090"}
	registry, tokens := newTestDeps()

	h1, err1 := NewHandlers(registry, tokens, nil, cfg, logger.Nop())
	h2, err2 := NewHandlers(registry, tokens, nil, cfg, logger.Nop())

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.NotSame(t, h1, h2)
	assert.NotSame(t, h1.HTTP, h2.HTTP)
	assert.NotSame(t, h1.GRPC, h2.GRPC)
}
