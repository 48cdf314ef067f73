package server

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/oriole/internal/auth"
	"github.com/MKhiriev/oriole/internal/config"
	"github.com/MKhiriev/oriole/internal/endpoint"
	"github.com/MKhiriev/oriole/internal/handler"
	"github.com/MKhiriev/oriole/internal/logger"
	"github.com/MKhiriev/oriole/internal/route"
	"github.com/MKhiriev/oriole/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

func newTestHandlers(t *testing.T, cfg config.Server) *handler.Handlers {
	t.Helper()

	registry := route.NewRegistry(endpoint.Catalog(models.NewAppBuildInfo("", "", "")), logger.Nop())
	require.NoError(t, registry.Map([]config.RouteEntry{
		{Pattern: "ping", Handler: endpoint.RefPing},
	}))
	tokens := auth.New(config.Auth{Algorithm: "HS256", Audience: "aud", Secret: "secret"})

	handlers, err := handler.NewHandlers(registry, tokens, nil, cfg, logger.Nop())
	require.NoError(t, err)
	return handlers
}

// occupiedAddress returns the address of a listener kept open for the
// duration of the test.
func occupiedAddress(t *testing.T) string {
	t.Helper()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { l.Close() })

	return l.Addr().String()
}

func TestNewServer_NoServers(t *testing.T) {
	s, err := NewServer(&handler.Handlers{}, config.Server{}, logger.Nop())

	assert.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, s)
}

func TestNewServer_BindErrors(t *testing.T) {
	busy := occupiedAddress(t)

	tests := []struct {
		name string
		cfg  config.Server
	}{
		{name: "HTTP address in use", cfg: config.Server{HTTPAddress: busy}},
		{name: "gRPC address in use", cfg: config.Server{GRPCAddress: busy}},
		{name: "gRPC address in use with a free HTTP address", cfg: config.Server{HTTPAddress: "127.0.0.1:0", GRPCAddress: busy}},
		{name: "malformed gRPC address", cfg: config.Server{GRPCAddress: "not-an-address"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewServer(newTestHandlers(t, tt.cfg), tt.cfg, logger.Nop())

			assert.Error(t, err)
			assert.Nil(t, s)
		})
	}
}

func TestNewHTTPServer_Timeouts(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:0", RequestTimeout: 5 * time.Second}

	h, err := newHTTPServer(http.NotFoundHandler(), cfg, logger.Nop())
	require.NoError(t, err)
	defer h.listener.Close()

	assert.Equal(t, h.listener.Addr().String(), h.server.Addr)
	assert.Equal(t, 5*time.Second, h.server.ReadHeaderTimeout)
	assert.Equal(t, 5*time.Second, h.server.ReadTimeout)
	assert.Equal(t, 5*time.Second, h.server.WriteTimeout)
	assert.Equal(t, 10*time.Second, h.server.IdleTimeout)
}

func TestServer_RunAndShutdown(t *testing.T) {
	cfg := config.Server{
		HTTPAddress:    "127.0.0.1:0",
		GRPCAddress:    "127.0.0.1:0",
		PathPrefix:     "/experimental",
		RequestTimeout: 5 * time.Second,
	}

	s, err := NewServer(newTestHandlers(t, cfg), cfg, logger.Nop())
	require.NoError(t, err)
	srv := s.(*server)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.run(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get(fmt.Sprintf("http://%s/experimental/ping", srv.httpServer.listener.Addr()))
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		return resp.StatusCode == http.StatusOK && strings.Contains(string(body), `"reply":"pong"`)
	}, 2*time.Second, 20*time.Millisecond)

	conn, err := grpc.NewClient(
		srv.gRPCServer.gRPCNetListener.Addr().String(),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	defer conn.Close()

	resp, err := healthpb.NewHealthClient(conn).Check(context.Background(), &healthpb.HealthCheckRequest{})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestServer_RunReturnsServeFailure(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:0", PathPrefix: "/experimental"}

	s, err := NewServer(newTestHandlers(t, cfg), cfg, logger.Nop())
	require.NoError(t, err)
	srv := s.(*server)

	// a closed listener makes Serve fail at once
	require.NoError(t, srv.httpServer.listener.Close())

	done := make(chan error, 1)
	go func() { done <- srv.run(context.Background()) }()

	select {
	case err := <-done:
		assert.ErrorContains(t, err, "HTTP server")
	case <-time.After(5 * time.Second):
		t.Fatal("run kept blocking after the HTTP server failed")
	}
}

func TestServer_RunWithoutServers(t *testing.T) {
	s := &server{logger: logger.Nop()}

	assert.Error(t, s.run(context.Background()))
}
