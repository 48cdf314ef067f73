package grpc

import (
	"github.com/MKhiriev/oriole/internal/auth"
	"github.com/MKhiriev/oriole/internal/logger"
	"github.com/MKhiriev/oriole/internal/utils"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// TokenDecoder verifies a bearer token and returns its claims.
// *auth.Authenticator satisfies it.
type TokenDecoder interface {
	Decode(tokenString string) (auth.Claims, error)
}

// DefaultPublicMethods are served without a bearer token.
var DefaultPublicMethods = []string{
	healthpb.Health_Check_FullMethodName,
	healthpb.Health_Watch_FullMethodName,
}

// Handler is the root gRPC transport handler.
//
// It owns the bearer-token interceptors and the health service. Every
// method not listed as public requires a valid token in the
// "authorization" metadata, using the same rules as the HTTP gate.
type Handler struct {
	tokens        TokenDecoder
	health        *health.Server
	publicMethods map[string]struct{}

	newRequestID func() string

	logger *logger.Logger
}

// NewHandler constructs a [Handler]. publicMethods are full method names
// (e.g. "/grpc.health.v1.Health/Check") that skip authentication.
func NewHandler(tokens TokenDecoder, publicMethods []string, logger *logger.Logger) *Handler {
	logger.Debug().Strs("public_methods", publicMethods).Msg("gRPC handler created")

	public := make(map[string]struct{}, len(publicMethods))
	for _, m := range publicMethods {
		public[m] = struct{}{}
	}

	return &Handler{
		tokens:        tokens,
		health:        health.NewServer(),
		publicMethods: public,
		newRequestID:  utils.NewUUIDGenerator().Generate,
		logger:        logger,
	}
}

// ServerOptions returns the interceptors to pass to grpc.NewServer.
func (h *Handler) ServerOptions() []grpc.ServerOption {
	return []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(h.unaryAuth),
		grpc.ChainStreamInterceptor(h.streamAuth),
	}
}

// Register attaches the services of the handler to s and marks them
// serving.
func (h *Handler) Register(s grpc.ServiceRegistrar) {
	healthpb.RegisterHealthServer(s, h.health)
	h.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
}

// Shutdown flips every health status to NOT_SERVING.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}
