package handler

import (
	"github.com/MKhiriev/oriole/internal/config"
	"github.com/MKhiriev/oriole/internal/handler/grpc"
	"github.com/MKhiriev/oriole/internal/handler/http"
	"github.com/MKhiriev/oriole/internal/logger"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

// NewHandlers creates a handler for every transport that has an address in
// cfg. Both transports share the same token decoder, so a token accepted by
// one is accepted by the other.
func NewHandlers(routes http.RouteTable, tokens http.TokenDecoder, metrics *http.Metrics, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(routes, tokens, metrics, cfg, logger.WithComponent("http"))
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(tokens, grpc.DefaultPublicMethods, logger.WithComponent("grpc"))
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
