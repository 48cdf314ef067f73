package http

import (
	"strings"

	"github.com/MKhiriev/oriole/internal/config"
	"github.com/MKhiriev/oriole/internal/logger"
	"github.com/MKhiriev/oriole/internal/utils"
)

// Handler is the request pipeline of the gateway: it authenticates requests
// to secured routes, dispatches them to the endpoint serving the route and
// finalizes every response.
type Handler struct {
	routes  RouteTable
	tokens  TokenDecoder
	metrics *Metrics

	prefix      string
	metricsPath string

	newRequestID func() string

	logger *logger.Logger
}

// NewHandler builds a Handler. metrics may be nil, in which case nothing is
// recorded and no metrics route is exposed.
func NewHandler(routes RouteTable, tokens TokenDecoder, metrics *Metrics, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Str("prefix", cfg.PathPrefix).Msg("http handler created")
	return &Handler{
		routes:       routes,
		tokens:       tokens,
		metrics:      metrics,
		prefix:       strings.TrimRight(cfg.PathPrefix, "/"),
		metricsPath:  cfg.MetricsPath,
		newRequestID: utils.NewUUIDGenerator().Generate,
		logger:       logger,
	}
}
