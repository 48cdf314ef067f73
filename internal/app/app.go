// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app assembles the long-lived objects of the gateway from a loaded
// configuration: the token authenticator, the route registry populated from
// the configured routes, and the metrics registry.
//
// Every command of the CLI builds one [App] and works through it.
package app

import (
	"fmt"
	"time"

	"github.com/MKhiriev/oriole/internal/auth"
	"github.com/MKhiriev/oriole/internal/config"
	"github.com/MKhiriev/oriole/internal/endpoint"
	"github.com/MKhiriev/oriole/internal/handler"
	httpHandler "github.com/MKhiriev/oriole/internal/handler/http"
	"github.com/MKhiriev/oriole/internal/logger"
	"github.com/MKhiriev/oriole/internal/route"
	"github.com/MKhiriev/oriole/internal/server"
	"github.com/MKhiriev/oriole/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type App struct {
	Config    *config.StructuredConfig
	Logger    *logger.Logger
	BuildInfo models.AppBuildInfo

	Authenticator *auth.Authenticator
	Registry      *route.Registry
	Metrics       *httpHandler.Metrics

	prometheus *prometheus.Registry
}

// New builds an App from cfg. Every configured route is mapped; the first
// route that cannot be mapped fails construction.
func New(cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	registry := route.NewRegistry(endpoint.Catalog(buildInfo), log.WithComponent("routes"))
	if err := registry.Map(cfg.Routes); err != nil {
		return nil, fmt.Errorf("error mapping routes: %w", err)
	}
	if registry.Len() == 0 {
		log.Warn().Str("config_file", cfg.ConfigFilePath).Msg("no routes configured, every request will get 404")
	}

	promRegistry := prometheus.NewRegistry()
	promRegistry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	metrics, err := httpHandler.NewMetrics(promRegistry)
	if err != nil {
		return nil, fmt.Errorf("error creating metrics: %w", err)
	}

	return &App{
		Config:        cfg,
		Logger:        log,
		BuildInfo:     buildInfo,
		Authenticator: auth.New(cfg.Auth),
		Registry:      registry,
		Metrics:       metrics,
		prometheus:    promRegistry,
	}, nil
}

// Handlers creates the transport handlers for the configured addresses.
func (a *App) Handlers() (*handler.Handlers, error) {
	return handler.NewHandlers(a.Registry, a.Authenticator, a.Metrics, a.Config.Server, a.Logger)
}

// Serve starts every configured transport and blocks until a stop signal
// is received or a transport fails. Bind and serve failures are returned.
func (a *App) Serve() error {
	handlers, err := a.Handlers()
	if err != nil {
		return fmt.Errorf("error creating handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, a.Config.Server, a.Logger)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	return srv.RunServer()
}

// IssueToken signs a token for subject carrying scopes and returns it
// together with the claims it was signed with. ttl == 0 selects the
// configured default.
func (a *App) IssueToken(subject string, scopes []string, ttl time.Duration) (string, auth.Claims, error) {
	token, err := a.Authenticator.Encode(auth.Claims{
		"sub":    subject,
		"scopes": scopes,
	}, ttl)
	if err != nil {
		return "", nil, err
	}

	claims, err := a.Authenticator.Decode(token)
	if err != nil {
		return "", nil, err
	}

	return token, claims, nil
}
