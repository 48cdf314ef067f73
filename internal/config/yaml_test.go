package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseYAML_RoutesKeepFileOrder(t *testing.T) {
	path := writeTempYAMLConfig(t, `
routes:
  zeta/\d+:
    handler: endpoint.DynamicPing
    secured: true
  alpha:
    handler: endpoint.Ping
  zeta:
    handler: endpoint.Ping
    secured: false
  middle: {handler: endpoint.WhoAmI, secured: true}
`)

	cfg, err := parseYAML(path)
	require.NoError(t, err)

	assert.Equal(t, []RouteEntry{
		{Pattern: `zeta/\d+`, Handler: "endpoint.DynamicPing", Secured: true},
		{Pattern: "alpha", Handler: "endpoint.Ping"},
		{Pattern: "zeta", Handler: "endpoint.Ping"},
		{Pattern: "middle", Handler: "endpoint.WhoAmI", Secured: true},
	}, cfg.Routes)
}

func TestParseYAML_RouteWithoutHandler(t *testing.T) {
	path := writeTempYAMLConfig(t, `
routes:
  orphan:
    secured: true
  empty:
`)

	cfg, err := parseYAML(path)
	require.NoError(t, err)

	assert.Equal(t, []RouteEntry{
		{Pattern: "orphan", Secured: true},
		{Pattern: "empty"},
	}, cfg.Routes)
}

func TestParseYAML_ServerAndAuthBlocks(t *testing.T) {
	path := writeTempYAMLConfig(t, `
backend: sync
server:
  http_address: 127.0.0.1:8000
  grpc_address: 127.0.0.1:9000
  path_prefix: /v1
  metrics_path: ""
  request_timeout: 5s
auth:
  algorithm: HS256
  issuer: yaml-issuer
  audience: yaml-audience
  secret: yaml-secret
  ttl: 60
`)

	cfg, err := parseYAML(path)
	require.NoError(t, err)

	assert.Equal(t, "sync", cfg.Backend)
	assert.Equal(t, Server{
		HTTPAddress:    "127.0.0.1:8000",
		GRPCAddress:    "127.0.0.1:9000",
		PathPrefix:     "/v1",
		RequestTimeout: 5 * time.Second,
	}, cfg.Server)
	assert.Equal(t, Auth{
		Algorithm:  "HS256",
		Issuer:     "yaml-issuer",
		Audience:   "yaml-audience",
		Secret:     "yaml-secret",
		TTLSeconds: 60,
	}, cfg.Auth)
	assert.Empty(t, cfg.Routes)
}

func TestParseYAML_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name:    "routes is a list",
			content: "routes:\n  - ping\n",
			wantErr: ErrInvalidRoutesBlock,
		},
		{
			name:    "routes is a scalar",
			content: "routes: ping\n",
			wantErr: ErrInvalidRoutesBlock,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseYAML(writeTempYAMLConfig(t, tt.content))
			assert.Nil(t, cfg)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParseYAML_MalformedDocument(t *testing.T) {
	cfg, err := parseYAML(writeTempYAMLConfig(t, "routes: [unclosed\n"))
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding yaml configs")
}

func TestParseYAML_MissingFile(t *testing.T) {
	cfg, err := parseYAML(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, errConfigFileNotFound)
}
