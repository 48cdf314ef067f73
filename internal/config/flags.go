package config

import (
	"errors"
	"net"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// NetAddress holds structured network address data for host and port.
// It implements the pflag.Value interface.
type NetAddress struct {
	Host string
	Port int

	target *string
}

// bindFlags registers all configuration flags on fs, writing into cfg.
//
// Flags:
//
//	-f/--config-file    YAML config file path
//	-d/--debug          enable debug logging
//	-a/--address        HTTP server address in format [host]:[port]
//	--grpc-address      gRPC server address in format [host]:[port]
//	--path-prefix       URL prefix of configured routes
//	--metrics-path      Prometheus metrics path
//	--request-timeout   request timeout (e.g., "30s", "1m")
//	--log-level         log level (debug, info, warn, error)
//	--jwt-algorithm     token signing algorithm
//	--jwt-issuer        token issuer
//	--jwt-audience      token audience
//	--jwt-secret        token secret or PEM private key
//	--jwt-ttl           default token TTL in seconds
func bindFlags(fs *pflag.FlagSet, cfg *StructuredConfig) {
	fs.StringVarP(&cfg.ConfigFilePath, "config-file", "f", "", "Configuration file path (default "+DefaultConfigFilePath+")")
	fs.BoolVarP(&cfg.Debug, "debug", "d", false, "Enable the debug mode")

	fs.VarP(&NetAddress{target: &cfg.Server.HTTPAddress}, "address", "a", "HTTP server address host:port")
	fs.Var(&NetAddress{target: &cfg.Server.GRPCAddress}, "grpc-address", "gRPC server address host:port")
	fs.StringVar(&cfg.Server.PathPrefix, "path-prefix", "", "URL prefix of configured routes")
	fs.StringVar(&cfg.Server.MetricsPath, "metrics-path", "", "Prometheus metrics path")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")

	fs.StringVar(&cfg.Log.Level, "log-level", "", "Log level (debug, info, warn, error)")

	fs.StringVar(&cfg.Auth.Algorithm, "jwt-algorithm", "", "Token signing algorithm (e.g., HS512)")
	fs.StringVar(&cfg.Auth.Issuer, "jwt-issuer", "", "Token issuer")
	fs.StringVar(&cfg.Auth.Audience, "jwt-audience", "", "Token audience")
	fs.StringVar(&cfg.Auth.Secret, "jwt-secret", "", "Token secret or PEM private key")
	fs.IntVar(&cfg.Auth.TTLSeconds, "jwt-ttl", 0, "Default token TTL in seconds")
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Type implements pflag.Value.
func (a *NetAddress) Type() string {
	return "host:port"
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost"
// or empty, and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	if a.target != nil {
		*a.target = a.String()
	}
	return nil
}
