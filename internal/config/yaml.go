package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

var errConfigFileNotFound = errors.New("config file not found")

// fileConfig mirrors the YAML config file:
//
//	backend: sync
//	server:
//	  path_prefix: /experimental
//	auth:
//	  issuer: oriole-issuer
//	routes:
//	  ping: {handler: endpoint.Ping}
//	  items/\d+: {handler: endpoint.DynamicPing, secured: true}
//
// routes is kept as a raw node so the document order of its keys survives.
type fileConfig struct {
	Backend string    `yaml:"backend"`
	Server  Server    `yaml:"server"`
	Auth    Auth      `yaml:"auth"`
	Routes  yaml.Node `yaml:"routes"`
}

type fileRoute struct {
	Handler string `yaml:"handler"`
	Secured bool   `yaml:"secured"`
}

func parseYAML(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", errConfigFileNotFound, path)
		}
		return nil, fmt.Errorf("error reading a yaml file: %w", err)
	}

	var fileCfg fileConfig
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("error decoding yaml configs: %w", err)
	}

	routes, err := decodeRoutes(&fileCfg.Routes)
	if err != nil {
		return nil, err
	}

	return &StructuredConfig{
		Server:  fileCfg.Server,
		Auth:    fileCfg.Auth,
		Routes:  routes,
		Backend: fileCfg.Backend,
	}, nil
}

// decodeRoutes walks the "routes" mapping node pair by pair so the returned
// slice follows the order in which patterns appear in the file.
func decodeRoutes(node *yaml.Node) ([]RouteEntry, error) {
	if node.Kind == 0 || node.ShortTag() == "!!null" {
		return nil, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, ErrInvalidRoutesBlock
	}

	routes := make([]RouteEntry, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]

		var route fileRoute
		if value.ShortTag() != "!!null" {
			if err := value.Decode(&route); err != nil {
				return nil, fmt.Errorf("error decoding route %q: %w", key.Value, err)
			}
		}

		routes = append(routes, RouteEntry{
			Pattern: key.Value,
			Handler: route.Handler,
			Secured: route.Secured,
		})
	}

	return routes, nil
}
