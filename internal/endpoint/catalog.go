package endpoint

import (
	"github.com/MKhiriev/oriole/internal/route"
	"github.com/MKhiriev/oriole/models"
)

// Handler references accepted in the route configuration.
const (
	RefPing        = "endpoint.Ping"
	RefDynamicPing = "endpoint.DynamicPing"
	RefWhoAmI      = "endpoint.WhoAmI"
	RefVersion     = "endpoint.Version"
)

// Catalog returns every built-in endpoint keyed by its reference.
func Catalog(buildInfo models.AppBuildInfo) route.Catalog {
	return route.Catalog{
		RefPing:        &Ping{},
		RefDynamicPing: &DynamicPing{},
		RefWhoAmI:      &WhoAmI{},
		RefVersion:     NewVersion(buildInfo),
	}
}
