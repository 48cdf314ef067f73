package endpoint

import (
	"net/http"
	"path"
	"strings"

	"github.com/MKhiriev/oriole/internal/route"
	"github.com/MKhiriev/oriole/internal/utils"
	"github.com/MKhiriev/oriole/models"
)

// Ping answers GET with "pong" and the request id.
type Ping struct {
	route.Unsupported
}

func (p *Ping) Get(r *http.Request) (any, error) {
	return models.PingResponse{
		ID:    utils.RequestIDFromContext(r.Context()),
		Reply: "pong",
	}, nil
}

// DynamicPing answers GET with "pong for <id>", where id is the last
// segment of the request path (e.g. "items/42" gives "pong for 42").
type DynamicPing struct {
	route.Unsupported
}

func (p *DynamicPing) Get(r *http.Request) (any, error) {
	id := path.Base(strings.TrimRight(r.URL.Path, "/"))
	if id == "." || id == "/" {
		return nil, route.NewHTTPError(http.StatusBadRequest).WithDetails(map[string]string{
			"reason": "missing path segment",
		})
	}

	return models.PingResponse{
		ID:    utils.RequestIDFromContext(r.Context()),
		Reply: "pong for " + id,
	}, nil
}
