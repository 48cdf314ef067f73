package endpoint

import (
	"net/http"

	"github.com/MKhiriev/oriole/internal/route"
	"github.com/MKhiriev/oriole/internal/utils"
	"github.com/MKhiriev/oriole/models"
)

// WhoAmI reports the subject and scopes of the bearer token used for the
// request. Mounted on a route without the secured flag it answers
// Unauthorized.
type WhoAmI struct {
	route.Unsupported
}

func (w *WhoAmI) Get(r *http.Request) (any, error) {
	rc, ok := utils.RequestFromContext(r.Context())
	if !ok || !rc.Authenticated() {
		return nil, route.NewHTTPError(http.StatusUnauthorized)
	}

	scopes := rc.Claims.Scopes()
	if scopes == nil {
		scopes = []string{}
	}

	return models.WhoAmIResponse{
		ID:        rc.ID,
		ExpiresAt: rc.Claims.ExpiresAt(),
		Scopes:    scopes,
		Subject:   rc.UserID,
	}, nil
}
