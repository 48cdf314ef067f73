package endpoint

import (
	"net/http"

	"github.com/MKhiriev/oriole/internal/route"
	"github.com/MKhiriev/oriole/models"
)

// Version answers GET with the build metadata of the running binary.
type Version struct {
	route.Unsupported

	buildInfo models.AppBuildInfo
}

func NewVersion(buildInfo models.AppBuildInfo) *Version {
	return &Version{buildInfo: buildInfo}
}

func (v *Version) Get(*http.Request) (any, error) {
	return models.BuildInfoResponse{
		BuildCommit:  v.buildInfo.BuildCommit(),
		BuildDate:    v.buildInfo.BuildDate(),
		BuildVersion: v.buildInfo.BuildVersion(),
	}, nil
}
