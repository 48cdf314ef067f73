package endpoint

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/oriole/internal/auth"
	"github.com/MKhiriev/oriole/internal/route"
	"github.com/MKhiriev/oriole/internal/utils"
	"github.com/MKhiriev/oriole/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRequest(method, target string, rc *utils.RequestContext) *http.Request {
	r := httptest.NewRequest(method, target, nil)
	if rc != nil {
		r = r.WithContext(utils.WithRequestContext(r.Context(), *rc))
	}
	return r
}

func TestPing_Get(t *testing.T) {
	got, err := (&Ping{}).Get(newRequest(http.MethodGet, "/experimental/ping", &utils.RequestContext{ID: "req-1"}))

	require.NoError(t, err)
	assert.Equal(t, models.PingResponse{ID: "req-1", Reply: "pong"}, got)
}

func TestPing_OtherVerbsUnsupported(t *testing.T) {
	r := newRequest(http.MethodPost, "/experimental/ping", nil)

	_, err := route.Invoke(&Ping{}, r)
	assert.ErrorIs(t, err, route.ErrMethodNotSupported)
}

func TestDynamicPing_Get(t *testing.T) {
	tests := []struct {
		name      string
		target    string
		wantReply string
		wantErr   bool
	}{
		{name: "numeric id", target: "/experimental/items/42", wantReply: "pong for 42"},
		{name: "trailing slash", target: "/experimental/items/abc/", wantReply: "pong for abc"},
		{name: "root", target: "/", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := (&DynamicPing{}).Get(newRequest(http.MethodGet, tt.target, &utils.RequestContext{ID: "req-2"}))
			if tt.wantErr {
				var httpErr *route.HTTPError
				require.ErrorAs(t, err, &httpErr)
				assert.Equal(t, http.StatusBadRequest, httpErr.Status)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, models.PingResponse{ID: "req-2", Reply: tt.wantReply}, got)
		})
	}
}

func TestWhoAmI_Get(t *testing.T) {
	rc := &utils.RequestContext{
		ID:     "req-3",
		UserID: "user-1",
		Claims: auth.Claims{"sub": "user-1", "exp": float64(1700000000), "scopes": []any{"read"}},
	}

	got, err := (&WhoAmI{}).Get(newRequest(http.MethodGet, "/experimental/me", rc))

	require.NoError(t, err)
	assert.Equal(t, models.WhoAmIResponse{
		ID:        "req-3",
		ExpiresAt: 1700000000,
		Scopes:    []string{"read"},
		Subject:   "user-1",
	}, got)
}

func TestWhoAmI_NoScopes(t *testing.T) {
	rc := &utils.RequestContext{ID: "req-4", UserID: "u", Claims: auth.Claims{"sub": "u"}}

	got, err := (&WhoAmI{}).Get(newRequest(http.MethodGet, "/experimental/me", rc))

	require.NoError(t, err)
	assert.Equal(t, []string{}, got.(models.WhoAmIResponse).Scopes)
}

func TestWhoAmI_Unauthenticated(t *testing.T) {
	tests := []struct {
		name string
		rc   *utils.RequestContext
	}{
		{name: "no request context", rc: nil},
		{name: "no claims", rc: &utils.RequestContext{ID: "req-5"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := (&WhoAmI{}).Get(newRequest(http.MethodGet, "/experimental/me", tt.rc))

			var httpErr *route.HTTPError
			require.ErrorAs(t, err, &httpErr)
			assert.Equal(t, http.StatusUnauthorized, httpErr.Status)
			assert.Equal(t, "Unauthorized", httpErr.Code)
		})
	}
}

func TestVersion_Get(t *testing.T) {
	v := NewVersion(models.NewAppBuildInfo("1.2.3", "2026-01-01", "abc123"))

	got, err := v.Get(newRequest(http.MethodGet, "/experimental/version", nil))

	require.NoError(t, err)
	assert.Equal(t, models.BuildInfoResponse{
		BuildCommit:  "abc123",
		BuildDate:    "2026-01-01",
		BuildVersion: "1.2.3",
	}, got)
}

func TestCatalog_References(t *testing.T) {
	c := Catalog(models.NewAppBuildInfo("", "", ""))

	assert.Equal(t, []string{RefDynamicPing, RefPing, RefVersion, RefWhoAmI}, c.References())
	for _, ref := range c.References() {
		_, ok := c.Resolve(ref)
		assert.True(t, ok, ref)
	}
}
