package permissions

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	data := Get()
	require.NotNil(t, data)
	assert.NotEmpty(t, data.Endpoints)
}

func TestPermissionData_FindPermissions(t *testing.T) {
	data := Get()
	require.NotNil(t, data)

	tests := []struct {
		name     string
		path     string
		method   string
		wantSkip bool
		wantRole string
	}{
		{name: "public booking form", path: "/v1/bookings/", method: http.MethodPost, wantSkip: true},
		{name: "guest lookup", path: "/v1/bookings/lookup", method: http.MethodGet, wantSkip: true},
		{name: "operator list", path: "/v1/bookings/", method: http.MethodGet, wantRole: "staff"},
		{name: "confirm", path: "/v1/bookings/{id}/confirm", method: http.MethodPost, wantRole: "staff"},
		{name: "templates are admin only", path: "/v1/email-templates/{key}", method: http.MethodPatch, wantRole: "admin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			permission := data.FindPermissions(tt.path, tt.method)

			assert.Equal(t, tt.wantSkip, permission.Skip)

			if tt.wantRole != "" {
				assert.Contains(t, permission.Permissions, tt.wantRole)
			}
		})
	}

	assert.Empty(t, data.FindPermissions("/v1/unknown", http.MethodGet).Permissions)
}
