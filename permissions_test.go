package keyenv

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const permPath = "/projects/p1/environments/production/permissions"

func TestListPermissions(t *testing.T) {
	ts := newTestServer(t)
	ts.handle(http.MethodGet, permPath, http.StatusOK, `{
		"permissions": [
			{"id": "perm-1", "user_id": "u1", "user_email": "dev@example.com", "environment_name": "production", "role": "write", "can_write": true}
		]
	}`)

	c := ts.client(t)
	perms, err := c.ListPermissions(context.Background(), testProject, testEnv)
	require.NoError(t, err)

	require.Len(t, perms, 1)
	assert.Equal(t, "write", perms[0].Role)
	assert.True(t, perms[0].CanWrite)
}

func TestSetPermission(t *testing.T) {
	ts := newTestServer(t)
	ts.handle(http.MethodPut, permPath+"/u1", http.StatusOK, `{}`)

	c := ts.client(t)
	require.NoError(t, c.SetPermission(context.Background(), testProject, testEnv, "u1", "admin"))

	reqs := ts.recorded()
	require.Len(t, reqs, 1)
	assert.Equal(t, "/api/v1"+permPath+"/u1", reqs[0].path)
	var sent map[string]string
	require.NoError(t, json.Unmarshal(reqs[0].body, &sent))
	assert.Equal(t, map[string]string{"role": "admin"}, sent)
}

func TestDeletePermission(t *testing.T) {
	ts := newTestServer(t)
	ts.handle(http.MethodDelete, permPath+"/u1", http.StatusOK, `{}`)

	c := ts.client(t)
	require.NoError(t, c.DeletePermission(context.Background(), testProject, testEnv, "u1"))
	assert.Equal(t, 1, ts.countRequests(http.MethodDelete, permPath+"/u1"))
}

func TestBulkSetPermissions(t *testing.T) {
	ts := newTestServer(t)
	ts.handle(http.MethodPut, permPath, http.StatusOK, `{}`)

	c := ts.client(t)
	input := []PermissionInput{
		{UserID: "u1", Role: "read"},
		{UserID: "u2", Role: "write"},
	}
	require.NoError(t, c.BulkSetPermissions(context.Background(), testProject, testEnv, input))

	var sent struct {
		Permissions []PermissionInput `json:"permissions"`
	}
	require.NoError(t, json.Unmarshal(ts.recorded()[0].body, &sent))
	assert.Equal(t, input, sent.Permissions)
}

func TestMyPermissions(t *testing.T) {
	ts := newTestServer(t)
	ts.handle(http.MethodGet, "/projects/p1/my-permissions", http.StatusOK, `{
		"permissions": [{"id": "perm-1", "environment_name": "production", "role": "admin", "can_write": true}],
		"is_team_admin": true
	}`)

	c := ts.client(t)
	resp, err := c.MyPermissions(context.Background(), testProject)
	require.NoError(t, err)

	assert.True(t, resp.IsTeamAdmin)
	require.Len(t, resp.Permissions, 1)
	assert.Equal(t, "admin", resp.Permissions[0].Role)
}

func TestProjectDefaults(t *testing.T) {
	ts := newTestServer(t)
	ts.handle(http.MethodGet, "/projects/p1/permissions/defaults", http.StatusOK, `{
		"defaults": [{"environment_name": "production", "default_role": "read"}]
	}`)

	c := ts.client(t)
	defaults, err := c.ProjectDefaults(context.Background(), testProject)
	require.NoError(t, err)

	require.Len(t, defaults, 1)
	assert.Equal(t, "read", defaults[0].DefaultRole)
}

func TestSetProjectDefaults(t *testing.T) {
	ts := newTestServer(t)
	ts.handle(http.MethodPut, "/projects/p1/permissions/defaults", http.StatusOK, `{}`)

	c := ts.client(t)
	defaults := []DefaultPermission{{EnvironmentName: "production", DefaultRole: "none"}}
	require.NoError(t, c.SetProjectDefaults(context.Background(), testProject, defaults))

	var sent struct {
		Defaults []DefaultPermission `json:"defaults"`
	}
	require.NoError(t, json.Unmarshal(ts.recorded()[0].body, &sent))
	assert.Equal(t, defaults, sent.Defaults)
}
