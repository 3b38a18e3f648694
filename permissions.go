package keyenv

import "context"

// permissionsPath is the permission collection for one environment.
func permissionsPath(projectID, environment string) string {
	return "/projects/" + projectID + "/environments/" + environment + "/permissions"
}

// ListPermissions returns the role assignments for an environment, one
// per user.
func (c *Client) ListPermissions(ctx context.Context, projectID, environment string) ([]Permission, error) {
	var out []Permission
	if err := c.getList(ctx, permissionsPath(projectID, environment), "permissions", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SetPermission assigns a role (admin, write, read, none) to a user for
// an environment.
func (c *Client) SetPermission(ctx context.Context, projectID, environment, userID, role string) error {
	body, err := marshalBody(map[string]string{"role": role})
	if err != nil {
		return err
	}
	if _, err := c.put(ctx, permissionsPath(projectID, environment)+"/"+userID, body); err != nil {
		return err
	}
	c.logInfo("permission set", "project_id", projectID, "environment", environment, "user_id", userID, "role", role)
	return nil
}

// DeletePermission removes a user's role assignment for an environment.
func (c *Client) DeletePermission(ctx context.Context, projectID, environment, userID string) error {
	if _, err := c.del(ctx, permissionsPath(projectID, environment)+"/"+userID); err != nil {
		return err
	}
	c.logInfo("permission deleted", "project_id", projectID, "environment", environment, "user_id", userID)
	return nil
}

// BulkSetPermissions replaces role assignments for many users in one
// round trip.
func (c *Client) BulkSetPermissions(ctx context.Context, projectID, environment string, permissions []PermissionInput) error {
	body, err := marshalBody(map[string]any{"permissions": permissions})
	if err != nil {
		return err
	}
	if _, err := c.put(ctx, permissionsPath(projectID, environment), body); err != nil {
		return err
	}
	c.logInfo("permissions bulk set", "project_id", projectID, "environment", environment, "count", len(permissions))
	return nil
}

// MyPermissions returns the caller's effective permissions for a project.
func (c *Client) MyPermissions(ctx context.Context, projectID string) (*MyPermissionsResponse, error) {
	raw, err := c.get(ctx, "/projects/"+projectID+"/my-permissions")
	if err != nil {
		return nil, err
	}
	var out MyPermissionsResponse
	if err := decodeJSON(raw, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ProjectDefaults returns the default role granted per environment when
// a user has no explicit assignment.
func (c *Client) ProjectDefaults(ctx context.Context, projectID string) ([]DefaultPermission, error) {
	var out []DefaultPermission
	if err := c.getList(ctx, "/projects/"+projectID+"/permissions/defaults", "defaults", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SetProjectDefaults replaces the default-permission configuration of a
// project.
func (c *Client) SetProjectDefaults(ctx context.Context, projectID string, defaults []DefaultPermission) error {
	body, err := marshalBody(map[string]any{"defaults": defaults})
	if err != nil {
		return err
	}
	if _, err := c.put(ctx, "/projects/"+projectID+"/permissions/defaults", body); err != nil {
		return err
	}
	c.logInfo("project defaults set", "project_id", projectID, "count", len(defaults))
	return nil
}
