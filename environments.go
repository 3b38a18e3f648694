package keyenv

import "context"

// ListEnvironments returns the environments of a project.
func (c *Client) ListEnvironments(ctx context.Context, projectID string) ([]Environment, error) {
	var out []Environment
	if err := c.getList(ctx, "/projects/"+projectID+"/environments", "environments", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListEnvironmentsAsync is the non-blocking variant of ListEnvironments.
func (c *Client) ListEnvironmentsAsync(ctx context.Context, projectID string) *Future[[]Environment] {
	return goFuture(func() ([]Environment, error) {
		return c.ListEnvironments(ctx, projectID)
	})
}

// CreateEnvironment creates an environment in a project. inheritsFrom,
// when non-empty, is the ID of the environment to inherit unset keys
// from; it must belong to the same project.
func (c *Client) CreateEnvironment(ctx context.Context, projectID, name, inheritsFrom string) (*Environment, error) {
	payload := map[string]string{"name": name}
	if inheritsFrom != "" {
		payload["inherits_from"] = inheritsFrom
	}
	body, err := marshalBody(payload)
	if err != nil {
		return nil, err
	}

	raw, err := c.post(ctx, "/projects/"+projectID+"/environments", body)
	if err != nil {
		c.logError("failed to create environment", "project_id", projectID, "name", name, "error", err)
		return nil, err
	}

	data, err := unwrapData(raw)
	if err != nil {
		return nil, err
	}
	var out Environment
	if err := decodeJSON(data, &out); err != nil {
		return nil, err
	}

	c.logInfo("environment created", "project_id", projectID, "environment", name)
	return &out, nil
}

// DeleteEnvironment deletes an environment from a project by name.
func (c *Client) DeleteEnvironment(ctx context.Context, projectID, environment string) error {
	if _, err := c.del(ctx, "/projects/"+projectID+"/environments/"+environment); err != nil {
		return err
	}
	c.logInfo("environment deleted", "project_id", projectID, "environment", environment)
	return nil
}
