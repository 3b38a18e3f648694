package keyenv

import "context"

// ListProjects returns all projects the caller can access.
func (c *Client) ListProjects(ctx context.Context) ([]Project, error) {
	var out []Project
	if err := c.getList(ctx, "/projects", "projects", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListProjectsAsync is the non-blocking variant of ListProjects.
func (c *Client) ListProjectsAsync(ctx context.Context) *Future[[]Project] {
	return goFuture(func() ([]Project, error) {
		return c.ListProjects(ctx)
	})
}

// GetProject returns one project, with its environments expanded.
func (c *Client) GetProject(ctx context.Context, projectID string) (*Project, error) {
	var out Project
	if err := c.getDecoded(ctx, "/projects/"+projectID, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetProjectAsync is the non-blocking variant of GetProject.
func (c *Client) GetProjectAsync(ctx context.Context, projectID string) *Future[*Project] {
	return goFuture(func() (*Project, error) {
		return c.GetProject(ctx, projectID)
	})
}

// CreateProject creates a project owned by the given team.
func (c *Client) CreateProject(ctx context.Context, teamID, name string) (*Project, error) {
	body, err := marshalBody(map[string]string{
		"team_id": teamID,
		"name":    name,
	})
	if err != nil {
		return nil, err
	}

	raw, err := c.post(ctx, "/projects", body)
	if err != nil {
		c.logError("failed to create project", "team_id", teamID, "name", name, "error", err)
		return nil, err
	}

	data, err := unwrapData(raw)
	if err != nil {
		return nil, err
	}
	var out Project
	if err := decodeJSON(data, &out); err != nil {
		return nil, err
	}

	c.logInfo("project created", "project_id", out.ID, "name", name)
	return &out, nil
}

// DeleteProject deletes a project and everything it contains.
func (c *Client) DeleteProject(ctx context.Context, projectID string) error {
	if _, err := c.del(ctx, "/projects/"+projectID); err != nil {
		return err
	}
	c.logInfo("project deleted", "project_id", projectID)
	return nil
}
