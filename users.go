package keyenv

import "context"

// CurrentUser returns information about the authenticated principal:
// either a human user or a service token, discriminated by Type.
func (c *Client) CurrentUser(ctx context.Context) (*CurrentUserResponse, error) {
	var out CurrentUserResponse
	if err := c.getDecoded(ctx, "/users/me", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CurrentUserAsync is the non-blocking variant of CurrentUser.
func (c *Client) CurrentUserAsync(ctx context.Context) *Future[*CurrentUserResponse] {
	return goFuture(func() (*CurrentUserResponse, error) {
		return c.CurrentUser(ctx)
	})
}

// ValidateToken checks that the configured token is accepted by the API
// and returns the principal it authenticates.
func (c *Client) ValidateToken(ctx context.Context) (*CurrentUserResponse, error) {
	return c.CurrentUser(ctx)
}
