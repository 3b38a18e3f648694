// Package keyenv implements the secret operations, including the cached
// export read path and the update-or-create write path.
package keyenv

import "context"

// secretsPath is the collection path for one project+environment pair.
func secretsPath(projectID, environment string) string {
	return "/projects/" + projectID + "/environments/" + environment + "/secrets"
}

// ListSecrets returns the secrets of an environment without their values.
func (c *Client) ListSecrets(ctx context.Context, projectID, environment string) ([]SecretWithInheritance, error) {
	var out []SecretWithInheritance
	if err := c.getList(ctx, secretsPath(projectID, environment), "secrets", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListSecretsAsync is the non-blocking variant of ListSecrets.
func (c *Client) ListSecretsAsync(ctx context.Context, projectID, environment string) *Future[[]SecretWithInheritance] {
	return goFuture(func() ([]SecretWithInheritance, error) {
		return c.ListSecrets(ctx, projectID, environment)
	})
}

// GetSecrets exports every secret of an environment with its resolved
// value, inherited entries included.
//
// This is the only cached operation: with a cache TTL configured, a fresh
// result is served from memory without a network round trip. The cached
// entry is invalidated by any mutation of the same project+environment
// pair and expires TTL after it was stored.
func (c *Client) GetSecrets(ctx context.Context, projectID, environment string) ([]SecretWithValueAndInheritance, error) {
	cacheKey := secretsCacheKey(projectID, environment)
	if c.cache != nil {
		if cached, ok := c.cache.Get(cacheKey); ok {
			if secrets, ok := cached.([]SecretWithValueAndInheritance); ok {
				c.logInfo("secrets export served from cache", "project_id", projectID, "environment", environment)
				return secrets, nil
			}
		}
	}

	var secrets []SecretWithValueAndInheritance
	if err := c.getList(ctx, secretsPath(projectID, environment)+"/export", "secrets", &secrets); err != nil {
		return nil, err
	}

	if c.cache != nil {
		c.cache.Set(cacheKey, secrets)
	}

	c.logInfo("secrets exported", "project_id", projectID, "environment", environment, "count", len(secrets))
	return secrets, nil
}

// GetSecretsAsync is the non-blocking variant of GetSecrets.
func (c *Client) GetSecretsAsync(ctx context.Context, projectID, environment string) *Future[[]SecretWithValueAndInheritance] {
	return goFuture(func() ([]SecretWithValueAndInheritance, error) {
		return c.GetSecrets(ctx, projectID, environment)
	})
}

// SecretsMap exports an environment as a key/value map. How (and
// whether) the mapping ends up in the process environment is the
// caller's decision; the client mutates no global state.
func (c *Client) SecretsMap(ctx context.Context, projectID, environment string) (map[string]string, error) {
	secrets, err := c.GetSecrets(ctx, projectID, environment)
	if err != nil {
		return nil, err
	}
	result := make(map[string]string, len(secrets))
	for _, secret := range secrets {
		result[secret.Key] = secret.Value
	}
	return result, nil
}

// SecretsMapAsync is the non-blocking variant of SecretsMap.
func (c *Client) SecretsMapAsync(ctx context.Context, projectID, environment string) *Future[map[string]string] {
	return goFuture(func() (map[string]string, error) {
		return c.SecretsMap(ctx, projectID, environment)
	})
}

// GetSecret returns a single secret with its decrypted value.
func (c *Client) GetSecret(ctx context.Context, projectID, environment, key string) (*SecretWithValue, error) {
	var out SecretWithValue
	if err := c.getList(ctx, secretsPath(projectID, environment)+"/"+key, "secret", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetSecretAsync is the non-blocking variant of GetSecret.
func (c *Client) GetSecretAsync(ctx context.Context, projectID, environment, key string) *Future[*SecretWithValue] {
	return goFuture(func() (*SecretWithValue, error) {
		return c.GetSecret(ctx, projectID, environment, key)
	})
}

// SetSecret creates or updates a secret, converging to "the secret
// exists with this value" regardless of prior state. description may be
// empty to leave the description unset.
//
// The update (PUT) is attempted first; a 404 falls back to a create
// (POST) with the key in the body. Any other update error propagates
// without attempting the create. Two concurrent calls for a key that
// does not yet exist can both observe the 404 and both create; the
// server arbitrates that race.
func (c *Client) SetSecret(ctx context.Context, projectID, environment, key, value, description string) error {
	payload := map[string]string{"value": value}
	if description != "" {
		payload["description"] = description
	}
	body, err := marshalBody(payload)
	if err != nil {
		return err
	}

	_, err = c.put(ctx, secretsPath(projectID, environment)+"/"+key, body)
	if err != nil {
		if !IsNotFound(err) {
			c.logError("failed to update secret", "project_id", projectID, "environment", environment, "key", key, "error", err)
			return err
		}

		createPayload := map[string]string{"key": key, "value": value}
		if description != "" {
			createPayload["description"] = description
		}
		createBody, err := marshalBody(createPayload)
		if err != nil {
			return err
		}
		if _, err := c.post(ctx, secretsPath(projectID, environment), createBody); err != nil {
			c.logError("failed to create secret", "project_id", projectID, "environment", environment, "key", key, "error", err)
			return err
		}
	}

	// Invalidate strictly after the mutation succeeded, never before.
	c.ClearCache(projectID, environment)
	c.logInfo("secret set", "project_id", projectID, "environment", environment, "key", key)
	return nil
}

// SetSecretAsync is the non-blocking variant of SetSecret. The fallback
// create runs on the future's goroutine with the same three-way
// semantics: not-found retries as create, any other error propagates.
func (c *Client) SetSecretAsync(ctx context.Context, projectID, environment, key, value, description string) *Future[struct{}] {
	return goFuture(func() (struct{}, error) {
		return struct{}{}, c.SetSecret(ctx, projectID, environment, key, value, description)
	})
}

// DeleteSecret deletes a secret by key.
func (c *Client) DeleteSecret(ctx context.Context, projectID, environment, key string) error {
	if _, err := c.del(ctx, secretsPath(projectID, environment)+"/"+key); err != nil {
		return err
	}
	c.ClearCache(projectID, environment)
	c.logInfo("secret deleted", "project_id", projectID, "environment", environment, "key", key)
	return nil
}

// DeleteSecretAsync is the non-blocking variant of DeleteSecret.
func (c *Client) DeleteSecretAsync(ctx context.Context, projectID, environment, key string) *Future[struct{}] {
	return goFuture(func() (struct{}, error) {
		return struct{}{}, c.DeleteSecret(ctx, projectID, environment, key)
	})
}

// BulkImport imports a batch of secrets in one round trip. With
// overwrite false, keys that already exist are skipped; with overwrite
// true they are updated. The result reports created/updated/skipped
// counts.
func (c *Client) BulkImport(ctx context.Context, projectID, environment string, secrets []SecretInput, overwrite bool) (*BulkImportResult, error) {
	body, err := marshalBody(map[string]any{
		"secrets":   secrets,
		"overwrite": overwrite,
	})
	if err != nil {
		return nil, err
	}

	raw, err := c.post(ctx, secretsPath(projectID, environment)+"/bulk", body)
	if err != nil {
		c.logError("bulk import failed", "project_id", projectID, "environment", environment, "error", err)
		return nil, err
	}

	c.ClearCache(projectID, environment)

	var result BulkImportResult
	if err := decodeJSON(raw, &result); err != nil {
		return nil, err
	}

	c.logInfo("bulk import finished",
		"project_id", projectID,
		"environment", environment,
		"created", result.Created,
		"updated", result.Updated,
		"skipped", result.Skipped)
	return &result, nil
}

// SecretHistory returns the version history of a secret, newest last in
// whatever order the server defines.
func (c *Client) SecretHistory(ctx context.Context, projectID, environment, key string) ([]SecretHistory, error) {
	var out []SecretHistory
	if err := c.getList(ctx, secretsPath(projectID, environment)+"/"+key+"/history", "history", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SecretHistoryAsync is the non-blocking variant of SecretHistory.
func (c *Client) SecretHistoryAsync(ctx context.Context, projectID, environment, key string) *Future[[]SecretHistory] {
	return goFuture(func() ([]SecretHistory, error) {
		return c.SecretHistory(ctx, projectID, environment, key)
	})
}
