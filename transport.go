// Package keyenv provides the HTTP transport shared by every operation.
package keyenv

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
)

// errorBody is the shape of a non-2xx response payload.
type errorBody struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// do issues one request against baseURL + /api/v1 + path and returns the
// raw response body. Non-2xx statuses, network failures, and interruption
// are all normalized into *Error; callers only ever see that one kind.
func (c *Client) do(ctx context.Context, method, path string, body []byte) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+apiPrefix+path, reader)
	if err != nil {
		return nil, wrapError("invalid request: "+err.Error(), err)
	}

	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, wrapError("request interrupted", ctx.Err())
		}
		return nil, wrapError("network error: "+err.Error(), err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, wrapError("network error: "+err.Error(), err)
	}

	if resp.StatusCode >= 400 {
		return nil, errorFromResponse(resp.StatusCode, raw)
	}

	return raw, nil
}

// errorFromResponse maps a non-2xx response to *Error. The "error" and
// "code" fields of a JSON body are extracted independently, so a machine
// code survives even when the server omits the human message. Non-JSON
// bodies become the message verbatim, empty ones fall back to the status.
func errorFromResponse(status int, body []byte) *Error {
	var parsed errorBody
	if err := json.Unmarshal(body, &parsed); err == nil {
		message := parsed.Error
		if message == "" {
			message = "Unknown error"
		}
		return newError(status, message, parsed.Code)
	}
	if len(body) > 0 {
		return newError(status, string(body), "")
	}
	return newError(status, fmt.Sprintf("HTTP %d", status), "")
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	return c.do(ctx, http.MethodGet, path, nil)
}

func (c *Client) post(ctx context.Context, path string, body []byte) ([]byte, error) {
	return c.do(ctx, http.MethodPost, path, body)
}

func (c *Client) put(ctx context.Context, path string, body []byte) ([]byte, error) {
	return c.do(ctx, http.MethodPut, path, body)
}

func (c *Client) del(ctx context.Context, path string) ([]byte, error) {
	return c.do(ctx, http.MethodDelete, path, nil)
}

// marshalBody encodes a request payload.
func marshalBody(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, wrapError("failed to serialize request: "+err.Error(), err)
	}
	return data, nil
}

// decodeJSON decodes a success payload into out. Malformed JSON in a 2xx
// response surfaces as *Error with status 0, distinguishing parse
// failures from transport failures by message.
func decodeJSON(data []byte, out any) error {
	if err := json.Unmarshal(data, out); err != nil {
		return wrapError("failed to parse response: "+err.Error(), err)
	}
	return nil
}

// unwrapData extracts the meaningful payload from a success envelope:
// the value under "data" when present, otherwise the body itself.
func unwrapData(raw []byte) ([]byte, error) {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, wrapError("failed to parse response: "+err.Error(), err)
	}
	if data, ok := envelope["data"]; ok {
		return data, nil
	}
	return raw, nil
}

// unwrapKey extracts the payload stored under a named resource key
// ("projects", "secrets", ...). List responses are always wrapped.
func unwrapKey(raw []byte, key string) ([]byte, error) {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, wrapError("failed to parse response: "+err.Error(), err)
	}
	data, ok := envelope[key]
	if !ok {
		return nil, wrapError(fmt.Sprintf("failed to parse response: missing %q key", key), nil)
	}
	return data, nil
}

// getDecoded runs a GET, unwraps the data envelope, and decodes into out.
func (c *Client) getDecoded(ctx context.Context, path string, out any) error {
	raw, err := c.get(ctx, path)
	if err != nil {
		return err
	}
	data, err := unwrapData(raw)
	if err != nil {
		return err
	}
	return decodeJSON(data, out)
}

// getList runs a GET and decodes the payload under the named key into out.
func (c *Client) getList(ctx context.Context, path, key string, out any) error {
	raw, err := c.get(ctx, path)
	if err != nil {
		return err
	}
	data, err := unwrapKey(raw, key)
	if err != nil {
		return err
	}
	return decodeJSON(data, out)
}
