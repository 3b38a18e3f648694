// Package keyenv provides functional options for configuring the client.
package keyenv

import (
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// httpDoer is the seam between the client and the HTTP transport.
// *http.Client satisfies it; tests substitute their own implementation.
type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// clientOptions holds configuration for the client.
type clientOptions struct {
	baseURL    string
	timeout    time.Duration
	cacheTTL   time.Duration
	userAgent  string
	logger     *slog.Logger
	httpClient httpDoer
}

// Option is a functional option for configuring the Client.
type Option func(*clientOptions)

// WithBaseURL overrides the default API base URL
// (https://api.keyenv.dev). A trailing slash is stripped.
func WithBaseURL(baseURL string) Option {
	return func(opts *clientOptions) {
		opts.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// WithTimeout overrides the default per-request timeout of 30 seconds.
// The timeout covers the whole round trip, connection included.
func WithTimeout(timeout time.Duration) Option {
	return func(opts *clientOptions) {
		opts.timeout = timeout
	}
}

// WithCacheTTL enables read-through caching of exported secret sets with
// the given time-to-live. The default of zero disables caching entirely.
func WithCacheTTL(ttl time.Duration) Option {
	return func(opts *clientOptions) {
		opts.cacheTTL = ttl
	}
}

// WithUserAgent overrides the default User-Agent header
// ("keyenv-go/" + Version).
func WithUserAgent(userAgent string) Option {
	return func(opts *clientOptions) {
		opts.userAgent = userAgent
	}
}

// WithLogger configures the client with a structured logger.
// If logger is nil, logging is disabled. Secret values are never logged.
func WithLogger(logger *slog.Logger) Option {
	return func(opts *clientOptions) {
		opts.logger = logger
	}
}

// WithHTTPClient replaces the HTTP client used for requests. When set,
// the caller owns timeout configuration; WithTimeout is ignored.
func WithHTTPClient(client *http.Client) Option {
	return func(opts *clientOptions) {
		opts.httpClient = client
	}
}

// defaultOptions returns the default configuration.
func defaultOptions() *clientOptions {
	return &clientOptions{
		baseURL:   DefaultBaseURL,
		timeout:   DefaultTimeout,
		cacheTTL:  0,
		userAgent: "keyenv-go/" + Version,
	}
}

// applyOptions applies the given options in order.
func applyOptions(opts *clientOptions, options []Option) {
	for _, option := range options {
		option(opts)
	}
}
