package keyenv

import (
	"log/slog"
	"net/http"
	"time"
)

const (
	// DefaultBaseURL is the production API endpoint.
	DefaultBaseURL = "https://api.keyenv.dev"

	// DefaultTimeout is the default per-request timeout.
	DefaultTimeout = 30 * time.Second

	// Version is the SDK version reported in the User-Agent header.
	Version = "1.0.0"

	// apiPrefix is the versioned path prefix for every API call.
	apiPrefix = "/api/v1"
)

// Client is a KeyEnv API client. It authenticates every request with a
// bearer token and exposes one method per resource operation.
//
// Thread safety: the token, base URL, transport, and logger are immutable
// after construction; the cache is safe for concurrent use. All methods
// may be called concurrently from multiple goroutines.
type Client struct {
	baseURL    string
	token      string
	userAgent  string
	httpClient httpDoer
	logger     *slog.Logger

	// cache holds exported secret sets; nil when caching is disabled.
	cache Cache
}

// New creates a KeyEnv client authenticated with token.
//
// Construction fails before any network access if token is empty. The
// defaults (production base URL, 30s timeout, caching disabled) can be
// adjusted with options:
//
//	client, err := keyenv.New(os.Getenv("KEYENV_TOKEN"),
//	    keyenv.WithCacheTTL(5*time.Minute),
//	    keyenv.WithLogger(slog.Default()),
//	)
func New(token string, opts ...Option) (*Client, error) {
	if token == "" {
		return nil, wrapError("token is required", nil)
	}

	options := defaultOptions()
	applyOptions(options, opts)

	httpClient := options.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: options.timeout}
	}

	var cache Cache
	if options.cacheTTL > 0 {
		cache = NewMemoryCache(options.cacheTTL)
	}

	return &Client{
		baseURL:    options.baseURL,
		token:      token,
		userAgent:  options.userAgent,
		httpClient: httpClient,
		logger:     options.logger,
		cache:      cache,
	}, nil
}

// ClearCache drops the cached secret export for one project+environment
// pair, leaving other pairs intact.
func (c *Client) ClearCache(projectID, environment string) {
	if c.cache == nil {
		return
	}
	c.cache.DeletePrefix(secretsCachePrefix(projectID, environment))
}

// ClearAllCache drops every cached entry for this client instance.
// Other client instances are unaffected; caches are never shared.
func (c *Client) ClearAllCache() {
	if c.cache == nil {
		return
	}
	c.cache.Clear()
}

// logInfo emits an info record when a logger is configured.
func (c *Client) logInfo(msg string, args ...any) {
	if c.logger != nil {
		c.logger.Info(msg, args...)
	}
}

// logError emits an error record when a logger is configured.
func (c *Client) logError(msg string, args ...any) {
	if c.logger != nil {
		c.logger.Error(msg, args...)
	}
}
