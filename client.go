package ambr

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"resty.dev/v3"

	"github.com/seriaati/ambr-go/internal/cache"
)

const (
	defaultBaseURL   = "https://gi.yatta.moe/api/v2"
	defaultCachePath = ".cache/ambr/cache.db"
	defaultCacheTTL  = time.Hour
	defaultUserAgent = "ambr-go"
)

// Client is a client for the game data API. Construct it with NewClient, call
// Start before making requests and Close when done.
type Client struct {
	lang      Language
	baseURL   string
	cacheTTL  time.Duration
	cachePath string
	headers   map[string]string
	timeout   time.Duration
	logger    *slog.Logger

	httpClient *resty.Client
	store      cache.Store
	validator  *modelValidator
}

// Option configures a Client.
type Option func(*Client)

// WithLanguage sets the language responses are localized to. Defaults to
// LanguageEN.
func WithLanguage(lang Language) Option {
	return func(c *Client) {
		c.lang = lang
	}
}

// WithCacheTTL sets how long cached responses stay fresh. A TTL of zero or
// less disables the cache so every request hits the network. Defaults to one
// hour.
func WithCacheTTL(ttl time.Duration) Option {
	return func(c *Client) {
		c.cacheTTL = ttl
	}
}

// WithCachePath sets the cache database file path.
func WithCachePath(path string) Option {
	return func(c *Client) {
		c.cachePath = path
	}
}

// WithCacheStore sets the cache store directly, overriding WithCachePath.
// Close closes the store along with the client.
func WithCacheStore(store cache.Store) Option {
	return func(c *Client) {
		c.store = store
	}
}

// WithBaseURL overrides the API base URL.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHeaders sets extra headers sent with every request.
func WithHeaders(headers map[string]string) Option {
	return func(c *Client) {
		c.headers = headers
	}
}

// WithHTTPTimeout sets the HTTP request timeout.
func WithHTTPTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithLogger sets the logger used for cache degradation warnings. Defaults to
// slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

func NewClient(opts ...Option) *Client {
	client := &Client{
		lang:      LanguageEN,
		baseURL:   defaultBaseURL,
		cacheTTL:  defaultCacheTTL,
		cachePath: defaultCachePath,
		logger:    slog.Default(),
		validator: newModelValidator(),
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// Start opens the cache store and the HTTP client. It must be called before
// any fetch method.
func (c *Client) Start(ctx context.Context) error {
	if c.store == nil && c.cacheTTL > 0 {
		store, err := cache.NewSQLiteStore(c.cachePath, c.cacheTTL)
		if err != nil {
			return fmt.Errorf("cache.NewSQLiteStore > %w", err)
		}
		c.store = store
	}

	httpClient := resty.New()
	httpClient.SetBaseURL(c.baseURL)
	httpClient.SetHeader("User-Agent", defaultUserAgent)
	for key, value := range c.headers {
		httpClient.SetHeader(key, value)
	}
	if c.timeout > 0 {
		httpClient.SetTimeout(c.timeout)
	}
	c.httpClient = httpClient
	return nil
}

// Close releases the HTTP client and the cache store.
func (c *Client) Close() error {
	if c.httpClient != nil {
		if err := c.httpClient.Close(); err != nil {
			return fmt.Errorf("httpClient.Close > %w", err)
		}
		c.httpClient = nil
	}
	if c.store != nil {
		if err := c.store.Close(); err != nil {
			return fmt.Errorf("store.Close > %w", err)
		}
		c.store = nil
	}
	return nil
}

// request resolves one endpoint to a raw response body: cache first (unless
// bypassed), then the network. Cache failures degrade to a live fetch; a 404
// response is never written to the cache.
func (c *Client) request(ctx context.Context, endpoint string, static bool, opts fetchOptions) ([]byte, error) {
	if c.httpClient == nil {
		return nil, fmt.Errorf("client is not started")
	}

	lang := c.lang
	if opts.lang != nil {
		lang = *opts.lang
	}
	path := string(lang) + "/" + endpoint
	if static {
		path = "static/" + endpoint
	}

	useCache := c.store != nil && c.cacheTTL > 0 && !opts.noCache
	if useCache {
		body, ok, err := c.store.Get(ctx, path)
		if err != nil {
			c.logger.Warn("cache read failed, falling back to live request",
				slog.String("path", path), slog.Any("error", err))
		} else if ok {
			c.logger.Debug("serving response from cache", slog.String("path", path))
			return body, nil
		}
	}

	c.logger.Debug("requesting endpoint", slog.String("path", path))
	resp, err := c.httpClient.R().SetContext(ctx).Get(path)
	if err != nil {
		return nil, fmt.Errorf("httpClient.Get %s > %w", path, err)
	}

	switch code := resp.StatusCode(); {
	case code == 404:
		return nil, &DataNotFoundError{Endpoint: path}
	case code == 522 || code == 524:
		return nil, &ConnectionTimeoutError{Code: code, Endpoint: path}
	case resp.IsError():
		return nil, &APIError{Code: code, Endpoint: path}
	}

	body := resp.Bytes()
	if useCache {
		if err := c.store.Set(ctx, path, body); err != nil {
			c.logger.Warn("cache write failed",
				slog.String("path", path), slog.Any("error", err))
		}
	}
	return body, nil
}

// ClearCache removes every cached response.
func (c *Client) ClearCache(ctx context.Context) error {
	if c.store == nil {
		return nil
	}
	if err := c.store.Clear(ctx); err != nil {
		return fmt.Errorf("store.Clear > %w", err)
	}
	return nil
}
