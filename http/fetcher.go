// Package http provides the HTTP transport of dealscout: a Fetcher for
// retrieving product pages and a Server exposing the analysis API.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/fwojciec/dealscout"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultUserAgent is sent with every request unless overridden.
// Many retail sites refuse requests without a browser-like agent.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Ensure Fetcher implements dealscout.Fetcher at compile time.
var _ dealscout.Fetcher = (*Fetcher)(nil)

// ProxyConfig routes requests through a scraping relay that takes the
// target URL as a query parameter.
type ProxyConfig struct {
	// Endpoint is the relay URL, e.g. "https://relay.example.com/v1/".
	Endpoint string

	// APIKey is sent as KeyParam. Omitted when empty.
	APIKey string

	// URLParam names the target URL parameter. Defaults to "url".
	URLParam string

	// KeyParam names the API key parameter. Defaults to "api_key".
	KeyParam string
}

// Rewrite returns the relay URL that fetches target.
func (c ProxyConfig) Rewrite(target string) (string, error) {
	u, err := url.Parse(c.Endpoint)
	if err != nil {
		return "", fmt.Errorf("invalid proxy endpoint: %w", err)
	}

	urlParam := c.URLParam
	if urlParam == "" {
		urlParam = "url"
	}
	keyParam := c.KeyParam
	if keyParam == "" {
		keyParam = "api_key"
	}

	q := u.Query()
	q.Set(urlParam, target)
	if c.APIKey != "" {
		q.Set(keyParam, c.APIKey)
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// Fetcher retrieves HTML content from URLs using plain HTTP requests.
// It does not execute JavaScript.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
	proxy     *ProxyConfig
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithProxy routes every request through the given relay.
// A config with an empty Endpoint disables the relay.
func WithProxy(cfg ProxyConfig) Option {
	return func(f *Fetcher) {
		if cfg.Endpoint == "" {
			f.proxy = nil
			return
		}
		f.proxy = &cfg
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch issues a single GET for rawURL and returns the status code and body.
// Non-200 responses are returned as-is; only transport failures are errors.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*dealscout.FetchResponse, error) {
	target := rawURL
	if f.proxy != nil {
		var err error
		if target, err = f.proxy.Rewrite(rawURL); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body of %s: %w", rawURL, err)
	}

	return &dealscout.FetchResponse{
		StatusCode: resp.StatusCode,
		Body:       string(body),
	}, nil
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
