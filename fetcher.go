package dealscout

import "context"

// FetchResponse holds the raw outcome of a page request.
type FetchResponse struct {
	StatusCode int
	Body       string
}

// Fetcher retrieves raw HTML from URLs.
type Fetcher interface {
	// Fetch issues a single GET for the URL and returns the status code
	// and body. A non-200 status is not an error; transport failures are.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (*FetchResponse, error)

	// Close releases resources held by the fetcher.
	Close() error
}

// RateLimiter provides per-domain rate limiting.
type RateLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
