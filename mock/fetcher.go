package mock

import (
	"context"

	"github.com/fwojciec/dealscout"
)

var _ dealscout.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of dealscout.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*dealscout.FetchResponse, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*dealscout.FetchResponse, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}

var _ dealscout.RateLimiter = (*RateLimiter)(nil)

// RateLimiter is a mock implementation of dealscout.RateLimiter.
type RateLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *RateLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}
