// Package mock provides function-field mock implementations of the
// addrfind interfaces for testing.
package mock

import (
	"context"

	"github.com/mishra-anubhav/addrfind"
)

var _ addrfind.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of addrfind.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (addrfind.PageContent, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (addrfind.PageContent, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}
