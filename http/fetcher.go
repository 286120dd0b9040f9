// Package http provides HTTP-based implementations of page fetching and
// sitemap discovery for static sites.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mishra-anubhav/addrfind"
	"github.com/mishra-anubhav/addrfind/goquery"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// userAgent is a fixed browser-like identity. Many sites serve empty or
// blocked responses to default Go client identities.
const userAgent = "Mozilla/5.0 (compatible; addrfind/1.0)"

// Ensure Fetcher implements addrfind.Fetcher at compile time.
var _ addrfind.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves page content from URLs using plain HTTP requests.
// JavaScript is not executed; the visible text comes from the HTML as
// served.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
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

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the page at url and returns its visible text and raw
// HTML. Non-200 responses and transport errors return a zero PageContent
// alongside the error so callers can stay fail-soft.
func (f *Fetcher) Fetch(ctx context.Context, url string) (addrfind.PageContent, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return addrfind.PageContent{}, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return addrfind.PageContent{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return addrfind.PageContent{}, fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return addrfind.PageContent{}, err
	}

	rawHTML := string(body)
	return addrfind.PageContent{
		Text: goquery.VisibleText(rawHTML),
		HTML: rawHTML,
	}, nil
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
