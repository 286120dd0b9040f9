package addrfind

import "context"

// PageContent holds the visible text and raw HTML of one fetched page.
// Absence of content is represented by two empty strings, never by a nil
// value, so downstream string operations need no nil checks.
type PageContent struct {
	Text string
	HTML string
}

// IsEmpty reports whether the page yielded no content at all.
func (p PageContent) IsEmpty() bool {
	return p.Text == "" && p.HTML == ""
}

// Fetcher retrieves pages over the network.
type Fetcher interface {
	// Fetch performs a GET against a scheme-normalized URL and returns the
	// page content. Non-200 responses, timeouts, and connection errors
	// return a zero PageContent alongside the error; callers decide whether
	// the failure matters.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (PageContent, error)

	// Close releases any underlying resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
