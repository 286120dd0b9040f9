package addrfind

import "context"

// DomainLimiter throttles requests per domain so subpage crawling does not
// hammer a single site.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled before the wait
	// completes.
	Wait(ctx context.Context, domain string) error
}
