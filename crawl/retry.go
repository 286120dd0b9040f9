package crawl

import (
	"context"
	"time"

	"github.com/mishra-anubhav/addrfind"
)

// FetchFunc is the signature for a fetch function.
type FetchFunc func(ctx context.Context, url string) (addrfind.PageContent, error)

// FetchWithRetryDelays attempts a fetch with backoff retries. A nil or
// empty delays slice means a single attempt, which is the default: the
// fetch layer itself never retries, the processor decides.
func FetchWithRetryDelays(ctx context.Context, url string, fetch FetchFunc, delays []time.Duration) (addrfind.PageContent, error) {
	maxAttempts := len(delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		content, err := fetch(ctx, url)
		if err == nil {
			return content, nil
		}
		lastErr = err

		if attempt >= maxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return addrfind.PageContent{}, ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return addrfind.PageContent{}, lastErr
}
