package addrfind

import (
	"context"
	"time"
)

// Status classifies the outcome of processing one URL.
type Status string

// Processing outcomes. NoContent is distinct from Failed: it means the site
// answered but no address candidate was found, not that fetching broke.
const (
	StatusSuccess   Status = "success"
	StatusNoContent Status = "no_content"
	StatusFailed    Status = "failed"
)

// Result is the outcome of processing a single input URL.
type Result struct {
	// URL is the original input value, before normalization.
	URL string

	Status Status

	// Addresses holds the deduplicated formatted addresses when Status is
	// StatusSuccess; empty otherwise.
	Addresses []string

	// Reason describes the failure when Status is StatusNoContent or
	// StatusFailed; empty on success.
	Reason string
}

// Processor runs the full per-URL lifecycle: validate, fetch, discover
// subpages, extract. It never returns an error; every failure mode is
// folded into the Result so one bad site cannot abort a batch.
type Processor interface {
	Process(ctx context.Context, url string) Result
}

// Progress reports batch completion state after each finished URL.
type Progress struct {
	URL       string
	Status    Status
	Completed int
	Total     int

	// Remaining estimates time left from the mean per-URL elapsed time so
	// far. Approximate under concurrency, where completion order is
	// arbitrary.
	Remaining time.Duration
}

// ProgressFunc is called as URLs finish processing.
type ProgressFunc func(Progress)

// BatchResult holds one outcome per input URL, in input order. Results are
// keyed by input row, not by URL, so duplicate input URLs keep independent
// outcomes and every row lands in exactly one of the two output tables.
type BatchResult struct {
	Results []Result
}

// Len returns the total number of processed URLs.
func (b *BatchResult) Len() int {
	return len(b.Results)
}

// SuccessCount returns the number of results that produced addresses.
func (b *BatchResult) SuccessCount() int {
	n := 0
	for _, r := range b.Results {
		if r.Status == StatusSuccess {
			n++
		}
	}
	return n
}

// FailureCount returns the number of results that produced no addresses.
func (b *BatchResult) FailureCount() int {
	return b.Len() - b.SuccessCount()
}
