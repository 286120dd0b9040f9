// Package batch drives site processing over a full set of input URLs,
// sequentially or with a bounded worker pool.
package batch

import (
	"context"
	"sync"
	"time"

	"github.com/mishra-anubhav/addrfind"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the worker pool size when none is configured.
const DefaultConcurrency = 10

// Runner dispatches a Processor over all input URLs and collects one
// outcome per input row. Results are written once per input index, so
// workers share no mutable state beyond the completion counter.
type Runner struct {
	// Processors are assigned to workers round-robin (worker index modulo
	// length), which spreads external-capability credentials across the
	// pool. At least one processor is required.
	Processors []addrfind.Processor

	// Concurrency is the worker pool size. Values <= 1 run sequentially
	// in input order; 0 means DefaultConcurrency.
	Concurrency int

	// Progress, if set, is called after each completed URL. The rolling
	// time estimate is derived from mean per-URL elapsed time and is
	// approximate under concurrency, where completion order is arbitrary.
	Progress addrfind.ProgressFunc
}

// Run processes every URL exactly once and returns the partitioned result.
// A canceled context stops dispatching; URLs never handed to a worker are
// recorded as failures so the partition still covers the full input.
func (r *Runner) Run(ctx context.Context, urls []string) *addrfind.BatchResult {
	total := len(urls)
	results := make([]addrfind.Result, total)

	concurrency := r.Concurrency
	if concurrency == 0 {
		concurrency = DefaultConcurrency
	}
	if concurrency < 1 {
		concurrency = 1
	}
	if concurrency > total {
		concurrency = total
	}

	jobs := make(chan int)
	start := time.Now()

	var mu sync.Mutex
	completed := 0

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < concurrency; w++ {
		proc := r.Processors[w%len(r.Processors)]
		g.Go(func() error {
			for idx := range jobs {
				result := proc.Process(gctx, urls[idx])
				results[idx] = result

				mu.Lock()
				completed++
				if r.Progress != nil {
					r.Progress(addrfind.Progress{
						URL:       urls[idx],
						Status:    result.Status,
						Completed: completed,
						Total:     total,
						Remaining: estimateRemaining(start, completed, total),
					})
				}
				mu.Unlock()
			}
			return nil
		})
	}

dispatch:
	for i := range urls {
		select {
		case jobs <- i:
		case <-gctx.Done():
			break dispatch
		}
	}
	close(jobs)
	_ = g.Wait()

	return partition(ctx, urls, results)
}

// estimateRemaining projects time left from the mean per-URL elapsed time.
func estimateRemaining(start time.Time, completed, total int) time.Duration {
	if completed == 0 {
		return 0
	}
	mean := time.Since(start) / time.Duration(completed)
	return mean * time.Duration(total-completed)
}

// partition normalizes per-index results into the batch outcome,
// preserving input order. Indexes that never ran (canceled context) are
// recorded as failures, so every input row gets exactly one entry even
// when the same URL appears in the input more than once.
func partition(ctx context.Context, urls []string, results []addrfind.Result) *addrfind.BatchResult {
	out := make([]addrfind.Result, len(urls))

	for i, result := range results {
		if result.Status == "" {
			reason := "not processed"
			if err := ctx.Err(); err != nil {
				reason = err.Error()
			}
			result = addrfind.Result{URL: urls[i], Status: addrfind.StatusFailed, Reason: reason}
		}
		out[i] = result
	}

	return &addrfind.BatchResult{Results: out}
}
