// Package slog provides logging decorators for the addrfind domain
// interfaces using log/slog.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/mishra-anubhav/addrfind"
)

// Ensure LoggingFetcher implements addrfind.Fetcher at compile time.
var _ addrfind.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with structured logging of every fetch.
type LoggingFetcher struct {
	next   addrfind.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next addrfind.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the outcome.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (addrfind.PageContent, error) {
	begin := time.Now()
	content, err := f.next.Fetch(ctx, url)
	if err != nil {
		f.logger.Warn("fetch",
			"url", url,
			"err", err.Error(),
			"duration", time.Since(begin),
		)
		return content, err
	}

	f.logger.Info("fetch",
		"url", url,
		"bytes", len(content.HTML),
		"duration", time.Since(begin),
	)
	return content, nil
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
