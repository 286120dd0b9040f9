package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/mishra-anubhav/addrfind"
)

// Ensure LoggingProcessor implements addrfind.Processor at compile time.
var _ addrfind.Processor = (*LoggingProcessor)(nil)

// LoggingProcessor wraps a Processor with per-URL outcome logging.
type LoggingProcessor struct {
	next   addrfind.Processor
	logger *slog.Logger
}

// NewLoggingProcessor creates a new LoggingProcessor.
func NewLoggingProcessor(next addrfind.Processor, logger *slog.Logger) *LoggingProcessor {
	return &LoggingProcessor{next: next, logger: logger}
}

// Process delegates to the wrapped processor and logs the outcome.
func (p *LoggingProcessor) Process(ctx context.Context, url string) addrfind.Result {
	begin := time.Now()
	result := p.next.Process(ctx, url)

	attrs := []any{
		"url", url,
		"host", addrfind.Hostname(url),
		"status", string(result.Status),
		"duration", time.Since(begin),
	}
	switch result.Status {
	case addrfind.StatusSuccess:
		p.logger.Info("process", append(attrs, "addresses", len(result.Addresses))...)
	default:
		p.logger.Warn("process", append(attrs, "reason", result.Reason)...)
	}

	return result
}
