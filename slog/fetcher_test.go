package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/mishra-anubhav/addrfind"
	"github.com/mishra-anubhav/addrfind/mock"
	addrslog "github.com/mishra-anubhav/addrfind/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("logs fetch with bytes and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (addrfind.PageContent, error) {
				return addrfind.PageContent{Text: "content", HTML: "<html>content</html>"}, nil
			},
		}

		fetcher := addrslog.NewLoggingFetcher(inner, logger)
		content, err := fetcher.Fetch(context.Background(), "https://example.com")

		require.NoError(t, err)
		assert.Equal(t, "content", content.Text)
		output := buf.String()
		assert.Contains(t, output, "fetch")
		assert.Contains(t, output, "url=https://example.com")
		assert.Contains(t, output, "bytes=20")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (addrfind.PageContent, error) {
				return addrfind.PageContent{}, errors.New("network error")
			},
		}

		fetcher := addrslog.NewLoggingFetcher(inner, logger)
		_, err := fetcher.Fetch(context.Background(), "https://example.com")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "fetch")
		assert.Contains(t, output, "err=\"network error\"")
	})
}
