package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	addrfindhttp "github.com/mishra-anubhav/addrfind/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns visible text and raw HTML", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte("<html><body><p>Hello World</p></body></html>"))
		}))
		defer server.Close()

		fetcher := addrfindhttp.NewFetcher()
		defer fetcher.Close()

		content, err := fetcher.Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, "Hello World", content.Text)
		assert.Equal(t, "<html><body><p>Hello World</p></body></html>", content.HTML)
	})

	t.Run("sends browser-like user agent", func(t *testing.T) {
		t.Parallel()

		var gotUA string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUA = r.UserAgent()
			_, _ = w.Write([]byte("<html></html>"))
		}))
		defer server.Close()

		fetcher := addrfindhttp.NewFetcher()
		defer fetcher.Close()

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Contains(t, gotUA, "Mozilla/5.0")
	})

	t.Run("non-200 status yields empty content and an error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		}))
		defer server.Close()

		fetcher := addrfindhttp.NewFetcher()
		defer fetcher.Close()

		content, err := fetcher.Fetch(context.Background(), server.URL)
		require.Error(t, err)
		assert.True(t, content.IsEmpty())
	})

	t.Run("respects custom timeout option", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte("response"))
		}))
		defer server.Close()

		fetcher := addrfindhttp.NewFetcher(addrfindhttp.WithTimeout(10 * time.Millisecond))
		defer fetcher.Close()

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.Error(t, err)
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte("response"))
		}))
		defer server.Close()

		fetcher := addrfindhttp.NewFetcher()
		defer fetcher.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := fetcher.Fetch(ctx, server.URL)
		require.Error(t, err)
	})

	t.Run("returns error for non-existent host", func(t *testing.T) {
		t.Parallel()

		fetcher := addrfindhttp.NewFetcher(addrfindhttp.WithTimeout(100 * time.Millisecond))
		defer fetcher.Close()

		content, err := fetcher.Fetch(context.Background(), "http://non-existent-host.invalid/page")
		require.Error(t, err)
		assert.True(t, content.IsEmpty())
	})
}
