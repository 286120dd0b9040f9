package crawl_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/mishra-anubhav/addrfind"
	"github.com/mishra-anubhav/addrfind/crawl"
	"github.com/mishra-anubhav/addrfind/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSiteProcessor_Process(t *testing.T) {
	t.Parallel()

	t.Run("invalid URL fails without any network call", func(t *testing.T) {
		t.Parallel()

		fetchCalled := false
		p := &crawl.SiteProcessor{
			Fetcher: &mock.Fetcher{
				FetchFn: func(context.Context, string) (addrfind.PageContent, error) {
					fetchCalled = true
					return addrfind.PageContent{}, nil
				},
			},
			Links:     noLinks(),
			Extractor: fixedExtractor(nil),
		}

		result := p.Process(context.Background(), "")
		assert.Equal(t, addrfind.StatusFailed, result.Status)
		assert.Equal(t, "Invalid URL", result.Reason)
		assert.False(t, fetchCalled)
	})

	t.Run("main page fetch error fails the URL", func(t *testing.T) {
		t.Parallel()

		p := &crawl.SiteProcessor{
			Fetcher: &mock.Fetcher{
				FetchFn: func(context.Context, string) (addrfind.PageContent, error) {
					return addrfind.PageContent{}, errors.New("HTTP 500 for https://example.com")
				},
			},
			Links:     noLinks(),
			Extractor: fixedExtractor(nil),
		}

		result := p.Process(context.Background(), "https://example.com")
		assert.Equal(t, addrfind.StatusFailed, result.Status)
		assert.Contains(t, result.Reason, "fetch failed")
	})

	t.Run("empty main page yields no content", func(t *testing.T) {
		t.Parallel()

		p := &crawl.SiteProcessor{
			Fetcher: &mock.Fetcher{
				FetchFn: func(context.Context, string) (addrfind.PageContent, error) {
					return addrfind.PageContent{}, nil
				},
			},
			Links:     noLinks(),
			Extractor: fixedExtractor(nil),
		}

		result := p.Process(context.Background(), "https://example.com")
		assert.Equal(t, addrfind.StatusNoContent, result.Status)
		assert.Equal(t, "no content found", result.Reason)
	})

	t.Run("extractor candidates produce success", func(t *testing.T) {
		t.Parallel()

		p := &crawl.SiteProcessor{
			Fetcher:   pageFetcher(map[string]addrfind.PageContent{"https://example.com": {Text: "text", HTML: "<html></html>"}}),
			Links:     noLinks(),
			Extractor: fixedExtractor([]string{"123 Main St, Dallas, TX 75201"}),
		}

		result := p.Process(context.Background(), "example.com")
		assert.Equal(t, addrfind.StatusSuccess, result.Status)
		assert.Equal(t, []string{"123 Main St, Dallas, TX 75201"}, result.Addresses)
		assert.Equal(t, "example.com", result.URL)
	})

	t.Run("no extractor candidates yields no content", func(t *testing.T) {
		t.Parallel()

		p := &crawl.SiteProcessor{
			Fetcher:   pageFetcher(map[string]addrfind.PageContent{"https://example.com": {Text: "text", HTML: "<html></html>"}}),
			Links:     noLinks(),
			Extractor: fixedExtractor(nil),
		}

		result := p.Process(context.Background(), "https://example.com")
		assert.Equal(t, addrfind.StatusNoContent, result.Status)
		assert.Equal(t, "no address candidates found", result.Reason)
	})

	t.Run("extractor error degrades to no content", func(t *testing.T) {
		t.Parallel()

		p := &crawl.SiteProcessor{
			Fetcher: pageFetcher(map[string]addrfind.PageContent{"https://example.com": {Text: "text", HTML: "<html></html>"}}),
			Links:   noLinks(),
			Extractor: &mock.Extractor{
				ExtractFn: func(context.Context, addrfind.PageContent) ([]string, error) {
					return nil, errors.New("model unreachable")
				},
			},
		}

		result := p.Process(context.Background(), "https://example.com")
		assert.Equal(t, addrfind.StatusNoContent, result.Status)
	})

	t.Run("aggregates subpage text for extraction", func(t *testing.T) {
		t.Parallel()

		var extracted addrfind.PageContent
		p := &crawl.SiteProcessor{
			Fetcher: pageFetcher(map[string]addrfind.PageContent{
				"https://example.com":         {Text: "main text", HTML: `<a href="/contact">Contact</a>`},
				"https://example.com/contact": {Text: "contact text", HTML: "<p>contact</p>"},
			}),
			Links: &mock.LinkDiscoverer{
				FindRelatedFn: func(string, string) ([]string, error) {
					return []string{"https://example.com/contact"}, nil
				},
			},
			Extractor: &mock.Extractor{
				ExtractFn: func(_ context.Context, content addrfind.PageContent) ([]string, error) {
					extracted = content
					return []string{"1 A St, X, YY 00000"}, nil
				},
			},
		}

		result := p.Process(context.Background(), "https://example.com")
		assert.Equal(t, addrfind.StatusSuccess, result.Status)
		assert.Equal(t, "main text contact text", extracted.Text)
	})

	t.Run("subpage fetch failures are swallowed", func(t *testing.T) {
		t.Parallel()

		p := &crawl.SiteProcessor{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, url string) (addrfind.PageContent, error) {
					if strings.Contains(url, "contact") {
						return addrfind.PageContent{}, errors.New("HTTP 404")
					}
					return addrfind.PageContent{Text: "main", HTML: "<html>main</html>"}, nil
				},
			},
			Links: &mock.LinkDiscoverer{
				FindRelatedFn: func(string, string) ([]string, error) {
					return []string{"https://example.com/contact"}, nil
				},
			},
			Extractor: fixedExtractor([]string{"1 A St, X, YY 00000"}),
		}

		result := p.Process(context.Background(), "https://example.com")
		assert.Equal(t, addrfind.StatusSuccess, result.Status)
	})

	t.Run("discovery is one hop: only the main page feeds the discoverer", func(t *testing.T) {
		t.Parallel()

		var discovered []string
		p := &crawl.SiteProcessor{
			Fetcher: pageFetcher(map[string]addrfind.PageContent{
				"https://example.com":         {Text: "main", HTML: "main html"},
				"https://example.com/contact": {Text: "contact", HTML: "contact html"},
			}),
			Links: &mock.LinkDiscoverer{
				FindRelatedFn: func(_ string, baseURL string) ([]string, error) {
					discovered = append(discovered, baseURL)
					return []string{"https://example.com/contact"}, nil
				},
			},
			Extractor: fixedExtractor(nil),
		}

		p.Process(context.Background(), "https://example.com")
		assert.Equal(t, []string{"https://example.com"}, discovered)
	})

	t.Run("duplicate subpage content is extracted once", func(t *testing.T) {
		t.Parallel()

		var extracted addrfind.PageContent
		p := &crawl.SiteProcessor{
			Fetcher: pageFetcher(map[string]addrfind.PageContent{
				"https://example.com":          {Text: "main", HTML: "main html"},
				"https://example.com/contact":  {Text: "dup", HTML: "dup html"},
				"https://example.com/contact/": {Text: "dup", HTML: "dup html"},
			}),
			Links: &mock.LinkDiscoverer{
				FindRelatedFn: func(string, string) ([]string, error) {
					return []string{"https://example.com/contact", "https://example.com/contact/"}, nil
				},
			},
			Extractor: &mock.Extractor{
				ExtractFn: func(_ context.Context, content addrfind.PageContent) ([]string, error) {
					extracted = content
					return nil, nil
				},
			},
		}

		p.Process(context.Background(), "https://example.com")
		assert.Equal(t, "main dup", extracted.Text)
	})

	t.Run("merges sitemap discoveries with link discoveries", func(t *testing.T) {
		t.Parallel()

		var fetched []string
		p := &crawl.SiteProcessor{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, url string) (addrfind.PageContent, error) {
					fetched = append(fetched, url)
					return addrfind.PageContent{Text: url, HTML: url}, nil
				},
			},
			Links: &mock.LinkDiscoverer{
				FindRelatedFn: func(string, string) ([]string, error) {
					return []string{"https://example.com/contact"}, nil
				},
			},
			Sitemaps: &mock.SitemapService{
				DiscoverURLsFn: func(context.Context, string) ([]string, error) {
					return []string{"https://example.com/locations", "https://example.com/contact"}, nil
				},
			},
			Extractor: fixedExtractor(nil),
		}

		p.Process(context.Background(), "https://example.com")
		assert.Equal(t, []string{
			"https://example.com",
			"https://example.com/contact",
			"https://example.com/locations",
		}, fetched)
	})

	t.Run("caps the number of fetched subpages", func(t *testing.T) {
		t.Parallel()

		var fetched int
		links := make([]string, 20)
		for i := range links {
			links[i] = "https://example.com/contact-" + strings.Repeat("x", i+1)
		}

		p := &crawl.SiteProcessor{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, url string) (addrfind.PageContent, error) {
					fetched++
					return addrfind.PageContent{Text: url, HTML: url}, nil
				},
			},
			Links: &mock.LinkDiscoverer{
				FindRelatedFn: func(string, string) ([]string, error) { return links, nil },
			},
			Extractor:   fixedExtractor(nil),
			MaxSubpages: 3,
		}

		p.Process(context.Background(), "https://example.com")
		assert.Equal(t, 4, fetched) // main + 3 subpages
	})
}

// pageFetcher returns a mock fetcher serving fixed content per URL and an
// error for unknown URLs.
func pageFetcher(pages map[string]addrfind.PageContent) *mock.Fetcher {
	return &mock.Fetcher{
		FetchFn: func(_ context.Context, url string) (addrfind.PageContent, error) {
			content, ok := pages[url]
			if !ok {
				return addrfind.PageContent{}, errors.New("HTTP 404 for " + url)
			}
			return content, nil
		},
	}
}

func noLinks() *mock.LinkDiscoverer {
	return &mock.LinkDiscoverer{
		FindRelatedFn: func(string, string) ([]string, error) { return nil, nil },
	}
}

func fixedExtractor(addresses []string) *mock.Extractor {
	return &mock.Extractor{
		ExtractFn: func(context.Context, addrfind.PageContent) ([]string, error) {
			return addresses, nil
		},
	}
}

func TestSiteProcessor_Process_RecoversFromPanic(t *testing.T) {
	t.Parallel()

	p := &crawl.SiteProcessor{
		Fetcher: &mock.Fetcher{
			FetchFn: func(context.Context, string) (addrfind.PageContent, error) {
				panic("boom")
			},
		},
		Links:     noLinks(),
		Extractor: fixedExtractor(nil),
	}

	result := p.Process(context.Background(), "https://example.com")
	require.Equal(t, addrfind.StatusFailed, result.Status)
	assert.Contains(t, result.Reason, "internal error")
}
