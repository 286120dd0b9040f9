package http

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/beevik/etree"
	"github.com/mishra-anubhav/addrfind"
)

// maxSitemaps bounds how many sitemap files are fetched per site so a
// pathological sitemap index cannot stall a batch.
const maxSitemaps = 5

// Ensure SitemapService implements addrfind.SitemapService.
var _ addrfind.SitemapService = (*SitemapService)(nil)

// SitemapService discovers contact-page candidates from a site's sitemap.
// It complements link discovery for sites whose contact page isn't linked
// from the homepage.
type SitemapService struct {
	client   *http.Client
	keywords []string
}

// NewSitemapService creates a SitemapService with the given HTTP client.
// If client is nil, http.DefaultClient is used. Keyword filtering uses
// addrfind.DefaultKeywords unless keywords is non-nil.
func NewSitemapService(client *http.Client, keywords []string) *SitemapService {
	if client == nil {
		client = http.DefaultClient
	}
	if keywords == nil {
		keywords = addrfind.DefaultKeywords()
	}
	return &SitemapService{client: client, keywords: keywords}
}

// DiscoverURLs finds sitemap URLs on baseURL's host whose path contains a
// configured keyword. Returns an empty slice (not nil) if no sitemaps are
// found.
func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, addrfind.Errorf(addrfind.EINVALID, "invalid base URL: %v", err)
	}

	// Sitemap discovery always starts at the domain root.
	sitemapBase := *base
	sitemapBase.Path = ""

	sitemapURLs := s.findSitemapURLs(ctx, &sitemapBase)
	if len(sitemapURLs) == 0 {
		return []string{}, nil
	}

	seenSitemaps := make(map[string]bool)
	seenURLs := make(map[string]bool)
	var matched []string

	for _, sitemapURL := range sitemapURLs {
		urls, err := s.processSitemap(ctx, sitemapURL, seenSitemaps)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			// Individual sitemap failures are swallowed; the batch
			// must not depend on sitemap availability.
			continue
		}
		for _, u := range urls {
			if seenURLs[u] {
				continue
			}
			seenURLs[u] = true
			if s.matchesKeyword(u) && sameHost(base, u) {
				matched = append(matched, u)
			}
		}
	}

	if matched == nil {
		matched = []string{}
	}
	return matched, nil
}

// matchesKeyword reports whether the URL path contains any keyword.
func (s *SitemapService) matchesKeyword(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	path := strings.ToLower(u.Path)
	for _, kw := range s.keywords {
		if strings.Contains(path, kw) {
			return true
		}
	}
	return false
}

// sameHost reports whether rawURL is hosted on base's host.
func sameHost(base *url.URL, rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return u.Host == base.Host
}

// findSitemapURLs discovers sitemap URLs from robots.txt Sitemap directives,
// falling back to the conventional /sitemap.xml location.
func (s *SitemapService) findSitemapURLs(ctx context.Context, base *url.URL) []string {
	robotsURL := base.ResolveReference(&url.URL{Path: "/robots.txt"})
	if sitemaps := s.parseSitemapsFromRobots(ctx, robotsURL.String()); len(sitemaps) > 0 {
		return sitemaps
	}

	sitemapURL := base.ResolveReference(&url.URL{Path: "/sitemap.xml"})
	return []string{sitemapURL.String()}
}

// parseSitemapsFromRobots extracts Sitemap: directives from robots.txt.
// Any failure yields nil so the caller falls back to /sitemap.xml.
func (s *SitemapService) parseSitemapsFromRobots(ctx context.Context, robotsURL string) []string {
	body, err := s.fetchURL(ctx, robotsURL)
	if err != nil {
		return nil
	}
	defer body.Close()

	var sitemaps []string
	scanner := bufio.NewScanner(body)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(strings.ToLower(line), "sitemap:") {
			sitemapURL := strings.TrimSpace(line[len("sitemap:"):])
			if sitemapURL != "" {
				sitemaps = append(sitemaps, sitemapURL)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil
	}

	return sitemaps
}

// processSitemap fetches and parses a sitemap, handling both urlset and
// sitemapindex documents.
func (s *SitemapService) processSitemap(ctx context.Context, sitemapURL string, seen map[string]bool) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if seen[sitemapURL] || len(seen) >= maxSitemaps {
		return nil, nil
	}
	seen[sitemapURL] = true

	body, err := s.fetchURL(ctx, sitemapURL)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(body); err != nil {
		return nil, fmt.Errorf("parsing sitemap XML: %w", err)
	}

	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("empty sitemap XML")
	}

	if root.Tag == "sitemapindex" {
		return s.processSitemapIndex(ctx, root, seen)
	}

	return parseURLSet(root), nil
}

// processSitemapIndex processes a <sitemapindex> element recursively.
func (s *SitemapService) processSitemapIndex(ctx context.Context, root *etree.Element, seen map[string]bool) ([]string, error) {
	var allURLs []string

	for _, sitemap := range root.SelectElements("sitemap") {
		loc := sitemap.SelectElement("loc")
		if loc == nil {
			continue
		}
		sitemapURL := strings.TrimSpace(loc.Text())
		if sitemapURL == "" {
			continue
		}

		urls, err := s.processSitemap(ctx, sitemapURL, seen)
		if err != nil {
			continue
		}
		allURLs = append(allURLs, urls...)
	}

	return allURLs, nil
}

// parseURLSet extracts URLs from a <urlset> element.
func parseURLSet(root *etree.Element) []string {
	var urls []string
	for _, urlEl := range root.SelectElements("url") {
		loc := urlEl.SelectElement("loc")
		if loc == nil {
			continue
		}
		u := strings.TrimSpace(loc.Text())
		if u != "" {
			urls = append(urls, u)
		}
	}
	return urls
}

// fetchURL fetches a URL and returns the response body.
func (s *SitemapService) fetchURL(ctx context.Context, targetURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, targetURL)
	}

	return resp.Body, nil
}
