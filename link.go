package addrfind

import "context"

// DefaultKeywords are substrings that mark a link as likely pointing at a
// contact or location page. Matching is case-insensitive against both the
// href and the anchor's visible text.
func DefaultKeywords() []string {
	return []string{
		"contact",
		"location",
		"get-in-touch",
		"directions",
		"find-us",
		"support",
		"locations",
		"our-offices",
	}
}

// LinkDiscoverer finds same-site subpages worth crawling for addresses.
type LinkDiscoverer interface {
	// FindRelated parses html and returns absolute, deduplicated URLs of
	// same-host links whose href or anchor text matches a configured
	// keyword. Relative hrefs are resolved against baseURL. Discovery is
	// one hop only: callers never feed subpage HTML back in.
	FindRelated(html string, baseURL string) ([]string, error)
}

// SitemapService discovers candidate contact pages from a site's sitemap.
// It is a secondary discovery source alongside LinkDiscoverer.
type SitemapService interface {
	// DiscoverURLs finds sitemap URLs for the site hosting baseURL whose
	// path matches one of the configured keywords. It checks robots.txt
	// for Sitemap directives, then falls back to /sitemap.xml. Sitemap
	// indexes are resolved recursively.
	DiscoverURLs(ctx context.Context, baseURL string) ([]string, error)
}
