package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mishra-anubhav/addrfind"
)

// Ensure LinkDiscoverer implements addrfind.LinkDiscoverer at compile time.
var _ addrfind.LinkDiscoverer = (*LinkDiscoverer)(nil)

// LinkDiscoverer finds same-host subpages whose href or anchor text matches
// a configured keyword set.
type LinkDiscoverer struct {
	keywords []string
}

// DiscovererOption configures a LinkDiscoverer.
type DiscovererOption func(*LinkDiscoverer)

// WithKeywords replaces the default keyword set.
func WithKeywords(keywords []string) DiscovererOption {
	return func(d *LinkDiscoverer) {
		d.keywords = keywords
	}
}

// NewLinkDiscoverer creates a LinkDiscoverer with addrfind.DefaultKeywords
// unless overridden.
func NewLinkDiscoverer(opts ...DiscovererOption) *LinkDiscoverer {
	d := &LinkDiscoverer{
		keywords: addrfind.DefaultKeywords(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// FindRelated parses rawHTML and returns absolute, deduplicated same-host
// URLs of anchors matching any keyword in href or visible text.
func (d *LinkDiscoverer) FindRelated(rawHTML string, baseURL string) ([]string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, addrfind.Errorf(addrfind.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, addrfind.Errorf(addrfind.EINVALID, "failed to parse HTML: %v", err)
	}

	seen := make(map[string]bool)
	var links []string

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, exists := sel.Attr("href")
		if !exists || href == "" {
			return
		}

		if !d.matches(href) && !d.matches(sel.Text()) {
			return
		}

		resolved := resolveURL(base, href)
		if resolved == "" || resolved == baseURL {
			return
		}

		if !isSameHost(base, resolved) {
			return
		}

		if !seen[resolved] {
			seen[resolved] = true
			links = append(links, resolved)
		}
	})

	return links, nil
}

// matches reports whether any keyword appears in s, case-insensitively.
func (d *LinkDiscoverer) matches(s string) bool {
	s = strings.ToLower(s)
	for _, kw := range d.keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

// resolveURL resolves a relative URL against a base URL.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(ref)
	resolved.Fragment = ""
	return resolved.String()
}

// isSameHost checks if the resolved URL has the same host as the base URL.
func isSameHost(base *url.URL, resolved string) bool {
	u, err := url.Parse(resolved)
	if err != nil {
		return false
	}
	return u.Host == base.Host
}
