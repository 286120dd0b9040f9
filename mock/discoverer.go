package mock

import (
	"context"

	"github.com/mishra-anubhav/addrfind"
)

var _ addrfind.LinkDiscoverer = (*LinkDiscoverer)(nil)

// LinkDiscoverer is a mock implementation of addrfind.LinkDiscoverer.
type LinkDiscoverer struct {
	FindRelatedFn func(html string, baseURL string) ([]string, error)
}

func (d *LinkDiscoverer) FindRelated(html string, baseURL string) ([]string, error) {
	return d.FindRelatedFn(html, baseURL)
}

var _ addrfind.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of addrfind.SitemapService.
type SitemapService struct {
	DiscoverURLsFn func(ctx context.Context, baseURL string) ([]string, error)
}

func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string) ([]string, error) {
	return s.DiscoverURLsFn(ctx, baseURL)
}
