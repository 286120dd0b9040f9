// Package crawl orchestrates the per-URL lifecycle: fetch the main page,
// discover contact subpages, aggregate content, and run an extraction
// strategy.
package crawl

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/mishra-anubhav/addrfind"
)

// DefaultMaxSubpages caps how many discovered subpages are fetched per
// site. Discovery is one hop deep, so this bounds total fetches per URL at
// 1 + DefaultMaxSubpages.
const DefaultMaxSubpages = 10

// Ensure SiteProcessor implements addrfind.Processor at compile time.
var _ addrfind.Processor = (*SiteProcessor)(nil)

// SiteProcessor runs the full lifecycle for one URL. It owns no cross-URL
// state; every invocation builds its own page set and candidate set.
//
// Process never returns an error: invalid input, fetch failures, and
// extraction failures all fold into the Result so the batch layer only
// ever records outcomes.
type SiteProcessor struct {
	Fetcher     addrfind.Fetcher
	Links       addrfind.LinkDiscoverer
	Extractor   addrfind.Extractor
	Sitemaps    addrfind.SitemapService // optional secondary discovery
	RateLimiter addrfind.DomainLimiter  // optional
	RetryDelays []time.Duration         // optional, applies to subpages only
	MaxSubpages int
}

// Process validates the URL, fetches the main page, crawls one hop of
// contact subpages best-effort, and runs the extractor over the aggregated
// content.
func (p *SiteProcessor) Process(ctx context.Context, rawURL string) (result addrfind.Result) {
	result = addrfind.Result{URL: rawURL}

	defer func() {
		if r := recover(); r != nil {
			result.Status = addrfind.StatusFailed
			result.Reason = fmt.Sprintf("internal error: %v", r)
			result.Addresses = nil
		}
	}()

	url, err := addrfind.NormalizeURL(rawURL)
	if err != nil {
		result.Status = addrfind.StatusFailed
		result.Reason = addrfind.ErrorMessage(err)
		return result
	}

	main, err := p.Fetcher.Fetch(ctx, url)
	if err != nil {
		result.Status = addrfind.StatusFailed
		result.Reason = fmt.Sprintf("fetch failed: %v", err)
		return result
	}
	if main.IsEmpty() {
		result.Status = addrfind.StatusNoContent
		result.Reason = "no content found"
		return result
	}

	aggregate := p.crawlSubpages(ctx, url, main)

	addresses, err := p.Extractor.Extract(ctx, aggregate)
	if err != nil {
		// Extraction failures degrade to "no candidates".
		addresses = nil
	}
	if len(addresses) == 0 {
		result.Status = addrfind.StatusNoContent
		result.Reason = "no address candidates found"
		return result
	}

	result.Status = addrfind.StatusSuccess
	result.Addresses = addresses
	return result
}

// crawlSubpages discovers related subpages and fetches them best-effort,
// returning the main page content merged with every successfully fetched,
// content-distinct subpage.
func (p *SiteProcessor) crawlSubpages(ctx context.Context, url string, main addrfind.PageContent) addrfind.PageContent {
	subpages := p.discover(ctx, url, main.HTML)

	maxSubpages := p.MaxSubpages
	if maxSubpages <= 0 {
		maxSubpages = DefaultMaxSubpages
	}
	if len(subpages) > maxSubpages {
		subpages = subpages[:maxSubpages]
	}

	texts := []string{main.Text}
	htmls := []string{main.HTML}
	seen := map[uint64]bool{contentHash(main): true}

	for _, subURL := range subpages {
		if ctx.Err() != nil {
			break
		}

		if p.RateLimiter != nil {
			if err := p.RateLimiter.Wait(ctx, addrfind.Hostname(subURL)); err != nil {
				break
			}
		}

		// Individual subpage failures are swallowed; they never abort
		// the URL.
		content, err := FetchWithRetryDelays(ctx, subURL, p.Fetcher.Fetch, p.RetryDelays)
		if err != nil || content.IsEmpty() {
			continue
		}

		// Skip mirrored pages so duplicates don't inflate extractor
		// input.
		hash := contentHash(content)
		if seen[hash] {
			continue
		}
		seen[hash] = true

		texts = append(texts, content.Text)
		htmls = append(htmls, content.HTML)
	}

	return addrfind.PageContent{
		Text: strings.TrimSpace(strings.Join(texts, " ")),
		HTML: strings.Join(htmls, "\n"),
	}
}

// discover merges link-based and sitemap-based subpage candidates.
// Discovery failures are swallowed: a site with an unparseable homepage or
// no sitemap still gets its main page extracted.
func (p *SiteProcessor) discover(ctx context.Context, url, mainHTML string) []string {
	var candidates []string

	if links, err := p.Links.FindRelated(mainHTML, url); err == nil {
		candidates = append(candidates, links...)
	}

	if p.Sitemaps != nil {
		if urls, err := p.Sitemaps.DiscoverURLs(ctx, url); err == nil {
			candidates = append(candidates, urls...)
		}
	}

	seen := map[string]bool{url: true}
	var subpages []string
	for _, c := range candidates {
		if seen[c] {
			continue
		}
		seen[c] = true
		subpages = append(subpages, c)
	}
	return subpages
}

// contentHash fingerprints page content for duplicate detection.
func contentHash(content addrfind.PageContent) uint64 {
	return xxhash.Sum64String(content.HTML)
}
