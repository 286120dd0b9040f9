package goquery

import (
	"context"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mishra-anubhav/addrfind"
)

// Heuristic defaults. These are tunable precision knobs, not guarantees:
// the regexes accept false positives with plausible structure and reject
// addresses missing a state+ZIP tail.
const (
	// DefaultMinBlockLen is the minimum visible text length for a block
	// element to be considered by the keyword heuristic.
	DefaultMinBlockLen = 20

	// DefaultMaxBlockLen caps retained block text so a page-spanning div
	// cannot become a candidate.
	DefaultMaxBlockLen = 300
)

var (
	// streetRe matches U.S.-style street addresses: a 1-5 digit house
	// number, a street run, an optional comma, a city run, an optional
	// comma, a 2-letter uppercase state code, and a 5-digit ZIP.
	streetRe = regexp.MustCompile(`\d{1,5}\s[\w\s]{2,40},?\s?[\w\s]{2,40},?\s[A-Z]{2}\s\d{5}`)

	// stateZipRe matches the state+ZIP tail.
	stateZipRe = regexp.MustCompile(`[A-Z]{2}\s\d{5}\b`)

	// zipRe matches a bare 5-digit run.
	zipRe = regexp.MustCompile(`\b\d{5}\b`)

	// looseRe matches a digit run followed by words, the weak signal used
	// by the block heuristic.
	looseRe = regexp.MustCompile(`\d{1,5}\s[\w\s]{3,40}`)
)

// defaultBlockKeywords mark a block element as address-adjacent.
var defaultBlockKeywords = []string{
	"address",
	"location",
	"clinic",
	"directions",
	"find us",
	"visit us",
	"headquarters",
}

// Ensure PatternExtractor implements addrfind.Extractor at compile time.
var _ addrfind.Extractor = (*PatternExtractor)(nil)

// PatternExtractor finds addresses without any external service: it
// collects <address> element text, regex-scans the visible text, and
// optionally scans block-level elements with a keyword heuristic.
type PatternExtractor struct {
	heuristic     bool
	blockKeywords []string
	minBlockLen   int
	maxBlockLen   int
}

// PatternOption configures a PatternExtractor.
type PatternOption func(*PatternExtractor)

// WithHeuristic enables the keyword-guided block scan. It trades precision
// for recall on pages that format addresses loosely.
func WithHeuristic() PatternOption {
	return func(e *PatternExtractor) {
		e.heuristic = true
	}
}

// WithBlockKeywords replaces the block heuristic keyword set.
func WithBlockKeywords(keywords []string) PatternOption {
	return func(e *PatternExtractor) {
		e.blockKeywords = keywords
	}
}

// WithBlockLengths overrides the block length bounds.
func WithBlockLengths(minLen, maxLen int) PatternOption {
	return func(e *PatternExtractor) {
		e.minBlockLen = minLen
		e.maxBlockLen = maxLen
	}
}

// NewPatternExtractor creates a PatternExtractor.
func NewPatternExtractor(opts ...PatternOption) *PatternExtractor {
	e := &PatternExtractor{
		blockKeywords: defaultBlockKeywords,
		minBlockLen:   DefaultMinBlockLen,
		maxBlockLen:   DefaultMaxBlockLen,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract returns deduplicated address candidates from the content.
// <address> element hits are collected first, then regex hits over the
// visible text, then heuristic block hits when enabled. All qualifying
// strings are kept; deduplication is the only pruning.
func (e *PatternExtractor) Extract(_ context.Context, content addrfind.PageContent) ([]string, error) {
	var candidates []string

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content.HTML))
	if err == nil {
		doc.Find("address").Each(func(_ int, sel *goquery.Selection) {
			candidates = append(candidates, normalizeSpace(sel.Text()))
		})
	}

	text := content.Text
	if text == "" && content.HTML != "" {
		text = VisibleText(content.HTML)
	}
	candidates = append(candidates, streetRe.FindAllString(text, -1)...)

	if e.heuristic && doc != nil {
		candidates = append(candidates, e.scanBlocks(doc)...)
	}

	return addrfind.DedupeAddresses(candidates), nil
}

// scanBlocks collects block-level elements that look address-adjacent:
// long enough to carry an address, keyword- or digit-run-flagged, and
// containing either a state+ZIP tail or a bare 5-digit run.
func (e *PatternExtractor) scanBlocks(doc *goquery.Document) []string {
	var blocks []string
	doc.Find("div, p, li, span").Each(func(_ int, sel *goquery.Selection) {
		text := normalizeSpace(sel.Text())
		if len(text) < e.minBlockLen || len(text) > e.maxBlockLen {
			return
		}

		lower := strings.ToLower(text)
		flagged := false
		for _, kw := range e.blockKeywords {
			if strings.Contains(lower, kw) {
				flagged = true
				break
			}
		}
		if !flagged && !looseRe.MatchString(text) {
			return
		}

		if !stateZipRe.MatchString(text) && !zipRe.MatchString(text) {
			return
		}

		blocks = append(blocks, text)
	})
	return blocks
}

// normalizeSpace collapses runs of whitespace into single spaces.
func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
