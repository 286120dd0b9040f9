// Command addrfind extracts physical U.S. mailing addresses from a
// spreadsheet of website URLs. For every URL it crawls the homepage and
// likely contact pages, runs the selected extraction strategy, and writes
// a workbook with an address sheet and a failure sheet.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/google/uuid"
	"github.com/mishra-anubhav/addrfind"
	"github.com/mishra-anubhav/addrfind/crawl"
	"github.com/mishra-anubhav/addrfind/gemini"
	"github.com/mishra-anubhav/addrfind/goquery"
	addrhttp "github.com/mishra-anubhav/addrfind/http"
	addrslog "github.com/mishra-anubhav/addrfind/slog"
	"github.com/mishra-anubhav/addrfind/xlsx"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("addrfind"),
		kong.Description("Extract physical mailing addresses from a spreadsheet of website URLs"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	deps, cleanup, err := m.wire(ctx, cli, stdout, stderr)
	if err != nil {
		return err
	}
	defer cleanup()

	return runBatch(ctx, cli, deps)
}

// wire builds the dependency graph from the parsed CLI flags.
func (m *Main) wire(ctx context.Context, cli *CLI, stdout, stderr io.Writer) (*Dependencies, func(), error) {
	logLevel := slog.LevelWarn
	if cli.Verbose {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: logLevel}))
	logger = logger.With("run", uuid.NewString())

	var fetcher addrfind.Fetcher = addrhttp.NewFetcher(addrhttp.WithTimeout(cli.Timeout))
	fetcher = addrslog.NewLoggingFetcher(fetcher, logger)
	cleanup := func() { _ = fetcher.Close() }

	links := goquery.NewLinkDiscoverer(goquery.WithKeywords(cli.keywords()))

	var sitemaps addrfind.SitemapService
	if cli.Sitemap {
		sitemaps = addrhttp.NewSitemapService(nil, cli.keywords())
	}

	rateLimiter := buildLimiter(cli.RPS)

	extractors, err := m.buildExtractors(ctx, cli, stderr)
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	processors := make([]addrfind.Processor, len(extractors))
	for i, extractor := range extractors {
		var p addrfind.Processor = &crawl.SiteProcessor{
			Fetcher:     fetcher,
			Links:       links,
			Sitemaps:    sitemaps,
			Extractor:   extractor,
			RateLimiter: rateLimiter,
			RetryDelays: cli.RetryDelays,
			MaxSubpages: cli.MaxSubpages,
		}
		processors[i] = addrslog.NewLoggingProcessor(p, logger)
	}

	deps := &Dependencies{
		Stdout:     stdout,
		Stderr:     stderr,
		Reader:     xlsx.NewReader(),
		Writer:     xlsx.NewWriter(),
		Processors: processors,
	}
	return deps, cleanup, nil
}

// buildLimiter returns a per-domain rate limiter, or nil when throttling
// is disabled.
func buildLimiter(rps float64) addrfind.DomainLimiter {
	if rps <= 0 {
		return nil
	}
	return crawl.NewDomainLimiter(rps)
}

// buildExtractors creates one extractor per available credential for the
// model strategy, or a single pattern extractor otherwise.
func (m *Main) buildExtractors(ctx context.Context, cli *CLI, stderr io.Writer) ([]addrfind.Extractor, error) {
	if cli.Strategy == "pattern" {
		var opts []goquery.PatternOption
		if cli.Heuristic {
			opts = append(opts, goquery.WithHeuristic())
		}
		return []addrfind.Extractor{goquery.NewPatternExtractor(opts...)}, nil
	}

	if len(cli.APIKeys) == 0 {
		fmt.Fprintln(stderr, "GEMINI_API_KEY not set. Get an API key at https://aistudio.google.com/apikey")
		return nil, fmt.Errorf("model strategy requires at least one API key")
	}

	extractors := make([]addrfind.Extractor, 0, len(cli.APIKeys))
	for _, key := range cli.APIKeys {
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
		}
		extractors = append(extractors, gemini.NewExtractor(client))
	}

	workers := cli.Concurrency
	if workers < 1 {
		workers = 1
	}
	pool := gemini.NewPool(extractors)
	assigned := make([]addrfind.Extractor, workers)
	for i := range assigned {
		assigned[i] = pool.Get(i)
	}
	return assigned, nil
}
