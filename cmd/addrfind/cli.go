package main

import (
	"io"
	"time"

	"github.com/mishra-anubhav/addrfind"
)

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Input  string `arg:"" help:"Input .xlsx file with a URL column"`
	Output string `short:"o" default:"addresses.xlsx" help:"Output .xlsx file (success + failure sheets)"`

	Strategy    string          `enum:"pattern,model" default:"pattern" help:"Extraction strategy: pattern (regex, offline) or model (Gemini)"`
	Concurrency int             `short:"c" default:"10" help:"Concurrent URL limit (1 = sequential)"`
	Timeout     time.Duration   `default:"10s" help:"Per-request fetch timeout"`
	Keywords    []string        `short:"k" help:"Override contact-link keywords (repeatable)"`
	Heuristic   bool            `help:"Enable keyword-guided block scanning (pattern strategy)"`
	Sitemap     bool            `help:"Also discover contact pages from the site's sitemap"`
	RPS         float64         `name:"rps" default:"0" help:"Per-domain requests per second for subpage fetches (0 = unthrottled)"`
	RetryDelays []time.Duration `name:"retry-delay" help:"Backoff before each subpage fetch retry (repeatable; none = single attempt)"`
	MaxSubpages int             `default:"10" help:"Maximum subpages fetched per site"`

	APIKeys []string `name:"api-key" env:"GEMINI_API_KEY" help:"Gemini API key (repeatable; spread across workers round-robin)"`

	Verbose bool `short:"v" help:"Log every fetch and per-URL outcome"`
}

// keywords returns the configured keyword set, falling back to the
// defaults.
func (c *CLI) keywords() []string {
	if len(c.Keywords) > 0 {
		return c.Keywords
	}
	return addrfind.DefaultKeywords()
}

// Dependencies holds the wired services for command execution. Tests
// inject mocks here.
type Dependencies struct {
	Stdout io.Writer
	Stderr io.Writer

	Reader     addrfind.DatasetReader
	Writer     addrfind.DatasetWriter
	Processors []addrfind.Processor
}
