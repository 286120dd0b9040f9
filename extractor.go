package addrfind

import (
	"context"
	"strings"
)

// AddressSeparator joins multiple extracted addresses for presentation.
const AddressSeparator = " | "

// Address is a structured U.S. mailing address candidate produced by the
// model extraction strategy. The pattern strategy produces free-form
// strings directly.
type Address struct {
	Street string
	City   string
	State  string
	Zip    string
}

// String flattens the address into a single comma-joined line.
// Empty components are omitted.
func (a Address) String() string {
	parts := make([]string, 0, 4)
	for _, p := range []string{a.Street, a.City, a.State, a.Zip} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// Extractor finds mailing address candidates in page content.
type Extractor interface {
	// Extract returns formatted, deduplicated address strings found in the
	// content. Internal failures (a malformed model response, an
	// unreachable capability) degrade to an empty result; Extract reports
	// an error only when the whole strategy is unusable.
	Extract(ctx context.Context, content PageContent) ([]string, error)
}

// DedupeAddresses trims candidates, drops the ones that are empty after
// trimming, and removes exact-string duplicates. First-seen order is
// preserved so batch output stays deterministic.
func DedupeAddresses(candidates []string) []string {
	seen := make(map[string]bool, len(candidates))
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		c = strings.TrimSpace(c)
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}

// JoinAddresses renders a deduplicated address list as a single
// presentation string.
func JoinAddresses(addresses []string) string {
	return strings.Join(addresses, AddressSeparator)
}
