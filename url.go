package addrfind

import (
	"net/url"
	"strings"
)

// NormalizeURL validates a raw input URL and ensures it carries a scheme.
// Inputs without a scheme are assumed to be https. Blank or structurally
// invalid inputs return an EINVALID error and must never reach the network.
func NormalizeURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", Errorf(EINVALID, "Invalid URL")
	}

	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return "", Errorf(EINVALID, "Invalid URL")
	}

	return raw, nil
}

// Hostname returns the host portion of a URL for display and rate limiting.
// Returns an empty string if the URL cannot be parsed.
func Hostname(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Host
}
