// Package gemini implements model-based address extraction using Google
// Gemini.
package gemini

import (
	"context"
	"encoding/json"
	"strings"
	"unicode/utf8"

	"github.com/mishra-anubhav/addrfind"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// ChunkSize is the maximum number of bytes of page text sent per model
// call.
const ChunkSize = 12000

const systemInstruction = "You are a reliable assistant for extracting real-world physical mailing addresses from web page text."

// Ensure Extractor implements addrfind.Extractor at compile time.
var _ addrfind.Extractor = (*Extractor)(nil)

// Extractor implements addrfind.Extractor by delegating page text to
// Gemini and parsing its structured reply.
type Extractor struct {
	client *genai.Client
}

// NewExtractor creates a new Extractor.
func NewExtractor(client *genai.Client) *Extractor {
	return &Extractor{client: client}
}

// Extract sends the content's visible text to the model in fixed-size
// chunks and merges the returned address tuples. A chunk whose call fails
// or whose response does not parse contributes nothing; Extract never
// surfaces a per-chunk failure as an error.
func (e *Extractor) Extract(ctx context.Context, content addrfind.PageContent) ([]string, error) {
	text := strings.TrimSpace(content.Text)
	if text == "" {
		return nil, nil
	}

	var candidates []string
	for _, chunk := range chunkText(text, ChunkSize) {
		raw, err := e.generate(ctx, chunk)
		if err != nil {
			continue
		}
		for _, addr := range ParseAddresses(raw) {
			candidates = append(candidates, addr.String())
		}
	}

	return addrfind.DedupeAddresses(candidates), nil
}

// generate performs one model call for a single text chunk.
func (e *Extractor) generate(ctx context.Context, chunk string) (string, error) {
	temp := float32(0)
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: systemInstruction}},
		},
		Temperature: &temp,
	}

	result, err := e.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: BuildPrompt(chunk)}},
		}},
		config,
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", addrfind.Errorf(addrfind.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// BuildPrompt builds the extraction prompt for one chunk of page text.
func BuildPrompt(text string) string {
	var sb strings.Builder
	sb.WriteString("Return only physical mailing addresses in U.S. format as a JSON list of lists like:\n")
	sb.WriteString(`[["123 Main St", "Dallas", "TX", "75201"], ["456 Center Blvd", "San Jose", "CA", "95110"]]`)
	sb.WriteString("\n\nDo not include phone numbers, emails, names, or anything else.\n\n")
	sb.WriteString("Here is the extracted page content:\n")
	sb.WriteString(text)
	return sb.String()
}

// ParseAddresses parses a model reply into address candidates. The reply
// is expected to be a JSON array of 4-element string arrays, possibly
// wrapped in a markdown code fence. Anything else parses to nothing.
func ParseAddresses(raw string) []addrfind.Address {
	raw = StripCodeFence(raw)
	if raw == "" {
		return nil
	}

	var tuples [][]string
	if err := json.Unmarshal([]byte(raw), &tuples); err != nil {
		return nil
	}

	var addresses []addrfind.Address
	for _, t := range tuples {
		if len(t) != 4 {
			continue
		}
		addr := addrfind.Address{Street: t[0], City: t[1], State: t[2], Zip: t[3]}
		if addr.String() == "" {
			continue
		}
		addresses = append(addresses, addr)
	}
	return addresses
}

// StripCodeFence removes a wrapping markdown code fence such as ```json or
// ```python from a model reply.
func StripCodeFence(raw string) string {
	raw = strings.TrimSpace(raw)
	for _, prefix := range []string{"```python", "```json", "```"} {
		if strings.HasPrefix(raw, prefix) {
			raw = strings.TrimSpace(strings.TrimPrefix(raw, prefix))
			break
		}
	}
	if strings.HasSuffix(raw, "```") {
		raw = strings.TrimSpace(strings.TrimSuffix(raw, "```"))
	}
	return raw
}

// chunkText splits text into segments of at most size bytes, backing off
// to rune boundaries so multi-byte characters are never split.
func chunkText(text string, size int) []string {
	if size <= 0 || len(text) <= size {
		return []string{text}
	}

	var chunks []string
	for len(text) > size {
		cut := size
		for cut > 0 && !utf8.RuneStart(text[cut]) {
			cut--
		}
		if cut == 0 {
			cut = size
		}
		chunks = append(chunks, text[:cut])
		text = text[cut:]
	}
	if text != "" {
		chunks = append(chunks, text)
	}
	return chunks
}
