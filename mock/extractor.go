package mock

import (
	"context"

	"github.com/mishra-anubhav/addrfind"
)

var _ addrfind.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of addrfind.Extractor.
type Extractor struct {
	ExtractFn func(ctx context.Context, content addrfind.PageContent) ([]string, error)
}

func (e *Extractor) Extract(ctx context.Context, content addrfind.PageContent) ([]string, error) {
	return e.ExtractFn(ctx, content)
}
