package mock

import (
	"context"

	"github.com/mishra-anubhav/addrfind"
)

var _ addrfind.Processor = (*Processor)(nil)

// Processor is a mock implementation of addrfind.Processor.
type Processor struct {
	ProcessFn func(ctx context.Context, url string) addrfind.Result
}

func (p *Processor) Process(ctx context.Context, url string) addrfind.Result {
	return p.ProcessFn(ctx, url)
}
