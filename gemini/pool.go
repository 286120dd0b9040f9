package gemini

import "github.com/mishra-anubhav/addrfind"

// Pool assigns extractors to batch workers. When several API credentials
// are available, each worker gets one via fixed round-robin (worker index
// modulo pool size) so load spreads without any further coordination.
type Pool struct {
	extractors []addrfind.Extractor
}

// NewPool creates a Pool. It panics if extractors is empty, which is a
// wiring mistake rather than a runtime condition.
func NewPool(extractors []addrfind.Extractor) *Pool {
	if len(extractors) == 0 {
		panic("gemini: pool requires at least one extractor")
	}
	return &Pool{extractors: extractors}
}

// Get returns the extractor assigned to the given worker index.
func (p *Pool) Get(workerIndex int) addrfind.Extractor {
	if workerIndex < 0 {
		workerIndex = -workerIndex
	}
	return p.extractors[workerIndex%len(p.extractors)]
}

// Size returns the number of pooled extractors.
func (p *Pool) Size() int {
	return len(p.extractors)
}
