package claims

import (
	"sync"
	"sync/atomic"
)

var (
	defaultExtractor   atomic.Pointer[Extractor]
	defaultExtractorMu sync.Mutex
)

// getDefaultExtractor returns the shared default extractor, creating it
// lazily. The extractor is immutable, so concurrent readers need no further
// synchronization.
func getDefaultExtractor() *Extractor {
	// Fast path: extractor already exists
	if e := defaultExtractor.Load(); e != nil {
		return e
	}

	defaultExtractorMu.Lock()
	defer defaultExtractorMu.Unlock()

	if e := defaultExtractor.Load(); e != nil {
		return e
	}
	e := New()
	defaultExtractor.Store(e)
	return e
}
