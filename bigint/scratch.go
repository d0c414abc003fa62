package bigint

import (
	"math/big"
	"sync"
)

// Constant-time word primitives run over fixed spans and need transient
// space whose size depends only on the span, never on the values. The itch
// functions publish those sizes, one per primitive.

// secAddItch returns the scratch words needed by SecureAddUint64 over an
// n-word span: the span itself plus one slot for the carry out.
func secAddItch(n int) int {
	return n + 1
}

// scratch is a reusable word buffer for constant-time primitives. Buffers
// are zero on acquisition and zeroed again on release, so secret
// intermediates never linger in pooled memory.
type scratch struct {
	words []big.Word
}

var scratchPool = sync.Pool{
	New: func() interface{} { return new(scratch) },
}

// newScratch returns a buffer of exactly n zero words. Pooled buffers were
// scrubbed on release, and fresh allocations are zero, so no clearing is
// needed here.
func newScratch(n int) *scratch {
	s := scratchPool.Get().(*scratch)
	if cap(s.words) < n {
		s.words = make([]big.Word, n)
	} else {
		s.words = s.words[:n]
	}
	return s
}

// release scrubs the buffer and returns it to the pool. Callers defer it so
// the buffer cannot outlive the operation that took it.
func (s *scratch) release() {
	for i := range s.words {
		s.words[i] = 0
	}
	scratchPool.Put(s)
}
