package index

import "sync/atomic"

// Handle publishes immutable index snapshots. Rebuilds produce a brand-new
// Index and Swap republishes the reference; in-flight queries keep reading
// the old snapshot, so the query path needs no locks.
type Handle struct {
	ptr atomic.Pointer[Index]
}

// NewHandle creates a handle holding ix (which may be nil until the first build).
func NewHandle(ix *Index) *Handle {
	h := &Handle{}
	if ix != nil {
		h.ptr.Store(ix)
	}
	return h
}

// Current returns the currently published snapshot, or nil before the first build.
func (h *Handle) Current() *Index {
	return h.ptr.Load()
}

// Swap atomically republishes a new snapshot.
func (h *Handle) Swap(ix *Index) {
	h.ptr.Store(ix)
}
