package gs11n

import "sync"

// Metadata is the size cache described in §4.3: a recursive tree whose every
// node carries the exact byte count its sub-value will occupy on encode, and
// a sparse set of children keyed by a child-slot index. Record populates the
// tree; Encode consumes it in the same slot order it was written in. The
// mapping conventions for child-slot indices are fixed by the value kind
// doing the recursing (aggregate: field id: sequence: element index;
// mapping: 2i/2i+1; optional: 0) — Metadata itself is agnostic to them.
type Metadata struct {
	Size     uint64
	children map[uint64]*Metadata
}

// Get returns the child node for slot, creating it on first access. Children
// created here must be visited in the same order during Encode as they were
// during Record, or the encoder either reads a freshly-zeroed node (an
// undersized write) or silently reuses a stale size (a buffer overflow).
func (m *Metadata) Get(slot uint64) *Metadata {
	if m.children == nil {
		m.children = make(map[uint64]*Metadata, 4)
	}
	c, ok := m.children[slot]
	if !ok {
		c = &Metadata{}
		m.children[slot] = c
	}
	return c
}

// reset clears a node and all of its children for reuse from the pool.
func (m *Metadata) reset() {
	m.Size = 0
	for k := range m.children {
		delete(m.children, k)
	}
}

var metadataPool = sync.Pool{
	New: func() any { return &Metadata{} },
}

// newMetadata obtains a pooled, zeroed root node for one encode cycle.
// Release it with releaseMetadata once the encoded buffer has been produced.
func newMetadata() *Metadata {
	m := metadataPool.Get().(*Metadata)
	m.reset()
	return m
}

// releaseMetadata returns a root node (and, transitively, nothing else —
// children are GC'd normally) to the pool. Only call this on a node obtained
// from newMetadata, and only after encode has finished reading it.
func releaseMetadata(m *Metadata) {
	metadataPool.Put(m)
}
