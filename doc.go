// Package gs11n implements a compact binary serialization codec: fixed and
// variable-width scalar framing, length-delimited aggregates addressed by
// small integer field ids rather than names, a two-phase record-then-encode
// pipeline that preallocates its output buffer to the exact encoded size,
// and a bounded decode pipeline that tolerates unknown fields by skipping
// them.
//
// Generated code (a separate tool, not part of this package) emits the
// Fielder and FieldDecoder implementations for application message types;
// this package supplies everything those implementations are built out of:
// Buffer and Reader for the wire primitives, Metadata for the size cache,
// the container codecs in container_*.go, and the dynamic-type registry in
// registry.go for interface-typed fields resolved across module boundaries.
package gs11n
