package gs11n

// Variant is the tagged-union counterpart to the open-ended dynamic
// registry in registry.go: a closed, compile-time-known set of cases
// discriminated by a small integer tag, framed as a tag varint followed by a
// length-prefixed body (unlike a dynamic field, which has no length prefix
// after its type id) and resolved by a plain
// switch in generated code instead of a runtime vtable lookup, since every
// case is known statically and needs no cross-module registration (§4.9).
//
// RecordVariant/EncodeVariant mirror recordAggregate/encodeAggregate with
// one extra leading varint; DecodeVariantTag hands the caller's switch a
// Reader bounded to just the matched case's body.

func RecordVariant(tag uint32, inner Fielder, m *Metadata) uint64 {
	tagSize := varintSize(uint64(tag))
	innerSize := inner.RecordFields(m)
	m.Size = innerSize
	return tagSize + varintSize(innerSize) + innerSize
}

func EncodeVariant(b *Buffer, tag uint32, inner Fielder, m *Metadata) {
	appendVarint(b, uint64(tag))
	appendVarint(b, m.Size)
	inner.EncodeFields(b, m)
}

// DecodeVariantTag reads a variant's discriminant and returns a Reader
// bounded to its case body, for the caller to dispatch on with a switch and
// decode with whichever case's DecodeFields matches the tag. An
// unrecognized tag is the caller's responsibility to reject with
// ErrInvalidType — Variant itself has no registry to consult.
func DecodeVariantTag(r *Reader) (tag uint32, body Reader) {
	tag = uint32(r.readVarint())
	body, _ = decodeAggregateBody(r)
	return tag, body
}
