package gs11n

// Compact fields trade the forward/backward-compatibility a wired-id
// prefix buys for a smaller encoding: no per-field tag byte, no per-field
// length, just every field's bare value back to back in a fixed declared
// order (§4.9). A Fielder implementation for a compact-annotated aggregate
// calls a Codec's Encode directly instead of going through encodeWiredID,
// and its FieldDecoder counterpart reads the same fields back in that exact
// order with no tag-dispatch loop and no skip-unknown-tag fallback —
// reordering, inserting, or removing a compact field is a breaking wire
// change with no forward compatibility, unlike a normal tagged field.
//
// RecordCompactField/EncodeCompactField/DecodeCompactField exist only to
// give generated code a uniform call shape alongside the tagged encodeX
// family; they add nothing beyond what calling a Codec's own functions
// directly would.

func RecordCompactField[T any](v T, c Codec[T]) uint64 {
	return c.Record(v)
}

func EncodeCompactField[T any](b *Buffer, v T, c Codec[T]) {
	c.Encode(b, v)
}

func DecodeCompactField[T any](r *Reader, c Codec[T]) T {
	return c.Decode(r)
}
