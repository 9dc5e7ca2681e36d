package gs11n

// Optional mirrors the original implementation's Option<T>: a value that may
// or may not be present. Its wire type is LengthDelimited (§4.2.3): absence
// is a literal varint(0); presence is varint(inner_size) followed by the
// inner value's own encoding. A present value whose inner encoding happens
// to be zero bytes long is therefore indistinguishable on the wire from an
// absent one — §9's Design Notes call this out explicitly as an accepted
// ambiguity, not a bug. RecordOptional/EncodeOptional do not use a Metadata
// node: EncodeOptional recomputes the inner size through c.Record rather
// than reading a cached child slot.
type Optional[T any] struct {
	Value T
	Set   bool
}

func Some[T any](v T) Optional[T] { return Optional[T]{Value: v, Set: true} }

func None[T any]() Optional[T] { return Optional[T]{} }

// RecordOptional sizes an optional field: varint(0) when absent, otherwise
// the inner size plus the varint needed to encode it.
func RecordOptional[T any](o Optional[T], c Codec[T]) uint64 {
	if !o.Set {
		return varintSize(0)
	}
	innerSize := c.Record(o.Value)
	return varintSize(innerSize) + innerSize
}

func EncodeOptional[T any](b *Buffer, o Optional[T], c Codec[T]) {
	if !o.Set {
		appendVarint(b, 0)
		return
	}
	appendVarint(b, c.Record(o.Value))
	c.Encode(b, o.Value)
}

// DecodeOptional reads the leading length varint to tell presence from
// absence; a value of 0 means absent regardless of what c.Decode might make
// of zero bytes, matching the original's Option::decode. The length itself
// is not used to bound the inner decode — c.Decode is trusted to consume
// exactly its own bytes, the same trust relationship every other container
// in this package has with its element codec.
func DecodeOptional[T any](r *Reader, c Codec[T]) Optional[T] {
	size := r.readVarint()
	if size == 0 {
		return Optional[T]{}
	}
	return Optional[T]{Value: c.Decode(r), Set: true}
}
