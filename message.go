package gs11n

// Fielder is the output contract a generator (out of scope here — see
// cmd/ in the upstream reflection-based prototype this package grew out
// of) emits one implementation of per aggregate type. RecordFields walks
// every present field, writing each one's byte count into the
// corresponding Metadata child slot (field id as the slot key, §4.3) and
// returning the aggregate's own total. EncodeFields re-walks the exact
// same fields in the exact same order, reading each size back out of the
// Metadata tree RecordFields built.
//
// Hand-written fixture types in this package's tests implement Fielder
// directly in place of generated code.
type Fielder interface {
	RecordFields(m *Metadata) uint64
	EncodeFields(b *Buffer, m *Metadata)
}

// FieldDecoder is a Fielder's decode-side counterpart: a loop over wired-id
// prefixes that dispatches known field ids into the receiver and skips
// everything else via Reader.SkipValue, the forward/backward compatibility
// mechanism of §4.4.4. DecodeFields assumes it owns r until the length its
// caller already consumed (from the enclosing LengthDelimited framing) runs
// out; it does not read a length prefix of its own.
type FieldDecoder interface {
	DecodeFields(r *Reader, byteLength uint64)
}

// Marshal records then encodes v in one call: Record determines the exact
// output size so Encode can append into a buffer allocated without
// reallocation (§4.5).
func Marshal(v Fielder) []byte {
	m := newMetadata()
	defer releaseMetadata(m)
	size := v.RecordFields(m)
	buf := NewBuffer(size)
	v.EncodeFields(&buf, m)
	return buf.Bytes
}

// Unmarshal decodes data into v, converting any internal codecPanic raised
// by a bounds violation, an unresolvable prefab id, or a malformed varint
// into a returned error (§4.6).
func Unmarshal(data []byte, v FieldDecoder) (err error) {
	return unmarshalWithLimits(data, v, nil, DefaultLimits)
}

// UnmarshalWithPrefab is Unmarshal for documents containing Prefab-wired
// fields; loader resolves their ids to concrete bytes (§4.7).
func UnmarshalWithPrefab(data []byte, v FieldDecoder, loader PrefabLoader) (err error) {
	return unmarshalWithLimits(data, v, loader, DefaultLimits)
}

// recordAggregate and encodeAggregate are the LengthDelimited framing any
// nested Fielder value (a struct field whose type is itself a message) is
// wrapped in: a varint byte length followed by that many bytes of the
// inner value's own field stream. The outer field's own wired-id has
// already been written/consumed by the caller; these two only handle the
// inner length prefix and body.

func recordAggregate(inner Fielder, m *Metadata) uint64 {
	innerSize := inner.RecordFields(m)
	m.Size = innerSize
	return varintSize(innerSize) + innerSize
}

func encodeAggregate(b *Buffer, inner Fielder, m *Metadata) {
	appendVarint(b, m.Size)
	inner.EncodeFields(b, m)
}

// decodeAggregateBody reads the LengthDelimited length prefix for a nested
// message field and hands the caller back a Reader bounded to exactly that
// many bytes, so a nested DecodeFields cannot walk past its own message's
// end into the parent's remaining fields.
func decodeAggregateBody(r *Reader) (body Reader, length uint64) {
	if r.budget != nil {
		r.budget.enterNestedMessage()
	}
	length = r.readVarint()
	raw := r.Read(length)
	body = Reader{bytes: raw, prefab: r.prefab, budget: r.budget}
	return body, length
}
