package gs11n

// Builder is a fluent, ad hoc way to assemble a message body without a
// generated Fielder implementation — useful for one-off tooling, tests, and
// bridging data that doesn't have a static Go type. Unlike Marshal, Builder
// does not go through the Record/Metadata two-phase pipeline: each Append
// call writes straight into a plain growable Buffer, so there's no size to
// precompute. Nested documents (AppendMessage) still need their own length
// prefix, which Builder computes from the sub-builder's already-finished
// byte length rather than a Metadata node.
type Builder struct {
	body Buffer
}

func NewBuilder() *Builder {
	return &Builder{}
}

func (d *Builder) AppendBool(fieldID uint64, v bool) *Builder {
	encodeBool(&d.body, fieldID, v)
	return d
}

func (d *Builder) AppendUint8(fieldID uint64, v uint8) *Builder {
	encodeUint8(&d.body, fieldID, v)
	return d
}

func (d *Builder) AppendInt8(fieldID uint64, v int8) *Builder {
	encodeInt8(&d.body, fieldID, v)
	return d
}

func (d *Builder) AppendUint16(fieldID uint64, v uint16) *Builder {
	encodeUint16(&d.body, fieldID, v)
	return d
}

func (d *Builder) AppendInt16(fieldID uint64, v int16) *Builder {
	encodeInt16(&d.body, fieldID, v)
	return d
}

func (d *Builder) AppendUint32(fieldID uint64, v uint32) *Builder {
	encodeUint32(&d.body, fieldID, v)
	return d
}

func (d *Builder) AppendInt32(fieldID uint64, v int32) *Builder {
	encodeInt32(&d.body, fieldID, v)
	return d
}

func (d *Builder) AppendChar(fieldID uint64, v Char) *Builder {
	encodeChar(&d.body, fieldID, v)
	return d
}

func (d *Builder) AppendUint64(fieldID uint64, v uint64) *Builder {
	encodeUint64(&d.body, fieldID, v)
	return d
}

func (d *Builder) AppendInt64(fieldID uint64, v int64) *Builder {
	encodeInt64(&d.body, fieldID, v)
	return d
}

// AppendFixedUint16 / AppendFixedInt16 / AppendFixedUint32 / AppendFixedInt32
// / AppendFixedUint64 / AppendFixedInt64 append the §4.1.3 opt-in fixed-width
// encoding instead of the Varint default AppendUint16 and friends use.
func (d *Builder) AppendFixedUint16(fieldID uint64, v uint16) *Builder {
	encodeFixedUint16(&d.body, fieldID, v)
	return d
}

func (d *Builder) AppendFixedInt16(fieldID uint64, v int16) *Builder {
	encodeFixedInt16(&d.body, fieldID, v)
	return d
}

func (d *Builder) AppendFixedUint32(fieldID uint64, v uint32) *Builder {
	encodeFixedUint32(&d.body, fieldID, v)
	return d
}

func (d *Builder) AppendFixedInt32(fieldID uint64, v int32) *Builder {
	encodeFixedInt32(&d.body, fieldID, v)
	return d
}

func (d *Builder) AppendFixedUint64(fieldID uint64, v uint64) *Builder {
	encodeFixedUint64(&d.body, fieldID, v)
	return d
}

func (d *Builder) AppendFixedInt64(fieldID uint64, v int64) *Builder {
	encodeFixedInt64(&d.body, fieldID, v)
	return d
}

func (d *Builder) AppendUint128(fieldID uint64, v Uint128) *Builder {
	encodeUint128(&d.body, fieldID, v)
	return d
}

func (d *Builder) AppendInt128(fieldID uint64, v Int128) *Builder {
	encodeInt128(&d.body, fieldID, v)
	return d
}

func (d *Builder) AppendFloat32(fieldID uint64, v float32) *Builder {
	encodeFloat32(&d.body, fieldID, v)
	return d
}

func (d *Builder) AppendFloat64(fieldID uint64, v float64) *Builder {
	encodeFloat64(&d.body, fieldID, v)
	return d
}

func (d *Builder) AppendVarintU(fieldID uint64, v uint64) *Builder {
	encodeVarintU(&d.body, fieldID, v)
	return d
}

func (d *Builder) AppendVarintS(fieldID uint64, v int64) *Builder {
	encodeVarintS(&d.body, fieldID, v)
	return d
}

func (d *Builder) AppendString(fieldID uint64, v string) *Builder {
	encodeString(&d.body, fieldID, v)
	return d
}

func (d *Builder) AppendBytes(fieldID uint64, v []byte) *Builder {
	encodeBytes(&d.body, fieldID, v)
	return d
}

// AppendMessage nests another Builder's finished body as a LengthDelimited
// field, the ad hoc equivalent of a nested Fielder value.
func (d *Builder) AppendMessage(fieldID uint64, value *Builder) *Builder {
	encodeWiredID(&d.body, fieldID, LengthDelimited)
	appendVarint(&d.body, uint64(len(value.body.Bytes)))
	d.body.appendBytes(value.body.Bytes)
	return d
}

// Bytes returns the assembled message body.
func (d *Builder) Bytes() []byte {
	return d.body.Bytes
}
