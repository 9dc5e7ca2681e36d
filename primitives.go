package gs11n

// Uint128 and Int128 stand in for the 128-bit integer types of §4.1: Go has
// no native int128, so both are represented as a high/low 64-bit pair, Lo
// holding the least-significant half. Bits128 framing always treats the pair
// as a single 16-byte little-endian scalar (Buffer.AppendFixed128 /
// Reader.ReadFixed128), never as two independent Bits64 fields.
type Uint128 struct {
	Hi uint64
	Lo uint64
}

// Int128 reuses Uint128's bit pattern; sign lives in the top bit of Hi, the
// same two's-complement convention a native int128 would use.
type Int128 struct {
	Hi uint64
	Lo uint64
}

func (v Int128) asUint128() Uint128 { return Uint128{Hi: v.Hi, Lo: v.Lo} }

func int128FromUint128(u Uint128) Int128 { return Int128{Hi: u.Hi, Lo: u.Lo} }

// Char is a single Unicode scalar value, framed as a fixed-width Bits32
// value (unlike a plain int32, which is varint+zigzag). The distinction
// exists so wire-compatible interop tools can tell "small integer that is
// usually small" apart from "codepoint, always four bytes" at the type
// level (§4.1 Added).
type Char rune

// --- fixed-width scalar record/encode/decode trios ---
//
// Each trio mirrors the shape the field-encoding contract in message.go
// expects: recordX returns the field's byte count for the metadata cache,
// encodeX writes the wired-id prefix then the value, decodeX assumes the
// wired-id has already been consumed and reads only the payload.

func recordBool(uint64) uint64    { return 1 }
func recordUint8(uint8) uint64    { return 1 }
func recordInt8(int8) uint64      { return 1 }
func recordChar(Char) uint64      { return 4 }
func recordUint128(Uint128) uint64 { return 16 }
func recordInt128(Int128) uint64   { return 16 }
func recordFloat32(float32) uint64 { return 4 }
func recordFloat64(float64) uint64 { return 8 }

// recordUint16 / recordInt16 / recordUint32 / recordInt32 / recordUint64 /
// recordInt64 size a plain integer field. §4.1.1/§4.1.2 make Varint (with
// zigzag for signed types) the default wire type for these widths — Bits16/
// 32/64 are reserved for the explicitly-opt-in fixed family below (§4.1.3).
func recordUint16(v uint16) uint64 { return varintSize(uint64(v)) }
func recordInt16(v int16) uint64   { return varintSize(uint64(zigzag16(v))) }
func recordUint32(v uint32) uint64 { return varintSize(uint64(v)) }
func recordInt32(v int32) uint64   { return varintSize(uint64(zigzag32(v))) }
func recordUint64(v uint64) uint64 { return varintSize(v) }
func recordInt64(v int64) uint64   { return varintSize(zigzag64(v)) }

func recordVarintU(x uint64) uint64 { return varintSize(x) }
func recordVarintS(x int64) uint64  { return varintSize(zigzag64(x)) }

// --- fixed-width opt-in family (§4.1.3) ---
//
// recordFixedUint16 and friends reproduce the constant-width encoding a
// field can ask for explicitly instead of the Varint default above — same
// trio shape, wire type Bits16/32/64 rather than Varint.

func recordFixedUint16(uint16) uint64 { return 2 }
func recordFixedInt16(int16) uint64   { return 2 }
func recordFixedUint32(uint32) uint64 { return 4 }
func recordFixedInt32(int32) uint64   { return 4 }
func recordFixedUint64(uint64) uint64 { return 8 }
func recordFixedInt64(int64) uint64   { return 8 }

func recordString(s string) uint64 {
	n := uint64(len(s))
	return varintSize(n) + n
}

func recordBytes(b []byte) uint64 {
	n := uint64(len(b))
	return varintSize(n) + n
}

func encodeBool(b *Buffer, fieldID uint64, v bool) {
	encodeWiredID(b, fieldID, Bits8)
	b.AppendBool(v)
}

func encodeUint8(b *Buffer, fieldID uint64, v uint8) {
	encodeWiredID(b, fieldID, Bits8)
	b.AppendUint8(v)
}

func encodeInt8(b *Buffer, fieldID uint64, v int8) {
	encodeWiredID(b, fieldID, Bits8)
	b.AppendInt8(v)
}

// encodeUint16 / encodeInt16 / encodeUint32 / encodeInt32 / encodeUint64 /
// encodeInt64 write a plain integer field as a Varint (zigzag for signed),
// the §4.1.1/§4.1.2 default. Use the encodeFixedX family below when a field
// asks for the fixed-width opt-in encoding instead.
func encodeUint16(b *Buffer, fieldID uint64, v uint16) {
	encodeWiredID(b, fieldID, Varint)
	b.AppendVarintU(uint64(v))
}

func encodeInt16(b *Buffer, fieldID uint64, v int16) {
	encodeWiredID(b, fieldID, Varint)
	b.AppendVarintU(uint64(zigzag16(v)))
}

func encodeUint32(b *Buffer, fieldID uint64, v uint32) {
	encodeWiredID(b, fieldID, Varint)
	b.AppendVarintU(uint64(v))
}

func encodeInt32(b *Buffer, fieldID uint64, v int32) {
	encodeWiredID(b, fieldID, Varint)
	b.AppendVarintU(uint64(zigzag32(v)))
}

func encodeChar(b *Buffer, fieldID uint64, v Char) {
	encodeWiredID(b, fieldID, Bits32)
	b.AppendFixed32(uint32(v))
}

func encodeUint64(b *Buffer, fieldID uint64, v uint64) {
	encodeWiredID(b, fieldID, Varint)
	b.AppendVarintU(v)
}

func encodeInt64(b *Buffer, fieldID uint64, v int64) {
	encodeWiredID(b, fieldID, Varint)
	b.AppendVarintU(uint64(zigzag64(v)))
}

// encodeFixedUint16 and friends write the §4.1.3 opt-in fixed-width
// encoding: constant byte count, no zigzag, wire type Bits16/32/64.

func encodeFixedUint16(b *Buffer, fieldID uint64, v uint16) {
	encodeWiredID(b, fieldID, Bits16)
	b.AppendFixed16(v)
}

func encodeFixedInt16(b *Buffer, fieldID uint64, v int16) {
	encodeWiredID(b, fieldID, Bits16)
	b.AppendFixed16(uint16(v))
}

func encodeFixedUint32(b *Buffer, fieldID uint64, v uint32) {
	encodeWiredID(b, fieldID, Bits32)
	b.AppendFixed32(v)
}

func encodeFixedInt32(b *Buffer, fieldID uint64, v int32) {
	encodeWiredID(b, fieldID, Bits32)
	b.AppendFixed32(uint32(v))
}

func encodeFixedUint64(b *Buffer, fieldID uint64, v uint64) {
	encodeWiredID(b, fieldID, Bits64)
	b.AppendFixed64(v)
}

func encodeFixedInt64(b *Buffer, fieldID uint64, v int64) {
	encodeWiredID(b, fieldID, Bits64)
	b.AppendFixed64(uint64(v))
}

func encodeUint128(b *Buffer, fieldID uint64, v Uint128) {
	encodeWiredID(b, fieldID, Bits128)
	b.AppendFixed128(v)
}

func encodeInt128(b *Buffer, fieldID uint64, v Int128) {
	encodeWiredID(b, fieldID, Bits128)
	b.AppendFixed128(v.asUint128())
}

func encodeFloat32(b *Buffer, fieldID uint64, v float32) {
	encodeWiredID(b, fieldID, Bits32)
	b.AppendFloat32(v)
}

func encodeFloat64(b *Buffer, fieldID uint64, v float64) {
	encodeWiredID(b, fieldID, Bits64)
	b.AppendFloat64(v)
}

func encodeVarintU(b *Buffer, fieldID uint64, v uint64) {
	encodeWiredID(b, fieldID, Varint)
	b.AppendVarintU(v)
}

func encodeVarintS(b *Buffer, fieldID uint64, v int64) {
	encodeWiredID(b, fieldID, Varint)
	b.AppendVarintS(v)
}

func encodeString(b *Buffer, fieldID uint64, v string) {
	encodeWiredID(b, fieldID, LengthDelimited)
	b.AppendString(v)
}

func encodeBytes(b *Buffer, fieldID uint64, v []byte) {
	encodeWiredID(b, fieldID, LengthDelimited)
	b.AppendLenPrefixed(v)
}

// decodeX functions assume the wired-id has already been consumed by the
// caller's tag-dispatch loop and the wire type has already been validated
// against what the field expects.

func decodeBool(r *Reader) bool       { return r.ReadBool() }
func decodeUint8(r *Reader) uint8     { return r.ReadUint8() }
func decodeInt8(r *Reader) int8       { return r.ReadInt8() }
func decodeUint16(r *Reader) uint16   { return uint16(r.ReadVarintU()) }
func decodeInt16(r *Reader) int16     { return unzigzag16(uint16(r.ReadVarintU())) }
func decodeUint32(r *Reader) uint32   { return uint32(r.ReadVarintU()) }
func decodeInt32(r *Reader) int32     { return unzigzag32(uint32(r.ReadVarintU())) }
func decodeChar(r *Reader) Char       { return Char(r.ReadFixed32()) }
func decodeUint64(r *Reader) uint64   { return r.ReadVarintU() }
func decodeInt64(r *Reader) int64     { return r.ReadVarintS() }
func decodeUint128(r *Reader) Uint128 { return r.ReadFixed128() }
func decodeInt128(r *Reader) Int128   { return int128FromUint128(r.ReadFixed128()) }
func decodeFloat32(r *Reader) float32 { return r.ReadFloat32() }
func decodeFloat64(r *Reader) float64 { return r.ReadFloat64() }
func decodeVarintU(r *Reader) uint64  { return r.ReadVarintU() }
func decodeVarintS(r *Reader) int64   { return r.ReadVarintS() }
func decodeString(r *Reader) string   { return r.ReadString() }
func decodeBytes(r *Reader) []byte    { return r.ReadLenPrefixed() }

func decodeFixedUint16(r *Reader) uint16 { return r.ReadFixed16() }
func decodeFixedInt16(r *Reader) int16   { return int16(r.ReadFixed16()) }
func decodeFixedUint32(r *Reader) uint32 { return r.ReadFixed32() }
func decodeFixedInt32(r *Reader) int32   { return int32(r.ReadFixed32()) }
func decodeFixedUint64(r *Reader) uint64 { return r.ReadFixed64() }
func decodeFixedInt64(r *Reader) int64   { return int64(r.ReadFixed64()) }
