package gs11n

import "unsafe"

// Codec bundles the record/encode/decode trio for one element type, the
// shape every container in this file is parameterized over. FixedWidth is
// nonzero for scalar types whose wire representation is a constant number
// of bytes; when it's set and the host is little-endian, sequences of that
// element type skip the element-by-element loop entirely and blit the
// underlying Go slice's memory straight onto the wire (§4.2.1) — the same
// trick the reflection-driven slice walker used pointer arithmetic for, now
// expressed as a single unsafe.Slice reinterpretation instead of a loop.
type Codec[T any] struct {
	WireType   WireType
	FixedWidth uint64
	Record     func(T) uint64
	Encode     func(*Buffer, T)
	Decode     func(*Reader) T
}

var Uint8Codec = Codec[uint8]{WireType: Bits8, FixedWidth: 1,
	Record: recordUint8, Encode: func(b *Buffer, v uint8) { b.AppendUint8(v) }, Decode: decodeUint8}

var Int8Codec = Codec[int8]{WireType: Bits8, FixedWidth: 1,
	Record: recordInt8, Encode: func(b *Buffer, v int8) { b.AppendInt8(v) }, Decode: decodeInt8}

var BoolCodec = Codec[bool]{WireType: Bits8, FixedWidth: 1,
	Record: func(bool) uint64 { return 1 }, Encode: func(b *Buffer, v bool) { b.AppendBool(v) }, Decode: decodeBool}

// Uint16Codec / Int16Codec / Uint32Codec / Int32Codec / Uint64Codec /
// Int64Codec default to Varint+zigzag (§4.1.1/§4.1.2), like every other
// plain integer field — FixedWidth is left at zero so RecordSlice/
// EncodeSlice/DecodeSlice always take the per-element slow path. Use the
// FixedX family below to opt into the raw-blit fast path instead.
var Uint16Codec = Codec[uint16]{WireType: Varint,
	Record: recordUint16, Encode: func(b *Buffer, v uint16) { b.AppendVarintU(uint64(v)) }, Decode: decodeUint16}

var Int16Codec = Codec[int16]{WireType: Varint,
	Record: recordInt16, Encode: func(b *Buffer, v int16) { b.AppendVarintU(uint64(zigzag16(v))) }, Decode: decodeInt16}

var Uint32Codec = Codec[uint32]{WireType: Varint,
	Record: recordUint32, Encode: func(b *Buffer, v uint32) { b.AppendVarintU(uint64(v)) }, Decode: decodeUint32}

var Int32Codec = Codec[int32]{WireType: Varint,
	Record: recordInt32, Encode: func(b *Buffer, v int32) { b.AppendVarintU(uint64(zigzag32(v))) }, Decode: decodeInt32}

var CharCodec = Codec[Char]{WireType: Bits32, FixedWidth: 4,
	Record: recordChar, Encode: func(b *Buffer, v Char) { b.AppendFixed32(uint32(v)) }, Decode: decodeChar}

var Uint64Codec = Codec[uint64]{WireType: Varint,
	Record: recordUint64, Encode: func(b *Buffer, v uint64) { b.AppendVarintU(v) }, Decode: decodeUint64}

var Int64Codec = Codec[int64]{WireType: Varint,
	Record: recordInt64, Encode: func(b *Buffer, v int64) { b.AppendVarintU(uint64(zigzag64(v))) }, Decode: decodeInt64}

// FixedUint16Codec and friends are the §4.1.3 opt-in fixed-width family:
// constant byte count, no zigzag, wire type Bits16/32/64. FixedWidth is set
// so a Slice of these takes the raw-blit fast path on little-endian hosts.
var FixedUint16Codec = Codec[uint16]{WireType: Bits16, FixedWidth: 2,
	Record: recordFixedUint16, Encode: func(b *Buffer, v uint16) { b.AppendFixed16(v) }, Decode: decodeFixedUint16}

var FixedInt16Codec = Codec[int16]{WireType: Bits16, FixedWidth: 2,
	Record: recordFixedInt16, Encode: func(b *Buffer, v int16) { b.AppendFixed16(uint16(v)) }, Decode: decodeFixedInt16}

var FixedUint32Codec = Codec[uint32]{WireType: Bits32, FixedWidth: 4,
	Record: recordFixedUint32, Encode: func(b *Buffer, v uint32) { b.AppendFixed32(v) }, Decode: decodeFixedUint32}

var FixedInt32Codec = Codec[int32]{WireType: Bits32, FixedWidth: 4,
	Record: recordFixedInt32, Encode: func(b *Buffer, v int32) { b.AppendFixed32(uint32(v)) }, Decode: decodeFixedInt32}

var FixedUint64Codec = Codec[uint64]{WireType: Bits64, FixedWidth: 8,
	Record: recordFixedUint64, Encode: func(b *Buffer, v uint64) { b.AppendFixed64(v) }, Decode: decodeFixedUint64}

var FixedInt64Codec = Codec[int64]{WireType: Bits64, FixedWidth: 8,
	Record: recordFixedInt64, Encode: func(b *Buffer, v int64) { b.AppendFixed64(uint64(v)) }, Decode: decodeFixedInt64}

var Uint128Codec = Codec[Uint128]{WireType: Bits128, FixedWidth: 16,
	Record: recordUint128, Encode: func(b *Buffer, v Uint128) { b.AppendFixed128(v) }, Decode: decodeUint128}

var Int128Codec = Codec[Int128]{WireType: Bits128, FixedWidth: 16,
	Record: recordInt128, Encode: func(b *Buffer, v Int128) { b.AppendFixed128(v.asUint128()) }, Decode: decodeInt128}

var Float32Codec = Codec[float32]{WireType: Bits32, FixedWidth: 4,
	Record: recordFloat32, Encode: func(b *Buffer, v float32) { b.AppendFloat32(v) }, Decode: decodeFloat32}

var Float64Codec = Codec[float64]{WireType: Bits64, FixedWidth: 8,
	Record: recordFloat64, Encode: func(b *Buffer, v float64) { b.AppendFloat64(v) }, Decode: decodeFloat64}

var VarintUCodec = Codec[uint64]{WireType: Varint,
	Record: recordVarintU, Encode: func(b *Buffer, v uint64) { b.AppendVarintU(v) }, Decode: decodeVarintU}

var VarintSCodec = Codec[int64]{WireType: Varint,
	Record: recordVarintS, Encode: func(b *Buffer, v int64) { b.AppendVarintS(v) }, Decode: decodeVarintS}

var StringCodec = Codec[string]{WireType: LengthDelimited,
	Record: recordString, Encode: func(b *Buffer, v string) { b.AppendString(v) }, Decode: decodeString}

// RecordSlice returns the byte count a sequence of s will occupy: a varint
// element count followed by each element's own framing, per §4.2.1.
func RecordSlice[T any](s []T, c Codec[T]) uint64 {
	n := uint64(len(s))
	size := varintSize(n)
	if c.FixedWidth > 0 {
		return size + n*c.FixedWidth
	}
	for _, v := range s {
		size += c.Record(v)
	}
	return size
}

// EncodeSlice writes the element count then every element in order. Fixed-
// width element types take the raw-blit fast path on little-endian hosts;
// everything else (and every big-endian host) falls back to one Encode call
// per element.
func EncodeSlice[T any](b *Buffer, s []T, c Codec[T]) {
	appendVarint(b, uint64(len(s)))
	if c.FixedWidth > 0 && len(s) > 0 && hostLittleEndian() {
		raw := unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), len(s)*int(c.FixedWidth))
		b.AppendRawBytes(raw)
		return
	}
	for _, v := range s {
		c.Encode(b, v)
	}
}

// DecodeSlice reads an element count followed by that many elements,
// mirroring EncodeSlice's fast path symmetrically.
func DecodeSlice[T any](r *Reader, c Codec[T]) []T {
	n := r.readVarint()
	out := make([]T, n)
	if c.FixedWidth > 0 && n > 0 && hostLittleEndian() {
		raw := r.Read(n * c.FixedWidth)
		copy(unsafe.Slice((*byte)(unsafe.Pointer(&out[0])), len(raw)), raw)
		return out
	}
	for i := range out {
		out[i] = c.Decode(r)
	}
	return out
}

// Array is the fixed-length sequence variant (§4.2 Added): same wire framing
// as a Slice, but the caller asserts a length known ahead of decode. A
// length mismatch between what was encoded and what the caller expects is
// reported as ErrInvalidType rather than silently truncating or padding —
// the original Rust implementation's fixed-size arrays have no notion of a
// partial fill, so neither does this one.
func RecordArray[T any](s []T, c Codec[T]) uint64 {
	return RecordSlice(s, c)
}

func EncodeArray[T any](b *Buffer, s []T, c Codec[T]) {
	EncodeSlice(b, s, c)
}

// DecodeArray reads a sequence and panics with a codecPanic wrapping
// ErrInvalidType if its length isn't exactly want.
func DecodeArray[T any](r *Reader, c Codec[T], want int) []T {
	out := DecodeSlice(r, c)
	if len(out) != want {
		panic(codecPanic{ErrInvalidType})
	}
	return out
}
