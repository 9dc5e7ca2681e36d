package gs11n

import "unsafe"

// Buffer is the encoder's output cursor. It is allocated once per encode
// cycle at exactly the size Record computed (§4.5) and then only appended
// to — every Append* call writes the next contiguous range, so the final
// length always equals cap. There is no bounds checking on the write side:
// a discrepancy between a Record size and what Encode actually writes is a
// programmer bug in generated/hand-written encode code, not a runtime
// condition a caller can recover from (§4.5).
type Buffer struct {
	Bytes []byte
}

// NewBuffer preallocates a Buffer with exactly size bytes of capacity, as
// the encoder driver does after Record (§4.5 step 3).
func NewBuffer(size uint64) Buffer {
	return Buffer{Bytes: make([]byte, 0, size)}
}

func (b *Buffer) appendByte(v byte) {
	b.Bytes = append(b.Bytes, v)
}

func (b *Buffer) appendBytes(v []byte) {
	b.Bytes = append(b.Bytes, v...)
}

// AppendUint8 writes a single raw byte (wire type Bits8).
func (b *Buffer) AppendUint8(v uint8) {
	b.appendByte(v)
}

// AppendInt8 writes a single raw signed byte (wire type Bits8).
func (b *Buffer) AppendInt8(v int8) {
	b.appendByte(byte(v))
}

// AppendBool writes a single byte: 1 for true, 0 for false (wire type Bits8).
func (b *Buffer) AppendBool(v bool) {
	if v {
		b.appendByte(1)
		return
	}
	b.appendByte(0)
}

// AppendFixed16 writes a 16-bit value little-endian, byte-swapping on
// big-endian hosts (§4.1.3).
func (b *Buffer) AppendFixed16(v uint16) {
	if !hostLittleEndian() {
		v = swap16(v)
	}
	b.appendByte(byte(v))
	b.appendByte(byte(v >> 8))
}

// AppendFixed32 writes a 32-bit value little-endian, byte-swapping on
// big-endian hosts.
func (b *Buffer) AppendFixed32(v uint32) {
	if !hostLittleEndian() {
		v = swap32(v)
	}
	b.appendByte(byte(v))
	b.appendByte(byte(v >> 8))
	b.appendByte(byte(v >> 16))
	b.appendByte(byte(v >> 24))
}

// AppendFixed64 writes a 64-bit value little-endian, byte-swapping on
// big-endian hosts.
func (b *Buffer) AppendFixed64(v uint64) {
	if !hostLittleEndian() {
		v = swap64(v)
	}
	for i := 0; i < 8; i++ {
		b.appendByte(byte(v >> (8 * uint(i))))
	}
}

// AppendFixed128 writes a Uint128 as 16 little-endian bytes (lo, then hi),
// byte-swapped as a unit on big-endian hosts.
func (b *Buffer) AppendFixed128(v Uint128) {
	lo, hi := v.Lo, v.Hi
	if !hostLittleEndian() {
		lo, hi = swap64(v.Hi), swap64(v.Lo)
	}
	b.AppendFixed64(lo)
	b.AppendFixed64(hi)
}

// AppendVarintU writes x as an unsigned varint (wire type Varint).
func (b *Buffer) AppendVarintU(x uint64) {
	appendVarint(b, x)
}

// AppendVarintS writes s zigzag-encoded then varint-packed (wire type Varint).
func (b *Buffer) AppendVarintS(s int64) {
	appendVarint(b, zigzag64(s))
}

// AppendFloat32 writes a float32 via its raw bit pattern, fixed-width.
func (b *Buffer) AppendFloat32(v float32) {
	b.AppendFixed32(*(*uint32)(unsafe.Pointer(&v)))
}

// AppendFloat64 writes a float64 via its raw bit pattern, fixed-width.
func (b *Buffer) AppendFloat64(v float64) {
	b.AppendFixed64(*(*uint64)(unsafe.Pointer(&v)))
}

// AppendRawBytes blits raw bytes without any length prefix — used by the
// container fast path (§4.2.1) once the caller has already written the
// element count.
func (b *Buffer) AppendRawBytes(v []byte) {
	b.appendBytes(v)
}

// AppendLenPrefixed writes varint(len(v)) followed by v's raw bytes, the
// framing shared by strings and byte containers (§4.2.5).
func (b *Buffer) AppendLenPrefixed(v []byte) {
	appendVarint(b, uint64(len(v)))
	b.appendBytes(v)
}

// AppendString writes varint(byte_length) followed by the string's raw
// UTF-8 bytes, per §4.2.5.
func (b *Buffer) AppendString(v string) {
	appendVarint(b, uint64(len(v)))
	b.appendBytes(unsafe.Slice(unsafe.StringData(v), len(v)))
}
