package gs11n

import "unsafe"

// Reader is the decoder's input cursor: a bounded walk over an encoded
// buffer that panics with a codecPanic on any attempt to read past the end.
// The panic is recovered at the decode driver boundary (recoverDecodeError)
// and turned back into an ErrDecodeOutOfBounds return value — every other
// Reader method assumes bounds have already been checked and never needs to
// return an error of its own.
type Reader struct {
	bytes    []byte
	position uint
	mark     uint
	prefab   PrefabLoader
	budget   *decodeBudget
}

func NewReader(b []byte) Reader {
	return Reader{bytes: b}
}

// NewReaderWithPrefab attaches a PrefabLoader for resolving Prefab-wired
// fields (§4.7). Omit it (use NewReader) when a document is known to carry
// no prefab-wired fields.
func NewReaderWithPrefab(b []byte, loader PrefabLoader) Reader {
	return Reader{bytes: b, prefab: loader}
}

// Prefab returns the loader attached to this Reader, or nil if none was
// attached.
func (r *Reader) Prefab() PrefabLoader {
	return r.prefab
}

func (r *Reader) checkBounds(n uint) {
	if r.position+n > uint(len(r.bytes)) {
		panic(codecPanic{ErrDecodeOutOfBounds})
	}
}

// readByte extracts the next byte, the primitive every wired-id and varint
// read is built from.
func (r *Reader) readByte() byte {
	r.checkBounds(1)
	b := r.bytes[r.position]
	r.position++
	return b
}

// Read extracts the next l bytes as a sub-slice of the original buffer — no
// copy is made, per the zero-copy intent of §4.2.1's fast container path.
func (r *Reader) Read(l uint64) []byte {
	r.checkBounds(uint(l))
	p := r.position
	r.position += uint(l)
	return r.bytes[p : p+uint(l)]
}

// Unread rewinds the cursor by l bytes.
func (r *Reader) Unread(l uint64) {
	r.position -= uint(l)
}

// Skip advances without extracting, used by the skip-unknown-tag path of
// §4.4.4.
func (r *Reader) Skip(l uint64) {
	r.checkBounds(uint(l))
	r.position += uint(l)
}

// SetMark / Mark / ResetMark / BytesFromMark bracket a span of already-read
// bytes, so a caller (dump.go's readRawValue) can capture a value verbatim
// or rewind to the mark.
func (r *Reader) SetMark() {
	r.mark = r.position
}

func (r *Reader) Mark() uint {
	return r.mark
}

func (r *Reader) ResetMark() {
	r.position = r.mark
}

func (r *Reader) BytesFromMark() []byte {
	return r.bytes[r.mark:r.position]
}

// BytesLeft reports the number of unread bytes.
func (r *Reader) BytesLeft() uint64 {
	return uint64(len(r.bytes)) - uint64(r.position)
}

// Remaining returns every byte not yet consumed.
func (r *Reader) Remaining() []byte {
	return r.bytes[r.position:]
}

// ReadUint8 / ReadInt8 / ReadBool read one raw byte (wire type Bits8).
func (r *Reader) ReadUint8() uint8 { return r.readByte() }
func (r *Reader) ReadInt8() int8   { return int8(r.readByte()) }
func (r *Reader) ReadBool() bool   { return r.readByte() == 1 }

func (r *Reader) readFixed16() uint16 {
	b := r.Read(2)
	v := uint16(b[0]) | uint16(b[1])<<8
	if !hostLittleEndian() {
		v = swap16(v)
	}
	return v
}

func (r *Reader) readFixed32() uint32 {
	b := r.Read(4)
	v := uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
	if !hostLittleEndian() {
		v = swap32(v)
	}
	return v
}

func (r *Reader) readFixed64() uint64 {
	b := r.Read(8)
	var v uint64
	for i := 0; i < 8; i++ {
		v |= uint64(b[i]) << (8 * uint(i))
	}
	if !hostLittleEndian() {
		v = swap64(v)
	}
	return v
}

// ReadFixed16 / ReadFixed32 / ReadFixed64 read a little-endian fixed-width
// scalar, byte-swapping on big-endian hosts (§4.1.3).
func (r *Reader) ReadFixed16() uint16 { return r.readFixed16() }
func (r *Reader) ReadFixed32() uint32 { return r.readFixed32() }
func (r *Reader) ReadFixed64() uint64 { return r.readFixed64() }

// ReadFixed128 reads a Uint128 as 16 little-endian bytes (lo, then hi).
func (r *Reader) ReadFixed128() Uint128 {
	lo := r.readFixed64()
	hi := r.readFixed64()
	if !hostLittleEndian() {
		lo, hi = swap64(hi), swap64(lo)
	}
	return Uint128{Hi: hi, Lo: lo}
}

// ReadVarintU / ReadVarintS read an unsigned or zigzag-signed varint
// (wire type Varint).
func (r *Reader) ReadVarintU() uint64 { return r.readVarint() }
func (r *Reader) ReadVarintS() int64  { return unzigzag64(r.readVarint()) }

// ReadFloat32 / ReadFloat64 read a fixed-width scalar and reinterpret its
// bits as a float, per §4.1.2.
func (r *Reader) ReadFloat32() float32 {
	v := r.readFixed32()
	return *(*float32)(unsafe.Pointer(&v))
}

func (r *Reader) ReadFloat64() float64 {
	v := r.readFixed64()
	return *(*float64)(unsafe.Pointer(&v))
}

// ReadLenPrefixed reads a varint length followed by that many raw bytes —
// the framing shared by strings and byte containers (§4.2.5).
func (r *Reader) ReadLenPrefixed() []byte {
	l := r.readVarint()
	return r.Read(l)
}

// ReadString reads a length-prefixed UTF-8 string. The returned string
// aliases the decode buffer's backing array; callers that retain it past
// the buffer's lifetime must copy it first.
func (r *Reader) ReadString() string {
	b := r.ReadLenPrefixed()
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// SkipValue advances the cursor past one value of the given wire type
// without decoding it, per the forward-compatibility skip logic of §4.4.4.
// LengthDelimited values carry their own size; fixed-width ones have a size
// fixed by their wire type; Varint values are self-terminating.
func (r *Reader) SkipValue(wt WireType) {
	switch wt {
	case Bits8:
		r.Skip(1)
	case Bits16:
		r.Skip(2)
	case Bits32:
		r.Skip(4)
	case Bits64:
		r.Skip(8)
	case Bits128:
		r.Skip(16)
	case Varint:
		r.readVarint()
	case LengthDelimited:
		l := r.readVarint()
		r.Skip(l)
	case Prefab:
		// A Prefab-wired field carries only its inline prefab id on the
		// wire (see encodePrefabID), so skipping it skips that one varint.
		r.readVarint()
	default:
		panic(codecPanic{ErrInvalidType})
	}
}
