package gs11n

import "fmt"

// WireType identifies the on-wire shape of an encoded value: fixed width,
// varint, length-delimited, or prefab. Every encodable type declares exactly
// one constant WireType. Aggregates always declare LengthDelimited.
type WireType uint8

const (
	Bits8 WireType = iota
	Bits16
	Bits32
	Bits64
	Bits128
	Prefab
	Varint
	LengthDelimited
)

func (w WireType) String() string {
	switch w {
	case Bits8:
		return "Bits8"
	case Bits16:
		return "Bits16"
	case Bits32:
		return "Bits32"
	case Bits64:
		return "Bits64"
	case Bits128:
		return "Bits128"
	case Prefab:
		return "Prefab"
	case Varint:
		return "Varint"
	case LengthDelimited:
		return "LengthDelimited"
	default:
		return fmt.Sprintf("WireType(%d)", uint8(w))
	}
}

// NonPrefabWireType is the wire type a Prefab field actually occupies on the
// wire, as declared by a PrefabLoader. It is a WireType other than Prefab
// itself — prefab-to-prefab indirection is forbidden (§4.7).
type NonPrefabWireType = WireType

// fieldIDSentinel marks a wide field id: the low 5 bits of a wired-id byte
// are 31, and the real field id follows as field id = 30 + varint.
const fieldIDSentinel = 0x1F

// wireTypeShift packs the wire type into the top 3 bits of a wired-id byte.
const wireTypeShift = 5

// packWiredIDLow computes the wired-id byte's low-5-bits component and whether
// a trailing wide-id varint is required.
func packWiredIDLow(fieldID uint64) (low uint8, wide bool) {
	if fieldID < fieldIDSentinel {
		return uint8(fieldID), false
	}
	return fieldIDSentinel, true
}

// sizeOfWiredID returns the number of bytes encodeWiredID will write for the
// given field id, per §4.4.1.
func sizeOfWiredID(fieldID uint64) uint64 {
	if fieldID < fieldIDSentinel {
		return 1
	}
	return 1 + varintSize(fieldID-30)
}

// encodeWiredID writes the (field id, wire type) prefix per §4.4.1.
func encodeWiredID(b *Buffer, fieldID uint64, wt WireType) {
	low, wide := packWiredIDLow(fieldID)
	b.appendByte(byte(uint8(wt)<<wireTypeShift) | low)
	if wide {
		appendVarint(b, fieldID-30)
	}
}

// decodeWiredID reads one wired-id prefix, returning the field id and wire
// type, per §4.4.2.
func decodeWiredID(r *Reader) (fieldID uint64, wt WireType) {
	b := r.readByte()
	wt = WireType(b >> wireTypeShift)
	if wt > LengthDelimited {
		panic(codecPanic{ErrInvalidType})
	}
	low := b & fieldIDSentinel
	if low < fieldIDSentinel {
		return uint64(low), wt
	}
	return 30 + uint64(r.readVarint()), wt
}
