package gs11n

import (
	"fmt"
	"strings"
)

// FieldVisitor is implemented to walk an encoded document without knowing
// its Go type ahead of time — a debugging or tooling counterpart to
// generated Fielder/FieldDecoder code. Unlike the name-keyed schema this
// package's predecessor carried inline, a gs11n document is self-describing
// only down to (field id, wire type): there is no schema blob to consult for
// field names, and a LengthDelimited value's body is handed to the visitor
// as raw bytes with no indication of whether it's a string, a byte
// container, or a nested message — the visitor decides, the same ambiguity
// a protocol buffers dynamic-message walker faces when consulting a
// FileDescriptor is, here, simply absent. For a LengthDelimited value, raw
// includes the value's length prefix; to recurse into what it determines is
// a nested message, the visitor strips that prefix and calls Walk on the
// remaining body bytes.
type FieldVisitor interface {
	VisitField(fieldID uint64, wt WireType, raw []byte) error
}

// ErrSkipVisit is never returned by Walk itself; a FieldVisitor may use it
// as a private sentinel for its own control flow, mirroring the predecessor
// walker's convention.
var ErrSkipVisit = fmt.Errorf("gs11n: skip visit")

// Walk iterates every top-level field in data, handing each one's wired id,
// wire type, and raw value bytes to visitor in encounter order. It does not
// recurse into nested messages on its own — strip the length prefix from the
// bytes a VisitField call received and call Walk on the body to go one level
// deeper.
func Walk(data []byte, visitor FieldVisitor) (err error) {
	defer recoverDecodeError(&err)
	r := NewReader(data)
	for r.BytesLeft() > 0 {
		fieldID, wt := decodeWiredID(&r)
		raw := readRawValue(&r, wt)
		if verr := visitor.VisitField(fieldID, wt, raw); verr != nil && verr != ErrSkipVisit {
			return verr
		}
	}
	return nil
}

// readRawValue reads one value's bytes verbatim, the length-prefix-inclusive
// span for LengthDelimited and the fixed span for everything else — exactly
// what SkipValue would skip over, but captured rather than discarded.
func readRawValue(r *Reader, wt WireType) []byte {
	switch wt {
	case Bits8:
		return r.Read(1)
	case Bits16:
		return r.Read(2)
	case Bits32:
		return r.Read(4)
	case Bits64:
		return r.Read(8)
	case Bits128:
		return r.Read(16)
	case Varint:
		r.SetMark()
		r.readVarint()
		return r.BytesFromMark()
	case LengthDelimited:
		r.SetMark()
		l := r.readVarint()
		r.Skip(l)
		return r.BytesFromMark()
	case Prefab:
		r.SetMark()
		r.readVarint()
		return r.BytesFromMark()
	default:
		panic(codecPanic{ErrInvalidType})
	}
}

// dumpVisitor implements FieldVisitor to produce an indented, human-
// readable listing — the debugging aid operators reach for instead of
// hand-rolling a hex dump when a document round-trips wrong.
type dumpVisitor struct {
	sb     strings.Builder
	indent int
}

func (d *dumpVisitor) VisitField(fieldID uint64, wt WireType, raw []byte) error {
	fmt.Fprintf(&d.sb, "%s#%d %s (%d bytes)\n", strings.Repeat("  ", d.indent), fieldID, wt, len(raw))
	return nil
}

// Dump renders data as a flat, single-level listing of (field id, wire
// type, byte length) triples. It never guesses at nested-message
// boundaries; pass a FieldVisitor to Walk directly for recursive dumping.
func Dump(data []byte) (string, error) {
	v := &dumpVisitor{}
	if err := Walk(data, v); err != nil {
		return "", err
	}
	return v.sb.String(), nil
}
