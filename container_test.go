package gs11n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSliceRoundTripFixedWidthFastPath(t *testing.T) {
	in := []uint32{1, 2, 3, 4294967295, 0}
	var b Buffer
	EncodeSlice(&b, in, FixedUint32Codec)
	assert.Equal(t, RecordSlice(in, FixedUint32Codec), uint64(len(b.Bytes)))

	r := NewReader(b.Bytes)
	out := DecodeSlice(&r, FixedUint32Codec)
	assert.Equal(t, in, out)
}

func TestSliceRoundTripVariableWidth(t *testing.T) {
	in := []string{"alpha", "", "beta gamma", "日本語"}
	var b Buffer
	EncodeSlice(&b, in, StringCodec)
	assert.Equal(t, RecordSlice(in, StringCodec), uint64(len(b.Bytes)))

	r := NewReader(b.Bytes)
	out := DecodeSlice(&r, StringCodec)
	assert.Equal(t, in, out)
}

func TestSliceRoundTripEmpty(t *testing.T) {
	var in []int64
	var b Buffer
	EncodeSlice(&b, in, VarintSCodec)
	assert.Equal(t, uint64(1), uint64(len(b.Bytes))) // one byte: varint(0)

	r := NewReader(b.Bytes)
	out := DecodeSlice(&r, VarintSCodec)
	assert.Empty(t, out)
}

func TestArrayLengthMismatchPanics(t *testing.T) {
	in := []int16{1, 2, 3}
	var b Buffer
	EncodeArray(&b, in, Int16Codec)

	r := NewReader(b.Bytes)
	assert.PanicsWithValue(t, codecPanic{ErrInvalidType}, func() {
		DecodeArray(&r, Int16Codec, 4)
	})
}

func TestArrayLengthMatchSucceeds(t *testing.T) {
	in := []int16{1, 2, 3}
	var b Buffer
	EncodeArray(&b, in, Int16Codec)

	r := NewReader(b.Bytes)
	out := DecodeArray(&r, Int16Codec, 3)
	assert.Equal(t, in, out)
}

func TestMapRoundTripWithExplicitKeyOrder(t *testing.T) {
	m := map[string]int32{"a": 1, "b": 2, "c": 3}
	keys := []string{"a", "b", "c"}
	codec := MapCodec[string, int32]{Key: StringCodec, Value: Int32Codec}

	var b Buffer
	EncodeMap(&b, keys, m, codec)
	require.Equal(t, RecordMap(keys, m, codec), uint64(len(b.Bytes)))

	r := NewReader(b.Bytes)
	out := DecodeMap(&r, codec)
	assert.Equal(t, m, out)
}

func TestOrderedMapPreservesInsertionOrderAndBytes(t *testing.T) {
	codec := MapCodec[string, uint8]{Key: StringCodec, Value: Uint8Codec}

	m1 := NewOrderedMap[string, uint8]()
	m1.Set("z", 1)
	m1.Set("a", 2)
	m1.Set("m", 3)

	var b1 Buffer
	EncodeOrderedMap(&b1, m1, codec)

	m2 := NewOrderedMap[string, uint8]()
	m2.Set("z", 1)
	m2.Set("a", 2)
	m2.Set("m", 3)

	var b2 Buffer
	EncodeOrderedMap(&b2, m2, codec)

	assert.Equal(t, b1.Bytes, b2.Bytes, "two OrderedMaps built in the same insertion order must encode identically")

	r := NewReader(b1.Bytes)
	decoded := DecodeOrderedMap(&r, codec)
	require.Equal(t, 3, decoded.Len())
	assert.Equal(t, []OrderedMapEntry[string, uint8]{
		{Key: "z", Value: 1},
		{Key: "a", Value: 2},
		{Key: "m", Value: 3},
	}, decoded.Entries())
}

func TestOrderedMapSetOverwritesInPlace(t *testing.T) {
	m := NewOrderedMap[string, int]()
	m.Set("x", 1)
	m.Set("y", 2)
	m.Set("x", 99)

	assert.Equal(t, 2, m.Len())
	v, ok := m.Get("x")
	assert.True(t, ok)
	assert.Equal(t, 99, v)
	assert.Equal(t, "x", m.Entries()[0].Key, "overwriting a key must not move its position")
}

func TestOptionalRoundTrip(t *testing.T) {
	present := Some(int32(42))
	var b Buffer
	EncodeOptional(&b, present, Int32Codec)
	assert.Equal(t, RecordOptional(present, Int32Codec), uint64(len(b.Bytes)))

	r := NewReader(b.Bytes)
	out := DecodeOptional(&r, Int32Codec)
	assert.True(t, out.Set)
	assert.Equal(t, int32(42), out.Value)
}

func TestOptionalAbsentIsOneByte(t *testing.T) {
	absent := None[int32]()
	var b Buffer
	EncodeOptional(&b, absent, Int32Codec)
	assert.Equal(t, []byte{0}, b.Bytes)

	r := NewReader(b.Bytes)
	out := DecodeOptional(&r, Int32Codec)
	assert.False(t, out.Set)
}

func TestBoxIsTransparentOnWire(t *testing.T) {
	boxed := NewBox(int64(-7))
	var bb Buffer
	EncodeBoxed(&bb, boxed, Int64Codec)

	var plain Buffer
	Int64Codec.Encode(&plain, -7)

	assert.Equal(t, plain.Bytes, bb.Bytes, "a Box must encode identically to its bare value")

	r := NewReader(bb.Bytes)
	out := DecodeBoxed(&r, Int64Codec)
	assert.Equal(t, int64(-7), out.Value)
}
