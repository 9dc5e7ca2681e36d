package gs11n

// Hand-written stand-ins for what a generator would emit: each fixture type
// below implements Fielder and FieldDecoder directly, in the shape
// message.go documents — RecordFields/EncodeFields walk fields in a fixed
// order, writing sizes into (and reading them back out of) the Metadata
// tree at slots keyed by field id; DecodeFields loops over wired-id
// prefixes and falls through to Reader.SkipValue for anything it doesn't
// recognize, so unknown fields never break a decode (§4.4.4).

const (
	fixtureFlatFieldName  = 1
	fixtureFlatFieldCount = 2
)

type fixtureFlat struct {
	Name  string
	Count int32
}

func (f *fixtureFlat) RecordFields(m *Metadata) uint64 {
	var size uint64
	nameSize := recordString(f.Name)
	m.Get(fixtureFlatFieldName).Size = nameSize
	size += sizeOfWiredID(fixtureFlatFieldName) + nameSize

	countSize := recordInt32(f.Count)
	m.Get(fixtureFlatFieldCount).Size = countSize
	size += sizeOfWiredID(fixtureFlatFieldCount) + countSize

	return size
}

func (f *fixtureFlat) EncodeFields(b *Buffer, m *Metadata) {
	encodeString(b, fixtureFlatFieldName, f.Name)
	encodeInt32(b, fixtureFlatFieldCount, f.Count)
}

func (f *fixtureFlat) DecodeFields(r *Reader, byteLength uint64) {
	start := r.BytesLeft()
	for start-r.BytesLeft() < byteLength {
		fieldID, wt := decodeWiredID(r)
		switch fieldID {
		case fixtureFlatFieldName:
			f.Name = decodeString(r)
		case fixtureFlatFieldCount:
			f.Count = decodeInt32(r)
		default:
			r.SkipValue(wt)
		}
	}
}

const (
	fixtureNestedFieldID    = 1
	fixtureNestedFieldChild = 2
	fixtureNestedFieldTags  = 3
)

// fixtureNested exercises a nested Fielder field (Child) and a variable-
// width slice field (Tags) alongside a plain scalar.
type fixtureNested struct {
	ID    uint64
	Child *fixtureFlat // nil means absent
	Tags  []string
}

func (f *fixtureNested) RecordFields(m *Metadata) uint64 {
	var size uint64

	idSize := recordVarintU(f.ID)
	m.Get(fixtureNestedFieldID).Size = idSize
	size += sizeOfWiredID(fixtureNestedFieldID) + idSize

	if f.Child != nil {
		childMeta := m.Get(fixtureNestedFieldChild)
		childSize := recordAggregate(f.Child, childMeta)
		size += sizeOfWiredID(fixtureNestedFieldChild) + childSize
	}

	tagsSize := RecordSlice(f.Tags, StringCodec)
	m.Get(fixtureNestedFieldTags).Size = tagsSize
	size += sizeOfWiredID(fixtureNestedFieldTags) + varintSize(tagsSize) + tagsSize

	return size
}

func (f *fixtureNested) EncodeFields(b *Buffer, m *Metadata) {
	encodeVarintU(b, fixtureNestedFieldID, f.ID)

	if f.Child != nil {
		encodeWiredID(b, fixtureNestedFieldChild, LengthDelimited)
		encodeAggregate(b, f.Child, m.Get(fixtureNestedFieldChild))
	}

	encodeWiredID(b, fixtureNestedFieldTags, LengthDelimited)
	appendVarint(b, m.Get(fixtureNestedFieldTags).Size)
	EncodeSlice(b, f.Tags, StringCodec)
}

func (f *fixtureNested) DecodeFields(r *Reader, byteLength uint64) {
	start := r.BytesLeft()
	for start-r.BytesLeft() < byteLength {
		fieldID, wt := decodeWiredID(r)
		switch fieldID {
		case fixtureNestedFieldID:
			f.ID = decodeVarintU(r)
		case fixtureNestedFieldChild:
			body, length := decodeAggregateBody(r)
			child := &fixtureFlat{}
			child.DecodeFields(&body, length)
			f.Child = child
		case fixtureNestedFieldTags:
			l := r.readVarint()
			raw := r.Read(l)
			sub := NewReader(raw)
			f.Tags = DecodeSlice(&sub, StringCodec)
		default:
			r.SkipValue(wt)
		}
	}
}

const (
	fixtureWithMapFieldScores = 1
)

// fixtureWithMap exercises a map-valued field using RecordMap/EncodeMap
// with an explicitly captured key order, per container_map.go's contract:
// Go's map iteration order is randomized per pass, so a type whose wire
// form includes a plain map must fix an order once (here, on the struct
// itself) and reuse it across the Record and Encode passes.
type fixtureWithMap struct {
	Scores map[string]int32

	scoreKeys []string // order fixed by the most recent RecordFields call
}

var fixtureWithMapCodec = MapCodec[string, int32]{Key: StringCodec, Value: Int32Codec}

func (f *fixtureWithMap) RecordFields(m *Metadata) uint64 {
	f.scoreKeys = make([]string, 0, len(f.Scores))
	for k := range f.Scores {
		f.scoreKeys = append(f.scoreKeys, k)
	}

	size := RecordMap(f.scoreKeys, f.Scores, fixtureWithMapCodec)
	m.Get(fixtureWithMapFieldScores).Size = size
	return sizeOfWiredID(fixtureWithMapFieldScores) + varintSize(size) + size
}

func (f *fixtureWithMap) EncodeFields(b *Buffer, m *Metadata) {
	size := m.Get(fixtureWithMapFieldScores).Size
	encodeWiredID(b, fixtureWithMapFieldScores, LengthDelimited)
	appendVarint(b, size)
	EncodeMap(b, f.scoreKeys, f.Scores, fixtureWithMapCodec)
}

func (f *fixtureWithMap) DecodeFields(r *Reader, byteLength uint64) {
	start := r.BytesLeft()
	for start-r.BytesLeft() < byteLength {
		fieldID, wt := decodeWiredID(r)
		switch fieldID {
		case fixtureWithMapFieldScores:
			l := r.readVarint()
			raw := r.Read(l)
			sub := NewReader(raw)
			f.Scores = DecodeMap(&sub, fixtureWithMapCodec)
		default:
			r.SkipValue(wt)
		}
	}
}

const (
	fixtureOptionalFieldValue = 1
)

// fixtureOptional exercises Optional[T] as a message field.
type fixtureOptional struct {
	Value Optional[int64]
}

func (f *fixtureOptional) RecordFields(m *Metadata) uint64 {
	size := RecordOptional(f.Value, Int64Codec)
	m.Get(fixtureOptionalFieldValue).Size = size
	return sizeOfWiredID(fixtureOptionalFieldValue) + varintSize(size) + size
}

func (f *fixtureOptional) EncodeFields(b *Buffer, m *Metadata) {
	encodeWiredID(b, fixtureOptionalFieldValue, LengthDelimited)
	size := m.Get(fixtureOptionalFieldValue).Size
	appendVarint(b, size)
	EncodeOptional(b, f.Value, Int64Codec)
}

func (f *fixtureOptional) DecodeFields(r *Reader, byteLength uint64) {
	start := r.BytesLeft()
	for start-r.BytesLeft() < byteLength {
		fieldID, wt := decodeWiredID(r)
		switch fieldID {
		case fixtureOptionalFieldValue:
			l := r.readVarint()
			raw := r.Read(l)
			sub := NewReader(raw)
			f.Value = DecodeOptional(&sub, Int64Codec)
		default:
			r.SkipValue(wt)
		}
	}
}

// --- variant fixture: a closed two-case tagged union ---

type fixtureShape interface{ isFixtureShape() }

type fixtureCircle struct{ Radius float64 }

func (fixtureCircle) isFixtureShape() {}

type fixtureSquare struct{ Side float64 }

func (fixtureSquare) isFixtureShape() {}

const (
	fixtureShapeTagCircle = 0
	fixtureShapeTagSquare = 1
)

const fixtureCircleFieldRadius = 1

func (c *fixtureCircle) RecordFields(m *Metadata) uint64 {
	s := recordFloat64(c.Radius)
	m.Get(fixtureCircleFieldRadius).Size = s
	return sizeOfWiredID(fixtureCircleFieldRadius) + s
}

func (c *fixtureCircle) EncodeFields(b *Buffer, m *Metadata) {
	encodeFloat64(b, fixtureCircleFieldRadius, c.Radius)
}

func (c *fixtureCircle) DecodeFields(r *Reader, byteLength uint64) {
	start := r.BytesLeft()
	for start-r.BytesLeft() < byteLength {
		fieldID, wt := decodeWiredID(r)
		if fieldID == fixtureCircleFieldRadius {
			c.Radius = decodeFloat64(r)
			continue
		}
		r.SkipValue(wt)
	}
}

const fixtureSquareFieldSide = 1

func (s *fixtureSquare) RecordFields(m *Metadata) uint64 {
	sz := recordFloat64(s.Side)
	m.Get(fixtureSquareFieldSide).Size = sz
	return sizeOfWiredID(fixtureSquareFieldSide) + sz
}

func (s *fixtureSquare) EncodeFields(b *Buffer, m *Metadata) {
	encodeFloat64(b, fixtureSquareFieldSide, s.Side)
}

func (s *fixtureSquare) DecodeFields(r *Reader, byteLength uint64) {
	start := r.BytesLeft()
	for start-r.BytesLeft() < byteLength {
		fieldID, wt := decodeWiredID(r)
		if fieldID == fixtureSquareFieldSide {
			s.Side = decodeFloat64(r)
			continue
		}
		r.SkipValue(wt)
	}
}

func marshalFixtureShape(shape fixtureShape) []byte {
	m := newMetadata()
	defer releaseMetadata(m)

	var tag uint32
	var inner Fielder
	switch v := shape.(type) {
	case *fixtureCircle:
		tag, inner = fixtureShapeTagCircle, v
	case *fixtureSquare:
		tag, inner = fixtureShapeTagSquare, v
	default:
		panic("unhandled shape")
	}

	size := RecordVariant(tag, inner, m)
	buf := NewBuffer(size)
	EncodeVariant(&buf, tag, inner, m)
	return buf.Bytes
}

func unmarshalFixtureShape(data []byte) (fixtureShape, error) {
	r := NewReader(data)
	tag, body := DecodeVariantTag(&r)
	switch tag {
	case fixtureShapeTagCircle:
		c := &fixtureCircle{}
		c.DecodeFields(&body, body.BytesLeft())
		return c, nil
	case fixtureShapeTagSquare:
		s := &fixtureSquare{}
		s.DecodeFields(&body, body.BytesLeft())
		return s, nil
	default:
		return nil, ErrInvalidType
	}
}
