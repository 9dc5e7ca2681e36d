package gs11n

// MapCodec bundles the key and value Codecs for a hash-map field. Entries
// are framed as an element count followed by (key, value) pairs in
// iteration order (§4.2 Added) — Go's map iteration order is randomized per
// run, so two encodes of the same logical map will not in general produce
// identical bytes; callers that need byte-stable output should use
// OrderedMap instead.
type MapCodec[K comparable, V any] struct {
	Key   Codec[K]
	Value Codec[V]
}

// RecordMap sizes a map's wire framing: a varint entry count, then each
// entry's key size plus value size. RecordMap and EncodeMap take no
// Metadata node, so no per-entry sizes are cached between the two passes.
// Since Go map iteration order is unstable across passes, a caller
// recording then encoding a plain map[K]V must capture the iteration order
// once (e.g. into a key slice) and reuse it for both phases — RecordMap and
// EncodeMap below assume the caller has already done this by passing
// identically-ordered key slices.
func RecordMap[K comparable, V any](keys []K, m map[K]V, c MapCodec[K, V]) uint64 {
	size := varintSize(uint64(len(keys)))
	for _, k := range keys {
		size += c.Key.Record(k)
		size += c.Value.Record(m[k])
	}
	return size
}

func EncodeMap[K comparable, V any](b *Buffer, keys []K, m map[K]V, c MapCodec[K, V]) {
	appendVarint(b, uint64(len(keys)))
	for _, k := range keys {
		c.Key.Encode(b, k)
		c.Value.Encode(b, m[k])
	}
}

// DecodeMap reads an entry count followed by that many (key, value) pairs
// and assembles them into a fresh map.
func DecodeMap[K comparable, V any](r *Reader, c MapCodec[K, V]) map[K]V {
	n := r.readVarint()
	m := make(map[K]V, n)
	for i := uint64(0); i < n; i++ {
		k := c.Key.Decode(r)
		v := c.Value.Decode(r)
		m[k] = v
	}
	return m
}

// OrderedMapEntry is one (key, value) pair in an OrderedMap, in insertion
// order.
type OrderedMapEntry[K comparable, V any] struct {
	Key   K
	Value V
}

// OrderedMap is a byte-stable alternative to a plain Go map: insertion
// order is part of its value and is exactly what gets encoded, so two
// encodes of the same OrderedMap always produce the same bytes (§4.2
// Added). This is the type generated code should reach for whenever a
// message field's encoded form needs to be deterministic — diffable
// snapshots, content-addressed caches, signed payloads.
type OrderedMap[K comparable, V any] struct {
	entries []OrderedMapEntry[K, V]
	index   map[K]int
}

func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{index: make(map[K]int)}
}

func (m *OrderedMap[K, V]) Set(k K, v V) {
	if i, ok := m.index[k]; ok {
		m.entries[i].Value = v
		return
	}
	m.index[k] = len(m.entries)
	m.entries = append(m.entries, OrderedMapEntry[K, V]{Key: k, Value: v})
}

func (m *OrderedMap[K, V]) Get(k K) (V, bool) {
	if i, ok := m.index[k]; ok {
		return m.entries[i].Value, true
	}
	var zero V
	return zero, false
}

func (m *OrderedMap[K, V]) Len() int { return len(m.entries) }

func (m *OrderedMap[K, V]) Entries() []OrderedMapEntry[K, V] { return m.entries }

func RecordOrderedMap[K comparable, V any](m *OrderedMap[K, V], c MapCodec[K, V]) uint64 {
	size := varintSize(uint64(len(m.entries)))
	for _, e := range m.entries {
		size += c.Key.Record(e.Key)
		size += c.Value.Record(e.Value)
	}
	return size
}

func EncodeOrderedMap[K comparable, V any](b *Buffer, m *OrderedMap[K, V], c MapCodec[K, V]) {
	appendVarint(b, uint64(len(m.entries)))
	for _, e := range m.entries {
		c.Key.Encode(b, e.Key)
		c.Value.Encode(b, e.Value)
	}
}

func DecodeOrderedMap[K comparable, V any](r *Reader, c MapCodec[K, V]) *OrderedMap[K, V] {
	n := r.readVarint()
	m := &OrderedMap[K, V]{index: make(map[K]int, n), entries: make([]OrderedMapEntry[K, V], 0, n)}
	for i := uint64(0); i < n; i++ {
		k := c.Key.Decode(r)
		v := c.Value.Decode(r)
		m.index[k] = len(m.entries)
		m.entries = append(m.entries, OrderedMapEntry[K, V]{Key: k, Value: v})
	}
	return m
}
