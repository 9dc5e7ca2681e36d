package gs11n

// DecodeLimits bounds the resources a single decode is allowed to consume,
// the guardrail the bounded decode pipeline needs against a hostile or
// corrupt document (a length prefix claiming more bytes than the universe,
// a self-referential prefab chain). Zero fields mean "no limit".
type DecodeLimits struct {
	// MaxNestedMessages caps the total number of nested-message bodies
	// (decodeAggregateBody calls) one decode may enter, counted
	// cumulatively rather than as an instantaneous depth — cheaper to
	// track and just as effective against a document crafted to explode
	// into an unreasonable number of sub-messages, whether by nesting
	// deeply or by repeating a moderately nested field many times.
	MaxNestedMessages int
}

// DefaultLimits is permissive: generous enough for any realistic message
// graph while still refusing a pathological one.
var DefaultLimits = DecodeLimits{MaxNestedMessages: 1 << 20}

// Decoder is a type-safe wrapper around Unmarshal for repeated use against
// a single message type T, optionally enforcing DecodeLimits.
type Decoder[T FieldDecoder] struct {
	limits DecodeLimits
}

func NewDecoder[T FieldDecoder]() *Decoder[T] {
	return NewDecoderWithLimits[T](DefaultLimits)
}

func NewDecoderWithLimits[T FieldDecoder](limits DecodeLimits) *Decoder[T] {
	return &Decoder[T]{limits: limits}
}

// Unmarshal decodes bytes into v.
func (d *Decoder[T]) Unmarshal(data []byte, v T) error {
	return unmarshalWithLimits(data, v, nil, d.limits)
}

// UnmarshalWithPrefab decodes bytes into v, resolving Prefab-wired fields
// through loader.
func (d *Decoder[T]) UnmarshalWithPrefab(data []byte, v T, loader PrefabLoader) error {
	return unmarshalWithLimits(data, v, loader, d.limits)
}

func unmarshalWithLimits(data []byte, v FieldDecoder, loader PrefabLoader, limits DecodeLimits) (err error) {
	defer recoverDecodeError(&err)
	r := NewReaderWithPrefab(data, loader)
	r.budget = &decodeBudget{limits: limits}
	v.DecodeFields(&r, r.BytesLeft())
	return nil
}

// decodeBudget is shared (by pointer) across a Reader and every nested
// Reader decodeAggregateBody derives from it, so the count it tracks is
// global to one Unmarshal call, not per-reader.
type decodeBudget struct {
	limits DecodeLimits
	nested int
}

// enterNestedMessage is called once per decodeAggregateBody / prefab
// resolution; it panics with ErrInvalidType once the budget is exhausted.
func (d *decodeBudget) enterNestedMessage() {
	d.nested++
	if d.limits.MaxNestedMessages > 0 && d.nested > d.limits.MaxNestedMessages {
		panic(codecPanic{ErrInvalidType})
	}
}
