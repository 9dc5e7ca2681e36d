package gs11n

// Box is an owning indirection wrapper, mirroring the original
// implementation's Box<T>: on the wire it is completely transparent — the
// boxed value is framed exactly as T itself would be, with no extra
// presence flag or length prefix of its own. Box exists only so Go types
// with self-referential or deeply nested field layouts (a tree node holding
// children of its own type) can be expressed without an infinite-size
// struct; it carries no encoding cost, unlike Optional's length prefix.
type Box[T any] struct {
	Value T
}

func NewBox[T any](v T) Box[T] { return Box[T]{Value: v} }

func RecordBoxed[T any](b Box[T], c Codec[T]) uint64 {
	return c.Record(b.Value)
}

func EncodeBoxed[T any](buf *Buffer, b Box[T], c Codec[T]) {
	c.Encode(buf, b.Value)
}

func DecodeBoxed[T any](r *Reader, c Codec[T]) Box[T] {
	return Box[T]{Value: c.Decode(r)}
}
