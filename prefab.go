package gs11n

// PrefabLoader resolves a Prefab-wired field's numeric id to the bytes that
// are actually on the wire for it, plus the wire type those bytes are
// framed as. Prefab is an indirection, not a value in its own right: a
// Prefab-wired field's wired-id carries wire type Prefab followed only by a
// varint prefab id, and the id's resolved NonPrefabWireType is what
// describes the loaded bytes (§4.7).
//
// A loader that itself resolves to WireType Prefab is a configuration
// error: prefab-to-prefab indirection is explicitly forbidden, and
// resolvePrefab panics with codecPanic{ErrPrefabToAnotherPrefab} rather than
// recursing.
type PrefabLoader interface {
	Load(id uint64) (data []byte, wt NonPrefabWireType, err error)
}

// MapPrefabLoader is the simplest PrefabLoader: a static table built ahead
// of time, the shape a test fixture or an offline build step would produce.
type MapPrefabLoader struct {
	entries map[uint64]prefabEntry
}

type prefabEntry struct {
	data []byte
	wt   NonPrefabWireType
}

func NewMapPrefabLoader() *MapPrefabLoader {
	return &MapPrefabLoader{entries: make(map[uint64]prefabEntry)}
}

// Register associates id with data framed as wt. Registering wt == Prefab
// panics immediately rather than deferring the error to first Load, since
// it is always a caller bug, never a runtime condition.
func (m *MapPrefabLoader) Register(id uint64, data []byte, wt NonPrefabWireType) {
	if wt == Prefab {
		panic("gs11n: prefab loader entry cannot itself be wire type Prefab")
	}
	m.entries[id] = prefabEntry{data: data, wt: wt}
}

func (m *MapPrefabLoader) Load(id uint64) ([]byte, NonPrefabWireType, error) {
	e, ok := m.entries[id]
	if !ok {
		return nil, 0, ErrPrefabNotExist
	}
	return e.data, e.wt, nil
}

// resolvePrefab reads a prefab id (a varint) from r, resolves it through
// r's attached loader, and returns a Reader positioned over the resolved
// bytes ready for the caller to decode at the resolved wire type. It
// panics with the appropriate codecPanic on an unattached loader, an
// unresolved id, or a loader that attempted to return another prefab.
func resolvePrefab(r *Reader) (sub Reader, wt NonPrefabWireType) {
	if r.budget != nil {
		r.budget.enterNestedMessage()
	}
	id := r.readVarint()
	if r.prefab == nil {
		panic(codecPanic{ErrPrefabNotExist})
	}
	data, resolvedWT, err := r.prefab.Load(id)
	if err != nil {
		panic(codecPanic{err})
	}
	if resolvedWT == Prefab {
		panic(codecPanic{ErrPrefabToAnotherPrefab})
	}
	return Reader{bytes: data, prefab: r.prefab, budget: r.budget}, resolvedWT
}

// encodePrefabID writes a Prefab-wired field's id. The id is a varint; the
// bytes it resolves to are produced and owned entirely by the loader side,
// so encoding a prefab field never writes anything beyond the wired-id and
// this one varint (§4.7) — there is no inline payload to size or append.
func encodePrefabID(b *Buffer, fieldID uint64, prefabID uint64) {
	encodeWiredID(b, fieldID, Prefab)
	appendVarint(b, prefabID)
}

func recordPrefabID(prefabID uint64) uint64 {
	return varintSize(prefabID)
}
