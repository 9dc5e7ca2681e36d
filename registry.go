package gs11n

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/blang/semver"
	logging "github.com/op/go-logging"
)

var log = logging.MustGetLogger("gs11n")

// ABIVersion is this build's dynamic-type ABI version. Two modules can only
// merge their registries via SyncTraits when their ABIVersions are exactly
// equal (§4.8).
var ABIVersion = semver.MustParse("1.3.0")

// DynamicDecodeFunc decodes one dynamic-type payload given its already-
// consumed type id and a Reader positioned at the payload's body.
type DynamicDecodeFunc func(r *Reader) (any, error)

// vtable is the {type id -> decode function} map for a single registered
// interface, as described in §4.8: every concrete type that can stand in
// for a dynamic interface field registers its own numeric id here.
type vtable map[uint32]DynamicDecodeFunc

// interfaceRegistry holds the active vtable for one interface name plus a
// mutex protecting registration. Lookups go through the atomic pointer so a
// decode in flight never observes a torn or partially rebuilt vtable while
// SyncTraits is merging one in from another module — readers always see a
// complete, immutable snapshot.
type interfaceRegistry struct {
	mu     sync.Mutex
	active atomic.Pointer[vtable]
}

func newInterfaceRegistry() *interfaceRegistry {
	r := &interfaceRegistry{}
	empty := make(vtable)
	r.active.Store(&empty)
	return r
}

func (ir *interfaceRegistry) register(typeID uint32, fn DynamicDecodeFunc) {
	ir.mu.Lock()
	defer ir.mu.Unlock()
	cur := *ir.active.Load()
	next := make(vtable, len(cur)+1)
	for k, v := range cur {
		next[k] = v
	}
	next[typeID] = fn
	ir.active.Store(&next)
}

func (ir *interfaceRegistry) lookup(typeID uint32) (DynamicDecodeFunc, bool) {
	vt := *ir.active.Load()
	fn, ok := vt[typeID]
	return fn, ok
}

func (ir *interfaceRegistry) snapshot() vtable {
	return *ir.active.Load()
}

// merge folds other's entries into ir, favoring ir's own entry on a type id
// collision — a module syncing in another module's traits should never have
// its own registrations silently overwritten by the incoming side.
func (ir *interfaceRegistry) merge(other vtable) {
	ir.mu.Lock()
	defer ir.mu.Unlock()
	cur := *ir.active.Load()
	next := make(vtable, len(cur)+len(other))
	for k, v := range cur {
		next[k] = v
	}
	for k, v := range other {
		if _, exists := next[k]; !exists {
			next[k] = v
		}
	}
	ir.active.Store(&next)
}

// Registry is the registry-of-registries: one interfaceRegistry per
// registered interface name (§4.8). A process typically uses the package-
// level DefaultRegistry; a distinct Registry is useful in tests that need
// isolation from other tests' registrations.
type Registry struct {
	mu         sync.Mutex
	interfaces map[string]*interfaceRegistry
}

func NewRegistry() *Registry {
	return &Registry{interfaces: make(map[string]*interfaceRegistry)}
}

var DefaultRegistry = NewRegistry()

func (reg *Registry) registryFor(interfaceName string) *interfaceRegistry {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	ir, ok := reg.interfaces[interfaceName]
	if !ok {
		ir = newInterfaceRegistry()
		reg.interfaces[interfaceName] = ir
	}
	return ir
}

// RegisterDynamicType associates typeID with fn for the named interface.
// Called once per concrete type at package init time in generated code's
// hand-written equivalent (see fixtures in the test files).
func (reg *Registry) RegisterDynamicType(interfaceName string, typeID uint32, fn DynamicDecodeFunc) {
	reg.registryFor(interfaceName).register(typeID, fn)
	log.Debugf("gs11n: registered dynamic type %d for interface %q", typeID, interfaceName)
}

// LookupDynamicType finds the decode function for typeID under
// interfaceName, returning ok=false if that interface has no such type
// registered (a typical ErrInvalidType condition at the decode call site).
func (reg *Registry) LookupDynamicType(interfaceName string, typeID uint32) (DynamicDecodeFunc, bool) {
	ir, ok := func() (*interfaceRegistry, bool) {
		reg.mu.Lock()
		defer reg.mu.Unlock()
		ir, ok := reg.interfaces[interfaceName]
		return ir, ok
	}()
	if !ok {
		return nil, false
	}
	return ir.lookup(typeID)
}

// ModuleTraits is what one module publishes to SyncTraits: its ABI version
// plus a snapshot of every interface vtable it has registered. A module
// calls ExportTraits once its own init-time registrations are complete and
// hands the result to whatever cross-module wiring brings two gs11n users
// together in the same process (§4.8).
type ModuleTraits struct {
	ABIVersion semver.Version
	Interfaces map[string]vtable
}

// ExportTraits snapshots reg's current state for handing to another
// module's SyncTraits call.
func (reg *Registry) ExportTraits() ModuleTraits {
	reg.mu.Lock()
	names := make([]string, 0, len(reg.interfaces))
	for name := range reg.interfaces {
		names = append(names, name)
	}
	reg.mu.Unlock()

	out := ModuleTraits{ABIVersion: ABIVersion, Interfaces: make(map[string]vtable, len(names))}
	for _, name := range names {
		out.Interfaces[name] = reg.registryFor(name).snapshot()
	}
	return out
}

// SyncTraits merges incoming into reg, provided incoming's ABI version is
// exactly equal to ours. A mismatch returns ErrVersionNotCompatible and
// changes nothing — a partial merge across incompatible ABI generations
// would leave the registry in a state neither module actually expects.
func (reg *Registry) SyncTraits(incoming ModuleTraits) error {
	if !incoming.ABIVersion.Equals(ABIVersion) {
		log.Warningf("gs11n: refusing trait sync, module ABI %s incompatible with host ABI %s",
			incoming.ABIVersion, ABIVersion)
		return fmt.Errorf("%w: module=%s host=%s", ErrVersionNotCompatible, incoming.ABIVersion, ABIVersion)
	}
	for name, vt := range incoming.Interfaces {
		reg.registryFor(name).merge(vt)
	}
	log.Infof("gs11n: synced traits from module ABI %s (%d interfaces)", incoming.ABIVersion, len(incoming.Interfaces))
	return nil
}

// --- dynamic value field framing (§4.8) ---
//
// A dynamic-typed field is framed as exactly: a varint type id, then the
// concrete value's own encode with no additional length wrapper (scenario
// 5 of §8 — varint(type_id) followed directly by the raw payload). This is
// deliberately unlike variant.go's tagged union, where §4.9 explicitly adds
// a varint_size(child_size) to the metadata; the dynamic-type registry gets
// no such treatment, so the concrete type's own self-describing field loop
// is what bounds the decode. The type id is looked up in the interface's
// vtable to find the right decode function; an unregistered id is
// ErrInvalidType, the same sentinel an unrecognized wire type byte
// produces, since both represent "this decoder doesn't know how to
// interpret what's here."

func recordDynamic(typeID uint32, inner Fielder, m *Metadata) uint64 {
	idSize := varintSize(uint64(typeID))
	innerSize := inner.RecordFields(m)
	m.Size = innerSize
	return idSize + innerSize
}

func encodeDynamic(b *Buffer, typeID uint32, inner Fielder, m *Metadata) {
	appendVarint(b, uint64(typeID))
	inner.EncodeFields(b, m)
}

// decodeDynamic reads a type id and dispatches to the registered decode
// function for interfaceName. Unlike a nested aggregate field, there is no
// outer length to bound the dispatched decode by; the registered decode
// function is trusted to consume exactly its own concrete type's bytes.
func decodeDynamic(r *Reader, reg *Registry, interfaceName string) (any, error) {
	typeID := uint32(r.readVarint())
	fn, ok := reg.LookupDynamicType(interfaceName, typeID)
	if !ok {
		return nil, ErrInvalidType
	}
	return fn(r)
}
