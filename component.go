package kura

import (
	"cmp"
	"fmt"
	"reflect"
	"sync"
	"unsafe"
)

// ComponentID is the process-wide identity of a component type. IDs are
// assigned in first-use order and stay fixed for the life of the process, so
// every World agrees on them.
type ComponentID uint8

// MaxComponentTypes is the maximum number of distinct component types a
// process can register.
const MaxComponentTypes = 256

// Dropper is implemented by components that own something the garbage
// collector cannot reclaim on its own (file handles, pooled buffers, ...).
// Drop is called exactly once for every live row when the World holding the
// component is closed.
type Dropper interface {
	Drop()
}

// typeInfo is the type-erased description of a component type.
type typeInfo struct {
	typ   reflect.Type
	drop  func(unsafe.Pointer) // nil when the type has no destructor
	size  uintptr
	align uintptr
	id    ComponentID
}

// name is the component's Go type name, used for logs and stats.
func (t *typeInfo) name() string {
	return t.typ.String()
}

func compareInfo(a, b *typeInfo) int {
	return cmp.Compare(a.id, b.id)
}

var dropperType = reflect.TypeFor[Dropper]()

var registry = struct {
	byType map[reflect.Type]*typeInfo
	byID   [MaxComponentTypes]*typeInfo
	sync.RWMutex
	next uint16
}{
	byType: make(map[reflect.Type]*typeInfo, 16),
}

// RegisterComponent registers T and returns its ID. Registering is optional:
// every entry point registers the types it sees on first use. It panics once
// MaxComponentTypes types exist.
func RegisterComponent[T any]() ComponentID {
	return infoFor[T]().id
}

// TryGetID returns the ID of T if T has been registered.
func TryGetID[T any]() (ComponentID, bool) {
	registry.RLock()
	defer registry.RUnlock()
	info, ok := registry.byType[reflect.TypeFor[T]()]
	if !ok {
		return 0, false
	}
	return info.id, true
}

// ComponentName returns the type name registered under id, or "" if none.
func ComponentName(id ComponentID) string {
	registry.RLock()
	defer registry.RUnlock()
	if info := registry.byID[id]; info != nil {
		return info.name()
	}
	return ""
}

func infoFor[T any]() *typeInfo {
	return typeInfoOf(reflect.TypeFor[T]())
}

// typeInfoOf returns the descriptor of t, registering it on first use.
func typeInfoOf(t reflect.Type) *typeInfo {
	registry.RLock()
	info, ok := registry.byType[t]
	registry.RUnlock()
	if ok {
		return info
	}

	registry.Lock()
	defer registry.Unlock()
	if info, ok := registry.byType[t]; ok {
		return info
	}
	if registry.next >= MaxComponentTypes {
		panic(fmt.Sprintf("kura: cannot register component %s: maximum number of component types (%d) reached", t, MaxComponentTypes))
	}
	info = &typeInfo{
		id:    ComponentID(registry.next),
		typ:   t,
		size:  t.Size(),
		align: uintptr(t.Align()),
		drop:  dropFor(t),
	}
	registry.byType[t] = info
	registry.byID[info.id] = info
	registry.next++
	return info
}

// dropFor builds the destructor of t. Both value and pointer receivers of
// Drop end up in the method set of *t.
func dropFor(t reflect.Type) func(unsafe.Pointer) {
	if !reflect.PointerTo(t).Implements(dropperType) {
		return nil
	}
	return func(p unsafe.Pointer) {
		reflect.NewAt(t, p).Interface().(Dropper).Drop()
	}
}
