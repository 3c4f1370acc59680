package kura

import (
	"cmp"
	"reflect"
	"slices"
	"unsafe"
)

// zstBase backs every pointer handed out for a zero-sized component. Nothing
// is ever read or written through it. uint64 gives it the strictest alignment
// any Go type needs.
var zstBase uint64

// column is the storage of one component type inside an archetype. The buffer
// is a typed []T created through reflection so the garbage collector keeps
// scanning pointers held by components; base is its first element.
type column struct {
	info *typeInfo
	data reflect.Value // []T with len == archetype capacity; invalid for zero-sized types
	base unsafe.Pointer
}

// at returns the address of row. Zero-sized columns own no buffer and always
// return the shared placeholder.
func (c *column) at(row int) unsafe.Pointer {
	if c.info.size == 0 {
		return unsafe.Pointer(&zstBase)
	}
	return unsafe.Add(c.base, uintptr(row)*c.info.size)
}

func (c *column) alloc(capacity int) {
	if c.info.size == 0 {
		return
	}
	c.data = reflect.MakeSlice(reflect.SliceOf(c.info.typ), capacity, capacity)
	c.base = c.data.UnsafePointer()
}

// grow moves the first used rows into a new buffer of the given capacity.
func (c *column) grow(capacity, used int) {
	if c.info.size == 0 {
		return
	}
	next := reflect.MakeSlice(reflect.SliceOf(c.info.typ), capacity, capacity)
	reflect.Copy(next, c.data.Slice(0, used))
	c.data = next
	c.base = next.UnsafePointer()
}

func (c *column) release() {
	c.data = reflect.Value{}
	c.base = nil
}

// archetype holds the columnar storage of every entity sharing one signature.
// Columns are laid out in signature order, which is sorted by component ID.
type archetype struct {
	signature       []*typeInfo
	columns         []column
	entities        []Entity // owner of each occupied row
	slots           [MaxComponentTypes]int16
	mask            bitmask256
	index           int // position in World.archetypes
	capacity        int // rows allocated in every column
	initialCapacity int
}

// newArchetype creates an empty, unallocated archetype. signature must be
// sorted by component ID and free of duplicates.
func newArchetype(index int, mask bitmask256, signature []*typeInfo, initialCapacity int) *archetype {
	a := &archetype{
		index:           index,
		mask:            mask,
		signature:       signature,
		columns:         make([]column, len(signature)),
		initialCapacity: initialCapacity,
	}
	for i := range a.slots {
		a.slots[i] = -1
	}
	for i, info := range signature {
		a.columns[i].info = info
		a.slots[info.id] = int16(i)
	}
	return a
}

// len is the number of occupied rows.
func (a *archetype) len() int {
	return len(a.entities)
}

// contains reports whether id is part of the signature.
func (a *archetype) contains(id ComponentID) bool {
	_, ok := slices.BinarySearchFunc(a.signature, id, func(info *typeInfo, id ComponentID) int {
		return cmp.Compare(info.id, id)
	})
	return ok
}

// column returns the column holding id, or nil if the signature lacks it.
func (a *archetype) column(id ComponentID) *column {
	slot := a.slots[id]
	if slot < 0 {
		return nil
	}
	return &a.columns[slot]
}

// allocate sizes every column for capacity rows. The caller guarantees the
// archetype has not been allocated yet.
func (a *archetype) allocate(capacity int) {
	if capacity == 0 {
		return
	}
	for i := range a.columns {
		a.columns[i].alloc(capacity)
	}
	a.capacity = capacity
	a.entities = make([]Entity, 0, capacity)
}

// reserve makes room for additional more rows. Growth is at least 50% of the
// current capacity so that repeated single-row appends stay amortized O(1).
func (a *archetype) reserve(additional int) {
	if a.capacity-len(a.entities) >= additional {
		return
	}
	if a.capacity == 0 {
		a.allocate(max(additional, a.initialCapacity))
		return
	}
	next := a.capacity + max(additional, a.capacity/2+1)
	for i := range a.columns {
		a.columns[i].grow(next, len(a.entities))
	}
	a.capacity = next
}

// writeColumn stores value in the next free row of the column described by
// info. The caller must push the owning entity right after writing every
// column of the row.
func writeColumn[T any](a *archetype, info *typeInfo, value T) {
	if info.size == 0 {
		return
	}
	*(*T)(a.columns[a.slots[info.id]].at(len(a.entities))) = value
}

// writeValue is the reflective counterpart of writeColumn.
func (a *archetype) writeValue(info *typeInfo, value reflect.Value) {
	if info.size == 0 {
		return
	}
	ptr := a.columns[a.slots[info.id]].at(len(a.entities))
	reflect.NewAt(info.typ, ptr).Elem().Set(value)
}

// push records e as the owner of the row just written and returns that row.
func (a *archetype) push(e Entity) int {
	row := len(a.entities)
	a.entities = append(a.entities, e)
	return row
}

// drop runs the destructor of every live element and releases all buffers.
// It returns the number of rows that were dropped.
func (a *archetype) drop() int {
	rows := len(a.entities)
	for i := range a.columns {
		c := &a.columns[i]
		if c.info.drop != nil {
			for row := 0; row < rows; row++ {
				c.info.drop(c.at(row))
			}
		}
		c.release()
	}
	a.entities = nil
	a.capacity = 0
	return rows
}
