package kura

import (
	"fmt"
	"math"
	"reflect"
	"slices"

	"github.com/kelindar/bitmap"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

// Location is where an entity's row lives: the index of its archetype in the
// World and the row inside that archetype.
type Location struct {
	Archetype int
	Row       int
}

// borrowState tracks the access currently granted on a World. Go cannot check
// aliasing at compile time, so the World checks it when an operation starts.
type borrowState struct {
	shared    int  // ranging read-only queries
	exclusive bool // ranging mutable query
}

// World is the registry of every archetype and entity. A World is owned by a
// single goroutine; read-only operations may be interleaved with each other,
// but any operation that can mutate the World requires that nothing else is
// in flight.
type World struct {
	logger      zerolog.Logger
	index       map[bitmask256]int // signature -> archetype index
	archetypes  []*archetype
	locations   []Location // indexed by Entity
	scratch     []*typeInfo
	byComponent [MaxComponentTypes]bitmap.Bitmap // component -> archetypes holding it

	initialCapacity int
	borrow          borrowState
	closed          bool
}

// NewWorld creates an empty World.
func NewWorld(opts ...Option) *World {
	w := &World{
		logger:          zerolog.Nop(),
		index:           make(map[bitmask256]int),
		archetypes:      make([]*archetype, 0, 16),
		scratch:         make([]*typeInfo, 0, 16),
		initialCapacity: 1,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Spawn creates an entity from components, which is either a ComponentSet
// built with one of the Bundle functions or a single bare component value,
// and returns its handle. Handles are handed out densely from 0 and are never
// reused.
func (w *World) Spawn(components any) Entity {
	switch set := components.(type) {
	case nil:
		panic("kura: cannot spawn a nil component")
	case ComponentSet:
		return w.spawn(set)
	default:
		return w.spawn(valueSet{value: reflect.ValueOf(components)})
	}
}

func (w *World) spawn(set ComponentSet) Entity {
	w.assertExclusive("Spawn")
	if uint64(len(w.locations)) > math.MaxUint32 {
		panic("kura: entity handles exhausted")
	}
	infos := set.appendInfos(w.scratch[:0])
	w.scratch = infos
	a := w.archetypeFor(infos)

	e := Entity(len(w.locations))
	set.writeTo(a, infos)
	row := a.push(e)
	w.locations = append(w.locations, Location{Archetype: a.index, Row: row})
	return e
}

// archetypeFor returns the archetype of the signature described by infos,
// creating it the first time the signature is seen.
func (w *World) archetypeFor(infos []*typeInfo) *archetype {
	var mask bitmask256
	for _, info := range infos {
		if mask.containsBit(info.id) {
			panic(fmt.Sprintf("kura: duplicate component type %s in component set", info.name()))
		}
		mask.set(info.id)
	}
	if idx, ok := w.index[mask]; ok {
		return w.archetypes[idx]
	}

	signature := slices.Clone(infos)
	slices.SortFunc(signature, compareInfo)
	a := newArchetype(len(w.archetypes), mask, signature, w.initialCapacity)
	w.archetypes = append(w.archetypes, a)
	w.index[mask] = a.index
	for _, info := range signature {
		w.byComponent[info.id].Set(uint32(a.index))
	}
	w.logArchetype(a)
	return a
}

// matching returns the non-empty archetypes holding every component in ids,
// in creation order.
func (w *World) matching(ids ...ComponentID) []*archetype {
	if len(ids) == 0 {
		return nil
	}
	var want bitmask256
	smallest := ids[0]
	for _, id := range ids {
		want.set(id)
		if w.byComponent[id].Count() < w.byComponent[smallest].Count() {
			smallest = id
		}
	}

	var out []*archetype
	w.byComponent[smallest].Range(func(x uint32) {
		a := w.archetypes[x]
		if a.len() > 0 && a.mask.contains(want) {
			out = append(out, a)
		}
	})
	return out
}

// Len returns the number of entities spawned so far.
func (w *World) Len() int {
	return len(w.locations)
}

// Alive reports whether e is a handle this World has issued.
func (w *World) Alive(e Entity) bool {
	return int(e) < len(w.locations)
}

// Location returns where e is stored.
func (w *World) Location(e Entity) (Location, error) {
	if !w.Alive(e) {
		return Location{}, eris.Wrapf(ErrEntityNotFound, "entity %d", e)
	}
	return w.locations[e], nil
}

// locate is Location for callers that treat a bad handle as fatal.
func (w *World) locate(e Entity) Location {
	if !w.Alive(e) {
		panic(fmt.Sprintf("kura: entity %d out of range (%d entities)", e, len(w.locations)))
	}
	return w.locations[e]
}

// Close tears the World down: the destructor of every live component runs
// exactly once and all column buffers are released. Any later use of the
// World panics, and closing again returns ErrWorldClosed.
func (w *World) Close() error {
	if w.closed {
		return eris.Wrap(ErrWorldClosed, "close")
	}
	w.assertExclusive("Close")
	dropped := 0
	for _, a := range w.archetypes {
		dropped += a.drop()
	}
	w.closed = true
	w.logger.Info().
		Int("archetypes", len(w.archetypes)).
		Int("entities", dropped).
		Msg("world closed")
	return nil
}

func (w *World) assertOpen() {
	if w.closed {
		panic("kura: world is closed")
	}
}

// assertShared checks that a read-only operation may run now.
func (w *World) assertShared(op string) {
	w.assertOpen()
	if w.borrow.exclusive {
		panic(fmt.Sprintf("kura: %s called while a mutable query is running", op))
	}
}

// assertExclusive checks that a mutating operation may run now.
func (w *World) assertExclusive(op string) {
	w.assertOpen()
	if w.borrow.exclusive || w.borrow.shared > 0 {
		panic(fmt.Sprintf("kura: %s requires exclusive access but the world is borrowed", op))
	}
}

func (w *World) borrowShared(op string) {
	w.assertShared(op)
	w.borrow.shared++
}

func (w *World) releaseShared() {
	w.borrow.shared--
}

func (w *World) borrowExclusive(op string) {
	w.assertExclusive(op)
	w.borrow.exclusive = true
}

func (w *World) releaseExclusive() {
	w.borrow.exclusive = false
}

func (w *World) logArchetype(a *archetype) {
	event := w.logger.Debug()
	if !event.Enabled() {
		return
	}
	components := zerolog.Arr()
	for _, info := range a.signature {
		components = components.Dict(zerolog.Dict().
			Int("component_id", int(info.id)).
			Str("component_name", info.name()))
	}
	event.Int("archetype_id", a.index).Array("components", components).Msg("archetype created")
}
