package kura

// Entity is the handle of one logical entity. Handles are assigned densely
// from 0 in spawn order and are never reused, so an Entity doubles as an
// index into the World's location table.
type Entity uint32

// EntityRef is a read-only cursor resolved to one entity's row. Component
// lookups through it skip the location table. A cursor and the pointers it
// returns are valid only until the next Spawn, which may move the row.
type EntityRef struct {
	arch   *archetype
	row    int
	entity Entity
}

// EntityMut is the mutable counterpart of EntityRef.
type EntityMut struct {
	arch   *archetype
	row    int
	entity Entity
}

// Entity resolves e to a read-only cursor. It panics if e was not issued by
// this World.
func (w *World) Entity(e Entity) EntityRef {
	w.assertShared("Entity")
	loc := w.locate(e)
	return EntityRef{arch: w.archetypes[loc.Archetype], row: loc.Row, entity: e}
}

// EntityMut resolves e to a mutable cursor. It panics if e was not issued by
// this World.
func (w *World) EntityMut(e Entity) EntityMut {
	w.assertExclusive("EntityMut")
	loc := w.locate(e)
	return EntityMut{arch: w.archetypes[loc.Archetype], row: loc.Row, entity: e}
}

// Entity returns the handle the cursor was resolved from.
func (r EntityRef) Entity() Entity {
	return r.entity
}

// Entity returns the handle the cursor was resolved from.
func (m EntityMut) Entity() Entity {
	return m.entity
}

// From returns the T component of the entity behind r, or nil if the entity
// has no T. The pointer is valid only until the next Spawn.
func From[T any](r EntityRef) *T {
	return lookup[T](r.arch, r.row)
}

// FromMut returns the T component of the entity behind m for writing, or nil
// if the entity has no T. The pointer is valid only until the next Spawn;
// writes through it after a Spawn grows the archetype are lost.
func FromMut[T any](m EntityMut) *T {
	return lookup[T](m.arch, m.row)
}

// RefHas reports whether the entity behind r has a T component.
func RefHas[T any](r EntityRef) bool {
	return r.arch != nil && r.arch.contains(infoFor[T]().id)
}
