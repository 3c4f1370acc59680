package kura

import "github.com/rotisserie/eris"

// Get returns the T component of e, or nil if e has no T. It panics if e was
// not issued by this World.
//
// The pointer addresses the archetype's current column buffer and is valid
// only until the next Spawn: a spawn that grows the archetype moves its rows,
// and later writes through an old pointer are lost.
func Get[T any](w *World, e Entity) *T {
	w.assertShared("Get")
	loc := w.locate(e)
	return lookup[T](w.archetypes[loc.Archetype], loc.Row)
}

// GetMut returns the T component of e for writing, or nil if e has no T. It
// requires exclusive access to the World and panics if e was not issued by
// this World. Like Get, the pointer is valid only until the next Spawn.
func GetMut[T any](w *World, e Entity) *T {
	w.assertExclusive("GetMut")
	loc := w.locate(e)
	return lookup[T](w.archetypes[loc.Archetype], loc.Row)
}

// TryGet is Get for handles of unknown origin: instead of panicking it
// returns ErrEntityNotFound when e was not issued by this World. The pointer
// is valid only until the next Spawn.
func TryGet[T any](w *World, e Entity) (*T, error) {
	w.assertShared("TryGet")
	loc, err := w.Location(e)
	if err != nil {
		return nil, eris.Wrap(err, "get component")
	}
	return lookup[T](w.archetypes[loc.Archetype], loc.Row), nil
}

// Has reports whether e has a T component.
func Has[T any](w *World, e Entity) bool {
	w.assertShared("Has")
	loc := w.locate(e)
	return w.archetypes[loc.Archetype].contains(infoFor[T]().id)
}

// lookup returns a pointer to the T stored at row of a. Rows past the live
// range, which only happens on a closed World, yield nil.
func lookup[T any](a *archetype, row int) *T {
	if a == nil || row >= a.len() {
		return nil
	}
	c := a.column(infoFor[T]().id)
	if c == nil {
		return nil
	}
	return (*T)(c.at(row))
}
