package kura

import (
	"fmt"
	"iter"
)

// Query returns a lazy sequence over every entity holding an A, yielding the
// entity and a pointer into its A column. No data is copied. Entities come in
// archetype creation order, then row order. Matching archetypes are
// re-evaluated each time the sequence is ranged over.
//
// The World is borrowed for reading while the sequence is being ranged over:
// components must not be written through the yielded pointers, and calling a
// mutating operation on the World from the loop body panics.
//
// Example:
//
//	for e, pos := range kura.Query[Position](world) {
//	    fmt.Println(e, pos.X, pos.Y)
//	}
func Query[A any](w *World) iter.Seq2[Entity, *A] {
	id := infoFor[A]().id
	return func(yield func(Entity, *A) bool) {
		w.borrowShared("Query")
		defer w.releaseShared()
		for _, a := range w.matching(id) {
			c := a.column(id)
			for row, e := range a.entities {
				if !yield(e, (*A)(c.at(row))) {
					return
				}
			}
		}
	}
}

// QueryMut is Query with write access: the yielded pointers may be written
// through. The World is borrowed exclusively while the sequence is being
// ranged over, so any other World operation from the loop body panics.
func QueryMut[A any](w *World) iter.Seq2[Entity, *A] {
	id := infoFor[A]().id
	return func(yield func(Entity, *A) bool) {
		w.borrowExclusive("QueryMut")
		defer w.releaseExclusive()
		for _, a := range w.matching(id) {
			c := a.column(id)
			for row, e := range a.entities {
				if !yield(e, (*A)(c.at(row))) {
					return
				}
			}
		}
	}
}

// mustBeDistinct rejects a mutable query naming the same component twice,
// which would hand out two writable pointers to one value.
func mustBeDistinct(op string, ids []ComponentID) {
	var seen bitmask256
	for _, id := range ids {
		if seen.containsBit(id) {
			panic(fmt.Sprintf("kura: %s requests component %s more than once", op, ComponentName(id)))
		}
		seen.set(id)
	}
}
