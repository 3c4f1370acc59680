package kura

import "reflect"

// ComponentSet is a fixed group of component values written into an archetype
// as one row. Sets are built with Bundle, Bundle2 ... Bundle14; a bare
// component value passed to World.Spawn behaves like a one-element set.
//
// The signature of a set is the sorted list of its component IDs, so the
// order components are declared in never changes which archetype a set
// lands in.
type ComponentSet interface {
	// appendInfos appends the descriptor of every member, in declaration
	// order, to dst.
	appendInfos(dst []*typeInfo) []*typeInfo
	// writeTo reserves one row and writes every member into it. infos is
	// the slice produced by appendInfos.
	writeTo(a *archetype, infos []*typeInfo)
}

// Set1 is a component set holding a single component.
type Set1[T1 any] struct {
	C1 T1
}

// Bundle wraps a single component value into a Set1. Spawning it is the same
// as spawning the bare value.
func Bundle[T1 any](c1 T1) Set1[T1] {
	return Set1[T1]{C1: c1}
}

func (s Set1[T1]) appendInfos(dst []*typeInfo) []*typeInfo {
	return append(dst, infoFor[T1]())
}

func (s Set1[T1]) writeTo(a *archetype, infos []*typeInfo) {
	a.reserve(1)
	writeColumn(a, infos[0], s.C1)
}

// Spawn creates an entity holding the single component c1.
func Spawn[T1 any](w *World, c1 T1) Entity {
	return w.spawn(Set1[T1]{C1: c1})
}

// valueSet is the one-element set of a bare value given to World.Spawn. The
// concrete type is only known at run time, so it is resolved through
// reflection; the result is the same signature as Bundle of that type.
type valueSet struct {
	value reflect.Value
}

func (s valueSet) appendInfos(dst []*typeInfo) []*typeInfo {
	return append(dst, typeInfoOf(s.value.Type()))
}

func (s valueSet) writeTo(a *archetype, infos []*typeInfo) {
	a.reserve(1)
	a.writeValue(infos[0], s.value)
}
