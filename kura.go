// Package kura is an in-process columnar store that attaches an arbitrary,
// dynamically composed set of typed components to opaque entity handles, and
// iterates every entity sharing a component combination without copying.
//
// Features:
//   - Archetype storage: one typed column per component and one archetype per
//     distinct component signature. Component IDs are shared by every World in
//     the process.
//   - Order-independent signatures: Bundle2(a, b) and Bundle2(b, a) land in
//     the same archetype.
//   - Zero-sized components cost no storage.
//   - Lazy, zero-copy queries over up to 8 components as iter.Seq2 sequences.
//   - Read/write borrow checks that turn aliasing mistakes into panics.
//
// Example:
//
//	w := kura.NewWorld()
//	kura.Spawn2(w, Position{X: 1}, Velocity{DX: 2})
//	for _, row := range kura.QueryMut2[Position, Velocity](w) {
//	    pos, vel := row.Get()
//	    pos.X += vel.DX
//	}
package kura

//go:generate go run ./cmd/generate
