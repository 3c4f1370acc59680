package kura_test

import (
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edwinsyarief/kura"
)

func count[K, V any](seq iter.Seq2[K, V]) int {
	n := 0
	for range seq {
		n++
	}
	return n
}

// go test -run ^TestSpawn14_Query8$ . -count 1
func TestSpawn14_Query8(t *testing.T) {
	t.Parallel()

	w := kura.NewWorld()
	first := kura.Spawn14(w,
		Attr1{1}, Attr2{2}, Attr3{3}, Attr4{4}, Attr5{5}, Attr6{6}, Attr7{7},
		Attr8{8}, Attr9{9}, Attr10{10}, Attr11{11}, Attr12{12}, Attr13{13}, Attr14{14})
	second := w.Spawn(kura.Bundle14(
		Attr14{140}, Attr13{130}, Attr12{120}, Attr11{110}, Attr10{100}, Attr9{90}, Attr8{80},
		Attr7{70}, Attr6{60}, Attr5{50}, Attr4{40}, Attr3{30}, Attr2{20}, Attr1{10}))

	require.Len(t, w.Stats().Archetypes, 1)
	locFirst, err := w.Location(first)
	require.NoError(t, err)
	locSecond, err := w.Location(second)
	require.NoError(t, err)
	assert.Equal(t, locFirst.Archetype, locSecond.Archetype)

	scale := map[kura.Entity]int{first: 1, second: 10}

	var seen []kura.Entity
	for e, row := range kura.QueryMut8[Attr1, Attr2, Attr3, Attr4, Attr5, Attr6, Attr7, Attr8](w) {
		a1, a2, a3, a4, a5, a6, a7, a8 := row.Get()
		k := scale[e]
		assert.Equal(t, []int{k, 2 * k, 3 * k, 4 * k, 5 * k, 6 * k, 7 * k, 8 * k},
			[]int{a1.V, a2.V, a3.V, a4.V, a5.V, a6.V, a7.V, a8.V})
		for _, v := range []*int{&a1.V, &a2.V, &a3.V, &a4.V, &a5.V, &a6.V, &a7.V, &a8.V} {
			*v += 1000
		}
		seen = append(seen, e)
	}
	assert.Equal(t, []kura.Entity{first, second}, seen)

	seen = seen[:0]
	for e, row := range kura.Query8[Attr14, Attr13, Attr12, Attr11, Attr10, Attr9, Attr8, Attr1](w) {
		k := scale[e]
		assert.Equal(t, 14*k, row.C1.V)
		assert.Equal(t, 13*k, row.C2.V)
		assert.Equal(t, 12*k, row.C3.V)
		assert.Equal(t, 11*k, row.C4.V)
		assert.Equal(t, 10*k, row.C5.V)
		assert.Equal(t, 9*k, row.C6.V)
		assert.Equal(t, 8*k+1000, row.C7.V)
		assert.Equal(t, k+1000, row.C8.V)
		seen = append(seen, e)
	}
	assert.Equal(t, []kura.Entity{first, second}, seen)

	assert.Equal(t, 140, kura.Get[Attr14](w, second).V)
	assert.Equal(t, 1005, kura.Get[Attr5](w, first).V)
}

func TestSpawnArities(t *testing.T) {
	t.Parallel()

	w := kura.NewWorld()
	es := []kura.Entity{
		kura.Spawn4(w, Attr1{1}, Attr2{2}, Attr3{3}, Attr4{4}),
		kura.Spawn5(w, Attr1{1}, Attr2{2}, Attr3{3}, Attr4{4}, Attr5{5}),
		kura.Spawn6(w, Attr1{1}, Attr2{2}, Attr3{3}, Attr4{4}, Attr5{5}, Attr6{6}),
		kura.Spawn7(w, Attr1{1}, Attr2{2}, Attr3{3}, Attr4{4}, Attr5{5}, Attr6{6}, Attr7{7}),
		kura.Spawn8(w, Attr1{1}, Attr2{2}, Attr3{3}, Attr4{4}, Attr5{5}, Attr6{6}, Attr7{7}, Attr8{8}),
		kura.Spawn9(w, Attr1{1}, Attr2{2}, Attr3{3}, Attr4{4}, Attr5{5}, Attr6{6}, Attr7{7}, Attr8{8}, Attr9{9}),
		kura.Spawn10(w, Attr1{1}, Attr2{2}, Attr3{3}, Attr4{4}, Attr5{5}, Attr6{6}, Attr7{7}, Attr8{8}, Attr9{9},
			Attr10{10}),
		kura.Spawn11(w, Attr1{1}, Attr2{2}, Attr3{3}, Attr4{4}, Attr5{5}, Attr6{6}, Attr7{7}, Attr8{8}, Attr9{9},
			Attr10{10}, Attr11{11}),
		kura.Spawn12(w, Attr1{1}, Attr2{2}, Attr3{3}, Attr4{4}, Attr5{5}, Attr6{6}, Attr7{7}, Attr8{8}, Attr9{9},
			Attr10{10}, Attr11{11}, Attr12{12}),
		kura.Spawn13(w, Attr1{1}, Attr2{2}, Attr3{3}, Attr4{4}, Attr5{5}, Attr6{6}, Attr7{7}, Attr8{8}, Attr9{9},
			Attr10{10}, Attr11{11}, Attr12{12}, Attr13{13}),
	}
	// Bundles of every width land next to the matching SpawnN.
	w.Spawn(kura.Bundle4(Attr4{4}, Attr3{3}, Attr2{2}, Attr1{1}))
	w.Spawn(kura.Bundle9(Attr9{9}, Attr8{8}, Attr7{7}, Attr6{6}, Attr5{5}, Attr4{4}, Attr3{3}, Attr2{2}, Attr1{1}))
	w.Spawn(kura.Bundle13(Attr13{13}, Attr12{12}, Attr11{11}, Attr10{10}, Attr9{9}, Attr8{8}, Attr7{7},
		Attr6{6}, Attr5{5}, Attr4{4}, Attr3{3}, Attr2{2}, Attr1{1}))

	stats := w.Stats()
	require.Len(t, stats.Archetypes, 10)
	for i, a := range stats.Archetypes {
		assert.Len(t, a.Components, i+4)
	}
	assert.Equal(t, 2, stats.Archetypes[0].Entities)
	assert.Equal(t, 2, stats.Archetypes[5].Entities)
	assert.Equal(t, 2, stats.Archetypes[9].Entities)

	assert.Equal(t, 4, kura.Get[Attr4](w, es[0]).V)
	assert.Equal(t, 5, kura.Get[Attr5](w, es[1]).V)
	assert.Equal(t, 6, kura.Get[Attr6](w, es[2]).V)
	assert.Equal(t, 7, kura.Get[Attr7](w, es[3]).V)
	assert.Equal(t, 8, kura.Get[Attr8](w, es[4]).V)
	assert.Equal(t, 9, kura.Get[Attr9](w, es[5]).V)
	assert.Equal(t, 10, kura.Get[Attr10](w, es[6]).V)
	assert.Equal(t, 11, kura.Get[Attr11](w, es[7]).V)
	assert.Equal(t, 12, kura.Get[Attr12](w, es[8]).V)
	assert.Equal(t, 13, kura.Get[Attr13](w, es[9]).V)
	assert.Nil(t, kura.Get[Attr14](w, es[9]))

	// Entities with at least n components, plus the three bundles.
	assert.Equal(t, 13, count(kura.Query4[Attr1, Attr2, Attr3, Attr4](w)))
	assert.Equal(t, 11, count(kura.Query5[Attr1, Attr2, Attr3, Attr4, Attr5](w)))
	assert.Equal(t, 10, count(kura.Query6[Attr1, Attr2, Attr3, Attr4, Attr5, Attr6](w)))
	assert.Equal(t, 9, count(kura.Query7[Attr1, Attr2, Attr3, Attr4, Attr5, Attr6, Attr7](w)))

	for _, row := range kura.QueryMut4[Attr4, Attr3, Attr2, Attr1](w) {
		assert.Equal(t, 4, row.C1.V)
		row.C4.V = -1
	}
	for _, row := range kura.QueryMut5[Attr1, Attr2, Attr3, Attr4, Attr5](w) {
		assert.Equal(t, -1, row.C1.V)
		row.C5.V = 50
	}
	for _, row := range kura.QueryMut6[Attr6, Attr5, Attr4, Attr3, Attr2, Attr1](w) {
		assert.Equal(t, 50, row.C2.V)
	}
	assert.Equal(t, 9, count(kura.QueryMut7[Attr7, Attr6, Attr5, Attr4, Attr3, Attr2, Attr1](w)))
	assert.Equal(t, -1, kura.Get[Attr1](w, es[0]).V)
	assert.Equal(t, 50, kura.Get[Attr5](w, es[9]).V)
}
