package kura_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edwinsyarief/kura"
)

func TestEntityRef(t *testing.T) {
	t.Parallel()

	w := kura.NewWorld()
	kura.Spawn(w, Name{Value: "filler"})
	e := kura.Spawn3(w, Name{Value: "hero"}, Health{Current: 7, Max: 10}, Tag{})

	ref := w.Entity(e)
	assert.Equal(t, e, ref.Entity())

	name := kura.From[Name](ref)
	require.NotNil(t, name)
	assert.Equal(t, "hero", name.Value)
	assert.Equal(t, Health{Current: 7, Max: 10}, *kura.From[Health](ref))
	assert.NotNil(t, kura.From[Tag](ref))
	assert.Nil(t, kura.From[Speed](ref))

	assert.True(t, kura.RefHas[Health](ref))
	assert.False(t, kura.RefHas[Speed](ref))

	// The cursor points at the same storage as World lookups.
	assert.Same(t, kura.Get[Health](w, e), kura.From[Health](ref))
}

func TestEntityMut(t *testing.T) {
	t.Parallel()

	w := kura.NewWorld()
	e := kura.Spawn2(w, Position{X: 1, Y: 1}, Velocity{DX: 2, DY: 3})

	m := w.EntityMut(e)
	assert.Equal(t, e, m.Entity())
	pos := kura.FromMut[Position](m)
	vel := kura.FromMut[Velocity](m)
	require.NotNil(t, pos)
	require.NotNil(t, vel)
	pos.X += vel.DX
	pos.Y += vel.DY
	assert.Nil(t, kura.FromMut[Health](m))

	assert.Equal(t, Position{X: 3, Y: 4}, *kura.Get[Position](w, e))
	for got, p := range kura.Query[Position](w) {
		assert.Equal(t, e, got)
		assert.Equal(t, Position{X: 3, Y: 4}, *p)
	}
}

func TestEntityMut_InsideQueryPanics(t *testing.T) {
	t.Parallel()

	w := kura.NewWorld()
	e := kura.Spawn(w, Position{})
	assert.Panics(t, func() {
		for range kura.Query[Position](w) {
			w.EntityMut(e)
		}
	})
	assert.NotPanics(t, func() { w.EntityMut(e) })
}
