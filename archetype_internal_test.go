package kura

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type archPosition struct{ X, Y float64 }

type archLabel struct{ Text string }

type archMarker struct{}

type archDropCounter struct{ drops *int }

func (d archDropCounter) Drop() { *d.drops++ }

func newTestArchetype(initialCapacity int, infos ...*typeInfo) *archetype {
	var mask bitmask256
	for _, info := range infos {
		mask.set(info.id)
	}
	signature := append([]*typeInfo(nil), infos...)
	for i := 1; i < len(signature); i++ {
		for j := i; j > 0 && signature[j].id < signature[j-1].id; j-- {
			signature[j], signature[j-1] = signature[j-1], signature[j]
		}
	}
	return newArchetype(0, mask, signature, initialCapacity)
}

func TestArchetype_ReserveGrowth(t *testing.T) {
	t.Parallel()

	a := newTestArchetype(1, infoFor[archPosition]())
	assert.Equal(t, 0, a.capacity)

	// Single-row appends grow by max(1, capacity/2+1).
	want := []int{1, 2, 4, 7, 11, 17}
	for i, capacity := range want {
		a.reserve(1)
		require.Equal(t, capacity, a.capacity, "after %d rows", i)
		writeColumn(a, a.signature[0], archPosition{X: float64(i)})
		a.push(Entity(i))
		// Fill the slack so the next reserve has to grow.
		for a.len() < a.capacity {
			writeColumn(a, a.signature[0], archPosition{X: float64(a.len())})
			a.push(Entity(a.len()))
		}
	}

	a.reserve(20)
	assert.Equal(t, 17+20, a.capacity)
}

func TestArchetype_ReserveNoopWithSlack(t *testing.T) {
	t.Parallel()

	a := newTestArchetype(8, infoFor[archPosition]())
	a.reserve(1)
	require.Equal(t, 8, a.capacity)

	for i := range 5 {
		a.reserve(1)
		writeColumn(a, a.signature[0], archPosition{X: float64(i)})
		a.push(Entity(i))
	}
	assert.Equal(t, 8, a.capacity)
	a.reserve(3)
	assert.Equal(t, 8, a.capacity)
	a.reserve(4)
	assert.Equal(t, 8+5, a.capacity)
}

func TestArchetype_GrowthPreservesRows(t *testing.T) {
	t.Parallel()

	a := newTestArchetype(1, infoFor[archPosition](), infoFor[archLabel]())
	pos := a.column(infoFor[archPosition]().id)
	label := a.column(infoFor[archLabel]().id)
	require.NotNil(t, pos)
	require.NotNil(t, label)

	const rows = 1000
	for i := range rows {
		a.reserve(1)
		writeColumn(a, pos.info, archPosition{X: float64(i), Y: float64(-i)})
		writeColumn(a, label.info, archLabel{Text: string(rune('a' + i%26))})
		a.push(Entity(i))
	}

	require.Equal(t, rows, a.len())
	assert.GreaterOrEqual(t, a.capacity, a.len())
	for i := range rows {
		p := (*archPosition)(pos.at(i))
		l := (*archLabel)(label.at(i))
		assert.Equal(t, archPosition{X: float64(i), Y: float64(-i)}, *p)
		assert.Equal(t, string(rune('a'+i%26)), l.Text)
		assert.Equal(t, Entity(i), a.entities[i])
	}
}

func TestArchetype_ColumnsFollowSignatureOrder(t *testing.T) {
	t.Parallel()

	label := infoFor[archLabel]()
	pos := infoFor[archPosition]()
	a := newTestArchetype(1, label, pos)

	for i := 1; i < len(a.columns); i++ {
		assert.Less(t, a.columns[i-1].info.id, a.columns[i].info.id)
	}
	assert.True(t, a.contains(label.id))
	assert.True(t, a.contains(pos.id))
	assert.False(t, a.contains(infoFor[archMarker]().id))
	assert.Nil(t, a.column(infoFor[archMarker]().id))
}

func TestArchetype_ZeroSizedColumn(t *testing.T) {
	t.Parallel()

	marker := infoFor[archMarker]()
	pos := infoFor[archPosition]()
	require.Zero(t, marker.size)

	a := newTestArchetype(1, marker, pos)
	for i := range 10 {
		a.reserve(1)
		writeColumn(a, marker, archMarker{})
		writeColumn(a, pos, archPosition{X: float64(i)})
		a.push(Entity(i))
	}

	mc := a.column(marker.id)
	assert.False(t, mc.data.IsValid())
	assert.Nil(t, mc.base)
	for i := range 10 {
		assert.Equal(t, float64(i), (*archPosition)(a.column(pos.id).at(i)).X)
	}
}

func TestArchetype_Drop(t *testing.T) {
	t.Parallel()

	t.Run("runs destructors once per row", func(t *testing.T) {
		t.Parallel()

		drops := 0
		info := infoFor[archDropCounter]()
		require.NotNil(t, info.drop)

		a := newTestArchetype(1, info, infoFor[archPosition]())
		for i := range 5 {
			a.reserve(1)
			writeColumn(a, info, archDropCounter{drops: &drops})
			writeColumn(a, infoFor[archPosition](), archPosition{})
			a.push(Entity(i))
		}

		assert.Equal(t, 5, a.drop())
		assert.Equal(t, 5, drops)
		assert.Zero(t, a.capacity)
		assert.Zero(t, a.len())
		// Dropping again finds nothing left.
		assert.Equal(t, 0, a.drop())
		assert.Equal(t, 5, drops)
	})

	t.Run("unallocated archetype", func(t *testing.T) {
		t.Parallel()

		a := newTestArchetype(1, infoFor[archDropCounter]())
		assert.Equal(t, 0, a.drop())
	})

	t.Run("types without destructor", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, infoFor[archPosition]().drop)
	})
}
