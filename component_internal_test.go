package kura

import (
	"reflect"
	"sync"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type regHealth struct{ HP int32 }

type regVelocity struct{ DX, DY float32 }

type regPointerDropper struct{ closed *bool }

func (d *regPointerDropper) Drop() { *d.closed = true }

func TestRegistry_StableIDs(t *testing.T) {
	t.Parallel()

	first := RegisterComponent[regHealth]()
	second := RegisterComponent[regHealth]()
	assert.Equal(t, first, second)

	id, ok := TryGetID[regHealth]()
	require.True(t, ok)
	assert.Equal(t, first, id)
	assert.Equal(t, reflect.TypeFor[regHealth]().String(), ComponentName(first))

	other := RegisterComponent[regVelocity]()
	assert.NotEqual(t, first, other)
}

func TestRegistry_UnknownType(t *testing.T) {
	t.Parallel()

	type neverRegistered struct{ _ [3]byte }
	_, ok := TryGetID[neverRegistered]()
	assert.False(t, ok)
}

func TestRegistry_Layout(t *testing.T) {
	t.Parallel()

	info := infoFor[regVelocity]()
	assert.Equal(t, unsafe.Sizeof(regVelocity{}), info.size)
	assert.Equal(t, unsafe.Alignof(regVelocity{}), info.align)
	assert.Equal(t, reflect.TypeFor[regVelocity](), info.typ)
	assert.Same(t, info, typeInfoOf(reflect.TypeFor[regVelocity]()))
}

func TestRegistry_ConcurrentRegistration(t *testing.T) {
	t.Parallel()

	type concurrentComponent struct{ N int }

	var wg sync.WaitGroup
	ids := make([]ComponentID, 32)
	for i := range ids {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids[i] = RegisterComponent[concurrentComponent]()
		}()
	}
	wg.Wait()

	for _, id := range ids {
		assert.Equal(t, ids[0], id)
	}
}

func TestRegistry_PointerReceiverDropper(t *testing.T) {
	t.Parallel()

	info := infoFor[regPointerDropper]()
	require.NotNil(t, info.drop)

	closed := false
	value := regPointerDropper{closed: &closed}
	info.drop(unsafe.Pointer(&value))
	assert.True(t, closed)
}
