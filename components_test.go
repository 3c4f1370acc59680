package kura_test

import "sync/atomic"

// --- Test Components ---
type Name struct{ Value string }
type Speed struct{ Value float64 }
type Tag struct{}
type Position struct{ X, Y float32 }
type Velocity struct{ DX, DY float32 }
type Health struct{ Current, Max int }
type Unused struct{ _ int }

// Resource counts its own destruction through a per-test counter.
type Resource struct {
	ID    int
	drops *int
}

func (r Resource) Drop() { *r.drops++ }

// markerDrops is only touched by TestClose_ZeroSizedDropper.
var markerDrops atomic.Int64

type DroppedMarker struct{}

func (DroppedMarker) Drop() { markerDrops.Add(1) }

// Attr1 ... Attr14 fill the widest component sets.
type Attr1 struct{ V int }
type Attr2 struct{ V int }
type Attr3 struct{ V int }
type Attr4 struct{ V int }
type Attr5 struct{ V int }
type Attr6 struct{ V int }
type Attr7 struct{ V int }
type Attr8 struct{ V int }
type Attr9 struct{ V int }
type Attr10 struct{ V int }
type Attr11 struct{ V int }
type Attr12 struct{ V int }
type Attr13 struct{ V int }
type Attr14 struct{ V int }
