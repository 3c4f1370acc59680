// Profiling:
// go build ./profile/query
// go tool pprof -http=":8000" -nodefraction=0.001 ./query cpu.pprof

package main

import (
	"github.com/edwinsyarief/kura"
	"github.com/pkg/profile"
)

type comp1 struct {
	V int64
	W int64
}

type comp2 struct {
	V int64
	W int64
}

type comp3 struct {
	V int64
	W int64
}

type comp4 struct {
	V int64
	W int64
}

type comp5 struct {
	V int64
	W int64
}

type comp6 struct {
	V int64
	W int64
}

func main() {
	rounds := 50
	iters := 1000
	entities := 100000
	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	run(rounds, iters, entities)
	p.Stop()
}

func run(rounds, iters, numEntities int) {
	for range rounds {
		w := kura.NewWorld(kura.WithInitialCapacity(numEntities))
		for range numEntities {
			kura.Spawn6(w, comp1{V: 1}, comp2{V: 2}, comp3{}, comp4{}, comp5{}, comp6{})
		}

		for range iters {
			for _, row := range kura.QueryMut6[comp1, comp2, comp3, comp4, comp5, comp6](w) {
				row.C1.V += row.C2.V
				row.C1.W += row.C2.W
			}
		}
		_ = w.Close()
	}
}
