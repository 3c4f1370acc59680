// Profiling:
// go build ./profile/spawn
// go tool pprof -http=":8000" -nodefraction=0.001 ./spawn mem.pprof

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

type marker struct{}

func main() {
	rounds := 50
	worlds := 200
	entities := 1000
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	run(rounds, worlds, entities)
	p.Stop()
}

func run(rounds, worlds, numEntities int) {
	for range rounds {
		for range worlds {
			w := kura.NewWorld()
			for i := range numEntities {
				switch i % 3 {
				case 0:
					kura.Spawn2(w, comp1{V: int64(i)}, comp2{W: 1})
				case 1:
					kura.Spawn3(w, comp2{W: 1}, comp1{V: int64(i)}, marker{})
				default:
					w.Spawn(comp1{V: int64(i)})
				}
			}
			for _, row := range kura.QueryMut2[comp1, comp2](w) {
				c1, c2 := row.Get()
				c1.V += c2.V
				c1.W += c2.W
			}
			_ = w.Close()
		}
	}
}
