package main

import (
	"io"
	"time"

	"github.com/goccy/go-json"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"

	"github.com/edwinsyarief/kura"
)

type position struct{ X, Y float64 }

type velocity struct{ DX, DY float64 }

type health struct{ Current, Max int32 }

type frozen struct{}

// Report is the JSON document written after a run.
type Report struct {
	Config  Config     `json:"config"`
	Timings Timings    `json:"timings"`
	Stats   kura.Stats `json:"stats"`
	Dropped int        `json:"dropped"`
}

// Timings are wall-clock durations in nanoseconds.
type Timings struct {
	Spawn     time.Duration `json:"spawn_ns"`
	QueryMut  time.Duration `json:"query_mut_ns"`
	Query     time.Duration `json:"query_ns"`
	PerEntity float64       `json:"query_mut_ns_per_entity"`
}

// run spawns cfg.Entities entities over four archetypes, integrates their
// positions cfg.Rounds times and writes the report to out.
func run(cfg Config, logger zerolog.Logger, out io.Writer) error {
	w := kura.NewWorld(kura.WithLogger(logger), kura.WithInitialCapacity(cfg.Entities/4+1))

	start := time.Now()
	for i := range cfg.Entities {
		f := float64(i)
		switch i % 4 {
		case 0:
			kura.Spawn2(w, position{X: f}, velocity{DX: 1, DY: 1})
		case 1:
			kura.Spawn3(w, position{Y: f}, velocity{DX: -1}, health{Current: 100, Max: 100})
		case 2:
			kura.Spawn3(w, frozen{}, position{X: f, Y: f}, velocity{})
		default:
			kura.Spawn(w, health{Current: 1, Max: 1})
		}
	}
	var timings Timings
	timings.Spawn = time.Since(start)

	moved := 0
	start = time.Now()
	for range cfg.Rounds {
		for _, row := range kura.QueryMut2[position, velocity](w) {
			pos, vel := row.Get()
			pos.X += vel.DX
			pos.Y += vel.DY
			moved++
		}
	}
	timings.QueryMut = time.Since(start)
	if moved > 0 {
		timings.PerEntity = float64(timings.QueryMut.Nanoseconds()) / float64(moved)
	}

	var total int64
	start = time.Now()
	for range cfg.Rounds {
		for _, h := range kura.Query[health](w) {
			total += int64(h.Current)
		}
	}
	timings.Query = time.Since(start)
	logger.Debug().Int64("health_total", total).Int("moved", moved).Msg("workload finished")

	report := Report{Config: cfg, Timings: timings, Stats: w.Stats()}
	report.Dropped = report.Stats.Entities
	if err := w.Close(); err != nil {
		return eris.Wrap(err, "close world")
	}

	buf, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return eris.Wrap(err, "encode report")
	}
	buf = append(buf, '\n')
	if _, err := out.Write(buf); err != nil {
		return eris.Wrap(err, "write report")
	}
	return nil
}
