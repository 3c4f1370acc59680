package kura

import "github.com/rs/zerolog"

// Option configures a World created by NewWorld.
type Option func(*World)

// WithLogger sets the logger the World reports archetype creation and
// teardown to. The default logger discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(w *World) {
		w.logger = logger
	}
}

// WithInitialCapacity sets how many rows an archetype allocates the first time
// an entity is spawned into it. Archetypes grow by at least 50% afterwards.
// Values below 1 are ignored.
func WithInitialCapacity(rows int) Option {
	return func(w *World) {
		if rows > 0 {
			w.initialCapacity = rows
		}
	}
}
