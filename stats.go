package kura

// Stats is a snapshot of a World's storage, for diagnostics.
type Stats struct {
	Archetypes []ArchetypeStats `json:"archetypes"`
	Entities   int              `json:"entities"`
	Components int              `json:"components"` // distinct component types stored
}

// ArchetypeStats describes one archetype.
type ArchetypeStats struct {
	Components []string `json:"components"` // in signature order
	Index      int      `json:"index"`
	Entities   int      `json:"entities"`
	Capacity   int      `json:"capacity"`
}

// Stats returns a snapshot of the World's archetypes.
func (w *World) Stats() Stats {
	w.assertShared("Stats")
	s := Stats{
		Archetypes: make([]ArchetypeStats, 0, len(w.archetypes)),
		Entities:   len(w.locations),
	}
	for i := range w.byComponent {
		if w.byComponent[i].Count() > 0 {
			s.Components++
		}
	}
	for _, a := range w.archetypes {
		names := make([]string, len(a.signature))
		for i, info := range a.signature {
			names[i] = info.name()
		}
		s.Archetypes = append(s.Archetypes, ArchetypeStats{
			Components: names,
			Index:      a.index,
			Entities:   a.len(),
			Capacity:   a.capacity,
		})
	}
	return s
}
