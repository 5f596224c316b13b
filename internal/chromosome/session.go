package chromosome

import "github.com/luccasniccolas177/uctp-scheduler/internal/entities"

// Session is one resolved (gene, quantum) occupation — the unit every constraint and exporter
// operates over. A gene spanning k quanta decodes into k sessions sharing everything but the
// quantum.
type Session struct {
	GeneIndex int // index into the owning Individual's Genes, for repairs to locate the source gene
	CourseKey entities.CourseKey
	GroupIDs  []string

	InstructorID string
	RoomID       string
	Quantum      int
}

// Decode flattens an individual's genes into one Session per occupied quantum. Placeholder
// genes (no quanta yet) decode to a single session at UnassignedQuantum, so the per-gene checks
// (instructor qualification, room type) still see them; completeness accounting skips them.
func Decode(ind *Individual) []Session {
	var out []Session
	for gi, g := range ind.Genes {
		if len(g.Quanta) == 0 {
			out = append(out, Session{
				GeneIndex:    gi,
				CourseKey:    g.CourseKey,
				GroupIDs:     g.GroupIDs,
				InstructorID: g.InstructorID,
				RoomID:       g.RoomID,
				Quantum:      UnassignedQuantum,
			})
			continue
		}
		for _, q := range g.Quanta {
			out = append(out, Session{
				GeneIndex:    gi,
				CourseKey:    g.CourseKey,
				GroupIDs:     g.GroupIDs,
				InstructorID: g.InstructorID,
				RoomID:       g.RoomID,
				Quantum:      q,
			})
		}
	}
	return out
}
