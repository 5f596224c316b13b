// Package chromosome defines the chromosomal unit (SessionGene), the Individual that carries
// a two-objective Fitness, and the Population the GA evolves.
package chromosome

import (
	"sort"

	"github.com/luccasniccolas177/uctp-scheduler/internal/entities"
)

// Unassigned marks an instructor, room or quantum that the seeder or an operator could not
// resolve. Downstream constraints treat this as a violation, never as a crash.
const Unassigned = ""

// UnassignedQuantum marks a placeholder quantum slot before the seeder's phase 2 runs.
const UnassignedQuantum = -1

// SessionGene is one scheduled session unit. CourseKey and GroupIDs form the gene's identity
// and must never be mutated by crossover or mutation — only InstructorID, RoomID and Quanta
// may change.
type SessionGene struct {
	CourseKey entities.CourseKey
	GroupIDs  []string // treated canonically as a set; see entities.GroupKey

	InstructorID string // Unassigned ("") if unresolved
	RoomID       string // Unassigned ("") if unresolved
	Quanta       []int  // non-empty, strictly increasing, in [0,T); [UnassignedQuantum] pre-phase-2
}

// Identity returns the gene's position-independent identity, used by crossover and by the
// structural invariant check.
func (g *SessionGene) Identity() entities.GeneIdentity {
	return entities.GeneIdentity{
		Course: g.CourseKey,
		Groups: entities.NewGroupKey(g.GroupIDs),
	}
}

// SortedGroupIDs returns a fresh, sorted copy of GroupIDs — used whenever a deterministic
// iteration order is required (repairs, exporters).
func (g *SessionGene) SortedGroupIDs() []string {
	out := make([]string, len(g.GroupIDs))
	copy(out, g.GroupIDs)
	sort.Strings(out)
	return out
}

// IsPlaceholder reports whether this gene still has its phase-1 skeleton values.
func (g *SessionGene) IsPlaceholder() bool {
	return g.InstructorID == Unassigned || g.RoomID == Unassigned || g.HasUnassignedQuanta()
}

// HasUnassignedQuanta reports whether Quanta is still the phase-1 placeholder.
func (g *SessionGene) HasUnassignedQuanta() bool {
	return len(g.Quanta) == 0 || (len(g.Quanta) == 1 && g.Quanta[0] == UnassignedQuantum)
}

// Clone returns a deep copy safe to mutate independently of g.
func (g *SessionGene) Clone() *SessionGene {
	clone := &SessionGene{
		CourseKey:    g.CourseKey,
		InstructorID: g.InstructorID,
		RoomID:       g.RoomID,
	}
	clone.GroupIDs = append([]string(nil), g.GroupIDs...)
	clone.Quanta = append([]int(nil), g.Quanta...)
	return clone
}

// ValidateQuanta reports whether Quanta is a non-empty, strictly increasing list within
// [0,total) — universal invariant #2.
func (g *SessionGene) ValidateQuanta(total int) bool {
	if len(g.Quanta) == 0 {
		return false
	}
	prev := -1
	for _, q := range g.Quanta {
		if q < 0 || q >= total {
			return false
		}
		if q <= prev {
			return false
		}
		prev = q
	}
	return true
}
