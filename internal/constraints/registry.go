package constraints

import (
	"github.com/luccasniccolas177/uctp-scheduler/internal/chromosome"
	"github.com/luccasniccolas177/uctp-scheduler/internal/entities"
	"github.com/luccasniccolas177/uctp-scheduler/internal/schedcontext"
)

// HardFunc counts violations of one hard constraint over a decoded session set. Must not
// mutate sessions or ctx.
type HardFunc func(sessions []chromosome.Session, ctx *schedcontext.Context) int

// SoftFunc computes the penalty contribution of one soft constraint. Must not mutate sessions
// or ctx.
type SoftFunc func(sessions []chromosome.Session, ctx *schedcontext.Context) float64

// HardEntry is one named, toggleable hard constraint.
type HardEntry struct {
	Name    string
	Fn      HardFunc
	Enabled bool
}

// SoftEntry is one named, toggleable, weighted soft constraint.
type SoftEntry struct {
	Name    string
	Fn      SoftFunc
	Enabled bool
	Weight  float64
}

// HardRegistry evaluates every enabled hard entry and sums violation counts.
type HardRegistry struct {
	Entries []HardEntry
}

// Evaluate returns the total violation count across enabled entries.
func (r *HardRegistry) Evaluate(sessions []chromosome.Session, ctx *schedcontext.Context) int {
	total := 0
	for _, e := range r.Entries {
		if e.Enabled {
			total += e.Fn(sessions, ctx)
		}
	}
	return total
}

// Breakdown returns the per-constraint violation counts for enabled entries, used by metrics
// and reporting.
func (r *HardRegistry) Breakdown(sessions []chromosome.Session, ctx *schedcontext.Context) map[string]int {
	out := make(map[string]int, len(r.Entries))
	for _, e := range r.Entries {
		if e.Enabled {
			out[e.Name] = e.Fn(sessions, ctx)
		}
	}
	return out
}

// SoftRegistry evaluates every enabled soft entry and sums weighted penalties.
type SoftRegistry struct {
	Entries []SoftEntry
}

// Evaluate returns the total weighted penalty across enabled entries.
func (r *SoftRegistry) Evaluate(sessions []chromosome.Session, ctx *schedcontext.Context) float64 {
	total := 0.0
	for _, e := range r.Entries {
		if e.Enabled {
			total += e.Weight * e.Fn(sessions, ctx)
		}
	}
	return total
}

// Breakdown returns the per-constraint weighted penalties for enabled entries.
func (r *SoftRegistry) Breakdown(sessions []chromosome.Session, ctx *schedcontext.Context) map[string]float64 {
	out := make(map[string]float64, len(r.Entries))
	for _, e := range r.Entries {
		if e.Enabled {
			out[e.Name] = e.Weight * e.Fn(sessions, ctx)
		}
	}
	return out
}

// DefaultHardRegistry builds the six standard hard constraints, with toggles applied from cfg.
// All are enabled by default except availability_violation, which is off unless toggled on.
func DefaultHardRegistry(toggles map[string]bool, expected map[entities.PairKey]int) *HardRegistry {
	entries := []HardEntry{
		{Name: "no_group_overlap", Fn: NoGroupOverlap, Enabled: true},
		{Name: "no_instructor_conflict", Fn: NoInstructorConflict, Enabled: true},
		{Name: "instructor_not_qualified", Fn: InstructorNotQualified, Enabled: true},
		{Name: "room_type_mismatch", Fn: RoomTypeMismatch, Enabled: true},
		{Name: "incomplete_or_extra_sessions", Fn: IncompleteOrExtraSessionsFn(expected), Enabled: true},
		{Name: "availability_violation", Fn: AvailabilityViolation, Enabled: false},
	}
	applyToggles(entries, toggles)
	return &HardRegistry{Entries: entries}
}

// DefaultSoftRegistry builds the six standard soft constraints with unit weights. Toggles from
// cfg enable or disable entries; the weights are not configurable.
func DefaultSoftRegistry(toggles map[string]bool, shaping ShapingParams) *SoftRegistry {
	entries := []SoftEntry{
		{Name: "group_gaps_penalty", Fn: GroupGapsPenalty(shaping), Enabled: true, Weight: 1},
		{Name: "instructor_gaps_penalty", Fn: InstructorGapsPenalty(shaping), Enabled: true, Weight: 1},
		{Name: "group_midday_break_violation", Fn: GroupMiddayBreakViolation(shaping), Enabled: true, Weight: 1},
		{Name: "course_split_penalty", Fn: CourseSplitPenalty(shaping), Enabled: true, Weight: 1},
		{Name: "early_or_late_session_penalty", Fn: EarlyOrLateSessionPenalty(shaping), Enabled: true, Weight: 1},
		{Name: "session_block_clustering_penalty", Fn: SessionBlockClusteringPenalty(shaping), Enabled: true, Weight: 1},
	}
	for i := range entries {
		if enabled, ok := toggles[entries[i].Name]; ok {
			entries[i].Enabled = enabled
		}
	}
	return &SoftRegistry{Entries: entries}
}

func applyToggles(entries []HardEntry, toggles map[string]bool) {
	for i := range entries {
		if enabled, ok := toggles[entries[i].Name]; ok {
			entries[i].Enabled = enabled
		}
	}
}
