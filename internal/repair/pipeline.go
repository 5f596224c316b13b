// Package repair implements the priority-ordered repair pipeline of §4.7: seven pure,
// in-place transformations of one individual, run in ascending priority order for up to
// max_iterations passes or until a pass fixes nothing.
package repair

import (
	"math/rand"

	"github.com/luccasniccolas177/uctp-scheduler/internal/chromosome"
	"github.com/luccasniccolas177/uctp-scheduler/internal/entities"
	"github.com/luccasniccolas177/uctp-scheduler/internal/pairgen"
	"github.com/luccasniccolas177/uctp-scheduler/internal/schedcontext"
)

// Repair is one named, priority-ordered, toggleable pipeline stage. Fn returns the number of
// fixes it made; a pure function of (individual, context, rng) that mutates the individual's
// genes in place.
type Repair struct {
	Priority int
	Name     string
	Enabled  bool
	Fn       func(ind *chromosome.Individual, ctx *schedcontext.Context, rng *rand.Rand) int
}

// Pipeline runs every enabled Repair in priority order against one individual, per generation.
type Pipeline struct {
	Repairs       []Repair
	MaxIterations int
}

// DefaultPipeline builds the seven standard repairs in priority order. expected maps each
// (course_key, group) pair to its required quanta, consulted only by the length-changing completeness repair.
func DefaultPipeline(toggles map[string]bool, maxIterations int, expected map[entities.PairKey]int, pairsByKey map[entities.PairKey]pairgen.Pair) *Pipeline {
	repairs := []Repair{
		{Priority: 1, Name: "group_overlaps", Enabled: true, Fn: RepairGroupOverlaps},
		{Priority: 2, Name: "room_conflicts", Enabled: true, Fn: RepairRoomConflicts},
		{Priority: 3, Name: "instructor_conflicts", Enabled: true, Fn: RepairInstructorConflicts},
		{Priority: 4, Name: "instructor_qualifications", Enabled: true, Fn: RepairInstructorQualifications},
		{Priority: 5, Name: "room_type_mismatches", Enabled: true, Fn: RepairRoomTypeMismatches},
		{Priority: 6, Name: "session_clustering", Enabled: true, Fn: RepairSessionClustering},
		{Priority: 7, Name: "incomplete_or_extra_sessions", Enabled: true, Fn: RepairIncompleteOrExtraSessions(expected, pairsByKey)},
	}
	for i := range repairs {
		if enabled, ok := toggles[repairs[i].Name]; ok {
			repairs[i].Enabled = enabled
		}
	}
	return &Pipeline{Repairs: repairs, MaxIterations: maxIterations}
}

// Run executes the pipeline against ind for up to MaxIterations passes, stopping early once a
// full pass makes zero fixes. Returns the total number of fixes applied across all passes.
func (p *Pipeline) Run(ind *chromosome.Individual, ctx *schedcontext.Context, rng *rand.Rand) int {
	totalFixes := 0
	for iter := 0; iter < p.MaxIterations; iter++ {
		passFixes := 0
		for _, r := range p.Repairs {
			if !r.Enabled {
				continue
			}
			passFixes += r.Fn(ind, ctx, rng)
		}
		totalFixes += passFixes
		if passFixes == 0 {
			break
		}
		ind.InvalidateFitness()
	}
	return totalFixes
}
