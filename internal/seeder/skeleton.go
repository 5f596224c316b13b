// Package seeder builds a complete, structurally-valid Individual from the pair generator's
// work items in two phases: skeleton (placeholder genes) then greedy resource assignment.
// Per §4.3, the seeder never fails — missing resources become violations for evolution to fix,
// never a crash.
package seeder

import (
	"github.com/luccasniccolas177/uctp-scheduler/internal/chromosome"
	"github.com/luccasniccolas177/uctp-scheduler/internal/pairgen"
)

// BuildSkeleton emits one placeholder gene per required quantum of each pair: a pair needing n
// quanta becomes n genes sharing the pair's identity, each with unresolved instructor, room and
// quantum. Genes are emitted in pair order, stable across runs for the same pairgen.Generate
// output.
func BuildSkeleton(pairs []pairgen.Pair) []*chromosome.SessionGene {
	var genes []*chromosome.SessionGene
	for _, p := range pairs {
		for i := 0; i < p.RequiredQuanta; i++ {
			genes = append(genes, &chromosome.SessionGene{
				CourseKey:    p.CourseKey,
				GroupIDs:     append([]string(nil), p.GroupIDs...),
				InstructorID: chromosome.Unassigned,
				RoomID:       chromosome.Unassigned,
				Quanta:       []int{chromosome.UnassignedQuantum},
			})
		}
	}
	return genes
}
