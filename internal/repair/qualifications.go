package repair

import (
	"math/rand"
	"sort"

	"github.com/luccasniccolas177/uctp-scheduler/internal/chromosome"
	"github.com/luccasniccolas177/uctp-scheduler/internal/schedcontext"
)

// RepairInstructorQualifications reassigns any gene whose instructor lacks the course's
// qualification to a qualified instructor free at the gene's quanta — priority 4.
func RepairInstructorQualifications(ind *chromosome.Individual, ctx *schedcontext.Context, _ *rand.Rand) int {
	_, instructorOcc, _ := buildOccupancy(ind.Genes)
	fixes := 0

	for _, i := range sortedGeneIndices(len(ind.Genes)) {
		gene := ind.Genes[i]
		if gene.HasUnassignedQuanta() {
			continue
		}
		course := ctx.Courses[gene.CourseKey]
		if course == nil {
			continue
		}
		instr := ctx.Instructors[gene.InstructorID]
		if instr != nil && instr.IsQualifiedFor(gene.CourseKey) {
			continue
		}

		candidates := append([]string(nil), course.QualifiedInstructors...)
		sort.Strings(candidates)
		for _, candidate := range candidates {
			newInstr := ctx.Instructors[candidate]
			if newInstr == nil {
				continue
			}
			free := true
			for _, q := range gene.Quanta {
				if !newInstr.IsAvailable(q) || instructorOcc.conflictedBy(candidate, q, i) {
					free = false
					break
				}
			}
			if free {
				unclaimSingle(instructorOcc, gene.InstructorID, gene.Quanta, i)
				gene.InstructorID = candidate
				for _, q := range gene.Quanta {
					instructorOcc.claim(candidate, q, i)
				}
				fixes++
				break
			}
		}
	}
	return fixes
}
