package repair

import (
	"math/rand"

	"github.com/luccasniccolas177/uctp-scheduler/internal/chromosome"
	"github.com/luccasniccolas177/uctp-scheduler/internal/schedcontext"
)

// conflictsWithEarlier reports whether (id, q) is already claimed by some gene with a lower
// index than geneIdx — the "earlier gene wins" rule §4.7 priorities 1 and 3 share.
func conflictsWithEarlier(o occupancy, id string, q, geneIdx int) bool {
	for _, claimant := range o.claimants(id, q) {
		if claimant < geneIdx {
			return true
		}
	}
	return false
}

// RepairGroupOverlaps detects (group, quantum) conflicts and shifts every later-indexed gene to
// a free slot satisfying its own instructor/room/group availability — priority 1.
func RepairGroupOverlaps(ind *chromosome.Individual, ctx *schedcontext.Context, _ *rand.Rand) int {
	groupOcc, instructorOcc, roomOcc := buildOccupancy(ind.Genes)
	fixes := 0

	for _, i := range sortedGeneIndices(len(ind.Genes)) {
		gene := ind.Genes[i]
		if gene.HasUnassignedQuanta() {
			continue
		}
		conflicted := false
		for _, gid := range gene.GroupIDs {
			for _, q := range gene.Quanta {
				if conflictsWithEarlier(groupOcc, gid, q, i) {
					conflicted = true
					break
				}
			}
			if conflicted {
				break
			}
		}
		if !conflicted {
			continue
		}
		if block, ok := findFreeBlock(gene, ctx, len(gene.Quanta), i, groupOcc, instructorOcc, roomOcc); ok {
			replaceClaim(gene, i, block, groupOcc, instructorOcc, roomOcc)
			fixes++
		}
	}
	return fixes
}

// RepairInstructorConflicts is RepairGroupOverlaps' symmetric counterpart for instructors —
// priority 3.
func RepairInstructorConflicts(ind *chromosome.Individual, ctx *schedcontext.Context, _ *rand.Rand) int {
	groupOcc, instructorOcc, roomOcc := buildOccupancy(ind.Genes)
	fixes := 0

	for _, i := range sortedGeneIndices(len(ind.Genes)) {
		gene := ind.Genes[i]
		if gene.HasUnassignedQuanta() || gene.InstructorID == chromosome.Unassigned {
			continue
		}
		conflicted := false
		for _, q := range gene.Quanta {
			if conflictsWithEarlier(instructorOcc, gene.InstructorID, q, i) {
				conflicted = true
				break
			}
		}
		if !conflicted {
			continue
		}
		if block, ok := findFreeBlock(gene, ctx, len(gene.Quanta), i, groupOcc, instructorOcc, roomOcc); ok {
			replaceClaim(gene, i, block, groupOcc, instructorOcc, roomOcc)
			fixes++
		}
	}
	return fixes
}
