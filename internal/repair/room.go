package repair

import (
	"math/rand"
	"sort"

	"github.com/luccasniccolas177/uctp-scheduler/internal/chromosome"
	"github.com/luccasniccolas177/uctp-scheduler/internal/constraints"
	"github.com/luccasniccolas177/uctp-scheduler/internal/entities"
	"github.com/luccasniccolas177/uctp-scheduler/internal/schedcontext"
)

// RepairRoomConflicts resolves (room, quantum) conflicts — priority 2. It first tries shifting
// the gene's time while preserving its room, then tries swapping to another suitable room at
// the same time, then tries both together.
func RepairRoomConflicts(ind *chromosome.Individual, ctx *schedcontext.Context, _ *rand.Rand) int {
	groupOcc, instructorOcc, roomOcc := buildOccupancy(ind.Genes)
	fixes := 0

	for _, i := range sortedGeneIndices(len(ind.Genes)) {
		gene := ind.Genes[i]
		if gene.HasUnassignedQuanta() || gene.RoomID == chromosome.Unassigned {
			continue
		}
		conflicted := false
		for _, q := range gene.Quanta {
			if conflictsWithEarlier(roomOcc, gene.RoomID, q, i) {
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
			continue
		}

		course := ctx.Courses[gene.CourseKey]
		if course == nil {
			continue
		}
		students := ctx.TotalStudents(gene.GroupIDs)
		if newRoom, ok := trySwapRoom(gene, ctx, course.RequiredRoomType, students, i, gene.Quanta, groupOcc, instructorOcc, roomOcc); ok {
			applyRoomSwap(gene, i, newRoom, gene.Quanta, groupOcc, instructorOcc, roomOcc)
			fixes++
			continue
		}

		if newRoom, newBlock, ok := trySwapRoomAndTime(gene, ctx, course.RequiredRoomType, students, i, groupOcc, instructorOcc, roomOcc); ok {
			applyRoomSwap(gene, i, newRoom, gene.Quanta, groupOcc, instructorOcc, roomOcc)
			replaceClaim(gene, i, newBlock, groupOcc, instructorOcc, roomOcc)
			fixes++
		}
	}
	return fixes
}

func candidateRooms(ctx *schedcontext.Context, required, exclude string, students int) []string {
	rooms := ctx.CourseRooms(constraints.RoomTypeMatches, required)
	var ids []string
	for _, r := range rooms {
		if r.ID == exclude || !r.CanAccommodate(students) {
			continue
		}
		ids = append(ids, r.ID)
	}
	sort.Strings(ids)
	return ids
}

func trySwapRoom(gene *chromosome.SessionGene, ctx *schedcontext.Context, required entities.RoomType, students int, geneIdx int, quanta []int, groupOcc, instructorOcc, roomOcc occupancy) (string, bool) {
	for _, candidate := range candidateRooms(ctx, required, gene.RoomID, students) {
		room := ctx.Rooms[candidate]
		free := true
		for _, q := range quanta {
			if !room.IsAvailable(q) || roomOcc.conflictedBy(candidate, q, geneIdx) {
				free = false
				break
			}
		}
		if free {
			return candidate, true
		}
	}
	return "", false
}

func trySwapRoomAndTime(gene *chromosome.SessionGene, ctx *schedcontext.Context, required entities.RoomType, students int, geneIdx int, groupOcc, instructorOcc, roomOcc occupancy) (string, []int, bool) {
	for _, candidate := range candidateRooms(ctx, required, gene.RoomID, students) {
		trial := gene.Clone()
		trial.RoomID = candidate
		if block, ok := findFreeBlock(trial, ctx, len(gene.Quanta), geneIdx, groupOcc, instructorOcc, roomOcc); ok {
			return candidate, block, true
		}
	}
	return "", nil, false
}

func applyRoomSwap(gene *chromosome.SessionGene, geneIdx int, newRoom string, quanta []int, groupOcc, instructorOcc, roomOcc occupancy) {
	unclaimSingle(roomOcc, gene.RoomID, quanta, geneIdx)
	gene.RoomID = newRoom
	for _, q := range quanta {
		roomOcc.claim(newRoom, q, geneIdx)
	}
}
