package repair

import (
	"math/rand"

	"github.com/luccasniccolas177/uctp-scheduler/internal/chromosome"
	"github.com/luccasniccolas177/uctp-scheduler/internal/constraints"
	"github.com/luccasniccolas177/uctp-scheduler/internal/schedcontext"
)

// RepairRoomTypeMismatches reassigns any gene whose room doesn't satisfy the course's required
// room type to one that does, free at the gene's quanta — priority 5.
func RepairRoomTypeMismatches(ind *chromosome.Individual, ctx *schedcontext.Context, _ *rand.Rand) int {
	_, _, roomOcc := buildOccupancy(ind.Genes)
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
		room := ctx.Rooms[gene.RoomID]
		if room != nil && constraints.RoomTypeMatches(course.RequiredRoomType, room.Type) && room.CanAccommodate(ctx.TotalStudents(gene.GroupIDs)) {
			continue
		}

		students := ctx.TotalStudents(gene.GroupIDs)
		for _, candidate := range candidateRooms(ctx, course.RequiredRoomType, gene.RoomID, students) {
			newRoom := ctx.Rooms[candidate]
			free := true
			for _, q := range gene.Quanta {
				if !newRoom.IsAvailable(q) || roomOcc.conflictedBy(candidate, q, i) {
					free = false
					break
				}
			}
			if free {
				unclaimSingle(roomOcc, gene.RoomID, gene.Quanta, i)
				gene.RoomID = candidate
				for _, q := range gene.Quanta {
					roomOcc.claim(candidate, q, i)
				}
				fixes++
				break
			}
		}
	}
	return fixes
}
