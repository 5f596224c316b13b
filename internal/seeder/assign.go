package seeder

import (
	"math/rand"
	"sort"

	"github.com/luccasniccolas177/uctp-scheduler/internal/chromosome"
	"github.com/luccasniccolas177/uctp-scheduler/internal/constraints"
	"github.com/luccasniccolas177/uctp-scheduler/internal/entities"
	"github.com/luccasniccolas177/uctp-scheduler/internal/schedcontext"
)

// conflictMap tracks, per resource id, the quanta already claimed during this seeding pass —
// the seeder's own running view, independent of (and narrower than) the final fitness
// evaluation's hard constraints.
type conflictMap map[string]map[int]bool

func (m conflictMap) occupied(id string, q int) bool {
	return m[id] != nil && m[id][q]
}

func (m conflictMap) occupy(id string, q int) {
	if m[id] == nil {
		m[id] = make(map[int]bool)
	}
	m[id][q] = true
}

// AssignResources resolves every placeholder gene's instructor, room and quantum in place,
// greedily and deterministically, per §4.3 phase 2. rng drives only the last-resort random
// fallback so the rest of the pass is reproducible for a fixed gene order.
func AssignResources(genes []*chromosome.SessionGene, ctx *schedcontext.Context, rng *rand.Rand) {
	groupLoad := make(conflictMap)
	instructorLoad := make(conflictMap)
	roomLoad := make(conflictMap)
	instructorQuantaAssigned := make(map[string]int)

	for _, gene := range genes {
		course, hasCourse := ctx.Courses[gene.CourseKey]

		instructorID := pickInstructor(course, hasCourse, ctx, instructorQuantaAssigned)
		gene.InstructorID = instructorID
		if instructorID != chromosome.Unassigned {
			instructorQuantaAssigned[instructorID]++
		}

		roomID := pickRoom(course, hasCourse, ctx, gene.GroupIDs)
		gene.RoomID = roomID

		quantum := pickQuantum(ctx, instructorID, roomID, gene.GroupIDs, groupLoad, instructorLoad, roomLoad, rng)
		gene.Quanta = []int{quantum}

		for _, gid := range gene.GroupIDs {
			groupLoad.occupy(gid, quantum)
		}
		if instructorID != chromosome.Unassigned {
			instructorLoad.occupy(instructorID, quantum)
		}
		if roomID != chromosome.Unassigned {
			roomLoad.occupy(roomID, quantum)
		}
	}
}

func pickInstructor(course *entities.Course, hasCourse bool, ctx *schedcontext.Context, load map[string]int) string {
	if !hasCourse || len(course.QualifiedInstructors) == 0 {
		return chromosome.Unassigned
	}
	candidates := append([]string(nil), course.QualifiedInstructors...)
	sort.Strings(candidates)

	best := chromosome.Unassigned
	bestLoad := -1
	for _, id := range candidates {
		if _, ok := ctx.Instructors[id]; !ok {
			continue
		}
		l := load[id]
		if best == chromosome.Unassigned || l < bestLoad {
			best, bestLoad = id, l
		}
	}
	return best
}

func pickRoom(course *entities.Course, hasCourse bool, ctx *schedcontext.Context, groupIDs []string) string {
	if !hasCourse {
		return chromosome.Unassigned
	}
	students := ctx.TotalStudents(groupIDs)

	exact := matchingRooms(ctx, course.RequiredRoomType, students, true)
	if len(exact) > 0 {
		return exact[0]
	}
	anyCapacity := matchingRooms(ctx, course.RequiredRoomType, students, false)
	if len(anyCapacity) > 0 {
		return anyCapacity[0]
	}
	return chromosome.Unassigned
}

// matchingRooms returns room ids of the required type, sorted, optionally filtered by capacity.
func matchingRooms(ctx *schedcontext.Context, required entities.RoomType, students int, enforceCapacity bool) []string {
	rooms := ctx.CourseRooms(constraints.RoomTypeMatches, required)
	var ids []string
	for _, r := range rooms {
		if enforceCapacity && !r.CanAccommodate(students) {
			continue
		}
		ids = append(ids, r.ID)
	}
	sort.Strings(ids)
	return ids
}

// pickQuantum finds the first operational quantum simultaneously free for instructor, room and
// every group, falling back to a uniformly random operational quantum when none exists.
func pickQuantum(ctx *schedcontext.Context, instructorID, roomID string, groupIDs []string, groupLoad, instructorLoad, roomLoad conflictMap, rng *rand.Rand) int {
	total := ctx.QTS.Total()

	for q := 0; q < total; q++ {
		if !allGroupsAvailable(ctx, groupIDs, q) || groupsConflict(groupIDs, q, groupLoad) {
			continue
		}
		if instructorID != chromosome.Unassigned {
			instr := ctx.Instructors[instructorID]
			if instr == nil || !instr.IsAvailable(q) || instructorLoad.occupied(instructorID, q) {
				continue
			}
		}
		if roomID != chromosome.Unassigned {
			room := ctx.Rooms[roomID]
			if room == nil || !room.IsAvailable(q) || roomLoad.occupied(roomID, q) {
				continue
			}
		}
		return q
	}

	if total == 0 {
		return chromosome.UnassignedQuantum
	}
	return rng.Intn(total)
}

func allGroupsAvailable(ctx *schedcontext.Context, groupIDs []string, q int) bool {
	for _, gid := range groupIDs {
		g, ok := ctx.Groups[gid]
		if !ok || !g.IsAvailable(q) {
			return false
		}
	}
	return true
}

func groupsConflict(groupIDs []string, q int, groupLoad conflictMap) bool {
	for _, gid := range groupIDs {
		if groupLoad.occupied(gid, q) {
			return true
		}
	}
	return false
}
