package operators

import (
	"math/rand"
	"sort"

	"github.com/luccasniccolas177/uctp-scheduler/internal/chromosome"
	"github.com/luccasniccolas177/uctp-scheduler/internal/constraints"
	"github.com/luccasniccolas177/uctp-scheduler/internal/entities"
	"github.com/luccasniccolas177/uctp-scheduler/internal/schedcontext"
)

// MutationRates holds the independent per-field retention biases from §4.6. Retain is the
// probability of keeping the current value outright when it is still valid; when a field is
// "up for redraw" the new value is drawn uniformly from the valid candidates, which may
// include the current one.
type MutationRates struct {
	MutIndiv float64
	MutGene  float64

	RetainInstructor float64 // default 0.7
	RetainRoom       float64 // default 0.5
	RetainQuanta     float64 // default 0.3

	MaxQuantaAttempts int // default 5
}

// DefaultMutationRates returns the spec's documented defaults for the retention biases,
// leaving MutIndiv/MutGene to the caller (they come from GAConfig, not a fixed default).
func DefaultMutationRates(mutIndiv, mutGene float64) MutationRates {
	return MutationRates{
		MutIndiv:          mutIndiv,
		MutGene:           mutGene,
		RetainInstructor:  0.7,
		RetainRoom:        0.5,
		RetainQuanta:      0.3,
		MaxQuantaAttempts: 5,
	}
}

// Mutate applies §4.6 to ind: selected with probability MutIndiv, then each gene independently
// with probability MutGene. Identity fields (CourseKey, GroupIDs) are never touched.
func Mutate(ind *chromosome.Individual, ctx *schedcontext.Context, rates MutationRates, rng *rand.Rand) {
	if rng.Float64() >= rates.MutIndiv {
		return
	}
	mutated := false
	for _, gene := range ind.Genes {
		if rng.Float64() >= rates.MutGene {
			continue
		}
		mutateGene(gene, ctx, rates, rng)
		mutated = true
	}
	if mutated {
		ind.InvalidateFitness()
	}
}

func mutateGene(gene *chromosome.SessionGene, ctx *schedcontext.Context, rates MutationRates, rng *rand.Rand) {
	course := ctx.Courses[gene.CourseKey]
	mutateInstructor(gene, course, ctx, rates, rng)
	mutateRoom(gene, course, ctx, rates, rng)
	mutateQuanta(gene, ctx, rates, rng)
}

func mutateInstructor(gene *chromosome.SessionGene, course *entities.Course, ctx *schedcontext.Context, rates MutationRates, rng *rand.Rand) {
	currentlyQualified := course != nil && ctx.Instructors[gene.InstructorID] != nil && ctx.Instructors[gene.InstructorID].IsQualifiedFor(gene.CourseKey)
	if currentlyQualified && rng.Float64() < rates.RetainInstructor {
		return
	}

	if course == nil || len(course.QualifiedInstructors) == 0 {
		gene.InstructorID = randomInstructor(ctx, rng)
		return
	}
	candidates := append([]string(nil), course.QualifiedInstructors...)
	sort.Strings(candidates)
	gene.InstructorID = candidates[rng.Intn(len(candidates))]
}

func randomInstructor(ctx *schedcontext.Context, rng *rand.Rand) string {
	ids := make([]string, 0, len(ctx.Instructors))
	for id := range ctx.Instructors {
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return chromosome.Unassigned
	}
	sort.Strings(ids)
	return ids[rng.Intn(len(ids))]
}

func mutateRoom(gene *chromosome.SessionGene, course *entities.Course, ctx *schedcontext.Context, rates MutationRates, rng *rand.Rand) {
	students := ctx.TotalStudents(gene.GroupIDs)
	currentRoom := ctx.Rooms[gene.RoomID]
	currentSuitable := course != nil && currentRoom != nil &&
		constraints.RoomTypeMatches(course.RequiredRoomType, currentRoom.Type) &&
		currentRoom.CanAccommodate(students)
	if currentSuitable && rng.Float64() < rates.RetainRoom {
		return
	}

	if course == nil {
		gene.RoomID = randomRoom(ctx, rng)
		return
	}
	candidates := matchingRoomIDs(ctx, course.RequiredRoomType, students)
	if len(candidates) == 0 {
		gene.RoomID = randomRoom(ctx, rng)
		return
	}
	gene.RoomID = candidates[rng.Intn(len(candidates))]
}

func matchingRoomIDs(ctx *schedcontext.Context, required entities.RoomType, students int) []string {
	rooms := ctx.CourseRooms(constraints.RoomTypeMatches, required)
	var ids []string
	for _, r := range rooms {
		if r.CanAccommodate(students) {
			ids = append(ids, r.ID)
		}
	}
	sort.Strings(ids)
	return ids
}

func randomRoom(ctx *schedcontext.Context, rng *rand.Rand) string {
	ids := make([]string, 0, len(ctx.Rooms))
	for id := range ctx.Rooms {
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return chromosome.Unassigned
	}
	sort.Strings(ids)
	return ids[rng.Intn(len(ids))]
}

func mutateQuanta(gene *chromosome.SessionGene, ctx *schedcontext.Context, rates MutationRates, rng *rand.Rand) {
	if rng.Float64() < rates.RetainQuanta {
		return
	}
	length := len(gene.Quanta)
	if length == 0 {
		length = 1
	}

	for attempt := 0; attempt < rates.MaxQuantaAttempts; attempt++ {
		if fresh, ok := tryConsecutiveRun(gene, ctx, length, rng); ok {
			gene.Quanta = fresh
			return
		}
	}
	gene.Quanta = randomOperationalQuanta(ctx, length, rng)
}

// tryConsecutiveRun looks for a run of `length` consecutive quanta simultaneously available to
// the gene's instructor, room and every group.
func tryConsecutiveRun(gene *chromosome.SessionGene, ctx *schedcontext.Context, length int, rng *rand.Rand) ([]int, bool) {
	total := ctx.QTS.Total()
	if total < length {
		return nil, false
	}
	start := rng.Intn(total)
	for offset := 0; offset < total; offset++ {
		base := (start + offset) % total
		if base+length > total {
			continue
		}
		ok := true
		for i := 0; i < length; i++ {
			q := base + i
			if !quantumAvailable(gene, ctx, q) {
				ok = false
				break
			}
		}
		if ok {
			run := make([]int, length)
			for i := range run {
				run[i] = base + i
			}
			return run, true
		}
	}
	return nil, false
}

func quantumAvailable(gene *chromosome.SessionGene, ctx *schedcontext.Context, q int) bool {
	for _, gid := range gene.GroupIDs {
		g, ok := ctx.Groups[gid]
		if !ok || !g.IsAvailable(q) {
			return false
		}
	}
	if gene.InstructorID != chromosome.Unassigned {
		instr := ctx.Instructors[gene.InstructorID]
		if instr == nil || !instr.IsAvailable(q) {
			return false
		}
	}
	if gene.RoomID != chromosome.Unassigned {
		room := ctx.Rooms[gene.RoomID]
		if room == nil || !room.IsAvailable(q) {
			return false
		}
	}
	return true
}

func randomOperationalQuanta(ctx *schedcontext.Context, length int, rng *rand.Rand) []int {
	total := ctx.QTS.Total()
	if total == 0 {
		return []int{chromosome.UnassignedQuantum}
	}
	if length > total {
		length = total
	}
	chosen := make(map[int]struct{}, length)
	for len(chosen) < length {
		chosen[rng.Intn(total)] = struct{}{}
	}
	out := make([]int, 0, length)
	for q := range chosen {
		out = append(out, q)
	}
	sort.Ints(out)
	return out
}
