package constraints

import (
	"github.com/luccasniccolas177/uctp-scheduler/internal/chromosome"
	"github.com/luccasniccolas177/uctp-scheduler/internal/entities"
	"github.com/luccasniccolas177/uctp-scheduler/internal/schedcontext"
)

// NoGroupOverlap counts, for every (group, quantum) pair, the sessions beyond the first —
// the violation count when more than one session claims the same group at the same time.
func NoGroupOverlap(sessions []chromosome.Session, _ *schedcontext.Context) int {
	occupied := make(map[groupQuantum]int)
	for _, s := range sessions {
		if s.Quantum < 0 {
			continue
		}
		for _, gid := range s.GroupIDs {
			occupied[groupQuantum{gid, s.Quantum}]++
		}
	}
	return overCount(occupied)
}

type groupQuantum struct {
	group   string
	quantum int
}

// NoInstructorConflict counts, for every (instructor, quantum) pair, sessions beyond the first.
func NoInstructorConflict(sessions []chromosome.Session, _ *schedcontext.Context) int {
	occupied := make(map[instructorQuantum]int)
	for _, s := range sessions {
		if s.Quantum < 0 || s.InstructorID == chromosome.Unassigned {
			continue
		}
		occupied[instructorQuantum{s.InstructorID, s.Quantum}]++
	}
	return overCount(occupied)
}

type instructorQuantum struct {
	instructor string
	quantum    int
}

func overCount[K comparable](m map[K]int) int {
	total := 0
	for _, count := range m {
		if count > 1 {
			total += count - 1
		}
	}
	return total
}

// InstructorNotQualified counts genes whose instructor lacks the course's qualification.
// An Unassigned instructor also counts as a violation — it is never qualified.
func InstructorNotQualified(sessions []chromosome.Session, ctx *schedcontext.Context) int {
	seen := make(map[int]bool) // by GeneIndex, count once per gene not per quantum
	violations := 0
	for _, s := range sessions {
		if seen[s.GeneIndex] {
			continue
		}
		seen[s.GeneIndex] = true
		if s.InstructorID == chromosome.Unassigned {
			violations++
			continue
		}
		instr, ok := ctx.Instructors[s.InstructorID]
		if !ok || !instr.IsQualifiedFor(s.CourseKey) {
			violations++
		}
	}
	return violations
}

// RoomTypeMismatch counts genes whose room does not satisfy the course's required room type.
func RoomTypeMismatch(sessions []chromosome.Session, ctx *schedcontext.Context) int {
	seen := make(map[int]bool)
	violations := 0
	for _, s := range sessions {
		if seen[s.GeneIndex] {
			continue
		}
		seen[s.GeneIndex] = true
		course, ok := ctx.Courses[s.CourseKey]
		if !ok {
			continue
		}
		if s.RoomID == chromosome.Unassigned {
			violations++
			continue
		}
		room, ok := ctx.Rooms[s.RoomID]
		if !ok || !RoomTypeMatches(course.RequiredRoomType, room.Type) {
			violations++
		}
	}
	return violations
}

// AvailabilityViolation counts sessions scheduled against a group's, instructor's, or room's
// declared availability. Disabled by default: entity AvailableQuanta sets are already clamped
// to QTS operational quanta at load time, and the seeder/mutation operator avoid unavailable
// quanta on a best-effort basis, so this exists for configurations that want the check
// enforced strictly rather than left to chance.
func AvailabilityViolation(sessions []chromosome.Session, ctx *schedcontext.Context) int {
	violations := 0
	for _, s := range sessions {
		if s.Quantum < 0 {
			continue
		}
		for _, gid := range s.GroupIDs {
			if g, ok := ctx.Groups[gid]; ok && !g.IsAvailable(s.Quantum) {
				violations++
			}
		}
		if instr, ok := ctx.Instructors[s.InstructorID]; ok && !instr.IsAvailable(s.Quantum) {
			violations++
		}
		if room, ok := ctx.Rooms[s.RoomID]; ok && !room.IsAvailable(s.Quantum) {
			violations++
		}
	}
	return violations
}

// IncompleteOrExtraSessionsFn returns a HardFunc that compares each (course_key, group_id)'s
// scheduled quanta total against the pair generator's expected total, tallying the absolute
// delta. expected is keyed by entities.PairKey, never by the bare course code, so theory and
// practical variants of the same course are tracked independently.
func IncompleteOrExtraSessionsFn(expected map[entities.PairKey]int) HardFunc {
	return func(sessions []chromosome.Session, _ *schedcontext.Context) int {
		actual := make(map[entities.PairKey]int, len(expected))
		for _, s := range sessions {
			if s.Quantum < 0 {
				continue
			}
			for _, gid := range s.GroupIDs {
				actual[entities.PairKey{Course: s.CourseKey, Group: gid}]++
			}
		}

		total := 0
		seenKeys := make(map[entities.PairKey]bool, len(expected)+len(actual))
		for k := range expected {
			seenKeys[k] = true
		}
		for k := range actual {
			seenKeys[k] = true
		}
		for k := range seenKeys {
			delta := actual[k] - expected[k]
			if delta < 0 {
				delta = -delta
			}
			total += delta
		}
		return total
	}
}
