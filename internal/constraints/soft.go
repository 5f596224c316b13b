package constraints

import (
	"sort"

	"github.com/luccasniccolas177/uctp-scheduler/internal/chromosome"
	"github.com/luccasniccolas177/uctp-scheduler/internal/entities"
	"github.com/luccasniccolas177/uctp-scheduler/internal/qts"
	"github.com/luccasniccolas177/uctp-scheduler/internal/schedcontext"
)

type dayKey[K comparable] struct {
	key K
	day qts.Day
}

// quantaByDay groups a session's quanta by (key, day) for a given key extractor, skipping
// unassigned quanta.
func quantaByDay[K comparable](sessions []chromosome.Session, ctx *schedcontext.Context, keys func(chromosome.Session) []K) map[dayKey[K]][]int {
	out := make(map[dayKey[K]][]int)
	for _, s := range sessions {
		if s.Quantum < 0 {
			continue
		}
		day, err := ctx.QTS.QuantumToDay(s.Quantum)
		if err != nil {
			continue
		}
		for _, k := range keys(s) {
			dk := dayKey[K]{key: k, day: day}
			out[dk] = append(out[dk], s.Quantum)
		}
	}
	for dk := range out {
		sort.Ints(out[dk])
	}
	return out
}

func groupKeys(s chromosome.Session) []string  { return s.GroupIDs }
func instructorKeys(s chromosome.Session) []string {
	if s.InstructorID == chromosome.Unassigned {
		return nil
	}
	return []string{s.InstructorID}
}

// GroupGapsPenalty counts, per (group, day), idle quanta strictly between the first and last
// scheduled quantum of that day, excluding quanta inside the configured midday break.
func GroupGapsPenalty(shaping ShapingParams) SoftFunc {
	return func(sessions []chromosome.Session, ctx *schedcontext.Context) float64 {
		return gapsPenalty(quantaByDay(sessions, ctx, groupKeys), ctx, shaping)
	}
}

// InstructorGapsPenalty is GroupGapsPenalty's symmetric counterpart for instructors.
func InstructorGapsPenalty(shaping ShapingParams) SoftFunc {
	return func(sessions []chromosome.Session, ctx *schedcontext.Context) float64 {
		return gapsPenalty(quantaByDay(sessions, ctx, instructorKeys), ctx, shaping)
	}
}

func gapsPenalty[K comparable](byDay map[dayKey[K]][]int, ctx *schedcontext.Context, shaping ShapingParams) float64 {
	total := 0.0
	for _, quanta := range byDay {
		if len(quanta) < 2 {
			continue
		}
		first, last := quanta[0], quanta[len(quanta)-1]
		occupied := make(map[int]bool, len(quanta))
		for _, q := range quanta {
			occupied[q] = true
		}
		for q := first + 1; q < last; q++ {
			if occupied[q] {
				continue
			}
			if isInMiddayBreak(q, ctx, shaping) {
				continue
			}
			total++
		}
	}
	return total
}

func isInMiddayBreak(q int, ctx *schedcontext.Context, shaping ShapingParams) bool {
	if shaping.MiddayBreakEndMinutes <= shaping.MiddayBreakStartMinutes {
		return false
	}
	_, hhmm, err := ctx.QTS.QuantumToWall(q)
	if err != nil {
		return false
	}
	minutes := parseMinutesOrDefault(hhmm, -1)
	return minutes >= shaping.MiddayBreakStartMinutes && minutes < shaping.MiddayBreakEndMinutes
}

// GroupMiddayBreakViolation penalizes, per (group, day), activity that spans the configured
// midday break without a free quantum anywhere inside the break window that day.
func GroupMiddayBreakViolation(shaping ShapingParams) SoftFunc {
	return func(sessions []chromosome.Session, ctx *schedcontext.Context) float64 {
		if shaping.MiddayBreakEndMinutes <= shaping.MiddayBreakStartMinutes {
			return 0
		}
		byDay := quantaByDay(sessions, ctx, groupKeys)
		total := 0.0
		for _, quanta := range byDay {
			if len(quanta) == 0 {
				continue
			}
			first, last := quanta[0], quanta[len(quanta)-1]
			breakStart, breakEnd := -1, -1
			for q := first; q <= last; q++ {
				if isInMiddayBreak(q, ctx, shaping) {
					if breakStart < 0 {
						breakStart = q
					}
					breakEnd = q
				}
			}
			if breakStart < 0 {
				continue // day doesn't reach the break window at all
			}
			occupied := make(map[int]bool, len(quanta))
			for _, q := range quanta {
				occupied[q] = true
			}
			spansBreak := first < breakStart && last > breakEnd
			if !spansBreak {
				continue
			}
			hasFreeWindow := false
			for q := breakStart; q <= breakEnd; q++ {
				if !occupied[q] {
					hasFreeWindow = true
					break
				}
			}
			if !hasFreeWindow {
				total++
			}
		}
		return total
	}
}

// CourseSplitPenalty penalizes a (course_key, group) pair distributed across more days than
// the configured target.
func CourseSplitPenalty(shaping ShapingParams) SoftFunc {
	return func(sessions []chromosome.Session, ctx *schedcontext.Context) float64 {
		days := make(map[entities.PairKey]map[qts.Day]bool)
		for _, s := range sessions {
			if s.Quantum < 0 {
				continue
			}
			day, err := ctx.QTS.QuantumToDay(s.Quantum)
			if err != nil {
				continue
			}
			for _, gid := range s.GroupIDs {
				key := entities.PairKey{Course: s.CourseKey, Group: gid}
				if days[key] == nil {
					days[key] = make(map[qts.Day]bool)
				}
				days[key][day] = true
			}
		}
		total := 0.0
		for _, dayset := range days {
			if over := len(dayset) - shaping.CourseSplitTargetDays; over > 0 {
				total += float64(over)
			}
		}
		return total
	}
}

// EarlyOrLateSessionPenalty penalizes quanta outside the configured preferred hours window.
func EarlyOrLateSessionPenalty(shaping ShapingParams) SoftFunc {
	return func(sessions []chromosome.Session, ctx *schedcontext.Context) float64 {
		seen := make(map[struct {
			gene    int
			quantum int
		}]bool)
		total := 0.0
		for _, s := range sessions {
			if s.Quantum < 0 {
				continue
			}
			k := struct {
				gene    int
				quantum int
			}{s.GeneIndex, s.Quantum}
			if seen[k] {
				continue
			}
			seen[k] = true
			_, hhmm, err := ctx.QTS.QuantumToWall(s.Quantum)
			if err != nil {
				continue
			}
			minutes := parseMinutesOrDefault(hhmm, shaping.PreferredStartMinutes)
			if minutes < shaping.PreferredStartMinutes || minutes >= shaping.PreferredEndMinutes {
				total++
			}
		}
		return total
	}
}

// courseTypeDayKey groups scheduled quanta by (course_key, day) for clustering analysis — the
// spec groups by course_key and course_type jointly, which CourseKey already encodes.
type courseTypeDayKey struct {
	course entities.CourseKey
	day    qts.Day
}

// SessionBlockClusteringPenalty splits each (course_key, day)'s scheduled quanta into maximal
// consecutive runs and penalizes isolated (length-1) and oversize (beyond ClusterBlockMax) runs.
func SessionBlockClusteringPenalty(shaping ShapingParams) SoftFunc {
	return func(sessions []chromosome.Session, ctx *schedcontext.Context) float64 {
		byDay := make(map[courseTypeDayKey]map[int]bool)
		for _, s := range sessions {
			if s.Quantum < 0 {
				continue
			}
			day, err := ctx.QTS.QuantumToDay(s.Quantum)
			if err != nil {
				continue
			}
			key := courseTypeDayKey{course: s.CourseKey, day: day}
			if byDay[key] == nil {
				byDay[key] = make(map[int]bool)
			}
			byDay[key][s.Quantum] = true
		}

		total := 0.0
		for _, occupied := range byDay {
			quanta := make([]int, 0, len(occupied))
			for q := range occupied {
				quanta = append(quanta, q)
			}
			sort.Ints(quanta)

			runLen := 0
			flush := func() {
				if runLen == 0 {
					return
				}
				switch {
				case runLen == 1:
					total += shaping.IsolatedPenalty
				case runLen >= shaping.ClusterBlockMin && runLen <= shaping.ClusterBlockMax:
					// zero penalty: the desired block size
				case runLen > shaping.ClusterBlockMax:
					total += float64(runLen-shaping.ClusterBlockMax) * shaping.OversizePenaltyPerQuant
				}
				runLen = 0
			}
			prev := -2
			for _, q := range quanta {
				if q == prev+1 {
					runLen++
				} else {
					flush()
					runLen = 1
				}
				prev = q
			}
			flush()
		}
		return total
	}
}
