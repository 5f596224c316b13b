package repair

import (
	"math/rand"
	"sort"

	"github.com/luccasniccolas177/uctp-scheduler/internal/chromosome"
	"github.com/luccasniccolas177/uctp-scheduler/internal/entities"
	"github.com/luccasniccolas177/uctp-scheduler/internal/qts"
	"github.com/luccasniccolas177/uctp-scheduler/internal/schedcontext"
)

type clusterKey struct {
	course entities.CourseKey
	day    qts.Day
}

// RepairSessionClustering finds isolated (length-1) same-day runs per course_key and tries to
// extend the owning gene by one adjacent quantum, when that quantum is free for the gene's
// instructor, room and groups — priority 6.
func RepairSessionClustering(ind *chromosome.Individual, ctx *schedcontext.Context, _ *rand.Rand) int {
	groupOcc, instructorOcc, roomOcc := buildOccupancy(ind.Genes)

	byDay := make(map[clusterKey][]int)       // occupied quanta, collected per key
	owner := make(map[clusterKey]map[int]int) // per key: quantum -> gene index
	for i, g := range ind.Genes {
		if g.HasUnassignedQuanta() {
			continue
		}
		for _, q := range g.Quanta {
			day, err := ctx.QTS.QuantumToDay(q)
			if err != nil {
				continue
			}
			key := clusterKey{course: g.CourseKey, day: day}
			byDay[key] = append(byDay[key], q)
			if owner[key] == nil {
				owner[key] = make(map[int]int)
			}
			owner[key][q] = i
		}
	}

	fixes := 0
	keys := make([]clusterKey, 0, len(byDay))
	for k := range byDay {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(a, b int) bool {
		if keys[a].course != keys[b].course {
			return keys[a].course.Code < keys[b].course.Code
		}
		return keys[a].day < keys[b].day
	})

	for _, key := range keys {
		quanta := append([]int(nil), byDay[key]...)
		sort.Ints(quanta)
		occupied := make(map[int]bool, len(quanta))
		for _, q := range quanta {
			occupied[q] = true
		}

		for _, q := range quanta {
			isolated := !occupied[q-1] && !occupied[q+1]
			if !isolated {
				continue
			}
			geneIdx, ok := owner[key][q]
			if !ok {
				continue
			}
			gene := ind.Genes[geneIdx]
			if len(gene.Quanta) != 1 {
				continue
			}

			for _, candidate := range []int{q + 1, q - 1} {
				if candidate < 0 || candidate >= ctx.QTS.Total() {
					continue
				}
				if candidateDay, err := ctx.QTS.QuantumToDay(candidate); err != nil || candidateDay != key.day {
					continue
				}
				if !quantumFitsGene(gene, ctx, candidate, geneIdx, groupOcc, instructorOcc, roomOcc) {
					continue
				}
				newQuanta := append([]int(nil), gene.Quanta...)
				newQuanta = append(newQuanta, candidate)
				sort.Ints(newQuanta)
				replaceClaim(gene, geneIdx, newQuanta, groupOcc, instructorOcc, roomOcc)
				occupied[candidate] = true
				fixes++
				break
			}
		}
	}
	return fixes
}
