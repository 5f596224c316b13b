package repair

import (
	"math/rand"
	"sort"

	"github.com/luccasniccolas177/uctp-scheduler/internal/chromosome"
	"github.com/luccasniccolas177/uctp-scheduler/internal/entities"
	"github.com/luccasniccolas177/uctp-scheduler/internal/pairgen"
	"github.com/luccasniccolas177/uctp-scheduler/internal/schedcontext"
)

// RepairIncompleteOrExtraSessions adds synthesized genes for missing (course_key, group) work
// or drops the smallest genes for excess — priority 7, the only repair that changes an
// individual's gene count. expected and pairsByKey come from the pair generator's reference
// output; pairsByKey supplies the CourseKey/GroupIDs a synthesized gene must carry.
func RepairIncompleteOrExtraSessions(expected map[entities.PairKey]int, pairsByKey map[entities.PairKey]pairgen.Pair) func(*chromosome.Individual, *schedcontext.Context, *rand.Rand) int {
	return func(ind *chromosome.Individual, ctx *schedcontext.Context, rng *rand.Rand) int {
		actual := make(map[entities.PairKey][]int) // pair key -> gene indices holding it
		for i, g := range ind.Genes {
			if g.HasUnassignedQuanta() {
				continue
			}
			for _, gid := range g.GroupIDs {
				k := entities.PairKey{Course: g.CourseKey, Group: gid}
				actual[k] = append(actual[k], i)
			}
		}

		fixes := 0
		toDrop := make(map[int]bool)
		var toAdd []*chromosome.SessionGene

		keys := make([]entities.PairKey, 0, len(expected))
		for k := range expected {
			keys = append(keys, k)
		}
		sort.Slice(keys, func(a, b int) bool {
			if keys[a].Course != keys[b].Course {
				return keys[a].Course.Code < keys[b].Course.Code
			}
			return keys[a].Group < keys[b].Group
		})

		for _, key := range keys {
			want := expected[key]
			geneIdxs := actual[key]
			have := sumQuanta(ind.Genes, geneIdxs)

			if have < want {
				missing := want - have
				pair, ok := pairsByKey[key]
				if !ok {
					pair = pairgen.Pair{CourseKey: key.Course, GroupIDs: []string{key.Group}}
				}
				for q := 0; q < missing; q++ {
					toAdd = append(toAdd, &chromosome.SessionGene{
						CourseKey:    pair.CourseKey,
						GroupIDs:     append([]string(nil), pair.GroupIDs...),
						InstructorID: chromosome.Unassigned,
						RoomID:       chromosome.Unassigned,
						Quanta:       []int{chromosome.UnassignedQuantum},
					})
				}
				fixes += missing
			} else if have > want {
				excess := have - want
				dropped := dropSmallest(ind.Genes, geneIdxs, excess)
				for _, idx := range dropped {
					toDrop[idx] = true
				}
				fixes += len(dropped)
			}
		}

		if fixes == 0 {
			return 0
		}

		kept := make([]*chromosome.SessionGene, 0, len(ind.Genes)-len(toDrop)+len(toAdd))
		for i, g := range ind.Genes {
			if !toDrop[i] {
				kept = append(kept, g)
			}
		}
		kept = append(kept, toAdd...)

		groupOcc, instructorOcc, roomOcc := buildOccupancy(kept)
		for i := len(kept) - len(toAdd); i < len(kept); i++ {
			assignSynthesizedGene(kept[i], ctx, i, groupOcc, instructorOcc, roomOcc, rng)
		}

		ind.Genes = kept
		return fixes
	}
}

func sumQuanta(genes []*chromosome.SessionGene, indices []int) int {
	total := 0
	for _, i := range indices {
		total += len(genes[i].Quanta)
	}
	return total
}

// dropSmallest picks `n` gene indices to remove, preferring the shortest genes (fewest quanta)
// and breaking ties by the lowest index, so dropping is deterministic.
func dropSmallest(genes []*chromosome.SessionGene, indices []int, n int) []int {
	sorted := append([]int(nil), indices...)
	sort.Slice(sorted, func(a, b int) bool {
		la, lb := len(genes[sorted[a]].Quanta), len(genes[sorted[b]].Quanta)
		if la != lb {
			return la < lb
		}
		return sorted[a] < sorted[b]
	})
	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}

func assignSynthesizedGene(gene *chromosome.SessionGene, ctx *schedcontext.Context, geneIdx int, groupOcc, instructorOcc, roomOcc occupancy, rng *rand.Rand) {
	course := ctx.Courses[gene.CourseKey]
	if course != nil {
		candidates := append([]string(nil), course.QualifiedInstructors...)
		sort.Strings(candidates)
		for _, c := range candidates {
			if ctx.Instructors[c] != nil {
				gene.InstructorID = c
				break
			}
		}

		students := ctx.TotalStudents(gene.GroupIDs)
		rooms := candidateRooms(ctx, course.RequiredRoomType, "", students)
		if len(rooms) > 0 {
			gene.RoomID = rooms[0]
		}
	}

	if block, ok := findFreeBlock(gene, ctx, 1, geneIdx, groupOcc, instructorOcc, roomOcc); ok {
		replaceClaim(gene, geneIdx, block, groupOcc, instructorOcc, roomOcc)
		return
	}

	total := ctx.QTS.Total()
	if total == 0 {
		gene.Quanta = []int{chromosome.UnassignedQuantum}
		return
	}
	fallback := []int{rng.Intn(total)}
	replaceClaim(gene, geneIdx, fallback, groupOcc, instructorOcc, roomOcc)
}
