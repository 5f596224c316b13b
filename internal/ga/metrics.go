package ga

import (
	"sort"

	"github.com/luccasniccolas177/uctp-scheduler/internal/chromosome"
)

// GenerationMetrics is the per-generation summary the scheduler records, consumed by the
// exporter's report and by tests asserting universal invariant 6 (monotone best-hard).
type GenerationMetrics struct {
	Generation  int
	BestHard    int
	BestSoft    float64
	Diversity   float64
	RepairFixes map[string]int
}

// CollectMetrics summarizes a just-survived population: the best (hard, soft) pair under the
// terminal ordering, a population diversity figure, and the fix counts the repair pipeline
// applied to this generation's offspring before evaluation.
func CollectMetrics(gen int, population *chromosome.Population, fixCounts map[string]int) GenerationMetrics {
	best := population.Best()
	return GenerationMetrics{
		Generation:  gen,
		BestHard:    best.Fitness.Hard,
		BestSoft:    best.Fitness.Soft,
		Diversity:   meanPairwiseGeneDistance(population.Individuals),
		RepairFixes: fixCounts,
	}
}

// meanPairwiseGeneDistance measures population diversity as the mean, over every pair of
// individuals, of the fraction of shared gene identities whose assignment (instructor, room, or
// quanta) differs. Identical populations score 0; a population where every shared gene differs
// scores 1.
func meanPairwiseGeneDistance(individuals []*chromosome.Individual) float64 {
	n := len(individuals)
	if n < 2 {
		return 0
	}

	indexed := make([]map[string]*chromosome.SessionGene, n)
	for i, ind := range individuals {
		m := make(map[string]*chromosome.SessionGene, len(ind.Genes))
		for _, g := range ind.Genes {
			m[identityKey(g)] = g
		}
		indexed[i] = m
	}

	var totalDistance float64
	var pairs int
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			totalDistance += pairDistance(indexed[i], indexed[j])
			pairs++
		}
	}
	if pairs == 0 {
		return 0
	}
	return totalDistance / float64(pairs)
}

func pairDistance(a, b map[string]*chromosome.SessionGene) float64 {
	shared, differing := 0, 0
	for key, ga := range a {
		gb, ok := b[key]
		if !ok {
			continue
		}
		shared++
		if !sameAssignment(ga, gb) {
			differing++
		}
	}
	if shared == 0 {
		return 0
	}
	return float64(differing) / float64(shared)
}

func sameAssignment(a, b *chromosome.SessionGene) bool {
	if a.InstructorID != b.InstructorID || a.RoomID != b.RoomID {
		return false
	}
	if len(a.Quanta) != len(b.Quanta) {
		return false
	}
	for i := range a.Quanta {
		if a.Quanta[i] != b.Quanta[i] {
			return false
		}
	}
	return true
}

func identityKey(g *chromosome.SessionGene) string {
	groups := append([]string(nil), g.GroupIDs...)
	sort.Strings(groups)
	key := g.CourseKey.Code + "|" + string(g.CourseKey.Type)
	for _, gid := range groups {
		key += "|" + gid
	}
	return key
}
