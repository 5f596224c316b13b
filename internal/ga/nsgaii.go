// Package ga drives the NSGA-II evolutionary loop over chromosome.Individual values: parent
// selection by non-dominated fronts and crowding distance, crossover, mutation, repair,
// parallel evaluation, and survival selection, per §4.8.
package ga

import (
	"math"
	"sort"

	"github.com/luccasniccolas177/uctp-scheduler/internal/chromosome"
)

// FastNonDominatedSort partitions individuals into ranked fronts: front 0 is non-dominated by
// anyone, front 1 is dominated only by front 0, and so on. Every individual's Rank field is set
// to its front index.
func FastNonDominatedSort(individuals []*chromosome.Individual) [][]*chromosome.Individual {
	n := len(individuals)
	dominationCount := make([]int, n)
	dominatedBy := make([][]int, n)

	var fronts [][]int
	first := []int{}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			switch {
			case individuals[i].Fitness.Dominates(individuals[j].Fitness):
				dominatedBy[i] = append(dominatedBy[i], j)
			case individuals[j].Fitness.Dominates(individuals[i].Fitness):
				dominationCount[i]++
			}
		}
		if dominationCount[i] == 0 {
			individuals[i].Rank = 0
			first = append(first, i)
		}
	}
	fronts = append(fronts, first)

	for f := 0; len(fronts[f]) > 0; f++ {
		var next []int
		for _, i := range fronts[f] {
			for _, j := range dominatedBy[i] {
				dominationCount[j]--
				if dominationCount[j] == 0 {
					individuals[j].Rank = f + 1
					next = append(next, j)
				}
			}
		}
		if len(next) == 0 {
			break
		}
		fronts = append(fronts, next)
	}

	out := make([][]*chromosome.Individual, len(fronts))
	for f, idxs := range fronts {
		out[f] = make([]*chromosome.Individual, len(idxs))
		for k, idx := range idxs {
			out[f][k] = individuals[idx]
		}
	}
	return out
}

// AssignCrowdingDistance computes each individual's crowding distance within a single front, in
// place, per the standard NSGA-II boundary-infinite / normalized-span formula over the two
// objectives (hard, soft).
func AssignCrowdingDistance(front []*chromosome.Individual) {
	n := len(front)
	if n == 0 {
		return
	}
	for _, ind := range front {
		ind.CrowdingDistance = 0
	}
	if n <= 2 {
		for _, ind := range front {
			ind.CrowdingDistance = math.Inf(1)
		}
		return
	}

	assignForObjective(front, func(ind *chromosome.Individual) float64 { return float64(ind.Fitness.Hard) })
	assignForObjective(front, func(ind *chromosome.Individual) float64 { return ind.Fitness.Soft })
}

func assignForObjective(front []*chromosome.Individual, value func(*chromosome.Individual) float64) {
	sorted := append([]*chromosome.Individual(nil), front...)
	sort.Slice(sorted, func(i, j int) bool { return value(sorted[i]) < value(sorted[j]) })

	lo, hi := value(sorted[0]), value(sorted[len(sorted)-1])
	sorted[0].CrowdingDistance = math.Inf(1)
	sorted[len(sorted)-1].CrowdingDistance = math.Inf(1)
	if hi == lo {
		return
	}
	for i := 1; i < len(sorted)-1; i++ {
		if math.IsInf(sorted[i].CrowdingDistance, 1) {
			continue
		}
		sorted[i].CrowdingDistance += (value(sorted[i+1]) - value(sorted[i-1])) / (hi - lo)
	}
}

// crowdedComparison is the NSGA-II tournament ordering: lower rank wins; ties broken by larger
// crowding distance.
func crowdedComparison(a, b *chromosome.Individual) bool {
	if a.Rank != b.Rank {
		return a.Rank < b.Rank
	}
	return a.CrowdingDistance > b.CrowdingDistance
}

// SelectSurvivors fills a population of size n from fronts in rank order, breaking the last
// front by crowding distance when it would otherwise overflow n — the standard NSGA-II survival
// step (§4.8 step 7).
func SelectSurvivors(individuals []*chromosome.Individual, n int) []*chromosome.Individual {
	fronts := FastNonDominatedSort(individuals)
	survivors := make([]*chromosome.Individual, 0, n)

	for _, front := range fronts {
		AssignCrowdingDistance(front)
		if len(survivors)+len(front) <= n {
			survivors = append(survivors, front...)
			continue
		}
		remaining := n - len(survivors)
		sorted := append([]*chromosome.Individual(nil), front...)
		sort.Slice(sorted, func(i, j int) bool { return crowdedComparison(sorted[i], sorted[j]) })
		survivors = append(survivors, sorted[:remaining]...)
		break
	}
	return survivors
}

// TournamentSelect picks one parent from a population via binary tournament under the crowded
// comparison rule, used to build the offspring pool (§4.8 step 1).
func TournamentSelect(population []*chromosome.Individual, pick func(n int) int) *chromosome.Individual {
	a := population[pick(len(population))]
	b := population[pick(len(population))]
	if crowdedComparison(a, b) {
		return a
	}
	return b
}
