package chromosome

// Population is a fixed-size ordered collection of individuals, created by the seeder and
// reshaped each generation by NSGA-II survival selection.
type Population struct {
	Individuals []*Individual
}

// NewPopulation wraps a slice of individuals into a Population.
func NewPopulation(individuals []*Individual) *Population {
	return &Population{Individuals: individuals}
}

// Size returns the population size N.
func (p *Population) Size() int {
	return len(p.Individuals)
}

// Best returns the individual with the smallest (hard, soft) tuple under lexicographic order,
// used for simple reporting; terminal selection (§4.8) has its own, feasibility-aware rule.
func (p *Population) Best() *Individual {
	if len(p.Individuals) == 0 {
		return nil
	}
	best := p.Individuals[0]
	for _, ind := range p.Individuals[1:] {
		if ind.Fitness.Hard < best.Fitness.Hard ||
			(ind.Fitness.Hard == best.Fitness.Hard && ind.Fitness.Soft < best.Fitness.Soft) {
			best = ind
		}
	}
	return best
}
