package seeder

import (
	"math/rand"

	"github.com/luccasniccolas177/uctp-scheduler/internal/chromosome"
	"github.com/luccasniccolas177/uctp-scheduler/internal/pairgen"
	"github.com/luccasniccolas177/uctp-scheduler/internal/schedcontext"
)

// Seed builds one complete Individual: phase-1 skeleton genes from pairs, phase-2 resource
// assignment driven by rng. The returned individual always has the full gene set the pair
// generator demands — incompleteness can only arise later, from repair/mutation bugs, never
// from seeding itself.
func Seed(pairs []pairgen.Pair, ctx *schedcontext.Context, rng *rand.Rand) *chromosome.Individual {
	genes := BuildSkeleton(pairs)
	AssignResources(genes, ctx, rng)
	ind := &chromosome.Individual{Genes: genes}
	ind.InvalidateFitness()
	return ind
}

// SeedPopulation builds n independently-assigned individuals sharing the same pair set. Each
// individual gets its own rng derived from seed so the population is reproducible as a whole.
// Resource assignment is greedy and only draws on the rng in its random-quantum fallback, so
// individuals differ only where that fallback fires.
func SeedPopulation(n int, pairs []pairgen.Pair, ctx *schedcontext.Context, seed int64) *chromosome.Population {
	root := rand.New(rand.NewSource(seed))
	individuals := make([]*chromosome.Individual, n)
	for i := 0; i < n; i++ {
		individualRNG := rand.New(rand.NewSource(root.Int63()))
		individuals[i] = Seed(pairs, ctx, individualRNG)
	}
	return chromosome.NewPopulation(individuals)
}
