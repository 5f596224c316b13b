package chromosome

import "github.com/luccasniccolas177/uctp-scheduler/internal/entities"

// Fitness is the two-objective tuple NSGA-II operates over: (hard, soft). Weights inside each
// constraint registry may scale individual contributions, but the two objectives are never
// collapsed into one scalar.
type Fitness struct {
	Hard  int
	Soft  float64
	Valid bool // false until the fitness evaluator has run since the last structural change
}

// Dominates reports whether f dominates other under standard Pareto dominance: at least as
// good in both objectives and strictly better in at least one.
func (f Fitness) Dominates(other Fitness) bool {
	notWorse := f.Hard <= other.Hard && f.Soft <= other.Soft
	strictlyBetter := f.Hard < other.Hard || f.Soft < other.Soft
	return notWorse && strictlyBetter
}

// Individual is a complete candidate schedule: an ordered sequence of genes plus fitness.
// Gene order is not semantically meaningful — identity is positional-independent — but a
// stable order is kept so repairs can process genes deterministically (§4.7).
type Individual struct {
	Genes   []*SessionGene
	Fitness Fitness

	// Rank and CrowdingDistance are NSGA-II bookkeeping fields, recomputed every generation by
	// internal/ga and otherwise ignored.
	Rank             int
	CrowdingDistance float64
}

// InvalidateFitness marks the individual's fitness stale, required after any genetic operator
// touches its genes (§4.8 step 3/4).
func (ind *Individual) InvalidateFitness() {
	ind.Fitness.Valid = false
}

// IdentityMultiset returns the count of each gene identity present, used to check the
// structural invariant against the pair generator's reference multiset.
func (ind *Individual) IdentityMultiset() map[entities.GeneIdentity]int {
	out := make(map[entities.GeneIdentity]int, len(ind.Genes))
	for _, g := range ind.Genes {
		out[g.Identity()]++
	}
	return out
}

// Clone returns a deep copy of the individual, including its genes, safe to mutate
// independently (crossover and mutation never share gene pointers across individuals).
func (ind *Individual) Clone() *Individual {
	clone := &Individual{
		Fitness:          ind.Fitness,
		Rank:             ind.Rank,
		CrowdingDistance: ind.CrowdingDistance,
	}
	clone.Genes = make([]*SessionGene, len(ind.Genes))
	for i, g := range ind.Genes {
		clone.Genes[i] = g.Clone()
	}
	return clone
}

// GeneByIdentity indexes the individual's genes by identity for O(1) crossover lookups. When
// the same identity appears more than once (it shouldn't under a valid pair-generator
// reference set, but defensive callers may still hit it transiently during repair), the last
// gene wins and callers relying on uniqueness should check IdentityMultiset first.
func (ind *Individual) GeneByIdentity() map[entities.GeneIdentity]*SessionGene {
	out := make(map[entities.GeneIdentity]*SessionGene, len(ind.Genes))
	for _, g := range ind.Genes {
		out[g.Identity()] = g
	}
	return out
}
