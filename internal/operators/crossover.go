// Package operators implements the identity-keyed crossover and constraint-aware mutation GA
// operators, both of which must preserve every gene's (course_key, group_ids) identity.
package operators

import (
	"math/rand"

	"github.com/luccasniccolas177/uctp-scheduler/internal/apperrors"
	"github.com/luccasniccolas177/uctp-scheduler/internal/chromosome"
)

// Crossover performs identity-keyed crossover between two parents, per §4.5. Both parents must
// carry the same identity-multiset — callers run this only on offspring descended from a
// structurally-validated population. When strictMode is true and the two parents' key sets
// differ, Crossover returns an apperrors.InvariantViolation instead of silently operating on
// the intersection.
func Crossover(a, b *chromosome.Individual, cxProb float64, strictMode bool, rng *rand.Rand) error {
	aByIdentity := a.GeneByIdentity()
	bByIdentity := b.GeneByIdentity()

	if strictMode {
		if len(aByIdentity) != len(bByIdentity) {
			return apperrors.New(apperrors.InvariantViolation, "crossover parents have mismatched identity-set sizes")
		}
		for key := range aByIdentity {
			if _, ok := bByIdentity[key]; !ok {
				return apperrors.New(apperrors.InvariantViolation, "crossover parents have mismatched gene identities")
			}
		}
	}

	swapped := false
	for key, geneA := range aByIdentity {
		geneB, ok := bByIdentity[key]
		if !ok {
			continue
		}
		if rng.Float64() >= cxProb {
			continue
		}
		geneA.InstructorID, geneB.InstructorID = geneB.InstructorID, geneA.InstructorID
		geneA.RoomID, geneB.RoomID = geneB.RoomID, geneA.RoomID
		geneA.Quanta, geneB.Quanta = geneB.Quanta, geneA.Quanta
		swapped = true
	}

	if swapped {
		a.InvalidateFitness()
		b.InvalidateFitness()
	}
	return nil
}
