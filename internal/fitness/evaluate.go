// Package fitness evaluates a decoded individual against the hard and soft constraint
// registries, producing the two-objective chromosome.Fitness tuple NSGA-II sorts on.
package fitness

import (
	"github.com/luccasniccolas177/uctp-scheduler/internal/chromosome"
	"github.com/luccasniccolas177/uctp-scheduler/internal/constraints"
	"github.com/luccasniccolas177/uctp-scheduler/internal/schedcontext"
)

// Evaluator bundles the two constraint registries an individual is scored against.
type Evaluator struct {
	Hard *constraints.HardRegistry
	Soft *constraints.SoftRegistry
}

// Evaluate decodes ind and scores it, writing the result into ind.Fitness and marking it valid.
// A fitness of Hard==0 means feasible; Valid is always set true on return.
func (e *Evaluator) Evaluate(ind *chromosome.Individual, ctx *schedcontext.Context) {
	sessions := chromosome.Decode(ind)
	hard := e.Hard.Evaluate(sessions, ctx)
	soft := e.Soft.Evaluate(sessions, ctx)
	ind.Fitness = chromosome.Fitness{Hard: hard, Soft: soft, Valid: true}
}

// EvaluateAll evaluates every individual whose fitness is not already valid — re-evaluating a
// structurally-unchanged individual is wasted work, so callers invalidate fitness explicitly
// whenever an operator touches genes (§4.8 steps 3/4).
func (e *Evaluator) EvaluateAll(individuals []*chromosome.Individual, ctx *schedcontext.Context) {
	for _, ind := range individuals {
		if !ind.Fitness.Valid {
			e.Evaluate(ind, ctx)
		}
	}
}

// Breakdown reports the named contribution of every enabled hard and soft constraint, used by
// reporting and the exporter — never by the evolutionary loop itself.
type Breakdown struct {
	Hard map[string]int
	Soft map[string]float64
}

// Explain decodes ind and returns its per-constraint breakdown without touching ind.Fitness.
func (e *Evaluator) Explain(ind *chromosome.Individual, ctx *schedcontext.Context) Breakdown {
	sessions := chromosome.Decode(ind)
	return Breakdown{
		Hard: e.Hard.Breakdown(sessions, ctx),
		Soft: e.Soft.Breakdown(sessions, ctx),
	}
}
