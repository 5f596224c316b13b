package ga

import (
	"context"
	"math/rand"

	"github.com/luccasniccolas177/uctp-scheduler/internal/chromosome"
	"github.com/luccasniccolas177/uctp-scheduler/internal/config"
	"github.com/luccasniccolas177/uctp-scheduler/internal/fitness"
	"github.com/luccasniccolas177/uctp-scheduler/internal/operators"
	"github.com/luccasniccolas177/uctp-scheduler/internal/parallelmap"
	"github.com/luccasniccolas177/uctp-scheduler/internal/repair"
	"github.com/luccasniccolas177/uctp-scheduler/internal/schedcontext"
)

// Scheduler drives the NSGA-II generation loop described in §4.8: a single-threaded,
// deterministic state machine whose only parallel section is fitness evaluation.
type Scheduler struct {
	Config    *config.GAConfig
	Context   *schedcontext.Context
	Evaluator *fitness.Evaluator
	Pipeline  *repair.Pipeline
	Eval      parallelmap.Map[*chromosome.Individual]

	rng *rand.Rand
}

// NewScheduler wires a Scheduler from its collaborators, selecting SequentialMap or
// WorkerPoolMap per cfg.Parallelism.
func NewScheduler(cfg *config.GAConfig, ctx *schedcontext.Context, evaluator *fitness.Evaluator, pipeline *repair.Pipeline) *Scheduler {
	var m parallelmap.Map[*chromosome.Individual]
	if cfg.Parallelism == "sequential" {
		m = parallelmap.SequentialMap[*chromosome.Individual]{}
	} else {
		m = parallelmap.WorkerPoolMap[*chromosome.Individual]{Workers: cfg.Workers}
	}
	return &Scheduler{
		Config:    cfg,
		Context:   ctx,
		Evaluator: evaluator,
		Pipeline:  pipeline,
		Eval:      m,
		rng:       rand.New(rand.NewSource(cfg.Seed)),
	}
}

// Run evolves population for up to Config.Generations generations, stopping early if
// earlyStop is non-nil and returns true for the current generation's best individual. It
// returns the final population and the recorded per-generation metrics.
func (s *Scheduler) Run(ctx context.Context, population *chromosome.Population, earlyStop func(best *chromosome.Individual) bool) (*chromosome.Population, []GenerationMetrics, error) {
	if err := s.evaluateAll(ctx, population.Individuals); err != nil {
		return population, nil, err
	}
	history := make([]GenerationMetrics, 0, s.Config.Generations)

	for gen := 0; gen < s.Config.Generations; gen++ {
		offspring := s.makeOffspring(population.Individuals)

		fixCounts := s.repairAll(offspring)
		if err := s.evaluateAll(ctx, offspring); err != nil {
			return population, history, err
		}

		combined := append(append([]*chromosome.Individual(nil), population.Individuals...), offspring...)
		survivors := SelectSurvivors(combined, population.Size())
		population = chromosome.NewPopulation(survivors)

		m := CollectMetrics(gen, population, fixCounts)
		history = append(history, m)

		if earlyStop != nil && earlyStop(population.Best()) {
			break
		}
	}
	return population, history, nil
}

// makeOffspring runs selection, crossover and mutation (§4.8 steps 1-4), returning a fresh
// slice of N cloned, possibly-modified individuals.
func (s *Scheduler) makeOffspring(population []*chromosome.Individual) []*chromosome.Individual {
	n := len(population)
	offspring := make([]*chromosome.Individual, n)
	for i := 0; i < n; i++ {
		parent := TournamentSelect(population, s.rng.Intn)
		offspring[i] = parent.Clone()
	}

	rates := operators.DefaultMutationRates(s.Config.MutIndiv, s.Config.MutGene)
	for i := 0; i+1 < n; i += 2 {
		if s.rng.Float64() < s.Config.CxProb {
			_ = operators.Crossover(offspring[i], offspring[i+1], s.Config.CxProb, false, s.rng)
		}
	}
	for _, ind := range offspring {
		operators.Mutate(ind, s.Context, rates, s.rng)
	}
	return offspring
}

// repairAll runs the priority-ordered repair pipeline to convergence over every offspring
// touched this generation, returning the total fix count for metrics.
func (s *Scheduler) repairAll(offspring []*chromosome.Individual) map[string]int {
	totals := map[string]int{"total": 0}
	for _, ind := range offspring {
		if ind.Fitness.Valid {
			continue // untouched by crossover/mutation this generation
		}
		totals["total"] += s.Pipeline.Run(ind, s.Context, s.rng)
	}
	return totals
}

// evaluateAll evaluates every individual with invalid fitness via the parallel map, per §5.
func (s *Scheduler) evaluateAll(ctx context.Context, individuals []*chromosome.Individual) error {
	var tasks []parallelmap.Task[*chromosome.Individual]
	for _, ind := range individuals {
		if ind.Fitness.Valid {
			continue
		}
		ind := ind
		tasks = append(tasks, func(ctx context.Context) (*chromosome.Individual, error) {
			s.Evaluator.Evaluate(ind, s.Context)
			return ind, nil
		})
	}
	if len(tasks) == 0 {
		return nil
	}
	_, err := s.Eval.Eval(ctx, tasks)
	return err
}

// SelectTerminal implements §4.8's terminal selection rule: among the final population, prefer
// the feasible (hard==0) individual with smallest soft; if none is feasible, the minimum by
// hard then soft.
func SelectTerminal(population *chromosome.Population) *chromosome.Individual {
	var bestFeasible *chromosome.Individual
	for _, ind := range population.Individuals {
		if ind.Fitness.Hard != 0 {
			continue
		}
		if bestFeasible == nil || ind.Fitness.Soft < bestFeasible.Fitness.Soft {
			bestFeasible = ind
		}
	}
	if bestFeasible != nil {
		return bestFeasible
	}
	return population.Best()
}
