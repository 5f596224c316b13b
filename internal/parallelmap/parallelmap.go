// Package parallelmap implements the fitness evaluator's bounded-concurrency fan-out: every
// individual with invalid fitness is evaluated independently, with no shared mutable state, and
// results are returned in input order regardless of completion order.
package parallelmap

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Task produces one result, given a context it should respect for cancellation. A task must
// not share mutable state with any other task running concurrently.
type Task[T any] func(ctx context.Context) (T, error)

// Map evaluates a batch of tasks and returns their results in the same order as tasks. The
// first error encountered aborts the remaining in-flight tasks and is returned; results for
// tasks that never ran are the zero value.
type Map[T any] interface {
	Eval(ctx context.Context, tasks []Task[T]) ([]T, error)
}

// SequentialMap runs tasks one at a time in a single goroutine — the degenerate case used when
// parallelism is disabled or for deterministic debugging.
type SequentialMap[T any] struct{}

// Eval implements Map by running every task in order, stopping at the first error.
func (SequentialMap[T]) Eval(ctx context.Context, tasks []Task[T]) ([]T, error) {
	results := make([]T, len(tasks))
	for i, task := range tasks {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		r, err := task(ctx)
		if err != nil {
			return results, err
		}
		results[i] = r
	}
	return results, nil
}

// WorkerPoolMap runs tasks across a bounded pool of goroutines via errgroup.SetLimit, grounded
// in the errgroup-based bounded-fan-out pattern the retrieval pack's larger schedulers use for
// concurrent reconciliation work.
type WorkerPoolMap[T any] struct {
	Workers int
}

// Eval implements Map by fanning tasks out across at most Workers goroutines. A non-positive
// Workers falls back to one goroutine per task (errgroup's default, no limit).
func (w WorkerPoolMap[T]) Eval(ctx context.Context, tasks []Task[T]) ([]T, error) {
	g, gctx := errgroup.WithContext(ctx)
	if w.Workers > 0 {
		g.SetLimit(w.Workers)
	}

	results := make([]T, len(tasks))
	for i, task := range tasks {
		i, task := i, task
		g.Go(func() error {
			r, err := task(gctx)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
