package parallelmap

import (
	"context"
	"errors"
	"testing"
)

func squareTasks(n int) []Task[int] {
	tasks := make([]Task[int], n)
	for i := 0; i < n; i++ {
		i := i
		tasks[i] = func(ctx context.Context) (int, error) { return i * i, nil }
	}
	return tasks
}

func TestSequentialAndWorkerPoolAgree(t *testing.T) {
	tasks := squareTasks(20)

	seqResults, err := (SequentialMap[int]{}).Eval(context.Background(), tasks)
	if err != nil {
		t.Fatalf("sequential eval failed: %v", err)
	}

	poolResults, err := (WorkerPoolMap[int]{Workers: 4}).Eval(context.Background(), tasks)
	if err != nil {
		t.Fatalf("worker pool eval failed: %v", err)
	}

	if len(seqResults) != len(poolResults) {
		t.Fatalf("length mismatch: %d vs %d", len(seqResults), len(poolResults))
	}
	for i := range seqResults {
		if seqResults[i] != poolResults[i] {
			t.Fatalf("result mismatch at %d: %d vs %d", i, seqResults[i], poolResults[i])
		}
	}
}

func TestWorkerPoolPropagatesFirstError(t *testing.T) {
	boom := errors.New("boom")
	tasks := []Task[int]{
		func(ctx context.Context) (int, error) { return 1, nil },
		func(ctx context.Context) (int, error) { return 0, boom },
	}
	_, err := (WorkerPoolMap[int]{Workers: 2}).Eval(context.Background(), tasks)
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom error, got %v", err)
	}
}
