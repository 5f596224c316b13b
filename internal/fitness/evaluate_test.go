package fitness

import (
	"testing"

	"github.com/luccasniccolas177/uctp-scheduler/internal/chromosome"
	"github.com/luccasniccolas177/uctp-scheduler/internal/constraints"
	"github.com/luccasniccolas177/uctp-scheduler/internal/entities"
	"github.com/luccasniccolas177/uctp-scheduler/internal/qts"
	"github.com/luccasniccolas177/uctp-scheduler/internal/schedcontext"
)

func TestEvaluateDetectsGroupOverlap(t *testing.T) {
	timeSystem, err := qts.New(60, []qts.DaySpec{{Day: 0, Label: "Monday", StartMinutes: 8 * 60, EndMinutes: 12 * 60}})
	if err != nil {
		t.Fatalf("building qts: %v", err)
	}
	ctx := schedcontext.New(timeSystem, map[entities.CourseKey]*entities.Course{}, map[string]*entities.Group{}, map[string]*entities.Instructor{}, map[string]*entities.Room{})

	ind := &chromosome.Individual{Genes: []*chromosome.SessionGene{
		{GroupIDs: []string{"G1"}, Quanta: []int{0}},
		{GroupIDs: []string{"G1"}, Quanta: []int{0}},
	}}

	eval := &Evaluator{
		Hard: &constraints.HardRegistry{Entries: []constraints.HardEntry{
			{Name: "no_group_overlap", Fn: constraints.NoGroupOverlap, Enabled: true},
		}},
		Soft: &constraints.SoftRegistry{},
	}
	eval.Evaluate(ind, ctx)

	if !ind.Fitness.Valid {
		t.Fatal("expected fitness to be marked valid")
	}
	if ind.Fitness.Hard != 1 {
		t.Fatalf("expected 1 hard violation, got %d", ind.Fitness.Hard)
	}
}

func TestEvaluateAllSkipsAlreadyValid(t *testing.T) {
	eval := &Evaluator{Hard: &constraints.HardRegistry{}, Soft: &constraints.SoftRegistry{}}
	ind := &chromosome.Individual{Fitness: chromosome.Fitness{Hard: 7, Soft: 3, Valid: true}}
	eval.EvaluateAll([]*chromosome.Individual{ind}, nil)
	if ind.Fitness.Hard != 7 {
		t.Fatalf("expected untouched fitness to remain 7, got %d", ind.Fitness.Hard)
	}
}
