package operators

import (
	"math/rand"
	"testing"

	"github.com/luccasniccolas177/uctp-scheduler/internal/chromosome"
	"github.com/luccasniccolas177/uctp-scheduler/internal/entities"
	"github.com/luccasniccolas177/uctp-scheduler/internal/qts"
	"github.com/luccasniccolas177/uctp-scheduler/internal/schedcontext"
)

func key(code string) entities.CourseKey {
	return entities.CourseKey{Code: code, Type: entities.Theory}
}

func TestCrossoverNeverChangesIdentity(t *testing.T) {
	a := &chromosome.Individual{Genes: []*chromosome.SessionGene{
		{CourseKey: key("CS101"), GroupIDs: []string{"G1"}, InstructorID: "IA", RoomID: "RA", Quanta: []int{1}},
	}}
	b := &chromosome.Individual{Genes: []*chromosome.SessionGene{
		{CourseKey: key("CS101"), GroupIDs: []string{"G1"}, InstructorID: "IB", RoomID: "RB", Quanta: []int{2}},
	}}
	beforeA := a.Genes[0].Identity()
	beforeB := b.Genes[0].Identity()

	rng := rand.New(rand.NewSource(1))
	if err := Crossover(a, b, 1.0, true, rng); err != nil {
		t.Fatalf("unexpected crossover error: %v", err)
	}

	if a.Genes[0].Identity() != beforeA || b.Genes[0].Identity() != beforeB {
		t.Fatal("crossover must never change gene identity")
	}
	if a.Genes[0].InstructorID != "IB" || b.Genes[0].InstructorID != "IA" {
		t.Fatalf("expected instructors swapped, got a=%s b=%s", a.Genes[0].InstructorID, b.Genes[0].InstructorID)
	}
}

func TestCrossoverStrictModeRejectsMismatchedIdentitySets(t *testing.T) {
	a := &chromosome.Individual{Genes: []*chromosome.SessionGene{{CourseKey: key("CS101"), GroupIDs: []string{"G1"}}}}
	b := &chromosome.Individual{Genes: []*chromosome.SessionGene{{CourseKey: key("CS102"), GroupIDs: []string{"G1"}}}}

	rng := rand.New(rand.NewSource(1))
	if err := Crossover(a, b, 1.0, true, rng); err == nil {
		t.Fatal("expected strict mode to reject mismatched identity sets")
	}
}

func buildMutationContext(t *testing.T) *schedcontext.Context {
	t.Helper()
	timeSystem, err := qts.New(60, []qts.DaySpec{{Day: 0, Label: "Monday", StartMinutes: 8 * 60, EndMinutes: 12 * 60}})
	if err != nil {
		t.Fatalf("building qts: %v", err)
	}
	all := make(map[int]struct{})
	for q := 0; q < timeSystem.Total(); q++ {
		all[q] = struct{}{}
	}
	courses := map[entities.CourseKey]*entities.Course{
		key("CS101"): {Key: key("CS101"), RequiredRoomType: entities.RoomLecture, QualifiedInstructors: []string{"I1"}},
	}
	groups := map[string]*entities.Group{"G1": {ID: "G1", StudentCount: 10, AvailableQuanta: all}}
	instructors := map[string]*entities.Instructor{
		"I1": {ID: "I1", AvailableQuanta: all, Qualifications: map[entities.CourseKey]struct{}{key("CS101"): {}}},
	}
	rooms := map[string]*entities.Room{"R1": {ID: "R1", Capacity: 30, Type: entities.RoomLecture, AvailableQuanta: all}}
	return schedcontext.New(timeSystem, courses, groups, instructors, rooms)
}

func TestMutateNeverTouchesIdentity(t *testing.T) {
	ctx := buildMutationContext(t)
	ind := &chromosome.Individual{Genes: []*chromosome.SessionGene{
		{CourseKey: key("CS101"), GroupIDs: []string{"G1"}, InstructorID: "I1", RoomID: "R1", Quanta: []int{0}},
	}}
	before := ind.Genes[0].Identity()

	rates := DefaultMutationRates(1.0, 1.0)
	rates.RetainInstructor, rates.RetainRoom, rates.RetainQuanta = 0, 0, 0
	Mutate(ind, ctx, rates, rand.New(rand.NewSource(7)))

	if ind.Genes[0].Identity() != before {
		t.Fatal("mutation must never change gene identity")
	}
}
