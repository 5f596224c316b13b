package repair

import (
	"math/rand"
	"testing"

	"github.com/luccasniccolas177/uctp-scheduler/internal/chromosome"
	"github.com/luccasniccolas177/uctp-scheduler/internal/entities"
	"github.com/luccasniccolas177/uctp-scheduler/internal/pairgen"
	"github.com/luccasniccolas177/uctp-scheduler/internal/qts"
	"github.com/luccasniccolas177/uctp-scheduler/internal/schedcontext"
)

func buildRepairContext(t *testing.T) *schedcontext.Context {
	t.Helper()
	timeSystem, err := qts.New(60, []qts.DaySpec{
		{Day: 0, Label: "Monday", StartMinutes: 8 * 60, EndMinutes: 14 * 60},
		{Day: 1, Label: "Tuesday", StartMinutes: 8 * 60, EndMinutes: 14 * 60},
		{Day: 2, Label: "Wednesday", StartMinutes: 8 * 60, EndMinutes: 14 * 60},
	})
	if err != nil {
		t.Fatalf("building qts: %v", err)
	}
	all := make(map[int]struct{})
	for q := 0; q < timeSystem.Total(); q++ {
		all[q] = struct{}{}
	}
	key := entities.CourseKey{Code: "CS101", Type: entities.Theory}
	courses := map[entities.CourseKey]*entities.Course{
		key: {Key: key, RequiredQuanta: 3, RequiredRoomType: entities.RoomLecture, QualifiedInstructors: []string{"I1"}},
	}
	groups := map[string]*entities.Group{
		"G1": {ID: "G1", StudentCount: 10, AvailableQuanta: all},
	}
	instructors := map[string]*entities.Instructor{
		"I1": {ID: "I1", AvailableQuanta: all, Qualifications: map[entities.CourseKey]struct{}{key: {}}},
	}
	rooms := map[string]*entities.Room{
		"R1": {ID: "R1", Capacity: 30, Type: entities.RoomLecture, AvailableQuanta: all},
		"R2": {ID: "R2", Capacity: 30, Type: entities.RoomLecture, AvailableQuanta: all},
	}
	return schedcontext.New(timeSystem, courses, groups, instructors, rooms)
}

func TestRepairGroupOverlapsResolvesConflict(t *testing.T) {
	ctx := buildRepairContext(t)
	key := entities.CourseKey{Code: "CS101", Type: entities.Theory}
	ind := &chromosome.Individual{Genes: []*chromosome.SessionGene{
		{CourseKey: key, GroupIDs: []string{"G1"}, InstructorID: "I1", RoomID: "R1", Quanta: []int{0}},
		{CourseKey: key, GroupIDs: []string{"G1"}, InstructorID: "I1", RoomID: "R2", Quanta: []int{0}},
	}}
	fixes := RepairGroupOverlaps(ind, ctx, rand.New(rand.NewSource(1)))
	if fixes != 1 {
		t.Fatalf("expected 1 fix, got %d", fixes)
	}
	if ind.Genes[0].Quanta[0] != 0 {
		t.Fatal("expected the earlier gene to keep its original quantum")
	}
	if ind.Genes[1].Quanta[0] == 0 {
		t.Fatal("expected the later gene to move off the conflicting quantum")
	}
}

func TestRepairRoomTypeMismatchReassignsRoom(t *testing.T) {
	ctx := buildRepairContext(t)
	key := entities.CourseKey{Code: "CS101", Type: entities.Theory}
	ctx.Rooms["R3"] = &entities.Room{ID: "R3", Capacity: 5, Type: entities.RoomPractical, AvailableQuanta: ctx.Rooms["R1"].AvailableQuanta}

	ind := &chromosome.Individual{Genes: []*chromosome.SessionGene{
		{CourseKey: key, GroupIDs: []string{"G1"}, InstructorID: "I1", RoomID: "R3", Quanta: []int{0}},
	}}
	fixes := RepairRoomTypeMismatches(ind, ctx, rand.New(rand.NewSource(1)))
	if fixes != 1 {
		t.Fatalf("expected 1 fix, got %d", fixes)
	}
	if ind.Genes[0].RoomID != "R1" && ind.Genes[0].RoomID != "R2" {
		t.Fatalf("expected reassignment to a lecture room, got %q", ind.Genes[0].RoomID)
	}
}

func TestRepairIncompleteSessionsAddsMissingGenes(t *testing.T) {
	ctx := buildRepairContext(t)
	ctx.Groups["G1"].CourseCodes = []string{"CS101"}
	pairs := pairgen.Generate(ctx)

	expectedPairs := make(map[entities.PairKey]int)
	pairsByKey := make(map[entities.PairKey]pairgen.Pair)
	for _, p := range pairs {
		k := entities.PairKey{Course: p.CourseKey, Group: p.GroupIDs[0]}
		expectedPairs[k] = p.RequiredQuanta
		pairsByKey[k] = p
	}

	key := entities.CourseKey{Code: "CS101", Type: entities.Theory}
	ind := &chromosome.Individual{Genes: []*chromosome.SessionGene{
		{CourseKey: key, GroupIDs: []string{"G1"}, InstructorID: "I1", RoomID: "R1", Quanta: []int{0}},
	}}

	fn := RepairIncompleteOrExtraSessions(expectedPairs, pairsByKey)
	fixes := fn(ind, ctx, rand.New(rand.NewSource(1)))
	if fixes != 2 {
		t.Fatalf("expected 2 missing quanta fixed, got %d", fixes)
	}
	if len(ind.Genes) != 3 {
		t.Fatalf("expected 3 genes total (RequiredQuanta=3), got %d", len(ind.Genes))
	}
}
