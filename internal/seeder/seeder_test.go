package seeder

import (
	"math/rand"
	"testing"

	"github.com/luccasniccolas177/uctp-scheduler/internal/entities"
	"github.com/luccasniccolas177/uctp-scheduler/internal/pairgen"
	"github.com/luccasniccolas177/uctp-scheduler/internal/qts"
	"github.com/luccasniccolas177/uctp-scheduler/internal/schedcontext"
)

func buildTestContext(t *testing.T) *schedcontext.Context {
	t.Helper()
	timeSystem, err := qts.New(60, []qts.DaySpec{
		{Day: 0, Label: "Monday", StartMinutes: 8 * 60, EndMinutes: 12 * 60},
	})
	if err != nil {
		t.Fatalf("building qts: %v", err)
	}
	all := make(map[int]struct{})
	for q := 0; q < timeSystem.Total(); q++ {
		all[q] = struct{}{}
	}

	courses := map[entities.CourseKey]*entities.Course{
		{Code: "CS101", Type: entities.Theory}: {
			Key: entities.CourseKey{Code: "CS101", Type: entities.Theory}, RequiredQuanta: 2,
			RequiredRoomType: entities.RoomLecture, QualifiedInstructors: []string{"I1"},
		},
	}
	groups := map[string]*entities.Group{
		"G1": {ID: "G1", StudentCount: 20, CourseCodes: []string{"CS101"}, AvailableQuanta: all},
	}
	instructors := map[string]*entities.Instructor{
		"I1": {ID: "I1", AvailableQuanta: all, Qualifications: map[entities.CourseKey]struct{}{
			{Code: "CS101", Type: entities.Theory}: {},
		}},
	}
	rooms := map[string]*entities.Room{
		"R1": {ID: "R1", Capacity: 30, Type: entities.RoomLecture, AvailableQuanta: all},
	}
	return schedcontext.New(timeSystem, courses, groups, instructors, rooms)
}

func TestSeedProducesCompleteGeneSet(t *testing.T) {
	ctx := buildTestContext(t)
	pairs := pairgen.Generate(ctx)
	ind := Seed(pairs, ctx, rand.New(rand.NewSource(1)))

	if len(ind.Genes) != 2 {
		t.Fatalf("expected 2 genes (RequiredQuanta=2), got %d", len(ind.Genes))
	}
	for _, g := range ind.Genes {
		if g.InstructorID != "I1" {
			t.Fatalf("expected instructor I1, got %q", g.InstructorID)
		}
		if g.RoomID != "R1" {
			t.Fatalf("expected room R1, got %q", g.RoomID)
		}
		if g.HasUnassignedQuanta() {
			t.Fatal("expected quantum to be resolved")
		}
	}
}

func TestSeedNeverPanicsWithNoQualifiedInstructor(t *testing.T) {
	ctx := buildTestContext(t)
	ctx.Courses[entities.CourseKey{Code: "CS101", Type: entities.Theory}].QualifiedInstructors = nil
	pairs := pairgen.Generate(ctx)
	ind := Seed(pairs, ctx, rand.New(rand.NewSource(1)))
	for _, g := range ind.Genes {
		if g.InstructorID != "" {
			t.Fatalf("expected unassigned instructor, got %q", g.InstructorID)
		}
	}
}
