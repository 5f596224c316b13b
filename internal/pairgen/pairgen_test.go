package pairgen

import (
	"testing"

	"github.com/luccasniccolas177/uctp-scheduler/internal/entities"
	"github.com/luccasniccolas177/uctp-scheduler/internal/schedcontext"
)

func buildContext() *schedcontext.Context {
	courses := map[entities.CourseKey]*entities.Course{
		{Code: "CS101", Type: entities.Theory}: {
			Key: entities.CourseKey{Code: "CS101", Type: entities.Theory}, RequiredQuanta: 3,
		},
		{Code: "CS101", Type: entities.Practical}: {
			Key: entities.CourseKey{Code: "CS101", Type: entities.Practical}, RequiredQuanta: 2,
		},
	}
	groups := map[string]*entities.Group{
		"G1":  {ID: "G1", CourseCodes: []string{"CS101"}},
		"G1A": {ID: "G1A", ParentID: "G1"},
		"G1B": {ID: "G1B", ParentID: "G1"},
	}
	return schedcontext.New(nil, courses, groups, nil, nil)
}

func TestGenerateProducesTheoryForParentAndPracticalPerSubgroup(t *testing.T) {
	pairs := Generate(buildContext())

	var theoryCount, practicalCount int
	for _, p := range pairs {
		switch p.CourseKey.Type {
		case entities.Theory:
			theoryCount++
			if len(p.GroupIDs) != 1 || p.GroupIDs[0] != "G1" {
				t.Fatalf("expected theory attached to parent G1, got %v", p.GroupIDs)
			}
		case entities.Practical:
			practicalCount++
		}
	}
	if theoryCount != 1 {
		t.Fatalf("expected exactly one theory pair, got %d", theoryCount)
	}
	if practicalCount != 2 {
		t.Fatalf("expected one practical pair per subgroup (2), got %d", practicalCount)
	}
}

func TestIdentityMultisetHasOneEntryPerDistinctPair(t *testing.T) {
	pairs := Generate(buildContext())
	ms := IdentityMultiset(pairs)
	if len(ms) != len(pairs) {
		t.Fatalf("expected distinct identities for this fixture, got %d entries for %d pairs", len(ms), len(pairs))
	}
}
