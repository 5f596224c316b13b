package hierarchy

import (
	"reflect"
	"testing"

	"github.com/luccasniccolas177/uctp-scheduler/internal/entities"
)

func TestAnalyzeBuildsSubgroups(t *testing.T) {
	groups := map[string]*entities.Group{
		"G1":  {ID: "G1"},
		"G1A": {ID: "G1A", ParentID: "G1"},
		"G1B": {ID: "G1B", ParentID: "G1"},
		"G2":  {ID: "G2"},
	}
	tree := Analyze(groups)

	if !tree.HasSubgroups("G1") {
		t.Fatal("expected G1 to have subgroups")
	}
	if tree.HasSubgroups("G2") {
		t.Fatal("expected G2 to have no subgroups")
	}
	if got := tree.ParentOf("G1A"); got != "G1" {
		t.Fatalf("expected G1A parent G1, got %q", got)
	}
	if got := tree.ParentOf("G2"); got != "" {
		t.Fatalf("expected G2 to be top-level, got %q", got)
	}
}

func TestPracticalTargetsFallsBackToGroup(t *testing.T) {
	groups := map[string]*entities.Group{
		"G1":  {ID: "G1"},
		"G1A": {ID: "G1A", ParentID: "G1"},
		"G2":  {ID: "G2"},
	}
	tree := Analyze(groups)

	if !reflect.DeepEqual(tree.PracticalTargets("G1"), []string{"G1A"}) {
		t.Fatalf("expected practical targets [G1A], got %v", tree.PracticalTargets("G1"))
	}
	if !reflect.DeepEqual(tree.PracticalTargets("G2"), []string{"G2"}) {
		t.Fatalf("expected fallback to [G2], got %v", tree.PracticalTargets("G2"))
	}
}
