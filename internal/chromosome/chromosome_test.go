package chromosome

import (
	"testing"

	"github.com/luccasniccolas177/uctp-scheduler/internal/entities"
)

func TestGeneIdentityIsOrderIndependent(t *testing.T) {
	g1 := &SessionGene{CourseKey: entities.CourseKey{Code: "C", Type: entities.Theory}, GroupIDs: []string{"G1", "G2"}}
	g2 := &SessionGene{CourseKey: entities.CourseKey{Code: "C", Type: entities.Theory}, GroupIDs: []string{"G2", "G1"}}
	if g1.Identity() != g2.Identity() {
		t.Fatalf("expected identical identities regardless of group order")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g := &SessionGene{
		CourseKey: entities.CourseKey{Code: "C", Type: entities.Theory},
		GroupIDs:  []string{"G1"},
		Quanta:    []int{1, 2},
	}
	clone := g.Clone()
	clone.Quanta[0] = 99
	clone.GroupIDs[0] = "G2"
	if g.Quanta[0] == 99 {
		t.Fatal("mutating clone quanta affected original")
	}
	if g.GroupIDs[0] == "G2" {
		t.Fatal("mutating clone group ids affected original")
	}
}

func TestValidateQuantaRejectsNonIncreasing(t *testing.T) {
	g := &SessionGene{Quanta: []int{2, 1}}
	if g.ValidateQuanta(10) {
		t.Fatal("expected non-increasing quanta to be invalid")
	}
	g.Quanta = []int{1, 2, 2}
	if g.ValidateQuanta(10) {
		t.Fatal("expected duplicate quanta to be invalid")
	}
	g.Quanta = []int{1, 2, 3}
	if !g.ValidateQuanta(10) {
		t.Fatal("expected strictly increasing in-range quanta to be valid")
	}
}

func TestFitnessDominates(t *testing.T) {
	a := Fitness{Hard: 0, Soft: 5}
	b := Fitness{Hard: 0, Soft: 10}
	if !a.Dominates(b) {
		t.Fatal("expected a to dominate b")
	}
	if b.Dominates(a) {
		t.Fatal("b should not dominate a")
	}
	c := Fitness{Hard: 0, Soft: 5}
	if a.Dominates(c) {
		t.Fatal("equal fitness should not dominate")
	}
}

func TestIdentityMultisetCountsDuplicates(t *testing.T) {
	ind := &Individual{Genes: []*SessionGene{
		{CourseKey: entities.CourseKey{Code: "A", Type: entities.Theory}, GroupIDs: []string{"G1"}},
		{CourseKey: entities.CourseKey{Code: "A", Type: entities.Theory}, GroupIDs: []string{"G1"}},
	}}
	ms := ind.IdentityMultiset()
	if len(ms) != 1 {
		t.Fatalf("expected one distinct identity, got %d", len(ms))
	}
	for _, count := range ms {
		if count != 2 {
			t.Fatalf("expected count 2, got %d", count)
		}
	}
}

func TestPopulationBest(t *testing.T) {
	p := NewPopulation([]*Individual{
		{Fitness: Fitness{Hard: 1, Soft: 0}},
		{Fitness: Fitness{Hard: 0, Soft: 5}},
		{Fitness: Fitness{Hard: 0, Soft: 2}},
	})
	best := p.Best()
	if best.Fitness.Hard != 0 || best.Fitness.Soft != 2 {
		t.Fatalf("expected (0,2), got (%d,%v)", best.Fitness.Hard, best.Fitness.Soft)
	}
}
