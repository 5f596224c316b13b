package entities

import "testing"

func TestGroupKeyIsOrderIndependent(t *testing.T) {
	a := NewGroupKey([]string{"G3", "G1"})
	b := NewGroupKey([]string{"G1", "G3"})
	if a != b {
		t.Fatalf("expected order-independent keys to match: %q != %q", a, b)
	}
}

func TestGroupKeyDeduplicates(t *testing.T) {
	a := NewGroupKey([]string{"G1", "G1", "G3"})
	b := NewGroupKey([]string{"G1", "G3"})
	if a != b {
		t.Fatalf("expected duplicate-insensitive keys to match: %q != %q", a, b)
	}
}

func TestGroupKeyMembersRoundTrip(t *testing.T) {
	k := NewGroupKey([]string{"G3", "G1", "G2"})
	members := k.Members()
	want := []string{"G1", "G2", "G3"}
	if len(members) != len(want) {
		t.Fatalf("expected %v, got %v", want, members)
	}
	for i := range want {
		if members[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, members)
		}
	}
}

func TestCourseHasRequirement(t *testing.T) {
	c := &Course{RequiredQuanta: 0}
	if c.HasRequirement() {
		t.Fatal("zero-quanta course should have no requirement")
	}
	c.RequiredQuanta = 2
	if !c.HasRequirement() {
		t.Fatal("positive-quanta course should have a requirement")
	}
}

func TestRoomCanAccommodate(t *testing.T) {
	r := &Room{Capacity: 30}
	if !r.CanAccommodate(30) {
		t.Fatal("expected capacity 30 to accommodate 30 students")
	}
	if r.CanAccommodate(31) {
		t.Fatal("expected capacity 30 to reject 31 students")
	}
}

func TestClampAvailabilityDefaultsToFullyAvailable(t *testing.T) {
	out := ClampAvailability(nil, 5)
	if len(out) != 5 {
		t.Fatalf("expected all 5 operational quanta, got %d", len(out))
	}
}

func TestClampAvailabilityIntersectsDeclaredWithOperationalRange(t *testing.T) {
	declared := map[int]struct{}{1: {}, 4: {}, 9: {}}
	out := ClampAvailability(declared, 5)
	if len(out) != 2 {
		t.Fatalf("expected 2 quanta surviving the [0,5) clamp, got %d", len(out))
	}
	if _, ok := out[9]; ok {
		t.Fatal("quantum 9 is out of the operational range and should be dropped")
	}
}
