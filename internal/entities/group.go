package entities

// Group is a student group: a parent class or a first-class subgroup. Subgroups are regular
// Groups — the parent↔subgroup relation is not stored here, it is recovered by
// internal/hierarchy from the ParentID field at analysis time.
type Group struct {
	ID            string
	Name          string
	StudentCount  int
	CourseCodes   []string // enrolled course codes, before theory/practical splitting
	AvailableQuanta map[int]struct{}

	// ParentID is empty for a top-level group, and set to the parent's ID for a subgroup.
	// At load time a subgroup whose own entry lists no course codes takes the parent's, and one
	// whose entry declares no busy blocks takes the parent's availability (§6).
	ParentID string
}

// IsAvailable reports whether the group can attend a session at the given quantum.
func (g *Group) IsAvailable(quantum int) bool {
	_, ok := g.AvailableQuanta[quantum]
	return ok
}

// IsSubgroup reports whether this group was derived from a parent group.
func (g *Group) IsSubgroup() bool {
	return g.ParentID != ""
}
