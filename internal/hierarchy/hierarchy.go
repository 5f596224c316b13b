// Package hierarchy detects parent/subgroup relationships from group definitions, so the pair
// generator can attach theory sessions to the parent and practical sessions to each subgroup
// (or the group itself, when it has none).
package hierarchy

import "github.com/luccasniccolas177/uctp-scheduler/internal/entities"

// Tree is the recovered parent→subgroup relation over a context's groups.
type Tree struct {
	childrenOf map[string][]string // parentID -> subgroup IDs, in sorted id order
	parentOf   map[string]string   // subgroup ID -> parentID
}

// Analyze walks every group's ParentID and builds the parent/subgroup relation. Groups are
// processed in sorted id order so Subgroups(parent) is deterministic.
func Analyze(groups map[string]*entities.Group) *Tree {
	t := &Tree{
		childrenOf: make(map[string][]string),
		parentOf:   make(map[string]string),
	}

	ids := make([]string, 0, len(groups))
	for id := range groups {
		ids = append(ids, id)
	}
	sortStrings(ids)

	for _, id := range ids {
		g := groups[id]
		if g.ParentID == "" {
			continue
		}
		t.parentOf[id] = g.ParentID
		t.childrenOf[g.ParentID] = append(t.childrenOf[g.ParentID], id)
	}
	return t
}

// Subgroups returns the direct subgroups of a group, or nil if it has none.
func (t *Tree) Subgroups(groupID string) []string {
	return t.childrenOf[groupID]
}

// HasSubgroups reports whether a group has at least one subgroup.
func (t *Tree) HasSubgroups(groupID string) bool {
	return len(t.childrenOf[groupID]) > 0
}

// ParentOf returns the parent group id, or "" if groupID is top-level.
func (t *Tree) ParentOf(groupID string) string {
	return t.parentOf[groupID]
}

// PracticalTargets returns the groups a practical session must be scheduled per, per §4.2: one
// item per subgroup if any exist, otherwise the group itself.
func (t *Tree) PracticalTargets(groupID string) []string {
	if subs := t.childrenOf[groupID]; len(subs) > 0 {
		out := make([]string, len(subs))
		copy(out, subs)
		return out
	}
	return []string{groupID}
}

// sortStrings is a tiny insertion sort kept local to avoid importing sort for a handful of
// group ids; it is used for every input size.
func sortStrings(s []string) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}
