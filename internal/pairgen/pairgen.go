// Package pairgen enumerates the canonical work items a two-phase seeder must materialize into
// skeleton genes: one (course, group-set, session-type, quanta) tuple per actually-offered
// course/session-type combination, per §4.2.
package pairgen

import (
	"sort"

	"github.com/luccasniccolas177/uctp-scheduler/internal/entities"
	"github.com/luccasniccolas177/uctp-scheduler/internal/hierarchy"
	"github.com/luccasniccolas177/uctp-scheduler/internal/schedcontext"
)

// Pair is a single work item: one session of CourseKey must be scheduled for GroupIDs, needing
// RequiredQuanta contiguous-or-coalesced quanta to fulfil.
type Pair struct {
	CourseKey      entities.CourseKey
	GroupIDs       []string
	RequiredQuanta int
}

// Identity returns the gene identity this pair expects a seeded gene to carry.
func (p Pair) Identity() entities.GeneIdentity {
	return entities.GeneIdentity{
		Course: p.CourseKey,
		Groups: entities.NewGroupKey(p.GroupIDs),
	}
}

// Generate walks every top-level group's enrolled course codes and emits one pair per offered
// session type, per §4.2:
//   - a theory variant, if the course offers one, attached to the parent group;
//   - a practical variant, if the course offers one, attached to each subgroup (or the group
//     itself when it has none).
//
// Groups that are themselves subgroups are skipped here — their enrollment is expressed through
// their parent, and practical targets are derived from the hierarchy tree.
func Generate(ctx *schedcontext.Context) []Pair {
	tree := hierarchy.Analyze(ctx.Groups)

	ids := make([]string, 0, len(ctx.Groups))
	for id, g := range ctx.Groups {
		if g.ParentID != "" {
			continue
		}
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var pairs []Pair
	for _, groupID := range ids {
		group := ctx.Groups[groupID]
		codes := append([]string(nil), group.CourseCodes...)
		sort.Strings(codes)

		for _, code := range codes {
			if theory, ok := ctx.Courses[entities.CourseKey{Code: code, Type: entities.Theory}]; ok && theory.HasRequirement() {
				pairs = append(pairs, Pair{
					CourseKey:      theory.Key,
					GroupIDs:       []string{groupID},
					RequiredQuanta: theory.RequiredQuanta,
				})
			}
			if practical, ok := ctx.Courses[entities.CourseKey{Code: code, Type: entities.Practical}]; ok && practical.HasRequirement() {
				for _, target := range tree.PracticalTargets(groupID) {
					pairs = append(pairs, Pair{
						CourseKey:      practical.Key,
						GroupIDs:       []string{target},
						RequiredQuanta: practical.RequiredQuanta,
					})
				}
			}
		}
	}
	return pairs
}

// IdentityMultiset returns the reference multiset every seeded (and subsequently evolved)
// individual must match structurally — the completeness repair's ground truth.
func IdentityMultiset(pairs []Pair) map[entities.GeneIdentity]int {
	out := make(map[entities.GeneIdentity]int, len(pairs))
	for _, p := range pairs {
		out[p.Identity()]++
	}
	return out
}
