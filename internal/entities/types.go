// Package entities holds the immutable domain types shared by every operator: Course, Group,
// Instructor, Room, and the small key types used for identity and lookups. Nothing in this
// package mutates after load time.
package entities

import (
	"sort"
	"strings"
)

// SessionType distinguishes the two course variants carried through the whole pipeline.
type SessionType string

const (
	Theory    SessionType = "theory"
	Practical SessionType = "practical"
)

// RoomType is the physical capability of a room, and (separately) the requirement a course
// carries for the room it needs.
type RoomType string

const (
	RoomLecture   RoomType = "lecture"
	RoomPractical RoomType = "practical"
)

// CourseKey is the pair (course_code, course_type) uniquely identifying a schedulable course
// variant — theory and practical sections of the same code are distinct entities.
type CourseKey struct {
	Code string
	Type SessionType
}

func (k CourseKey) String() string {
	return k.Code + "/" + string(k.Type)
}

// GroupKey is the canonical, order-independent identity of a gene's group set: a gene's
// group_ids slice may be in any order and is always compared as a set.
type GroupKey string

// NewGroupKey builds the canonical identity for a set of group ids, deduplicating and sorting
// so that [3,1] and [1,3] (and [1,1,3]) all produce the same key.
func NewGroupKey(groupIDs []string) GroupKey {
	uniq := make(map[string]struct{}, len(groupIDs))
	for _, id := range groupIDs {
		uniq[id] = struct{}{}
	}
	sorted := make([]string, 0, len(uniq))
	for id := range uniq {
		sorted = append(sorted, id)
	}
	sort.Strings(sorted)
	return GroupKey(strings.Join(sorted, "\x1f"))
}

// Members splits a GroupKey back into its sorted group ids.
func (k GroupKey) Members() []string {
	if k == "" {
		return nil
	}
	return strings.Split(string(k), "\x1f")
}

// GeneIdentity is the pair (course_key, group_ids-as-set) that crossover and mutation must
// never alter, and that the structural invariant (§8 item 1) is defined over.
type GeneIdentity struct {
	Course CourseKey
	Groups GroupKey
}

func (id GeneIdentity) String() string {
	return id.Course.String() + "|" + string(id.Groups)
}

// PairKey is the lookup key for incomplete_or_extra_sessions: (course_key_tuple, group_id),
// never the bare course code, and never the group *set* — it is per-group.
type PairKey struct {
	Course CourseKey
	Group  string
}

func (k PairKey) String() string {
	return k.Course.String() + "#" + k.Group
}
