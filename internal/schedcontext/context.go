// Package schedcontext bundles the immutable entities and time system every operator needs,
// so seeder, constraints, operators and repairs all take the same *Context rather than four
// or five separate maps. Context is built once per run by the loader and never mutated after.
package schedcontext

import (
	"github.com/luccasniccolas177/uctp-scheduler/internal/entities"
	"github.com/luccasniccolas177/uctp-scheduler/internal/qts"
)

// Context is the read-only bundle passed to every genetic operator and constraint. It is safe
// to share across goroutines: nothing here is mutated once New returns.
type Context struct {
	QTS *qts.QuantumTimeSystem

	Courses     map[entities.CourseKey]*entities.Course
	Groups      map[string]*entities.Group
	Instructors map[string]*entities.Instructor
	Rooms       map[string]*entities.Room
}

// New builds a Context from already-linked entities. Linking (qualified instructors,
// enrolled groups, subgroup resolution) is the loader's job; Context only stores the result.
func New(
	timeSystem *qts.QuantumTimeSystem,
	courses map[entities.CourseKey]*entities.Course,
	groups map[string]*entities.Group,
	instructors map[string]*entities.Instructor,
	rooms map[string]*entities.Room,
) *Context {
	return &Context{
		QTS:         timeSystem,
		Courses:     courses,
		Groups:      groups,
		Instructors: instructors,
		Rooms:       rooms,
	}
}

// TotalStudents sums the student count of a set of group ids, used by the seeder and repairs
// to size room candidates.
func (c *Context) TotalStudents(groupIDs []string) int {
	total := 0
	for _, id := range groupIDs {
		if g, ok := c.Groups[id]; ok {
			total += g.StudentCount
		}
	}
	return total
}

// CourseRooms returns every room whose Type matches the course's required room type under the
// compatibility table — callers pass the predicate in to avoid an import cycle with
// internal/constraints, which owns the compatibility table itself.
func (c *Context) CourseRooms(matches func(required, actual entities.RoomType) bool, required entities.RoomType) []*entities.Room {
	var out []*entities.Room
	for _, r := range c.Rooms {
		if matches(required, r.Type) {
			out = append(out, r)
		}
	}
	return out
}
