package entities

// Course carries the identity (course_code, course_type) plus the weekly quanta requirement
// and the room type it needs. Qualified instructors and enrolled groups are computed at
// load-time (see internal/loader) and stored here. The seeder, mutation and repairs read
// QualifiedInstructors; the pair generator works from the groups' course codes and the group
// hierarchy instead of EnrolledGroups.
type Course struct {
	Key              CourseKey
	Name             string
	RequiredQuanta   int
	RequiredRoomType RoomType

	// QualifiedInstructors is the set of instructor ids qualified to teach Key, computed at
	// load time from the instructors' qualification lists.
	QualifiedInstructors []string

	// EnrolledGroups is the set of group ids enrolled in this course variant, computed at load
	// time from the course-code lists of the group entries themselves; it is not resolved to
	// subgroups.
	EnrolledGroups []string
}

// HasRequirement reports whether this course variant needs to be scheduled at all. A course
// with zero required quanta contributes zero genes and is skipped by the pair generator.
func (c *Course) HasRequirement() bool {
	return c.RequiredQuanta > 0
}
