// Package loader reads the JSON/CSV input files into DTOs, validates them with
// go-playground/validator, and builds the immutable entities.* domain graph and
// schedcontext.Context the rest of the engine runs against. Grounded in the teacher's
// internal/loader package: slice-of-DTO unmarshal followed by a domain-conversion pass.
package loader

// ScheduleConfigDTO describes the weekly operational-hours grid the QuantumTimeSystem is
// built from — one entry per operational day.
type ScheduleConfigDTO struct {
	QuantumMinutes int            `json:"quantum_minutes" validate:"required,gt=0"`
	Days           []DayWindowDTO `json:"days" validate:"required,min=1,dive"`
}

// DayWindowDTO is one operational day's wall-clock window, "HH:MM" formatted.
type DayWindowDTO struct {
	Day   int    `json:"day" validate:"gte=0,lte=6"`
	Label string `json:"label" validate:"required"`
	Start string `json:"start" validate:"required"`
	End   string `json:"end" validate:"required"`
}

// CourseDTO is one course's theory/practical requirement, before the theory/practical split
// into two entities.Course variants.
type CourseDTO struct {
	Code              string `json:"code" validate:"required"`
	Name              string `json:"name" validate:"required"`
	TheoryQuanta      int    `json:"theory_quanta" validate:"gte=0"`
	PracticalQuanta   int    `json:"practical_quanta" validate:"gte=0"`
	RoomTypeTheory    string `json:"room_type_theory"`
	RoomTypePractical string `json:"room_type_practical"`
}

// GroupDTO is one student group or subgroup.
type GroupDTO struct {
	ID           string         `json:"id" validate:"required"`
	Name         string         `json:"name"`
	StudentCount int            `json:"student_count" validate:"gte=0"`
	CourseCodes  []string       `json:"course_codes"`
	ParentID     string         `json:"parent_id"`
	BusyBlocks   []BusyBlockDTO `json:"busy_blocks"`
}

// InstructorDTO is one instructor and their qualifications and unavailable blocks.
type InstructorDTO struct {
	ID             string         `json:"id" validate:"required"`
	Name           string         `json:"name"`
	Qualifications []CourseRefDTO `json:"qualifications" validate:"dive"`
	BusyBlocks     []BusyBlockDTO `json:"busy_blocks"`
}

// CourseRefDTO names one (course_code, course_type) an instructor is qualified to teach.
type CourseRefDTO struct {
	Code string `json:"code" validate:"required"`
	Type string `json:"type" validate:"required,oneof=theory practical"`
}

// BusyBlockDTO names a day and a set of per-day block indices (0-based, in quantum units from
// that day's operational start) during which a group or instructor is unavailable — the same
// flattening the teacher's TeacherJSON.UnavailableBlocks performs, adapted to quantum indices
// instead of wall-clock ranges.
type BusyBlockDTO struct {
	Day    int   `json:"day" validate:"gte=0,lte=6"`
	Blocks []int `json:"blocks"`
}

// RoomDTO is one physical room, loaded from CSV per the teacher's rooms.csv convention.
type RoomDTO struct {
	Code     string
	Capacity int
	Type     string
}
