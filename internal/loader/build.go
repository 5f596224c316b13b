package loader

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/luccasniccolas177/uctp-scheduler/internal/apperrors"
	"github.com/luccasniccolas177/uctp-scheduler/internal/constraints"
	"github.com/luccasniccolas177/uctp-scheduler/internal/entities"
	"github.com/luccasniccolas177/uctp-scheduler/internal/qts"
	"github.com/luccasniccolas177/uctp-scheduler/internal/schedcontext"
)

// BuildTimeSystem turns a ScheduleConfigDTO into a qts.QuantumTimeSystem.
func BuildTimeSystem(cfg *ScheduleConfigDTO) (*qts.QuantumTimeSystem, error) {
	days := make([]qts.DaySpec, len(cfg.Days))
	for i, d := range cfg.Days {
		start, err := parseHHMM(d.Start)
		if err != nil {
			return nil, apperrors.Invalid("day %d (%s) start time: %v", d.Day, d.Label, err)
		}
		end, err := parseHHMM(d.End)
		if err != nil {
			return nil, apperrors.Invalid("day %d (%s) end time: %v", d.Day, d.Label, err)
		}
		days[i] = qts.DaySpec{Day: qts.Day(d.Day), Label: d.Label, StartMinutes: start, EndMinutes: end}
	}
	return qts.New(cfg.QuantumMinutes, days)
}

// BuildContext links the loaded DTOs into the entities.* domain graph and a schedcontext.Context,
// per §6: qualified instructors and enrolled groups are computed here, not carried in the input
// files, and every entity's AvailableQuanta is clamped to the time system's operational range.
func BuildContext(timeSystem *qts.QuantumTimeSystem, courseDTOs []CourseDTO, groupDTOs []GroupDTO, instructorDTOs []InstructorDTO, roomDTOs []RoomDTO) (*schedcontext.Context, error) {
	total := timeSystem.Total()

	instructors := make(map[string]*entities.Instructor, len(instructorDTOs))
	for _, dto := range instructorDTOs {
		busy, err := busyQuanta(timeSystem, dto.BusyBlocks)
		if err != nil {
			return nil, err
		}
		qualifications := make(map[entities.CourseKey]struct{}, len(dto.Qualifications))
		for _, ref := range dto.Qualifications {
			qualifications[entities.CourseKey{Code: ref.Code, Type: entities.SessionType(ref.Type)}] = struct{}{}
		}
		instructors[dto.ID] = &entities.Instructor{
			ID:              dto.ID,
			Name:            dto.Name,
			AvailableQuanta: entities.ClampAvailability(complement(busy, total), total),
			Qualifications:  qualifications,
		}
	}

	groups := make(map[string]*entities.Group, len(groupDTOs))
	for _, dto := range groupDTOs {
		busy, err := busyQuanta(timeSystem, dto.BusyBlocks)
		if err != nil {
			return nil, err
		}
		groups[dto.ID] = &entities.Group{
			ID:              dto.ID,
			Name:            dto.Name,
			StudentCount:    dto.StudentCount,
			CourseCodes:     append([]string(nil), dto.CourseCodes...),
			AvailableQuanta: entities.ClampAvailability(complement(busy, total), total),
			ParentID:        dto.ParentID,
		}
	}
	// Subgroups inherit the parent's enrolled course codes when their own entry lists none, and
	// the parent's availability when their own entry declares no busy blocks.
	for _, dto := range groupDTOs {
		parent, ok := groups[dto.ParentID]
		if dto.ParentID == "" || !ok {
			continue
		}
		g := groups[dto.ID]
		if len(g.CourseCodes) == 0 {
			g.CourseCodes = append([]string(nil), parent.CourseCodes...)
		}
		if len(dto.BusyBlocks) == 0 {
			g.AvailableQuanta = parent.AvailableQuanta
		}
	}

	rooms := make(map[string]*entities.Room, len(roomDTOs))
	for _, dto := range roomDTOs {
		rooms[dto.Code] = &entities.Room{
			ID:              dto.Code,
			Code:            dto.Code,
			Capacity:        dto.Capacity,
			Type:            constraints.NormalizeRoomType(dto.Type),
			AvailableQuanta: entities.ClampAvailability(nil, total),
		}
	}

	courses := make(map[entities.CourseKey]*entities.Course, len(courseDTOs)*2)
	for _, dto := range courseDTOs {
		if dto.TheoryQuanta > 0 {
			key := entities.CourseKey{Code: dto.Code, Type: entities.Theory}
			courses[key] = &entities.Course{
				Key:              key,
				Name:             dto.Name,
				RequiredQuanta:   dto.TheoryQuanta,
				RequiredRoomType: normalizeOrDefault(dto.RoomTypeTheory, entities.RoomLecture),
			}
		}
		if dto.PracticalQuanta > 0 {
			key := entities.CourseKey{Code: dto.Code, Type: entities.Practical}
			courses[key] = &entities.Course{
				Key:              key,
				Name:             dto.Name,
				RequiredQuanta:   dto.PracticalQuanta,
				RequiredRoomType: normalizeOrDefault(dto.RoomTypePractical, entities.RoomPractical),
			}
		}
	}

	linkQualifiedInstructors(courses, instructorDTOs)
	linkEnrolledGroups(courses, groupDTOs)

	return schedcontext.New(timeSystem, courses, groups, instructors, rooms), nil
}

func normalizeOrDefault(raw string, fallback entities.RoomType) entities.RoomType {
	if strings.TrimSpace(raw) == "" {
		return fallback
	}
	return constraints.NormalizeRoomType(raw)
}

func linkQualifiedInstructors(courses map[entities.CourseKey]*entities.Course, instructorDTOs []InstructorDTO) {
	byKey := make(map[entities.CourseKey][]string)
	for _, dto := range instructorDTOs {
		for _, ref := range dto.Qualifications {
			key := entities.CourseKey{Code: ref.Code, Type: entities.SessionType(ref.Type)}
			byKey[key] = append(byKey[key], dto.ID)
		}
	}
	for key, ids := range byKey {
		sort.Strings(ids)
		if c, ok := courses[key]; ok {
			c.QualifiedInstructors = ids
		}
	}
}

func linkEnrolledGroups(courses map[entities.CourseKey]*entities.Course, groupDTOs []GroupDTO) {
	byCode := make(map[string][]string)
	for _, dto := range groupDTOs {
		for _, code := range dto.CourseCodes {
			byCode[code] = append(byCode[code], dto.ID)
		}
	}
	for _, c := range courses {
		ids := append([]string(nil), byCode[c.Key.Code]...)
		sort.Strings(ids)
		c.EnrolledGroups = ids
	}
}

// busyQuanta converts a set of per-day block indices into global quantum indices, using each
// day's operational offset from the time system.
func busyQuanta(timeSystem *qts.QuantumTimeSystem, blocks []BusyBlockDTO) (map[int]struct{}, error) {
	if len(blocks) == 0 {
		return nil, nil
	}
	out := make(map[int]struct{})
	for _, b := range blocks {
		start, end, err := timeSystem.OperationalQuantaFor(qts.Day(b.Day))
		if err != nil {
			return nil, apperrors.Invalid("busy block for non-operational day %d: %v", b.Day, err)
		}
		for _, block := range b.Blocks {
			q := start + block
			if q < start || q >= end {
				return nil, apperrors.Invalid("busy block index %d on day %d is outside that day's %d operational quanta", block, b.Day, end-start)
			}
			out[q] = struct{}{}
		}
	}
	return out, nil
}

// complement returns every quantum in [0,total) not present in busy. A nil busy set (no
// declared blocks) returns nil, which entities.ClampAvailability treats as "fully available".
func complement(busy map[int]struct{}, total int) map[int]struct{} {
	if busy == nil {
		return nil
	}
	out := make(map[int]struct{}, total-len(busy))
	for q := 0; q < total; q++ {
		if _, blocked := busy[q]; !blocked {
			out[q] = struct{}{}
		}
	}
	return out
}

// parseHHMM parses a "HH:MM" wall-clock string into minutes since midnight.
func parseHHMM(s string) (int, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("expected HH:MM, got %q", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid hour in %q: %w", s, err)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid minute in %q: %w", s, err)
	}
	return h*60 + m, nil
}
