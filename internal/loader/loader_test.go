package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luccasniccolas177/uctp-scheduler/internal/apperrors"
	"github.com/luccasniccolas177/uctp-scheduler/internal/entities"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadCoursesRejectsMalformedJSON(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "courses.json", `{not valid json`)

	_, err := LoadCourses(path)
	require.Error(t, err)
	require.True(t, apperrors.Is(err, apperrors.InvalidInput))
}

func TestLoadCoursesRejectsMissingRequiredField(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "courses.json", `[{"name": "Intro to Widgets"}]`)

	_, err := LoadCourses(path)
	require.Error(t, err)
	require.True(t, apperrors.Is(err, apperrors.InvalidInput))
}

func TestLoadRoomsFallsBackToLabPrefixWhenTypeColumnMissing(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "rooms.csv", "code,capacity\nLAB101,20\nA201,40\n")

	rooms, err := LoadRooms(path)
	require.NoError(t, err)
	require.Len(t, rooms, 2)
	require.Equal(t, "practical", rooms[0].Type)
	require.Equal(t, "", rooms[1].Type)
}

func TestBuildTimeSystemParsesWallClockWindows(t *testing.T) {
	cfg := &ScheduleConfigDTO{
		QuantumMinutes: 60,
		Days: []DayWindowDTO{
			{Day: 0, Label: "Monday", Start: "08:00", End: "14:00"},
		},
	}
	ts, err := BuildTimeSystem(cfg)
	require.NoError(t, err)
	require.Equal(t, 6, ts.Total())
}

func TestBuildContextLinksQualificationsAndEnrollment(t *testing.T) {
	cfg := &ScheduleConfigDTO{
		QuantumMinutes: 60,
		Days: []DayWindowDTO{
			{Day: 0, Label: "Monday", Start: "08:00", End: "14:00"},
		},
	}
	ts, err := BuildTimeSystem(cfg)
	require.NoError(t, err)

	courses := []CourseDTO{
		{Code: "CS101", Name: "Intro", TheoryQuanta: 2, PracticalQuanta: 1, RoomTypePractical: "laboratory"},
	}
	groups := []GroupDTO{
		{ID: "G1", Name: "Section A", StudentCount: 30, CourseCodes: []string{"CS101"}},
	}
	instructors := []InstructorDTO{
		{ID: "I1", Name: "Dr. Lin", Qualifications: []CourseRefDTO{
			{Code: "CS101", Type: "theory"},
			{Code: "CS101", Type: "practical"},
		}},
	}
	rooms := []RoomDTO{{Code: "R1", Capacity: 40, Type: "lecture"}}

	ctx, err := BuildContext(ts, courses, groups, instructors, rooms)
	require.NoError(t, err)

	theoryKey := entities.CourseKey{Code: "CS101", Type: entities.Theory}
	practicalKey := entities.CourseKey{Code: "CS101", Type: entities.Practical}

	require.Contains(t, ctx.Courses[theoryKey].QualifiedInstructors, "I1")
	require.Equal(t, entities.RoomPractical, ctx.Courses[practicalKey].RequiredRoomType)
	require.Contains(t, ctx.Courses[theoryKey].EnrolledGroups, "G1")
	require.Equal(t, entities.RoomLecture, ctx.Rooms["R1"].Type)
}

func TestBuildContextHonorsBusyBlocks(t *testing.T) {
	cfg := &ScheduleConfigDTO{
		QuantumMinutes: 60,
		Days: []DayWindowDTO{
			{Day: 0, Label: "Monday", Start: "08:00", End: "12:00"},
		},
	}
	ts, err := BuildTimeSystem(cfg)
	require.NoError(t, err)

	instructors := []InstructorDTO{
		{ID: "I1", BusyBlocks: []BusyBlockDTO{{Day: 0, Blocks: []int{0}}}},
	}
	ctx, err := BuildContext(ts, nil, nil, instructors, nil)
	require.NoError(t, err)

	require.False(t, ctx.Instructors["I1"].IsAvailable(0))
	require.True(t, ctx.Instructors["I1"].IsAvailable(1))
}
