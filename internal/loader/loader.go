package loader

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/luccasniccolas177/uctp-scheduler/internal/apperrors"
)

var validate = validator.New()

// LoadScheduleConfig reads the weekly operational-hours grid from path.
func LoadScheduleConfig(path string) (*ScheduleConfigDTO, error) {
	var cfg ScheduleConfigDTO
	if err := readJSON(path, &cfg); err != nil {
		return nil, err
	}
	if err := validate.Struct(&cfg); err != nil {
		return nil, apperrors.Invalid("invalid schedule config in %s: %v", path, err)
	}
	return &cfg, nil
}

// LoadCourses reads the course catalog from path.
func LoadCourses(path string) ([]CourseDTO, error) {
	var courses []CourseDTO
	if err := readJSON(path, &courses); err != nil {
		return nil, err
	}
	for i := range courses {
		if err := validate.Struct(&courses[i]); err != nil {
			return nil, apperrors.Invalid("invalid course entry %d in %s: %v", i, path, err)
		}
	}
	return courses, nil
}

// LoadGroups reads the student groups (and subgroups) from path.
func LoadGroups(path string) ([]GroupDTO, error) {
	var groups []GroupDTO
	if err := readJSON(path, &groups); err != nil {
		return nil, err
	}
	for i := range groups {
		if err := validate.Struct(&groups[i]); err != nil {
			return nil, apperrors.Invalid("invalid group entry %d in %s: %v", i, path, err)
		}
	}
	return groups, nil
}

// LoadInstructors reads instructors from path.
func LoadInstructors(path string) ([]InstructorDTO, error) {
	var instructors []InstructorDTO
	if err := readJSON(path, &instructors); err != nil {
		return nil, err
	}
	for i := range instructors {
		if err := validate.Struct(&instructors[i]); err != nil {
			return nil, apperrors.Invalid("invalid instructor entry %d in %s: %v", i, path, err)
		}
	}
	return instructors, nil
}

// LoadRooms reads rooms.csv: header row, then code,capacity,type per row. A blank type column
// falls back to inferring RoomPractical from a "LAB" code prefix, the teacher's legacy
// convention, so existing fixtures that never carried a type column still load.
func LoadRooms(path string) ([]RoomDTO, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, apperrors.Invalid("opening rooms file %s: %v", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, apperrors.Invalid("parsing rooms CSV %s: %v", path, err)
	}

	var rooms []RoomDTO
	for i, record := range records {
		if i == 0 {
			continue // header
		}
		if len(record) < 2 {
			continue
		}
		capacity, err := strconv.Atoi(strings.TrimSpace(record[1]))
		if err != nil {
			return nil, apperrors.Invalid("room row %d in %s: non-numeric capacity %q", i, path, record[1])
		}
		roomType := ""
		if len(record) >= 3 {
			roomType = strings.ToLower(strings.TrimSpace(record[2]))
		}
		if roomType == "" && strings.HasPrefix(strings.ToUpper(record[0]), "LAB") {
			roomType = "practical"
		}
		rooms = append(rooms, RoomDTO{
			Code:     strings.TrimSpace(record[0]),
			Capacity: capacity,
			Type:     roomType,
		})
	}
	return rooms, nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return apperrors.Invalid("reading %s: %v", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return apperrors.Invalid("parsing JSON in %s: %v", path, err)
	}
	return nil
}
