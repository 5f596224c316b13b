// Package constraints implements the two parallel registries (hard, soft) over decoded
// sessions, grounded in the teacher's RoomConstraints whitelist approach generalized from a
// course-by-course whitelist to a fixed room-type compatibility table.
package constraints

import (
	"strings"

	"github.com/luccasniccolas177/uctp-scheduler/internal/entities"
)

// roomCompatibility maps a course's required room type to the set of room types that may host
// it. A lecture may run in a classroom, auditorium or seminar room; a practical session needs a
// lab-class room. This resolves the spec's room-type Open Question.
var roomCompatibility = map[entities.RoomType]map[entities.RoomType]bool{
	entities.RoomLecture: {
		entities.RoomLecture: true,
	},
	entities.RoomPractical: {
		entities.RoomPractical: true,
	},
}

// RoomTypeAliases lists the broader set of concrete room-type labels each abstract RoomType
// accepts, named here so loaders can map raw input labels (e.g. "auditorium", "lab") onto the
// two RoomType values without losing the distinction constraints care about.
var RoomTypeAliases = map[entities.RoomType][]string{
	entities.RoomLecture:   {"classroom", "lecture", "auditorium", "seminar"},
	entities.RoomPractical: {"practical", "lab", "laboratory", "computer_lab"},
}

// RoomTypeMatches reports whether a room of type actual may host a course requiring required.
func RoomTypeMatches(required, actual entities.RoomType) bool {
	return roomCompatibility[required][actual]
}

// NormalizeRoomType maps a raw, lowercased input label (e.g. "auditorium", "computer_lab") onto
// the two internal RoomType values via RoomTypeAliases, falling back to exact match against
// RoomLecture/RoomPractical's own string value when the label isn't a known alias — per §3,
// unknown room-type strings are normalized to lowercase at load time and matched exactly.
func NormalizeRoomType(raw string) entities.RoomType {
	lower := strings.ToLower(strings.TrimSpace(raw))
	for canonical, aliases := range RoomTypeAliases {
		for _, alias := range aliases {
			if alias == lower {
				return canonical
			}
		}
	}
	return entities.RoomType(lower)
}
