// Package qts implements the Quantum Time System: a dense, contiguous index over
// operational hours only. Quanta outside any configured day's operational window simply do
// not exist in the index — there is no wasted capacity to reason about downstream.
package qts

import (
	"fmt"
	"sort"

	"github.com/luccasniccolas177/uctp-scheduler/internal/apperrors"
)

// Day is an operational day in the weekly grid (Monday=0 .. Sunday=6), kept as a plain int so
// callers can size arrays by day without an intermediate lookup.
type Day int

// DaySpec describes one operational day: its label and the wall-clock window cut into
// fixed-width quanta.
type DaySpec struct {
	Day          Day
	Label        string // e.g. "Monday"
	StartMinutes int    // minutes since midnight, e.g. 8*60+30 for 08:30
	EndMinutes   int    // exclusive
}

// QuantumTimeSystem owns the ordered list of operational days and the per-day contiguous
// quantum range, and is the only place that converts between wall-clock and quantum index.
type QuantumTimeSystem struct {
	quantumMinutes int
	days           []DaySpec
	dayOffset      []int // cumulative quantum count before day i
	dayQuanta      []int // quantum count for day i
	total          int
}

// New builds a QuantumTimeSystem from an ordered list of day specs and a fixed quantum
// duration. Days must already be in the order they occur in the week; duplicate Day values
// are rejected.
func New(quantumMinutes int, days []DaySpec) (*QuantumTimeSystem, error) {
	if quantumMinutes <= 0 {
		return nil, apperrors.Invalid("quantum duration must be positive, got %d", quantumMinutes)
	}
	if len(days) == 0 {
		return nil, apperrors.Invalid("at least one operational day is required")
	}

	seen := make(map[Day]bool, len(days))
	qtsys := &QuantumTimeSystem{
		quantumMinutes: quantumMinutes,
		days:           make([]DaySpec, len(days)),
		dayOffset:      make([]int, len(days)),
		dayQuanta:      make([]int, len(days)),
	}

	offset := 0
	for i, d := range days {
		if seen[d.Day] {
			return nil, apperrors.Invalid("duplicate operational day %d", d.Day)
		}
		seen[d.Day] = true

		span := d.EndMinutes - d.StartMinutes
		if span <= 0 {
			return nil, apperrors.Invalid("day %d has non-positive window [%d,%d)", d.Day, d.StartMinutes, d.EndMinutes)
		}
		if span%quantumMinutes != 0 {
			return nil, apperrors.Invalid("day %d window %d minutes is not a multiple of quantum %d", d.Day, span, quantumMinutes)
		}

		n := span / quantumMinutes
		qtsys.days[i] = d
		qtsys.dayOffset[i] = offset
		qtsys.dayQuanta[i] = n
		offset += n
	}

	qtsys.total = offset
	return qtsys, nil
}

// Total returns T, the dense quantum count [0, T).
func (q *QuantumTimeSystem) Total() int { return q.total }

// QuantumDuration returns the fixed per-quantum duration in minutes.
func (q *QuantumTimeSystem) QuantumDuration() int { return q.quantumMinutes }

// Days returns the ordered operational day specs.
func (q *QuantumTimeSystem) Days() []DaySpec {
	out := make([]DaySpec, len(q.days))
	copy(out, q.days)
	return out
}

// QuantumToDay returns the operational day a quantum belongs to, in O(log days) via the
// cumulative offset table.
func (q *QuantumTimeSystem) QuantumToDay(quantum int) (Day, error) {
	if quantum < 0 || quantum >= q.total {
		return 0, apperrors.Invalid("quantum %d out of range [0,%d)", quantum, q.total)
	}
	idx := sort.Search(len(q.dayOffset), func(i int) bool {
		return q.dayOffset[i]+q.dayQuanta[i] > quantum
	})
	return q.days[idx].Day, nil
}

// dayIndex returns the internal slice index of a Day, or -1.
func (q *QuantumTimeSystem) dayIndex(day Day) int {
	for i, d := range q.days {
		if d.Day == day {
			return i
		}
	}
	return -1
}

// OperationalQuantaFor returns the contiguous [start,end) quantum range for a day.
func (q *QuantumTimeSystem) OperationalQuantaFor(day Day) (start, end int, err error) {
	idx := q.dayIndex(day)
	if idx < 0 {
		return 0, 0, apperrors.Invalid("day %d is not operational", day)
	}
	return q.dayOffset[idx], q.dayOffset[idx] + q.dayQuanta[idx], nil
}

// WallToQuantum converts a day + "HH:MM" wall-clock time into a quantum index, failing with
// InvalidInput when the time falls outside that day's operational window or isn't aligned to
// a quantum boundary.
func (q *QuantumTimeSystem) WallToQuantum(day Day, hhmm string) (int, error) {
	idx := q.dayIndex(day)
	if idx < 0 {
		return 0, apperrors.Invalid("day %d is not operational", day)
	}
	minutes, err := parseHHMM(hhmm)
	if err != nil {
		return 0, err
	}
	spec := q.days[idx]
	if minutes < spec.StartMinutes || minutes >= spec.EndMinutes {
		return 0, apperrors.Invalid("time %s is outside day %d's operational window", hhmm, day)
	}
	delta := minutes - spec.StartMinutes
	if delta%q.quantumMinutes != 0 {
		return 0, apperrors.Invalid("time %s does not align to a %d-minute quantum boundary", hhmm, q.quantumMinutes)
	}
	return q.dayOffset[idx] + delta/q.quantumMinutes, nil
}

// QuantumToWall returns the "HH:MM" start time of a quantum, and the day it belongs to.
func (q *QuantumTimeSystem) QuantumToWall(quantum int) (day Day, hhmm string, err error) {
	day, err = q.QuantumToDay(quantum)
	if err != nil {
		return 0, "", err
	}
	idx := q.dayIndex(day)
	offsetInDay := quantum - q.dayOffset[idx]
	minutes := q.days[idx].StartMinutes + offsetInDay*q.quantumMinutes
	return day, formatHHMM(minutes), nil
}

func parseHHMM(s string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, apperrors.Wrap(apperrors.InvalidInput, fmt.Sprintf("malformed time %q", s), err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, apperrors.Invalid("malformed time %q", s)
	}
	return h*60 + m, nil
}

func formatHHMM(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
