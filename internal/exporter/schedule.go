// Package exporter turns an evolved individual into the external artifacts a caller wants: a
// JSON schedule dump, a printable calendar PDF, and Prometheus metrics. Grounded in the
// teacher's internal/exporter/json_exporter.go (export DTOs, generated_at timestamp, per-day
// block grouping) and noah-isme's prometheus/client_golang and gofpdf dependencies. Nothing in
// internal/ga, internal/fitness, or any other core package imports this package — it is wired
// only from cmd/scheduler, per §6.
package exporter

import (
	"encoding/json"
	"os"
	"sort"
	"time"

	"github.com/luccasniccolas177/uctp-scheduler/internal/chromosome"
	"github.com/luccasniccolas177/uctp-scheduler/internal/fitness"
	"github.com/luccasniccolas177/uctp-scheduler/internal/schedcontext"
)

// ScheduleExport is the top-level JSON document written by WriteScheduleJSON.
type ScheduleExport struct {
	GeneratedAt string          `json:"generated_at"`
	Summary     ScheduleSummary `json:"summary"`
	Sessions    []SessionExport `json:"sessions"`
}

// ScheduleSummary reports the fitness tuple and per-constraint breakdown of the exported
// individual, alongside simple cardinality counts.
type ScheduleSummary struct {
	TotalSessions int                `json:"total_sessions"`
	HardCount     int                `json:"hard_violations"`
	SoftPenalty   float64            `json:"soft_penalty"`
	HardBreakdown map[string]int     `json:"hard_breakdown"`
	SoftBreakdown map[string]float64 `json:"soft_breakdown"`
}

// SessionExport is one gene rendered with wall-clock times instead of quantum indices.
type SessionExport struct {
	CourseCode   string   `json:"course_code"`
	CourseType   string   `json:"course_type"`
	GroupIDs     []string `json:"group_ids"`
	InstructorID string   `json:"instructor_id"`
	RoomID       string   `json:"room_id"`
	Day          string   `json:"day"`
	TimeSlots    []string `json:"time_slots"`
}

// WriteScheduleJSON renders ind's genes and breakdown to filename as indented JSON.
func WriteScheduleJSON(ind *chromosome.Individual, ctx *schedcontext.Context, breakdown fitness.Breakdown, filename string) error {
	export := ScheduleExport{
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Summary: ScheduleSummary{
			TotalSessions: len(ind.Genes),
			HardCount:     ind.Fitness.Hard,
			SoftPenalty:   ind.Fitness.Soft,
			HardBreakdown: breakdown.Hard,
			SoftBreakdown: breakdown.Soft,
		},
		Sessions: buildSessionList(ind, ctx),
	}

	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0o644)
}

func buildSessionList(ind *chromosome.Individual, ctx *schedcontext.Context) []SessionExport {
	dayLabels := make(map[int]string)
	for _, d := range ctx.QTS.Days() {
		dayLabels[int(d.Day)] = d.Label
	}

	result := make([]SessionExport, 0, len(ind.Genes))
	for _, g := range ind.Genes {
		if g.HasUnassignedQuanta() {
			continue
		}
		dayLabel := ""
		slots := make([]string, 0, len(g.Quanta))
		for _, q := range g.Quanta {
			day, hhmm, err := ctx.QTS.QuantumToWall(q)
			if err != nil {
				continue
			}
			if dayLabel == "" {
				dayLabel = dayLabels[int(day)]
			}
			slots = append(slots, hhmm)
		}
		result = append(result, SessionExport{
			CourseCode:   g.CourseKey.Code,
			CourseType:   string(g.CourseKey.Type),
			GroupIDs:     append([]string(nil), g.GroupIDs...),
			InstructorID: g.InstructorID,
			RoomID:       g.RoomID,
			Day:          dayLabel,
			TimeSlots:    slots,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].CourseCode != result[j].CourseCode {
			return result[i].CourseCode < result[j].CourseCode
		}
		return result[i].CourseType < result[j].CourseType
	})
	return result
}
