package exporter

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/luccasniccolas177/uctp-scheduler/internal/chromosome"
	"github.com/luccasniccolas177/uctp-scheduler/internal/entities"
	"github.com/luccasniccolas177/uctp-scheduler/internal/fitness"
	"github.com/luccasniccolas177/uctp-scheduler/internal/qts"
	"github.com/luccasniccolas177/uctp-scheduler/internal/schedcontext"
)

func buildExportContext(t *testing.T) *schedcontext.Context {
	t.Helper()
	ts, err := qts.New(60, []qts.DaySpec{
		{Day: 0, Label: "Monday", StartMinutes: 8 * 60, EndMinutes: 11 * 60},
	})
	if err != nil {
		t.Fatalf("building qts: %v", err)
	}
	return schedcontext.New(ts, nil, nil, nil, nil)
}

func buildExportIndividual() *chromosome.Individual {
	key := entities.CourseKey{Code: "CS101", Type: entities.Theory}
	return &chromosome.Individual{
		Fitness: chromosome.Fitness{Hard: 0, Soft: 1.5, Valid: true},
		Genes: []*chromosome.SessionGene{
			{CourseKey: key, GroupIDs: []string{"G1"}, InstructorID: "I1", RoomID: "R1", Quanta: []int{0, 1}},
		},
	}
}

func TestWriteScheduleJSONProducesValidDocument(t *testing.T) {
	ctx := buildExportContext(t)
	ind := buildExportIndividual()
	breakdown := fitness.Breakdown{Hard: map[string]int{"no_group_overlap": 0}, Soft: map[string]float64{"group_gaps_penalty": 1.5}}

	path := filepath.Join(t.TempDir(), "schedule.json")
	if err := WriteScheduleJSON(ind, ctx, breakdown, path); err != nil {
		t.Fatalf("WriteScheduleJSON returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading exported file: %v", err)
	}
	var export ScheduleExport
	if err := json.Unmarshal(data, &export); err != nil {
		t.Fatalf("exported file is not valid JSON: %v", err)
	}
	if len(export.Sessions) != 1 {
		t.Fatalf("expected 1 exported session, got %d", len(export.Sessions))
	}
	if export.Sessions[0].CourseCode != "CS101" {
		t.Fatalf("expected course code CS101, got %q", export.Sessions[0].CourseCode)
	}
}

func TestWriteCalendarPDFProducesNonEmptyFile(t *testing.T) {
	ctx := buildExportContext(t)
	ind := buildExportIndividual()

	path := filepath.Join(t.TempDir(), "calendar.pdf")
	if err := WriteCalendarPDF(ind, ctx, path); err != nil {
		t.Fatalf("WriteCalendarPDF returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat exported PDF: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("expected a non-empty PDF file")
	}
}

func TestMetricsObserveUpdatesGauges(t *testing.T) {
	m := NewMetrics()
	m.Observe(3, 2, 4.5, 0.25, 7)
	if m.Handler() == nil {
		t.Fatal("expected a non-nil metrics handler")
	}
}
