package exporter

import (
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/luccasniccolas177/uctp-scheduler/internal/chromosome"
	"github.com/luccasniccolas177/uctp-scheduler/internal/schedcontext"
)

// WriteCalendarPDF renders ind's schedule as a weekly grid, one column per operational day and
// one row per quantum, grounded in the teacher's day/block calendar layout but drawn directly
// with gofpdf rather than assembled from a fixed timeSlots table, since quantum width and day
// count are both configurable here.
func WriteCalendarPDF(ind *chromosome.Individual, ctx *schedcontext.Context, filename string) error {
	days := ctx.QTS.Days()
	if len(days) == 0 {
		return fmt.Errorf("calendar export requires at least one operational day")
	}

	maxRows := 0
	for _, d := range days {
		start, end, err := ctx.QTS.OperationalQuantaFor(d.Day)
		if err != nil {
			continue
		}
		if rows := end - start; rows > maxRows {
			maxRows = rows
		}
	}

	cellByQuantum := make(map[int]string)
	for _, g := range ind.Genes {
		if g.HasUnassignedQuanta() {
			continue
		}
		label := fmt.Sprintf("%s (%s)", g.CourseKey.Code, g.RoomID)
		for _, q := range g.Quanta {
			cellByQuantum[q] = label
		}
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 10)

	marginLeft, marginTop := 10.0, 15.0
	colWidth := (280.0 - marginLeft) / float64(len(days)+1)
	rowHeight := 8.0

	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(colWidth, rowHeight, "Time", "1", 0, "C", false, 0, "")
	for _, d := range days {
		pdf.CellFormat(colWidth, rowHeight, d.Label, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 8)
	for row := 0; row < maxRows; row++ {
		pdf.SetX(marginLeft)
		pdf.CellFormat(colWidth, rowHeight, fmt.Sprintf("#%d", row), "1", 0, "C", false, 0, "")
		for _, d := range days {
			start, _, err := ctx.QTS.OperationalQuantaFor(d.Day)
			text := ""
			if err == nil {
				text = cellByQuantum[start+row]
			}
			pdf.CellFormat(colWidth, rowHeight, text, "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)
	}

	return pdf.OutputFileAndClose(filename)
}
