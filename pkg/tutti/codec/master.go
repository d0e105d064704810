package codec

import (
	"strconv"
	"strings"

	"tutti/pkg/tutti/layout"
	"tutti/pkg/tutti/models"
)

const (
	// volunteerHeader labels the email header row of a master sheet.
	volunteerHeader = "Volunteer"
	// summaryHeader labels the coordinator's summary column.
	summaryHeader = "SUMMARY"
)

// MasterColumn is one volunteer's record on a master sheet.
type MasterColumn struct {
	Email string
	Data  models.PieceData
}

// RenderMaster produces the aggregate grid for one piece on the master
// workbook: the label column, one column per volunteer, an empty summary
// column for the coordinator, and a trailing notes column collecting each
// volunteer's comments as "email: comment" lines.
//
// Master geometry differs from the per-volunteer plan: volunteers are
// columns, so bars run down the label column instead of across.
func RenderMaster(plan layout.Plan, cols []MasterColumn) [][]string {
	width := len(cols) + 3 // label, volunteers, summary, notes
	summaryCol := len(cols) + 1
	notesCol := len(cols) + 2

	rows := 1 + plan.HeaderRows() + plan.BarCount + 2
	grid := make([][]string, rows)
	for r := range grid {
		grid[r] = make([]string, width)
	}

	header := grid[0]
	header[0] = volunteerHeader
	for i, col := range cols {
		header[1+i] = col.Email
	}
	header[summaryCol] = summaryHeader
	header[notesCol] = plan.NotesLabel

	for i, f := range plan.Fields {
		row := grid[1+i]
		row[0] = f.Label
		var notes []string
		for j, col := range cols {
			fv, ok := col.Data.Field(f.Key)
			if !ok {
				continue
			}
			row[1+j] = fv.Value
			if fv.Comment != "" {
				notes = append(notes, col.Email+": "+fv.Comment)
			}
		}
		row[notesCol] = strings.Join(notes, "\n")
	}

	barsStart := 1 + plan.HeaderRows()
	for b := 0; b < plan.BarCount; b++ {
		row := grid[barsStart+b]
		row[0] = strconv.Itoa(b + 1)
		for j, col := range cols {
			if b < len(col.Data.Bars.Values) {
				row[1+j] = col.Data.Bars.Values[b]
			}
		}
	}

	comments := grid[barsStart+plan.BarCount]
	comments[0] = plan.CommentsLabel
	for j, col := range cols {
		comments[1+j] = col.Data.Bars.Comment
	}

	notes := grid[barsStart+plan.BarCount+1]
	notes[0] = plan.NotesLabel
	for j, col := range cols {
		notes[1+j] = col.Data.Notes
	}

	return grid
}
