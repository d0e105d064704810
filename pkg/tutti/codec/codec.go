// Package codec maps between rectangular grids of cell values and the
// canonical piece records, in both directions, driven by a layout plan.
package codec

import (
	"fmt"
	"strconv"

	"tutti/pkg/tutti"
	"tutti/pkg/tutti/layout"
	"tutti/pkg/tutti/models"
)

// barLabel is the label-column text of the bar number row.
const barLabel = "Bar"

// Render produces the rectangular grid for a plan and its piece data.
// The grid is positioned exactly per the plan: header rows first, then the
// bar number and bar value rows, then the notes row, with the comment
// column present on every row.
func Render(plan layout.Plan, data models.PieceData) [][]string {
	grid := make([][]string, plan.Rows())
	for r := range grid {
		grid[r] = make([]string, plan.Columns())
	}

	for i, f := range plan.Fields {
		row := grid[i]
		row[0] = f.Label
		if fv, ok := data.Field(f.Key); ok {
			row[1] = fv.Value
			row[plan.CommentCol()] = fv.Comment
		}
	}

	numbers := grid[plan.BarNumberRow()]
	numbers[0] = barLabel
	for j := 1; j <= plan.BarCount; j++ {
		numbers[j] = strconv.Itoa(j)
	}
	numbers[plan.CommentCol()] = plan.CommentsLabel

	values := grid[plan.BarValueRow()]
	for j := 1; j <= plan.BarCount && j <= len(data.Bars.Values); j++ {
		values[j] = data.Bars.Values[j-1]
	}
	values[plan.CommentCol()] = data.Bars.Comment

	notes := grid[plan.NotesRow()]
	notes[0] = plan.NotesLabel
	notes[1] = data.Notes
	notes[plan.CommentCol()] = data.NotesComment

	return grid
}

// Parse extracts the canonical piece record from a grid conforming to the
// plan. A grid with fewer rows than the plan requires yields a
// StructuralMismatchError; short rows are tolerated because the transport
// trims trailing empty cells.
func Parse(plan layout.Plan, grid [][]string) (models.PieceData, error) {
	if len(grid) < plan.Rows() {
		return models.PieceData{}, &tutti.StructuralMismatchError{
			Sheet:  plan.Title,
			Reason: fmt.Sprintf("expected at least %d rows, got %d", plan.Rows(), len(grid)),
		}
	}

	data := models.PieceData{
		Title:  plan.Title,
		Fields: make([]models.FieldValue, len(plan.Fields)),
	}

	for i, f := range plan.Fields {
		data.Fields[i] = models.FieldValue{
			Key:     f.Key,
			Value:   cell(grid, i, 1),
			Comment: cell(grid, i, plan.CommentCol()),
		}
	}

	data.Bars.Values = make([]string, plan.BarCount)
	for j := 1; j <= plan.BarCount; j++ {
		data.Bars.Values[j-1] = cell(grid, plan.BarValueRow(), j)
	}
	data.Bars.Comment = cell(grid, plan.BarValueRow(), plan.CommentCol())

	data.Notes = cell(grid, plan.NotesRow(), 1)
	data.NotesComment = cell(grid, plan.NotesRow(), plan.CommentCol())

	return data, nil
}

// Blank returns an empty piece record consistent with the plan, used to
// render fresh volunteer sheets.
func Blank(plan layout.Plan) models.PieceData {
	data := models.PieceData{
		Title:  plan.Title,
		Fields: make([]models.FieldValue, len(plan.Fields)),
	}
	for i, f := range plan.Fields {
		data.Fields[i] = models.FieldValue{Key: f.Key}
	}
	data.Bars.Values = make([]string, plan.BarCount)
	return data
}

// cell returns the grid value at (row, col), or the empty string when the
// row is shorter than col.
func cell(grid [][]string, row, col int) string {
	if row >= len(grid) || col >= len(grid[row]) {
		return ""
	}
	return grid[row][col]
}
