package sheets

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"tutti/pkg/tutti/layout"
)

// Column widths in character units, roughly matching the 200/150/300 px
// columns of the original coordinator sheets.
const (
	labelColWidth   = 30
	barColWidth     = 12
	commentColWidth = 42
)

// ColWidth assigns a width to an inclusive zero-based column range.
type ColWidth struct {
	First, Last int
	Width       float64
}

// Sheet is one sheet to write: a grid plus its structural parameters.
type Sheet struct {
	// Name is the sheet name.
	Name string
	// Grid holds cell values by row.
	Grid [][]string
	// RowHeights maps zero-based row index to row height.
	RowHeights map[int]float64
	// FreezeRows and FreezeCols freeze the leading rows and columns.
	FreezeRows int
	FreezeCols int
	// ColWidths assigns column widths.
	ColWidths []ColWidth
}

// FromPlan builds the sheet for a piece grid, applying the plan's notes row
// height, column widths, and frozen header panes.
func FromPlan(plan layout.Plan, grid [][]string) Sheet {
	return Sheet{
		Name: plan.Title,
		Grid: grid,
		RowHeights: map[int]float64{
			plan.NotesRow(): float64(plan.NotesRowHeight),
		},
		FreezeRows: plan.HeaderRows(),
		FreezeCols: 1,
		ColWidths: []ColWidth{
			{First: 0, Last: 0, Width: labelColWidth},
			{First: 1, Last: plan.BarCount, Width: barColWidth},
			{First: plan.CommentCol(), Last: plan.CommentCol(), Width: commentColWidth},
		},
	}
}

// WriteWorkbook writes the sheets to an xlsx workbook at path, creating
// parent directories as needed. At least one sheet is required.
func WriteWorkbook(path string, workbookSheets []Sheet) error {
	if len(workbookSheets) == 0 {
		return fmt.Errorf("workbook %s: no sheets to write", path)
	}

	f := excelize.NewFile()
	defer f.Close()

	for i, sheet := range workbookSheets {
		if i == 0 {
			// rename the default sheet instead of creating a new one
			if err := f.SetSheetName("Sheet1", sheet.Name); err != nil {
				return fmt.Errorf("workbook %s: %w", path, err)
			}
		} else {
			if _, err := f.NewSheet(sheet.Name); err != nil {
				return fmt.Errorf("workbook %s: %w", path, err)
			}
		}
		if err := writeSheet(f, sheet); err != nil {
			return fmt.Errorf("workbook %s, sheet %q: %w", path, sheet.Name, err)
		}
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("workbook %s: %w", path, err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("workbook %s: %w", path, err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet Sheet) error {
	for r, row := range sheet.Grid {
		for c, value := range row {
			if value == "" {
				continue
			}
			cellName, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet.Name, cellName, value); err != nil {
				return err
			}
		}
	}

	for r, height := range sheet.RowHeights {
		if err := f.SetRowHeight(sheet.Name, r+1, height); err != nil {
			return err
		}
	}

	for _, cw := range sheet.ColWidths {
		first, err := excelize.ColumnNumberToName(cw.First + 1)
		if err != nil {
			return err
		}
		last, err := excelize.ColumnNumberToName(cw.Last + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet.Name, first, last, cw.Width); err != nil {
			return err
		}
	}

	if sheet.FreezeRows > 0 || sheet.FreezeCols > 0 {
		topLeft, err := excelize.CoordinatesToCellName(sheet.FreezeCols+1, sheet.FreezeRows+1)
		if err != nil {
			return err
		}
		err = f.SetPanes(sheet.Name, &excelize.Panes{
			Freeze:      true,
			XSplit:      sheet.FreezeCols,
			YSplit:      sheet.FreezeRows,
			TopLeftCell: topLeft,
			ActivePane:  "bottomRight",
		})
		if err != nil {
			return err
		}
	}

	return nil
}
