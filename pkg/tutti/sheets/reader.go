// Package sheets is the spreadsheet transport: it writes codec grids to
// local xlsx workbooks, reads them back, and persists the spreadsheets
// index. It is agnostic to what the grids mean.
package sheets

import (
	"github.com/xuri/excelize/v2"
)

// NamedGrid is one sheet's rectangular cell values.
type NamedGrid struct {
	// Name is the sheet name (a piece title).
	Name string
	// Grid holds cell values by row. The underlying reader trims trailing
	// empty cells, so rows may be ragged.
	Grid [][]string
}

// ReadWorkbook opens the workbook at path and returns every sheet's grid
// in workbook sheet order.
func ReadWorkbook(path string) ([]NamedGrid, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var grids []NamedGrid
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, err
		}
		grids = append(grids, NamedGrid{Name: name, Grid: rows})
	}
	return grids, nil
}
