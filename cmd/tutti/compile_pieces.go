package main

import (
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"tutti/pkg/tutti/codec"
	"tutti/pkg/tutti/config"
	"tutti/pkg/tutti/layout"
	"tutti/pkg/tutti/models"
	"tutti/pkg/tutti/sheets"
)

// masterWorkbookName is the file name of the compiled master workbook.
const masterWorkbookName = "master.xlsx"

func newCompilePiecesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compile-pieces",
		Short: "Compile the piece summaries into the master workbook",
		Long: `Build the coordinator-facing master workbook from the piece summary
files: one sheet per piece, one column per volunteer plus a summary column,
with a trailing notes column. The workbook handle is stored under "MASTER"
in the spreadsheets index.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, result, err := loadModel()
			if err != nil {
				return err
			}
			defs := result.Definitions

			index, err := sheets.LoadIndex(settings.Output.SpreadsheetsIndex)
			if err != nil {
				return err
			}

			var workbookSheets []sheets.Sheet
			for _, piece := range defs.Pieces {
				path := settings.PieceDataFile(piece.Title)
				var summary models.PieceSummary
				if err := config.ReadDataFile(path, &summary); err != nil {
					if settings.Strict {
						return err
					}
					logger.Warnw("failed to read piece summary, skipping",
						"title", piece.Title, "path", path, "error", err)
					continue
				}

				plan := layout.Synthesize(defs.Template, piece)
				workbookSheets = append(workbookSheets, masterSheet(plan, summary))
			}

			if len(workbookSheets) == 0 {
				logger.Info("no piece summaries to compile")
				return nil
			}

			path := filepath.Join(settings.Output.WorkbooksDir, masterWorkbookName)
			if err := sheets.WriteWorkbook(path, workbookSheets); err != nil {
				return err
			}
			index.Set(models.MasterKey, path)
			if err := sheets.SaveIndex(settings.Output.SpreadsheetsIndex, index); err != nil {
				return err
			}

			logger.Infow("compiled master workbook",
				"path", path, "pieces", len(workbookSheets))
			return nil
		},
	}
}

// masterSheet renders one piece's aggregate sheet for the master workbook.
func masterSheet(plan layout.Plan, summary models.PieceSummary) sheets.Sheet {
	emails := make([]string, 0, len(summary.Volunteers))
	for email := range summary.Volunteers {
		emails = append(emails, email)
	}
	sort.Strings(emails)

	cols := make([]codec.MasterColumn, len(emails))
	for i, email := range emails {
		cols[i] = codec.MasterColumn{Email: email, Data: summary.Volunteers[email]}
	}

	grid := codec.RenderMaster(plan, cols)
	notesCol := len(cols) + 2
	return sheets.Sheet{
		Name: plan.Title,
		Grid: grid,
		RowHeights: map[int]float64{
			len(grid) - 1: float64(plan.NotesRowHeight),
		},
		FreezeRows: 1,
		FreezeCols: 1,
		ColWidths: []sheets.ColWidth{
			{First: 0, Last: 0, Width: 30},
			{First: 1, Last: notesCol - 1, Width: 21},
			{First: notesCol, Last: notesCol, Width: 42},
		},
	}
}
