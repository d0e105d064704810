package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"tutti/pkg/tutti/codec"
	"tutti/pkg/tutti/layout"
	"tutti/pkg/tutti/models"
	"tutti/pkg/tutti/sheets"
)

func newCreateSheetsCmd() *cobra.Command {
	var replace bool

	cmd := &cobra.Command{
		Use:   "create-sheets [emails...]",
		Short: "Create volunteer workbooks from the definitions",
		Long: `Create one workbook per volunteer, with one sheet per assigned piece,
and record the workbook handles in the spreadsheets index. With no emails
given, creates workbooks for all volunteers.`,
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

			targets := defs.Volunteers
			if len(args) > 0 {
				var filtered []models.Volunteer
				for _, email := range args {
					v, ok := defs.Volunteer(email)
					if !ok {
						logger.Warnw("volunteer not found in definitions", "email", email)
						continue
					}
					filtered = append(filtered, v)
				}
				targets = filtered
			}

			created := 0
			for _, volunteer := range targets {
				if _, ok := index.Handle(volunteer.Email); ok && !replace {
					logger.Infow("workbook already in index, skipping",
						"email", volunteer.Email)
					continue
				}
				if len(volunteer.Pieces) == 0 {
					logger.Warnw("volunteer has no pieces assigned",
						"email", volunteer.Email)
					continue
				}

				var workbookSheets []sheets.Sheet
				for _, title := range volunteer.Pieces {
					piece, _ := defs.Piece(title)
					plan := layout.Synthesize(defs.Template, piece)
					grid := codec.Render(plan, codec.Blank(plan))
					workbookSheets = append(workbookSheets, sheets.FromPlan(plan, grid))
				}

				path := filepath.Join(settings.Output.WorkbooksDir, volunteer.Email+".xlsx")
				if err := sheets.WriteWorkbook(path, workbookSheets); err != nil {
					return err
				}
				index.Set(volunteer.Email, path)
				created++
				logger.Infow("created workbook",
					"email", volunteer.Email, "path", path,
					"pieces", len(volunteer.Pieces))
			}

			if err := sheets.SaveIndex(settings.Output.SpreadsheetsIndex, index); err != nil {
				return err
			}
			logger.Infow("done", "created", created)
			return nil
		},
	}

	cmd.Flags().BoolVar(&replace, "replace", false,
		"Recreate workbooks for volunteers already in the index")
	return cmd
}
