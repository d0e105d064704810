package main

import (
	"github.com/spf13/cobra"

	"tutti/pkg/tutti/codec"
	"tutti/pkg/tutti/config"
	"tutti/pkg/tutti/layout"
	"tutti/pkg/tutti/models"
	"tutti/pkg/tutti/sheets"
)

func newVolunteerSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "volunteer-summary [emails...]",
		Short: "Export volunteer JSON data files from their workbooks",
		Long: `Read each volunteer's workbook from the spreadsheets index, parse every
piece sheet, and write the harvested records to the volunteer data path.
With no emails given, exports data for all volunteers in the index.`,
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

			emails := index.Volunteers()
			if len(args) > 0 {
				var filtered []string
				for _, email := range args {
					if _, ok := index.Handle(email); !ok || email == models.MasterKey {
						logger.Warnw("volunteer not found in spreadsheets index",
							"email", email)
						continue
					}
					filtered = append(filtered, email)
				}
				emails = filtered
			}
			if len(emails) == 0 {
				logger.Info("no volunteers to export data for")
				return nil
			}

			plans := make(map[string]layout.Plan, len(defs.Pieces))
			for _, piece := range defs.Pieces {
				plans[piece.Title] = layout.Synthesize(defs.Template, piece)
			}

			exported := 0
			for _, email := range emails {
				handle, _ := index.Handle(email)
				logger.Debugw("working on volunteer", "email", email, "handle", handle)

				grids, err := sheets.ReadWorkbook(handle)
				if err != nil {
					if settings.Strict {
						return err
					}
					logger.Warnw("failed to read workbook",
						"email", email, "handle", handle, "error", err)
					continue
				}

				data := models.VolunteerData{Email: email}
				for _, grid := range grids {
					plan, ok := plans[grid.Name]
					if !ok {
						logger.Warnw("sheet does not match any known piece, skipping",
							"email", email, "sheet", grid.Name)
						continue
					}
					record, err := codec.Parse(plan, grid.Grid)
					if err != nil {
						if settings.Strict {
							return err
						}
						logger.Warnw("failed to parse sheet, skipping",
							"email", email, "sheet", grid.Name, "error", err)
						continue
					}
					data.Pieces = append(data.Pieces, record)
				}

				path := settings.VolunteerDataFile(email)
				if err := config.WriteDataFile(path, data); err != nil {
					return err
				}
				exported++
				logger.Infow("exported volunteer data",
					"email", email, "path", path, "pieces", len(data.Pieces))
			}

			logger.Infow("done", "exported", exported)
			return nil
		},
	}
}
