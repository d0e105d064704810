package main

import (
	"github.com/spf13/cobra"

	"tutti/pkg/tutti/config"
	"tutti/pkg/tutti/models"
	"tutti/pkg/tutti/sheets"
)

func newPieceSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "piece-summary [pieces...]",
		Short: "Regroup harvested volunteer data by piece",
		Long: `Read the exported volunteer data files and regroup them into one JSON
summary per piece at the piece data path. With no pieces given, summarizes
all pieces in the definitions.`,
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

			targets := defs.Pieces
			if len(args) > 0 {
				var filtered []models.Piece
				for _, title := range args {
					piece, ok := defs.Piece(title)
					if !ok {
						logger.Warnw("piece not found in definitions", "title", title)
						continue
					}
					filtered = append(filtered, piece)
				}
				targets = filtered
			}

			summaries := make(map[string]*models.PieceSummary, len(targets))
			for _, piece := range targets {
				summaries[piece.Title] = &models.PieceSummary{
					Title:      piece.Title,
					Link:       piece.Link,
					Volunteers: make(map[string]models.PieceData),
				}
			}

			for _, email := range index.Volunteers() {
				path := settings.VolunteerDataFile(email)
				var data models.VolunteerData
				if err := config.ReadDataFile(path, &data); err != nil {
					if settings.Strict {
						return err
					}
					logger.Warnw("failed to read volunteer data, skipping",
						"email", email, "path", path, "error", err)
					continue
				}
				for _, record := range data.Pieces {
					if summary, ok := summaries[record.Title]; ok {
						summary.Volunteers[email] = record
					}
				}
			}

			for _, piece := range targets {
				summary := summaries[piece.Title]
				path := settings.PieceDataFile(piece.Title)
				if err := config.WriteDataFile(path, summary); err != nil {
					return err
				}
				logger.Infow("wrote piece summary",
					"title", piece.Title, "path", path,
					"volunteers", len(summary.Volunteers))
			}

			logger.Infow("done", "pieces", len(targets))
			return nil
		},
	}
}
