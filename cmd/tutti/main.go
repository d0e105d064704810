// Package main provides the CLI entry point for tutti.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tutti/pkg/tutti"
	"tutti/pkg/tutti/config"
	"tutti/pkg/tutti/reconcile"
)

var (
	settingsPath      string
	strict            bool
	verbose           bool
	indexPath         string
	templatePath      string
	piecesPath        string
	volunteersPath    string
	volunteerDataPath string
	pieceDataPath     string

	logger *zap.SugaredLogger
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tutti",
		Short: "Coordinate volunteer review of musical source transcriptions",
		Long: `tutti generates, populates, and harvests per-volunteer review
workbooks from a shared template, then consolidates the harvested data into
per-piece and master summaries.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogger()
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&settingsPath, "settings", "s", "tutti.yaml", "Settings file path")
	pf.BoolVar(&strict, "strict", false, "Fail on warnings instead of only displaying them")
	pf.BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	pf.StringVar(&indexPath, "index", "", "Replace the spreadsheets index file path")
	pf.StringVar(&templatePath, "template", "", "Replace the template definitions file path")
	pf.StringVar(&piecesPath, "pieces", "", "Replace the piece definitions file path")
	pf.StringVar(&volunteersPath, "volunteers", "", "Replace the volunteer definitions file path")
	pf.StringVar(&volunteerDataPath, "volunteer-data-path", "",
		`Replace the volunteer data path template (must include "{email}")`)
	pf.StringVar(&pieceDataPath, "piece-data-path", "",
		`Replace the piece data path template (must include "{piece}")`)

	rootCmd.AddCommand(
		newCreateSheetsCmd(),
		newVolunteerSummaryCmd(),
		newPieceSummaryCmd(),
		newCompilePiecesCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		if logger != nil {
			logger.Error(err)
		}
		os.Exit(1)
	}
}

func setupLogger() error {
	cfg := zap.NewDevelopmentConfig()
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	cfg.DisableStacktrace = true
	l, err := cfg.Build()
	if err != nil {
		return err
	}
	logger = l.Sugar()
	return nil
}

func runOptions() tutti.Options {
	return tutti.Options{
		Strict:            strict,
		IndexPath:         indexPath,
		TemplatePath:      templatePath,
		PiecesPath:        piecesPath,
		VolunteersPath:    volunteersPath,
		VolunteerDataPath: volunteerDataPath,
		PieceDataPath:     pieceDataPath,
	}
}

// loadModel loads settings and definitions and reconciles them into the
// definition model. Configuration errors abort here, before any workbook
// I/O; warnings are logged and abort only under strict mode.
func loadModel() (config.Settings, reconcile.Result, error) {
	settings, err := config.LoadSettings(settingsPath, runOptions())
	if err != nil {
		return config.Settings{}, reconcile.Result{}, err
	}

	template, pieces, volunteers, err := config.LoadDefinitions(settings)
	if err != nil {
		return config.Settings{}, reconcile.Result{}, err
	}

	result := reconcile.Merge(template, pieces, volunteers)
	for _, w := range result.Warnings {
		logger.Warnw("reconciliation warning",
			"kind", string(w.Kind), "subject", w.Subject, "detail", w.Detail)
	}
	if err := result.Warnings.Err(settings.Strict); err != nil {
		return config.Settings{}, reconcile.Result{}, err
	}

	return settings, result, nil
}
