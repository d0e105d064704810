// Package config loads and validates the tool settings and the definition
// files. Everything that can be rejected is rejected here, before any
// workbook I/O.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"tutti/pkg/tutti"
)

// Placeholders required in the output path templates.
const (
	PlaceholderEmail = "{email}"
	PlaceholderPiece = "{piece}"
)

// Settings is the tool configuration, read from a YAML settings file.
type Settings struct {
	Definitions struct {
		// Template is the template definitions file (JSON).
		Template string `yaml:"template"`
		// Pieces is the piece definitions file (JSON).
		Pieces string `yaml:"pieces"`
		// Volunteers is the volunteer definitions file (JSON).
		Volunteers string `yaml:"volunteers"`
	} `yaml:"definitions"`
	Output struct {
		// SpreadsheetsIndex is the spreadsheets index file (JSON).
		SpreadsheetsIndex string `yaml:"spreadsheetsIndex"`
		// VolunteerDataPath is the volunteer data path template.
		// Must include "{email}" exactly once.
		VolunteerDataPath string `yaml:"volunteerDataPath"`
		// PieceDataPath is the piece data path template.
		// Must include "{piece}" exactly once.
		PieceDataPath string `yaml:"pieceDataPath"`
		// WorkbooksDir is the directory generated workbooks are written to.
		WorkbooksDir string `yaml:"workbooksDir"`
	} `yaml:"output"`
	// Strict escalates reconciliation warnings to failures.
	Strict bool `yaml:"strict"`
}

// DefaultSettings returns the default file locations.
func DefaultSettings() Settings {
	var s Settings
	s.Definitions.Template = "data/template.json"
	s.Definitions.Pieces = "data/pieces.json"
	s.Definitions.Volunteers = "data/volunteers.json"
	s.Output.SpreadsheetsIndex = "output/spreadsheets.json"
	s.Output.VolunteerDataPath = "output/volunteers/{email}.json"
	s.Output.PieceDataPath = "output/pieces/{piece}.json"
	s.Output.WorkbooksDir = "output/workbooks"
	return s
}

// LoadSettings reads the settings file, applies command-line overrides, and
// validates the result. A missing settings file yields the defaults.
func LoadSettings(path string, opts tutti.Options) (Settings, error) {
	s := DefaultSettings()

	raw, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(raw, &s); err != nil {
			return Settings{}, fmt.Errorf("settings file %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// defaults
	default:
		return Settings{}, fmt.Errorf("settings file %s: %w", path, err)
	}

	if opts.Strict {
		s.Strict = true
	}
	if opts.IndexPath != "" {
		s.Output.SpreadsheetsIndex = opts.IndexPath
	}
	if opts.TemplatePath != "" {
		s.Definitions.Template = opts.TemplatePath
	}
	if opts.PiecesPath != "" {
		s.Definitions.Pieces = opts.PiecesPath
	}
	if opts.VolunteersPath != "" {
		s.Definitions.Volunteers = opts.VolunteersPath
	}
	if opts.VolunteerDataPath != "" {
		s.Output.VolunteerDataPath = opts.VolunteerDataPath
	}
	if opts.PieceDataPath != "" {
		s.Output.PieceDataPath = opts.PieceDataPath
	}

	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate checks that each path template contains its required placeholder
// exactly once. Validation happens once per configuration, independent of
// any specific piece or volunteer.
func (s Settings) Validate() error {
	if strings.Count(s.Output.VolunteerDataPath, PlaceholderEmail) != 1 {
		return tutti.NewConfigurationError("volunteerDataPath",
			"must include %q exactly once", PlaceholderEmail)
	}
	if strings.Count(s.Output.PieceDataPath, PlaceholderPiece) != 1 {
		return tutti.NewConfigurationError("pieceDataPath",
			"must include %q exactly once", PlaceholderPiece)
	}
	return nil
}

// VolunteerDataFile substitutes an email into the volunteer data path
// template.
func (s Settings) VolunteerDataFile(email string) string {
	return strings.Replace(s.Output.VolunteerDataPath, PlaceholderEmail, email, 1)
}

// PieceDataFile substitutes a piece title into the piece data path
// template.
func (s Settings) PieceDataFile(title string) string {
	return strings.Replace(s.Output.PieceDataPath, PlaceholderPiece, title, 1)
}
