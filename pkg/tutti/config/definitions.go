package config

import (
	"encoding/json"
	"fmt"
	"os"

	"tutti/pkg/tutti"
	"tutti/pkg/tutti/models"
)

// LoadDefinitions reads the template, piece, and volunteer definition files
// and runs the single validation pass over them. The returned records are
// raw (unmerged); reconciliation is the caller's next step.
func LoadDefinitions(s Settings) (models.Template, []models.Piece, []models.Volunteer, error) {
	var template models.Template
	if err := readJSON(s.Definitions.Template, &template); err != nil {
		return models.Template{}, nil, nil, err
	}
	if err := validateTemplate(template); err != nil {
		return models.Template{}, nil, nil, err
	}

	var pieces []models.Piece
	if err := readJSON(s.Definitions.Pieces, &pieces); err != nil {
		return models.Template{}, nil, nil, err
	}
	if err := validatePieces(pieces); err != nil {
		return models.Template{}, nil, nil, err
	}

	var volunteers []models.Volunteer
	if err := readJSON(s.Definitions.Volunteers, &volunteers); err != nil {
		return models.Template{}, nil, nil, err
	}
	if err := validateVolunteers(volunteers); err != nil {
		return models.Template{}, nil, nil, err
	}

	return template, pieces, volunteers, nil
}

// minNotesRowHeight is the provider's default row height; anything smaller
// would clip the notes row.
const minNotesRowHeight = 21

func validateTemplate(t models.Template) error {
	if t.Values.DefaultBarCount <= 0 {
		return tutti.NewConfigurationError("values.defaultBarCount", "must be positive")
	}
	if t.Values.NotesRowHeight < minNotesRowHeight {
		return tutti.NewConfigurationError("values.notesRowHeight",
			"must be at least %d", minNotesRowHeight)
	}
	return nil
}

func validatePieces(pieces []models.Piece) error {
	for i, p := range pieces {
		if p.Title == "" {
			return tutti.NewConfigurationError(
				fmt.Sprintf("pieces[%d].title", i), "must not be empty")
		}
		for j, src := range p.Sources {
			field := fmt.Sprintf("pieces[%d].sources[%d]", i, j)
			if src.Name == "" {
				return tutti.NewConfigurationError(field+".name", "must not be empty")
			}
			if src.BarCount != nil && *src.BarCount <= 0 {
				return tutti.NewConfigurationError(field+".barCount", "must be positive")
			}
		}
	}
	return nil
}

func validateVolunteers(volunteers []models.Volunteer) error {
	for i, v := range volunteers {
		if v.Email == "" {
			return tutti.NewConfigurationError(
				fmt.Sprintf("volunteers[%d].email", i), "must not be empty")
		}
	}
	return nil
}

func readJSON(path string, v any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("definitions file %s: %w", path, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("definitions file %s: %w", path, err)
	}
	return nil
}
