// Package reconcile merges raw, possibly duplicated definition records into
// the canonical definition model.
package reconcile

import (
	"tutti/pkg/tutti"
	"tutti/pkg/tutti/models"
)

// Result holds the merged definition model and the warnings collected
// while merging.
type Result struct {
	Definitions models.Definitions
	Warnings    tutti.Warnings
}

// Merge produces the definition model from raw piece and volunteer records.
// It is a pure function: no I/O, no shared state, safe to call concurrently
// with different inputs.
func Merge(template models.Template, rawPieces []models.Piece, rawVolunteers []models.Volunteer) Result {
	var warnings tutti.Warnings
	pieces := MergePieces(rawPieces, &warnings)
	volunteers := MergeVolunteers(rawVolunteers, pieces, &warnings)
	return Result{
		Definitions: models.Definitions{
			Template:   template,
			Pieces:     pieces,
			Volunteers: volunteers,
		},
		Warnings: warnings,
	}
}

// MergePieces merges raw piece records sharing a title into one piece.
// The first non-empty link encountered wins; sources from all occurrences
// concatenate in input order and are never deduplicated. Output order is
// the order of first occurrence of each distinct title.
func MergePieces(raw []models.Piece, warnings *tutti.Warnings) []models.Piece {
	var order []string
	merged := make(map[string]*models.Piece)

	for _, rec := range raw {
		existing, ok := merged[rec.Title]
		if !ok {
			p := models.Piece{
				Title:   rec.Title,
				Link:    rec.Link,
				Sources: append([]models.Source(nil), rec.Sources...),
			}
			merged[rec.Title] = &p
			order = append(order, rec.Title)
			continue
		}

		warnings.Add(tutti.WarnDuplicatePiece, rec.Title, "merging repeated definition")
		if existing.Link == "" {
			existing.Link = rec.Link
		}
		existing.Sources = append(existing.Sources, rec.Sources...)
	}

	pieces := make([]models.Piece, len(order))
	for i, title := range order {
		pieces[i] = *merged[title]
	}
	return pieces
}

// MergeVolunteers merges raw volunteer records sharing an email. Piece
// lists concatenate in input order, collapse to first occurrence, and drop
// references to titles absent from the merged piece set (with a warning,
// not an error). Output order is the order of first occurrence of each
// distinct email.
func MergeVolunteers(raw []models.Volunteer, pieces []models.Piece, warnings *tutti.Warnings) []models.Volunteer {
	known := make(map[string]bool, len(pieces))
	for _, p := range pieces {
		known[p.Title] = true
	}

	var order []string
	merged := make(map[string]*models.Volunteer)

	for _, rec := range raw {
		v, ok := merged[rec.Email]
		if !ok {
			v = &models.Volunteer{Email: rec.Email}
			merged[rec.Email] = v
			order = append(order, rec.Email)
		} else {
			warnings.Add(tutti.WarnDuplicateVolunteer, rec.Email, "merging repeated definition")
		}

		for _, title := range rec.Pieces {
			if !known[title] {
				warnings.Add(tutti.WarnUnknownPiece, title, "referenced by volunteer %q", rec.Email)
				continue
			}
			if containsTitle(v.Pieces, title) {
				continue
			}
			v.Pieces = append(v.Pieces, title)
		}
	}

	volunteers := make([]models.Volunteer, len(order))
	for i, email := range order {
		volunteers[i] = *merged[email]
	}
	return volunteers
}

func containsTitle(titles []string, title string) bool {
	for _, t := range titles {
		if t == title {
			return true
		}
	}
	return false
}
