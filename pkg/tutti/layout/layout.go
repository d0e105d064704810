// Package layout derives the concrete row/column structure of a piece
// sheet from the template and the piece's sources.
package layout

import "tutti/pkg/tutti/models"

// Plan is the row/column structure of one piece sheet. It is a pure
// function of (template, piece): fully deterministic, recomputed on demand,
// never mutated in place.
//
// Geometry, zero-based:
//
//	col 0                label column
//	cols 1..BarCount     bar columns (header values occupy col 1 only)
//	col BarCount+1       trailing comment column, present on every row
//
//	rows 0..H-1          one header row per metadata field (H fields)
//	row H                bar number row
//	row H+1              bar value row
//	row H+2              notes row (height NotesRowHeight)
type Plan struct {
	// Title is the piece title the plan was derived for.
	Title string
	// Fields holds the header fields in template-declared order.
	Fields models.OrderedFields
	// BarCount is the effective bar count.
	BarCount int
	// CommentsLabel is the header label of the comment column.
	CommentsLabel string
	// NotesLabel is the label of the notes row.
	NotesLabel string
	// NotesRowHeight is the pixel height of the notes row.
	NotesRowHeight int
}

// HeaderRows returns the number of header rows.
func (p Plan) HeaderRows() int { return len(p.Fields) }

// BarNumberRow returns the row index of the bar number row.
func (p Plan) BarNumberRow() int { return len(p.Fields) }

// BarValueRow returns the row index of the bar value row.
func (p Plan) BarValueRow() int { return len(p.Fields) + 1 }

// NotesRow returns the row index of the notes row.
func (p Plan) NotesRow() int { return len(p.Fields) + 2 }

// Rows returns the total row count.
func (p Plan) Rows() int { return len(p.Fields) + 3 }

// CommentCol returns the column index of the trailing comment column.
func (p Plan) CommentCol() int { return p.BarCount + 1 }

// Columns returns the total column count.
func (p Plan) Columns() int { return p.BarCount + 2 }

// EffectiveBarCount returns the largest bar count declared by any of the
// piece's sources, falling back to the template default when no source
// declares one. Recomputed whenever sources change; never stored.
func EffectiveBarCount(template models.Template, piece models.Piece) int {
	count := 0
	for _, src := range piece.Sources {
		if src.BarCount != nil && *src.BarCount > count {
			count = *src.BarCount
		}
	}
	if count == 0 {
		return template.Values.DefaultBarCount
	}
	return count
}

// Synthesize derives the layout plan for one piece. It assumes the template
// and sources were validated at load time; non-positive source bar counts
// are rejected there, not here.
func Synthesize(template models.Template, piece models.Piece) Plan {
	return Plan{
		Title:          piece.Title,
		Fields:         template.MetaDataFields,
		BarCount:       EffectiveBarCount(template, piece),
		CommentsLabel:  template.CommentFields.Comments,
		NotesLabel:     template.CommentFields.Notes,
		NotesRowHeight: template.Values.NotesRowHeight,
	}
}
