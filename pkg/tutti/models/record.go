package models

// FieldValue is one header field's reviewed value plus its comment, for a
// single piece sheet. Records appear in template-declared field order.
type FieldValue struct {
	// Key is the metadata field key from the template.
	Key string `json:"key"`
	// Value is the reviewed value for the field.
	Value string `json:"value"`
	// Comment is the comment-column entry on the field's row.
	Comment string `json:"comment,omitempty"`
}

// BarSection holds the per-bar values of a piece sheet and the comment on
// the bar value row.
type BarSection struct {
	// Values holds one entry per bar, in bar order.
	Values []string `json:"values"`
	// Comment is the comment-column entry on the bar value row.
	Comment string `json:"comment,omitempty"`
}

// PieceData is the canonical flat record for one piece sheet, as parsed
// from or rendered to a grid.
type PieceData struct {
	// Title is the piece title the record belongs to.
	Title string `json:"title"`
	// Fields holds header field values in template order.
	Fields []FieldValue `json:"fields"`
	// Bars holds the bar-section values.
	Bars BarSection `json:"bars"`
	// Notes is the notes-row text.
	Notes string `json:"notes,omitempty"`
	// NotesComment is the comment-column entry on the notes row.
	NotesComment string `json:"notesComment,omitempty"`
}

// Field returns the record's value for a field key.
func (d PieceData) Field(key string) (FieldValue, bool) {
	for _, f := range d.Fields {
		if f.Key == key {
			return f, true
		}
	}
	return FieldValue{}, false
}

// VolunteerData is every piece record harvested from one volunteer's
// workbook.
type VolunteerData struct {
	// Email is the volunteer email.
	Email string `json:"email"`
	// Pieces holds one record per sheet in the volunteer's workbook.
	Pieces []PieceData `json:"pieces"`
}

// PieceSummary groups every volunteer's record for one piece.
type PieceSummary struct {
	// Title is the piece title.
	Title string `json:"title"`
	// Link is the piece link from the definitions, if any.
	Link string `json:"link,omitempty"`
	// Volunteers maps volunteer email to that volunteer's record.
	Volunteers map[string]PieceData `json:"volunteers"`
}
