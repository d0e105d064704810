package models

// Definitions is the canonical definition model produced by reconciliation.
// It is constructed once per command invocation and owned by the caller;
// the layout and codec packages borrow it read-only.
type Definitions struct {
	// Template is the shared structural specification.
	Template Template
	// Pieces holds merged pieces in order of first occurrence.
	Pieces []Piece
	// Volunteers holds merged volunteers in order of first occurrence.
	Volunteers []Volunteer
}

// Piece returns the merged piece with the given title.
func (d *Definitions) Piece(title string) (Piece, bool) {
	for _, p := range d.Pieces {
		if p.Title == title {
			return p, true
		}
	}
	return Piece{}, false
}

// Volunteer returns the merged volunteer with the given email.
func (d *Definitions) Volunteer(email string) (Volunteer, bool) {
	for _, v := range d.Volunteers {
		if v.Email == email {
			return v, true
		}
	}
	return Volunteer{}, false
}
