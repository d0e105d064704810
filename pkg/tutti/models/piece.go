package models

// Source is one scanned or transcribed version of a piece. Sources are
// never deduplicated: every occurrence from every input record is retained.
type Source struct {
	// Name is the source display name.
	Name string `json:"name"`
	// Link is the URL of the source scan.
	Link string `json:"link"`
	// BarCount is the number of bars in this source (nil if unknown).
	// Must be positive when present.
	BarCount *int `json:"barCount,omitempty"`
}

// Piece is a musical work with the source transcriptions to compare.
// Title is the unique key; sources keep insertion order and are append-only
// across merges.
type Piece struct {
	// Title is the piece title (unique key, exact string match).
	Title string `json:"title"`
	// Link is an optional URL for the piece.
	Link string `json:"link,omitempty"`
	// Sources is the ordered list of source transcriptions.
	Sources []Source `json:"sources"`
}
