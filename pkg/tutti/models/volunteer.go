package models

// Volunteer is a reviewer assigned a subset of pieces. Email is the unique
// key and is case-sensitive. Pieces holds piece-title references in
// first-seen order with duplicates collapsed to the first occurrence.
type Volunteer struct {
	// Email is the volunteer email (unique key).
	Email string `json:"email"`
	// Pieces is the ordered list of assigned piece titles.
	Pieces []string `json:"pieces"`
}
