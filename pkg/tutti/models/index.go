package models

import "sort"

// MasterKey is the reserved spreadsheets-index key for the master workbook.
const MasterKey = "MASTER"

// IndexVersion is the current spreadsheets-index file format version.
const IndexVersion = 1

// Index maps volunteer emails (plus the reserved MasterKey) to workbook
// handles. It is loaded at command start, extended as workbooks are
// created, and persisted atomically at command end. Entries are never
// removed automatically.
type Index struct {
	// Version is the index file format version.
	Version int `json:"version"`
	// Spreadsheets maps email (or MasterKey) to a workbook handle.
	Spreadsheets map[string]string `json:"spreadsheets"`
}

// NewIndex returns an empty index at the current version.
func NewIndex() *Index {
	return &Index{
		Version:      IndexVersion,
		Spreadsheets: make(map[string]string),
	}
}

// Handle returns the workbook handle for a key.
func (ix *Index) Handle(key string) (string, bool) {
	h, ok := ix.Spreadsheets[key]
	return h, ok
}

// Set records the workbook handle for a key.
func (ix *Index) Set(key, handle string) {
	if ix.Spreadsheets == nil {
		ix.Spreadsheets = make(map[string]string)
	}
	ix.Spreadsheets[key] = handle
}

// Volunteers returns the volunteer emails in the index, sorted, excluding
// the reserved MasterKey.
func (ix *Index) Volunteers() []string {
	emails := make([]string, 0, len(ix.Spreadsheets))
	for key := range ix.Spreadsheets {
		if key == MasterKey {
			continue
		}
		emails = append(emails, key)
	}
	sort.Strings(emails)
	return emails
}
