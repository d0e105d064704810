// Package models defines the canonical definition model and record shapes
// shared by every generated spreadsheet.
package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// FieldDef is one metadata header field: a stable key and its display label.
type FieldDef struct {
	Key   string
	Label string
}

// OrderedFields is an ordered field-key to display-label mapping. It is
// serialized as a JSON object whose declaration order is preserved, which
// encoding/json's map type would lose.
type OrderedFields []FieldDef

// Keys returns the field keys in declared order.
func (of OrderedFields) Keys() []string {
	keys := make([]string, len(of))
	for i, f := range of {
		keys[i] = f.Key
	}
	return keys
}

// Label returns the display label for a key, or the key itself when unknown.
func (of OrderedFields) Label(key string) string {
	for _, f := range of {
		if f.Key == key {
			return f.Label
		}
	}
	return key
}

// UnmarshalJSON decodes a JSON object token by token so that declaration
// order survives the round trip.
func (of *OrderedFields) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("metadata fields: expected object, got %v", tok)
	}

	var fields OrderedFields
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("metadata fields: expected key, got %v", keyTok)
		}
		var label string
		if err := dec.Decode(&label); err != nil {
			return fmt.Errorf("metadata fields: label for %q: %w", key, err)
		}
		fields = append(fields, FieldDef{Key: key, Label: label})
	}

	*of = fields
	return nil
}

// MarshalJSON encodes the fields as a JSON object in declared order.
func (of OrderedFields) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range of {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Key)
		if err != nil {
			return nil, err
		}
		label, err := json.Marshal(f.Label)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(label)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// CommentFields names the trailing comment column and the notes row.
type CommentFields struct {
	// Comments is the header label of the trailing comment column.
	Comments string `json:"comments"`
	// Notes is the label of the single notes row below the bar section.
	Notes string `json:"notes"`
}

// TemplateValues holds the numeric layout parameters.
type TemplateValues struct {
	// DefaultBarCount is the bar count used when no source declares one.
	// Must be positive.
	DefaultBarCount int `json:"defaultBarCount"`
	// NotesRowHeight is the pixel height of the notes row. Must be at
	// least 21, the provider's default row height.
	NotesRowHeight int `json:"notesRowHeight"`
}

// Template is the structural and labeling specification shared by all
// generated spreadsheets. Immutable once loaded.
type Template struct {
	// MetaDataFields defines the header rows above the bar section.
	MetaDataFields OrderedFields `json:"metaDataFields"`
	// CommentFields names the comment column and notes row.
	CommentFields CommentFields `json:"commentFields"`
	// Values holds the numeric layout parameters.
	Values TemplateValues `json:"values"`
}
