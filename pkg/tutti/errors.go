// Package tutti provides the shared surface of the transcription-review
// coordination tool: run options, error kinds, and reconciliation warnings.
package tutti

import (
	"errors"
	"fmt"
	"strings"
)

// ErrStrictWarnings indicates reconciliation warnings were escalated to a
// failure because strict mode was requested.
var ErrStrictWarnings = errors.New("failing due to warnings (strict mode)")

// ConfigurationError represents an invalid configuration value: a bad
// template parameter, a non-positive source bar count, or a path template
// missing its required placeholder. It is fatal and is surfaced before any
// workbook I/O is attempted.
type ConfigurationError struct {
	Field  string // dotted path of the offending value, e.g. "values.defaultBarCount"
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error in %q: %s", e.Field, e.Reason)
}

// NewConfigurationError creates a new ConfigurationError.
func NewConfigurationError(field, format string, args ...any) *ConfigurationError {
	return &ConfigurationError{
		Field:  field,
		Reason: fmt.Sprintf(format, args...),
	}
}

// StructuralMismatchError represents a grid read back from a workbook that
// does not structurally match the layout plan it was parsed against.
type StructuralMismatchError struct {
	Sheet  string
	Reason string
}

func (e *StructuralMismatchError) Error() string {
	return fmt.Sprintf("structural mismatch in sheet %q: %s", e.Sheet, e.Reason)
}

// WarningKind classifies a reconciliation warning.
type WarningKind string

const (
	// WarnDuplicatePiece indicates multiple raw records shared a piece title.
	WarnDuplicatePiece WarningKind = "duplicate piece"
	// WarnDuplicateVolunteer indicates multiple raw records shared an email.
	WarnDuplicateVolunteer WarningKind = "duplicate volunteer"
	// WarnUnknownPiece indicates a volunteer referenced a piece title that is
	// not in the merged piece set.
	WarnUnknownPiece WarningKind = "unknown piece"
)

// Warning is a recoverable reconciliation finding. Warnings are collected
// and reported after the merge; they abort only under strict mode.
type Warning struct {
	Kind    WarningKind
	Subject string
	Detail  string
}

func (w Warning) String() string {
	if w.Detail == "" {
		return fmt.Sprintf("%s %q", w.Kind, w.Subject)
	}
	return fmt.Sprintf("%s %q: %s", w.Kind, w.Subject, w.Detail)
}

// Warnings collects reconciliation warnings in occurrence order.
type Warnings []Warning

// Add appends a warning.
func (ws *Warnings) Add(kind WarningKind, subject, format string, args ...any) {
	*ws = append(*ws, Warning{
		Kind:    kind,
		Subject: subject,
		Detail:  fmt.Sprintf(format, args...),
	})
}

// Err returns ErrStrictWarnings when strict mode is on and any warnings
// were collected, nil otherwise.
func (ws Warnings) Err(strict bool) error {
	if !strict || len(ws) == 0 {
		return nil
	}
	lines := make([]string, len(ws))
	for i, w := range ws {
		lines[i] = w.String()
	}
	return fmt.Errorf("%w:\n%s", ErrStrictWarnings, strings.Join(lines, "\n"))
}
