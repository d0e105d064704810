package tutti

// Options configures a single command invocation. Path fields override the
// corresponding settings-file values when non-empty.
type Options struct {
	// Strict escalates reconciliation warnings to a fatal error.
	Strict bool
	// IndexPath overrides the spreadsheets index file location.
	IndexPath string
	// TemplatePath overrides the template definitions file location.
	TemplatePath string
	// PiecesPath overrides the piece definitions file location.
	PiecesPath string
	// VolunteersPath overrides the volunteer definitions file location.
	VolunteersPath string
	// VolunteerDataPath overrides the volunteer data path template.
	// Must include "{email}" exactly once.
	VolunteerDataPath string
	// PieceDataPath overrides the piece data path template.
	// Must include "{piece}" exactly once.
	PieceDataPath string
}

// DefaultOptions returns default run options.
func DefaultOptions() Options {
	return Options{}
}
