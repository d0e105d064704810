package reconcile

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"tutti/pkg/tutti"
	"tutti/pkg/tutti/models"
)

func intPtr(n int) *int { return &n }

func testTemplate() models.Template {
	return models.Template{
		MetaDataFields: models.OrderedFields{
			{Key: "title", Label: "Title"},
			{Key: "tempo", Label: "Tempo"},
		},
		CommentFields: models.CommentFields{Comments: "Comments", Notes: "Notes"},
		Values:        models.TemplateValues{DefaultBarCount: 100, NotesRowHeight: 60},
	}
}

func TestMergePiecesFirstLinkWins(t *testing.T) {
	raw := []models.Piece{
		{Title: "Nocturne", Sources: []models.Source{{Name: "Scan A", Link: "http://a"}}},
		{Title: "Nocturne", Link: "http://first", Sources: []models.Source{{Name: "Scan B", Link: "http://b"}}},
		{Title: "Nocturne", Link: "http://second"},
	}

	var warnings tutti.Warnings
	pieces := MergePieces(raw, &warnings)

	if len(pieces) != 1 {
		t.Fatalf("expected 1 merged piece, got %d", len(pieces))
	}
	p := pieces[0]
	if p.Link != "http://first" {
		t.Errorf("Link = %q, want the first non-empty link", p.Link)
	}
	// sources concatenate without dedup, in input order
	if len(p.Sources) != 2 || p.Sources[0].Name != "Scan A" || p.Sources[1].Name != "Scan B" {
		t.Errorf("unexpected sources: %+v", p.Sources)
	}
	if len(warnings) != 2 {
		t.Errorf("expected 2 duplicate-piece warnings, got %d", len(warnings))
	}
}

func TestMergePiecesOrderAndIdempotence(t *testing.T) {
	raw := []models.Piece{
		{Title: "P2", Sources: []models.Source{{Name: "s", Link: "l", BarCount: intPtr(40)}}},
		{Title: "P1"},
		{Title: "P2", Sources: []models.Source{{Name: "s", Link: "l"}}},
	}

	var warnings tutti.Warnings
	once := MergePieces(raw, &warnings)

	titles := make([]string, len(once))
	for i, p := range once {
		titles[i] = p.Title
	}
	if diff := cmp.Diff([]string{"P2", "P1"}, titles); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}

	// merging the doubled input yields the same title set and links,
	// with source lists doubled in length
	twice := MergePieces(append(append([]models.Piece{}, raw...), raw...), &tutti.Warnings{})
	if len(twice) != len(once) {
		t.Fatalf("doubled merge produced %d pieces, want %d", len(twice), len(once))
	}
	for i := range once {
		if twice[i].Title != once[i].Title || twice[i].Link != once[i].Link {
			t.Errorf("piece %d: got (%q, %q), want (%q, %q)",
				i, twice[i].Title, twice[i].Link, once[i].Title, once[i].Link)
		}
		if len(twice[i].Sources) != 2*len(once[i].Sources) {
			t.Errorf("piece %d: got %d sources, want %d",
				i, len(twice[i].Sources), 2*len(once[i].Sources))
		}
	}
}

func TestMergeVolunteersOrderPreservation(t *testing.T) {
	pieces := []models.Piece{{Title: "P1"}, {Title: "P2"}, {Title: "P3"}}
	raw := []models.Volunteer{
		{Email: "a", Pieces: []string{"P1", "P2"}},
		{Email: "b", Pieces: []string{"P2"}},
		{Email: "a", Pieces: []string{"P2", "P3"}},
	}

	var warnings tutti.Warnings
	volunteers := MergeVolunteers(raw, pieces, &warnings)

	want := []models.Volunteer{
		{Email: "a", Pieces: []string{"P1", "P2", "P3"}},
		{Email: "b", Pieces: []string{"P2"}},
	}
	if diff := cmp.Diff(want, volunteers); diff != "" {
		t.Errorf("volunteers mismatch (-want +got):\n%s", diff)
	}
}

func TestMergeVolunteersDropsUnknownPieces(t *testing.T) {
	pieces := []models.Piece{{Title: "P1"}}
	raw := []models.Volunteer{
		{Email: "a", Pieces: []string{"P1", "Ghost"}},
	}

	var warnings tutti.Warnings
	volunteers := MergeVolunteers(raw, pieces, &warnings)

	if diff := cmp.Diff([]string{"P1"}, volunteers[0].Pieces); diff != "" {
		t.Errorf("pieces mismatch (-want +got):\n%s", diff)
	}
	if len(warnings) != 1 || warnings[0].Kind != tutti.WarnUnknownPiece {
		t.Fatalf("expected one unknown-piece warning, got %+v", warnings)
	}
	// warnings are recoverable by default, fatal under strict mode
	if err := warnings.Err(false); err != nil {
		t.Errorf("non-strict Err() = %v, want nil", err)
	}
	if err := warnings.Err(true); err == nil {
		t.Error("strict Err() = nil, want error")
	}
}

func TestMergeIsPure(t *testing.T) {
	rawPieces := []models.Piece{{Title: "P1"}}
	rawVolunteers := []models.Volunteer{{Email: "a", Pieces: []string{"P1"}}}

	first := Merge(testTemplate(), rawPieces, rawVolunteers)
	second := Merge(testTemplate(), rawPieces, rawVolunteers)

	if diff := cmp.Diff(first.Definitions, second.Definitions); diff != "" {
		t.Errorf("repeated merge differs (-first +second):\n%s", diff)
	}
	if len(first.Warnings) != 0 {
		t.Errorf("unexpected warnings: %+v", first.Warnings)
	}
}
