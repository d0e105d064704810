package codec

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"tutti/pkg/tutti"
	"tutti/pkg/tutti/layout"
	"tutti/pkg/tutti/models"
)

func intPtr(n int) *int { return &n }

func testPlan(t *testing.T, barCount int) layout.Plan {
	t.Helper()
	template := models.Template{
		MetaDataFields: models.OrderedFields{
			{Key: "title", Label: "Title"},
			{Key: "tempo", Label: "Tempo"},
		},
		CommentFields: models.CommentFields{Comments: "Comments", Notes: "Notes"},
		Values:        models.TemplateValues{DefaultBarCount: 100, NotesRowHeight: 60},
	}
	piece := models.Piece{Title: "Nocturne", Sources: []models.Source{
		{Name: "scan", Link: "l", BarCount: intPtr(barCount)},
	}}
	return layout.Synthesize(template, piece)
}

func TestRenderGeometry(t *testing.T) {
	plan := testPlan(t, 3)
	grid := Render(plan, Blank(plan))

	if len(grid) != plan.Rows() {
		t.Fatalf("got %d rows, want %d", len(grid), plan.Rows())
	}
	for r, row := range grid {
		if len(row) != plan.Columns() {
			t.Errorf("row %d has %d columns, want %d", r, len(row), plan.Columns())
		}
	}

	if grid[0][0] != "Title" || grid[1][0] != "Tempo" {
		t.Errorf("header labels = (%q, %q)", grid[0][0], grid[1][0])
	}
	numbers := grid[plan.BarNumberRow()]
	if numbers[1] != "1" || numbers[3] != "3" {
		t.Errorf("bar numbers = %v", numbers)
	}
	if numbers[plan.CommentCol()] != "Comments" {
		t.Errorf("comment column label = %q, want Comments", numbers[plan.CommentCol()])
	}
	if grid[plan.NotesRow()][0] != "Notes" {
		t.Errorf("notes label = %q, want Notes", grid[plan.NotesRow()][0])
	}
}

func TestRoundTrip(t *testing.T) {
	plan := testPlan(t, 3)

	data := models.PieceData{
		Title: "Nocturne",
		Fields: []models.FieldValue{
			{Key: "title", Value: "Nocturne in E-flat", Comment: "check spelling"},
			{Key: "tempo", Value: "Andante"},
		},
		Bars: models.BarSection{
			Values:  []string{"ok", "missing tie", "ok"},
			Comment: "bar 2 differs between scans",
		},
		Notes:        "second scan is cleaner",
		NotesComment: "agreed",
	}

	parsed, err := Parse(plan, Render(plan, data))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if diff := cmp.Diff(data, parsed); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestRoundTripBlank(t *testing.T) {
	plan := testPlan(t, 5)
	blank := Blank(plan)

	parsed, err := Parse(plan, Render(plan, blank))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if diff := cmp.Diff(blank, parsed); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestParseShortRowsTolerated(t *testing.T) {
	plan := testPlan(t, 2)
	grid := Render(plan, Blank(plan))

	// the transport trims trailing empty cells; simulate it
	trimmed := make([][]string, len(grid))
	for r, row := range grid {
		end := len(row)
		for end > 0 && row[end-1] == "" {
			end--
		}
		trimmed[r] = row[:end]
	}

	parsed, err := Parse(plan, trimmed)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if diff := cmp.Diff(Blank(plan), parsed); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestParseStructuralMismatch(t *testing.T) {
	plan := testPlan(t, 3)
	grid := Render(plan, Blank(plan))

	// a hand-edited workbook with a deleted row must fail loudly
	_, err := Parse(plan, grid[:len(grid)-1])
	if err == nil {
		t.Fatal("expected error for truncated grid")
	}
	var mismatch *tutti.StructuralMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("error = %v, want StructuralMismatchError", err)
	}
	if mismatch.Sheet != "Nocturne" {
		t.Errorf("Sheet = %q, want Nocturne", mismatch.Sheet)
	}
}

func TestRenderMaster(t *testing.T) {
	plan := testPlan(t, 2)

	record := func(tempo, bar1, notes string) models.PieceData {
		return models.PieceData{
			Title: "Nocturne",
			Fields: []models.FieldValue{
				{Key: "title", Value: "Nocturne"},
				{Key: "tempo", Value: tempo, Comment: "verify against scan"},
			},
			Bars:  models.BarSection{Values: []string{bar1, "ok"}},
			Notes: notes,
		}
	}

	grid := RenderMaster(plan, []MasterColumn{
		{Email: "a@example.com", Data: record("Andante", "ok", "fine")},
		{Email: "b@example.com", Data: record("Adagio", "smudged", "")},
	})

	// label, two volunteers, summary, notes
	if len(grid[0]) != 5 {
		t.Fatalf("got %d columns, want 5", len(grid[0]))
	}
	if grid[0][0] != "Volunteer" || grid[0][1] != "a@example.com" || grid[0][2] != "b@example.com" {
		t.Errorf("header row = %v", grid[0])
	}
	if grid[0][3] != "SUMMARY" || grid[0][4] != "Notes" {
		t.Errorf("trailing headers = (%q, %q)", grid[0][3], grid[0][4])
	}
	if grid[2][1] != "Andante" || grid[2][2] != "Adagio" {
		t.Errorf("tempo row = %v", grid[2])
	}
	wantNotes := "a@example.com: verify against scan\nb@example.com: verify against scan"
	if grid[2][4] != wantNotes {
		t.Errorf("tempo notes = %q, want %q", grid[2][4], wantNotes)
	}
	// bars run down the label column on the master
	if grid[3][0] != "1" || grid[3][2] != "smudged" {
		t.Errorf("bar 1 row = %v", grid[3])
	}
	last := grid[len(grid)-1]
	if last[0] != "Notes" || last[1] != "fine" {
		t.Errorf("notes row = %v", last)
	}
}
