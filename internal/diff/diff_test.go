package diff

import (
	"strings"
	"testing"
)

func TestUnified(t *testing.T) {
	before := "# Q #easy\n?\nA\n"
	after := "# Q #easy\n?\nA\n\n> @candidate\n> B\n"

	got := Unified("note.md", before, after)

	if !strings.Contains(got, "--- a/note.md") || !strings.Contains(got, "+++ b/note.md") {
		t.Errorf("Expected file headers in diff, got:\n%s", got)
	}
	if !strings.Contains(got, "+> @candidate") {
		t.Errorf("Expected added candidate marker, got:\n%s", got)
	}
	if strings.Contains(got, "-A") {
		t.Errorf("Unchanged answer should not be removed, got:\n%s", got)
	}
}

func TestUnifiedIdentical(t *testing.T) {
	if got := Unified("note.md", "same", "same"); got != "" {
		t.Errorf("Expected empty diff, got %q", got)
	}
}

func TestUnifiedWithoutTrailingNewline(t *testing.T) {
	got := Unified("note.md", "one\ntwo", "one\nthree")
	if !strings.Contains(got, "-two") || !strings.Contains(got, "+three") {
		t.Errorf("Expected changed last line, got:\n%s", got)
	}
}

func TestRenderEmpty(t *testing.T) {
	if got := Render(""); got != "" {
		t.Errorf("Expected empty render, got %q", got)
	}
}
