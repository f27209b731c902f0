package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gerunddev/interviewer/internal/question"
)

func testItems() []Item {
	return []Item{
		{Section: "Go", Question: question.Question{Text: "What is a goroutine?", Difficulty: question.Easy, Answer: "A green thread."}},
		{Section: "Go", Question: question.Question{Text: "Explain the scheduler", Difficulty: question.Hard, Answer: "GMP.", Candidate: "Not sure."}},
	}
}

func TestEditorSubmit(t *testing.T) {
	m := newEditorModel("What is a goroutine?", "  A green thread.  ")

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	em := next.(editorModel)

	if !em.submitted {
		t.Error("Expected ctrl+s to submit")
	}
	if cmd == nil {
		t.Error("Expected a quit command")
	}
	if em.Value() != "A green thread." {
		t.Errorf("Value() = %q, want trimmed initial text", em.Value())
	}
}

func TestEditorCancel(t *testing.T) {
	m := newEditorModel("Q", "draft")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	em := next.(editorModel)

	if !em.cancelled || em.submitted {
		t.Errorf("Expected esc to cancel, got submitted=%v cancelled=%v", em.submitted, em.cancelled)
	}
}

func TestEditorTyping(t *testing.T) {
	m := newEditorModel("Q", "")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("hi")})
	em := next.(editorModel)

	if em.Value() != "hi" {
		t.Errorf("Value() = %q, want hi", em.Value())
	}
	if !strings.Contains(em.View(), "Q") {
		t.Error("Expected question in view")
	}
}

func TestPickerEnterChoosesCursor(t *testing.T) {
	m := newPickModel("Questions", testItems())

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	next, cmd := next.(pickModel).Update(tea.KeyMsg{Type: tea.KeyEnter})
	pm := next.(pickModel)

	if pm.chosen != 1 {
		t.Errorf("chosen = %d, want 1", pm.chosen)
	}
	if cmd == nil {
		t.Error("Expected a quit command")
	}
}

func TestPickerQuitChoosesNothing(t *testing.T) {
	m := newPickModel("Questions", testItems())

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if pm := next.(pickModel); pm.chosen != -1 {
		t.Errorf("chosen = %d, want -1", pm.chosen)
	}
}

func TestPickerPreview(t *testing.T) {
	m := newPickModel("Questions", testItems())

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")})
	pm := next.(pickModel)
	if !pm.previewing {
		t.Fatal("Expected preview to open")
	}

	next, _ = pm.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if next.(pickModel).previewing {
		t.Error("Expected esc to close preview")
	}
}

func TestPreviewShowsCandidate(t *testing.T) {
	got := preview(testItems()[1])
	if !strings.Contains(got, "GMP.") || !strings.Contains(got, "Not sure.") {
		t.Errorf("preview missing answer or candidate:\n%s", got)
	}
}

func TestPickerEmpty(t *testing.T) {
	m := newPickModel("Questions", nil)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if next.(pickModel).chosen != -1 {
		t.Error("Expected nothing chosen from an empty picker")
	}
	if !strings.Contains(m.View(), "No questions") {
		t.Error("Expected empty notice")
	}
}
