package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gerunddev/interviewer/internal/styles"
)

type editorModel struct {
	textarea  textarea.Model
	question  string
	submitted bool
	cancelled bool
}

func newEditorModel(questionText, initial string) editorModel {
	ta := textarea.New()
	ta.Placeholder = "What did the candidate say?"
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetWidth(80)
	ta.SetHeight(10)
	ta.SetValue(initial)
	ta.Focus()

	return editorModel{
		textarea: ta,
		question: questionText,
	}
}

func (m editorModel) Init() tea.Cmd {
	return textarea.Blink
}

func (m editorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.textarea.SetWidth(max(msg.Width-6, 20))

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+s":
			m.submitted = true
			return m, tea.Quit
		case "esc", "ctrl+c":
			m.cancelled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	return m, cmd
}

func (m editorModel) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render(m.question))
	b.WriteString("\n\n")
	b.WriteString(styles.EditorStyle.Render(m.textarea.View()))
	b.WriteString("\n\n")
	b.WriteString(styles.HelpStyle.Render("ctrl+s save • esc cancel • save empty to clear"))
	b.WriteString("\n")

	return b.String()
}

// Value returns the edited answer
func (m editorModel) Value() string {
	return strings.TrimSpace(m.textarea.Value())
}

// EditAnswer opens an editor prefilled with the current candidate answer.
// ok is false when the user cancelled.
func EditAnswer(questionText, initial string) (string, bool, error) {
	p := tea.NewProgram(newEditorModel(questionText, initial))

	final, err := p.Run()
	if err != nil {
		return "", false, fmt.Errorf("answer editor failed: %w", err)
	}

	m := final.(editorModel)
	if !m.submitted {
		return "", false, nil
	}
	return m.Value(), true, nil
}
