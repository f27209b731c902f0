package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/gerunddev/interviewer/internal/question"
	"github.com/gerunddev/interviewer/internal/styles"
)

// Item is a question offered by the picker
type Item struct {
	Section  string
	Question question.Question
}

type pickModel struct {
	table      table.Model
	viewport   viewport.Model
	title      string
	items      []Item
	previewing bool
	chosen     int
	width      int
	height     int
}

func newPickModel(title string, items []Item) pickModel {
	columns := []table.Column{
		{Title: "Section", Width: 20},
		{Title: "Difficulty", Width: 12},
		{Title: "Question", Width: 60},
		{Title: "Candidate", Width: 10},
	}

	rows := make([]table.Row, 0, len(items))
	for _, item := range items {
		candidate := "✗"
		if item.Question.HasCandidate() {
			candidate = "✓"
		}
		rows = append(rows, table.Row{
			item.Section,
			fmt.Sprintf("%s %s", item.Question.Difficulty.Emoji(), item.Question.Difficulty),
			item.Question.Text,
			candidate,
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(min(len(rows)+1, 20)),
	)

	ts := table.DefaultStyles()
	ts.Header = ts.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(styles.Border)).
		BorderBottom(true).
		Bold(false)
	ts.Selected = ts.Selected.
		Foreground(lipgloss.Color(styles.Background)).
		Background(lipgloss.Color(styles.Yellow)).
		Bold(false)
	t.SetStyles(ts)

	vp := viewport.New(100, 20)
	vp.Style = styles.EditorStyle

	return pickModel{
		table:    t,
		viewport: vp,
		title:    title,
		items:    items,
		chosen:   -1,
	}
}

func (m pickModel) Init() tea.Cmd {
	return nil
}

func (m pickModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetHeight(min(len(m.items)+1, max(msg.Height-8, 3)))
		m.viewport.Width = msg.Width - 4
		m.viewport.Height = msg.Height - 8

	case tea.KeyMsg:
		if m.previewing {
			// In answer preview
			switch msg.String() {
			case "q", "esc":
				m.previewing = false
				return m, nil
			case "enter":
				m.chosen = m.table.Cursor()
				return m, tea.Quit
			case "up", "k", "down", "j":
				m.viewport, cmd = m.viewport.Update(msg)
				return m, cmd
			}
			return m, nil
		}

		// In table view
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "enter":
			if len(m.items) > 0 {
				m.chosen = m.table.Cursor()
			}
			return m, tea.Quit
		case "p", " ":
			if item, ok := m.selected(); ok {
				m.previewing = true
				m.viewport.SetContent(preview(item))
				m.viewport.GotoTop()
			}
			return m, nil
		}
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m pickModel) selected() (Item, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.items) {
		return Item{}, false
	}
	return m.items[i], true
}

func (m pickModel) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render(m.title))
	b.WriteString("\n\n")

	if len(m.items) == 0 {
		b.WriteString(styles.DimStyle.Render("No questions in this note"))
		b.WriteString("\n")
		return b.String()
	}

	if m.previewing {
		b.WriteString(m.viewport.View())
		b.WriteString("\n\n")
		b.WriteString(styles.HelpStyle.Render("↑/k up • ↓/j down • enter answer • esc/q back"))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(m.table.View())
	b.WriteString("\n\n")
	b.WriteString(styles.HelpStyle.Render("↑/k up • ↓/j down • p preview • enter answer • q quit"))
	b.WriteString("\n")

	return b.String()
}

func preview(item Item) string {
	var b strings.Builder
	b.WriteString(styles.Difficulty(item.Question.Difficulty).Render(item.Question.Difficulty.Emoji() + " " + item.Question.Text))
	b.WriteString("\n\n")
	b.WriteString(item.Question.Answer)
	if item.Question.HasCandidate() {
		b.WriteString("\n\n")
		b.WriteString(styles.HighlightStyle.Render("Candidate"))
		b.WriteString("\n")
		b.WriteString(item.Question.Candidate)
	}
	return b.String()
}

// PickQuestion shows the questions of a note and returns the one selected.
// ok is false when the user quit without choosing.
func PickQuestion(title string, items []Item) (Item, bool, error) {
	p := tea.NewProgram(newPickModel(title, items))

	final, err := p.Run()
	if err != nil {
		return Item{}, false, fmt.Errorf("question picker failed: %w", err)
	}

	m := final.(pickModel)
	if m.chosen < 0 || m.chosen >= len(m.items) {
		return Item{}, false, nil
	}
	return m.items[m.chosen], true, nil
}
