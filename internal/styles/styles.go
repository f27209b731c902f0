package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/gerunddev/interviewer/internal/question"
)

// Monokai Pro color palette
const (
	// Base colors
	Background = "#2D2A2E"
	Foreground = "#FCFCFA"

	// Accent colors
	Red     = "#FF6188" // Errors, hard questions
	Orange  = "#FC9867" // Warnings
	Yellow  = "#FFD866" // Highlights, medium questions
	Green   = "#A9DC76" // Success, easy questions
	Cyan    = "#78DCE8" // Info
	Blue    = "#AB9DF2" // Links
	Magenta = "#FF6188" // Titles, emphasis

	// UI colors
	Comment = "#727072" // Dim text, help
	Border  = "#5B595C" // Borders, separators
)

// Common styles
var (
	SuccessStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(Green))
	ErrorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(Red))
	WarningStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(Orange))
	InfoStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color(Cyan))
	DimStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color(Comment))
	TitleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(Magenta))
	HighlightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(Yellow)).Bold(true)
	HelpStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color(Comment))

	// Table/list styles
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(Magenta))

	SectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(Blue)).
			MarginTop(1)

	EditorStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(Border)).
			Padding(0, 1)
)

// Difficulty returns the style a difficulty label is drawn in
func Difficulty(d question.Difficulty) lipgloss.Style {
	switch d {
	case question.Easy:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(Green))
	case question.Medium:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(Yellow))
	case question.Hard:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(Red))
	}
	return DimStyle
}
