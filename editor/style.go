package editor

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/mel/syntax"
)

// Style controls the editor's rendering.
type Style struct {
	Gutter        lipgloss.Style
	LineNum       lipgloss.Style
	LineNumActive lipgloss.Style

	Text   lipgloss.Style
	Cursor lipgloss.Style
	// Tilde marks screen rows past the end of the document.
	Tilde        lipgloss.Style
	ColumnMarker lipgloss.Style
	// ControlChar paints control bytes as @-letters.
	ControlChar lipgloss.Style

	// One style per highlight tag. Normal uses Text.
	Comment  lipgloss.Style
	Keyword1 lipgloss.Style
	Keyword2 lipgloss.Style
	String   lipgloss.Style
	Number   lipgloss.Style
	Match    lipgloss.Style

	StatusBar  lipgloss.Style
	MessageBar lipgloss.Style
	Welcome    lipgloss.Style
	HelpBox    lipgloss.Style
	HelpKey    lipgloss.Style
}

func DefaultStyle() Style {
	gutter := lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	return Style{
		Gutter:        gutter,
		LineNum:       gutter,
		LineNumActive: lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		Text:          lipgloss.NewStyle(),
		Cursor:        lipgloss.NewStyle().Reverse(true),
		Tilde:         lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		ColumnMarker:  lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
		ControlChar:   lipgloss.NewStyle().Reverse(true),

		Comment:  lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		Keyword1: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		Keyword2: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		String:   lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
		Number:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		Match:    lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Reverse(true),

		StatusBar:  lipgloss.NewStyle().Reverse(true),
		MessageBar: lipgloss.NewStyle(),
		Welcome:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		HelpBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("4")).
			Padding(0, 1),
		HelpKey: lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),
	}
}

// tagStyle maps a highlight tag to its style.
func (s Style) tagStyle(t syntax.Tag) lipgloss.Style {
	switch t {
	case syntax.LineComment, syntax.BlockComment:
		return s.Comment
	case syntax.Keyword1:
		return s.Keyword1
	case syntax.Keyword2:
		return s.Keyword2
	case syntax.String:
		return s.String
	case syntax.Number:
		return s.Number
	case syntax.SearchMatch:
		return s.Match
	default:
		return s.Text
	}
}
