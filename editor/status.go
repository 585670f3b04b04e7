package editor

import (
	"fmt"

	"github.com/iw2rmb/mel/internal/grapheme"
)

const maxStatusName = 20

// renderStatusBar shows the file on the left and the cursor on the right:
//
//	main.go - 42 lines (modified)          go | Line 3/42 Col 7
func (m Model) renderStatusBar() string {
	name := m.fileName
	if name == "" {
		name = "[No Name]"
	}
	modified := ""
	if m.buf.Modified() {
		modified = " (modified)"
	}
	left := fmt.Sprintf(" %s - %d lines%s", grapheme.Truncate(name, maxStatusName), m.buf.RowCount(), modified)

	cur := m.buf.Cursor()
	right := fmt.Sprintf("Line %d/%d Col %d ", cur.Row+1, m.buf.RowCount(), cur.Col+1)
	if p := m.buf.Syntax(); p != nil {
		right = p.Name + " | " + right
	}

	if m.width <= 0 {
		return m.cfg.Style.StatusBar.Render(left + "  " + right)
	}
	left = grapheme.Truncate(left, m.width)
	line := grapheme.PadRight(left, m.width)
	if gap := m.width - grapheme.Width(left) - grapheme.Width(right); gap > 0 {
		line = left + fmt.Sprintf("%*s", gap, "") + right
	}
	return m.cfg.Style.StatusBar.Render(line)
}

func (m Model) renderMessageBar() string {
	if m.Prompting() {
		return m.input.View()
	}
	msg := m.msg
	if m.width > 0 {
		msg = grapheme.Truncate(msg, m.width)
	}
	return m.cfg.Style.MessageBar.Render(msg)
}
