package editor

import (
	"fmt"
	"strings"
)

func gutterDigits(lineCount int) int {
	if lineCount < 1 {
		lineCount = 1
	}
	return len(fmt.Sprintf("%d", lineCount))
}

// gutterWidth is the number of cells the line-number gutter takes, including
// its trailing separator.
func (m Model) gutterWidth() int {
	if !m.showLineNums {
		return 0
	}
	return gutterDigits(m.buf.RowCount()) + 1
}

func (m Model) contentWidth() int {
	if m.width <= 0 {
		return 0
	}
	return max(m.width-m.gutterWidth(), 1)
}

func (m Model) renderGutter(row int, isCursorRow bool) string {
	if !m.showLineNums {
		return ""
	}
	digits := gutterDigits(m.buf.RowCount())
	if row < 0 {
		return m.cfg.Style.Gutter.Render(strings.Repeat(" ", digits+1))
	}
	numStyle := m.cfg.Style.LineNum
	if m.focused && isCursorRow {
		numStyle = m.cfg.Style.LineNumActive
	}
	return numStyle.Render(fmt.Sprintf("%*d", digits, row+1)) + m.cfg.Style.Gutter.Render(" ")
}
