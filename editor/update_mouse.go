package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/mel/buffer"
)

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.cfg.ScrollPolicy == ScrollAllowManual || !isManualScrollMouse(msg) {
		m.viewport, cmd = m.viewport.Update(msg)
	}

	if !m.focused || m.Prompting() || m.showHelp {
		return m, cmd
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, cmd
	}
	if msg.X < 0 || msg.Y < 0 || msg.Y >= m.viewport.Height {
		return m, cmd
	}
	m.buf.SetCursor(m.screenToDocPos(msg.X, msg.Y))
	return m, cmd
}

// screenToDocPos maps a cell in the document area to a cursor position. The
// x coordinate is in render space and snaps back to the tab it falls in.
func (m Model) screenToDocPos(x, y int) buffer.Pos {
	row := m.viewport.YOffset + y
	rx := max(x-m.gutterWidth(), 0) + m.xOffset
	return buffer.Pos{Row: row, Col: m.buf.CursorCol(row, rx)}
}

func isManualScrollMouse(msg tea.MouseMsg) bool {
	switch msg.Button { //nolint:exhaustive
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown,
		tea.MouseButtonWheelLeft, tea.MouseButtonWheelRight:
		return true
	}
	return false
}
