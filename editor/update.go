package editor

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/mel/buffer"
	"github.com/iw2rmb/mel/fileio"
)

// clearMessageMsg expires the message with the same id.
type clearMessageMsg struct{ id int }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case clearMessageMsg:
		if msg.id == m.msgID {
			m.msg = ""
		}
		return m, nil
	case tea.MouseMsg:
		m, cmd = m.updateMouse(msg)
	case tea.KeyMsg:
		switch {
		case m.showHelp:
			m.showHelp = false
		case m.Prompting():
			m, cmd = m.updatePrompt(msg)
		default:
			m, cmd = m.updateKey(msg)
		}
	default:
		// The host may have mutated the buffer directly.
	}
	m.syncFromBuffer()
	return m, cmd
}

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}
	km := m.cfg.KeyMap

	if key.Matches(msg, km.Quit) {
		return m.quit()
	}
	m.quitLeft = m.cfg.QuitTimes

	// Paste events insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		m.buf.InsertText(string(msg.Runes))
		return m, nil
	}

	switch {
	case key.Matches(msg, km.Left):
		m.buf.Move(buffer.Move{Unit: buffer.MoveChar, Dir: buffer.DirLeft})
	case key.Matches(msg, km.Right):
		m.buf.Move(buffer.Move{Unit: buffer.MoveChar, Dir: buffer.DirRight})
	case key.Matches(msg, km.Up):
		m.buf.Move(buffer.Move{Unit: buffer.MoveChar, Dir: buffer.DirUp})
	case key.Matches(msg, km.Down):
		m.buf.Move(buffer.Move{Unit: buffer.MoveChar, Dir: buffer.DirDown})
	case key.Matches(msg, km.Home):
		m.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirHome})
	case key.Matches(msg, km.End):
		m.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirEnd})
	case key.Matches(msg, km.PageUp):
		m.pageMove(buffer.DirUp)
	case key.Matches(msg, km.PageDown):
		m.pageMove(buffer.DirDown)

	case key.Matches(msg, km.Backspace):
		m.buf.DeleteChar()
	case key.Matches(msg, km.Delete):
		m.deleteForward()
	case key.Matches(msg, km.Enter):
		m.buf.InsertNewline()

	case key.Matches(msg, km.FlipUp):
		m.buf.FlipUp()
	case key.Matches(msg, km.FlipDown):
		m.buf.FlipDown()

	case key.Matches(msg, km.CopyLine):
		if m.buf.CopyLine() {
			m.exportClipboard()
			cmd := m.setMessage("Line copied")
			return m, cmd
		}
	case key.Matches(msg, km.CutLine):
		if m.buf.CutLine() {
			m.exportClipboard()
		}
	case key.Matches(msg, km.PasteLine):
		m.pasteLine()

	case key.Matches(msg, km.Undo):
		if !m.buf.Undo() {
			cmd := m.setMessage("Nothing to undo")
			return m, cmd
		}
	case key.Matches(msg, km.Redo):
		if !m.buf.Redo() {
			cmd := m.setMessage("Nothing to redo")
			return m, cmd
		}

	case key.Matches(msg, km.Save):
		if m.fileName == "" {
			cmd := m.openPrompt(promptSaveAs, "")
			return m, cmd
		}
		return m.save()
	case key.Matches(msg, km.Find):
		m.match = matchState{}
		cmd := m.openPrompt(promptSearch, "")
		return m, cmd
	case key.Matches(msg, km.FindNext):
		m.findAgain(true)
	case key.Matches(msg, km.FindPrev):
		m.findAgain(false)
	case key.Matches(msg, km.Replace):
		cmd := m.openPrompt(promptReplaceFind, "")
		return m, cmd
	case key.Matches(msg, km.GoToLine):
		cmd := m.openPrompt(promptGoToLine, "")
		return m, cmd

	case key.Matches(msg, km.ToggleLineNums):
		m.showLineNums = !m.showLineNums
		state := "disabled"
		if m.showLineNums {
			state = "enabled"
		}
		m.refresh()
		cmd := m.setMessage("Line numbers " + state)
		return m, cmd
	case key.Matches(msg, km.Help):
		m.showHelp = true

	default:
		switch msg.Type {
		case tea.KeyTab:
			m.buf.InsertChar('\t')
		case tea.KeySpace:
			m.buf.InsertChar(' ')
		case tea.KeyRunes:
			if !msg.Alt {
				m.buf.InsertText(string(msg.Runes))
			}
		}
	}

	return m, nil
}

func (m Model) quit() (Model, tea.Cmd) {
	if m.buf.Modified() && m.quitLeft > 0 {
		n := m.quitLeft
		m.quitLeft--
		cmd := m.setMessage(fmt.Sprintf("Warning! File has unsaved changes. Press Ctrl-Q %d more time%s to quit", n, plural(n)))
		return m, cmd
	}
	return m, tea.Quit
}

// pageMove jumps to the top (or bottom) screen row and then one screen
// further.
func (m *Model) pageMove(dir buffer.MoveDir) {
	h := max(m.viewport.Height, 1)
	cur := m.buf.Cursor()
	if dir == buffer.DirUp {
		cur.Row = m.viewport.YOffset
	} else {
		cur.Row = m.viewport.YOffset + h - 1
	}
	m.buf.SetCursor(cur)
	m.buf.Move(buffer.Move{Unit: buffer.MovePage, Dir: dir, Count: h})
}

// deleteForward deletes the byte under the cursor by stepping right and
// backspacing.
func (m *Model) deleteForward() {
	before := m.buf.Cursor()
	m.buf.Move(buffer.Move{Unit: buffer.MoveChar, Dir: buffer.DirRight})
	if m.buf.Cursor() == before || m.buf.OnVirtualRow() {
		m.buf.SetCursor(before)
		return
	}
	m.buf.DeleteChar()
}

// pasteLine pastes the system clipboard when it holds a single line,
// otherwise the line clipboard. Multi-line system text is typed in.
func (m *Model) pasteLine() {
	if m.cfg.Clipboard != nil {
		s, err := m.cfg.Clipboard.ReadText()
		switch {
		case err != nil:
			m.log.Warn("clipboard read failed", "err", err)
		case strings.ContainsAny(s, "\r\n"):
			m.buf.InsertText(s)
			return
		case s != "":
			m.buf.SetClipboard(s)
		}
	}
	m.buf.PasteLine()
}

func (m *Model) exportClipboard() {
	if m.cfg.Clipboard == nil {
		return
	}
	s, ok := m.buf.Clipboard()
	if !ok {
		return
	}
	if err := m.cfg.Clipboard.WriteText(s); err != nil {
		m.log.Warn("clipboard write failed", "err", err)
	}
}

func (m Model) save() (Model, tea.Cmd) {
	n, err := fileio.Save(m.fileName, m.buf.Lines(), fileio.SaveOptions{Backup: m.cfg.Backup})
	if errors.Is(err, fileio.ErrNoFileName) {
		cmd := m.openPrompt(promptSaveAs, "")
		return m, cmd
	}
	if err != nil {
		m.log.Error("save failed", "file", m.fileName, "err", err)
		cmd := m.setMessage(fmt.Sprintf("Can't save! I/O error: %v", err))
		return m, cmd
	}
	m.buf.MarkSaved()
	m.log.Info("saved", "file", m.fileName, "bytes", n, "backup", m.cfg.Backup)
	cmd := m.setMessage(fmt.Sprintf("%d bytes written to disk", n))
	return m, cmd
}

// setMessage shows s in the message bar and schedules its removal.
func (m *Model) setMessage(s string) tea.Cmd {
	m.msg = s
	m.msgID++
	id := m.msgID
	return tea.Tick(m.cfg.MessageTimeout, func(time.Time) tea.Msg {
		return clearMessageMsg{id: id}
	})
}
