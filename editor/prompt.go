package editor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/mel/buffer"
)

type promptKind uint8

const (
	promptNone promptKind = iota
	promptSaveAs
	promptSearch
	promptReplaceFind
	promptReplaceWith
	promptGoToLine
)

func (k promptKind) label() string {
	switch k {
	case promptSaveAs:
		return "Save as: "
	case promptSearch:
		return "Search: "
	case promptReplaceFind:
		return "Replace: "
	case promptReplaceWith:
		return "With: "
	case promptGoToLine:
		return "Go to line: "
	default:
		return ""
	}
}

type promptState struct {
	kind promptKind

	// Search restores these on cancel.
	savedCursor  buffer.Pos
	savedYOffset int
	savedXOffset int

	// find is the pattern collected before the replacement prompt.
	find string
}

func (m Model) Prompting() bool { return m.prompt.kind != promptNone }

func (m *Model) openPrompt(kind promptKind, value string) tea.Cmd {
	m.prompt = promptState{
		kind:         kind,
		savedCursor:  m.buf.Cursor(),
		savedYOffset: m.viewport.YOffset,
		savedXOffset: m.xOffset,
		find:         m.prompt.find,
	}
	m.input = textinput.New()
	m.input.Prompt = kind.label()
	m.input.Width = max(m.width-len(m.input.Prompt)-1, 0)
	m.input.SetValue(value)
	m.input.CursorEnd()
	m.msg = ""
	return m.input.Focus()
}

func (m *Model) closePrompt() {
	m.prompt = promptState{}
	m.input.Blur()
}

func (m Model) updatePrompt(msg tea.KeyMsg) (Model, tea.Cmd) {
	km := m.cfg.KeyMap
	switch {
	case msg.Type == tea.KeyEsc:
		return m.cancelPrompt()
	case msg.Type == tea.KeyEnter:
		return m.submitPrompt()
	}

	if m.prompt.kind == promptSearch {
		switch {
		case key.Matches(msg, km.FindNext, km.Down):
			m.findAgain(true)
			return m, nil
		case key.Matches(msg, km.FindPrev, km.Up):
			m.findAgain(false)
			return m, nil
		}
	}

	var cmd tea.Cmd
	before := m.input.Value()
	m.input, cmd = m.input.Update(msg)
	if m.prompt.kind == promptSearch && m.input.Value() != before {
		m.incrementalSearch()
	}
	return m, cmd
}

// incrementalSearch re-runs the search from where the prompt was opened,
// so the hit at the cursor itself is found.
func (m *Model) incrementalSearch() {
	q := m.input.Value()
	m.lastQuery = q
	from := m.prompt.savedCursor
	from.Col--
	if q == "" || !m.findFrom(q, from, true) {
		m.buf.SetCursor(m.prompt.savedCursor)
		m.match = matchState{}
	}
}

func (m Model) cancelPrompt() (Model, tea.Cmd) {
	kind := m.prompt.kind
	if kind == promptSearch {
		m.buf.SetCursor(m.prompt.savedCursor)
		m.viewport.SetYOffset(m.prompt.savedYOffset)
		m.xOffset = m.prompt.savedXOffset
		m.match = matchState{}
	}
	m.closePrompt()
	m.log.Debug("prompt cancelled", "prompt", strings.TrimSuffix(kind.label(), ": "))
	if kind == promptSaveAs {
		cmd := m.setMessage("Save aborted")
		return m, cmd
	}
	return m, nil
}

func (m Model) submitPrompt() (Model, tea.Cmd) {
	kind := m.prompt.kind
	value := m.input.Value()
	find := m.prompt.find
	m.closePrompt()

	switch kind {
	case promptSaveAs:
		if value == "" {
			cmd := m.setMessage("Save aborted")
			return m, cmd
		}
		m = m.SetFileName(value)
		return m.save()

	case promptSearch:
		if value == "" {
			return m, nil
		}
		m.lastQuery = value
		return m, nil

	case promptReplaceFind:
		if value == "" {
			return m, nil
		}
		m.prompt.find = value
		cmd := m.openPrompt(promptReplaceWith, "")
		return m, cmd

	case promptReplaceWith:
		n := m.buf.ReplaceAll(find, value)
		m.prompt.find = ""
		cmd := m.setMessage(fmt.Sprintf("Replaced %d occurrence%s", n, plural(n)))
		return m, cmd

	case promptGoToLine:
		line, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil || !m.buf.GoToLine(line) {
			cmd := m.setMessage(fmt.Sprintf("Invalid line number: %q (1-%d)", value, m.buf.RowCount()))
			return m, cmd
		}
		return m, nil
	}
	return m, nil
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
