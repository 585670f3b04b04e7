package editor

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/mel/buffer"
)

func TestPrompt_IncrementalSearchAndCancel(t *testing.T) {
	m := New(testConfig("alpha", "beta foo", "foo gamma"))

	m = send(t, m, keyMsg(tea.KeyCtrlF))
	if !m.Prompting() {
		t.Fatalf("expected search prompt")
	}
	m = send(t, m, runes("foo"))
	if got, want := m.buf.Cursor(), (buffer.Pos{Row: 1, Col: 5}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}

	m = send(t, m, keyMsg(tea.KeyCtrlN))
	if got, want := m.buf.Cursor(), (buffer.Pos{Row: 2, Col: 0}); got != want {
		t.Fatalf("next match=%v, want %v", got, want)
	}
	m = send(t, m, keyMsg(tea.KeyUp))
	if got, want := m.buf.Cursor(), (buffer.Pos{Row: 1, Col: 5}); got != want {
		t.Fatalf("previous match=%v, want %v", got, want)
	}

	m = send(t, m, keyMsg(tea.KeyEsc))
	if m.Prompting() {
		t.Fatalf("expected prompt closed")
	}
	if got := m.buf.Cursor(); got != (buffer.Pos{}) {
		t.Fatalf("cursor after cancel=%v, want origin", got)
	}
}

func TestPrompt_SearchSubmitKeepsPositionAndFindNext(t *testing.T) {
	m := New(testConfig("foo", "bar foo"))

	m = send(t, m, keyMsg(tea.KeyCtrlF), runes("foo"))
	if got, want := m.buf.Cursor(), (buffer.Pos{Row: 0, Col: 0}); got != want {
		t.Fatalf("match at cursor=%v, want %v", got, want)
	}
	m = send(t, m, keyMsg(tea.KeyEnter))
	if m.Prompting() {
		t.Fatalf("expected prompt closed")
	}

	m = send(t, m, keyMsg(tea.KeyCtrlN))
	if got, want := m.buf.Cursor(), (buffer.Pos{Row: 1, Col: 4}); got != want {
		t.Fatalf("find next=%v, want %v", got, want)
	}
	m = send(t, m, keyMsg(tea.KeyCtrlN))
	if got, want := m.buf.Cursor(), (buffer.Pos{Row: 0, Col: 0}); got != want {
		t.Fatalf("find next wraps=%v, want %v", got, want)
	}
}

func TestPrompt_SearchMissRestoresCursor(t *testing.T) {
	m := New(testConfig("abc", "def"))
	m = send(t, m, keyMsg(tea.KeyDown), keyMsg(tea.KeyCtrlF), runes("zzz"))
	if got, want := m.buf.Cursor(), (buffer.Pos{Row: 1, Col: 0}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}

func TestPrompt_ReplaceAll(t *testing.T) {
	m := New(testConfig("a-a", "b"))

	m = send(t, m, keyMsg(tea.KeyCtrlJ), runes("a"), keyMsg(tea.KeyEnter))
	if !m.Prompting() {
		t.Fatalf("expected replacement prompt")
	}
	m = send(t, m, runes("zz"), keyMsg(tea.KeyEnter))

	if got, want := m.buf.Text(), "zz-zz\nb"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := m.Message(), "Replaced 2 occurrences"; got != want {
		t.Fatalf("message=%q, want %q", got, want)
	}
	if m.buf.CanUndo() {
		t.Fatalf("replace should reset history")
	}
}

func TestPrompt_GoToLine(t *testing.T) {
	m := New(testConfig("a", "b", "c"))

	m = send(t, m, keyMsg(tea.KeyCtrlG), runes("3"), keyMsg(tea.KeyEnter))
	if got, want := m.buf.Cursor(), (buffer.Pos{Row: 2, Col: 0}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}

	m = send(t, m, keyMsg(tea.KeyCtrlG), runes("9"), keyMsg(tea.KeyEnter))
	if !strings.HasPrefix(m.Message(), "Invalid line number") {
		t.Fatalf("message=%q", m.Message())
	}
	if got, want := m.buf.Cursor(), (buffer.Pos{Row: 2, Col: 0}); got != want {
		t.Fatalf("cursor moved on invalid line: %v", got)
	}
}

func TestPrompt_ShowsInMessageBar(t *testing.T) {
	m := New(testConfig("a"))
	m = m.SetSize(40, 5)
	m = send(t, m, keyMsg(tea.KeyCtrlG), runes("12"))

	if got := m.renderMessageBar(); !strings.Contains(got, "12") {
		t.Fatalf("message bar=%q, want typed input", got)
	}
}

func TestPrompt_KeysDoNotEditDocument(t *testing.T) {
	m := New(testConfig("a"))
	m = send(t, m, keyMsg(tea.KeyCtrlF), runes("xyz"), keyMsg(tea.KeyBackspace), keyMsg(tea.KeyEsc))
	if got, want := m.buf.Text(), "a"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if m.buf.Modified() {
		t.Fatalf("prompt input modified the document")
	}
}
