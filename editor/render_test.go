package editor

import (
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/iw2rmb/mel"
	"github.com/iw2rmb/mel/syntax"
)

func contentLines(m Model) []string {
	return strings.Split(m.renderContent(), "\n")
}

func TestRender_TabsExpandAndCursorCell(t *testing.T) {
	cfg := testConfig("a\tb")
	cfg.Style = Style{Cursor: lipgloss.NewStyle().PaddingLeft(1).PaddingRight(1)}
	m := New(cfg)

	if got, want := contentLines(m)[0], " a    b"; got != want {
		t.Fatalf("row=%q, want %q", got, want)
	}

	m = send(t, m, keyMsg(tea.KeyEnd))
	if got, want := contentLines(m)[0], "a   b   "; got != want {
		t.Fatalf("row with cursor at end=%q, want %q", got, want)
	}
}

func TestRender_LineNumbers(t *testing.T) {
	lines := make([]string, 12)
	for i := range lines {
		lines[i] = "x"
	}
	cfg := testConfig(lines...)
	cfg.ShowLineNums = true
	m := New(cfg)
	m = m.SetSize(20, 14)

	got := contentLines(m)
	if len(got) != 12 {
		t.Fatalf("lines=%d, want 12", len(got))
	}
	if got[0] != " 1 x" {
		t.Fatalf("line 0=%q, want %q", got[0], " 1 x")
	}
	if got[11] != "12 x" {
		t.Fatalf("line 11=%q, want %q", got[11], "12 x")
	}

	m = send(t, m, keyMsg(tea.KeyCtrlB))
	if got := contentLines(m)[1]; got != "x" {
		t.Fatalf("line numbers off: %q", got)
	}
}

func TestRender_ControlCharsAndColumnMarker(t *testing.T) {
	cfg := testConfig("a\x01b")
	cfg.ColumnMarker = 6
	m := New(cfg).Blur()

	if got, want := contentLines(m)[0], "aAb  |"; got != want {
		t.Fatalf("row=%q, want %q", got, want)
	}
}

func TestRender_ColumnMarkerOverText(t *testing.T) {
	cfg := testConfig("abcdef")
	cfg.ColumnMarker = 3
	m := New(cfg).Blur()

	if got, want := contentLines(m)[0], "ab|def"; got != want {
		t.Fatalf("row=%q, want %q", got, want)
	}
}

func TestRender_EmptyDocumentShowsWelcome(t *testing.T) {
	m := New(testConfig())
	m = m.SetSize(60, 11)

	got := contentLines(m)
	if len(got) != 9 {
		t.Fatalf("lines=%d, want 9", len(got))
	}
	if got[0] != " " {
		t.Fatalf("virtual row=%q, want cursor cell", got[0])
	}
	if got[1] != "~" {
		t.Fatalf("line 1=%q, want %q", got[1], "~")
	}
	if !strings.Contains(got[3], mel.Banner()) {
		t.Fatalf("line 3=%q, want banner", got[3])
	}
	if !strings.HasPrefix(got[3], "~") {
		t.Fatalf("banner line should keep the tilde: %q", got[3])
	}
}

func TestRender_TildesPastEnd(t *testing.T) {
	m := New(testConfig("a")).Blur()
	m = m.SetSize(10, 5)

	got := contentLines(m)
	want := []string{"a", "~", "~"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("lines=%q, want %q", got, want)
	}
}

func TestRender_HorizontalScrollFollowsCursor(t *testing.T) {
	m := New(testConfig(strings.Repeat("x", 30) + "END"))
	m = m.SetSize(10, 5)
	m = send(t, m, keyMsg(tea.KeyEnd))

	if got, want := contentLines(m)[0], "xxxxxxEND "; got != want {
		t.Fatalf("row=%q, want %q", got, want)
	}
	m = send(t, m, keyMsg(tea.KeyHome))
	if got, want := contentLines(m)[0], strings.Repeat("x", 10); got != want {
		t.Fatalf("row=%q, want %q", got, want)
	}
}

func TestRender_HighlightColors(t *testing.T) {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)

	st := Style{
		Text:     r.NewStyle(),
		Keyword1: r.NewStyle().Foreground(lipgloss.Color("#ff0000")),
		Number:   r.NewStyle().Foreground(lipgloss.Color("#00ff00")),
	}
	cfg := testConfig("if x 42")
	cfg.Style = st
	cfg.Syntax, _ = syntax.Lookup("c")
	m := New(cfg).Blur()

	want := st.Keyword1.Render("if") + st.Text.Render(" x ") + st.Number.Render("42")
	if got := contentLines(m)[0]; got != want {
		t.Fatalf("row=%q, want %q", got, want)
	}
	if !strings.Contains(want, "\x1b[") {
		t.Fatalf("expected ANSI sequences in %q", want)
	}
}

func TestRender_SearchMatchStyle(t *testing.T) {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	st := Style{
		Text:  r.NewStyle(),
		Match: r.NewStyle().Foreground(lipgloss.Color("#0000ff")),
	}
	cfg := testConfig("say foo")
	cfg.Style = st
	m := New(cfg)

	m = send(t, m, keyMsg(tea.KeyCtrlF), runes("foo"))
	m = m.Blur()
	want := st.Text.Render("say ") + st.Match.Render("foo")
	if got := contentLines(m)[0]; got != want {
		t.Fatalf("row=%q, want %q", got, want)
	}
}

func TestRender_StatusBar(t *testing.T) {
	cfg := testConfig("a", "b")
	cfg.FileName = "main.go"
	m := New(cfg)
	m = m.SetSize(60, 10)
	m = send(t, m, keyMsg(tea.KeyDown), runes("z"))

	got := m.renderStatusBar()
	if !strings.HasPrefix(got, " main.go - 2 lines (modified)") {
		t.Fatalf("status=%q", got)
	}
	if !strings.HasSuffix(got, "go | Line 2/2 Col 2 ") {
		t.Fatalf("status=%q", got)
	}
	if w := lipgloss.Width(got); w != 60 {
		t.Fatalf("status width=%d, want 60", w)
	}
}

func TestRender_ViewHasChrome(t *testing.T) {
	m := New(testConfig("a"))
	m = m.SetSize(30, 6)
	m = send(t, m, keyMsg(tea.KeyCtrlB))

	lines := strings.Split(m.View(), "\n")
	if len(lines) != 6 {
		t.Fatalf("view lines=%d, want 6", len(lines))
	}
	if got, want := lines[5], "Line numbers enabled"; got != want {
		t.Fatalf("message bar=%q, want %q", got, want)
	}
}
