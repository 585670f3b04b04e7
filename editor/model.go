package editor

import (
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/mel/buffer"
	"github.com/iw2rmb/mel/filetype"
	"github.com/iw2rmb/mel/syntax"
)

// chromeRows is the status bar plus the message bar.
const chromeRows = 2

// detectLines is how many leading lines feed shebang/modeline detection.
const detectLines = 5

// Model is a Bubble Tea component that edits one document.
type Model struct {
	cfg Config
	buf *buffer.Buffer
	log *slog.Logger

	fileName string

	focused bool

	viewport viewport.Model
	width    int
	height   int
	xOffset  int

	showLineNums bool
	showHelp     bool
	quitLeft     int

	msg   string
	msgID int

	prompt promptState
	input  textinput.Model

	lastQuery string
	match     matchState

	lastBufVersion uint64
	lastChangeVer  uint64
	lastCursor     buffer.Pos
}

func New(cfg Config) Model {
	if cfg.Buffer == (buffer.Options{}) {
		cfg.Buffer = buffer.DefaultOptions()
	}
	if cfg.KeyMap.isZero() {
		cfg.KeyMap = DefaultKeyMap()
	}
	if cfg.QuitTimes == 0 {
		cfg.QuitTimes = DefaultQuitTimes
	}
	if cfg.QuitTimes < 0 {
		cfg.QuitTimes = 0
	}
	if cfg.MessageTimeout <= 0 {
		cfg.MessageTimeout = DefaultMessageTimeout
	}
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	buf := buffer.New(cfg.Buffer)
	buf.Load(cfg.Lines)

	m := Model{
		cfg:          cfg,
		buf:          buf,
		log:          log,
		fileName:     cfg.FileName,
		focused:      true,
		viewport:     viewport.New(0, 0),
		showLineNums: cfg.ShowLineNums,
		quitLeft:     cfg.QuitTimes,
		input:        textinput.New(),
	}
	if cfg.Syntax != nil {
		buf.SetSyntax(cfg.Syntax)
	} else {
		m.detectSyntax()
	}
	if cfg.StartLine > 0 && !buf.GoToLine(cfg.StartLine) {
		m.log.Debug("start line out of range", "line", cfg.StartLine, "rows", buf.RowCount())
	}
	if ch, ok := buf.LastChange(); ok {
		m.lastChangeVer = ch.VersionAfter
	}
	m.lastBufVersion = buf.Version()
	m.lastCursor = buf.Cursor()
	m.refresh()
	return m
}

func (m Model) Buffer() *buffer.Buffer { return m.buf }

func (m Model) FileName() string { return m.fileName }

// SetFileName renames the document and re-resolves its syntax profile.
func (m Model) SetFileName(name string) Model {
	m.fileName = name
	m.detectSyntax()
	m.refresh()
	return m
}

// Message is the text currently shown in the message bar.
func (m Model) Message() string { return m.msg }

func (m Model) ShowingHelp() bool { return m.showHelp }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = max(height-chromeRows, 0)
	m.input.Width = max(width-len(m.input.Prompt)-1, 0)

	m.refresh()
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.refresh()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m *Model) detectSyntax() {
	var head []byte
	if n := min(m.buf.RowCount(), detectLines); n > 0 {
		head = []byte(strings.Join(m.buf.Lines()[:n], "\n") + "\n")
	}
	res := filetype.Detect(m.fileName, head)
	m.buf.SetSyntax(res.Profile)
	if res.Profile != nil {
		m.log.Debug("syntax resolved", "file", m.fileName, "profile", res.Profile.Name, "method", string(res.Method), "language", res.Language)
	}
}

// Syntax returns the active profile, or nil.
func (m Model) Syntax() *syntax.Profile { return m.buf.Syntax() }

// syncFromBuffer rebuilds the view after the buffer changed and reports the
// latest change to OnChange.
func (m *Model) syncFromBuffer() (changed bool) {
	ver := m.buf.Version()
	cur := m.buf.Cursor()
	if ver == m.lastBufVersion && cur == m.lastCursor {
		return false
	}
	m.lastBufVersion = ver
	m.lastCursor = cur

	if ch, ok := m.buf.LastChange(); ok && ch.VersionAfter != m.lastChangeVer {
		m.lastChangeVer = ch.VersionAfter
		if m.match.active && ch.Source != buffer.ChangeSourceLoad {
			m.match = matchState{}
		}
		if m.cfg.OnChange != nil {
			m.cfg.OnChange(buildChangeEvent(m.buf, ch, m.fileName))
		}
	}

	m.refresh()
	return true
}

// refresh scrolls so the cursor stays visible and repaints the document.
func (m *Model) refresh() {
	m.followCursorX()
	m.rebuildContent()
	m.followCursorY()
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

func (m *Model) followCursorY() {
	h := m.viewport.Height
	if h <= 0 {
		return
	}
	row := m.buf.Cursor().Row
	y := m.viewport.YOffset
	if row < y {
		m.viewport.SetYOffset(row)
	} else if row >= y+h {
		m.viewport.SetYOffset(row - h + 1)
	}
}

func (m *Model) followCursorX() {
	w := m.contentWidth()
	if w <= 0 {
		return
	}
	rx := m.buf.CursorRenderCol()
	if rx < m.xOffset {
		m.xOffset = rx
	}
	if rx >= m.xOffset+w {
		m.xOffset = rx - w + 1
	}
}
