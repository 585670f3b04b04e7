package buffer

import (
	"strings"

	"github.com/iw2rmb/mel/syntax"
)

const (
	// HistoryDisabled turns the action log off: nothing is recorded and
	// undo/redo never succeed.
	HistoryDisabled = 0
	// HistoryUnlimited keeps every action; the oldest are never evicted.
	HistoryUnlimited = -1

	DefaultHistoryLimit = 80
	DefaultTabStop      = 4
)

type Options struct {
	HistoryLimit int // HistoryDisabled, HistoryUnlimited, or a positive capacity
	TabStop      int // default: DefaultTabStop
}

// DefaultOptions returns the options mel starts with.
func DefaultOptions() Options {
	return Options{HistoryLimit: DefaultHistoryLimit, TabStop: DefaultTabStop}
}

// Buffer is one editing session: rows, cursor, line clipboard, and the
// action log.
type Buffer struct {
	rows    []*Row
	dirty   int
	version uint64

	cursor Pos

	clip    string
	hasClip bool

	scanner *syntax.Scanner

	opt Options
	log *ActionLog

	lastChange    Change
	hasLastChange bool
}

// New returns an empty buffer with no rows. The cursor starts on the
// virtual row.
func New(opt Options) *Buffer {
	if opt.TabStop < 1 {
		opt.TabStop = DefaultTabStop
	}
	if opt.HistoryLimit < 0 {
		opt.HistoryLimit = HistoryUnlimited
	}
	return &Buffer{
		scanner: syntax.NewScanner(nil),
		opt:     opt,
		log:     newActionLog(opt.HistoryLimit),
	}
}

// Load replaces the document with lines, in order, and resets the cursor,
// history, and modification counter.
func (b *Buffer) Load(lines []string) {
	cb := b.beginChange(ChangeSourceLoad, 0)
	b.rows = make([]*Row, len(lines))
	for i, line := range lines {
		r := &Row{index: i, chars: []byte(line)}
		r.updateRender(b.opt.TabStop)
		b.rows[i] = r
	}
	b.rescanAll()
	b.cursor = Pos{}
	b.log.clear()
	b.dirty = 0
	b.version++
	b.commitChange(cb)
}

// Text joins every row with "\n". No trailing newline is added.
func (b *Buffer) Text() string {
	var sb strings.Builder
	for i, r := range b.rows {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.Write(r.chars)
	}
	return sb.String()
}

func (b *Buffer) Lines() []string {
	out := make([]string, len(b.rows))
	for i, r := range b.rows {
		out[i] = string(r.chars)
	}
	return out
}

func (b *Buffer) RowCount() int { return len(b.rows) }

// Row returns row i, or nil when i is out of range.
func (b *Buffer) Row(i int) *Row {
	if i < 0 || i >= len(b.rows) {
		return nil
	}
	return b.rows[i]
}

// Dirty counts mutations since the last Load or MarkSaved.
func (b *Buffer) Dirty() int { return b.dirty }

func (b *Buffer) Modified() bool { return b.dirty != 0 }

// MarkSaved resets the modification counter after a successful save.
func (b *Buffer) MarkSaved() {
	b.dirty = 0
	b.version++
}

// Version increases on every observable state change, including cursor
// moves. Renderers use it to skip redundant work.
func (b *Buffer) Version() uint64 { return b.version }

func (b *Buffer) TabStop() int { return b.opt.TabStop }

func (b *Buffer) Options() Options { return b.opt }

func (b *Buffer) Cursor() Pos { return b.cursor }

// SetCursor moves the cursor, clamped to the document. Row may equal
// RowCount() (the virtual row), where Col is always 0.
func (b *Buffer) SetCursor(p Pos) {
	next := b.clampPos(p)
	if next == b.cursor {
		return
	}
	b.cursor = next
	b.version++
}

// OnVirtualRow reports whether the cursor is past the last real row.
func (b *Buffer) OnVirtualRow() bool { return b.cursor.Row >= len(b.rows) }

func (b *Buffer) clampPos(p Pos) Pos {
	p.Row = clampInt(p.Row, 0, len(b.rows))
	if p.Row == len(b.rows) {
		p.Col = 0
		return p
	}
	p.Col = clampInt(p.Col, 0, len(b.rows[p.Row].chars))
	return p
}

// Syntax returns the active profile, or nil when highlighting is off.
func (b *Buffer) Syntax() *syntax.Profile { return b.scanner.Profile() }

// SetSyntax selects p (nil disables highlighting) and rescans every row.
func (b *Buffer) SetSyntax(p *syntax.Profile) {
	b.scanner = syntax.NewScanner(p)
	b.rescanAll()
	b.version++
}

// Clipboard returns the line clipboard and whether it was ever filled.
func (b *Buffer) Clipboard() (string, bool) { return b.clip, b.hasClip }

func (b *Buffer) SetClipboard(s string) {
	b.clip = s
	b.hasClip = true
}

// History exposes the action log for inspection.
func (b *Buffer) History() *ActionLog { return b.log }

func (b *Buffer) CanUndo() bool { return b.log.canUndo() }

func (b *Buffer) CanRedo() bool { return b.log.canRedo() }

// touch records one mutation.
func (b *Buffer) touch() {
	b.dirty++
	b.version++
}
