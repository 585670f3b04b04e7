package editor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/mel"
	"github.com/iw2rmb/mel/syntax"
)

type cellKind uint8

const (
	cellTag cellKind = iota
	cellCursor
	cellControl
	cellMarker
)

// run is a stretch of render bytes painted with one style.
type run struct {
	kind cellKind
	tag  syntax.Tag
	text []byte
}

func (m *Model) renderContent() string {
	rows := m.buf.RowCount()
	cursor := m.buf.Cursor()

	n := rows
	if cursor.Row >= rows {
		n = rows + 1
	}
	n = max(n, m.viewport.Height)

	out := make([]string, 0, n)
	for y := 0; y < n; y++ {
		switch {
		case y < rows:
			out = append(out, m.renderGutter(y, y == cursor.Row)+m.renderRow(y))
		case y == cursor.Row && m.focused:
			out = append(out, m.renderGutter(-1, false)+m.cfg.Style.Cursor.Render(" "))
		case rows == 0 && y == m.viewport.Height/3:
			out = append(out, m.renderWelcome())
		default:
			out = append(out, m.renderGutter(-1, false)+m.cfg.Style.Tilde.Render("~"))
		}
	}
	return strings.Join(out, "\n")
}

func (m *Model) renderWelcome() string {
	banner := mel.Banner()
	w := m.width
	if w <= 0 || len(banner) >= w {
		return m.cfg.Style.Welcome.Render(banner)
	}
	pad := (w - len(banner)) / 2
	var sb strings.Builder
	if pad > 0 {
		sb.WriteString(m.cfg.Style.Tilde.Render("~"))
		pad--
	}
	sb.WriteString(strings.Repeat(" ", pad))
	sb.WriteString(m.cfg.Style.Welcome.Render(banner))
	return sb.String()
}

// renderRow paints the visible window of a row: highlight tags, the search
// match, control bytes, the cursor and the column marker.
func (m *Model) renderRow(row int) string {
	r := m.buf.Row(row)
	render := []byte(r.Render())
	hl := r.Highlight()
	m.applyMatch(row, hl)

	cursor := m.buf.Cursor()
	cursorRX := -1
	if m.focused && cursor.Row == row {
		cursorRX = m.buf.CursorRenderCol()
	}
	marker := m.cfg.ColumnMarker - 1

	start := max(m.xOffset, 0)
	end := len(render)
	limit := -1
	if w := m.contentWidth(); w > 0 {
		limit = start + w
		end = min(end, limit)
	}

	var runs []run
	push := func(kind cellKind, tag syntax.Tag, c byte) {
		if k := len(runs) - 1; k >= 0 && runs[k].kind == kind && runs[k].tag == tag {
			runs[k].text = append(runs[k].text, c)
			return
		}
		runs = append(runs, run{kind: kind, tag: tag, text: []byte{c}})
	}

	col := start
	for ; col < end; col++ {
		c := render[col]
		isCtrl := c < 0x20 || c == 0x7f
		if isCtrl {
			c = controlGlyph(c)
		}
		switch {
		case col == cursorRX:
			push(cellCursor, 0, c)
		case col == marker:
			push(cellMarker, 0, '|')
		case isCtrl:
			push(cellControl, 0, c)
		default:
			push(cellTag, hl[col], c)
		}
	}
	if cursorRX == col && col == len(render) && (limit < 0 || col < limit) {
		push(cellCursor, 0, ' ')
		col++
	}
	if marker >= col && (limit < 0 || marker < limit) && m.cfg.ColumnMarker > 0 {
		for ; col < marker; col++ {
			push(cellTag, syntax.Normal, ' ')
		}
		push(cellMarker, 0, '|')
	}

	var sb strings.Builder
	for _, rn := range runs {
		sb.WriteString(m.runStyle(rn).Render(string(rn.text)))
	}
	return sb.String()
}

func (m *Model) runStyle(rn run) lipgloss.Style {
	switch rn.kind {
	case cellCursor:
		return m.cfg.Style.Cursor
	case cellControl:
		return m.cfg.Style.ControlChar
	case cellMarker:
		return m.cfg.Style.ColumnMarker
	default:
		return m.cfg.Style.tagStyle(rn.tag)
	}
}

// controlGlyph shows ^A..^Z as A..Z and other control bytes as '?'.
func controlGlyph(c byte) byte {
	if c <= 26 {
		return '@' + c
	}
	return '?'
}
