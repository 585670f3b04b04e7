package editor

import (
	"github.com/iw2rmb/mel/buffer"
	"github.com/iw2rmb/mel/syntax"
)

// matchState is the search hit painted with the Match style.
type matchState struct {
	active bool
	pos    buffer.Pos
	n      int
}

// applyMatch overwrites the highlight of the current match on row.
func (m *Model) applyMatch(row int, hl []syntax.Tag) {
	if !m.match.active || m.match.pos.Row != row {
		return
	}
	from := m.buf.RenderCol(row, m.match.pos.Col)
	to := m.buf.RenderCol(row, m.match.pos.Col+m.match.n)
	for i := from; i < to && i < len(hl); i++ {
		hl[i] = syntax.SearchMatch
	}
}

// findFrom moves the cursor to the next match of query after (or before)
// from and marks it.
func (m *Model) findFrom(query string, from buffer.Pos, forward bool) bool {
	p, ok := m.buf.Find(query, from, forward)
	if !ok {
		m.match = matchState{}
		return false
	}
	m.buf.SetCursor(p)
	m.match = matchState{active: true, pos: p, n: len(query)}
	return true
}

// findAgain repeats the last search from the current match or cursor.
func (m *Model) findAgain(forward bool) bool {
	if m.lastQuery == "" {
		return false
	}
	from := m.buf.Cursor()
	if m.match.active {
		from = m.match.pos
	}
	return m.findFrom(m.lastQuery, from, forward)
}
