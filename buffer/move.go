package buffer

type MoveUnit int

const (
	MoveChar MoveUnit = iota
	MoveLine
	MovePage
	MoveDoc
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
	DirHome // line start (or doc start for MoveDoc)
	DirEnd  // line end (or doc end for MoveDoc)
)

type Move struct {
	Unit MoveUnit
	Dir  MoveDir
	// Count is the page height for MovePage.
	Count int
}

// Move applies m to the cursor. Left at column 0 wraps to the end of the
// previous row and Right at the end of a row wraps to the next. Vertical
// moves keep the column where the target row allows it and may land on the
// virtual row.
func (b *Buffer) Move(m Move) {
	next := b.clampPos(b.moveCursor(b.cursor, m))
	if next == b.cursor {
		return
	}
	b.cursor = next
	b.version++
}

func (b *Buffer) rowLen(row int) int {
	if row < 0 || row >= len(b.rows) {
		return 0
	}
	return len(b.rows[row].chars)
}

func (b *Buffer) moveCursor(p Pos, m Move) Pos {
	switch m.Unit {
	case MoveChar:
		switch m.Dir {
		case DirLeft:
			if p.Col > 0 {
				p.Col--
			} else if p.Row > 0 {
				p.Row--
				p.Col = b.rowLen(p.Row)
			}
		case DirRight:
			if p.Row < len(b.rows) {
				if p.Col < b.rowLen(p.Row) {
					p.Col++
				} else {
					p.Row++
					p.Col = 0
				}
			}
		case DirUp:
			if p.Row > 0 {
				p.Row--
			}
		case DirDown:
			if p.Row < len(b.rows) {
				p.Row++
			}
		}
	case MoveLine:
		switch m.Dir {
		case DirHome:
			p.Col = 0
		case DirEnd:
			p.Col = b.rowLen(p.Row)
		}
	case MovePage:
		n := max(m.Count, 1)
		switch m.Dir {
		case DirUp:
			p.Row -= n
		case DirDown:
			p.Row += n
		}
	case MoveDoc:
		switch m.Dir {
		case DirHome:
			p = Pos{}
		case DirEnd:
			p.Row = max(len(b.rows)-1, 0)
			p.Col = b.rowLen(p.Row)
		}
	}
	return p
}

// GoToLine moves the cursor to the start of 1-based line n. It reports
// false when n is outside the document.
func (b *Buffer) GoToLine(n int) bool {
	if n < 1 || n > len(b.rows) {
		return false
	}
	b.SetCursor(Pos{Row: n - 1})
	return true
}
