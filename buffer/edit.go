package buffer

// Session-level primitives. They act at the cursor and move it; the actions
// call them on execute.

// backspace deletes the byte before the cursor, or joins the cursor row into
// the previous row at column 0. It returns the join column, the previous
// row's length before the join.
func (b *Buffer) backspace() int {
	row, col := b.cursor.Row, b.cursor.Col
	if row >= len(b.rows) || (row == 0 && col == 0) {
		return 0
	}
	if col > 0 {
		b.RowDeleteChar(row, col-1)
		b.cursor.Col--
		return 0
	}
	joinCol := len(b.rows[row-1].chars)
	b.JoinRowIntoPrevious(row)
	b.cursor = Pos{Row: row - 1, Col: joinCol}
	return joinCol
}

func (b *Buffer) newline() {
	row, col := b.cursor.Row, b.cursor.Col
	if col == 0 {
		b.InsertRow(row, "")
	} else {
		b.SplitRow(row, col)
	}
	b.cursor = Pos{Row: row + 1}
}

func (b *Buffer) cutRow() {
	row := b.cursor.Row
	if !b.DeleteRow(row) {
		return
	}
	b.cursor = b.clampPos(b.cursor)
}

func (b *Buffer) paste(s string, virtual bool) {
	row, col := b.cursor.Row, b.cursor.Col
	if virtual {
		b.InsertRow(row, s)
		b.cursor = Pos{Row: row, Col: len(s)}
		return
	}
	if b.RowInsertString(row, col, s) {
		b.cursor.Col += len(s)
	}
}

func (b *Buffer) origin() Origin {
	return Origin{Pos: b.cursor, Virtual: b.cursor.Row >= len(b.rows)}
}

// do records a and performs it.
func (b *Buffer) do(a Action) bool {
	cb := b.beginChange(ChangeSourceEdit, a.Kind())
	b.log.append(a)
	a.execute(b)
	b.commitChange(cb)
	return true
}

// InsertChar types c at the cursor. Typing directly after the previous
// insertion extends that insertion's action instead of recording a new one.
// '\n' is treated as InsertNewline; NUL is ignored.
func (b *Buffer) InsertChar(c byte) bool {
	switch c {
	case 0:
		return false
	case '\n':
		return b.InsertNewline()
	}
	if ins, ok := b.log.coalescable(b.cursor); ok {
		cb := b.beginChange(ChangeSourceEdit, KindInsertChar)
		b.RowInsertChar(b.cursor.Row, b.cursor.Col, c)
		b.cursor.Col++
		ins.Text += string([]byte{c})
		b.commitChange(cb)
		return true
	}
	return b.do(&InsertCharAction{Origin: b.origin(), Text: string([]byte{c})})
}

// InsertText types s byte by byte. "\r" is dropped so CRLF input becomes
// plain newlines.
func (b *Buffer) InsertText(s string) bool {
	changed := false
	for i := 0; i < len(s); i++ {
		if s[i] == '\r' {
			continue
		}
		if b.InsertChar(s[i]) {
			changed = true
		}
	}
	return changed
}

// DeleteChar is a backspace at the cursor. It fails at the start of the
// document and on the virtual row.
func (b *Buffer) DeleteChar() bool {
	row, col := b.cursor.Row, b.cursor.Col
	if row >= len(b.rows) || (row == 0 && col == 0) {
		return false
	}
	text := ""
	if col > 0 {
		text = string(b.rows[row].chars[col-1 : col])
	}
	return b.do(&DeleteCharAction{Origin: b.origin(), Text: text})
}

// InsertNewline splits the cursor row at the cursor and moves to the start
// of the new row.
func (b *Buffer) InsertNewline() bool {
	return b.do(&NewLineAction{Origin: b.origin()})
}

// CutLine moves the cursor row into the line clipboard and removes it.
func (b *Buffer) CutLine() bool {
	row := b.cursor.Row
	if row >= len(b.rows) {
		return false
	}
	text := string(b.rows[row].chars)
	b.SetClipboard(text)
	return b.do(&CutLineAction{Origin: b.origin(), Text: text})
}

// CopyLine copies the cursor row into the line clipboard.
func (b *Buffer) CopyLine() bool {
	row := b.cursor.Row
	if row >= len(b.rows) {
		return false
	}
	b.SetClipboard(string(b.rows[row].chars))
	return true
}

// PasteLine inserts the line clipboard at the cursor. On the virtual row the
// clipboard becomes a new row.
func (b *Buffer) PasteLine() bool {
	if !b.hasClip {
		return false
	}
	o := b.origin()
	if b.clip == "" && !o.Virtual {
		return false
	}
	return b.do(&PasteLineAction{Origin: o, Text: b.clip})
}

// FlipUp swaps the cursor row with the row above.
func (b *Buffer) FlipUp() bool {
	row := b.cursor.Row
	if row <= 0 || row >= len(b.rows) {
		return false
	}
	return b.do(&FlipUpAction{Origin: b.origin()})
}

// FlipDown swaps the cursor row with the row below.
func (b *Buffer) FlipDown() bool {
	row := b.cursor.Row
	if row < 0 || row >= len(b.rows)-1 {
		return false
	}
	return b.do(&FlipDownAction{Origin: b.origin()})
}
