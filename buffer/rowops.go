package buffer

import "slices"

// The row-level operations below mutate the document directly. They do not
// touch the action log and return false, changing nothing, when an argument
// is out of range.

func (b *Buffer) validRow(row int) bool { return row >= 0 && row < len(b.rows) }

func (b *Buffer) renumber(from int) {
	for i := max(from, 0); i < len(b.rows); i++ {
		b.rows[i].index = i
	}
}

// updateRow refreshes the render and highlight of a row whose content
// changed.
func (b *Buffer) updateRow(r *Row) {
	r.updateRender(b.opt.TabStop)
	b.rehighlight(r.index)
	b.touch()
}

// InsertRow inserts a new row containing text before position at.
// at == RowCount() appends.
func (b *Buffer) InsertRow(at int, text string) bool {
	if at < 0 || at > len(b.rows) {
		return false
	}
	r := &Row{index: at, chars: []byte(text)}
	b.rows = slices.Insert(b.rows, at, r)
	b.renumber(at)
	r.updateRender(b.opt.TabStop)
	b.rehighlight(at)
	b.rehighlight(at + 1)
	b.touch()
	return true
}

func (b *Buffer) DeleteRow(at int) bool {
	if !b.validRow(at) {
		return false
	}
	b.rows = slices.Delete(b.rows, at, at+1)
	b.renumber(at)
	b.rehighlight(at)
	b.touch()
	return true
}

// FlipRow swaps the cursor row with its neighbour in direction dir (DirUp or
// DirDown). The cursor follows the moved row.
func (b *Buffer) FlipRow(dir MoveDir) bool {
	row := b.cursor.Row
	var other int
	switch dir {
	case DirUp:
		if row <= 0 || row >= len(b.rows) {
			return false
		}
		other = row - 1
	case DirDown:
		if row < 0 || row >= len(b.rows)-1 {
			return false
		}
		other = row + 1
	default:
		return false
	}
	lo := min(row, other)
	b.rows[row], b.rows[other] = b.rows[other], b.rows[row]
	b.renumber(lo)
	b.rehighlight(lo)
	b.rehighlight(lo + 1)
	b.rehighlight(lo + 2)
	b.cursor.Row = other
	b.touch()
	return true
}

func (b *Buffer) RowInsertChar(row, at int, c byte) bool {
	if !b.validRow(row) {
		return false
	}
	r := b.rows[row]
	if at < 0 || at > len(r.chars) {
		return false
	}
	r.chars = slices.Insert(r.chars, at, c)
	b.updateRow(r)
	return true
}

func (b *Buffer) RowDeleteChar(row, at int) bool {
	return b.RowDeleteRange(row, at, 1)
}

// RowDeleteRange removes n bytes starting at at. The whole range must lie
// within the row.
func (b *Buffer) RowDeleteRange(row, at, n int) bool {
	if !b.validRow(row) || n <= 0 {
		return false
	}
	r := b.rows[row]
	if at < 0 || at+n > len(r.chars) {
		return false
	}
	r.chars = slices.Delete(r.chars, at, at+n)
	b.updateRow(r)
	return true
}

func (b *Buffer) RowInsertString(row, at int, s string) bool {
	if !b.validRow(row) || s == "" {
		return false
	}
	r := b.rows[row]
	if at < 0 || at > len(r.chars) {
		return false
	}
	r.chars = slices.Insert(r.chars, at, []byte(s)...)
	b.updateRow(r)
	return true
}

func (b *Buffer) RowAppendString(row int, s string) bool {
	if !b.validRow(row) {
		return false
	}
	return b.RowInsertString(row, len(b.rows[row].chars), s)
}

// SplitRow moves the content of row from col onwards into a new row below
// it. Splitting at column 0 inserts an empty row before row instead.
func (b *Buffer) SplitRow(row, col int) bool {
	if !b.validRow(row) {
		return false
	}
	r := b.rows[row]
	if col < 0 || col > len(r.chars) {
		return false
	}
	if col == 0 {
		return b.InsertRow(row, "")
	}
	tail := string(r.chars[col:])
	b.InsertRow(row+1, tail)
	r.chars = r.chars[:col]
	b.updateRow(r)
	return true
}

// JoinRowIntoPrevious appends row to the row above it and removes row.
func (b *Buffer) JoinRowIntoPrevious(row int) bool {
	if row <= 0 || row >= len(b.rows) {
		return false
	}
	b.RowAppendString(row-1, string(b.rows[row].chars))
	return b.DeleteRow(row)
}
