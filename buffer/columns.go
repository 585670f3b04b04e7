package buffer

// expandTabs appends the render form of chars to dst: every tab advances to
// the next multiple of tabStop.
func expandTabs(chars []byte, tabStop int, dst []byte) []byte {
	for _, c := range chars {
		if c != '\t' {
			dst = append(dst, c)
			continue
		}
		dst = append(dst, ' ')
		for len(dst)%tabStop != 0 {
			dst = append(dst, ' ')
		}
	}
	return dst
}

// CursorToRender maps a cursor-space column of line to its render column.
// Columns past the end of line map to the render width of line.
func CursorToRender[T ~string | ~[]byte](line T, col, tabStop int) int {
	if tabStop < 1 {
		tabStop = DefaultTabStop
	}
	rx := 0
	for j := 0; j < col && j < len(line); j++ {
		if line[j] == '\t' {
			rx += (tabStop - 1) - (rx % tabStop)
		}
		rx++
	}
	return rx
}

// RenderToCursor maps a render column back to cursor space. It returns the
// first column whose expanded width exceeds rcol, so a render column inside a
// tab's expansion snaps to the tab itself. Render columns past the end map to
// len(line).
func RenderToCursor[T ~string | ~[]byte](line T, rcol, tabStop int) int {
	if tabStop < 1 {
		tabStop = DefaultTabStop
	}
	cur := 0
	col := 0
	for ; col < len(line); col++ {
		if line[col] == '\t' {
			cur += (tabStop - 1) - (cur % tabStop)
		}
		cur++
		if cur > rcol {
			return col
		}
	}
	return col
}

// RenderCol maps col on row to render space. The virtual row maps to 0.
func (b *Buffer) RenderCol(row, col int) int {
	if row < 0 || row >= len(b.rows) {
		return 0
	}
	return CursorToRender(b.rows[row].chars, col, b.opt.TabStop)
}

// CursorCol maps a render column on row back to cursor space.
func (b *Buffer) CursorCol(row, rcol int) int {
	if row < 0 || row >= len(b.rows) {
		return 0
	}
	return RenderToCursor(b.rows[row].chars, rcol, b.opt.TabStop)
}

// CursorRenderCol is the cursor's column in render space.
func (b *Buffer) CursorRenderCol() int {
	return b.RenderCol(b.cursor.Row, b.cursor.Col)
}
