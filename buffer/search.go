package buffer

import "strings"

// Find returns the next occurrence of query after from (forward) or before
// it (backward), wrapping around the document. The match at from itself is
// only found again after a full wrap.
func (b *Buffer) Find(query string, from Pos, forward bool) (Pos, bool) {
	n := len(b.rows)
	if query == "" || n == 0 {
		return Pos{}, false
	}
	row := clampInt(from.Row, 0, n-1)
	col := from.Col

	for i := 0; i <= n; i++ {
		line := b.rows[row].chars
		if forward {
			start := 0
			if i == 0 {
				start = max(col+1, 0)
			}
			if start <= len(line) {
				if j := strings.Index(string(line[start:]), query); j >= 0 {
					return Pos{Row: row, Col: start + j}, true
				}
			}
			row = (row + 1) % n
			continue
		}

		end := len(line)
		if i == 0 {
			end = min(col+len(query)-1, len(line))
		}
		if end >= 0 {
			if j := strings.LastIndex(string(line[:end]), query); j >= 0 {
				return Pos{Row: row, Col: j}, true
			}
		}
		row = (row - 1 + n) % n
	}
	return Pos{}, false
}

// ReplaceAll replaces every occurrence of find with repl and returns the
// number of replacements. It clears the undo history.
func (b *Buffer) ReplaceAll(find, repl string) int {
	if find == "" {
		return 0
	}
	cb := b.beginChange(ChangeSourceReplace, 0)
	count := 0
	for row, r := range b.rows {
		col := 0
		for {
			j := strings.Index(string(r.chars[col:]), find)
			if j < 0 {
				break
			}
			at := col + j
			b.RowDeleteRange(row, at, len(find))
			b.RowInsertString(row, at, repl)
			col = at + len(repl)
			count++
		}
	}
	if count == 0 {
		return 0
	}
	b.log.clear()
	b.cursor = b.clampPos(b.cursor)
	b.commitChange(cb)
	return count
}
