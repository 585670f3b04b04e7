package buffer

// rehighlight rescans row at with its predecessor's continuation flag, then
// walks forward while the flag keeps changing. Each row is scanned at most
// once per call.
func (b *Buffer) rehighlight(at int) {
	for i := at; i >= 0 && i < len(b.rows); i++ {
		r := b.rows[i]
		in := i > 0 && b.rows[i-1].open
		was := r.open
		r.hl, r.open = b.scanner.Scan(r.render, in, r.hl)
		if r.open == was {
			return
		}
	}
}

func (b *Buffer) rescanAll() {
	in := false
	for _, r := range b.rows {
		r.hl, r.open = b.scanner.Scan(r.render, in, r.hl)
		in = r.open
	}
}
