package buffer

import (
	"strings"
	"testing"

	"github.com/iw2rmb/mel/syntax"
)

func newBuf(t *testing.T, text string, opt Options) *Buffer {
	t.Helper()
	if opt.HistoryLimit == 0 {
		opt.HistoryLimit = DefaultHistoryLimit
	}
	b := New(opt)
	if text != "" {
		b.Load(strings.Split(text, "\n"))
	}
	return b
}

func typeText(b *Buffer, s string) {
	for i := 0; i < len(s); i++ {
		b.InsertChar(s[i])
	}
}

// tagString encodes the highlight of row i for compact comparisons.
func tagString(b *Buffer, i int) string {
	var sb strings.Builder
	for _, tg := range b.Row(i).Highlight() {
		switch tg {
		case syntax.LineComment:
			sb.WriteByte('/')
		case syntax.BlockComment:
			sb.WriteByte('*')
		case syntax.Keyword1:
			sb.WriteByte('k')
		case syntax.Keyword2:
			sb.WriteByte('K')
		case syntax.String:
			sb.WriteByte('s')
		case syntax.Number:
			sb.WriteByte('n')
		default:
			sb.WriteByte('.')
		}
	}
	return sb.String()
}

func checkInvariants(t *testing.T, b *Buffer) {
	t.Helper()
	for i := 0; i < b.RowCount(); i++ {
		r := b.Row(i)
		if r.Index() != i {
			t.Fatalf("row %d index=%d", i, r.Index())
		}
		if got, want := len(r.Highlight()), r.RenderLen(); got != want {
			t.Fatalf("row %d highlight len=%d, want %d", i, got, want)
		}
		if got, want := r.RenderLen(), CursorToRender(r.Text(), r.Len(), b.TabStop()); got != want {
			t.Fatalf("row %d render len=%d, want %d", i, got, want)
		}
	}
}
