package buffer

import (
	"slices"

	"github.com/iw2rmb/mel/syntax"
)

// Row is one line of text plus its derived render and highlight views.
//
// Rows are owned by their Buffer; callers only read them.
type Row struct {
	index int

	chars  []byte
	render []byte
	hl     []syntax.Tag

	// open is true when the row ends inside an unterminated block comment.
	open bool
}

// Index is the row's position in its buffer.
func (r *Row) Index() int { return r.index }

// Len returns the length of the raw content in bytes.
func (r *Row) Len() int { return len(r.chars) }

// Text returns the raw content, without a trailing newline.
func (r *Row) Text() string { return string(r.chars) }

// Render returns the display form of the row with tabs expanded.
func (r *Row) Render() string { return string(r.render) }

func (r *Row) RenderLen() int { return len(r.render) }

// Highlight returns one tag per render byte.
func (r *Row) Highlight() []syntax.Tag { return slices.Clone(r.hl) }

// InComment reports the row's continuation flag.
func (r *Row) InComment() bool { return r.open }

func (r *Row) updateRender(tabStop int) {
	r.render = expandTabs(r.chars, tabStop, r.render[:0])
}
