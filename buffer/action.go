package buffer

// ActionKind names the variant of an Action.
type ActionKind uint8

const (
	KindInsertChar ActionKind = iota + 1
	KindDeleteChar
	KindNewLine
	KindCutLine
	KindPasteLine
	KindFlipUp
	KindFlipDown
)

func (k ActionKind) String() string {
	switch k {
	case KindInsertChar:
		return "insert"
	case KindDeleteChar:
		return "delete"
	case KindNewLine:
		return "newline"
	case KindCutLine:
		return "cut line"
	case KindPasteLine:
		return "paste"
	case KindFlipUp:
		return "flip up"
	case KindFlipDown:
		return "flip down"
	default:
		return "none"
	}
}

// Origin is where the cursor stood when an action was first performed.
type Origin struct {
	Pos Pos
	// Virtual is set when Pos.Row was the virtual row past the last real row.
	Virtual bool
}

// Action is one undoable edit. execute reapplies it from its origin and
// revert restores the document and cursor to the state before it ran.
//
// The set of actions is closed: InsertCharAction, DeleteCharAction,
// NewLineAction, CutLineAction, PasteLineAction, FlipUpAction and
// FlipDownAction.
type Action interface {
	Kind() ActionKind
	At() Origin
	// Payload is the text the action carries, or "" for actions without one.
	Payload() string

	execute(b *Buffer)
	revert(b *Buffer)
}

// InsertCharAction is a run of typed bytes. Consecutive typing at the end of
// the run extends Text.
type InsertCharAction struct {
	Origin
	Text string
}

func (a *InsertCharAction) Kind() ActionKind { return KindInsertChar }
func (a *InsertCharAction) At() Origin       { return a.Origin }
func (a *InsertCharAction) Payload() string  { return a.Text }

func (a *InsertCharAction) execute(b *Buffer) {
	b.cursor = a.Pos
	if a.Virtual {
		b.InsertRow(a.Pos.Row, a.Text)
	} else {
		b.RowInsertString(a.Pos.Row, a.Pos.Col, a.Text)
	}
	b.cursor = Pos{Row: a.Pos.Row, Col: a.Pos.Col + len(a.Text)}
}

func (a *InsertCharAction) revert(b *Buffer) {
	b.RowDeleteRange(a.Pos.Row, a.Pos.Col, len(a.Text))
	if a.Virtual {
		b.DeleteRow(a.Pos.Row)
	}
	b.cursor = a.Pos
}

// DeleteCharAction is one backspace. Text holds the removed byte, or is
// empty when the backspace joined the row into the previous one.
type DeleteCharAction struct {
	Origin
	Text string

	joinCol int
}

func (a *DeleteCharAction) Kind() ActionKind { return KindDeleteChar }
func (a *DeleteCharAction) At() Origin       { return a.Origin }
func (a *DeleteCharAction) Payload() string  { return a.Text }

func (a *DeleteCharAction) execute(b *Buffer) {
	b.cursor = a.Pos
	a.joinCol = b.backspace()
}

func (a *DeleteCharAction) revert(b *Buffer) {
	if a.Text != "" {
		b.RowInsertString(a.Pos.Row, a.Pos.Col-1, a.Text)
	} else {
		b.SplitRow(a.Pos.Row-1, a.joinCol)
	}
	b.cursor = a.Pos
}

// NewLineAction is one Enter.
type NewLineAction struct {
	Origin
}

func (a *NewLineAction) Kind() ActionKind { return KindNewLine }
func (a *NewLineAction) At() Origin       { return a.Origin }
func (a *NewLineAction) Payload() string  { return "" }

func (a *NewLineAction) execute(b *Buffer) {
	b.cursor = a.Pos
	b.newline()
}

func (a *NewLineAction) revert(b *Buffer) {
	if a.Virtual {
		b.DeleteRow(a.Pos.Row)
	} else {
		b.JoinRowIntoPrevious(a.Pos.Row + 1)
	}
	b.cursor = a.Pos
}

// CutLineAction removes the row at its origin. Text is the removed row.
type CutLineAction struct {
	Origin
	Text string
}

func (a *CutLineAction) Kind() ActionKind { return KindCutLine }
func (a *CutLineAction) At() Origin       { return a.Origin }
func (a *CutLineAction) Payload() string  { return a.Text }

func (a *CutLineAction) execute(b *Buffer) {
	b.cursor = a.Pos
	b.cutRow()
}

func (a *CutLineAction) revert(b *Buffer) {
	b.InsertRow(a.Pos.Row, a.Text)
	b.cursor = a.Pos
}

// PasteLineAction inserts Text at its origin. On the virtual row it creates
// a new row.
type PasteLineAction struct {
	Origin
	Text string
}

func (a *PasteLineAction) Kind() ActionKind { return KindPasteLine }
func (a *PasteLineAction) At() Origin       { return a.Origin }
func (a *PasteLineAction) Payload() string  { return a.Text }

func (a *PasteLineAction) execute(b *Buffer) {
	b.cursor = a.Pos
	b.paste(a.Text, a.Virtual)
}

func (a *PasteLineAction) revert(b *Buffer) {
	if a.Virtual {
		b.DeleteRow(a.Pos.Row)
	} else {
		b.RowDeleteRange(a.Pos.Row, a.Pos.Col, len(a.Text))
	}
	b.cursor = a.Pos
}

// FlipUpAction swaps the origin row with the row above.
type FlipUpAction struct {
	Origin
}

func (a *FlipUpAction) Kind() ActionKind { return KindFlipUp }
func (a *FlipUpAction) At() Origin       { return a.Origin }
func (a *FlipUpAction) Payload() string  { return "" }

func (a *FlipUpAction) execute(b *Buffer) {
	b.cursor = a.Pos
	b.FlipRow(DirUp)
}

func (a *FlipUpAction) revert(b *Buffer) {
	b.cursor = Pos{Row: a.Pos.Row - 1, Col: a.Pos.Col}
	b.FlipRow(DirDown)
	b.cursor = a.Pos
}

// FlipDownAction swaps the origin row with the row below.
type FlipDownAction struct {
	Origin
}

func (a *FlipDownAction) Kind() ActionKind { return KindFlipDown }
func (a *FlipDownAction) At() Origin       { return a.Origin }
func (a *FlipDownAction) Payload() string  { return "" }

func (a *FlipDownAction) execute(b *Buffer) {
	b.cursor = a.Pos
	b.FlipRow(DirDown)
}

func (a *FlipDownAction) revert(b *Buffer) {
	b.cursor = Pos{Row: a.Pos.Row + 1, Col: a.Pos.Col}
	b.FlipRow(DirUp)
	b.cursor = a.Pos
}
