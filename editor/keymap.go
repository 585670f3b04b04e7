package editor

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the editor key bindings.
type KeyMap struct {
	Left, Right, Up, Down key.Binding
	Home, End             key.Binding
	PageUp, PageDown      key.Binding

	Backspace, Delete key.Binding
	Enter             key.Binding

	FlipUp, FlipDown               key.Binding
	CopyLine, CutLine, PasteLine   key.Binding
	Undo, Redo                     key.Binding
	Save, Find, FindNext, FindPrev key.Binding
	Replace, GoToLine              key.Binding
	ToggleLineNums, Help, Quit     key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "move left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "move right")),
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "move up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "move down")),

		Home:     key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "line start")),
		End:      key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "line end")),
		PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),

		Backspace: key.NewBinding(key.WithKeys("backspace"), key.WithHelp("backspace", "delete character")),
		Delete:    key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "delete right")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "new line")),

		FlipUp:   key.NewBinding(key.WithKeys("ctrl+e"), key.WithHelp("ctrl+e", "flip line upwards")),
		FlipDown: key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "flip line downwards")),

		CopyLine:  key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "copy line")),
		CutLine:   key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "cut line")),
		PasteLine: key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste line")),

		Undo: key.NewBinding(key.WithKeys("ctrl+z"), key.WithHelp("ctrl+z", "undo")),
		Redo: key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "redo")),

		Save:     key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Find:     key.NewBinding(key.WithKeys("ctrl+f"), key.WithHelp("ctrl+f", "search")),
		FindNext: key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "next match")),
		FindPrev: key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "previous match")),
		Replace:  key.NewBinding(key.WithKeys("ctrl+j"), key.WithHelp("ctrl+j", "replace all")),
		GoToLine: key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "go to line")),

		ToggleLineNums: key.NewBinding(key.WithKeys("ctrl+b"), key.WithHelp("ctrl+b", "toggle line numbers")),
		Help:           key.NewBinding(key.WithKeys("ctrl+h"), key.WithHelp("ctrl+h", "toggle help")),
		Quit:           key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("ctrl+q", "quit")),
	}
}

// HelpBindings lists the bindings shown on the help page, in order.
func (km KeyMap) HelpBindings() []key.Binding {
	return []key.Binding{
		km.Quit, km.Save, km.Find, km.FindNext, km.FindPrev, km.Replace,
		km.GoToLine, km.ToggleLineNums, km.FlipUp, km.FlipDown,
		km.CopyLine, km.CutLine, km.PasteLine, km.Undo, km.Redo, km.Help,
		km.Home, km.End, km.PageUp, km.PageDown,
		km.Up, km.Down, km.Left, km.Right, km.Backspace, km.Delete,
	}
}

func (km KeyMap) isZero() bool { return len(km.Quit.Keys()) == 0 && len(km.Left.Keys()) == 0 }
