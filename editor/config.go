package editor

import (
	"log/slog"
	"time"

	"github.com/iw2rmb/mel/buffer"
	"github.com/iw2rmb/mel/syntax"
)

const (
	DefaultQuitTimes      = 3
	DefaultMessageTimeout = 5 * time.Second
)

// Config configures the editor Model.
type Config struct {
	// Initial document lines and the file they came from ("" for none).
	Lines    []string
	FileName string
	// Syntax overrides file-type detection when non-nil.
	Syntax *syntax.Profile
	// StartLine places the cursor on a 1-based line; 0 keeps it at the top.
	StartLine int

	// Forwarded to buffer.New. Zero value means buffer.DefaultOptions().
	Buffer buffer.Options

	// Rendering options.
	ShowLineNums bool
	ColumnMarker int // 1-based render column; 0 disables
	Style        Style
	ScrollPolicy ScrollPolicy

	// Zero value means DefaultKeyMap().
	KeyMap KeyMap

	// Clipboard mirrors copy/cut/paste to the system clipboard when set.
	Clipboard Clipboard

	// Backup writes <file>.bak before each save.
	Backup bool

	// QuitTimes is how many extra quit presses a modified document needs.
	// Zero means DefaultQuitTimes; negative disables the confirmation.
	QuitTimes int
	// MessageTimeout is how long message bar text stays up.
	// Zero means DefaultMessageTimeout.
	MessageTimeout time.Duration

	// Logger receives save, clipboard and file-type events. Nil discards.
	Logger *slog.Logger

	// OnChange is called after every update that changed the document.
	OnChange func(ChangeEvent)
}
