package editor

import "github.com/atotto/clipboard"

// Clipboard provides editor-level clipboard integration.
//
// Errors must not crash the UI; failures are logged and the line clipboard
// keeps working on its own.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}

// SystemClipboard talks to the OS clipboard (xclip/xsel/wl-clipboard on
// Linux, pbcopy on macOS).
type SystemClipboard struct{}

func (SystemClipboard) ReadText() (string, error) { return clipboard.ReadAll() }

func (SystemClipboard) WriteText(s string) error { return clipboard.WriteAll(s) }

// NewSystemClipboard returns nil when no clipboard utility is available.
func NewSystemClipboard() Clipboard {
	if clipboard.Unsupported {
		return nil
	}
	return SystemClipboard{}
}
