package editor

import (
	"strings"

	overlay "github.com/rmhubbert/bubbletea-overlay"

	"github.com/iw2rmb/mel"
	"github.com/iw2rmb/mel/internal/grapheme"
)

const helpKeyWidth = 12

func (m Model) renderHelp() string {
	var sb strings.Builder
	sb.WriteString("mel " + mel.VersionTag() + "\n\n")
	for _, b := range m.cfg.KeyMap.HelpBindings() {
		h := b.Help()
		if h.Key == "" {
			continue
		}
		sb.WriteString(m.cfg.Style.HelpKey.Render(grapheme.PadRight(h.Key, helpKeyWidth)))
		sb.WriteString(h.Desc)
		sb.WriteByte('\n')
	}
	sb.WriteString("\nPress any key to continue...")
	return m.cfg.Style.HelpBox.Render(sb.String())
}

func (m Model) View() string {
	body := m.viewport.View()
	if m.showHelp {
		body = overlay.Composite(m.renderHelp(), body, overlay.Center, overlay.Center, 0, 0)
	}
	return body + "\n" + m.renderStatusBar() + "\n" + m.renderMessageBar()
}
