// Package grapheme measures and clips text in terminal cells.
package grapheme

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// ClusterWidth returns the cell width of a single grapheme cluster.
func ClusterWidth(cluster string) int {
	w := runewidth.StringWidth(cluster)
	if w <= 0 {
		w = uniseg.StringWidth(cluster)
	}
	if w < 0 {
		return 0
	}
	return w
}

// Width returns the cell width of text.
func Width(text string) int {
	n := 0
	for _, c := range Split(text) {
		n += ClusterWidth(c)
	}
	return n
}

// Truncate clips text to at most width cells without splitting a cluster.
func Truncate(text string, width int) string {
	if width <= 0 {
		return ""
	}
	var sb strings.Builder
	used := 0
	for _, c := range Split(text) {
		w := ClusterWidth(c)
		if used+w > width {
			break
		}
		sb.WriteString(c)
		used += w
	}
	return sb.String()
}

// PadRight clips text to width cells and pads it with spaces to exactly
// width.
func PadRight(text string, width int) string {
	text = Truncate(text, width)
	if pad := width - Width(text); pad > 0 {
		text += strings.Repeat(" ", pad)
	}
	return text
}
