package textutil

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Ellipsis marks display-truncated text.
const Ellipsis = "..."

// DisplayWidth reports the printable width of text in terminal cells. Escape
// sequences are ignored and grapheme clusters (emoji, CJK) are measured as
// the terminal renders them.
func DisplayWidth(text string) int {
	return ansi.StringWidth(text)
}

// StripEscapes removes terminal escape sequences from text.
func StripEscapes(text string) string {
	return ansi.Strip(text)
}

// TruncateToWidth shortens text so that it occupies at most width cells,
// ending with Ellipsis when something was cut. Escape sequences are kept
// intact.
func TruncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if DisplayWidth(text) <= width {
		return text
	}
	if width <= len(Ellipsis) {
		return ansi.Truncate(text, width, "")
	}
	return ansi.Truncate(text, width, Ellipsis)
}

// ClipToWidth cuts text to at most width cells without a tail marker.
func ClipToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(text, width, "")
}

// PadRight appends spaces until text occupies width cells.
func PadRight(text string, width int) string {
	w := DisplayWidth(text)
	if w >= width {
		return text
	}
	return text + strings.Repeat(" ", width-w)
}
