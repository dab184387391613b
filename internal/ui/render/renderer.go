package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/gfile/internal/state"
	textutil "github.com/kk-code-lab/gfile/internal/textutil"
	"github.com/kk-code-lab/gfile/internal/ui/layout"
)

const (
	lineEnd        = "\r\n"
	selectedMarker = ">"
	cellGap        = "  "
	// chromeRows is the header line plus the message line.
	chromeRows = 2
)

// Renderer turns a NavState into a full-screen frame.
type Renderer struct {
	theme   ColorTheme
	palette Palette
}

// NewRenderer creates a renderer. A nil theme selects GetColorTheme.
func NewRenderer(theme *ColorTheme, palette Palette) *Renderer {
	t := GetColorTheme()
	if theme != nil {
		t = *theme
	}
	return &Renderer{theme: t, palette: palette}
}

// Render builds the frame for state on a terminal of the given height. The
// result depends only on its arguments.
func (r *Renderer) Render(state *statepkg.NavState, height int) string {
	width := state.Width
	if width <= 0 {
		width = statepkg.DefaultWidth
	}

	var b strings.Builder
	b.WriteString(r.palette.Home)
	r.writeHeader(&b, state, width)

	bodyRows := height - chromeRows
	if bodyRows < 1 {
		bodyRows = 1
	}
	if state.HelpVisible {
		r.writeHelp(&b, state, width, bodyRows)
	} else {
		r.writeGrid(&b, state, bodyRows)
	}

	if state.Message != "" {
		msg := textutil.TruncateToWidth(textutil.SanitizeTerminalText(textutil.StripEscapes(state.Message)), width)
		b.WriteString(r.palette.Color(r.theme.MessageFg, tcell.ColorDefault))
		b.WriteString(msg)
		b.WriteString(r.palette.Reset)
		b.WriteString(r.palette.ClearEOL)
	}
	b.WriteString(r.palette.ClearBelow)
	return b.String()
}

func (r *Renderer) writeHeader(b *strings.Builder, state *statepkg.NavState, width int) {
	dir := textutil.SanitizeTerminalText(state.Cwd)
	if !strings.HasSuffix(dir, "/") {
		dir += "/"
	}
	name := ""
	if entry, ok := state.SelectedEntry(); ok {
		name = textutil.SanitizeTerminalText(entry.DisplayName())
	}

	header := r.palette.Color(r.theme.HeaderFg, tcell.ColorDefault) + dir +
		r.palette.Color(r.theme.NameFg, tcell.ColorDefault) + name
	b.WriteString(textutil.ClipToWidth(header, width))
	b.WriteString(r.palette.Reset)
	b.WriteString(r.palette.ClearEOL)
	b.WriteString(lineEnd)
}

// viewportTop returns the first grid row to draw so that the cursor row is
// on screen.
func viewportTop(cursorRow, rows, visible int) int {
	if rows <= visible || cursorRow < visible {
		return 0
	}
	top := cursorRow - visible + 1
	if top > rows-visible {
		top = rows - visible
	}
	return top
}

func (r *Renderer) writeGrid(b *strings.Builder, state *statepkg.NavState, visible int) {
	grid := state.Grid
	top := viewportTop(state.Cursor.Row, len(grid.Rows), visible)
	end := top + visible
	if end > len(grid.Rows) {
		end = len(grid.Rows)
	}
	for row := top; row < end; row++ {
		for col, cell := range grid.Rows[row] {
			if col > 0 {
				b.WriteString(cellGap)
			}
			selected := state.Cursor == (layout.Cursor{Row: row, Col: col})
			r.writeCell(b, state, cell, grid.Padding, selected)
		}
		b.WriteString(r.palette.ClearEOL)
		b.WriteString(lineEnd)
	}
}

func (r *Renderer) writeCell(b *strings.Builder, state *statepkg.NavState, cell layout.Cell, padding int, selected bool) {
	fg := r.theme.FileFg
	if cell.Index >= 0 && cell.Index < len(state.Entries) {
		fg = r.theme.KindColor(state.Entries[cell.Index].Kind)
	}
	bg := tcell.ColorDefault
	marker := " "
	if selected {
		bg = r.theme.SelectionBg
		marker = selectedMarker
	}
	b.WriteString(r.palette.Color(fg, bg))
	b.WriteString(marker)
	b.WriteString(textutil.PadRight(cell.Label, padding))
	b.WriteString(r.palette.Reset)
}

func (r *Renderer) writeHelp(b *strings.Builder, state *statepkg.NavState, width, visible int) {
	lines := buildHelpOverlayLines(state)
	for i, line := range lines {
		if i >= visible {
			break
		}
		b.WriteString(textutil.TruncateToWidth(line, width))
		b.WriteString(r.palette.ClearEOL)
		b.WriteString(lineEnd)
	}
}
