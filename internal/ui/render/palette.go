package render

import (
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/gdamore/tcell/v2/terminfo"
	_ "github.com/gdamore/tcell/v2/terminfo/extended"
)

// Sequences terminfo has no capability for in tcell's table.
const (
	ansiClearEOL   = "\x1b[K"
	ansiClearBelow = "\x1b[J"
)

// Palette holds the escape sequences a frame is assembled from.
type Palette struct {
	Home       string
	Clear      string
	ClearEOL   string
	ClearBelow string
	Reset      string
	EnterAlt   string
	ExitAlt    string
	HideCursor string
	ShowCursor string

	colors bool
	ti     *terminfo.Terminfo
}

// NewPalette looks up term in the terminfo database. Unknown terminals get
// the ANSI defaults; noColor suppresses every color sequence.
func NewPalette(term string, noColor bool) Palette {
	ti, err := terminfo.LookupTerminfo(term)
	if err != nil || ti == nil {
		return DefaultPalette(noColor)
	}

	p := DefaultPalette(noColor)
	p.ti = ti
	if ti.SetCursor != "" {
		p.Home = ti.TGoto(0, 0)
	}
	if ti.Clear != "" {
		p.Clear = ti.Clear
	}
	p.EnterAlt = ti.EnterCA
	p.ExitAlt = ti.ExitCA
	p.HideCursor = ti.HideCursor
	p.ShowCursor = ti.ShowCursor
	if p.colors {
		if ti.Colors == 0 {
			p.colors = false
			p.Reset = ""
		} else if ti.AttrOff != "" {
			p.Reset = ti.AttrOff
		}
	}
	return p
}

// DefaultPalette returns plain ANSI/xterm sequences.
func DefaultPalette(noColor bool) Palette {
	p := Palette{
		Home:       "\x1b[H",
		Clear:      "\x1b[H\x1b[2J",
		ClearEOL:   ansiClearEOL,
		ClearBelow: ansiClearBelow,
		EnterAlt:   "\x1b[?1049h",
		ExitAlt:    "\x1b[?1049l",
		HideCursor: "\x1b[?25l",
		ShowCursor: "\x1b[?25h",
		colors:     !noColor,
	}
	if p.colors {
		p.Reset = "\x1b[0m"
	}
	return p
}

// Color returns the sequence selecting fg on bg. ColorDefault leaves that
// side unchanged.
func (p Palette) Color(fg, bg tcell.Color) string {
	if !p.colors {
		return ""
	}
	fi, bi := paletteIndex(fg), paletteIndex(bg)
	if p.ti != nil {
		return p.ti.TColor(fi, bi)
	}
	return ansiColor(fi, 30, 90) + ansiColor(bi, 40, 100)
}

func ansiColor(idx, base, brightBase int) string {
	switch {
	case idx < 0:
		return ""
	case idx < 8:
		return "\x1b[" + strconv.Itoa(base+idx) + "m"
	case idx < 16:
		return "\x1b[" + strconv.Itoa(brightBase+idx-8) + "m"
	default:
		return "\x1b[" + strconv.Itoa(base+8) + ";5;" + strconv.Itoa(idx) + "m"
	}
}
