package render

import (
	"github.com/gdamore/tcell/v2"
	fsutil "github.com/kk-code-lab/gfile/internal/fs"
)

// ColorTheme defines application colors.
type ColorTheme struct {
	HeaderFg     tcell.Color
	NameFg       tcell.Color
	SelectionBg  tcell.Color
	MessageFg    tcell.Color
	DirectoryFg  tcell.Color
	MediaFg      tcell.Color
	ExecutableFg tcell.Color
	SymlinkFg    tcell.Color
	ArchiveFg    tcell.Color
	FileFg       tcell.Color
}

// GetColorTheme returns the default color scheme.
func GetColorTheme() ColorTheme {
	return ColorTheme{
		HeaderFg:     tcell.ColorGray,
		NameFg:       tcell.ColorWhite,
		SelectionBg:  tcell.ColorGray,
		MessageFg:    tcell.ColorYellow,
		DirectoryFg:  tcell.ColorBlue,
		MediaFg:      tcell.ColorFuchsia,
		ExecutableFg: tcell.ColorLime,
		SymlinkFg:    tcell.ColorAqua,
		ArchiveFg:    tcell.ColorRed,
		FileFg:       tcell.ColorWhite,
	}
}

// KindColor returns the foreground used for entries of kind k.
func (t ColorTheme) KindColor(k fsutil.Kind) tcell.Color {
	switch k {
	case fsutil.KindDirectory:
		return t.DirectoryFg
	case fsutil.KindMedia:
		return t.MediaFg
	case fsutil.KindExecutable:
		return t.ExecutableFg
	case fsutil.KindSymlink:
		return t.SymlinkFg
	case fsutil.KindArchive:
		return t.ArchiveFg
	default:
		return t.FileFg
	}
}

// paletteIndex converts a palette color to its terminal index. RGB and
// default colors have no index and yield -1.
func paletteIndex(c tcell.Color) int {
	if c == tcell.ColorDefault || !c.Valid() || c.IsRGB() {
		return -1
	}
	return int(c - tcell.ColorValid)
}
