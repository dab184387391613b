package state

import (
	fsutil "github.com/kk-code-lab/gfile/internal/fs"
	"github.com/kk-code-lab/gfile/internal/ui/layout"
)

// FileEntry mirrors fs.Entry so UI/state code can rely on a stable type.
type FileEntry = fsutil.Entry

// Mode is the top-level phase of the browser.
type Mode int

const (
	// ModeBrowsing is entered after the first directory scan.
	ModeBrowsing Mode = iota
	// ModeSuspended means a foreground child owns the terminal.
	ModeSuspended
	// ModeTerminal ends the event loop.
	ModeTerminal
)

func (m Mode) String() string {
	switch m {
	case ModeBrowsing:
		return "browsing"
	case ModeSuspended:
		return "suspended"
	case ModeTerminal:
		return "terminal"
	default:
		return "unknown"
	}
}

// DefaultWidth is used until the terminal reports a usable size.
const DefaultWidth = 80

// NavState is the single source of truth
type NavState struct {
	// Navigation & filesystem
	Cwd        string
	Entries    []FileEntry // "." and ".." first, then sorted by name
	HideHidden bool

	// Selection & layout
	Grid   layout.Grid
	Cursor layout.Cursor
	Width  int

	Mode        Mode
	HelpVisible bool
	Message     string
}

// SelectedIndex returns the entry index under the cursor, or -1.
func (s *NavState) SelectedIndex() int {
	return s.Grid.Index(s.Cursor)
}

// SelectedEntry returns the entry under the cursor.
func (s *NavState) SelectedEntry() (FileEntry, bool) {
	idx := s.SelectedIndex()
	if idx < 0 || idx >= len(s.Entries) {
		return FileEntry{}, false
	}
	return s.Entries[idx], true
}

// Names returns the display names in list order.
func (s *NavState) Names() []string {
	names := make([]string, len(s.Entries))
	for i, e := range s.Entries {
		names[i] = e.DisplayName()
	}
	return names
}

// relayout rebuilds the grid for the current width and places the cursor on
// the entry at index.
func (s *NavState) relayout(index int) {
	width := s.Width
	if width <= 0 {
		width = DefaultWidth
	}
	s.Grid = layout.Layout(s.Names(), width)
	s.Cursor = s.Grid.Locate(index)
}

func (s *NavState) rowLen() int {
	return s.Grid.RowLen(s.Cursor.Row)
}
