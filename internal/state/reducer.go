package state

import (
	"path/filepath"

	fsutil "github.com/kk-code-lab/gfile/internal/fs"
)

// Navigator applies actions to a NavState. It owns every mutation of the
// state; the renderer and the event loop only read it.
type Navigator struct {
	reader fsutil.DirReader
}

// NewNavigator creates a navigator reading directories through reader.
func NewNavigator(reader fsutil.DirReader) *Navigator {
	if reader == nil {
		reader = fsutil.NewOSReader()
	}
	return &Navigator{reader: reader}
}

// Load performs the initial scan of dir and enters browsing mode.
func (n *Navigator) Load(state *NavState, dir string) error {
	if err := LoadDirectory(state, n.reader, dir, ""); err != nil {
		return err
	}
	state.Mode = ModeBrowsing
	return nil
}

// Reduce applies action to state. Errors from directory scans are returned
// with the state unchanged.
func (n *Navigator) Reduce(state *NavState, action Action) (*NavState, error) {
	if state.HelpVisible && closesHelp(action) {
		state.HelpVisible = false
		return state, nil
	}
	if clearsMessage(action) {
		state.Message = ""
	}

	switch a := action.(type) {

	// ===== NAVIGATION =====

	case MoveLeftAction:
		if rowLen := state.rowLen(); rowLen > 0 {
			state.Cursor.Col = (state.Cursor.Col - 1 + rowLen) % rowLen
		}
		return state, nil

	case MoveRightAction:
		if rowLen := state.rowLen(); rowLen > 0 {
			state.Cursor.Col = (state.Cursor.Col + 1) % rowLen
		}
		return state, nil

	case MoveUpAction:
		if state.rowLen() == 0 {
			return state, nil
		}
		if state.Cursor.Row > 0 {
			state.Cursor.Row--
		}
		state.Cursor = state.Grid.Clamp(state.Cursor)
		return state, nil

	case MoveDownAction:
		if state.rowLen() == 0 {
			return state, nil
		}
		if state.Cursor.Row < len(state.Grid.Rows)-1 {
			state.Cursor.Row++
		}
		state.Cursor = state.Grid.Clamp(state.Cursor)
		return state, nil

	case JumpTopAction:
		if state.Grid.Len() == 0 {
			return state, nil
		}
		state.Cursor = state.Grid.Locate(defaultSelection(state.Entries))
		return state, nil

	case JumpBottomAction:
		if state.Grid.Len() == 0 {
			return state, nil
		}
		state.Cursor = state.Grid.Locate(len(state.Entries) - 1)
		return state, nil

	case DescendAction:
		entry, ok := state.SelectedEntry()
		if !ok || !entry.IsDir() {
			return state, nil
		}
		target := filepath.Clean(entry.FullPath)
		if err := LoadDirectory(state, n.reader, target, filepath.Base(state.Cwd)); err != nil {
			return state, err
		}
		return state, nil

	case ParentAction:
		parent := filepath.Dir(state.Cwd)
		if parent == state.Cwd {
			return state, nil // already at root
		}
		if err := LoadDirectory(state, n.reader, parent, filepath.Base(state.Cwd)); err != nil {
			return state, err
		}
		return state, nil

	// ===== VIEW =====

	case ToggleHiddenAction:
		selected, _ := state.SelectedEntry()
		state.HideHidden = !state.HideHidden
		if err := LoadDirectory(state, n.reader, state.Cwd, selected.Name); err != nil {
			state.HideHidden = !state.HideHidden
			return state, err
		}
		return state, nil

	case RefreshAction:
		selected, _ := state.SelectedEntry()
		if err := LoadDirectory(state, n.reader, state.Cwd, selected.Name); err != nil {
			return state, err
		}
		return state, nil

	case ResizeAction:
		if a.Width <= 0 || a.Width == state.Width {
			return state, nil
		}
		index := state.SelectedIndex()
		state.Width = a.Width
		state.relayout(index)
		return state, nil

	case HelpAction:
		state.HelpVisible = !state.HelpVisible
		return state, nil

	case SetMessageAction:
		state.Message = a.Message
		return state, nil

	case SetModeAction:
		state.Mode = a.Mode
		return state, nil

	// ===== APPLICATION =====

	case QuitAction:
		state.Mode = ModeTerminal
		return state, nil
	}

	return state, nil
}

// closesHelp reports whether action is a key press that dismisses the help
// overlay instead of acting. Help toggles it and quit still quits.
func closesHelp(action Action) bool {
	switch action.(type) {
	case HelpAction, QuitAction, NoneAction, ResizeAction, RefreshAction, SetMessageAction, SetModeAction:
		return false
	default:
		return true
	}
}

func clearsMessage(action Action) bool {
	switch action.(type) {
	case NoneAction, ResizeAction, RefreshAction, SetMessageAction, SetModeAction:
		return false
	default:
		return true
	}
}
