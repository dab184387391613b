package state

// Action is the base interface for all state mutations
type Action interface{}

// ===== NAVIGATION ACTIONS =====

type MoveUpAction struct{}
type MoveDownAction struct{}
type MoveLeftAction struct{}
type MoveRightAction struct{}
type JumpTopAction struct{}
type JumpBottomAction struct{}
type DescendAction struct{}
type ParentAction struct{}

// ===== VIEW ACTIONS =====

type ToggleHiddenAction struct{}
type HelpAction struct{}

// ResizeAction is issued by the event loop when the terminal width changes.
type ResizeAction struct {
	Width int
}

// RefreshAction rescans the current directory keeping the selection.
type RefreshAction struct{}

// SetMessageAction replaces the one-line message under the grid.
type SetMessageAction struct {
	Message string
}

// SetModeAction is used by the event loop around foreground children.
type SetModeAction struct {
	Mode Mode
}

// ===== HANDOFF ACTIONS =====
// Handled by the event loop; the reducer treats them as no-ops.

type ShellAction struct{}
type TerminalAction struct{}
type OpenAction struct{}
type CommandAction struct{}

// ===== APPLICATION ACTIONS =====

type QuitAction struct{}

// NoneAction is produced for unmapped input and idle polls.
type NoneAction struct{}
