package state

import (
	"errors"
	"os"
	"reflect"
	"testing"
)

func TestDescendErrorLeavesStateUnchanged(t *testing.T) {
	reader := newFakeReader()
	reader.add("/work", "locked/", "a.txt")
	reader.errs["/work/locked"] = os.ErrPermission

	nav, state := loadState(t, reader, "/work", 80, false)
	state.Cursor = state.Grid.Locate(3) // locked
	before := *state
	beforeNames := state.Names()

	_, err := nav.Reduce(state, DescendAction{})
	if !errors.Is(err, os.ErrPermission) {
		t.Fatalf("err=%v want permission error", err)
	}
	if state.Cwd != before.Cwd || state.Cursor != before.Cursor {
		t.Errorf("state changed: cwd=%q cursor=%+v", state.Cwd, state.Cursor)
	}
	if !reflect.DeepEqual(state.Names(), beforeNames) {
		t.Errorf("entries changed: %v", state.Names())
	}
}

func TestResizeKeepsSelectedEntry(t *testing.T) {
	reader := newFakeReader()
	reader.add("/work", "a", "b", "c", "d", "e", "f", "g")

	nav, state := loadState(t, reader, "/work", 200, false)
	state.Cursor = state.Grid.Locate(6) // e
	if len(state.Grid.Rows) != 1 {
		t.Fatalf("expected a single row at width 200")
	}

	reduceAll(t, nav, state, ResizeAction{Width: 15})
	if state.Width != 15 {
		t.Errorf("Width=%d want 15", state.Width)
	}
	if len(state.Grid.Rows) < 2 {
		t.Errorf("expected wrapped rows after narrowing, got %d", len(state.Grid.Rows))
	}
	if got := selectedName(state); got != "e" {
		t.Errorf("selected %q after resize, want e", got)
	}
	assertCursorValid(t, state)
}

func TestResizeIgnoresZeroWidth(t *testing.T) {
	reader := newFakeReader()
	reader.add("/work", "a")

	nav, state := loadState(t, reader, "/work", 120, false)
	reduceAll(t, nav, state, ResizeAction{Width: 0})
	if state.Width != 120 {
		t.Errorf("Width=%d want 120", state.Width)
	}
}

func TestHelpToggleAndDismiss(t *testing.T) {
	reader := newFakeReader()
	reader.add("/work", "a", "b")

	nav, state := loadState(t, reader, "/work", 200, false)
	reduceAll(t, nav, state, HelpAction{})
	if !state.HelpVisible {
		t.Fatal("help should be visible")
	}

	// Idle polls keep it open.
	reduceAll(t, nav, state, NoneAction{})
	if !state.HelpVisible {
		t.Fatal("NoneAction closed help")
	}

	cursor := state.Cursor
	reduceAll(t, nav, state, MoveRightAction{})
	if state.HelpVisible {
		t.Error("key press should close help")
	}
	if state.Cursor != cursor {
		t.Error("key that closed help should not move the cursor")
	}

	reduceAll(t, nav, state, HelpAction{}, HelpAction{})
	if state.HelpVisible {
		t.Error("second HelpAction should close help")
	}
}

func TestQuitFromHelp(t *testing.T) {
	nav := NewNavigator(newFakeReader())
	state := &NavState{HelpVisible: true}
	reduceAll(t, nav, state, QuitAction{})
	if state.Mode != ModeTerminal {
		t.Errorf("Mode=%v want terminal", state.Mode)
	}
}

func TestMessageClearedByNextKey(t *testing.T) {
	reader := newFakeReader()
	reader.add("/work", "a", "b")

	nav, state := loadState(t, reader, "/work", 200, false)
	reduceAll(t, nav, state, SetMessageAction{Message: "$TERMINAL is not set"})
	reduceAll(t, nav, state, NoneAction{}, ResizeAction{Width: 100})
	if state.Message == "" {
		t.Fatal("message dropped by a non-key action")
	}
	reduceAll(t, nav, state, MoveLeftAction{})
	if state.Message != "" {
		t.Errorf("message %q survived a key press", state.Message)
	}
}

func TestRefreshPicksUpNewFiles(t *testing.T) {
	reader := newFakeReader()
	reader.add("/work", "a", "c")

	nav, state := loadState(t, reader, "/work", 200, false)
	state.Cursor = state.Grid.Locate(3) // c
	reader.add("/work", "a", "b", "c")

	reduceAll(t, nav, state, RefreshAction{})
	if len(state.Entries) != 5 {
		t.Fatalf("entries=%v", state.Names())
	}
	if got := selectedName(state); got != "c" {
		t.Errorf("selected %q after refresh, want c", got)
	}
}

func TestHandoffActionsDoNotTouchState(t *testing.T) {
	reader := newFakeReader()
	reader.add("/work", "a", "b")

	nav, state := loadState(t, reader, "/work", 200, false)
	cursor, cwd := state.Cursor, state.Cwd
	reduceAll(t, nav, state, ShellAction{}, TerminalAction{}, OpenAction{}, CommandAction{})
	if state.Cursor != cursor || state.Cwd != cwd || state.Mode != ModeBrowsing {
		t.Errorf("handoff action mutated state: %+v", state)
	}
}

func TestSetMode(t *testing.T) {
	nav := NewNavigator(newFakeReader())
	state := &NavState{}
	reduceAll(t, nav, state, SetModeAction{Mode: ModeSuspended})
	if state.Mode != ModeSuspended {
		t.Errorf("Mode=%v want suspended", state.Mode)
	}
	if ModeSuspended.String() != "suspended" {
		t.Errorf("String()=%q", ModeSuspended.String())
	}
}
