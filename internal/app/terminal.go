//go:build !windows && !plan9 && !js && !wasip1

package app

import (
	"bufio"
	"errors"
	"fmt"
	"os"

	renderui "github.com/kk-code-lab/gfile/internal/ui/render"
	"golang.org/x/term"
)

// Terminal is the display and raw-mode control the event loop drives.
type Terminal interface {
	Input() *os.File
	// Enter switches to raw mode and the alternate screen.
	Enter() error
	// Restore undoes Enter. It is safe to call when not entered.
	Restore() error
	Size() (width, height int, err error)
	WriteString(s string) error
	Close() error
}

type ttyTerminal struct {
	in      *os.File
	out     *os.File
	owned   bool
	palette renderui.Palette
	writer  *bufio.Writer
	saved   *term.State
	active  bool
}

// openTerminal prefers /dev/tty so that redirected stdio does not matter.
func openTerminal(palette renderui.Palette) (*ttyTerminal, error) {
	t := &ttyTerminal{palette: palette}
	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err == nil {
		t.in, t.out, t.owned = tty, tty, true
	} else if term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd())) {
		t.in, t.out = os.Stdin, os.Stdout
	} else {
		return nil, fmt.Errorf("no terminal available: %w", err)
	}
	t.writer = bufio.NewWriter(t.out)
	return t, nil
}

func (t *ttyTerminal) Input() *os.File {
	return t.in
}

func (t *ttyTerminal) Enter() error {
	if t.active {
		return nil
	}
	saved, err := term.MakeRaw(int(t.in.Fd()))
	if err != nil {
		return fmt.Errorf("cannot enter raw mode: %w", err)
	}
	t.saved = saved
	t.active = true
	return t.WriteString(t.palette.EnterAlt + t.palette.HideCursor + t.palette.Clear)
}

func (t *ttyTerminal) Restore() error {
	if !t.active {
		return nil
	}
	t.active = false
	writeErr := t.WriteString(t.palette.Reset + t.palette.ShowCursor + t.palette.ExitAlt)
	var restoreErr error
	if t.saved != nil {
		restoreErr = term.Restore(int(t.in.Fd()), t.saved)
	}
	return errors.Join(writeErr, restoreErr)
}

func (t *ttyTerminal) Size() (int, int, error) {
	return term.GetSize(int(t.out.Fd()))
}

func (t *ttyTerminal) WriteString(s string) error {
	if _, err := t.writer.WriteString(s); err != nil {
		return err
	}
	return t.writer.Flush()
}

func (t *ttyTerminal) Close() error {
	err := t.Restore()
	if t.owned {
		err = errors.Join(err, t.in.Close())
	}
	return err
}
