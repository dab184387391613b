package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	fsutil "github.com/kk-code-lab/gfile/internal/fs"
	inputui "github.com/kk-code-lab/gfile/internal/ui/input"
	renderui "github.com/kk-code-lab/gfile/internal/ui/render"
)

type fakeTerminal struct {
	width, height int
	sizeErr       error
	entered       bool
	enters        int
	restores      int
	frames        []string
	panicOnWrite  bool
}

func (t *fakeTerminal) Input() *os.File { return nil }

func (t *fakeTerminal) Enter() error {
	t.enters++
	t.entered = true
	return nil
}

func (t *fakeTerminal) Restore() error {
	if t.entered {
		t.restores++
	}
	t.entered = false
	return nil
}

func (t *fakeTerminal) Size() (int, int, error) {
	return t.width, t.height, t.sizeErr
}

func (t *fakeTerminal) WriteString(s string) error {
	if t.panicOnWrite {
		panic("write on a broken terminal")
	}
	t.frames = append(t.frames, s)
	return nil
}

func (t *fakeTerminal) Close() error { return t.Restore() }

func (t *fakeTerminal) sawText(text string) bool {
	for _, frame := range t.frames {
		if strings.Contains(frame, text) {
			return true
		}
	}
	return false
}

// fakeListener replays scripted bytes. With block set, an empty buffer waits
// for the context instead of reporting a stopped listener.
type fakeListener struct {
	data     []byte
	block    bool
	suspends int
	resumes  int
	clears   int
	closed   bool
}

func (l *fakeListener) Wait(ctx context.Context) (byte, error) {
	if len(l.data) == 0 {
		if l.block {
			<-ctx.Done()
			return 0, ctx.Err()
		}
		return 0, inputui.ErrListenerStopped
	}
	b := l.data[0]
	l.data = l.data[1:]
	return b, nil
}

func (l *fakeListener) WaitTimeout(time.Duration) (byte, bool) {
	if len(l.data) == 0 {
		return 0, false
	}
	b := l.data[0]
	l.data = l.data[1:]
	return b, true
}

func (l *fakeListener) Suspend()     { l.suspends++ }
func (l *fakeListener) Resume()      { l.resumes++ }
func (l *fakeListener) Clear()       { l.clears++ }
func (l *fakeListener) Close() error { l.closed = true; return nil }
func (l *fakeListener) Err() error   { return errors.New("read /dev/tty: input/output error") }

type launchCall struct {
	dir  string
	path string
	argv []string
}

type fakeLauncher struct {
	runs    []launchCall
	starts  []launchCall
	execs   []launchCall
	runFn   func(dir string) error
	err     error
	execErr error
}

func (l *fakeLauncher) Run(dir string, argv []string) error {
	l.runs = append(l.runs, launchCall{dir: dir, argv: argv})
	if l.runFn != nil {
		return l.runFn(dir)
	}
	return l.err
}

func (l *fakeLauncher) Start(dir string, argv []string) error {
	l.starts = append(l.starts, launchCall{dir: dir, argv: argv})
	return l.err
}

func (l *fakeLauncher) Exec(dir, path string, argv []string) error {
	l.execs = append(l.execs, launchCall{dir: dir, path: path, argv: argv})
	return l.execErr
}

type testRig struct {
	app      *Application
	term     *fakeTerminal
	listener *fakeListener
	launcher *fakeLauncher
	dir      string
	env      map[string]string
}

func newTestRig(t *testing.T, files ...string) *testRig {
	t.Helper()
	dir := t.TempDir()
	for _, name := range files {
		path := filepath.Join(dir, name)
		if strings.HasSuffix(name, "/") {
			if err := os.MkdirAll(path, 0o755); err != nil {
				t.Fatalf("mkdir: %v", err)
			}
			continue
		}
		if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}

	rig := &testRig{
		term:     &fakeTerminal{width: 120, height: 30},
		listener: &fakeListener{},
		launcher: &fakeLauncher{},
		dir:      dir,
		env:      map[string]string{},
	}
	cfg := Config{
		Path:   dir,
		Getenv: func(k string) string { return rig.env[k] },
		LookPath: func(name string) (string, error) {
			if p, ok := rig.env["path:"+name]; ok {
				return p, nil
			}
			return "", errors.New("executable file not found in $PATH")
		},
		GOOS: "linux",
	}
	app, err := newApplication(cfg, rig.term, rig.listener, rig.launcher, fsutil.NewOSReader(), renderui.NewRenderer(nil, renderui.DefaultPalette(true)))
	if err != nil {
		t.Fatalf("newApplication: %v", err)
	}
	rig.app = app
	return rig
}

func (r *testRig) keys(s string) {
	r.listener.data = append(r.listener.data, []byte(s)...)
}

func (r *testRig) selectName(t *testing.T, name string) {
	t.Helper()
	for i, e := range r.app.state.Entries {
		if e.Name == name {
			r.app.state.Cursor = r.app.state.Grid.Locate(i)
			return
		}
	}
	t.Fatalf("entry %q not listed", name)
}

func (r *testRig) selected() string {
	entry, _ := r.app.state.SelectedEntry()
	return entry.Name
}
