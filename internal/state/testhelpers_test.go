package state

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	fsutil "github.com/kk-code-lab/gfile/internal/fs"
)

// fakeReader serves directory listings from memory.
type fakeReader struct {
	dirs  map[string][]FileEntry
	errs  map[string]error
	calls []string
}

func newFakeReader() *fakeReader {
	return &fakeReader{
		dirs: make(map[string][]FileEntry),
		errs: make(map[string]error),
	}
}

func (f *fakeReader) add(dir string, names ...string) {
	entries := make([]FileEntry, 0, len(names))
	for _, name := range names {
		kind := fsutil.KindPlain
		clean := name
		if n := len(name); n > 0 && name[n-1] == '/' {
			kind = fsutil.KindDirectory
			clean = name[:n-1]
		}
		entries = append(entries, FileEntry{
			Name:     clean,
			FullPath: filepath.Join(dir, clean),
			Kind:     kind,
		})
	}
	f.dirs[dir] = entries
}

func (f *fakeReader) ReadDir(path string) ([]FileEntry, error) {
	f.calls = append(f.calls, path)
	if err, ok := f.errs[path]; ok {
		return nil, fmt.Errorf("cannot read directory %s: %w", path, err)
	}
	entries, ok := f.dirs[path]
	if !ok {
		return nil, fmt.Errorf("cannot read directory %s: %w", path, os.ErrNotExist)
	}
	out := make([]FileEntry, len(entries))
	copy(out, entries)
	return out, nil
}

func loadState(t *testing.T, reader fsutil.DirReader, dir string, width int, hideHidden bool) (*Navigator, *NavState) {
	t.Helper()
	nav := NewNavigator(reader)
	state := &NavState{Width: width, HideHidden: hideHidden}
	if err := nav.Load(state, dir); err != nil {
		t.Fatalf("Load(%s) failed: %v", dir, err)
	}
	return nav, state
}

func reduceAll(t *testing.T, nav *Navigator, state *NavState, actions ...Action) {
	t.Helper()
	for _, action := range actions {
		if _, err := nav.Reduce(state, action); err != nil {
			t.Fatalf("Reduce(%T) failed: %v", action, err)
		}
	}
}

func selectedName(state *NavState) string {
	entry, ok := state.SelectedEntry()
	if !ok {
		return ""
	}
	return entry.Name
}

func assertCursorValid(t *testing.T, state *NavState) {
	t.Helper()
	if idx := state.Grid.Index(state.Cursor); idx < 0 || idx >= len(state.Entries) {
		t.Fatalf("cursor %+v outside grid (rows=%d)", state.Cursor, len(state.Grid.Rows))
	}
}
