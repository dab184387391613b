package state

import (
	"path/filepath"
	"sort"

	fsutil "github.com/kk-code-lab/gfile/internal/fs"
)

// firstRealEntry is the index of the first entry after "." and "..".
const firstRealEntry = 2

// BuildEntryList drops hidden entries when hideHidden is set, sorts the rest
// by display name and prepends "." and "..".
func BuildEntryList(dir string, entries []FileEntry, hideHidden bool) []FileEntry {
	visible := make([]FileEntry, 0, len(entries))
	for _, e := range entries {
		if e.IsSynthetic() {
			continue
		}
		if hideHidden && e.IsHidden() {
			continue
		}
		visible = append(visible, e)
	}

	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].DisplayName() < visible[j].DisplayName()
	})

	list := make([]FileEntry, 0, len(visible)+2)
	list = append(list, fsutil.SyntheticEntries(dir)...)
	return append(list, visible...)
}

// LoadDirectory scans dir and installs the result into state, selecting the
// entry called selectName when present and the first real entry otherwise.
// On error the state is left untouched.
func LoadDirectory(state *NavState, reader fsutil.DirReader, dir, selectName string) error {
	dir = filepath.Clean(dir)
	raw, err := reader.ReadDir(dir)
	if err != nil {
		return err
	}

	state.Cwd = dir
	state.Entries = BuildEntryList(dir, raw, state.HideHidden)
	index := findEntryIndexByName(state.Entries, selectName)
	if index < 0 {
		index = defaultSelection(state.Entries)
	}
	state.relayout(index)
	return nil
}

func findEntryIndexByName(entries []FileEntry, name string) int {
	if name == "" {
		return -1
	}
	for i, e := range entries {
		if e.Name == name {
			return i
		}
	}
	return -1
}

func defaultSelection(entries []FileEntry) int {
	if len(entries) == 0 {
		return 0
	}
	if firstRealEntry >= len(entries) {
		return len(entries) - 1
	}
	return firstRealEntry
}
