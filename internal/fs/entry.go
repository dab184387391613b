package fs

import (
	"os"
	"path/filepath"
)

// Kind classifies an entry for coloring. The order of the constants is the
// classification priority: a symlink that points at a directory is a
// Directory, an executable image is Media, and so on.
type Kind int

const (
	KindPlain Kind = iota
	KindDirectory
	KindMedia
	KindExecutable
	KindSymlink
	KindArchive
)

func (k Kind) String() string {
	switch k {
	case KindDirectory:
		return "directory"
	case KindMedia:
		return "media"
	case KindExecutable:
		return "executable"
	case KindSymlink:
		return "symlink"
	case KindArchive:
		return "archive"
	default:
		return "plain"
	}
}

// Synthetic entry names that are always listed first.
const (
	CurrentDirName = "."
	ParentDirName  = ".."
)

// Entry represents a single file or directory on disk. Name is the name as
// stored on disk and identifies the entry; Label is its NFC form used for
// sorting and display.
type Entry struct {
	Name     string
	Label    string
	FullPath string
	Kind     Kind
	Mode     os.FileMode
}

// DisplayName returns Label, or Name when no label was set.
func (e Entry) DisplayName() string {
	if e.Label != "" {
		return e.Label
	}
	return e.Name
}

// IsDir reports whether the entry can be descended into.
func (e Entry) IsDir() bool {
	return e.Kind == KindDirectory
}

// IsSynthetic reports whether the entry is "." or "..".
func (e Entry) IsSynthetic() bool {
	return e.Name == CurrentDirName || e.Name == ParentDirName
}

// IsHidden reports whether the entry should be treated as hidden.
func (e Entry) IsHidden() bool {
	return IsHidden(e.Name)
}

// IsHidden checks if a file name is hidden (Unix dot-file convention).
func IsHidden(name string) bool {
	return len(name) > 0 && name[0] == '.'
}

// SyntheticEntries returns the "." and ".." entries for dir.
func SyntheticEntries(dir string) []Entry {
	return []Entry{
		{Name: CurrentDirName, FullPath: dir, Kind: KindDirectory, Mode: os.ModeDir},
		{Name: ParentDirName, FullPath: filepath.Dir(dir), Kind: KindDirectory, Mode: os.ModeDir},
	}
}
