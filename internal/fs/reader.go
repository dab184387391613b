package fs

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/text/unicode/norm"
)

// DirReader enumerates a directory. Implementations return the entries in
// no particular order and without the synthetic "." and ".." entries.
type DirReader interface {
	ReadDir(path string) ([]Entry, error)
}

// OSReader reads directories from the local filesystem.
type OSReader struct {
	Classifier *Classifier
}

// NewOSReader returns a reader using the default classifier.
func NewOSReader() *OSReader {
	return &OSReader{Classifier: DefaultClassifier()}
}

// ReadDir lists path. Entries whose attributes cannot be read are skipped.
func (r *OSReader) ReadDir(path string) ([]Entry, error) {
	dirEntries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read directory %s: %w", path, err)
	}

	classifier := r.Classifier
	if classifier == nil {
		classifier = DefaultClassifier()
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, e := range dirEntries {
		info, err := e.Info()
		if err != nil {
			continue
		}

		rawName := e.Name()
		fullPath := filepath.Join(path, rawName)

		var target os.FileInfo
		if info.Mode()&os.ModeSymlink != 0 {
			if ti, err := os.Stat(fullPath); err == nil {
				target = ti
			}
		}

		entries = append(entries, Entry{
			Name:     rawName,
			Label:    norm.NFC.String(rawName),
			FullPath: fullPath,
			Kind:     classifier.Classify(rawName, info.Mode(), target),
			Mode:     info.Mode(),
		})
	}
	return entries, nil
}
