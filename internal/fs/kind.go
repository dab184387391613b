package fs

import (
	"fmt"
	"os"
	"strings"

	"github.com/gobwas/glob"
)

// Default name patterns for the media and archive kinds. Matching is done on
// the lower-cased name.
var (
	DefaultMediaPatterns = []string{
		"*.{png,jpg,jpeg,gif,webp,bmp,tif,tiff,svg,ico,heic,avif}",
		"*.{mp3,flac,ogg,opus,wav,m4a,aac}",
		"*.{mp4,mkv,webm,avi,mov,m4v,wmv}",
	}
	DefaultArchivePatterns = []string{
		"*.{zip,tar,gz,tgz,bz2,tbz2,xz,txz,zst,lz4,7z,rar}",
		"*.{deb,rpm,apk,jar,war,iso,dmg}",
	}
)

// Classifier derives the Kind of a directory entry.
type Classifier struct {
	media   []glob.Glob
	archive []glob.Glob
}

// NewClassifier compiles the given media and archive patterns.
func NewClassifier(media, archive []string) (*Classifier, error) {
	c := &Classifier{}
	for _, p := range media {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid media pattern %q: %w", p, err)
		}
		c.media = append(c.media, g)
	}
	for _, p := range archive {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid archive pattern %q: %w", p, err)
		}
		c.archive = append(c.archive, g)
	}
	return c, nil
}

// DefaultClassifier uses DefaultMediaPatterns and DefaultArchivePatterns.
func DefaultClassifier() *Classifier {
	c, err := NewClassifier(DefaultMediaPatterns, DefaultArchivePatterns)
	if err != nil {
		panic(err)
	}
	return c
}

// Classify picks the kind for name. lmode is the mode of the entry itself
// (not following links); target is the stat result of the link target, or
// nil when the entry is not a symlink or the target is dangling.
func (c *Classifier) Classify(name string, lmode os.FileMode, target os.FileInfo) Kind {
	mode := lmode
	isLink := lmode&os.ModeSymlink != 0
	if isLink && target != nil {
		mode = target.Mode()
	}

	lower := strings.ToLower(name)
	switch {
	case mode.IsDir():
		return KindDirectory
	case matchAny(c.media, lower):
		return KindMedia
	case mode.IsRegular() && mode.Perm()&0o111 != 0:
		return KindExecutable
	case isLink:
		return KindSymlink
	case matchAny(c.archive, lower):
		return KindArchive
	default:
		return KindPlain
	}
}

func matchAny(globs []glob.Glob, name string) bool {
	for _, g := range globs {
		if g.Match(name) {
			return true
		}
	}
	return false
}
