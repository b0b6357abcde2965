package localfs

import (
	"fmt"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultJunkPatterns lists files created by operating systems and editors
// that are never worth tagging.
var DefaultJunkPatterns = []string{
	"npm-debug.log",
	".*.swp",
	".DS_Store",
	".AppleDouble",
	".LSOverride",
	"Icon\r",
	"._*",
	".Spotlight-V100",
	"*.Trashes*",
	"__MACOSX",
	"*~",
	"Thumbs.db",
	"ehthumbs.db",
	"Desktop.ini",
	"*@eaDir",
}

// JunkMatcher classifies file names as junk.
type JunkMatcher struct {
	patterns   []string
	skipHidden bool
}

// NewJunkMatcher builds a matcher from the default list plus opts.Patterns.
// It fails if one of the extra patterns is not a valid glob.
func NewJunkMatcher(opts JunkOptions) (*JunkMatcher, error) {
	patterns := make([]string, 0, len(DefaultJunkPatterns)+len(opts.Patterns))
	patterns = append(patterns, DefaultJunkPatterns...)
	for _, p := range opts.Patterns {
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("invalid junk pattern %q", p)
		}
		patterns = append(patterns, p)
	}
	return &JunkMatcher{patterns: patterns, skipHidden: opts.SkipHidden}, nil
}

// IsJunk reports whether the base name of path is a junk file.
func (m *JunkMatcher) IsJunk(path string) bool {
	name := filepath.Base(path)
	if m.skipHidden && IsHiddenName(name) {
		return true
	}
	for _, p := range m.patterns {
		// patterns were validated up front, so the error is always nil
		if ok, _ := doublestar.Match(p, name); ok {
			return true
		}
	}
	return false
}
