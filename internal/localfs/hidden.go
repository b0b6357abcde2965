// Package localfs provides the local filesystem operations used by tagsfn:
// classifying junk files, probing whether a path is a regular file, and
// renaming it.
package localfs

import (
	"strings"
)

// IsHiddenName reports whether a base name is a dot file.
// Special entries "." and ".." are not considered hidden.
func IsHiddenName(name string) bool {
	if name == "." || name == ".." {
		return false
	}
	return strings.HasPrefix(name, ".")
}
