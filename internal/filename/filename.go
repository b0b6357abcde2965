// Package filename models file names that carry a bracketed tag suffix,
// e.g. "report.[draft q3].pdf".
//
// Everything in this package is pure string manipulation: nothing touches the
// filesystem, and every function returns a new value instead of mutating its
// input.
package filename

import (
	"os"
	"strings"
)

// Tags is an ordered list of tags as found in (or destined for) a file name.
type Tags []string

// FileInfo is the structural breakdown of a path.
type FileInfo struct {
	Extension string // includes the leading dot, may be empty
	BaseName  string // may still contain a tag suffix
	Directory string // "." when the path has no directory component
}

// FileInfoWithTags is a FileInfo plus the tags decoded from its base name.
type FileInfoWithTags struct {
	FileInfo
	Tags Tags
}

// EnhancedFileInfo adds the base name with its tag suffix stripped.
// BaseName is kept untouched so the original file can still be located.
type EnhancedFileInfo struct {
	FileInfoWithTags
	NormalizedBaseName string
}

// RenamedFileInfo carries the base name the file should be renamed to.
type RenamedFileInfo struct {
	EnhancedFileInfo
	NewBaseName string
}

// Split breaks path into directory, base name and extension.
// It never fails: an empty path yields {"", "", "."}.
//
// The directory is taken verbatim from path: "." and ".." components are
// kept, because through a symlink "link/.." and "." name different
// directories.
func Split(path string) FileInfo {
	trimmed := strings.TrimRight(path, separators)
	if trimmed == "" && path != "" {
		// path consisted of separators only, i.e. the root directory
		return FileInfo{Directory: path[:1]}
	}

	idx := strings.LastIndexAny(trimmed, separators)
	segment := trimmed[idx+1:]
	ext := extension(segment)

	return FileInfo{
		Extension: ext,
		BaseName:  strings.TrimSuffix(segment, ext),
		Directory: directory(trimmed, idx),
	}
}

// separators are the characters ending a directory component.
const separators = string(os.PathSeparator) + "/"

// directory returns the part of trimmed before the separator at idx, without
// trailing separators. A root directory keeps its single separator.
func directory(trimmed string, idx int) string {
	if idx < 0 {
		return "."
	}
	dir := strings.TrimRight(trimmed[:idx], separators)
	if dir == "" {
		return trimmed[idx : idx+1]
	}
	return dir
}

// extension returns the suffix of segment starting at its last dot. A
// leading dot (".bashrc") and the ".." entry do not start an extension,
// while "..a" has ".a" and "..." has ".".
func extension(segment string) string {
	idx := strings.LastIndex(segment, ".")
	if idx <= 0 || segment == ".." {
		return ""
	}
	return segment[idx:]
}

// Path joins the components back into a path using base as the base name.
// The directory is not cleaned; a "." directory yields a bare file name.
func (fi FileInfo) Path(base string) string {
	name := base + fi.Extension
	switch {
	case fi.Directory == "" || fi.Directory == ".":
		return name
	case strings.ContainsAny(fi.Directory[len(fi.Directory)-1:], separators):
		return fi.Directory + name
	default:
		return fi.Directory + string(os.PathSeparator) + name
	}
}

// Describe splits path and decodes the tags in its base name.
func Describe(path string) FileInfoWithTags {
	info := Split(path)
	return FileInfoWithTags{
		FileInfo: info,
		Tags:     DecodeTags(info.BaseName),
	}
}

// Normalize derives the base name without its tag suffix. Only an exact
// trailing EncodeTags(fi.Tags) is stripped; a base name without any suffix
// is returned as is.
func (fi FileInfoWithTags) Normalize() EnhancedFileInfo {
	return EnhancedFileInfo{
		FileInfoWithTags:   fi,
		NormalizedBaseName: strings.TrimSuffix(fi.BaseName, EncodeTags(fi.Tags)),
	}
}

// WithTags returns a copy of ei whose tag list is replaced by tags.
func (ei EnhancedFileInfo) WithTags(tags Tags) EnhancedFileInfo {
	ei.Tags = append(Tags(nil), tags...)
	return ei
}

// Rename computes the new base name for the current tag list. An empty tag
// list leaves the normalized base name bare instead of appending ".[]".
func (ei EnhancedFileInfo) Rename() RenamedFileInfo {
	newBaseName := ei.NormalizedBaseName
	if len(ei.Tags) > 0 {
		newBaseName += EncodeTags(ei.Tags)
	}
	return RenamedFileInfo{
		EnhancedFileInfo: ei,
		NewBaseName:      newBaseName,
	}
}

// OldPath is the path of the file before renaming.
func (ri RenamedFileInfo) OldPath() string {
	return ri.Path(ri.BaseName)
}

// NewPath is the path the file is renamed to.
func (ri RenamedFileInfo) NewPath() string {
	return ri.Path(ri.NewBaseName)
}

// Unchanged reports whether renaming would keep the current name.
func (ri RenamedFileInfo) Unchanged() bool {
	return ri.BaseName == ri.NewBaseName
}
