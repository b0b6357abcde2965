// Package tagger runs the per-path tag operations: changing the tags of a
// file by renaming it, and testing a file against a tag filter.
//
// Each call handles exactly one path and never panics or returns an error;
// every outcome is reported as a value. Paths are processed one at a time by
// the caller, so a Tagger holds no per-path state.
package tagger

import (
	"errors"
	"fmt"

	"github.com/kyusu/tagsfn/internal/filename"
	"github.com/kyusu/tagsfn/internal/localfs"
	"github.com/kyusu/tagsfn/internal/logging"
	"github.com/kyusu/tagsfn/internal/util/tags"
)

var (
	// ErrJunk marks a path rejected because it names a junk file.
	ErrJunk = errors.New("junk file")
	// ErrNotRegular marks a path rejected because it is not a regular file.
	ErrNotRegular = errors.New("not a regular file")
)

// Probe inspects and renames filesystem entries.
type Probe interface {
	Stat(path string) (localfs.Kind, error)
	Rename(oldPath, newPath string) error
}

// JunkClassifier decides which paths are ignored altogether.
type JunkClassifier interface {
	IsJunk(path string) bool
}

// Status is the outcome category of a tag change.
type Status int

const (
	// StatusRenamed means the rename succeeded.
	StatusRenamed Status = iota
	// StatusSkipped means the path was rejected before any rename.
	StatusSkipped
	// StatusFailed means the rename was attempted and failed.
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusRenamed:
		return "renamed"
	case StatusSkipped:
		return "skipped"
	default:
		return "failed"
	}
}

// ChangeResult describes what happened to one path.
type ChangeResult struct {
	Path    string
	Status  Status
	File    filename.RenamedFileInfo // zero unless the path got past the checks
	Err     error                    // rejection reason or rename failure
	Message string                   // the line reported to the user
}

// Tagger applies tag operations to single paths.
type Tagger struct {
	probe  Probe
	junk   JunkClassifier
	logger *logging.Logger
}

// New creates a Tagger.
func New(probe Probe, junk JunkClassifier, logger *logging.Logger) *Tagger {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Tagger{
		probe:  probe,
		junk:   junk,
		logger: logger.Component("tagger"),
	}
}

// ChangeTags applies mutate to the tags of the file at path and renames the
// file accordingly. It returns the line to report: the new base name on
// success, or a notice explaining why nothing was renamed.
func (t *Tagger) ChangeTags(mutate tags.Mutation, path string) string {
	return t.Change(mutate, path).Message
}

// Change is ChangeTags returning the full result.
func (t *Tagger) Change(mutate tags.Mutation, path string) ChangeResult {
	info, err := t.describe(path)
	if err != nil {
		t.logger.Debug().Str("path", path).Err(err).Msg("Not renaming")
		return ChangeResult{
			Path:    path,
			Status:  StatusSkipped,
			Err:     err,
			Message: fmt.Sprintf("%s has not been renamed!", path),
		}
	}

	normalized := info.Normalize()
	renamed := normalized.WithTags(mutate(normalized.Tags)).Rename()
	oldPath, newPath := renamed.OldPath(), renamed.NewPath()

	if err := t.probe.Rename(oldPath, newPath); err != nil {
		t.logger.Error().Str("old", oldPath).Str("new", newPath).Err(err).Msg("Rename failed")
		return ChangeResult{
			Path:    path,
			Status:  StatusFailed,
			File:    renamed,
			Err:     err,
			Message: fmt.Sprintf("tagsToFileNames has failed: %v for %s", err, path),
		}
	}

	t.logger.Debug().
		Str("old", oldPath).
		Str("new", newPath).
		Strs("tags", renamed.Tags).
		Bool("unchanged", renamed.Unchanged()).
		Msg("Renamed")
	return ChangeResult{
		Path:    path,
		Status:  StatusRenamed,
		File:    renamed,
		Message: renamed.NewBaseName,
	}
}

// SatisfiesFilter reports whether the file at path carries every tag in
// required. Paths that are junk, missing or not regular files never do.
func (t *Tagger) SatisfiesFilter(required []string, path string) bool {
	info, err := t.describe(path)
	if err != nil {
		t.logger.Debug().Str("path", path).Err(err).Msg("Excluded from filter")
		return false
	}
	return tags.ContainsAll(required, info.Tags)
}

// Describe returns the tags of the file at path after the same checks the
// other operations run.
func (t *Tagger) Describe(path string) (filename.FileInfoWithTags, error) {
	return t.describe(path)
}

// describe runs the junk, stat and type checks in order, stopping at the
// first rejection, then parses the file name.
func (t *Tagger) describe(path string) (filename.FileInfoWithTags, error) {
	if t.junk.IsJunk(path) {
		return filename.FileInfoWithTags{}, fmt.Errorf("%s: %w", path, ErrJunk)
	}
	kind, err := t.probe.Stat(path)
	if err != nil {
		return filename.FileInfoWithTags{}, err
	}
	if kind != localfs.KindFile {
		return filename.FileInfoWithTags{}, fmt.Errorf("%s is a %s: %w", path, kind, ErrNotRegular)
	}
	return filename.Describe(path), nil
}
