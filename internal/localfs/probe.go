package localfs

import (
	"errors"
	"fmt"

	"github.com/spf13/afero"
)

// ErrNotFound is returned by Stat when a path cannot be inspected.
var ErrNotFound = errors.New("no such file or directory")

// Kind is the type of filesystem entry found at a path.
type Kind int

const (
	KindFile Kind = iota
	KindDirectory
	// KindOther covers devices, sockets, pipes and similar entries.
	KindOther
)

func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDirectory:
		return "directory"
	default:
		return "other"
	}
}

// RenameError records a failed rename and its cause.
type RenameError struct {
	OldPath string
	NewPath string
	Err     error
}

func (e *RenameError) Error() string {
	return e.Err.Error()
}

func (e *RenameError) Unwrap() error {
	return e.Err
}

// Prober performs the stat and rename calls tagsfn needs on top of an
// afero.Fs, turning every failure into a returned error.
type Prober struct {
	fs   afero.Fs
	opts ProbeOptions
}

// NewProber returns a Prober backed by fs.
func NewProber(fs afero.Fs, opts ProbeOptions) *Prober {
	return &Prober{fs: fs, opts: opts}
}

// NewOSProber returns a Prober backed by the operating system.
func NewOSProber(opts ProbeOptions) *Prober {
	return NewProber(afero.NewOsFs(), opts)
}

// Stat reports what kind of entry lives at path. Any failure, whether the
// path is missing or inaccessible, is reported as ErrNotFound.
func (p *Prober) Stat(path string) (Kind, error) {
	info, err := p.fs.Stat(path)
	if err != nil {
		return KindOther, fmt.Errorf("%w: %s: %v", ErrNotFound, path, err)
	}
	switch {
	case info.IsDir():
		return KindDirectory, nil
	case info.Mode().IsRegular():
		return KindFile, nil
	default:
		return KindOther, nil
	}
}

// Rename moves oldPath to newPath. Failures are returned as *RenameError.
func (p *Prober) Rename(oldPath, newPath string) error {
	if p.opts.DryRun {
		return nil
	}
	if err := p.fs.Rename(oldPath, newPath); err != nil {
		return &RenameError{OldPath: oldPath, NewPath: newPath, Err: err}
	}
	return nil
}
