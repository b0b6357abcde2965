package localfs

// ProbeOptions configures the behavior of a Prober.
type ProbeOptions struct {
	// DryRun skips the rename syscall and reports success instead.
	// Stat still hits the filesystem so rejections are reported as usual.
	DryRun bool
}

// JunkOptions configures the behavior of a JunkMatcher.
type JunkOptions struct {
	// Patterns are extra glob patterns (doublestar syntax) matched against
	// the base name, on top of the built-in list.
	Patterns []string

	// SkipHidden treats every dot file as junk.
	// Default is false (only the well-known artifacts are junk).
	SkipHidden bool
}
