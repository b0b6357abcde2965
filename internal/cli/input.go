package cli

import (
	"bufio"
	"context"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/kyusu/tagsfn/internal/logging"
)

// maxPathLength bounds a single input line.
const maxPathLength = 1024 * 1024

// forEachPath calls fn with every non-empty line of r, in order, one at a
// time. Line terminators ("\n" or "\r\n") are stripped; other whitespace is
// kept because it may be part of a file name. Cancelling ctx stops the loop
// before the next line.
func forEachPath(ctx context.Context, r io.Reader, fn func(path string)) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxPathLength)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		path := strings.TrimSuffix(scanner.Text(), "\r")
		if path == "" {
			continue
		}
		fn(path)
	}
	return scanner.Err()
}

// warnIfInteractive tells the user where input is expected when paths would
// be typed on a terminal instead of piped in.
func warnIfInteractive(r io.Reader, log *logging.Logger) {
	f, ok := r.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return
	}
	log.Warn().Msg("Reading file paths from standard input, one per line (Ctrl-D to finish)")
}
