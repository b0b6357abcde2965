// tagsfn - stores tags in file names
package main

import (
	"os"

	"github.com/kyusu/tagsfn/internal/cli"
	"github.com/kyusu/tagsfn/internal/version"
)

// Version information
var (
	Version   = "v0.3.0-dev"
	BuildTime = "unknown"
)

func main() {
	// Set version in version package (canonical source for all packages)
	version.Version = Version
	version.BuildTime = BuildTime

	// cobra has already printed the error
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
