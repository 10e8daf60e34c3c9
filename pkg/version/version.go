package version

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/pflag"
)

// set by -ldflags at build time
var (
	version   = "unknown"
	gitCommit = "unknown"
	buildDate = "unknown"
)

var printVersion bool

// AddFlags ...
func AddFlags(fs *pflag.FlagSet) {
	fs.BoolVar(&printVersion, "version", false, "print version and exit")
}

// PrintVersionOrContinue prints the version and exits if --version was set.
func PrintVersionOrContinue() {
	fmt.Printf("version: %s, gitCommit: %s, buildDate: %s, goVersion: %s\n",
		version, gitCommit, buildDate, runtime.Version())
	if printVersion {
		os.Exit(0)
	}
}
