// toobig reports the largest text files in a directory tree.
package main

import (
	"fmt"
	"os"

	"github.com/idelchi/toobig/internal/cli"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev" //nolint:gochecknoglobals // Set by the linker.

func main() {
	if err := cli.New(version).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "toobig:", err)
		os.Exit(1)
	}
}
