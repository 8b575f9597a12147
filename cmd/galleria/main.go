package main

import (
	"os"

	"github.com/pcarver/galleria/internal/cli"
	"github.com/pcarver/galleria/pkg/version"
)

func main() {
	os.Exit(run())
}

// run executes the root command and maps the outcome to an exit code.
// Separated from main so tests can exercise it without exiting.
func run() int {
	root := cli.NewRootCmd(version.GetVersion())
	if err := root.Execute(); err != nil {
		return 1
	}
	return 0
}
