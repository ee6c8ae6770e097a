// fsdist – filesystem distributor for generated configuration files.
// Writes a rendered file into every destination directory listed in the
// distributor config, optionally creating missing parents.
package main

import (
	"os"

	"github.com/kjourdan1/fsdist/cmd"
	"github.com/kjourdan1/fsdist/internal/exitcode"
	"github.com/kjourdan1/fsdist/internal/output"
	_ "github.com/kjourdan1/fsdist/schemas"
)

func main() {
	output.ExitCode = exitcode.Of
	if err := cmd.Execute(); err != nil {
		output.PrintError(err)
		os.Exit(exitcode.Of(err))
	}
}
