// Command shrinkcat shrinks a file in place while streaming its original
// contents to standard output.
package main

import (
	"os"

	"github.com/kalbasit/shrinkcat/internal/cli"
)

func main() {
	cmd := cli.NewRootCmd()
	cmd.SetOut(os.Stdout)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
