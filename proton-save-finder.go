// Package main provides the proton-save-finder CLI entrypoint.
package main

import (
	"fmt"
	"os"

	"github.com/omustardo/proton-save-finder/cmd/cli"
)

// osExit is called to terminate the process on error; tests may override.
var osExit = os.Exit

// executeMain runs the CLI and exits the process on error.
func executeMain(executeFunc func() error) {
	if err := executeFunc(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		osExit(1)
	}
}

// main is the entry point; it runs the CLI root command (clear-screen is
// handled by the root's PersistentPreRun when not --quiet/-q).
func main() {
	executeMain(cli.RootCmd.Execute)
}
