// Package cli provides the Cobra-based CLI commands for proton-save-finder (find, search, refresh, version).
package cli

import (
	"fmt"
	"runtime"

	"github.com/charmbracelet/log"
	sCli "github.com/ondrovic/common/utils/cli"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RootCmd is the main Cobra command for the save-finder CLI tool, providing a
// short description and setting up the command's usage for locating Windows
// save-game folders inside Proton prefixes.
var RootCmd = &cobra.Command{
	Use:   "proton-save-finder",
	Short: "A CLI tool to locate Windows save-game folders for Steam games run through Proton",
}

// clearTerminalScreen clears the terminal; tests may override.
var clearTerminalScreen = func(goos string) error {
	return sCli.ClearTerminalScreen(goos)
}

func init() {
	RootCmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress spinner and status output (for piping to jq)")
	RootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	_ = viper.BindPFlags(RootCmd.PersistentFlags())
	RootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		if mustGetVerbose(cmd) {
			log.SetLevel(log.DebugLevel)
		} else {
			log.SetLevel(log.WarnLevel)
		}
		if mustGetQuiet(cmd) {
			return nil
		}
		if err := clearTerminalScreen(runtime.GOOS); err != nil {
			return fmt.Errorf("error clearing terminal: %w", err)
		}
		return nil
	}
}

// mustGetQuiet returns the value of the persistent quiet flag; call only after parsing.
func mustGetQuiet(cmd *cobra.Command) bool {
	q, err := cmd.PersistentFlags().GetBool("quiet")
	if err != nil {
		return false
	}
	return q
}

// mustGetVerbose returns the value of the persistent verbose flag; call only after parsing.
func mustGetVerbose(cmd *cobra.Command) bool {
	v, err := cmd.PersistentFlags().GetBool("verbose")
	if err != nil {
		return false
	}
	return v
}

// Execute runs the RootCmd command, handling any errors that occur during its execution.
// Returns an error if the command fails to execute.
func Execute() error {

	if err := RootCmd.Execute(); err != nil {
		return err
	}

	return nil
}
