package cli

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"go.szostok.io/version/extension"
)

// TestInit_VersionCommandAdded verifies the version subcommand is registered on root.
func TestInit_VersionCommandAdded(t *testing.T) {
	origRoot := RootCmd
	defer func() { RootCmd = origRoot }()

	rootCmd := &cobra.Command{}

	found := false
	for _, cmd := range rootCmd.Commands() {
		if cmd.Use == "version" {
			found = true
			break
		}
	}
	assert.False(t, found, "Version command should not exist before registration")

	RootCmd = rootCmd
	extensionCmd := extension.NewVersionCobraCmd(
		extension.WithUpgradeNotice(RepoOwner, RepoName),
	)
	RootCmd.AddCommand(extensionCmd)

	found = false
	for _, cmd := range RootCmd.Commands() {
		if cmd.Use == "version" {
			found = true
			break
		}
	}
	assert.True(t, found, "Version command should be added to RootCmd")
}
