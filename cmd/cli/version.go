package cli

import (
	"go.szostok.io/version/extension"
)

const (
	// RepoOwner is the GitHub owner used for the version upgrade notice.
	RepoOwner = "omustardo"
	// RepoName is the GitHub repository used for the version upgrade notice.
	RepoName = "proton-save-finder"
)

// init registers the version subcommand, which prints build information and
// checks GitHub for a newer release.
func init() {
	RootCmd.AddCommand(extension.NewVersionCobraCmd(
		extension.WithUpgradeNotice(RepoOwner, RepoName),
	))
}
