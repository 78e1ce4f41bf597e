package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/omustardo/proton-save-finder/internal/catalog"
	"github.com/omustardo/proton-save-finder/internal/httpclient"
	"github.com/omustardo/proton-save-finder/internal/types"
	"github.com/omustardo/proton-save-finder/internal/utils/cli"
	"github.com/omustardo/proton-save-finder/internal/utils/storage"
)

// searchCmd is the Cobra command that lists catalog matches for a query.
var searchCmd = &cobra.Command{}

// init initializes the search command, setting its usage, description, and
// argument validation. It binds flags using Viper and adds the search command
// to the root command for browsing the cached Steam catalog.
func init() {
	searchCmd = &cobra.Command{
		Use:   "search <query> [flags]",
		Short: "Search the Steam catalog",
		Long:  "Fuzzy-search the cached Steam catalog and list matching games with their appids",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runSearch,
	}

	initSearchFlags(searchCmd)
	_ = viper.BindPFlags(searchCmd.Flags())
	RootCmd.AddCommand(searchCmd)
}

// initSearchFlags registers the command-line flags for the search command:
// the installed-only filter and the match limit. These flags are bound to the
// corresponding fields in CliFlags.
func initSearchFlags(cmd *cobra.Command) {
	cli.RegisterFlag(cmd, "installed-only", "i", false, "Only list games with a Proton prefix on this machine", &options.InstalledOnly)
	cli.RegisterFlag(cmd, "limit", "n", 50, "Maximum number of matches to list", &options.Limit)
}

// runSearch executes the search command: it loads the catalog, ranks the
// matches, optionally filters to installed games, and prints one
// "appid  name" line per match.
func runSearch(cmd *cobra.Command, args []string) error {
	sc := types.CliFlags{
		InstalledOnly: viper.GetBool("installed-only"),
		Limit:         viper.GetInt("limit"),
		Quiet:         viper.GetBool("quiet"),
	}
	query := args[0]

	if err := httpclient.InitClient(); err != nil {
		return err
	}

	var apps []types.SteamApp
	if !sc.Quiet {
		catalogSpinner := createSpinner("Loading Steam catalog", "✓", "Steam catalog loaded", "✗", "Failed to load Steam catalog")
		if err := catalogSpinner.Start(); err != nil {
			return fmt.Errorf("failed to start spinner: %w", err)
		}
		var err error
		apps, err = loadCatalogFunc(storage.GetDataStoragePath())
		if err != nil {
			catalogSpinner.StopFailMessage(fmt.Sprintf("Error loading catalog: %v", err))
			if stopErr := catalogSpinner.StopFail(); stopErr != nil {
				fmt.Fprintf(os.Stderr, "spinner stop error: %v\n", stopErr)
			}
			return err
		}
		if stopErr := catalogSpinner.Stop(); stopErr != nil {
			fmt.Fprintf(os.Stderr, "spinner stop error: %v\n", stopErr)
		}
	} else {
		var err error
		if apps, err = loadCatalogFunc(storage.GetDataStoragePath()); err != nil {
			return err
		}
	}

	matches := catalog.FuzzySearch(query, apps)
	if sc.InstalledOnly {
		matches = catalog.FilterInstalled(matches, discoverRootsFunc())
	}
	if sc.Limit > 0 && len(matches) > sc.Limit {
		matches = matches[:sc.Limit]
	}

	if len(matches) == 0 {
		fmt.Println("No matches found.")
		return nil
	}
	for _, app := range matches {
		fmt.Printf("%8d  %s\n", app.AppID, app.Name)
	}
	return nil
}
