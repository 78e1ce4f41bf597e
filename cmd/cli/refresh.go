package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/omustardo/proton-save-finder/internal/catalog"
	"github.com/omustardo/proton-save-finder/internal/httpclient"
	"github.com/omustardo/proton-save-finder/internal/utils/storage"
)

var (
	// refreshCmd is the Cobra command that re-downloads the Steam catalog.
	refreshCmd = &cobra.Command{}
	// refreshCatalogFunc replaces the cached catalog; tests may override.
	refreshCatalogFunc = catalog.Refresh
)

// init initializes the refresh command and adds it to the root command. The
// find and search commands refresh the cache automatically once it is older
// than a week; this command forces an immediate re-download.
func init() {
	refreshCmd = &cobra.Command{
		Use:   "refresh",
		Short: "Refresh the Steam catalog cache",
		Long:  "Force a re-download of the Steam app catalog, replacing the local cache",
		Args:  cobra.NoArgs,
		RunE:  runRefresh,
	}

	RootCmd.AddCommand(refreshCmd)
}

// runRefresh executes the refresh command, downloading a fresh catalog and
// replacing the cache on disk. Unlike the automatic refresh, a download
// failure here surfaces as an error instead of falling back to stale data.
func runRefresh(cmd *cobra.Command, args []string) error {
	if err := httpclient.InitClient(); err != nil {
		return err
	}

	if viper.GetBool("quiet") {
		apps, err := refreshCatalogFunc(storage.GetDataStoragePath())
		if err != nil {
			return err
		}
		fmt.Printf("Catalog refreshed: %d games\n", len(apps))
		return nil
	}

	refreshSpinner := createSpinner("Downloading Steam catalog", "✓", "Catalog refreshed", "✗", "Catalog refresh failed")
	if err := refreshSpinner.Start(); err != nil {
		return fmt.Errorf("failed to start spinner: %w", err)
	}
	apps, err := refreshCatalogFunc(storage.GetDataStoragePath())
	if err != nil {
		refreshSpinner.StopFailMessage(fmt.Sprintf("Error refreshing catalog: %v", err))
		if stopErr := refreshSpinner.StopFail(); stopErr != nil {
			fmt.Fprintf(os.Stderr, "spinner stop error: %v\n", stopErr)
		}
		return err
	}
	refreshSpinner.StopMessage(fmt.Sprintf("Catalog refreshed: %d games", len(apps)))
	if stopErr := refreshSpinner.Stop(); stopErr != nil {
		fmt.Fprintf(os.Stderr, "spinner stop error: %v\n", stopErr)
	}
	return nil
}
