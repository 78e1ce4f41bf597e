package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/charmbracelet/log"
	"github.com/savioxavier/termlink"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/omustardo/proton-save-finder/internal/catalog"
	"github.com/omustardo/proton-save-finder/internal/discovery"
	"github.com/omustardo/proton-save-finder/internal/httpclient"
	"github.com/omustardo/proton-save-finder/internal/steam"
	"github.com/omustardo/proton-save-finder/internal/types"
	"github.com/omustardo/proton-save-finder/internal/utils"
	"github.com/omustardo/proton-save-finder/internal/utils/cli"
	"github.com/omustardo/proton-save-finder/internal/utils/exporters"
	"github.com/omustardo/proton-save-finder/internal/utils/formatters"
	"github.com/omustardo/proton-save-finder/internal/utils/openers"
	"github.com/omustardo/proton-save-finder/internal/utils/spinners"
	"github.com/omustardo/proton-save-finder/internal/utils/storage"
	"github.com/omustardo/proton-save-finder/internal/wiki"
)

// maxFilenameLength limits sanitized game name length to avoid filesystem path limits.
const maxFilenameLength = 200

// sanitizeFilename removes path separators and OS-invalid characters from a
// game title for use in a filename. It trims and limits length to
// maxFilenameLength. If the result would be empty, returns a deterministic
// fallback "game_<appID>".
func sanitizeFilename(name string, appID int64) string {
	s := strings.ReplaceAll(name, "/", "")
	s = strings.ReplaceAll(s, "\\", "")
	invalid := []rune{':', '*', '?', '"', '<', '>', '|'}
	for _, r := range invalid {
		s = strings.ReplaceAll(s, string(r), "")
	}
	s = strings.Join(strings.Fields(s), " ")
	runes := []rune(s)
	if len(runes) > maxFilenameLength {
		runes = runes[:maxFilenameLength]
	}
	for len(runes) > 0 && unicode.IsSpace(runes[len(runes)-1]) {
		runes = runes[:len(runes)-1]
	}
	result := string(runes)
	if result == "" {
		return "game_" + strconv.FormatInt(appID, 10)
	}
	return result
}

// outputFilenameForGame returns the sanitized filename used when saving a game's results (e.g. "elden ring 1245620").
func outputFilenameForGame(app types.SteamApp) string {
	return fmt.Sprintf("%s %d", strings.ToLower(sanitizeFilename(app.Name, app.AppID)), app.AppID)
}

// spinnerI is the subset of spinner operations used by findSaves; tests may inject a mock.
type spinnerI interface {
	Start() error
	Stop() error
	StopFail() error
	StopFailMessage(string)
	StopMessage(string)
}

var (
	// options holds the command-line flag values using the CliFlags struct.
	options = types.CliFlags{}
	// findCmd is the Cobra command that locates save folders for one game.
	findCmd = &cobra.Command{}
	// createSpinner creates a spinner; tests may override to simulate Start() failure.
	createSpinner = func(start, stopCh, stopMsg, failCh, failMsg string) spinnerI {
		return spinners.CreateSpinner(start, stopCh, stopMsg, failCh, failMsg)
	}
	// loadCatalogFunc loads (and caches) the Steam app catalog.
	loadCatalogFunc = catalog.Load
	// fetchHintsFunc fetches the PCGamingWiki save-location templates for a title.
	fetchHintsFunc = wiki.FetchSaveLocationHints
	// discoverFunc scans the compat roots and ranks candidate folders.
	discoverFunc = discovery.Discover
	// discoverRootsFunc finds compat-data roots when no --steam-library is given.
	discoverRootsFunc = steam.DiscoverCompatRoots
	// revealFunc opens a folder in the system file manager.
	revealFunc = openers.Reveal
	// formatFoldersFunc renders the ranked folder list as JSON for display.
	formatFoldersFunc = formatters.FormatFoldersAsJson
	// saveFoldersToJsonFunc saves the results to disk; tests may override to simulate save failure.
	saveFoldersToJsonFunc = exporters.SaveFoldersToJson
	// bindPFlagsForFind binds command flags to Viper; tests may override to test panic path.
	bindPFlagsForFind = viper.BindPFlags
)

// mustBindFindFlags binds the find command's flags to Viper, or panics on failure.
func mustBindFindFlags(cmd *cobra.Command) {
	if err := bindPFlagsForFind(cmd.Flags()); err != nil {
		panic("find: bind flags: " + err.Error())
	}
}

// init initializes the find command with usage, description, and argument validation.
// It binds flags using Viper and adds the command to the root command for execution.
func init() {
	findCmd = &cobra.Command{
		Use:   "find <game name or appid> [flags]",
		Short: "Find save folders",
		Long:  "Locate likely Windows save-game folders for a Steam game run through Proton and rank them by confidence",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runFind,
	}

	initFindFlags(findCmd)
	mustBindFindFlags(findCmd)
	RootCmd.AddCommand(findCmd)
}

// initFindFlags registers the command-line flags for the find command,
// including the compat-data library overrides, the wiki lookup toggle, result
// display and save options, the output directory, and the result cap. It
// binds these flags to the corresponding fields in the CliFlags struct.
func initFindFlags(cmd *cobra.Command) {
	cli.RegisterFlag(cmd, "steam-library", "l", []string{}, "Steam compatdata directories to scan (defaults to auto-discovery)", &options.SteamLibraries)
	cli.RegisterFlag(cmd, "no-wiki", "w", false, "Skip the PCGamingWiki save-location lookup", &options.NoWiki)
	cli.RegisterFlag(cmd, "open", "p", false, "Open the top result in the file manager", &options.Open)
	cli.RegisterFlag(cmd, "json", "j", false, "Print results as colorized JSON", &options.JSONOutput)
	cli.RegisterFlag(cmd, "save-results", "s", false, "Do you want to save the results to a JSON file?", &options.SaveResults)
	cli.RegisterFlag(cmd, "output-directory", "o", storage.GetDataStoragePath(), "Output directory to save files", &options.OutputDirectory)
	cli.RegisterFlag(cmd, "max-results", "m", 0, "Limit the number of folders shown (0 shows everything)", &options.MaxResults)
}

// runFind executes the find command. It joins the arguments into a single
// query, reads the configuration values from Viper, and then calls the
// findSaves function with the populated CliFlags.
func runFind(cmd *cobra.Command, args []string) error {
	finder := types.CliFlags{
		JSONOutput:      viper.GetBool("json"),
		MaxResults:      viper.GetInt("max-results"),
		NoWiki:          viper.GetBool("no-wiki"),
		Open:            viper.GetBool("open"),
		OutputDirectory: viper.GetString("output-directory"),
		Quiet:           viper.GetBool("quiet"),
		SaveResults:     viper.GetBool("save-results"),
		SteamLibraries:  viper.GetStringSlice("steam-library"),
		Verbose:         viper.GetBool("verbose"),
	}

	return findSaves(finder, strings.Join(args, " "), loadCatalogFunc, fetchHintsFunc)
}

// resolveGame maps the query to a catalog entry. A numeric query is treated
// as an appid directly; otherwise the catalog is searched fuzzily and
// installed matches win over uninstalled ones.
func resolveGame(query string, apps []types.SteamApp, compatRoots []string) (types.SteamApp, error) {
	if appID, err := formatters.StrToInt(query); err == nil {
		for _, app := range apps {
			if app.AppID == appID {
				return app, nil
			}
		}
		// Unknown to the catalog; the prefix may still exist, so scan by id alone.
		log.Debug("appid not in catalog, scanning without title keywords", "appid", appID)
		return types.SteamApp{AppID: appID}, nil
	}

	matches := catalog.FuzzySearch(query, apps)
	if len(matches) == 0 {
		return types.SteamApp{}, fmt.Errorf("no catalog entry matches %q; try 'proton-save-finder search %s'", query, query)
	}
	if installed := catalog.FilterInstalled(matches, compatRoots); len(installed) > 0 {
		return installed[0], nil
	}
	return matches[0], nil
}

// findSaves orchestrates the discovery run: setting up the HTTP client,
// loading the catalog and compat roots, resolving the game, gathering wiki
// hints, scanning the prefixes, and displaying, saving, or opening results
// based on the provided command-line flags. It uses spinners to indicate
// progress throughout the operations and accepts functions for loading the
// catalog and fetching hints, returning an error if any required step fails.
func findSaves(
	sc types.CliFlags,
	query string,
	loadCatalogFunc func(dataDir string) ([]types.SteamApp, error),
	fetchHintsFunc func(baseURL, title string) ([]string, error),
) error {
	// HTTP Client Setup
	if !sc.Quiet {
		httpSpinner := createSpinner("Setting up HTTP client", "✓", "HTTP client setup complete", "✗", "HTTP client setup failed")
		if err := httpSpinner.Start(); err != nil {
			return fmt.Errorf("failed to start spinner: %w", err)
		}

		if err := httpclient.InitClient(); err != nil {
			httpSpinner.StopFailMessage(fmt.Sprintf("Error setting up HTTP client: %v", err))
			if stopErr := httpSpinner.StopFail(); stopErr != nil {
				fmt.Fprintf(os.Stderr, "spinner stop error: %v\n", stopErr)
			}
			return err
		}
		if stopErr := httpSpinner.Stop(); stopErr != nil {
			fmt.Fprintf(os.Stderr, "spinner stop error: %v\n", stopErr)
		}
	} else {
		if err := httpclient.InitClient(); err != nil {
			return err
		}
	}

	// Catalog and compat roots (loaded concurrently; the catalog may hit the
	// network while root discovery walks the filesystem).
	var apps []types.SteamApp
	roots := sc.SteamLibraries
	loadTasks := func() error {
		return utils.ConcurrentFetch(
			func() error {
				var err error
				apps, err = loadCatalogFunc(storage.GetDataStoragePath())
				return err
			},
			func() error {
				if len(roots) == 0 {
					roots = discoverRootsFunc()
				}
				return nil
			},
		)
	}
	if !sc.Quiet {
		catalogSpinner := createSpinner("Loading Steam catalog", "✓", "Steam catalog loaded", "✗", "Failed to load Steam catalog")
		if err := catalogSpinner.Start(); err != nil {
			return fmt.Errorf("failed to start spinner: %w", err)
		}
		if err := loadTasks(); err != nil {
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
		if err := loadTasks(); err != nil {
			return err
		}
	}

	if len(roots) == 0 {
		return fmt.Errorf("no Steam compat-data directories found; pass --steam-library")
	}
	log.Debug("compat roots resolved", "count", len(roots), "roots", roots)

	game, err := resolveGame(query, apps, roots)
	if err != nil {
		return err
	}
	log.Debug("game resolved", "appid", game.AppID, "name", game.Name)

	// Wiki Hints (best effort; a failed lookup never fails the run)
	var hints []string
	if !sc.NoWiki && game.Name != "" {
		if !sc.Quiet {
			wikiSpinner := createSpinner(fmt.Sprintf("Checking PCGamingWiki for: %s", game.Name), "✓", "Wiki hints fetched", "✗", "Wiki lookup failed")
			if err := wikiSpinner.Start(); err != nil {
				return fmt.Errorf("failed to start spinner: %w", err)
			}
			hints, err = fetchHintsFunc(wiki.DefaultBaseURL, game.Name)
			if err != nil {
				log.Debug("wiki lookup failed", "error", err)
				wikiSpinner.StopFailMessage("No wiki hints available")
				if stopErr := wikiSpinner.StopFail(); stopErr != nil {
					fmt.Fprintf(os.Stderr, "spinner stop error: %v\n", stopErr)
				}
			} else {
				wikiSpinner.StopMessage(fmt.Sprintf("Wiki hints fetched (%d)", len(hints)))
				if stopErr := wikiSpinner.Stop(); stopErr != nil {
					fmt.Fprintf(os.Stderr, "spinner stop error: %v\n", stopErr)
				}
			}
		} else {
			if hints, err = fetchHintsFunc(wiki.DefaultBaseURL, game.Name); err != nil {
				log.Debug("wiki lookup failed", "error", err)
				hints = nil
			}
		}
	}

	// Prefix Scan
	var folders []types.ScoredFolder
	if !sc.Quiet {
		scanSpinner := createSpinner("Scanning Proton prefixes", "✓", "Prefix scan complete", "✗", "Prefix scan failed")
		if err := scanSpinner.Start(); err != nil {
			return fmt.Errorf("failed to start spinner: %w", err)
		}
		folders = discoverFunc(game.Name, game.AppID, roots, hints)
		scanSpinner.StopMessage(fmt.Sprintf("Found %d candidate folder(s)", len(folders)))
		if stopErr := scanSpinner.Stop(); stopErr != nil {
			fmt.Fprintf(os.Stderr, "spinner stop error: %v\n", stopErr)
		}
	} else {
		folders = discoverFunc(game.Name, game.AppID, roots, hints)
	}

	if sc.MaxResults > 0 && len(folders) > sc.MaxResults {
		folders = folders[:sc.MaxResults]
	}

	// Display Results
	if err := exporters.DisplayFolders(sc, folders, formatFoldersFunc); err != nil {
		fmt.Fprintln(os.Stderr, "Error displaying results:", err)
		return err
	}

	// Save Results
	if sc.SaveResults {
		if !sc.Quiet {
			saveSpinner := createSpinner("Saving results", "✓", "Results saved successfully", "✗", "Failed to save results")
			if err := saveSpinner.Start(); err != nil {
				return fmt.Errorf("failed to start save spinner: %w", err)
			}
			saved, err := saveFoldersToJsonFunc(folders, sc.OutputDirectory, outputFilenameForGame(game), utils.EnsureDirExists)
			if err != nil {
				saveSpinner.StopFailMessage(fmt.Sprintf("Error saving results: %v", err))
				if stopErr := saveSpinner.StopFail(); stopErr != nil {
					fmt.Fprintf(os.Stderr, "spinner stop error: %v\n", stopErr)
				}
				return err
			}
			saveSpinner.StopMessage(fmt.Sprintf("Saved successfully to %s", termlink.ColorLink(saved, saved, "green")))
			if stopErr := saveSpinner.Stop(); stopErr != nil {
				fmt.Fprintf(os.Stderr, "spinner stop error: %v\n", stopErr)
			}
		} else {
			if _, err := saveFoldersToJsonFunc(folders, sc.OutputDirectory, outputFilenameForGame(game), utils.EnsureDirExists); err != nil {
				return err
			}
		}
	}

	// Open Top Result
	if sc.Open {
		if len(folders) == 0 {
			return fmt.Errorf("nothing to open: no candidate folders found")
		}
		if err := revealFunc(folders[0].Path); err != nil {
			return fmt.Errorf("failed to open %s: %w", folders[0].Path, err)
		}
	}

	return nil
}
