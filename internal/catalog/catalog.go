// Package catalog provides the Steam app title catalog: remote fetch,
// on-disk sqlite cache, and the fuzzy search used to resolve a game name to
// an app id.
package catalog

import (
	"encoding/json"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/omustardo/proton-save-finder/internal/httpclient"
	"github.com/omustardo/proton-save-finder/internal/types"
	"github.com/omustardo/proton-save-finder/internal/utils"
)

// DefaultAppListURL is the anonymous Steam Web API endpoint listing every app.
const DefaultAppListURL = "https://api.steampowered.com/ISteamApps/GetAppList/v2/"

// CacheMaxAge is how long a downloaded catalog stays fresh.
const CacheMaxAge = 7 * 24 * time.Hour

// cacheFilename is the sqlite database file under the data directory.
const cacheFilename = "catalog.db"

// timeNow is the cache-freshness clock; tests may override.
var timeNow = time.Now

// fetchAppListFunc downloads the catalog; tests may override.
var fetchAppListFunc = FetchAppList

// FetchAppList downloads and decodes the Steam app list, dropping entries
// that are clearly not games (very short names, Steamworks SDK entries).
func FetchAppList(targetURL string) ([]types.SteamApp, error) {
	req, err := httpclient.NewRequest(targetURL)
	if err != nil {
		return nil, err
	}

	resp, err := httpclient.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download app list: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to download app list: %s returned %d", targetURL, resp.StatusCode)
	}

	var decoded types.AppListResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode app list: %w", err)
	}

	return filterGames(decoded.AppList.Apps), nil
}

// filterGames drops obvious non-game catalog entries.
func filterGames(apps []types.SteamApp) []types.SteamApp {
	games := make([]types.SteamApp, 0, len(apps))
	for _, app := range apps {
		if len(app.Name) > 3 && !strings.HasPrefix(app.Name, "Steamworks") {
			games = append(games, app)
		}
	}
	return games
}

// Load returns the catalog, serving from the sqlite cache when it is younger
// than CacheMaxAge and re-downloading otherwise. A failed cache write after a
// successful download is ignored: the caller still gets the fresh catalog.
func Load(dataDir string) ([]types.SteamApp, error) {
	if err := utils.EnsureDirExists(dataDir); err != nil {
		return nil, err
	}

	store, err := OpenStore(filepath.Join(dataDir, cacheFilename))
	if err != nil {
		return nil, err
	}
	defer store.Close()

	if apps, fetchedAt, err := store.Apps(); err == nil && len(apps) > 0 {
		if timeNow().Sub(fetchedAt) < CacheMaxAge {
			return apps, nil
		}
	}

	apps, err := fetchAppListFunc(DefaultAppListURL)
	if err != nil {
		return nil, err
	}

	// Best effort; a read-only data dir should not block the search.
	_ = store.Replace(apps, timeNow())

	return apps, nil
}

// Refresh forces a catalog re-download, replacing whatever the cache holds.
func Refresh(dataDir string) ([]types.SteamApp, error) {
	if err := utils.EnsureDirExists(dataDir); err != nil {
		return nil, err
	}

	apps, err := fetchAppListFunc(DefaultAppListURL)
	if err != nil {
		return nil, err
	}

	store, err := OpenStore(filepath.Join(dataDir, cacheFilename))
	if err != nil {
		return nil, err
	}
	defer store.Close()

	if err := store.Replace(apps, timeNow()); err != nil {
		return nil, err
	}

	return apps, nil
}
