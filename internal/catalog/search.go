package catalog

import (
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/omustardo/proton-save-finder/internal/types"
)

// FuzzySearch filters the catalog to names containing query
// (case-insensitive) and ranks them: exact name matches first, then names
// starting with the query, boosted further for every word boundary the query
// lines up with. Ties keep catalog order.
func FuzzySearch(query string, apps []types.SteamApp) []types.SteamApp {
	queryLower := strings.ToLower(query)

	type scored struct {
		score int
		app   types.SteamApp
	}
	var matches []scored

	for _, app := range apps {
		nameLower := strings.ToLower(app.Name)
		if !strings.Contains(nameLower, queryLower) {
			continue
		}

		score := 0
		if strings.HasPrefix(nameLower, queryLower) {
			score += 100
		}
		if nameLower == queryLower {
			score += 200
		}
		for _, word := range strings.Fields(nameLower) {
			if strings.HasPrefix(word, queryLower) {
				score += 50
			}
		}

		matches = append(matches, scored{score: score, app: app})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	result := make([]types.SteamApp, 0, len(matches))
	for _, m := range matches {
		result = append(result, m.app)
	}
	return result
}

// FilterInstalled keeps only apps that have a compat-data directory under at
// least one of the given roots, i.e. games that have actually run through
// Proton on this machine.
func FilterInstalled(apps []types.SteamApp, compatRoots []string) []types.SteamApp {
	var installed []types.SteamApp

	for _, app := range apps {
		appDir := strconv.FormatInt(app.AppID, 10)
		for _, root := range compatRoots {
			if _, err := os.Stat(filepath.Join(root, appDir)); err == nil {
				installed = append(installed, app)
				break
			}
		}
	}

	return installed
}
