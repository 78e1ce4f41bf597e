package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/omustardo/proton-save-finder/internal/types"
)

// timeNow is the discovery clock; tests may override.
var timeNow = time.Now

// subLocations are the fixed spots inside a Proton prefix where Windows
// games keep their data, probed in this order.
var subLocations = []struct {
	category types.LocationCategory
	relPath  string
}{
	{types.CategoryAppDataLocal, "AppData/Local"},
	{types.CategoryAppDataRoaming, "AppData/Roaming"},
	{types.CategoryAppDataLocalLow, "AppData/LocalLow"},
	{types.CategoryDocuments, "Documents"},
	{types.CategoryMyGames, "Documents/My Games"},
	{types.CategorySavedGames, "Saved Games"},
}

// Priority tiers. Resolved wiki hints and content-confirmed save folders
// outrank name-only matches; the bare sub-locations are kept as landmarks at
// the bottom so the user can still navigate from them.
const (
	priorityWikiHint  = 1000
	priorityLikely    = 1000
	priorityGame      = 100
	priorityPotential = 50
)

// Discover ranks the folders most likely to hold appID's save data. It
// resolves templateHints against every compat root, then walks the fixed
// sub-locations of each present compat-data directory, scoring immediate
// subdirectories by name match and content shape. Every filesystem failure
// (missing directory, unreadable listing) is absorbed as "no candidates from
// this source"; the only outcome signal is the length of the result.
//
// Discover is synchronous and shares no state between invocations, so
// callers may run it from a worker goroutine without locking.
func Discover(title string, appID int64, compatRoots []string, templateHints []string) []types.ScoredFolder {
	now := timeNow()
	var found []types.ScoredFolder

	for _, hint := range templateHints {
		for _, root := range compatRoots {
			compatData := filepath.Join(root, strconv.FormatInt(appID, 10))
			resolved, ok := ResolveTemplate(compatData, hint)
			if !ok {
				continue
			}
			bonus, mtime := recencyBonus(resolved, now)
			found = append(found, types.ScoredFolder{
				Label:        string(types.CategoryWikiHint),
				Category:     types.CategoryWikiHint,
				Path:         resolved,
				Priority:     priorityWikiHint + bonus,
				LastModified: mtime,
			})
		}
	}

	keywords := ExtractKeywords(title)

	for _, root := range compatRoots {
		compatData := filepath.Join(root, strconv.FormatInt(appID, 10))
		if _, err := os.Stat(compatData); err != nil {
			continue
		}

		for _, loc := range subLocations {
			base := filepath.Join(compatData, filepath.FromSlash(prefixUserDir), filepath.FromSlash(loc.relPath))
			if _, err := os.Stat(base); err != nil {
				continue
			}

			bonus, mtime := recencyBonus(base, now)
			found = append(found, types.ScoredFolder{
				Label:        string(loc.category),
				Category:     loc.category,
				Path:         base,
				Priority:     bonus,
				LastModified: mtime,
			})

			found = append(found, scanSubdirs(base, loc.category, keywords, title, now)...)
		}
	}

	sort.SliceStable(found, func(i, j int) bool {
		return found[i].Priority > found[j].Priority
	})

	return found
}

// scanSubdirs scores the immediate subdirectories of one sub-location.
// Folders whose name does not relate to the title at all are discarded;
// matched folders are tiered by how save-like their contents are.
func scanSubdirs(base string, category types.LocationCategory, keywords map[string]struct{}, title string, now time.Time) []types.ScoredFolder {
	entries, err := os.ReadDir(base)
	if err != nil {
		return nil
	}

	var found []types.ScoredFolder
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		matchScore := MatchScore(entry.Name(), keywords, title)
		if matchScore == 0 {
			continue
		}

		path := filepath.Join(base, entry.Name())
		confidence := AssessContents(path, now)

		var tier string
		var basePriority int
		switch {
		case confidence >= 2:
			tier = "Likely Save Folder"
			basePriority = priorityLikely
		case confidence > 0:
			tier = "Game Folder"
			basePriority = priorityGame
		case matchScore >= 3:
			tier = "Potential Game Folder"
			basePriority = priorityPotential
		default:
			continue
		}

		bonus, mtime := recencyBonus(path, now)
		found = append(found, types.ScoredFolder{
			Label:        fmt.Sprintf("%s (%s)", tier, category),
			Category:     category,
			Path:         path,
			Priority:     basePriority + bonus,
			LastModified: mtime,
		})
	}

	return found
}

// recencyBonus rewards recently modified folders: +20 within a day, +10
// within a week, +5 within a month. An unreadable mtime contributes nothing.
func recencyBonus(path string, now time.Time) (int, *time.Time) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, nil
	}

	mtime := info.ModTime()
	switch age := now.Sub(mtime); {
	case age < 24*time.Hour:
		return 20, &mtime
	case age < 7*24*time.Hour:
		return 10, &mtime
	case age < 30*24*time.Hour:
		return 5, &mtime
	default:
		return 0, &mtime
	}
}
