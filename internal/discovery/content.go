package discovery

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// saveExtensions are file extensions that usually mean serialized game state.
var saveExtensions = []string{
	".sav", ".save", ".dat", ".xml", ".json", ".cfg", ".ini", ".sl2", ".ess", ".bak", ".vdf",
}

// saveNamePatterns are substrings that mark save-related files and folders.
var saveNamePatterns = []string{
	"save", "profile", "config", "settings", "user", "slot", "progress", "savegame",
}

// numberedSave matches sequenced save files such as save01, slot3, profile2.
var numberedSave = regexp.MustCompile(`(save|slot|profile)\d+`)

// maxContentConfidence caps AssessContents; MatchScore stays unbounded.
const maxContentConfidence = 10

// recentWindow is how far back a file modification still counts as activity.
const recentWindow = 30 * 24 * time.Hour

// AssessContents scores how save-like a directory's immediate children look,
// in [0,10]. Each child contributes for save-like extensions, save-related
// name patterns, numbered save sequences, and recent modification. A
// directory that cannot be listed scores 0; per-child stat errors are
// skipped. Permission problems are an expected condition here, never an
// error: an unreadable prefix just means no signal.
func AssessContents(dir string, now time.Time) int {
	confidence := 0

	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0
	}

	recentFiles := 0
	recentBonus := 0

	for _, entry := range entries {
		nameLower := strings.ToLower(entry.Name())

		if info, err := os.Stat(filepath.Join(dir, entry.Name())); err == nil {
			age := now.Sub(info.ModTime())
			if age < recentWindow {
				recentFiles++
				if age < 7*24*time.Hour {
					recentBonus += 2
				} else {
					recentBonus++
				}
			}
		}

		for _, ext := range saveExtensions {
			if strings.HasSuffix(nameLower, ext) {
				confidence += 2
				break
			}
		}

		for _, pattern := range saveNamePatterns {
			if strings.Contains(nameLower, pattern) {
				confidence++
				break
			}
		}

		if numberedSave.MatchString(nameLower) {
			confidence += 2
		}
	}

	confidence += min(recentBonus, 5)

	// A handful of recently touched files is the classic save-folder shape;
	// hundreds of entries is more likely game assets.
	if len(entries) > 0 && len(entries) < 50 && recentFiles > 0 {
		confidence += 2
	}

	return min(confidence, maxContentConfidence)
}
