package discovery

import (
	"strings"
)

// genericFolderPatterns are names that game developers reuse for save and
// profile directories regardless of the game title.
var genericFolderPatterns = []string{
	"save", "saves", "savegame", "savegames", "savedata",
	"config", "settings", "profile", "profiles", "user",
	"data", "game", "local", "steam",
}

// MatchScore measures how strongly a directory name correlates with a game
// title. An exact case-insensitive title match returns 10 immediately; other
// names accumulate points for token overlap, substring containment, word
// boundaries, and generic save-folder vocabulary. No upper clamp: among
// folders with no content signal, a stronger name match wins the tie.
func MatchScore(folderName string, keywords map[string]struct{}, fullTitle string) int {
	folderLower := strings.ToLower(folderName)

	if folderLower == strings.ToLower(fullTitle) {
		return 10
	}

	score := 0

	// Token-set overlap between the folder name and the title keywords.
	// A single shared token only counts when the title itself is short,
	// otherwise one common word like "game" would light up everything.
	folderTokens := make(map[string]struct{})
	for _, part := range titleDelimiters.Split(folderLower, -1) {
		if part != "" {
			folderTokens[part] = struct{}{}
		}
	}
	overlap := 0
	for token := range folderTokens {
		if _, ok := keywords[token]; ok {
			overlap++
		}
	}
	if overlap >= 2 || (overlap >= 1 && len(keywords) <= 2) {
		score += overlap * 3
	}

	for word := range keywords {
		if strings.Contains(folderLower, word) {
			score += 2
			if word == folderLower || strings.HasPrefix(folderLower, word) || strings.HasSuffix(folderLower, word) {
				score++
			}
		}
	}

	for _, pattern := range genericFolderPatterns {
		if strings.Contains(folderLower, pattern) {
			score++
		}
	}

	return score
}
