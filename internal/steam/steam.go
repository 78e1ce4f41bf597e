// Package steam locates the Proton compat-data roots on this machine:
// every Steam library's steamapps/compatdata directory, found by probing
// the usual install locations and following libraryfolders.vdf.
package steam

import (
	"os"
	"path/filepath"
)

// userHomeDir resolves the current user's home; tests may override.
var userHomeDir = os.UserHomeDir

// candidateSteamDirs lists where a Steam install may live under the home
// directory: native, XDG data dir, Flatpak, and Snap.
func candidateSteamDirs(home string) []string {
	return []string{
		filepath.Join(home, ".steam", "steam"),
		filepath.Join(home, ".local", "share", "Steam"),
		filepath.Join(home, ".var", "app", "com.valvesoftware.Steam", ".local", "share", "Steam"),
		filepath.Join(home, "snap", "steam", "common", ".local", "share", "Steam"),
	}
}

// CompatRootsFromSteamDir returns the steamapps/compatdata directory of the
// given Steam install plus those of every extra library folder its
// libraryfolders.vdf names. Only directories that exist are returned.
func CompatRootsFromSteamDir(steamDir string) []string {
	libraries := []string{steamDir}

	if data, err := os.ReadFile(filepath.Join(steamDir, "steamapps", "libraryfolders.vdf")); err == nil {
		libraries = append(libraries, ParseLibraryFolders(data)...)
	}

	var roots []string
	seen := make(map[string]struct{})
	for _, lib := range libraries {
		root := filepath.Join(lib, "steamapps", "compatdata")
		if info, err := os.Stat(root); err != nil || !info.IsDir() {
			continue
		}
		if _, dup := seen[root]; dup {
			continue
		}
		seen[root] = struct{}{}
		roots = append(roots, root)
	}

	return roots
}

// DiscoverCompatRoots probes every known Steam location for the current user
// and collects their compat-data roots. ~/.steam/steam is usually a symlink
// into ~/.local/share/Steam, so roots are deduplicated by resolved path.
// Returns nil when no Steam install is found; that is not an error here.
func DiscoverCompatRoots() []string {
	home, err := userHomeDir()
	if err != nil {
		return nil
	}

	var roots []string
	seen := make(map[string]struct{})
	for _, steamDir := range candidateSteamDirs(home) {
		for _, root := range CompatRootsFromSteamDir(steamDir) {
			key := root
			if resolved, err := filepath.EvalSymlinks(root); err == nil {
				key = resolved
			}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			roots = append(roots, root)
		}
	}

	return roots
}
