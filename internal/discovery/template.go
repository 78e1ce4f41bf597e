package discovery

import (
	"os"
	"path/filepath"
	"strings"
)

// prefixUserDir is where Proton emulates the Windows user profile inside a
// compat-data directory.
const prefixUserDir = "pfx/drive_c/users/steamuser"

// placeholderBases maps the supported Windows environment-variable
// placeholders to their location relative to the emulated user profile.
var placeholderBases = []struct {
	marker string
	relDir string
}{
	{"%APPDATA%", "AppData/Roaming"},
	{"%LOCALAPPDATA%", "AppData/Local"},
	{"%USERPROFILE%", ""},
}

// ResolveTemplate expands a wiki-supplied path template against one
// compat-data directory. Templates carrying editorial markers
// ("<Steam-folder>", "<path-to-game>" and friends) never resolve, and a
// template without one of the three supported placeholders is simply an
// unsupported format. The resolved path is returned only when it exists on
// disk; a missing path is a normal no-match outcome, not an error.
func ResolveTemplate(compatRoot, template string) (string, bool) {
	if strings.Contains(template, "<") {
		return "", false
	}

	for _, base := range placeholderBases {
		idx := strings.Index(template, base.marker)
		if idx < 0 {
			continue
		}

		remainder := template[idx+len(base.marker):]
		remainder = strings.ReplaceAll(remainder, `\`, "/")
		remainder = strings.TrimLeft(remainder, "/")

		resolved := filepath.Join(compatRoot, prefixUserDir, base.relDir, remainder)
		if _, err := os.Stat(resolved); err != nil {
			return "", false
		}
		return resolved, true
	}

	return "", false
}
