package steam

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const libraryFoldersVDF = `"libraryfolders"
{
	"0"
	{
		"path"		"/home/user/.local/share/Steam"
		"label"		""
		"contentid"		"7497421502115072845"
		"totalsize"		"0"
		"apps"
		{
			"620"		"16212354"
		}
	}
	"1"
	{
		"path"		"/mnt/games/SteamLibrary"
		"label"		"games"
		"apps"
		{
		}
	}
}
`

func TestParseLibraryFolders(t *testing.T) {
	paths := ParseLibraryFolders([]byte(libraryFoldersVDF))

	assert.Equal(t, []string{
		"/home/user/.local/share/Steam",
		"/mnt/games/SteamLibrary",
	}, paths)
}

func TestParseLibraryFolders_EscapedBackslashes(t *testing.T) {
	vdf := `"libraryfolders"
{
	"0"
	{
		"path"		"C:\\Program Files (x86)\\Steam"
	}
}
`
	paths := ParseLibraryFolders([]byte(vdf))

	require.Len(t, paths, 1)
	assert.Equal(t, `C:\Program Files (x86)\Steam`, paths[0])
}

func TestParseLibraryFolders_MalformedLinesSkipped(t *testing.T) {
	vdf := `"libraryfolders"
{
	"path"
	"path"		""
	not even vdf
	"0"
	{
		"path"		"/mnt/games/SteamLibrary"
	}
}
`
	paths := ParseLibraryFolders([]byte(vdf))

	assert.Equal(t, []string{"/mnt/games/SteamLibrary"}, paths)
}

func TestParseLibraryFolders_Empty(t *testing.T) {
	assert.Empty(t, ParseLibraryFolders(nil))
	assert.Empty(t, ParseLibraryFolders([]byte(`"libraryfolders"{}`)))
}

func TestQuotedTokens(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected []string
	}{
		{
			name:     "KeyValue",
			line:     `	"path"		"/mnt/games"`,
			expected: []string{"path", "/mnt/games"},
		},
		{
			name:     "LoneKey",
			line:     `"libraryfolders"`,
			expected: []string{"libraryfolders"},
		},
		{
			name:     "EscapedQuote",
			line:     `"name"	"The \"Best\" Library"`,
			expected: []string{"name", `The "Best" Library`},
		},
		{
			name:     "NoQuotes",
			line:     `{`,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, quotedTokens(tt.line))
		})
	}
}

func TestCompatRootsFromSteamDir(t *testing.T) {
	steamDir := t.TempDir()
	extraLib := t.TempDir()

	require.NoError(t, os.MkdirAll(filepath.Join(steamDir, "steamapps", "compatdata"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(extraLib, "steamapps", "compatdata"), 0755))

	vdf := `"libraryfolders"
{
	"0"
	{
		"path"		"` + steamDir + `"
	}
	"1"
	{
		"path"		"` + extraLib + `"
	}
	"2"
	{
		"path"		"/does/not/exist"
	}
}
`
	require.NoError(t, os.WriteFile(filepath.Join(steamDir, "steamapps", "libraryfolders.vdf"), []byte(vdf), 0644))

	roots := CompatRootsFromSteamDir(steamDir)

	assert.Equal(t, []string{
		filepath.Join(steamDir, "steamapps", "compatdata"),
		filepath.Join(extraLib, "steamapps", "compatdata"),
	}, roots, "install dir first, extra library second, missing library dropped")
}

func TestCompatRootsFromSteamDir_NoVDF(t *testing.T) {
	steamDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(steamDir, "steamapps", "compatdata"), 0755))

	roots := CompatRootsFromSteamDir(steamDir)

	assert.Equal(t, []string{filepath.Join(steamDir, "steamapps", "compatdata")}, roots)
}

func TestCompatRootsFromSteamDir_MissingInstall(t *testing.T) {
	assert.Empty(t, CompatRootsFromSteamDir("/nonexistent/steam"))
}

func TestDiscoverCompatRoots(t *testing.T) {
	home := t.TempDir()

	xdgSteam := filepath.Join(home, ".local", "share", "Steam")
	require.NoError(t, os.MkdirAll(filepath.Join(xdgSteam, "steamapps", "compatdata"), 0755))

	// ~/.steam/steam is a symlink to the XDG install on most machines;
	// the resolved root must only be reported once.
	require.NoError(t, os.MkdirAll(filepath.Join(home, ".steam"), 0755))
	require.NoError(t, os.Symlink(xdgSteam, filepath.Join(home, ".steam", "steam")))

	origHome := userHomeDir
	defer func() { userHomeDir = origHome }()
	userHomeDir = func() (string, error) { return home, nil }

	roots := DiscoverCompatRoots()

	require.Len(t, roots, 1)
	assert.Equal(t, filepath.Join(home, ".steam", "steam", "steamapps", "compatdata"), roots[0])
}

func TestDiscoverCompatRoots_NoSteam(t *testing.T) {
	origHome := userHomeDir
	defer func() { userHomeDir = origHome }()
	userHomeDir = func() (string, error) { return t.TempDir(), nil }

	assert.Empty(t, DiscoverCompatRoots())
}
