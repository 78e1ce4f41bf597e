package discovery

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omustardo/proton-save-finder/internal/types"
)

// prefixDir builds root/appID/pfx/drive_c/users/steamuser/<rel> and returns it.
func prefixDir(t *testing.T, root, appID, rel string) string {
	t.Helper()
	dir := filepath.Join(root, appID, "pfx", "drive_c", "users", "steamuser", filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(dir, 0755))
	return dir
}

func TestDiscover_NoCompatData(t *testing.T) {
	roots := []string{t.TempDir(), t.TempDir()}

	found := Discover("My Game", 123, roots, nil)

	assert.Empty(t, found, "missing compat-data dirs must yield an empty result, not an error")
}

func TestDiscover_EndToEnd(t *testing.T) {
	root := t.TempDir()
	gameDir := filepath.Join(prefixDir(t, root, "123", "AppData/Roaming"), "MyGame")
	require.NoError(t, os.MkdirAll(gameDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(gameDir, "slot1.sav"), []byte("x"), 0644))

	found := Discover("My Game", 123, []string{root}, nil)

	require.NotEmpty(t, found)
	top := found[0]
	assert.Equal(t, gameDir, top.Path)
	assert.Equal(t, "Likely Save Folder (AppData/Roaming)", top.Label)
	assert.Equal(t, types.CategoryAppDataRoaming, top.Category)
	assert.GreaterOrEqual(t, top.Priority, 1020, "fresh save folder gets the likely tier plus the one-day bonus")
	require.NotNil(t, top.LastModified)

	// The Roaming landmark itself is reported too, after the save folder.
	var landmarks []types.ScoredFolder
	for _, f := range found[1:] {
		assert.LessOrEqual(t, f.Priority, top.Priority)
		if f.Label == string(f.Category) {
			landmarks = append(landmarks, f)
		}
	}
	assert.NotEmpty(t, landmarks)
}

func TestDiscover_PotentialTier(t *testing.T) {
	root := t.TempDir()
	base := prefixDir(t, root, "42", "Documents")
	empty := filepath.Join(base, "EldenRingSaves")
	require.NoError(t, os.MkdirAll(empty, 0755))

	found := Discover("Elden Ring", 42, []string{root}, nil)

	var got *types.ScoredFolder
	for i := range found {
		if found[i].Path == empty {
			got = &found[i]
		}
	}
	require.NotNil(t, got)
	assert.Equal(t, "Potential Game Folder (Documents)", got.Label)
	assert.GreaterOrEqual(t, got.Priority, 50)
}

func TestDiscover_ZeroMatchDiscarded(t *testing.T) {
	root := t.TempDir()
	base := prefixDir(t, root, "42", "AppData/Local")
	require.NoError(t, os.MkdirAll(filepath.Join(base, "Microsoft"), 0755))

	found := Discover("Elden Ring", 42, []string{root}, nil)

	for _, f := range found {
		assert.NotEqual(t, filepath.Join(base, "Microsoft"), f.Path)
	}
}

func TestDiscover_WikiHintTopPriority(t *testing.T) {
	root := t.TempDir()
	hinted := filepath.Join(prefixDir(t, root, "77", "AppData/Roaming"), "StudioName", "GameName")
	require.NoError(t, os.MkdirAll(hinted, 0755))
	old := time.Now().Add(-90 * 24 * time.Hour)
	require.NoError(t, os.Chtimes(hinted, old, old))

	found := Discover("Something Unrelated", 77, []string{root}, []string{`%APPDATA%\StudioName\GameName`})

	require.NotEmpty(t, found)
	assert.Equal(t, types.CategoryWikiHint, found[0].Category)
	assert.Equal(t, hinted, found[0].Path)
	assert.GreaterOrEqual(t, found[0].Priority, 1000, "wiki hints bypass scoring and take the top tier")
}

func TestDiscover_UnresolvableHintIgnored(t *testing.T) {
	root := t.TempDir()
	prefixDir(t, root, "77", "AppData/Roaming")

	found := Discover("Game", 77, []string{root}, []string{`<Steam-folder>\userdata\1234`, `%APPDATA%\Missing`})

	for _, f := range found {
		assert.NotEqual(t, types.CategoryWikiHint, f.Category)
	}
}

func TestDiscover_SortedDescendingStable(t *testing.T) {
	root := t.TempDir()
	roaming := prefixDir(t, root, "9", "AppData/Roaming")
	docs := prefixDir(t, root, "9", "Documents")

	likely := filepath.Join(roaming, "CoolGame")
	require.NoError(t, os.MkdirAll(likely, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(likely, "save01.sav"), []byte("x"), 0644))

	potential := filepath.Join(docs, "CoolGameData")
	require.NoError(t, os.MkdirAll(potential, 0755))

	found := Discover("Cool Game", 9, []string{root}, nil)

	require.GreaterOrEqual(t, len(found), 3)
	for i := 1; i < len(found); i++ {
		assert.GreaterOrEqual(t, found[i-1].Priority, found[i].Priority, "results must be sorted descending by priority")
	}
	assert.Equal(t, likely, found[0].Path)
}

func TestDiscover_MultipleRoots(t *testing.T) {
	rootA := t.TempDir()
	rootB := t.TempDir()
	// Only rootB has the game installed.
	base := prefixDir(t, rootB, "314", "Saved Games")
	gameDir := filepath.Join(base, "SpaceGame")
	require.NoError(t, os.MkdirAll(gameDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(gameDir, "profile1.dat"), []byte("x"), 0644))

	found := Discover("Space Game", 314, []string{rootA, rootB}, nil)

	require.NotEmpty(t, found)
	assert.Equal(t, gameDir, found[0].Path)
	assert.Equal(t, types.CategorySavedGames, found[0].Category)
}
