package discovery

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeAged creates a file and backdates its mtime by the given age.
func writeAged(t *testing.T, dir, name string, age time.Duration, now time.Time) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
	stamp := now.Add(-age)
	require.NoError(t, os.Chtimes(path, stamp, stamp))
}

func TestAssessContents_EmptyDirectory(t *testing.T) {
	assert.Equal(t, 0, AssessContents(t.TempDir(), time.Now()))
}

func TestAssessContents_MissingDirectory(t *testing.T) {
	assert.Equal(t, 0, AssessContents(filepath.Join(t.TempDir(), "nope"), time.Now()))
}

func TestAssessContents_RecentSaveFile(t *testing.T) {
	now := time.Now()
	dir := t.TempDir()
	writeAged(t, dir, "slot1.sav", time.Hour, now)

	// .sav extension (+2), "slot" pattern (+1), numbered save (+2),
	// recency bonus (+2 capped at 5), small dir with recent activity (+2).
	assert.Equal(t, 9, AssessContents(dir, now))
}

func TestAssessContents_OldConfigFile(t *testing.T) {
	now := time.Now()
	dir := t.TempDir()
	writeAged(t, dir, "options.ini", 90*24*time.Hour, now)

	// .ini extension only; no patterns in the name, no recent activity.
	assert.Equal(t, 2, AssessContents(dir, now))
}

func TestAssessContents_ClampedAtTen(t *testing.T) {
	now := time.Now()
	dir := t.TempDir()
	for _, name := range []string{"save1.sav", "save2.sav", "save3.sav", "profile1.dat", "usersettings.cfg"} {
		writeAged(t, dir, name, time.Hour, now)
	}

	assert.Equal(t, 10, AssessContents(dir, now))
}

func TestAssessContents_AlwaysInRange(t *testing.T) {
	now := time.Now()
	dirs := []string{t.TempDir(), t.TempDir(), t.TempDir()}

	writeAged(t, dirs[1], "readme.txt", time.Hour, now)
	for i := 0; i < 60; i++ {
		writeAged(t, dirs[2], "asset"+string(rune('a'+i%26))+".bin", 40*24*time.Hour, now)
	}

	for _, dir := range dirs {
		got := AssessContents(dir, now)
		assert.GreaterOrEqual(t, got, 0)
		assert.LessOrEqual(t, got, 10)
	}
}

func TestAssessContents_LargeDirectoryNoSizeBonus(t *testing.T) {
	now := time.Now()
	dir := t.TempDir()
	for i := 0; i < 55; i++ {
		writeAged(t, dir, "file"+string(rune('a'+i/26))+string(rune('a'+i%26))+".txt", 60*24*time.Hour, now)
	}
	writeAged(t, dir, "game.sav", time.Hour, now)

	// 56 entries: the small-directory bonus must not apply even though one
	// file is recent. .sav (+2) and recency accumulator (+2) remain.
	assert.Equal(t, 4, AssessContents(dir, now))
}
