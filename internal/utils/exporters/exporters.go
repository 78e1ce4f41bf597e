// Package exporters handles displaying and saving discovery results.
package exporters

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/omustardo/proton-save-finder/internal/types"
	"github.com/omustardo/proton-save-finder/internal/utils/formatters"
	"github.com/savioxavier/termlink"
)

// timeNow is the display clock for modification-age strings; tests may override.
var timeNow = time.Now

// DisplayFolders prints the ranked folder list. Under --quiet the output is
// plain JSON for piping to jq; with --json it is colorized JSON; otherwise a
// human-readable ranking with clickable paths and modification ages.
func DisplayFolders(sc types.CliFlags, folders []types.ScoredFolder, formatFoldersFunc func([]types.ScoredFolder) (string, error)) error {
	if sc.Quiet || sc.JSONOutput {
		jsonResults, err := formatFoldersFunc(folders)
		if err != nil {
			return fmt.Errorf("error while attempting to format results: %w", err)
		}
		if sc.Quiet {
			fmt.Println(jsonResults)
			return nil
		}
		return formatters.PrintPrettyJson(jsonResults)
	}

	if len(folders) == 0 {
		fmt.Println("No folders found.")
		return nil
	}

	now := timeNow()
	for _, folder := range folders {
		age := formatters.FormatAge(folder.LastModified, now)
		fmt.Printf("%s: %s%s\n", folder.Label, termlink.ColorLink(folder.Path, "file://"+folder.Path, "green"), age)
	}
	return nil
}

// SaveFoldersToJson saves the ranked folder list as a JSON file in the
// specified directory. It checks if the directory exists, creates it if
// necessary, and marshals the data into pretty JSON format. Returns the full
// file path or an error if any operation fails.
func SaveFoldersToJson(folders []types.ScoredFolder, dir, filename string, ensureDirExistsFunc func(string) error) (string, error) {
	if err := ensureDirExistsFunc(dir); err != nil {
		return "", err
	}

	fullPath := filepath.Join(dir, fmt.Sprintf("%s.json", filename))

	jsonData, err := json.MarshalIndent(folders, "", "  ")
	if err != nil {
		return "", fmt.Errorf("error formatting data: %s - %v", fullPath, err)
	}

	if err := os.WriteFile(fullPath, jsonData, 0644); err != nil {
		return "", fmt.Errorf("error saving file: %s - %v", fullPath, err)
	}

	return fullPath, nil
}
