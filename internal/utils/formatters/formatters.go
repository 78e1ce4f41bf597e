// Package formatters provides text cleaning, JSON formatting, and
// modification-age helpers for discovery results.
package formatters

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/omustardo/proton-save-finder/internal/types"

	"github.com/PuerkitoBio/goquery"
	"github.com/TylerBrock/colorjson"
	"github.com/fatih/color"
)

// CleanTextSelect extracts the text from a goquery selection, trims
// whitespace, and returns the cleaned string.
func CleanTextSelect(s *goquery.Selection) string {
	return strings.TrimSpace(s.Text())
}

// CleanTextStr trims leading and trailing whitespace from the input string
// and returns the cleaned string.
func CleanTextStr(s string) string {
	return strings.TrimSpace(s)
}

// marshalIndent is used by FormatFoldersAsJson; tests may override to simulate marshal failure.
var marshalIndent = json.MarshalIndent

// formatterMarshal is used by PrintPrettyJson; tests may override to simulate formatter marshal failure.
var formatterMarshal = func(f *colorjson.Formatter, obj interface{}) ([]byte, error) { return f.Marshal(obj) }

// FormatFoldersAsJson takes the ranked folder list and formats it as a
// pretty-printed JSON array. If marshalling fails, it returns an error.
func FormatFoldersAsJson(folders []types.ScoredFolder) (string, error) {
	if len(folders) == 0 {
		return "[]", nil
	}
	jsonData, err := marshalIndent(folders, "", "    ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal folder results: %w", err)
	}
	return string(jsonData), nil
}

// PrintJson prints a given JSON-formatted string to the standard output.
func PrintJson(data string) {
	fmt.Println(data)
}

// PrintPrettyJson takes a JSON string, unmarshals it into an object, and
// prints it with pretty formatting. Optionally, alternate colors can be used
// for keys and strings if useAltColors is provided and set to true. Returns
// an error if JSON unmarshalling or formatting fails.
func PrintPrettyJson(data string, useAltColors ...bool) error {
	var obj interface{}

	if err := json.Unmarshal([]byte(data), &obj); err != nil {
		return fmt.Errorf("failed to unmarshal JSON: %w", err)
	}

	f := colorjson.NewFormatter()
	f.Indent = 4

	if len(useAltColors) > 0 && useAltColors[0] {
		f.KeyColor = color.New(color.FgHiCyan)
		f.StringColor = color.New(color.FgHiMagenta)
	}

	s, err := formatterMarshal(f, obj)
	if err != nil {
		return fmt.Errorf("failed to marshal formatted JSON: %w", err)
	}

	fmt.Println(string(s))
	return nil
}

// FormatAge renders a folder's modification time the way the result list
// shows it: "(modified today)", "(modified N days ago)", or "" once the
// change is older than a month and no longer interesting.
func FormatAge(mtime *time.Time, now time.Time) string {
	if mtime == nil {
		return ""
	}

	daysOld := int(now.Sub(*mtime).Hours() / 24)
	switch {
	case daysOld < 1:
		return " (modified today)"
	case daysOld < 30:
		return fmt.Sprintf(" (modified %d days ago)", daysOld)
	default:
		return ""
	}
}

// StrToInt converts a string to an int64. It returns the parsed integer and
// an error if the conversion fails.
func StrToInt(input string) (int64, error) {
	result, err := strconv.ParseInt(input, 10, 64)
	if err != nil {
		return 0, err
	}

	return result, nil
}
