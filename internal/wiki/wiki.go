// Package wiki scrapes PCGamingWiki "Save game data location" tables into
// raw path-template strings. The templates still carry Windows placeholders
// like %APPDATA%; resolving them against a Proton prefix is the discovery
// engine's job.
package wiki

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/omustardo/proton-save-finder/internal/httpclient"
	"github.com/omustardo/proton-save-finder/internal/utils/formatters"
)

// DefaultBaseURL is the PCGamingWiki site root.
const DefaultBaseURL = "https://www.pcgamingwiki.com"

// saveSectionHeading is the infotable heading that starts the save rows.
const saveSectionHeading = "Save game data location"

// fetchDocumentFunc fetches and parses a page; tests may override.
var fetchDocumentFunc = FetchDocument

// PageURL builds the wiki page URL for a game title; page names replace
// spaces with underscores.
func PageURL(baseURL, title string) string {
	pageName := strings.ReplaceAll(title, " ", "_")
	return fmt.Sprintf("%s/wiki/%s", baseURL, url.PathEscape(pageName))
}

// FetchDocument sends an HTTP GET request to the target URL and returns the
// response as a parsed goquery document. It ensures a successful 200 OK
// status before parsing and returns an error if the request or document
// parsing fails.
func FetchDocument(targetURL string) (*goquery.Document, error) {
	req, err := httpclient.NewRequest(targetURL)
	if err != nil {
		return nil, err
	}

	resp, err := httpclient.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch document: %s returned %d", targetURL, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, err
	}

	return doc, nil
}

// FetchSaveLocationHints fetches the wiki page for the title and returns its
// Windows save-location templates in document order. Callers treat any error
// as "no hints"; the wiki is a best-effort source.
func FetchSaveLocationHints(baseURL, title string) ([]string, error) {
	doc, err := fetchDocumentFunc(PageURL(baseURL, title))
	if err != nil {
		return nil, err
	}
	return ExtractSaveTemplates(doc), nil
}

// parseState tracks where the row walk is relative to the save section.
type parseState int

const (
	outsideSection parseState = iota
	inSection
)

// ExtractSaveTemplates walks the infotable rows as a small state machine:
// a "Save game data location" heading enters the section, any other heading
// leaves it, and body rows inside the section contribute their location cell
// when the system column is a Windows variant.
func ExtractSaveTemplates(doc *goquery.Document) []string {
	var templates []string
	state := outsideSection

	doc.Find("table.template-infotable tr").Each(func(_ int, row *goquery.Selection) {
		if head := row.Find("th.template-infotable-head"); head.Length() > 0 {
			if strings.EqualFold(formatters.CleanTextSelect(head), saveSectionHeading) {
				state = inSection
			} else {
				state = outsideSection
			}
			return
		}

		if state != inSection {
			return
		}

		system := formatters.CleanTextSelect(row.Find("th").First())
		location := formatters.CleanTextSelect(row.Find("td").First())
		if location == "" || !isWindowsSystem(system) {
			return
		}

		templates = append(templates, location)
	})

	return templates
}

// isWindowsSystem reports whether a system cell names a row relevant to a
// Proton prefix: the Windows row, or the wiki's dedicated Steam Play row.
func isWindowsSystem(system string) bool {
	s := strings.ToLower(system)
	return strings.Contains(s, "windows") || strings.Contains(s, "steam play")
}
