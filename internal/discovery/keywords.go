// Package discovery locates likely save-game folders inside Proton prefixes.
// It scores candidate directories by name similarity to the game title and by
// how save-like their contents look, and merges in externally supplied
// PCGamingWiki path hints.
package discovery

import (
	"regexp"
	"strings"
)

// titleDelimiters splits a game title (or folder name) into tokens on the
// punctuation games commonly carry: colons, hyphens, whitespace, parentheses.
var titleDelimiters = regexp.MustCompile(`[:\-\s()]+`)

// stopWords are filler words that carry no matching signal.
var stopWords = map[string]struct{}{
	"the": {}, "and": {}, "or": {}, "of": {}, "a": {}, "an": {},
	"in": {}, "on": {}, "at": {}, "to": {}, "for": {}, "with": {}, "by": {},
}

// ExtractKeywords turns a game title into a set of matchable tokens. Tokens
// of length <= 2 and stop words are dropped; plural tokens also contribute
// their singular form so "Saves" still matches a "save" directory.
func ExtractKeywords(title string) map[string]struct{} {
	keywords := make(map[string]struct{})

	for _, part := range titleDelimiters.Split(strings.ToLower(title), -1) {
		part = strings.TrimSpace(part)
		if len(part) <= 2 {
			continue
		}
		if _, stop := stopWords[part]; stop {
			continue
		}
		keywords[part] = struct{}{}
		if len(part) > 3 && strings.HasSuffix(part, "s") {
			keywords[strings.TrimSuffix(part, "s")] = struct{}{}
		}
	}

	return keywords
}
