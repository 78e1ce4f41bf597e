package steam

import (
	"bufio"
	"bytes"
	"strings"
)

// unescapeVDF reverses the escaping Steam applies inside quoted VDF strings,
// notably doubled backslashes in Windows-style paths.
func unescapeVDF(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	escaped := false
	for _, r := range s {
		if escaped {
			switch r {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			default:
				b.WriteRune(r)
			}
			escaped = false
			continue
		}
		if r == '\\' {
			escaped = true
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// quotedTokens extracts the quoted strings from one line of a text-format
// VDF file. Steam writes at most a key and a value per line.
func quotedTokens(line string) []string {
	var tokens []string
	var current strings.Builder
	inQuote := false
	escaped := false

	for _, r := range line {
		if !inQuote {
			if r == '"' {
				inQuote = true
				current.Reset()
			}
			continue
		}
		if escaped {
			current.WriteRune('\\')
			current.WriteRune(r)
			escaped = false
			continue
		}
		switch r {
		case '\\':
			escaped = true
		case '"':
			tokens = append(tokens, unescapeVDF(current.String()))
			inQuote = false
		default:
			current.WriteRune(r)
		}
	}

	return tokens
}

// ParseLibraryFolders pulls the library "path" values out of a text-format
// steamapps/libraryfolders.vdf. The file nests each library under a numeric
// key, but every path line is a plain "path" "value" pair, so a line scan is
// enough; malformed lines are skipped rather than failing the whole file.
func ParseLibraryFolders(data []byte) []string {
	var paths []string

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		tokens := quotedTokens(scanner.Text())
		if len(tokens) < 2 {
			continue
		}
		if strings.EqualFold(tokens[0], "path") && tokens[1] != "" {
			paths = append(paths, tokens[1])
		}
	}

	return paths
}
