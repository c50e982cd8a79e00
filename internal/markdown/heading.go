package markdown

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// DescriptionLimit caps derived command descriptions, in characters.
const DescriptionLimit = 200

var titlePattern = regexp.MustCompile(`(?m)^#\s+(.+)$`)

// Title returns the text of the first top-level "# " heading, or fallback.
// A trailing carriage return is not part of the title.
func Title(content, fallback string) string {
	if m := titlePattern.FindStringSubmatch(content); m != nil {
		return strings.TrimSuffix(m[1], "\r")
	}
	return fallback
}

// LeadLine returns the first non-empty line that does not start with '#',
// trimmed and truncated to DescriptionLimit characters. It is a heuristic:
// when the lead paragraph does not directly follow the title, an unrelated
// line (including a front-matter delimiter) may be returned. CRLF line
// endings are treated like LF.
func LeadLine(content string) string {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		return Truncate(strings.TrimSpace(line), DescriptionLimit)
	}
	return ""
}

// Truncate shortens s to at most n characters without splitting a rune.
func Truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}
