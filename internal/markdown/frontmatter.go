package markdown

import "strings"

// Delimiter opens and closes a front-matter block.
const Delimiter = "---"

// ParseFrontMatter returns the key/value pairs of the block between the first
// and second Delimiter when content starts with one. Lines without a colon
// are ignored; a repeated key keeps its last value. It never fails: content
// without front matter yields an empty map.
func ParseFrontMatter(content string) map[string]string {
	fields := make(map[string]string)
	if !strings.HasPrefix(content, Delimiter) {
		return fields
	}

	parts := strings.SplitN(content, Delimiter, 3)
	if len(parts) < 3 {
		return fields
	}

	for _, line := range strings.Split(strings.TrimSpace(parts[1]), "\n") {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		fields[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return fields
}

// Lookup returns fields[key], or fallback when the key is absent.
func Lookup(fields map[string]string, key, fallback string) string {
	if v, ok := fields[key]; ok {
		return v
	}
	return fallback
}
