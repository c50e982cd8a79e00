// Package markdown extracts lightweight metadata from artifact documents:
// a tolerant key/value front-matter block and the heading and lead-line
// heuristics used to title commands.
package markdown
