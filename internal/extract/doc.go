// Package extract reads a marketplace manifest and the markdown documents it
// references, and produces the agents, commands, skills, and plugins
// catalogs plus the hooks/MCP placeholders and summary.
//
// Declared paths that do not exist on disk are skipped without error and
// counted, since manifests may reference artifacts that have not been
// fetched yet.
package extract
