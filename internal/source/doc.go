// Package source keeps a local shallow checkout of the marketplace source
// repository (the tree holding .claude-plugin/marketplace.json and the
// plugin directories) and tracks when it was last refreshed.
package source
