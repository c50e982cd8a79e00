// Package manifest loads the marketplace manifest: a JSON document listing
// plugins, each with a source root and relative paths to its agent, command,
// and skill documents. It also owns the single function that turns a declared
// artifact path into the repository-relative document path, and an optional
// JSON Schema check of the manifest shape.
package manifest
