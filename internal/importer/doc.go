// Package importer materializes catalog and split files as individual
// documents under a destination directory: agents/<name>.md,
// commands/<name>.md, and skills/<name>/ holding SKILL.md plus optional
// references/ and assets/ files. Existing files are overwritten.
package importer
