// Package cli defines the Cobra command tree for the artifacts CLI. Each file
// registers one top-level command (extract, split, import, etc.) with the root
// command. Commands load the Config, hand it to the stage packages that do the
// work, and only handle flag overrides and output formatting.
package cli
