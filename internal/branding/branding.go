// Package branding provides compile-time identity values for the CLI.
//
// The values live in branding.yaml next to this file and are baked into the
// binary with //go:embed.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName       string `yaml:"cli_name"`
	DisplayName   string `yaml:"display_name"`
	Description   string `yaml:"description"`
	HomeDir       string `yaml:"home_dir"`
	EnvPrefix     string `yaml:"env_prefix"`
	SourceRepoURL string `yaml:"source_repo_url"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing or empty.
		defaults = brand{
			CLIName:       "artifacts",
			DisplayName:   "Artifact Catalog",
			Description:   "Extract, split, and import agent, command, and skill catalogs",
			HomeDir:       ".artifacts",
			EnvPrefix:     "ARTIFACTS",
			SourceRepoURL: "https://github.com/wshobson/agents.git",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "artifacts").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".artifacts").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "ARTIFACTS").
func EnvPrefix() string { load(); return defaults.EnvPrefix }


// SourceRepoURL returns the default git URL of the marketplace source repository.
func SourceRepoURL() string { load(); return defaults.SourceRepoURL }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("DEST_DIR") → "ARTIFACTS_DEST_DIR".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
