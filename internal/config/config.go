package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/epieczko/agents/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Config is the explicit configuration handed to every stage.
type Config struct {
	Repository      string       `mapstructure:"repository"`
	RepoRoot        string       `mapstructure:"repo_root"`
	Manifest        string       `mapstructure:"manifest"`
	TemplatesDir    string       `mapstructure:"templates_dir"`
	DestDir         string       `mapstructure:"dest_dir"`
	DefaultModel    string       `mapstructure:"default_model"`
	DefaultCategory string       `mapstructure:"default_category"`
	Split           SplitConfig  `mapstructure:"split"`
	Collections     []string     `mapstructure:"collections"`
	Source          SourceConfig `mapstructure:"source"`
}

// SplitConfig lists the partitions the splitter materializes.
type SplitConfig struct {
	Priorities []string `mapstructure:"priorities"`
	Categories []string `mapstructure:"categories"`
	Plugins    []string `mapstructure:"plugins"`
}

// SourceConfig describes where the marketplace source repository is fetched from.
type SourceConfig struct {
	RepoURL string        `mapstructure:"repo_url"`
	Dir     string        `mapstructure:"dir"`
	MaxAge  time.Duration `mapstructure:"max_age"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Repository:      "wshobson/agents",
		RepoRoot:        ".",
		Manifest:        filepath.Join(".claude-plugin", "marketplace.json"),
		TemplatesDir:    "betty-templates",
		DestDir:         filepath.Join("..", "betty", ".claude"),
		DefaultModel:    "sonnet",
		DefaultCategory: "general",
		Split: SplitConfig{
			Priorities: []string{"high"},
			Categories: []string{"development", "languages", "infrastructure", "ai-ml", "security"},
			Plugins: []string{
				"python-development",
				"developer-essentials",
				"javascript-typescript",
				"kubernetes-operations",
				"cloud-infrastructure",
				"llm-application-dev",
				"git-pr-workflows",
				"debugging-toolkit",
			},
		},
		Collections: []string{"essentials", "python", "devops", "ai-ml"},
		Source: SourceConfig{
			RepoURL: branding.SourceRepoURL(),
			Dir:     "agents-source",
			MaxAge:  7 * 24 * time.Hour,
		},
	}
}

// ManifestPath returns the marketplace manifest location resolved against RepoRoot.
func (c *Config) ManifestPath() string {
	if filepath.IsAbs(c.Manifest) {
		return c.Manifest
	}
	return filepath.Join(c.RepoRoot, c.Manifest)
}

// SplitDir returns the directory holding priority, category, and plugin splits.
func (c *Config) SplitDir() string {
	return filepath.Join(c.TemplatesDir, "split")
}

// MetadataDir returns the directory holding content-stripped catalogs.
func (c *Config) MetadataDir() string {
	return filepath.Join(c.TemplatesDir, "metadata")
}

// RecommendationPath returns the path of a curated collection document.
func (c *Config) RecommendationPath(collection string) string {
	return filepath.Join(c.TemplatesDir, "recommended-"+collection+".json")
}

// SourceDir returns the local checkout of the marketplace source repository.
// A relative Source.Dir lives under the user config directory.
func (c *Config) SourceDir() string {
	if filepath.IsAbs(c.Source.Dir) {
		return c.Source.Dir
	}
	return filepath.Join(Dir(), c.Source.Dir)
}

// Dir returns the path to the user config directory (~/.artifacts/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the user config file (~/.artifacts/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load builds a Config from defaults, the config file, and the environment.
// An explicit path must exist; the user-level file is optional.
func Load(path string) (*Config, error) {
	v, err := newViper(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	return &cfg, nil
}

// Get returns a single config value as a display string.
func Get(path, key string) (string, error) {
	v, err := newViper(path)
	if err != nil {
		return "", err
	}
	switch val := v.Get(key).(type) {
	case nil:
		return "", nil
	case []string:
		return strings.Join(val, ","), nil
	case []interface{}:
		parts := make([]string, len(val))
		for i, p := range val {
			parts[i] = fmt.Sprint(p)
		}
		return strings.Join(parts, ","), nil
	default:
		return fmt.Sprint(val), nil
	}
}

// Set writes a key-value pair to the config file at path, or to the user
// config file when path is empty, creating it if needed.
func Set(path, key, value string) error {
	configFile := path
	if configFile == "" {
		if err := EnsureDir(); err != nil {
			return err
		}
		configFile = FilePath()
	} else if err := os.MkdirAll(filepath.Dir(configFile), 0755); err != nil {
		return fmt.Errorf("creating config directory for %s: %w", configFile, err)
	}

	v := viper.New()
	v.SetConfigFile(configFile)
	v.SetConfigType(fileType)

	if _, err := os.Stat(configFile); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file %s: %w", configFile, err)
		}
	}

	v.Set(key, value)

	if err := v.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

func newViper(path string) (*viper.Viper, error) {
	v := viper.New()
	setDefaults(v, Default())

	v.SetConfigType(fileType)
	v.SetEnvPrefix(branding.EnvPrefix())
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
		return v, nil
	}

	// Ignore error if the user config file doesn't exist yet.
	v.SetConfigFile(FilePath())
	_ = v.ReadInConfig()
	return v, nil
}

func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("repository", d.Repository)
	v.SetDefault("repo_root", d.RepoRoot)
	v.SetDefault("manifest", d.Manifest)
	v.SetDefault("templates_dir", d.TemplatesDir)
	v.SetDefault("dest_dir", d.DestDir)
	v.SetDefault("default_model", d.DefaultModel)
	v.SetDefault("default_category", d.DefaultCategory)
	v.SetDefault("split.priorities", d.Split.Priorities)
	v.SetDefault("split.categories", d.Split.Categories)
	v.SetDefault("split.plugins", d.Split.Plugins)
	v.SetDefault("collections", d.Collections)
	v.SetDefault("source.repo_url", d.Source.RepoURL)
	v.SetDefault("source.dir", d.Source.Dir)
	v.SetDefault("source.max_age", d.Source.MaxAge)
}
