//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/epieczko/agents/internal/config"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir      string // HOME, so no user config file leaks in
	RepoDir      string // marketplace repository root
	TemplatesDir string // catalogs, recommendations, splits
	DestDir      string // import destination
}

// setupTestEnv creates isolated temp directories and points HOME at one of
// them. The environment is restored after the test.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		HomeDir:      t.TempDir(),
		RepoDir:      t.TempDir(),
		TemplatesDir: t.TempDir(),
		DestDir:      t.TempDir(),
	}
	t.Setenv("HOME", env.HomeDir)
	return env
}

// config loads the effective config for env, the way the CLI does.
func (env *testEnv) config(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("loading config: %v", err)
	}
	cfg.RepoRoot = env.RepoDir
	cfg.TemplatesDir = env.TemplatesDir
	cfg.DestDir = env.DestDir
	cfg.Split.Plugins = []string{"python-development", "debugging-toolkit"}
	cfg.Split.Categories = []string{"languages", "development", "security"}
	cfg.Collections = []string{"essentials"}
	return cfg
}

// setupMarketplace writes a synthetic marketplace with two plugins into
// repoDir. One declared agent and one declared skill do not exist on disk.
func setupMarketplace(t *testing.T, repoDir string) {
	t.Helper()

	writeFile(t, filepath.Join(repoDir, ".claude-plugin", "marketplace.json"), `{
  "name": "test-marketplace",
  "plugins": [
    {
      "name": "python-development",
      "description": "Python tooling",
      "version": "1.2.0",
      "category": "languages",
      "keywords": ["python"],
      "source": "./plugins/python-development",
      "agents": ["./agents/python-pro.md", "./agents/not-fetched.md"],
      "commands": ["./commands/python-scaffold.md"],
      "skills": ["./skills/async-python-patterns", "./skills/missing-skill"]
    },
    {
      "name": "debugging-toolkit",
      "description": "Debugging helpers",
      "version": "1.0.0",
      "category": "development",
      "source": "./plugins/debugging-toolkit",
      "agents": ["./agents/debugger.md"],
      "commands": ["./commands/smart-debug.md"]
    }
  ]
}
`)

	py := filepath.Join(repoDir, "plugins", "python-development")
	writeFile(t, filepath.Join(py, "agents", "python-pro.md"), `---
name: python-pro
description: Master Python 3.12+ with modern features
model: opus
---

You are a Python expert.
`)
	writeFile(t, filepath.Join(py, "commands", "python-scaffold.md"), `# Python Project Scaffolding

Scaffold a new Python project with uv.
`)
	writeFile(t, filepath.Join(py, "skills", "async-python-patterns", "SKILL.md"), `---
name: async-python-patterns
description: Asyncio patterns
---
# Async Python Patterns
`)
	writeFile(t, filepath.Join(py, "skills", "async-python-patterns", "references", "event-loop.md"), "# Event loop\n")
	writeFile(t, filepath.Join(py, "skills", "async-python-patterns", "assets", "template.md"), "template\n")

	dbg := filepath.Join(repoDir, "plugins", "debugging-toolkit")
	writeFile(t, filepath.Join(dbg, "agents", "debugger.md"), "Debugging specialist.\n")
	writeFile(t, filepath.Join(dbg, "commands", "smart-debug.md"), "# Smart Debug\n\nFind the bug.\n")
}

// writeRecommendations writes recommended-essentials.json into templatesDir.
func writeRecommendations(t *testing.T, templatesDir string) {
	t.Helper()
	writeFile(t, filepath.Join(templatesDir, "recommended-essentials.json"), `{
  "name": "essentials",
  "agents": [
    {"name": "python-pro", "priority": "high"},
    {"name": "debugger", "priority": "medium"},
    {"name": "retired-agent", "priority": "high"}
  ],
  "commands": [
    {"name": "smart-debug", "priority": "high"}
  ],
  "skills": [
    {"name": "async-python-patterns"}
  ]
}
`)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating dir %s: %v", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertFileNotExists fails the test if the file exists.
func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file NOT to exist: %s", path)
	}
}

// assertSameContent fails unless both files exist with identical bytes.
func assertSameContent(t *testing.T, want, got string) {
	t.Helper()
	w, err := os.ReadFile(want)
	if err != nil {
		t.Errorf("reading %s: %v", want, err)
		return
	}
	g, err := os.ReadFile(got)
	if err != nil {
		t.Errorf("reading %s: %v", got, err)
		return
	}
	if string(w) != string(g) {
		t.Errorf("%s differs from %s.\nwant:\n%s\ngot:\n%s", got, want, w, g)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}
