package split

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/epieczko/agents/internal/catalog"
	"github.com/epieczko/agents/internal/config"
)

func setupTemplates(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.TemplatesDir = t.TempDir()
	cfg.Collections = []string{"essentials", "python"}
	cfg.Split.Plugins = []string{"python-development", "empty-plugin"}

	agents := []catalog.Agent{
		{Name: "python-pro", Plugin: "python-development", Category: "languages", Content: "py"},
		{Name: "debugger", Plugin: "debugging-toolkit", Category: "development", Content: "dbg"},
		{Name: "reviewer", Plugin: "python-development", Category: "languages", Content: "rev"},
	}
	commands := []catalog.Command{
		{Name: "lint", Plugin: "python-development", Category: "languages", Content: "lint"},
	}
	skills := []catalog.Skill{
		{Name: "async-patterns", Plugin: "python-development", Category: "languages", Content: "skill",
			References: map[string]string{"a.md": "ref"}, Assets: map[string]string{}},
	}

	write := func(name string, v any) {
		if _, err := catalog.WriteJSON(filepath.Join(cfg.TemplatesDir, name), v); err != nil {
			t.Fatal(err)
		}
	}
	write(catalog.AgentsFile, catalog.NewAgentFile(agents))
	write(catalog.CommandsFile, catalog.NewCommandFile(commands))
	write(catalog.SkillsFile, catalog.NewSkillFile(skills))
	write("recommended-essentials.json", catalog.RecommendationDoc{
		Agents:   []catalog.Recommendation{{Name: "debugger", Priority: "high"}, {Name: "reviewer", Priority: "low"}},
		Commands: []catalog.Recommendation{{Name: "lint", Priority: "medium"}},
	})
	write("recommended-python.json", catalog.RecommendationDoc{
		Agents: []catalog.Recommendation{{Name: "python-pro", Priority: "high"}, {Name: "ghost", Priority: "high"}},
		Skills: []catalog.Recommendation{{Name: "async-patterns", Priority: "high"}},
	})
	return cfg
}

func TestByPriority(t *testing.T) {
	cfg := setupTemplates(t)
	var out bytes.Buffer

	if err := New(cfg, &out).ByPriority(); err != nil {
		t.Fatalf("ByPriority: %v", err)
	}

	af, err := catalog.ReadJSON[catalog.AgentFile](filepath.Join(cfg.SplitDir(), "agents-priority-high.json"))
	if err != nil {
		t.Fatal(err)
	}
	// Catalog order is preserved; names absent from the catalog are ignored.
	if af.TotalCount != 2 || af.Agents[0].Name != "python-pro" || af.Agents[1].Name != "debugger" {
		t.Errorf("agents split = %+v", af)
	}
	if af.Priority != "high" || af.Description != "High priority agents recommended for immediate use" {
		t.Errorf("header = %q / %q", af.Priority, af.Description)
	}

	cf, err := catalog.ReadJSON[catalog.CommandFile](filepath.Join(cfg.SplitDir(), "commands-priority-high.json"))
	if err != nil {
		t.Fatal(err)
	}
	if cf.TotalCount != 0 || len(cf.Commands) != 0 {
		t.Errorf("commands split = %+v, want empty", cf)
	}

	sf, err := catalog.ReadJSON[catalog.SkillFile](filepath.Join(cfg.SplitDir(), "skills-priority-high.json"))
	if err != nil {
		t.Fatal(err)
	}
	if sf.TotalCount != 1 || sf.Skills[0].Name != "async-patterns" {
		t.Errorf("skills split = %+v", sf)
	}

	if !strings.Contains(out.String(), "✓ Created") || !strings.Contains(out.String(), "KB)") {
		t.Errorf("missing size report in output: %q", out.String())
	}
}

func TestByPriority_Idempotent(t *testing.T) {
	cfg := setupTemplates(t)
	s := New(cfg, &bytes.Buffer{})
	path := filepath.Join(cfg.SplitDir(), "agents-priority-high.json")

	if err := s.ByPriority(); err != nil {
		t.Fatal(err)
	}
	first, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.ByPriority(); err != nil {
		t.Fatal(err)
	}
	second, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first, second) {
		t.Error("priority split output changed between runs")
	}
}

func TestByPriority_MissingRecommendation(t *testing.T) {
	cfg := setupTemplates(t)
	cfg.Collections = append(cfg.Collections, "devops")

	if err := New(cfg, &bytes.Buffer{}).ByPriority(); err == nil {
		t.Fatal("expected error for missing recommended-devops.json")
	}
}

func TestByCategory(t *testing.T) {
	cfg := setupTemplates(t)

	if err := New(cfg, &bytes.Buffer{}).ByCategory(); err != nil {
		t.Fatalf("ByCategory: %v", err)
	}

	af, err := catalog.ReadJSON[catalog.AgentFile](filepath.Join(cfg.SplitDir(), "agents-category-languages.json"))
	if err != nil {
		t.Fatal(err)
	}
	if af.TotalCount != 2 || af.Category != "languages" {
		t.Errorf("languages agents = %+v", af)
	}

	if _, err := os.Stat(filepath.Join(cfg.SplitDir(), "agents-category-development.json")); err != nil {
		t.Errorf("development agents split missing: %v", err)
	}
	// No development commands or skills, so no files for them.
	for _, name := range []string{"commands-category-development.json", "skills-category-development.json"} {
		if _, err := os.Stat(filepath.Join(cfg.SplitDir(), name)); err == nil {
			t.Errorf("%s should not be written", name)
		}
	}
}

func TestByCategory_EmptyCategoryWritesNothing(t *testing.T) {
	cfg := setupTemplates(t)
	cfg.Split.Categories = []string{"security"}

	if err := New(cfg, &bytes.Buffer{}).ByCategory(); err != nil {
		t.Fatalf("ByCategory: %v", err)
	}
	matches, _ := filepath.Glob(filepath.Join(cfg.SplitDir(), "*-category-security.json"))
	if len(matches) != 0 {
		t.Errorf("expected no security files, got %v", matches)
	}
}

func TestByPlugin(t *testing.T) {
	cfg := setupTemplates(t)

	if err := New(cfg, &bytes.Buffer{}).ByPlugin(); err != nil {
		t.Fatalf("ByPlugin: %v", err)
	}

	ps, err := catalog.ReadJSON[catalog.PluginSplit](PluginPath(cfg.SplitDir(), "python-development"))
	if err != nil {
		t.Fatal(err)
	}
	want := catalog.Counts{Agents: 2, Commands: 1, Skills: 1}
	if ps.Counts != want {
		t.Errorf("counts = %+v, want %+v", ps.Counts, want)
	}
	if ps.Plugin != "python-development" {
		t.Errorf("plugin = %q", ps.Plugin)
	}

	if _, err := os.Stat(PluginPath(cfg.SplitDir(), "empty-plugin")); err == nil {
		t.Error("empty plugin should not produce a file")
	}
}

func TestMetadataOnly(t *testing.T) {
	cfg := setupTemplates(t)

	if err := New(cfg, &bytes.Buffer{}).MetadataOnly(); err != nil {
		t.Fatalf("MetadataOnly: %v", err)
	}

	for _, name := range []string{"agents-metadata.json", "commands-metadata.json", "skills-metadata.json"} {
		data, err := os.ReadFile(filepath.Join(cfg.MetadataDir(), name))
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if bytes.Contains(data, []byte(`"content"`)) {
			t.Errorf("%s contains a content field", name)
		}
	}

	sm, err := catalog.ReadJSON[catalog.SkillMetaFile](filepath.Join(cfg.MetadataDir(), "skills-metadata.json"))
	if err != nil {
		t.Fatal(err)
	}
	if !sm.Skills[0].HasReferences || sm.Skills[0].HasAssets {
		t.Errorf("skill flags = %+v", sm.Skills[0])
	}
}

func TestRun(t *testing.T) {
	cfg := setupTemplates(t)
	var out bytes.Buffer

	if err := New(cfg, &out).Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	for _, label := range []string{"1. Splitting by priority", "2. Splitting by category", "3. Splitting by plugin", "4. Creating metadata-only"} {
		if !strings.Contains(out.String(), label) {
			t.Errorf("output missing %q", label)
		}
	}

	issues, err := catalog.VerifyDir(cfg.TemplatesDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(issues) != 0 {
		t.Errorf("invariant issues: %+v", issues)
	}
}
