//go:build integration

package integration_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/epieczko/agents/internal/catalog"
	"github.com/epieczko/agents/internal/extract"
	"github.com/epieczko/agents/internal/importer"
	"github.com/epieczko/agents/internal/manifest"
	"github.com/epieczko/agents/internal/split"
)

// runExtract loads the manifest and writes all catalogs.
func runExtract(t *testing.T, env *testEnv) *extract.Result {
	t.Helper()
	cfg := env.config(t)

	m, err := manifest.Load(cfg.ManifestPath())
	if err != nil {
		t.Fatalf("loading manifest: %v", err)
	}
	res, err := extract.New(cfg).Run(m)
	if err != nil {
		t.Fatalf("extracting: %v", err)
	}
	if err := extract.Write(cfg.TemplatesDir, cfg.Repository, res); err != nil {
		t.Fatalf("writing catalogs: %v", err)
	}
	return res
}

// TestFullFlowExtractSplitImport runs extract -> split -> import by plugin
// and checks that imported documents equal their sources.
func TestFullFlowExtractSplitImport(t *testing.T) {
	env := setupTestEnv(t)
	setupMarketplace(t, env.RepoDir)
	writeRecommendations(t, env.TemplatesDir)

	// Step 1: Extract.
	res := runExtract(t, env)
	if want := (catalog.Counts{Agents: 1, Skills: 1}); res.Skipped != want {
		t.Errorf("skipped = %+v, want %+v", res.Skipped, want)
	}
	for _, name := range []string{
		catalog.AgentsFile, catalog.CommandsFile, catalog.SkillsFile,
		catalog.PluginsFile, catalog.HooksFile, catalog.MCPsFile, catalog.SummaryFile,
	} {
		assertFileExists(t, filepath.Join(env.TemplatesDir, name))
	}
	assertFileContains(t, filepath.Join(env.TemplatesDir, catalog.SummaryFile), `"total_agents": 2`)

	// Step 2: Split.
	cfg := env.config(t)
	var out bytes.Buffer
	if err := split.New(cfg, &out).Run(); err != nil {
		t.Fatalf("splitting: %v", err)
	}
	assertFileExists(t, filepath.Join(cfg.SplitDir(), "agents-priority-high.json"))
	assertFileExists(t, filepath.Join(cfg.SplitDir(), "agents-category-languages.json"))
	assertFileNotExists(t, filepath.Join(cfg.SplitDir(), "agents-category-security.json"))
	assertFileExists(t, split.PluginPath(cfg.SplitDir(), "python-development"))
	assertFileExists(t, filepath.Join(cfg.MetadataDir(), "agents-metadata.json"))

	// Step 3: Every written file satisfies its count invariants.
	issues, err := catalog.VerifyDir(cfg.TemplatesDir)
	if err != nil {
		t.Fatalf("verifying: %v", err)
	}
	for _, issue := range issues {
		if !issue.Warning {
			t.Errorf("invariant broken: %s: %s", issue.File, issue.Message)
		}
	}

	// Step 4: Import one plugin and compare with the sources.
	counts, err := importer.New(cfg, &out).Plugin("python-development")
	if err != nil {
		t.Fatalf("importing plugin: %v", err)
	}
	if want := (catalog.Counts{Agents: 1, Commands: 1, Skills: 1}); counts != want {
		t.Errorf("imported %+v, want %+v", counts, want)
	}

	src := filepath.Join(env.RepoDir, "plugins", "python-development")
	assertSameContent(t, filepath.Join(src, "agents", "python-pro.md"), filepath.Join(env.DestDir, "agents", "python-pro.md"))
	assertSameContent(t, filepath.Join(src, "commands", "python-scaffold.md"), filepath.Join(env.DestDir, "commands", "python-scaffold.md"))
	skill := filepath.Join(src, "skills", "async-python-patterns")
	imported := filepath.Join(env.DestDir, "skills", "async-python-patterns")
	assertSameContent(t, filepath.Join(skill, "SKILL.md"), filepath.Join(imported, "SKILL.md"))
	assertSameContent(t, filepath.Join(skill, "references", "event-loop.md"), filepath.Join(imported, "references", "event-loop.md"))
	assertSameContent(t, filepath.Join(skill, "assets", "template.md"), filepath.Join(imported, "assets", "template.md"))
	assertFileNotExists(t, filepath.Join(env.DestDir, "agents", "debugger.md"))
}

// TestFullFlowPriorityImport imports the high tier built from the curated
// collection; medium-tagged and unknown names are excluded.
func TestFullFlowPriorityImport(t *testing.T) {
	env := setupTestEnv(t)
	setupMarketplace(t, env.RepoDir)
	writeRecommendations(t, env.TemplatesDir)
	runExtract(t, env)

	cfg := env.config(t)
	var out bytes.Buffer
	if err := split.New(cfg, &out).ByPriority(); err != nil {
		t.Fatalf("splitting: %v", err)
	}

	counts, err := importer.New(cfg, &out).Priority(catalog.PriorityHigh)
	if err != nil {
		t.Fatalf("importing: %v", err)
	}
	if want := (catalog.Counts{Agents: 1, Commands: 1}); counts != want {
		t.Errorf("imported %+v, want %+v", counts, want)
	}
	assertFileExists(t, filepath.Join(env.DestDir, "agents", "python-pro.md"))
	assertFileExists(t, filepath.Join(env.DestDir, "commands", "smart-debug.md"))
	assertFileNotExists(t, filepath.Join(env.DestDir, "agents", "debugger.md"))
}

// TestFullFlowRecommendedImport joins the curated collection against the
// full catalogs without any split files.
func TestFullFlowRecommendedImport(t *testing.T) {
	env := setupTestEnv(t)
	setupMarketplace(t, env.RepoDir)
	writeRecommendations(t, env.TemplatesDir)
	runExtract(t, env)

	var out bytes.Buffer
	counts, err := importer.New(env.config(t), &out).Recommended("essentials")
	if err != nil {
		t.Fatalf("importing: %v", err)
	}
	if want := (catalog.Counts{Agents: 2, Commands: 1, Skills: 1}); counts != want {
		t.Errorf("imported %+v, want %+v", counts, want)
	}
	if !strings.Contains(out.String(), "async-python-patterns (N/A priority)") {
		t.Errorf("output missing N/A priority line:\n%s", out.String())
	}
	assertFileNotExists(t, filepath.Join(env.DestDir, "agents", "retired-agent.md"))
}

// TestFullFlowReimportOverwrites imports twice after a source edit and checks
// the destination follows the catalog.
func TestFullFlowReimportOverwrites(t *testing.T) {
	env := setupTestEnv(t)
	setupMarketplace(t, env.RepoDir)
	runExtract(t, env)

	cfg := env.config(t)
	imp := importer.New(cfg, &bytes.Buffer{})
	agents := filepath.Join(cfg.TemplatesDir, catalog.AgentsFile)
	if _, err := imp.FromFile(agents); err != nil {
		t.Fatalf("first import: %v", err)
	}

	writeFile(t, filepath.Join(env.RepoDir, "plugins", "debugging-toolkit", "agents", "debugger.md"), "Rewritten.\n")
	runExtract(t, env)
	if _, err := imp.FromFile(agents); err != nil {
		t.Fatalf("second import: %v", err)
	}
	assertFileContains(t, filepath.Join(env.DestDir, "agents", "debugger.md"), "Rewritten.")
}

func TestManifestMatchesSchema(t *testing.T) {
	env := setupTestEnv(t)
	setupMarketplace(t, env.RepoDir)

	result, err := manifest.ValidateFile(env.config(t).ManifestPath())
	if err != nil {
		t.Fatalf("validating: %v", err)
	}
	if !result.Valid {
		t.Errorf("manifest invalid: %+v", result.Issues)
	}
}
