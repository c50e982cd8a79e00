package extract

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/epieczko/agents/internal/catalog"
)

// Write stores the catalogs, placeholders, and summary under dir. Files are
// overwritten in place; a failure part-way leaves earlier files written.
func Write(dir, repository string, res *Result) error {
	if err := os.MkdirAll(dir, catalog.DirPerm); err != nil {
		return fmt.Errorf("creating output directory %s: %w", dir, err)
	}

	files := []struct {
		name string
		doc  any
	}{
		{catalog.AgentsFile, catalog.NewAgentFile(res.Agents)},
		{catalog.CommandsFile, catalog.NewCommandFile(res.Commands)},
		{catalog.SkillsFile, catalog.NewSkillFile(res.Skills)},
		{catalog.PluginsFile, catalog.NewPluginFile(res.Plugins)},
		{catalog.HooksFile, catalog.NewHookFile()},
		{catalog.MCPsFile, catalog.NewMCPFile()},
		{catalog.SummaryFile, res.Summary(repository)},
	}

	for _, f := range files {
		if _, err := catalog.WriteJSON(filepath.Join(dir, f.name), f.doc); err != nil {
			return err
		}
	}
	return nil
}

// Summary aggregates the result for summary.json.
func (r *Result) Summary(repository string) catalog.Summary {
	return catalog.Summary{
		Repository:    repository,
		TotalPlugins:  len(r.Plugins),
		TotalAgents:   len(r.Agents),
		TotalCommands: len(r.Commands),
		TotalSkills:   len(r.Skills),
		Categories:    r.Categories(),
		Skipped:       r.Skipped,
	}
}
