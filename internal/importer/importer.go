package importer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/epieczko/agents/internal/branding"
	"github.com/epieczko/agents/internal/catalog"
	"github.com/epieczko/agents/internal/config"
	"github.com/epieczko/agents/internal/split"
)

// listPluginLimit caps how many plugin splits --list shows.
const listPluginLimit = 8

// Importer resolves selectors to catalog or split files and imports them
// into cfg.DestDir, reporting progress to out.
type Importer struct {
	cfg *config.Config
	out io.Writer
}

// New returns an Importer for cfg.
func New(cfg *config.Config, out io.Writer) *Importer {
	return &Importer{cfg: cfg, out: out}
}

// FromFile imports every agent, command, and skill in one catalog or split
// file. A failure stops the import; files already written stay.
func (i *Importer) FromFile(path string) (catalog.Counts, error) {
	var counts catalog.Counts

	bundle, err := catalog.ReadJSON[catalog.Bundle](path)
	if err != nil {
		return counts, err
	}

	for _, a := range bundle.Agents {
		if _, err := ImportAgent(a, i.cfg.DestDir); err != nil {
			return counts, err
		}
		fmt.Fprintf(i.out, "  ✓ Agent: %s\n", a.Name)
		counts.Agents++
	}
	for _, c := range bundle.Commands {
		if _, err := ImportCommand(c, i.cfg.DestDir); err != nil {
			return counts, err
		}
		fmt.Fprintf(i.out, "  ✓ Command: %s\n", c.Name)
		counts.Commands++
	}
	for _, s := range bundle.Skills {
		if _, err := ImportSkill(s, i.cfg.DestDir); err != nil {
			return counts, err
		}
		fmt.Fprintf(i.out, "  ✓ Skill: %s\n", s.Name)
		counts.Skills++
	}
	return counts, nil
}

// Priority imports every split file of the given tier.
func (i *Importer) Priority(tier string) (catalog.Counts, error) {
	files, err := i.glob(fmt.Sprintf(split.PriorityGlob, tier))
	if err != nil {
		return catalog.Counts{}, err
	}
	if len(files) == 0 {
		fmt.Fprintf(i.out, "❌ No %s priority files found in %s\n", tier, i.cfg.SplitDir())
		fmt.Fprintln(i.out, "Run the split command first")
		return catalog.Counts{}, nil
	}

	fmt.Fprintf(i.out, "\n📥 Importing %s priority artifacts...\n\n", tier)
	return i.importFiles(files)
}

// Plugin imports the combined split file of one plugin.
func (i *Importer) Plugin(name string) (catalog.Counts, error) {
	path := split.PluginPath(i.cfg.SplitDir(), name)
	if _, err := os.Stat(path); err != nil {
		fmt.Fprintf(i.out, "❌ Plugin '%s' not found\n", name)
		fmt.Fprintln(i.out, "Run with --list to see available plugins")
		return catalog.Counts{}, nil
	}

	fmt.Fprintf(i.out, "\n📥 Importing %s plugin...\n\n", name)
	counts, err := i.FromFile(path)
	if err != nil {
		return counts, err
	}
	i.reportTotal(counts)
	return counts, nil
}

// Category imports every split file of one category.
func (i *Importer) Category(name string) (catalog.Counts, error) {
	files, err := i.glob(fmt.Sprintf(split.CategoryGlob, name))
	if err != nil {
		return catalog.Counts{}, err
	}
	if len(files) == 0 {
		fmt.Fprintf(i.out, "❌ Category '%s' not found\n", name)
		fmt.Fprintf(i.out, "Available: %s\n", strings.Join(i.cfg.Split.Categories, ", "))
		return catalog.Counts{}, nil
	}

	fmt.Fprintf(i.out, "\n📥 Importing %s category...\n\n", name)
	return i.importFiles(files)
}

// Recommended imports the artifacts a curated collection names, looked up in
// the full catalogs. Catalog order within each recommendation is irrelevant:
// the first catalog entry with a matching name wins, and names missing from
// the catalog are skipped.
func (i *Importer) Recommended(collection string) (catalog.Counts, error) {
	var counts catalog.Counts

	path := i.cfg.RecommendationPath(collection)
	if _, err := os.Stat(path); err != nil {
		fmt.Fprintf(i.out, "❌ Collection '%s' not found\n", collection)
		fmt.Fprintf(i.out, "Available: %s\n", strings.Join(i.cfg.Collections, ", "))
		return counts, nil
	}

	fmt.Fprintf(i.out, "\n📥 Importing recommended %s artifacts...\n\n", collection)

	rec, err := catalog.ReadJSON[catalog.RecommendationDoc](path)
	if err != nil {
		return counts, err
	}
	cats, err := catalog.LoadCatalogs(i.cfg.TemplatesDir)
	if err != nil {
		return counts, err
	}

	for _, r := range rec.Agents {
		a, ok := find(cats.Agents, func(a catalog.Agent) bool { return a.Name == r.Name })
		if !ok {
			continue
		}
		if _, err := ImportAgent(a, i.cfg.DestDir); err != nil {
			return counts, err
		}
		fmt.Fprintf(i.out, "  ✓ Agent: %s (%s priority)\n", a.Name, r.PriorityLabel())
		counts.Agents++
	}
	for _, r := range rec.Commands {
		c, ok := find(cats.Commands, func(c catalog.Command) bool { return c.Name == r.Name })
		if !ok {
			continue
		}
		if _, err := ImportCommand(c, i.cfg.DestDir); err != nil {
			return counts, err
		}
		fmt.Fprintf(i.out, "  ✓ Command: %s (%s priority)\n", c.Name, r.PriorityLabel())
		counts.Commands++
	}
	for _, r := range rec.Skills {
		s, ok := find(cats.Skills, func(s catalog.Skill) bool { return s.Name == r.Name })
		if !ok {
			continue
		}
		if _, err := ImportSkill(s, i.cfg.DestDir); err != nil {
			return counts, err
		}
		fmt.Fprintf(i.out, "  ✓ Skill: %s (%s priority)\n", s.Name, r.PriorityLabel())
		counts.Skills++
	}

	i.reportTotal(counts)
	return counts, nil
}

// ListAvailable prints the selectors that can be imported.
func (i *Importer) ListAvailable() error {
	cli := branding.CLIName() + " import"
	fmt.Fprint(i.out, "\n📦 Available Imports:\n\n")

	fmt.Fprintln(i.out, "BY PRIORITY:")
	for _, tier := range i.cfg.Split.Priorities {
		fmt.Fprintf(i.out, "  %s --priority %s\n", cli, tier)
	}
	fmt.Fprintln(i.out)

	fmt.Fprintln(i.out, "BY PLUGIN:")
	plugins, err := i.glob(split.PluginGlob)
	if err != nil {
		return err
	}
	if len(plugins) > listPluginLimit {
		plugins = plugins[:listPluginLimit]
	}
	for _, p := range plugins {
		name := strings.TrimSuffix(strings.TrimPrefix(filepath.Base(p), "plugin-"), ".json")
		fmt.Fprintf(i.out, "  %s --plugin %s\n", cli, name)
	}
	fmt.Fprintln(i.out)

	fmt.Fprintln(i.out, "BY CATEGORY:")
	for _, c := range i.cfg.Split.Categories {
		fmt.Fprintf(i.out, "  %s --category %s\n", cli, c)
	}
	fmt.Fprintln(i.out)

	fmt.Fprintln(i.out, "CURATED COLLECTIONS:")
	for _, c := range i.cfg.Collections {
		fmt.Fprintf(i.out, "  %s --recommended %s\n", cli, c)
	}
	return nil
}

func (i *Importer) importFiles(files []string) (catalog.Counts, error) {
	var total catalog.Counts
	for _, f := range files {
		fmt.Fprintf(i.out, "Processing %s...\n", filepath.Base(f))
		counts, err := i.FromFile(f)
		total = total.Add(counts)
		if err != nil {
			return total, err
		}
	}
	i.reportTotal(total)
	return total, nil
}

func (i *Importer) reportTotal(c catalog.Counts) {
	fmt.Fprintf(i.out, "\n✅ Imported: %d agents, %d commands, %d skills\n", c.Agents, c.Commands, c.Skills)
}

// glob returns split files matching pattern, sorted.
func (i *Importer) glob(pattern string) ([]string, error) {
	files, err := filepath.Glob(filepath.Join(i.cfg.SplitDir(), pattern))
	if err != nil {
		return nil, fmt.Errorf("matching %s: %w", pattern, err)
	}
	sort.Strings(files)
	return files, nil
}

func find[T any](items []T, match func(T) bool) (T, bool) {
	for _, item := range items {
		if match(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}
