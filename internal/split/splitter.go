package split

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/epieczko/agents/internal/catalog"
	"github.com/epieczko/agents/internal/config"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCase = cases.Title(language.English)

// Splitter writes split and metadata files derived from the catalogs in
// cfg.TemplatesDir.
type Splitter struct {
	cfg *config.Config
	out io.Writer
}

// New returns a Splitter that reports each written file to out.
func New(cfg *config.Config, out io.Writer) *Splitter {
	return &Splitter{cfg: cfg, out: out}
}

// Run performs every pass in order: priority, category, plugin, metadata.
func (s *Splitter) Run() error {
	passes := []struct {
		label string
		fn    func() error
	}{
		{"Splitting by priority", s.ByPriority},
		{"Splitting by category", s.ByCategory},
		{"Splitting by plugin", s.ByPlugin},
		{"Creating metadata-only versions", s.MetadataOnly},
	}
	for i, p := range passes {
		if i > 0 {
			fmt.Fprintln(s.out)
		}
		fmt.Fprintf(s.out, "%d. %s...\n", i+1, p.label)
		if err := p.fn(); err != nil {
			return err
		}
	}
	return nil
}

// ByPriority writes <kind>-priority-<tier>.json for every configured tier,
// keeping catalog entries whose name some recommendation document tags with
// that tier. Every configured recommendation document must exist.
func (s *Splitter) ByPriority() error {
	docs, err := s.recommendations()
	if err != nil {
		return err
	}
	cats, err := catalog.LoadCatalogs(s.cfg.TemplatesDir)
	if err != nil {
		return err
	}

	for _, tier := range s.cfg.Split.Priorities {
		names := catalog.TierNames(docs, tier)
		describe := func(kind string) string {
			return fmt.Sprintf("%s priority %s recommended for immediate use", titleCase.String(tier), kind)
		}

		af := catalog.NewAgentFile(filter(cats.Agents, func(a catalog.Agent) bool { return names.Agents[a.Name] }))
		af.Priority, af.Description = tier, describe("agents")
		if err := s.save(priorityPath(s.cfg.SplitDir(), "agents", tier), af); err != nil {
			return err
		}

		cf := catalog.NewCommandFile(filter(cats.Commands, func(c catalog.Command) bool { return names.Commands[c.Name] }))
		cf.Priority, cf.Description = tier, describe("commands")
		if err := s.save(priorityPath(s.cfg.SplitDir(), "commands", tier), cf); err != nil {
			return err
		}

		sf := catalog.NewSkillFile(filter(cats.Skills, func(sk catalog.Skill) bool { return names.Skills[sk.Name] }))
		sf.Priority, sf.Description = tier, describe("skills")
		if err := s.save(priorityPath(s.cfg.SplitDir(), "skills", tier), sf); err != nil {
			return err
		}
	}
	return nil
}

// ByCategory writes <kind>-category-<category>.json for each configured
// category with at least one matching entry. Empty results write nothing.
func (s *Splitter) ByCategory() error {
	cats, err := catalog.LoadCatalogs(s.cfg.TemplatesDir)
	if err != nil {
		return err
	}

	for _, category := range s.cfg.Split.Categories {
		if agents := filter(cats.Agents, func(a catalog.Agent) bool { return a.Category == category }); len(agents) > 0 {
			af := catalog.NewAgentFile(agents)
			af.Category = category
			if err := s.save(categoryPath(s.cfg.SplitDir(), "agents", category), af); err != nil {
				return err
			}
		}

		if commands := filter(cats.Commands, func(c catalog.Command) bool { return c.Category == category }); len(commands) > 0 {
			cf := catalog.NewCommandFile(commands)
			cf.Category = category
			if err := s.save(categoryPath(s.cfg.SplitDir(), "commands", category), cf); err != nil {
				return err
			}
		}

		if skills := filter(cats.Skills, func(sk catalog.Skill) bool { return sk.Category == category }); len(skills) > 0 {
			sf := catalog.NewSkillFile(skills)
			sf.Category = category
			if err := s.save(categoryPath(s.cfg.SplitDir(), "skills", category), sf); err != nil {
				return err
			}
		}
	}
	return nil
}

// ByPlugin writes plugin-<name>.json for each configured plugin that owns at
// least one agent, command, or skill.
func (s *Splitter) ByPlugin() error {
	cats, err := catalog.LoadCatalogs(s.cfg.TemplatesDir)
	if err != nil {
		return err
	}

	for _, plugin := range s.cfg.Split.Plugins {
		ps := catalog.NewPluginSplit(plugin,
			filter(cats.Agents, func(a catalog.Agent) bool { return a.Plugin == plugin }),
			filter(cats.Commands, func(c catalog.Command) bool { return c.Plugin == plugin }),
			filter(cats.Skills, func(sk catalog.Skill) bool { return sk.Plugin == plugin }),
		)
		if ps.Counts.Total() == 0 {
			continue
		}
		if err := s.save(PluginPath(s.cfg.SplitDir(), plugin), ps); err != nil {
			return err
		}
	}
	return nil
}

// MetadataOnly writes <kind>-metadata.json without document content.
func (s *Splitter) MetadataOnly() error {
	cats, err := catalog.LoadCatalogs(s.cfg.TemplatesDir)
	if err != nil {
		return err
	}

	dir := s.cfg.MetadataDir()
	if err := s.save(filepath.Join(dir, "agents-metadata.json"), catalog.NewAgentMetaFile(cats.Agents)); err != nil {
		return err
	}
	if err := s.save(filepath.Join(dir, "commands-metadata.json"), catalog.NewCommandMetaFile(cats.Commands)); err != nil {
		return err
	}
	return s.save(filepath.Join(dir, "skills-metadata.json"), catalog.NewSkillMetaFile(cats.Skills))
}

func (s *Splitter) recommendations() ([]*catalog.RecommendationDoc, error) {
	docs := make([]*catalog.RecommendationDoc, 0, len(s.cfg.Collections))
	for _, name := range s.cfg.Collections {
		doc, err := catalog.ReadJSON[catalog.RecommendationDoc](s.cfg.RecommendationPath(name))
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// save writes v and reports the path and size in KiB.
func (s *Splitter) save(path string, v any) error {
	size, err := catalog.WriteJSON(path, v)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "✓ Created %s (%.1f KB)\n", path, float64(size)/1024)
	return nil
}

func filter[T any](items []T, keep func(T) bool) []T {
	out := []T{}
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}
