package extract

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"syscall"

	"github.com/epieczko/agents/internal/catalog"
	"github.com/epieczko/agents/internal/config"
	"github.com/epieczko/agents/internal/manifest"
	"github.com/epieczko/agents/internal/markdown"
)

// Conventional skill subdirectories.
const (
	referencesDir = "references"
	assetsDir     = "assets"
)

// Extractor turns manifest entries into catalog records.
type Extractor struct {
	// Root is the directory plugin sources are resolved against.
	Root string
	// Resolve maps declared artifact paths to repository-relative documents.
	Resolve manifest.Resolver

	DefaultModel    string
	DefaultCategory string
}

// Result holds everything one extraction run produced.
type Result struct {
	Agents   []catalog.Agent
	Commands []catalog.Command
	Skills   []catalog.Skill
	Plugins  []catalog.Plugin
	Skipped  catalog.Counts
}

// New returns an Extractor configured from cfg using the default resolver.
func New(cfg *config.Config) *Extractor {
	return &Extractor{
		Root:            cfg.RepoRoot,
		Resolve:         manifest.ResolvePath,
		DefaultModel:    cfg.DefaultModel,
		DefaultCategory: cfg.DefaultCategory,
	}
}

// Run extracts every entity type from m.
func (e *Extractor) Run(m *manifest.Marketplace) (*Result, error) {
	res := &Result{Plugins: e.Plugins(m)}

	var err error
	if res.Agents, res.Skipped.Agents, err = e.Agents(m); err != nil {
		return nil, err
	}
	if res.Commands, res.Skipped.Commands, err = e.Commands(m); err != nil {
		return nil, err
	}
	if res.Skills, res.Skipped.Skills, err = e.Skills(m); err != nil {
		return nil, err
	}
	return res, nil
}

// Agents returns one record per existing agent document, in manifest order,
// and the number of declared paths that were skipped.
func (e *Extractor) Agents(m *manifest.Marketplace) ([]catalog.Agent, int, error) {
	agents := []catalog.Agent{}
	skipped := 0

	for _, p := range m.Plugins {
		for _, declared := range p.Agents {
			rel := e.Resolve(p.Source, manifest.KindAgent, declared)
			content, ok, err := e.read(rel)
			if err != nil {
				return nil, 0, err
			}
			if !ok {
				skipped++
				continue
			}

			fm := markdown.ParseFrontMatter(content)
			agents = append(agents, catalog.Agent{
				Name:        markdown.Lookup(fm, "name", stem(declared)),
				Description: markdown.Lookup(fm, "description", ""),
				Model:       markdown.Lookup(fm, "model", e.DefaultModel),
				Plugin:      p.Name,
				SourcePath:  rel,
				Category:    p.CategoryOr(e.DefaultCategory),
				Keywords:    p.KeywordList(),
				Content:     content,
			})
		}
	}
	return agents, skipped, nil
}

// Commands returns one record per existing command document. The name is the
// declared path with ".md", "commands/", and "./" removed; title and
// description come from the heading heuristics in package markdown.
func (e *Extractor) Commands(m *manifest.Marketplace) ([]catalog.Command, int, error) {
	commands := []catalog.Command{}
	skipped := 0

	for _, p := range m.Plugins {
		for _, declared := range p.Commands {
			rel := e.Resolve(p.Source, manifest.KindCommand, declared)
			content, ok, err := e.read(rel)
			if err != nil {
				return nil, 0, err
			}
			if !ok {
				skipped++
				continue
			}

			commands = append(commands, catalog.Command{
				Name:        commandName(declared),
				Title:       markdown.Title(content, stem(declared)),
				Description: markdown.LeadLine(content),
				Plugin:      p.Name,
				SourcePath:  rel,
				Category:    p.CategoryOr(e.DefaultCategory),
				Keywords:    p.KeywordList(),
				Content:     content,
			})
		}
	}
	return commands, skipped, nil
}

// Skills returns one record per existing skill main document, with the
// markdown files of its references/ and assets/ subdirectories attached.
func (e *Extractor) Skills(m *manifest.Marketplace) ([]catalog.Skill, int, error) {
	skills := []catalog.Skill{}
	skipped := 0

	for _, p := range m.Plugins {
		for _, declared := range p.Skills {
			rel := e.Resolve(p.Source, manifest.KindSkill, declared)
			content, ok, err := e.read(rel)
			if err != nil {
				return nil, 0, err
			}
			if !ok {
				skipped++
				continue
			}

			skillDir := filepath.Dir(e.diskPath(rel))
			refs, err := readDocs(filepath.Join(skillDir, referencesDir))
			if err != nil {
				return nil, 0, err
			}
			assets, err := readDocs(filepath.Join(skillDir, assetsDir))
			if err != nil {
				return nil, 0, err
			}

			fm := markdown.ParseFrontMatter(content)
			skills = append(skills, catalog.Skill{
				Name:        markdown.Lookup(fm, "name", path.Base(declared)),
				Description: markdown.Lookup(fm, "description", ""),
				Plugin:      p.Name,
				SourcePath:  rel,
				Category:    p.CategoryOr(e.DefaultCategory),
				Keywords:    p.KeywordList(),
				Content:     content,
				References:  refs,
				Assets:      assets,
			})
		}
	}
	return skills, skipped, nil
}

// Plugins summarizes every manifest entry. Counts are of declared paths,
// whether or not they exist.
func (e *Extractor) Plugins(m *manifest.Marketplace) []catalog.Plugin {
	plugins := make([]catalog.Plugin, 0, len(m.Plugins))
	for _, p := range m.Plugins {
		plugins = append(plugins, catalog.Plugin{
			Name:          p.Name,
			Description:   p.Description,
			Version:       p.Version,
			Category:      p.CategoryOr(e.DefaultCategory),
			Keywords:      p.KeywordList(),
			Source:        p.Source,
			AgentsCount:   len(p.Agents),
			CommandsCount: len(p.Commands),
			SkillsCount:   len(p.Skills),
		})
	}
	return plugins
}

// Categories returns the distinct plugin categories, sorted.
func (r *Result) Categories() []string {
	seen := make(map[string]bool)
	cats := []string{}
	for _, p := range r.Plugins {
		if !seen[p.Category] {
			seen[p.Category] = true
			cats = append(cats, p.Category)
		}
	}
	sort.Strings(cats)
	return cats
}

func (e *Extractor) diskPath(rel string) string {
	return filepath.Join(e.Root, filepath.FromSlash(rel))
}

// read returns the document at rel. ok is false when it does not exist.
func (e *Extractor) read(rel string) (string, bool, error) {
	data, err := os.ReadFile(e.diskPath(rel))
	if isMissing(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading %s: %w", rel, err)
	}
	return string(data), true, nil
}

// readDocs maps file name to content for every *.md file directly inside dir.
// A missing directory yields an empty map.
func readDocs(dir string) (map[string]string, error) {
	docs := make(map[string]string)

	entries, err := os.ReadDir(dir)
	if isMissing(err) {
		return docs, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".md" {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", entry.Name(), err)
		}
		docs[entry.Name()] = string(data)
	}
	return docs, nil
}

// isMissing reports whether err means the path is absent. A regular file
// where a directory component is expected counts as absent.
func isMissing(err error) bool {
	return errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR)
}

// stem returns the last path segment with ".md" removed.
func stem(declared string) string {
	return path.Base(strings.ReplaceAll(declared, ".md", ""))
}

func commandName(declared string) string {
	name := strings.ReplaceAll(declared, ".md", "")
	name = strings.ReplaceAll(name, "commands/", "")
	return strings.ReplaceAll(name, "./", "")
}
