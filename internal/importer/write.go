package importer

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/epieczko/agents/internal/catalog"
	"github.com/epieczko/agents/internal/manifest"
)

// Destination subdirectories.
const (
	AgentsDir     = "agents"
	CommandsDir   = "commands"
	SkillsDir     = "skills"
	ReferencesDir = "references"
	AssetsDir     = "assets"
)

// ImportAgent writes the agent's content to <dest>/agents/<name>.md.
func ImportAgent(a catalog.Agent, dest string) (string, error) {
	path := filepath.Join(dest, AgentsDir, a.Name+".md")
	return path, writeFile(path, a.Content)
}

// ImportCommand writes the command's content to <dest>/commands/<name>.md.
// Names containing slashes produce nested directories.
func ImportCommand(c catalog.Command, dest string) (string, error) {
	path := filepath.Join(dest, CommandsDir, filepath.FromSlash(c.Name)+".md")
	return path, writeFile(path, c.Content)
}

// ImportSkill writes <dest>/skills/<name>/SKILL.md and, when present, the
// references/ and assets/ documents. It returns the skill directory.
func ImportSkill(s catalog.Skill, dest string) (string, error) {
	dir := filepath.Join(dest, SkillsDir, s.Name)
	if err := os.MkdirAll(dir, catalog.DirPerm); err != nil {
		return "", fmt.Errorf("creating %s: %w", dir, err)
	}
	if err := writeFile(filepath.Join(dir, manifest.SkillFile), s.Content); err != nil {
		return "", err
	}
	if err := writeDocs(filepath.Join(dir, ReferencesDir), s.References); err != nil {
		return "", err
	}
	if err := writeDocs(filepath.Join(dir, AssetsDir), s.Assets); err != nil {
		return "", err
	}
	return dir, nil
}

// writeDocs writes each entry of docs into dir. Nothing is created for an
// empty map.
func writeDocs(dir string, docs map[string]string) error {
	if len(docs) == 0 {
		return nil
	}
	names := make([]string, 0, len(docs))
	for name := range docs {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := writeFile(filepath.Join(dir, name), docs[name]); err != nil {
			return err
		}
	}
	return nil
}

func writeFile(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), catalog.DirPerm); err != nil {
		return fmt.Errorf("creating directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(content), catalog.FilePerm); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
