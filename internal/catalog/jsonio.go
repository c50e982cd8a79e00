package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Permission constants for written files and directories.
const (
	DirPerm  os.FileMode = 0755
	FilePerm os.FileMode = 0644
)

// Catalogs holds the three content catalogs the splitter and importer read.
type Catalogs struct {
	Agents   []Agent
	Commands []Command
	Skills   []Skill
}

// Encode renders v as two-space indented JSON without HTML escaping, so
// markdown content stays readable and output is byte-stable across runs.
func Encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteJSON encodes v to path, creating parent directories, and returns the
// number of bytes written. Existing files are overwritten in place.
func WriteJSON(path string, v any) (int64, error) {
	data, err := Encode(v)
	if err != nil {
		return 0, fmt.Errorf("encoding %s: %w", path, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), DirPerm); err != nil {
		return 0, fmt.Errorf("creating directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, FilePerm); err != nil {
		return 0, fmt.Errorf("writing %s: %w", path, err)
	}
	return int64(len(data)), nil
}

// ReadJSON decodes the JSON document at path into a new T.
func ReadJSON[T any](path string) (*T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &v, nil
}

// LoadCatalogs reads agents.json, commands.json, and skills.json from dir.
func LoadCatalogs(dir string) (*Catalogs, error) {
	agents, err := ReadJSON[AgentFile](filepath.Join(dir, AgentsFile))
	if err != nil {
		return nil, err
	}
	commands, err := ReadJSON[CommandFile](filepath.Join(dir, CommandsFile))
	if err != nil {
		return nil, err
	}
	skills, err := ReadJSON[SkillFile](filepath.Join(dir, SkillsFile))
	if err != nil {
		return nil, err
	}
	return &Catalogs{
		Agents:   agents.Agents,
		Commands: commands.Commands,
		Skills:   skills.Skills,
	}, nil
}
