package catalog

// Agent is a task-definition document with descriptive metadata.
type Agent struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Model       string   `json:"model"`
	Plugin      string   `json:"plugin"`
	SourcePath  string   `json:"source_path"`
	Category    string   `json:"category"`
	Keywords    []string `json:"keywords"`
	Content     string   `json:"content"`
}

// Command is a short instructional document with a derived title.
type Command struct {
	Name        string   `json:"name"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Plugin      string   `json:"plugin"`
	SourcePath  string   `json:"source_path"`
	Category    string   `json:"category"`
	Keywords    []string `json:"keywords"`
	Content     string   `json:"content"`
}

// Skill is a main document plus optional reference and asset documents,
// keyed by file name.
type Skill struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Plugin      string            `json:"plugin"`
	SourcePath  string            `json:"source_path"`
	Category    string            `json:"category"`
	Keywords    []string          `json:"keywords"`
	Content     string            `json:"content"`
	References  map[string]string `json:"references"`
	Assets      map[string]string `json:"assets"`
}

// Plugin summarizes one marketplace entry.
type Plugin struct {
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Version       string   `json:"version"`
	Category      string   `json:"category"`
	Keywords      []string `json:"keywords"`
	Source        string   `json:"source"`
	AgentsCount   int      `json:"agents_count"`
	CommandsCount int      `json:"commands_count"`
	SkillsCount   int      `json:"skills_count"`
}

// AgentMeta is an Agent without its content.
type AgentMeta struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Model       string   `json:"model"`
	Plugin      string   `json:"plugin"`
	Category    string   `json:"category"`
	Keywords    []string `json:"keywords"`
}

// CommandMeta is a Command without its content.
type CommandMeta struct {
	Name        string   `json:"name"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Plugin      string   `json:"plugin"`
	Category    string   `json:"category"`
	Keywords    []string `json:"keywords"`
}

// SkillMeta is a Skill without its documents; the flags record whether
// references or assets were present.
type SkillMeta struct {
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Plugin        string   `json:"plugin"`
	Category      string   `json:"category"`
	Keywords      []string `json:"keywords"`
	HasReferences bool     `json:"has_references"`
	HasAssets     bool     `json:"has_assets"`
}

// Meta projects an agent to its metadata.
func (a Agent) Meta() AgentMeta {
	return AgentMeta{
		Name:        a.Name,
		Description: a.Description,
		Model:       a.Model,
		Plugin:      a.Plugin,
		Category:    a.Category,
		Keywords:    nonNil(a.Keywords),
	}
}

// Meta projects a command to its metadata.
func (c Command) Meta() CommandMeta {
	return CommandMeta{
		Name:        c.Name,
		Title:       c.Title,
		Description: c.Description,
		Plugin:      c.Plugin,
		Category:    c.Category,
		Keywords:    nonNil(c.Keywords),
	}
}

// Meta projects a skill to its metadata.
func (s Skill) Meta() SkillMeta {
	return SkillMeta{
		Name:          s.Name,
		Description:   s.Description,
		Plugin:        s.Plugin,
		Category:      s.Category,
		Keywords:      nonNil(s.Keywords),
		HasReferences: len(s.References) > 0,
		HasAssets:     len(s.Assets) > 0,
	}
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
