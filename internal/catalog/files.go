package catalog

import "encoding/json"

// Catalog file names under the templates directory.
const (
	AgentsFile   = "agents.json"
	CommandsFile = "commands.json"
	SkillsFile   = "skills.json"
	PluginsFile  = "plugins.json"
	HooksFile    = "hooks.json"
	MCPsFile     = "mcps.json"
	SummaryFile  = "summary.json"
)

// MetadataNote marks content-stripped files.
const MetadataNote = "Metadata only - use full files for content"

// AgentFile wraps a list of agents. The optional header fields are set by
// split and metadata writers.
type AgentFile struct {
	TotalCount  int     `json:"total_count"`
	Priority    string  `json:"priority,omitempty"`
	Category    string  `json:"category,omitempty"`
	Description string  `json:"description,omitempty"`
	Agents      []Agent `json:"agents"`
}

// CommandFile wraps a list of commands.
type CommandFile struct {
	TotalCount  int       `json:"total_count"`
	Priority    string    `json:"priority,omitempty"`
	Category    string    `json:"category,omitempty"`
	Description string    `json:"description,omitempty"`
	Commands    []Command `json:"commands"`
}

// SkillFile wraps a list of skills.
type SkillFile struct {
	TotalCount  int     `json:"total_count"`
	Priority    string  `json:"priority,omitempty"`
	Category    string  `json:"category,omitempty"`
	Description string  `json:"description,omitempty"`
	Skills      []Skill `json:"skills"`
}

// PluginFile wraps the plugin list.
type PluginFile struct {
	TotalCount int      `json:"total_count"`
	Plugins    []Plugin `json:"plugins"`
}

// HookFile is the always-empty hooks placeholder.
type HookFile struct {
	TotalCount int               `json:"total_count"`
	Hooks      []json.RawMessage `json:"hooks"`
	Note       string            `json:"note"`
}

// MCPFile is the always-empty MCP server placeholder.
type MCPFile struct {
	TotalCount int               `json:"total_count"`
	MCPs       []json.RawMessage `json:"mcps"`
	Note       string            `json:"note"`
}

// AgentMetaFile wraps agent metadata.
type AgentMetaFile struct {
	TotalCount int         `json:"total_count"`
	Note       string      `json:"note"`
	Agents     []AgentMeta `json:"agents"`
}

// CommandMetaFile wraps command metadata.
type CommandMetaFile struct {
	TotalCount int           `json:"total_count"`
	Note       string        `json:"note"`
	Commands   []CommandMeta `json:"commands"`
}

// SkillMetaFile wraps skill metadata.
type SkillMetaFile struct {
	TotalCount int         `json:"total_count"`
	Note       string      `json:"note"`
	Skills     []SkillMeta `json:"skills"`
}

// PluginSplit combines every artifact of one plugin.
type PluginSplit struct {
	Plugin   string    `json:"plugin"`
	Agents   []Agent   `json:"agents"`
	Commands []Command `json:"commands"`
	Skills   []Skill   `json:"skills"`
	Counts   Counts    `json:"counts"`
}

// Counts tallies artifacts per entity type.
type Counts struct {
	Agents   int `json:"agents"`
	Commands int `json:"commands"`
	Skills   int `json:"skills"`
}

// Add returns the element-wise sum of c and o.
func (c Counts) Add(o Counts) Counts {
	return Counts{
		Agents:   c.Agents + o.Agents,
		Commands: c.Commands + o.Commands,
		Skills:   c.Skills + o.Skills,
	}
}

// Total returns the number of artifacts across all types.
func (c Counts) Total() int {
	return c.Agents + c.Commands + c.Skills
}

// Summary aggregates an extraction run.
type Summary struct {
	Repository    string   `json:"repository"`
	TotalPlugins  int      `json:"total_plugins"`
	TotalAgents   int      `json:"total_agents"`
	TotalCommands int      `json:"total_commands"`
	TotalSkills   int      `json:"total_skills"`
	TotalHooks    int      `json:"total_hooks"`
	TotalMCPs     int      `json:"total_mcps"`
	Categories    []string `json:"categories"`
	Skipped       Counts   `json:"skipped"`
}

// Bundle is the subset of any catalog or split file the importer reads.
// Absent lists decode as empty.
type Bundle struct {
	Agents   []Agent   `json:"agents"`
	Commands []Command `json:"commands"`
	Skills   []Skill   `json:"skills"`
}

// NewAgentFile wraps agents with a matching total_count.
func NewAgentFile(agents []Agent) AgentFile {
	agents = nonNil(agents)
	return AgentFile{TotalCount: len(agents), Agents: agents}
}

// NewCommandFile wraps commands with a matching total_count.
func NewCommandFile(commands []Command) CommandFile {
	commands = nonNil(commands)
	return CommandFile{TotalCount: len(commands), Commands: commands}
}

// NewSkillFile wraps skills with a matching total_count.
func NewSkillFile(skills []Skill) SkillFile {
	skills = nonNil(skills)
	return SkillFile{TotalCount: len(skills), Skills: skills}
}

// NewPluginFile wraps plugins with a matching total_count.
func NewPluginFile(plugins []Plugin) PluginFile {
	plugins = nonNil(plugins)
	return PluginFile{TotalCount: len(plugins), Plugins: plugins}
}

// NewHookFile returns the empty hooks placeholder.
func NewHookFile() HookFile {
	return HookFile{Hooks: []json.RawMessage{}, Note: "No hooks found in this repository"}
}

// NewMCPFile returns the empty MCP placeholder.
func NewMCPFile() MCPFile {
	return MCPFile{MCPs: []json.RawMessage{}, Note: "No MCP servers found in this repository"}
}

// NewPluginSplit groups one plugin's artifacts and counts them.
func NewPluginSplit(plugin string, agents []Agent, commands []Command, skills []Skill) PluginSplit {
	agents, commands, skills = nonNil(agents), nonNil(commands), nonNil(skills)
	return PluginSplit{
		Plugin:   plugin,
		Agents:   agents,
		Commands: commands,
		Skills:   skills,
		Counts:   Counts{Agents: len(agents), Commands: len(commands), Skills: len(skills)},
	}
}

// NewAgentMetaFile projects agents to metadata.
func NewAgentMetaFile(agents []Agent) AgentMetaFile {
	meta := make([]AgentMeta, len(agents))
	for i, a := range agents {
		meta[i] = a.Meta()
	}
	return AgentMetaFile{TotalCount: len(meta), Note: MetadataNote, Agents: meta}
}

// NewCommandMetaFile projects commands to metadata.
func NewCommandMetaFile(commands []Command) CommandMetaFile {
	meta := make([]CommandMeta, len(commands))
	for i, c := range commands {
		meta[i] = c.Meta()
	}
	return CommandMetaFile{TotalCount: len(meta), Note: MetadataNote, Commands: meta}
}

// NewSkillMetaFile projects skills to metadata.
func NewSkillMetaFile(skills []Skill) SkillMetaFile {
	meta := make([]SkillMeta, len(skills))
	for i, s := range skills {
		meta[i] = s.Meta()
	}
	return SkillMetaFile{TotalCount: len(meta), Note: MetadataNote, Skills: meta}
}
