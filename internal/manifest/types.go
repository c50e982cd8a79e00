package manifest

// Marketplace is the top-level manifest document.
type Marketplace struct {
	Name    string   `json:"name,omitempty"`
	Plugins []Plugin `json:"plugins"`
}

// Plugin is one manifest entry. Artifact paths are relative to Source.
type Plugin struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Version     string   `json:"version"`
	Category    string   `json:"category,omitempty"`
	Keywords    []string `json:"keywords,omitempty"`
	Source      string   `json:"source"`
	Agents      []string `json:"agents,omitempty"`
	Commands    []string `json:"commands,omitempty"`
	Skills      []string `json:"skills,omitempty"`
}

// Kind identifies which artifact list a path was declared in.
type Kind string

// Kind constants.
const (
	KindAgent   Kind = "agent"
	KindCommand Kind = "command"
	KindSkill   Kind = "skill"
)

// CategoryOr returns the plugin category, or fallback when none is declared.
func (p Plugin) CategoryOr(fallback string) string {
	if p.Category == "" {
		return fallback
	}
	return p.Category
}

// KeywordList returns the plugin keywords, never nil.
func (p Plugin) KeywordList() []string {
	if p.Keywords == nil {
		return []string{}
	}
	return p.Keywords
}
