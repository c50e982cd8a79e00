package catalog

// PriorityHigh is the tier the priority split materializes by default.
const PriorityHigh = "high"

// Recommendation references an agent, command, or skill by name.
type Recommendation struct {
	Name     string `json:"name"`
	Priority string `json:"priority"`
}

// RecommendationDoc is a curated collection (recommended-<name>.json).
type RecommendationDoc struct {
	Name        string           `json:"name,omitempty"`
	Description string           `json:"description,omitempty"`
	Agents      []Recommendation `json:"agents"`
	Commands    []Recommendation `json:"commands"`
	Skills      []Recommendation `json:"skills"`
}

// NameSet is a set of artifact names per entity type.
type NameSet struct {
	Agents   map[string]bool
	Commands map[string]bool
	Skills   map[string]bool
}

// TierNames unions the names tagged with tier across docs.
func TierNames(docs []*RecommendationDoc, tier string) NameSet {
	set := NameSet{
		Agents:   make(map[string]bool),
		Commands: make(map[string]bool),
		Skills:   make(map[string]bool),
	}
	for _, doc := range docs {
		collect(set.Agents, doc.Agents, tier)
		collect(set.Commands, doc.Commands, tier)
		collect(set.Skills, doc.Skills, tier)
	}
	return set
}

func collect(dst map[string]bool, recs []Recommendation, tier string) {
	for _, r := range recs {
		if r.Priority == tier {
			dst[r.Name] = true
		}
	}
}

// PriorityLabel returns the recommendation priority for display, or "N/A".
func (r Recommendation) PriorityLabel() string {
	if r.Priority == "" {
		return "N/A"
	}
	return r.Priority
}
