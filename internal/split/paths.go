package split

import "path/filepath"

// File name patterns shared with the importer's selectors.
const (
	PriorityGlob = "*-priority-%s.json"
	CategoryGlob = "*-category-%s.json"
	PluginGlob   = "plugin-*.json"
)

func priorityPath(dir, kind, tier string) string {
	return filepath.Join(dir, kind+"-priority-"+tier+".json")
}

func categoryPath(dir, kind, category string) string {
	return filepath.Join(dir, kind+"-category-"+category+".json")
}

// PluginPath returns the combined split file of one plugin.
func PluginPath(dir, plugin string) string {
	return filepath.Join(dir, "plugin-"+plugin+".json")
}
