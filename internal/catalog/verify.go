package catalog

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/Masterminds/semver/v3"
)

// listKeys are the keys whose array length total_count must equal.
var listKeys = []string{"agents", "commands", "skills", "plugins", "hooks", "mcps"}

// Issue is a broken invariant found in a written file.
type Issue struct {
	File    string
	Message string
	// Warning issues are reported but do not fail verification.
	Warning bool
}

// VerifyFile checks the count invariants of one catalog, split, or metadata
// file and warns about plugin versions that are not semantic versions.
// Documents without total_count or counts (e.g. recommendations) pass.
func VerifyFile(path string) ([]Issue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	var issues []Issue
	add := func(warning bool, format string, args ...any) {
		issues = append(issues, Issue{File: path, Message: fmt.Sprintf(format, args...), Warning: warning})
	}

	if raw, ok := doc["total_count"]; ok {
		var total int
		if err := json.Unmarshal(raw, &total); err != nil {
			add(false, "total_count is not an integer")
		} else {
			found := false
			for _, key := range listKeys {
				n, ok, err := arrayLen(doc, key)
				if err != nil {
					add(false, "%s is not a list", key)
					continue
				}
				if !ok {
					continue
				}
				found = true
				if n != total {
					add(false, "total_count is %d but %s has %d entries", total, key, n)
				}
			}
			if !found {
				add(false, "total_count present without an entity list")
			}
		}
	}

	if raw, ok := doc["counts"]; ok {
		var counts Counts
		if err := json.Unmarshal(raw, &counts); err != nil {
			add(false, "counts is malformed")
		} else {
			for key, want := range map[string]int{"agents": counts.Agents, "commands": counts.Commands, "skills": counts.Skills} {
				n, _, err := arrayLen(doc, key)
				if err != nil {
					add(false, "%s is not a list", key)
					continue
				}
				if n != want {
					add(false, "counts.%s is %d but %s has %d entries", key, want, key, n)
				}
			}
		}
	}

	if raw, ok := doc["plugins"]; ok {
		var plugins []Plugin
		if err := json.Unmarshal(raw, &plugins); err == nil {
			for _, p := range plugins {
				if _, err := semver.NewVersion(p.Version); err != nil {
					add(true, "plugin %s has non-semver version %q", p.Name, p.Version)
				}
			}
		}
	}

	sort.SliceStable(issues, func(i, j int) bool { return issues[i].Message < issues[j].Message })
	return issues, nil
}

// VerifyDir runs VerifyFile over every .json file under dir.
func VerifyDir(dir string) ([]Issue, error) {
	var issues []Issue
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != ".json" {
			return nil
		}
		found, err := VerifyFile(path)
		if err != nil {
			return err
		}
		issues = append(issues, found...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return issues, nil
}

// arrayLen reports the length of doc[key] when it is a JSON array.
func arrayLen(doc map[string]json.RawMessage, key string) (int, bool, error) {
	raw, ok := doc[key]
	if !ok {
		return 0, false, nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return 0, true, err
	}
	return len(items), true, nil
}
