package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrMissingKey is returned when a manifest lacks a key extraction depends on.
var ErrMissingKey = errors.New("missing required key")

// requiredPluginKeys are looked up on every plugin entry.
var requiredPluginKeys = []string{"name", "description", "version", "source"}

// Load reads and decodes a marketplace manifest. A document without a
// plugins list, or a plugin without name, description, version, or source,
// is rejected before any field defaults to its zero value.
func Load(path string) (*Marketplace, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	if err := checkRequired(data); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}

	var m Marketplace
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	return &m, nil
}

func checkRequired(data []byte) error {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	raw, ok := doc["plugins"]
	if !ok {
		return fmt.Errorf("%w %q", ErrMissingKey, "plugins")
	}

	var plugins []map[string]json.RawMessage
	if err := json.Unmarshal(raw, &plugins); err != nil {
		return fmt.Errorf("decoding plugins: %w", err)
	}
	for i, p := range plugins {
		for _, key := range requiredPluginKeys {
			if _, ok := p[key]; !ok {
				return fmt.Errorf("%w %q in plugins[%d]", ErrMissingKey, key, i)
			}
		}
	}
	return nil
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
