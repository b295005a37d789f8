// Package config implements the configuration-file boundary: locating a
// project file, extracting its gauge section as a key-value mapping, and
// advisory schema checking of that mapping.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// candidateFiles is the discovery order within a directory.
var candidateFiles = []string{"pyproject.toml", "gauge.toml", "gauge.yaml", "gauge.yml"}

// Discover returns the path of the first configuration file found in
// dir, or "" when none exists.
func Discover(dir string) string {
	for _, name := range candidateFiles {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// Load reads the file at path and returns its gauge section as a
// mapping. TOML and YAML are dispatched on extension. The section is
// looked up under `tool.gauge` first, then top-level `gauge`; a file
// without either yields an empty mapping and no error.
func Load(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var doc map[string]any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	default:
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	return gaugeSection(doc), nil
}

// gaugeSection extracts the gauge table from a parsed document.
func gaugeSection(doc map[string]any) map[string]any {
	if tool, ok := doc["tool"].(map[string]any); ok {
		if section, ok := tool["gauge"].(map[string]any); ok {
			return section
		}
	}
	if section, ok := doc["gauge"].(map[string]any); ok {
		return section
	}
	return map[string]any{}
}
