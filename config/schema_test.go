package config

import (
	"strings"
	"testing"
)

func TestCheckSection_Valid(t *testing.T) {
	section := map[string]any{
		"specs_dir":   "specs",
		"tags":        "smoke",
		"in_parallel": true,
		"nodes":       int64(4),
		"environment_variables": map[string]any{
			"API_KEY": "secret",
		},
	}
	if warnings := CheckSection(section); len(warnings) != 0 {
		t.Errorf("CheckSection() = %v, want no warnings", warnings)
	}
}

func TestCheckSection_KebabKeys(t *testing.T) {
	section := map[string]any{"specs-dir": "specs", "in-parallel": false}
	if warnings := CheckSection(section); len(warnings) != 0 {
		t.Errorf("CheckSection() = %v, want kebab keys accepted", warnings)
	}
}

func TestCheckSection_UnknownKey(t *testing.T) {
	warnings := CheckSection(map[string]any{"spec_dir": "specs"})
	if len(warnings) != 1 {
		t.Fatalf("CheckSection() = %v, want one warning for the unknown key", warnings)
	}
	if !strings.Contains(warnings[0], "spec_dir") {
		t.Errorf("warning = %q, want it to name the unknown key", warnings[0])
	}
}

func TestCheckSection_WrongTypes(t *testing.T) {
	tests := []struct {
		name    string
		section map[string]any
	}{
		{"nodes as string", map[string]any{"nodes": "four"}},
		{"nodes below one", map[string]any{"nodes": int64(0)}},
		{"tags as bool", map[string]any{"tags": true}},
		{"env vars as list", map[string]any{"environment_variables": []any{"A=1"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if warnings := CheckSection(tt.section); len(warnings) == 0 {
				t.Errorf("CheckSection(%v) = no warnings, want at least one", tt.section)
			}
		})
	}
}
