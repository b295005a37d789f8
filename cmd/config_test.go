package cmd

import (
	"os"
	"strings"
	"testing"
)

func TestRunConfigInit_WritesSample(t *testing.T) {
	resetGlobals(t)
	chdir(t, t.TempDir())

	oldNoInput := configNoInput
	configNoInput = true
	defer func() { configNoInput = oldNoInput }()

	if err := runConfigInit(); err != nil {
		t.Fatalf("runConfigInit() error: %v", err)
	}

	data, err := os.ReadFile("gauge.toml")
	if err != nil {
		t.Fatalf("reading gauge.toml: %v", err)
	}
	if !strings.Contains(string(data), "[gauge]") {
		t.Errorf("gauge.toml = %q, want a [gauge] table", data)
	}
	if !strings.Contains(string(data), `specs_dir = "specs"`) {
		t.Errorf("gauge.toml = %q, want the default specs dir", data)
	}
}

func TestRunConfigInit_RefusesOverwrite(t *testing.T) {
	resetGlobals(t)
	chdir(t, t.TempDir())

	existing := "[gauge]\nspecs_dir = \"mine\"\n"
	if err := os.WriteFile("gauge.toml", []byte(existing), 0644); err != nil {
		t.Fatal(err)
	}

	oldNoInput := configNoInput
	configNoInput = true
	defer func() { configNoInput = oldNoInput }()

	if err := runConfigInit(); err != nil {
		t.Fatalf("runConfigInit() error: %v", err)
	}

	data, err := os.ReadFile("gauge.toml")
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != existing {
		t.Error("runConfigInit() must not overwrite an existing gauge.toml")
	}
}

func TestRunConfigShow_Discovered(t *testing.T) {
	resetGlobals(t)
	chdir(t, t.TempDir())

	if err := os.WriteFile("gauge.toml", []byte("[gauge]\ntags = \"smoke\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfgFile = ""
	if err := runConfigShow(); err != nil {
		t.Fatalf("runConfigShow() error: %v", err)
	}
}

func TestRunConfigShow_NoConfig(t *testing.T) {
	resetGlobals(t)
	chdir(t, t.TempDir())

	cfgFile = ""
	if err := runConfigShow(); err != nil {
		t.Fatalf("runConfigShow() error: %v (absence is not an error)", err)
	}
}

func TestRunConfigShow_ExplicitPathMissingSection(t *testing.T) {
	resetGlobals(t)
	dir := t.TempDir()
	chdir(t, dir)

	if err := os.WriteFile("pyproject.toml", []byte("[tool.poetry]\nname = \"demo\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfgFile = "pyproject.toml"
	if err := runConfigShow(); err != nil {
		t.Fatalf("runConfigShow() error: %v", err)
	}
}
