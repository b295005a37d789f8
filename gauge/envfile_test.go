package gauge

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestParseEnvVars(t *testing.T) {
	input := `
# comment line
FOO=bar
export BAZ=qux
QUOTED="hello world"
SINGLE='single quoted'
EMPTY=
malformed line without equals
`
	env, err := ParseEnvVars(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseEnvVars() error: %v", err)
	}

	want := map[string]string{
		"FOO":    "bar",
		"BAZ":    "qux",
		"QUOTED": "hello world",
		"SINGLE": "single quoted",
		"EMPTY":  "",
	}
	if !reflect.DeepEqual(env, want) {
		t.Errorf("ParseEnvVars() = %v, want %v", env, want)
	}
}

func TestLoadEnvFile_Missing(t *testing.T) {
	env, err := LoadEnvFile(filepath.Join(t.TempDir(), "absent.env"))
	if err != nil {
		t.Fatalf("LoadEnvFile() error: %v (missing files are not an error)", err)
	}
	if len(env) != 0 {
		t.Errorf("LoadEnvFile() = %v, want empty map", env)
	}
}

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte("GAUGE_LOG_LEVEL=debug\n"), 0644); err != nil {
		t.Fatal(err)
	}

	env, err := LoadEnvFile(path)
	if err != nil {
		t.Fatalf("LoadEnvFile() error: %v", err)
	}
	if env["GAUGE_LOG_LEVEL"] != "debug" {
		t.Errorf("env = %v, want GAUGE_LOG_LEVEL=debug", env)
	}
}
