package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// fakeGaugeOnPath installs a recording gauge script first on PATH and
// returns the record file it writes.
func fakeGaugeOnPath(t *testing.T, exitCode int) string {
	t.Helper()
	dir := t.TempDir()
	script := fmt.Sprintf("#!/bin/sh\necho \"$@\" > \"$GAUGE_RECORD\"\nexit %d\n", exitCode)
	if err := os.WriteFile(filepath.Join(dir, "gauge"), []byte(script), 0755); err != nil {
		t.Fatalf("writing fake gauge: %v", err)
	}
	record := filepath.Join(dir, "record.txt")
	t.Setenv("PATH", dir)
	t.Setenv("GAUGE_RECORD", record)
	return record
}

// chdir changes into dir for the duration of the test, restoring the
// previous working directory on cleanup (t.Chdir needs Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("getting working directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("changing directory: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatalf("restoring working directory: %v", err)
		}
	})
}

// resetGlobals restores the persistent and run flags after a test.
func resetGlobals(t *testing.T) {
	t.Helper()
	oldCfg, oldProject, oldRoot, oldVerbose := cfgFile, projectDir, gaugeRoot, verbose
	oldSpecs, oldTags, oldParallel, oldNodes := runSpecsDir, runTags, runParallel, runNodes
	oldEnv, oldFlags, oldEnvFile := runEnv, runAdditionalFlags, runEnvFile
	t.Cleanup(func() {
		cfgFile, projectDir, gaugeRoot, verbose = oldCfg, oldProject, oldRoot, oldVerbose
		runSpecsDir, runTags, runParallel, runNodes = oldSpecs, oldTags, oldParallel, oldNodes
		runEnv, runAdditionalFlags, runEnvFile = oldEnv, oldFlags, oldEnvFile
	})
}

func TestRunRun_Success(t *testing.T) {
	record := fakeGaugeOnPath(t, 0)
	resetGlobals(t)
	chdir(t, t.TempDir())

	cfgFile = ""
	runSpecsDir = "specs"
	runTags = "smoke"
	runParallel = true
	runNodes = 4
	runEnv = "dev"
	runAdditionalFlags = ""
	runEnvFile = ""

	if err := runRun(runCmd, nil); err != nil {
		t.Fatalf("runRun() error: %v", err)
	}

	data, err := os.ReadFile(record)
	if err != nil {
		t.Fatalf("reading record: %v", err)
	}
	want := "run --tags smoke --parallel --n 4 --env dev specs\n"
	if string(data) != want {
		t.Errorf("gauge argv = %q, want %q", data, want)
	}
}

func TestRunRun_Failure(t *testing.T) {
	fakeGaugeOnPath(t, 1)
	resetGlobals(t)
	chdir(t, t.TempDir())

	cfgFile = ""
	runSpecsDir = "specs"
	runTags = ""
	runParallel = false
	runNodes = 1
	runEnv = ""
	runAdditionalFlags = ""
	runEnvFile = ""

	if err := runRun(runCmd, nil); err == nil {
		t.Fatal("runRun() = nil, want error for a failing gauge run")
	}
}

func TestRunRun_FlagsOverrideFile(t *testing.T) {
	record := fakeGaugeOnPath(t, 0)
	resetGlobals(t)
	dir := t.TempDir()
	chdir(t, dir)

	cfgPath := filepath.Join(dir, "gauge.toml")
	if err := os.WriteFile(cfgPath, []byte("[gauge]\nspecs_dir = \"features\"\ntags = \"slow\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfgFile = cfgPath
	runSpecsDir = "specs"
	runTags = ""
	runParallel = false
	runNodes = 1
	runEnv = ""
	runAdditionalFlags = ""
	runEnvFile = ""

	if err := runRun(runCmd, nil); err != nil {
		t.Fatalf("runRun() error: %v", err)
	}

	data, _ := os.ReadFile(record)
	// The specs-dir flag default replaces the file value, the file's
	// tags survive because the flag was unset.
	want := "run --tags slow specs\n"
	if string(data) != want {
		t.Errorf("gauge argv = %q, want %q", data, want)
	}
}

func TestRunRun_EnvFile(t *testing.T) {
	fakeGaugeOnPath(t, 0)
	resetGlobals(t)
	dir := t.TempDir()
	chdir(t, dir)

	envPath := filepath.Join(dir, "gauge.env")
	if err := os.WriteFile(envPath, []byte("GAUGE_LOG_LEVEL=debug\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfgFile = ""
	runSpecsDir = "specs"
	runTags = ""
	runParallel = false
	runNodes = 1
	runEnv = ""
	runAdditionalFlags = ""
	runEnvFile = envPath

	if err := runRun(runCmd, nil); err != nil {
		t.Fatalf("runRun() error: %v", err)
	}
}
