package gauge

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// Task executes gauge operations for one Config. It holds no state
// beyond the configuration and output sinks; every public operation is
// independently invocable.
type Task struct {
	cfg    Config
	logger Logger

	// Stdout and Stderr receive the captured gauge output after each
	// invocation completes. They default to the process streams;
	// embedders and tests may redirect them.
	Stdout io.Writer
	Stderr io.Writer
}

// NewTask creates a task executor for cfg. A nil logger discards
// adapter events.
func NewTask(cfg Config, logger Logger) *Task {
	if logger == nil {
		logger = NopLogger{}
	}
	return &Task{
		cfg:    cfg,
		logger: logger,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Config returns the task's configuration value.
func (t *Task) Config() Config {
	return t.cfg
}

// ResolveExecutable locates the gauge binary: <GaugeRoot>/bin/gauge when
// a root is configured and the file exists, otherwise a PATH lookup.
// Resolution is repeated on every call so environment changes between
// invocations are honoured.
func (t *Task) ResolveExecutable() (string, error) {
	if t.cfg.GaugeRoot != "" {
		rooted := filepath.Join(t.cfg.GaugeRoot, "bin", "gauge")
		if _, err := os.Stat(rooted); err == nil {
			return rooted, nil
		}
	}

	if path, err := exec.LookPath("gauge"); err == nil {
		return path, nil
	}

	return "", fmt.Errorf("%w: install gauge or set gauge_root in the configuration", ErrExecutableNotFound)
}

// Run executes gauge specs. When explicit spec paths are given, the
// first argv token equal to the configured specs dir is removed and the
// paths are appended as trailing positionals, so explicit specs replace
// directory discovery while derived flags stay in effect. The match is
// plain string equality over the whole argv; a flag value that happens
// to equal the specs dir is removed instead of the positional.
func (t *Task) Run(specs []string) (bool, error) {
	exe, err := t.ResolveExecutable()
	if err != nil {
		return false, err
	}

	argv := append([]string{exe, "run"}, t.cfg.CommandArgs()...)

	if len(specs) > 0 {
		if t.cfg.SpecsDir != "" {
			for i, tok := range argv {
				if tok == t.cfg.SpecsDir {
					argv = append(argv[:i], argv[i+1:]...)
					break
				}
			}
		}
		argv = append(argv, specs...)
	}

	return t.exec(argv)
}

// Validate runs gauge validate over the configured specs dir.
func (t *Task) Validate() (bool, error) {
	exe, err := t.ResolveExecutable()
	if err != nil {
		return false, err
	}

	argv := []string{exe, "validate"}
	if t.cfg.SpecsDir != "" {
		argv = append(argv, t.cfg.SpecsDir)
	}

	return t.exec(argv)
}

// FormatSpecs runs gauge format over the configured specs dir.
func (t *Task) FormatSpecs() (bool, error) {
	exe, err := t.ResolveExecutable()
	if err != nil {
		return false, err
	}

	argv := []string{exe, "format"}
	if t.cfg.SpecsDir != "" {
		argv = append(argv, t.cfg.SpecsDir)
	}

	return t.exec(argv)
}

// InstallPlugin installs a gauge plugin, optionally pinned to a version.
func (t *Task) InstallPlugin(name, version string) (bool, error) {
	exe, err := t.ResolveExecutable()
	if err != nil {
		return false, err
	}

	argv := []string{exe, "install", name}
	if version != "" {
		argv = append(argv, "--version", version)
	}

	return t.exec(argv)
}

// exec is the shared subprocess primitive: spawn argv with the composed
// environment in the configured working directory, capture stdout and
// stderr in full, then echo both to the task's sinks. Exit code 0 is
// true; any non-zero exit is false with a nil error. Only a process that
// cannot be spawned at all is an error.
func (t *Task) exec(argv []string) (bool, error) {
	workDir := t.cfg.ProjectDir
	if workDir == "" {
		if wd, err := os.Getwd(); err == nil {
			workDir = wd
		}
	}

	runID := uuid.NewString()[:8]
	t.logger.Info("running gauge", map[string]any{
		"run_id":  runID,
		"command": strings.Join(argv, " "),
		"dir":     workDir,
	})

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Dir = workDir
	cmd.Env = flattenEnv(t.cfg.Environment())

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	if stdout.Len() > 0 {
		t.Stdout.Write(stdout.Bytes()) //nolint:errcheck
	}
	if stderr.Len() > 0 {
		t.Stderr.Write(stderr.Bytes()) //nolint:errcheck
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			t.logger.Debug("gauge exited non-zero", map[string]any{
				"run_id": runID,
				"code":   exitErr.ExitCode(),
			})
			return false, nil
		}
		return false, fmt.Errorf("%w: %v", ErrExecFailed, err)
	}

	t.logger.Debug("gauge exited", map[string]any{"run_id": runID, "code": 0})
	return true, nil
}

// flattenEnv converts an environment map to the key=value slice form
// exec.Cmd expects, in stable order.
func flattenEnv(env map[string]string) []string {
	keys := make([]string, 0, len(env))
	for k := range env {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]string, 0, len(env))
	for _, k := range keys {
		out = append(out, k+"="+env[k])
	}
	return out
}
