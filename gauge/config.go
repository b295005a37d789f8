// Package gauge adapts declarative build configuration to invocations of
// the Gauge test runner: a configuration value object, a task executor
// that shells out to the gauge binary, and a plugin façade that build
// hosts drive.
package gauge

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds the execution parameters for gauge tasks. It mirrors the
// option set of the Gradle gauge plugin. A Config is a plain value: never
// mutated after construction, only replaced via Merge.
type Config struct {
	SpecsDir             string
	Tags                 string
	InParallel           bool
	Nodes                int
	Env                  string
	AdditionalFlags      string
	ProjectDir           string
	GaugeRoot            string
	EnvironmentVariables map[string]string
}

// DefaultConfig returns the built-in defaults: specs dir "specs", one
// execution stream, no parallelism.
func DefaultConfig() Config {
	return Config{
		SpecsDir:             "specs",
		Nodes:                1,
		EnvironmentVariables: map[string]string{},
	}
}

// FromMap builds a Config from a key-value mapping, starting from
// defaults and overlaying the given keys. Keys are accepted in snake or
// kebab form. Unknown keys are ignored here; the config-file schema layer
// warns about them instead. Wrong-typed values and nodes < 1 fail with
// ErrInvalidConfig.
func FromMap(m map[string]any) (Config, error) {
	cfg := DefaultConfig()
	if err := cfg.apply(m); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) apply(m map[string]any) error {
	for key, val := range m {
		switch normalizeKey(key) {
		case "specs_dir":
			s, err := asString(key, val)
			if err != nil {
				return err
			}
			c.SpecsDir = s
		case "tags":
			s, err := asString(key, val)
			if err != nil {
				return err
			}
			c.Tags = s
		case "in_parallel":
			b, ok := val.(bool)
			if !ok {
				return fmt.Errorf("%w: %s must be a boolean, got %T", ErrInvalidConfig, key, val)
			}
			c.InParallel = b
		case "nodes":
			n, err := asInt(key, val)
			if err != nil {
				return err
			}
			c.Nodes = n
		case "env":
			s, err := asString(key, val)
			if err != nil {
				return err
			}
			c.Env = s
		case "additional_flags":
			s, err := asString(key, val)
			if err != nil {
				return err
			}
			c.AdditionalFlags = s
		case "project_dir":
			s, err := asString(key, val)
			if err != nil {
				return err
			}
			c.ProjectDir = s
		case "gauge_root":
			s, err := asString(key, val)
			if err != nil {
				return err
			}
			c.GaugeRoot = s
		case "environment_variables":
			ev, err := asStringMap(key, val)
			if err != nil {
				return err
			}
			c.EnvironmentVariables = ev
		}
	}

	if c.Nodes < 1 {
		return fmt.Errorf("%w: nodes must be at least 1, got %d", ErrInvalidConfig, c.Nodes)
	}
	if c.EnvironmentVariables == nil {
		c.EnvironmentVariables = map[string]string{}
	}
	return nil
}

// ToMap returns the full field set as a snake_case mapping. The
// environment-variables map is copied, so the result is safe to mutate.
func (c Config) ToMap() map[string]any {
	envVars := make(map[string]string, len(c.EnvironmentVariables))
	for k, v := range c.EnvironmentVariables {
		envVars[k] = v
	}
	return map[string]any{
		"specs_dir":             c.SpecsDir,
		"tags":                  c.Tags,
		"in_parallel":           c.InParallel,
		"nodes":                 c.Nodes,
		"env":                   c.Env,
		"additional_flags":      c.AdditionalFlags,
		"project_dir":           c.ProjectDir,
		"gauge_root":            c.GaugeRoot,
		"environment_variables": envVars,
	}
}

// Merge returns a new Config with the override keys replacing the
// corresponding fields of c. Replacement is shallow: an
// environment_variables override replaces the whole map, it is never
// merged key by key.
func (c Config) Merge(overrides map[string]any) (Config, error) {
	if len(overrides) == 0 {
		return c, nil
	}
	merged := c.ToMap()
	for k, v := range overrides {
		merged[normalizeKey(k)] = v
	}
	return FromMap(merged)
}

// CommandArgs converts the configuration to gauge command arguments. The
// order is a contract: tags pair, parallel flags, env pair, split
// additional flags, then the specs dir as the final positional token.
func (c Config) CommandArgs() []string {
	var args []string

	if c.Tags != "" {
		args = append(args, "--tags", c.Tags)
	}
	if c.InParallel {
		args = append(args, "--parallel")
		if c.Nodes > 1 {
			args = append(args, "--n", strconv.Itoa(c.Nodes))
		}
	}
	if c.Env != "" {
		args = append(args, "--env", c.Env)
	}
	if c.AdditionalFlags != "" {
		args = append(args, strings.Fields(c.AdditionalFlags)...)
	}
	if c.SpecsDir != "" {
		args = append(args, c.SpecsDir)
	}

	return args
}

// Environment composes the environment for a gauge subprocess: the
// ambient process environment (read fresh on every call, never cached),
// GAUGE_ROOT when a root is configured, then the configured environment
// variables, which win on collision.
func (c Config) Environment() map[string]string {
	env := make(map[string]string)
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			env[k] = v
		}
	}
	if c.GaugeRoot != "" {
		env["GAUGE_ROOT"] = c.GaugeRoot
	}
	for k, v := range c.EnvironmentVariables {
		env[k] = v
	}
	return env
}

// Warnings returns advisory findings about the configuration. A specs
// dir that does not exist is a warning, never a failure; the check is
// relative to the process working directory even when ProjectDir is set.
func (c Config) Warnings() []string {
	var warnings []string
	if c.SpecsDir != "" {
		if _, err := os.Stat(c.SpecsDir); err != nil {
			warnings = append(warnings, fmt.Sprintf("specs directory %q does not exist", c.SpecsDir))
		}
	}
	return warnings
}

func normalizeKey(key string) string {
	return strings.ReplaceAll(key, "-", "_")
}

func asString(key string, val any) (string, error) {
	s, ok := val.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s must be a string, got %T", ErrInvalidConfig, key, val)
	}
	return s, nil
}

func asInt(key string, val any) (int, error) {
	switch n := val.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case uint64:
		return int(n), nil
	case float64:
		if n != float64(int(n)) {
			return 0, fmt.Errorf("%w: %s must be an integer, got %v", ErrInvalidConfig, key, val)
		}
		return int(n), nil
	default:
		return 0, fmt.Errorf("%w: %s must be an integer, got %T", ErrInvalidConfig, key, val)
	}
}

func asStringMap(key string, val any) (map[string]string, error) {
	switch m := val.(type) {
	case map[string]string:
		out := make(map[string]string, len(m))
		for k, v := range m {
			out[k] = v
		}
		return out, nil
	case map[string]any:
		out := make(map[string]string, len(m))
		for k, v := range m {
			s, ok := v.(string)
			if !ok {
				return nil, fmt.Errorf("%w: %s.%s must be a string, got %T", ErrInvalidConfig, key, k, v)
			}
			out[k] = s
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %s must be a table of strings, got %T", ErrInvalidConfig, key, val)
	}
}
