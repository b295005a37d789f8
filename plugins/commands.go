package plugins

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sorour488/gaugebuild/gauge"
)

// RunCommand runs gauge specifications.
type RunCommand struct {
	SpecsDir        string
	Tags            string
	Parallel        bool
	Nodes           string
	Env             string
	AdditionalFlags string
	ProjectDir      string
	GaugeRoot       string
	Specs           string // comma-separated spec files
	ConfigFile      string
	Logger          gauge.Logger

	nodes int
}

func (c *RunCommand) Name() string        { return "run" }
func (c *RunCommand) Description() string { return "Run Gauge specifications" }

func (c *RunCommand) InitializeOptions() {
	*c = RunCommand{Logger: c.Logger}
}

// FinalizeOptions validates the node count. A parallel run with no
// explicit count defaults to two execution streams.
func (c *RunCommand) FinalizeOptions() error {
	c.nodes = 0
	if c.Nodes != "" {
		n, err := strconv.Atoi(c.Nodes)
		if err != nil {
			return fmt.Errorf("invalid nodes value %q: %w", c.Nodes, err)
		}
		if n < 1 {
			return fmt.Errorf("invalid nodes value %q: nodes must be at least 1", c.Nodes)
		}
		c.nodes = n
	}
	if c.Parallel && c.nodes == 0 {
		c.nodes = 2
	}
	return nil
}

func (c *RunCommand) Run() (bool, error) {
	overrides := map[string]any{}
	if c.SpecsDir != "" {
		overrides["specs_dir"] = c.SpecsDir
	}
	if c.Tags != "" {
		overrides["tags"] = c.Tags
	}
	if c.Parallel {
		overrides["in_parallel"] = true
	}
	if c.nodes > 0 {
		overrides["nodes"] = c.nodes
	}
	if c.Env != "" {
		overrides["env"] = c.Env
	}
	if c.AdditionalFlags != "" {
		overrides["additional_flags"] = c.AdditionalFlags
	}
	if c.ProjectDir != "" {
		overrides["project_dir"] = c.ProjectDir
	}
	if c.GaugeRoot != "" {
		overrides["gauge_root"] = c.GaugeRoot
	}

	var specs []string
	if c.Specs != "" {
		for _, s := range strings.Split(c.Specs, ",") {
			if s = strings.TrimSpace(s); s != "" {
				specs = append(specs, s)
			}
		}
	}

	plugin, err := gauge.NewPlugin(c.ConfigFile, c.Logger)
	if err != nil {
		return false, err
	}
	task, err := plugin.CreateTask(overrides)
	if err != nil {
		return false, err
	}
	return task.Run(specs)
}

// ValidateCommand validates a gauge project.
type ValidateCommand struct {
	SpecsDir   string
	ProjectDir string
	GaugeRoot  string
	ConfigFile string
	Logger     gauge.Logger
}

func (c *ValidateCommand) Name() string        { return "validate" }
func (c *ValidateCommand) Description() string { return "Validate Gauge project" }

func (c *ValidateCommand) InitializeOptions() {
	*c = ValidateCommand{Logger: c.Logger}
}

func (c *ValidateCommand) FinalizeOptions() error { return nil }

func (c *ValidateCommand) Run() (bool, error) {
	task, err := createTask(c.ConfigFile, c.Logger, dirOverrides(c.SpecsDir, c.ProjectDir, c.GaugeRoot))
	if err != nil {
		return false, err
	}
	return task.Validate()
}

// FormatCommand formats gauge specification files.
type FormatCommand struct {
	SpecsDir   string
	ProjectDir string
	GaugeRoot  string
	ConfigFile string
	Logger     gauge.Logger
}

func (c *FormatCommand) Name() string        { return "format" }
func (c *FormatCommand) Description() string { return "Format Gauge specification files" }

func (c *FormatCommand) InitializeOptions() {
	*c = FormatCommand{Logger: c.Logger}
}

func (c *FormatCommand) FinalizeOptions() error { return nil }

func (c *FormatCommand) Run() (bool, error) {
	task, err := createTask(c.ConfigFile, c.Logger, dirOverrides(c.SpecsDir, c.ProjectDir, c.GaugeRoot))
	if err != nil {
		return false, err
	}
	return task.FormatSpecs()
}

// InstallCommand installs a gauge plugin.
type InstallCommand struct {
	Plugin     string
	Version    string
	GaugeRoot  string
	ConfigFile string
	Logger     gauge.Logger
}

func (c *InstallCommand) Name() string        { return "install" }
func (c *InstallCommand) Description() string { return "Install a Gauge plugin" }

func (c *InstallCommand) InitializeOptions() {
	*c = InstallCommand{Logger: c.Logger}
}

func (c *InstallCommand) FinalizeOptions() error {
	if c.Plugin == "" {
		return fmt.Errorf("install: plugin name is required")
	}
	return nil
}

func (c *InstallCommand) Run() (bool, error) {
	overrides := map[string]any{}
	if c.GaugeRoot != "" {
		overrides["gauge_root"] = c.GaugeRoot
	}
	task, err := createTask(c.ConfigFile, c.Logger, overrides)
	if err != nil {
		return false, err
	}
	return task.InstallPlugin(c.Plugin, c.Version)
}

func dirOverrides(specsDir, projectDir, gaugeRoot string) map[string]any {
	overrides := map[string]any{}
	if specsDir != "" {
		overrides["specs_dir"] = specsDir
	}
	if projectDir != "" {
		overrides["project_dir"] = projectDir
	}
	if gaugeRoot != "" {
		overrides["gauge_root"] = gaugeRoot
	}
	return overrides
}

func createTask(configFile string, logger gauge.Logger, overrides map[string]any) (*gauge.Task, error) {
	plugin, err := gauge.NewPlugin(configFile, logger)
	if err != nil {
		return nil, err
	}
	return plugin.CreateTask(overrides)
}
