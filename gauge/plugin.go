package gauge

import (
	"errors"
	"fmt"
	"os"

	"github.com/sorour488/gaugebuild/config"
)

// Plugin is the façade build hosts drive: it loads a base configuration
// once and hands out per-invocation task executors with overrides merged
// on top.
type Plugin struct {
	cfg    Config
	logger Logger
}

// NewPlugin loads the base configuration and returns a façade over it.
// An empty configFile, a missing file, or a missing gauge section all
// yield the default configuration. A malformed file degrades to defaults
// with a logged warning; an invalid field value (for example nodes < 1)
// is a construction failure and is returned as an error.
func NewPlugin(configFile string, logger Logger) (*Plugin, error) {
	if logger == nil {
		logger = NopLogger{}
	}

	cfg := DefaultConfig()
	if configFile != "" {
		section, err := config.Load(configFile)
		switch {
		case errors.Is(err, os.ErrNotExist):
			logger.Debug("config file not found, using defaults", map[string]any{"file": configFile})
		case err != nil:
			logger.Warn("falling back to default configuration", map[string]any{
				"file":  configFile,
				"error": err.Error(),
			})
		case len(section) > 0:
			for _, w := range config.CheckSection(section) {
				logger.Warn(w, map[string]any{"file": configFile})
			}
			cfg, err = FromMap(section)
			if err != nil {
				return nil, fmt.Errorf("loading gauge configuration from %s: %w", configFile, err)
			}
		}
	}

	for _, w := range cfg.Warnings() {
		logger.Warn(w, nil)
	}

	return &Plugin{cfg: cfg, logger: logger}, nil
}

// Config returns the loaded base configuration.
func (p *Plugin) Config() Config {
	return p.cfg
}

// CreateTask merges overrides onto the base configuration and returns a
// task executor for the result. With no overrides the loaded Config is
// reused as-is; it is immutable, so sharing is safe.
func (p *Plugin) CreateTask(overrides map[string]any) (*Task, error) {
	cfg, err := p.cfg.Merge(overrides)
	if err != nil {
		return nil, err
	}
	return NewTask(cfg, p.logger), nil
}

// RunSpecs runs gauge specs with the given overrides applied.
func (p *Plugin) RunSpecs(overrides map[string]any) (bool, error) {
	task, err := p.CreateTask(overrides)
	if err != nil {
		return false, err
	}
	return task.Run(nil)
}

// ValidateProject validates the gauge project with overrides applied.
func (p *Plugin) ValidateProject(overrides map[string]any) (bool, error) {
	task, err := p.CreateTask(overrides)
	if err != nil {
		return false, err
	}
	return task.Validate()
}

// FormatSpecs formats the gauge specs with overrides applied.
func (p *Plugin) FormatSpecs(overrides map[string]any) (bool, error) {
	task, err := p.CreateTask(overrides)
	if err != nil {
		return false, err
	}
	return task.FormatSpecs()
}
