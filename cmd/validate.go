package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sorour488/gaugebuild/gauge"
)

var validateSpecsDir string

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the Gauge project",
	RunE:  runValidate,
}

func init() {
	validateCmd.Flags().StringVar(&validateSpecsDir, "specs-dir", "specs", "gauge specs directory path")
}

func runValidate(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	overrides := globalOverrides()
	overrides["specs_dir"] = validateSpecsDir

	logger.Debug("validating gauge project with configuration", map[string]any{"overrides": overrides})

	plugin, err := gauge.NewPlugin(cfgFile, logger)
	if err != nil {
		return err
	}
	task, err := plugin.CreateTask(overrides)
	if err != nil {
		return err
	}

	ok, err := task.Validate()
	if err != nil {
		return fmt.Errorf("validating gauge project: %w", err)
	}
	if !ok {
		return fmt.Errorf("gauge project validation failed")
	}

	fmt.Println(successLine("Gauge project validation completed successfully"))
	return nil
}
