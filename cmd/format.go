package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sorour488/gaugebuild/gauge"
)

var formatSpecsDir string

var formatCmd = &cobra.Command{
	Use:   "format",
	Short: "Format Gauge specification files",
	RunE:  runFormat,
}

func init() {
	formatCmd.Flags().StringVar(&formatSpecsDir, "specs-dir", "specs", "gauge specs directory path")
}

func runFormat(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	overrides := globalOverrides()
	overrides["specs_dir"] = formatSpecsDir

	logger.Debug("formatting gauge specs with configuration", map[string]any{"overrides": overrides})

	plugin, err := gauge.NewPlugin(cfgFile, logger)
	if err != nil {
		return err
	}
	task, err := plugin.CreateTask(overrides)
	if err != nil {
		return err
	}

	ok, err := task.FormatSpecs()
	if err != nil {
		return fmt.Errorf("formatting gauge specs: %w", err)
	}
	if !ok {
		return fmt.Errorf("gauge specs formatting failed")
	}

	fmt.Println(successLine("Gauge specs formatting completed successfully"))
	return nil
}
