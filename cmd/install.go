package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sorour488/gaugebuild/gauge"
)

var installVersion string

var installCmd = &cobra.Command{
	Use:   "install <plugin>",
	Short: "Install a Gauge plugin",
	Args:  cobra.ExactArgs(1),
	RunE:  runInstall,
}

func init() {
	// -v is taken by --verbose, so --version has no shorthand.
	installCmd.Flags().StringVar(&installVersion, "version", "", "plugin version to install")
}

func runInstall(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	pluginName := args[0]

	overrides := globalOverrides()

	logger.Debug("installing gauge plugin", map[string]any{
		"plugin":  pluginName,
		"version": installVersion,
	})

	plugin, err := gauge.NewPlugin(cfgFile, logger)
	if err != nil {
		return err
	}
	task, err := plugin.CreateTask(overrides)
	if err != nil {
		return err
	}

	ok, err := task.InstallPlugin(pluginName, installVersion)
	if err != nil {
		return fmt.Errorf("installing gauge plugin: %w", err)
	}
	if !ok {
		return fmt.Errorf("failed to install gauge plugin %q", pluginName)
	}

	fmt.Println(successLine(fmt.Sprintf("Gauge plugin %q installed successfully", pluginName)))
	return nil
}
