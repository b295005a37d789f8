// Package cmd implements the gaugebuild CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sorour488/gaugebuild/gauge"
)

var (
	cfgFile    string
	projectDir string
	gaugeRoot  string
	verbose    bool

	appVersion = "dev"
)

var rootCmd = &cobra.Command{
	Use:           "gaugebuild",
	Short:         "gaugebuild — run Gauge tests from your build tool",
	Long:          "gaugebuild translates declarative configuration into invocations of the Gauge test runner: run, validate, and format specs, and install Gauge plugins.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "path to configuration file (pyproject.toml, gauge.toml, or gauge.yaml)")
	rootCmd.PersistentFlags().StringVar(&projectDir, "project-dir", "", "path to the gauge project directory")
	rootCmd.PersistentFlags().StringVar(&gaugeRoot, "gauge-root", "", "path to the gauge installation root")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(formatCmd)
	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(configCmd)
}

// SetVersionInfo sets the version and commit for display.
func SetVersionInfo(version, commit string) {
	appVersion = version
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(fmt.Sprintf("gaugebuild %s (commit: %s)\n", version, commit))
}

// Execute runs the root command, mapping any failure to exit code 1.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorLine(err.Error()))
		os.Exit(1)
	}
}

// newLogger builds the CLI's structured logger on stderr so gauge's own
// output stays clean on stdout.
func newLogger() gauge.Logger {
	return gauge.NewJSONLogger(os.Stderr, verbose)
}

// globalOverrides collects the persistent flags that apply to every
// subcommand's override map.
func globalOverrides() map[string]any {
	overrides := map[string]any{}
	if projectDir != "" {
		overrides["project_dir"] = projectDir
	}
	if gaugeRoot != "" {
		overrides["gauge_root"] = gaugeRoot
	}
	return overrides
}
