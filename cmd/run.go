package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sorour488/gaugebuild/gauge"
)

var (
	runSpecsDir        string
	runTags            string
	runParallel        bool
	runNodes           int
	runEnv             string
	runAdditionalFlags string
	runEnvFile         string
)

var runCmd = &cobra.Command{
	Use:   "run [specs...]",
	Short: "Run Gauge specifications",
	RunE:  runRun,
}

func init() {
	runCmd.Flags().StringVar(&runSpecsDir, "specs-dir", "specs", "gauge specs directory path")
	runCmd.Flags().StringVar(&runTags, "tags", "", "filter specs by tags expression")
	runCmd.Flags().BoolVarP(&runParallel, "parallel", "p", false, "execute specs in parallel")
	runCmd.Flags().IntVarP(&runNodes, "nodes", "n", 1, "number of parallel execution streams")
	runCmd.Flags().StringVarP(&runEnv, "env", "e", "", "gauge environment to run against")
	runCmd.Flags().StringVar(&runAdditionalFlags, "additional-flags", "", "additional gauge flags (space-separated)")
	runCmd.Flags().StringVar(&runEnvFile, "env-file", "", "path to a KEY=VALUE file injected as environment variables")
}

func runRun(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	// specs_dir, in_parallel, and nodes carry their flag defaults into
	// the override map unconditionally, so they replace file values even
	// when the user did not set them. This matches the original CLI.
	overrides := globalOverrides()
	overrides["specs_dir"] = runSpecsDir
	overrides["in_parallel"] = runParallel
	overrides["nodes"] = runNodes
	if runTags != "" {
		overrides["tags"] = runTags
	}
	if runEnv != "" {
		overrides["env"] = runEnv
	}
	if runAdditionalFlags != "" {
		overrides["additional_flags"] = runAdditionalFlags
	}

	if runEnvFile != "" {
		envVars, err := gauge.LoadEnvFile(runEnvFile)
		if err != nil {
			return fmt.Errorf("loading env file: %w", err)
		}
		if len(envVars) > 0 {
			overrides["environment_variables"] = envVars
		}
	}

	logger.Debug("running gauge with configuration", map[string]any{"overrides": overrides, "specs": args})

	plugin, err := gauge.NewPlugin(cfgFile, logger)
	if err != nil {
		return err
	}
	task, err := plugin.CreateTask(overrides)
	if err != nil {
		return err
	}

	ok, err := task.Run(args)
	if err != nil {
		return fmt.Errorf("running gauge: %w", err)
	}
	if !ok {
		return fmt.Errorf("gauge execution failed")
	}

	fmt.Println(successLine("Gauge execution completed successfully"))
	return nil
}
