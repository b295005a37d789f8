package cmd

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/sorour488/gaugebuild/config"
	"github.com/sorour488/gaugebuild/internal/tui"
)

var (
	configShow    bool
	configInit    bool
	configNoInput bool
)

// sampleConfig mirrors the gauge section the interactive form produces,
// with commented per-environment examples for manual editing.
const sampleConfig = `[gauge]
specs_dir = "specs"
in_parallel = false
nodes = 1
env = "default"
additional_flags = ""

[gauge.environment_variables]
# EXAMPLE_KEY = "value"

# Example profiles for different environments:
# [gauge.environments.dev]
# env = "dev"
# additional_flags = "--verbose"
#
# [gauge.environments.ci]
# env = "ci"
# in_parallel = true
# nodes = 4
# additional_flags = "--simple-console"
`

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage gauge configuration",
	RunE:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&configShow, "show", false, "show the current configuration")
	configCmd.Flags().BoolVar(&configInit, "init", false, "initialise a gauge configuration file")
	configCmd.Flags().BoolVar(&configNoInput, "no-input", false, "write the static sample instead of prompting")
}

func runConfig(cmd *cobra.Command, args []string) error {
	switch {
	case configInit:
		return runConfigInit()
	case configShow:
		return runConfigShow()
	default:
		fmt.Println("Use --show to display the current configuration or --init to create one.")
		return nil
	}
}

func runConfigShow() error {
	path := cfgFile
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting working directory: %w", err)
		}
		path = config.Discover(wd)
	}

	if path == "" {
		fmt.Println("No gauge configuration found.")
		fmt.Println(dimStyle.Render("Use 'gaugebuild config --init' to create a configuration file."))
		return nil
	}

	section, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if len(section) == 0 {
		fmt.Printf("No gauge section found in %s.\n", path)
		return nil
	}

	fmt.Printf("Gauge configuration (%s):\n", path)
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	keys := make([]string, 0, len(section))
	for k := range section {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(w, "  %s\t%v\n", k, section[k])
	}
	w.Flush() //nolint:errcheck

	for _, warning := range config.CheckSection(section) {
		fmt.Fprintln(os.Stderr, warnLine(warning))
	}
	return nil
}

func runConfigInit() error {
	const target = "gauge.toml"

	if _, err := os.Stat(target); err == nil {
		fmt.Println(warnLine(target + " already exists. Merge the sample below manually:"))
		fmt.Print(sampleConfig, "\n")
		return nil
	}

	content := sampleConfig
	if !configNoInput && term.IsTerminal(int(os.Stdin.Fd())) {
		answers, err := tui.RunForm()
		if err != nil {
			return fmt.Errorf("running configuration form: %w", err)
		}
		if answers == nil {
			fmt.Println(dimStyle.Render("Cancelled."))
			return nil
		}
		content = renderConfig(answers)
	}

	if err := os.WriteFile(target, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", target, err)
	}

	fmt.Println(successLine("Initialised gauge configuration in " + target))
	return nil
}

// renderConfig serialises form answers to a gauge.toml body.
func renderConfig(a *tui.Answers) string {
	out := "[gauge]\n"
	out += "specs_dir = " + strconv.Quote(a.SpecsDir) + "\n"
	out += "in_parallel = " + strconv.FormatBool(a.Parallel) + "\n"
	out += "nodes = " + strconv.Itoa(a.Nodes) + "\n"
	if a.Env != "" {
		out += "env = " + strconv.Quote(a.Env) + "\n"
	}
	if a.Tags != "" {
		out += "tags = " + strconv.Quote(a.Tags) + "\n"
	}
	if a.AdditionalFlags != "" {
		out += "additional_flags = " + strconv.Quote(a.AdditionalFlags) + "\n"
	}
	return out
}
