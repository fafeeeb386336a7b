package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/gorewood/xmlifyme/internal/config"
	"github.com/gorewood/xmlifyme/internal/output"
)

// initFlags holds the command-line flags for the init command.
type initFlags struct {
	dryRun       bool
	sample       bool
	noConfig     bool
	configFormat string
}

// initStepResult tracks the result of a single initialization step.
type initStepResult struct {
	Name    string `json:"name"`
	Status  string `json:"status"` // "ok", "skipped", "failed", "dry_run"
	Path    string `json:"path"`
	Message string `json:"message,omitempty"`
}

// initStyleSet holds lipgloss styles for init output.
type initStyleSet struct {
	heading lipgloss.Style
	pass    lipgloss.Style
	skip    lipgloss.Style
	fail    lipgloss.Style
	dim     lipgloss.Style
	accent  lipgloss.Style
}

// initStyles returns a style set; unstyled when styled is false.
func initStyles(styled bool) initStyleSet {
	if !styled {
		return initStyleSet{}
	}
	return initStyleSet{
		heading: lipgloss.NewStyle().Bold(true),
		pass:    lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "10", Dark: "10"}),
		skip:    lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "8", Dark: "7"}),
		fail:    lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "9", Dark: "9"}),
		dim:     lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "8", Dark: "7"}),
		accent:  lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "12", Dark: "12"}),
	}
}

// sampleInput is written by init --sample.
const sampleInput = `[
  {"name": "example", "processxml": "<greeting>hello</greeting>"}
]
`

// newInitCmd creates the init command.
func newInitCmd(opts *rootOptions) *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the data and output directories and a starter config",
		Long: `Prepare a base directory for xmlifyme.

This command creates:
  - The data/ directory and an input.json holding an empty array
  - The output/ directory
  - A config file with the default settings in the config directory

Existing files are never overwritten, so the command is safe to run
multiple times.

Examples:
  xmlifyme init                       # Set up next to the executable
  xmlifyme init --dir ./job --sample  # Set up ./job with one example record
  xmlifyme init --config-format toml  # Write config.toml instead of config.yaml
  xmlifyme init --dry-run             # Show what would be done`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, opts, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "Show what would be done without doing it")
	cmd.Flags().BoolVar(&flags.sample, "sample", false, "Write an example record instead of an empty array")
	cmd.Flags().BoolVar(&flags.noConfig, "no-config", false, "Skip writing the config file")
	cmd.Flags().StringVar(&flags.configFormat, "config-format", "yaml", "Config file format: yaml or toml")

	return cmd
}

// runInit executes the init command.
func runInit(cmd *cobra.Command, opts *rootOptions, flags *initFlags) error {
	printer, err := newPrinter(cmd, opts)
	if err != nil {
		return fail(newPlainPrinter(cmd, opts), err)
	}
	styles := initStyles(printer.IsStyled())

	configPath, err := initConfigPath(opts, flags)
	if err != nil {
		return fail(printer, err)
	}

	// The config file named by --config is what init creates, so it is
	// not required to exist yet.
	resolveOpts := *opts
	if _, statErr := os.Stat(opts.configFile); opts.configFile != "" && statErr != nil {
		resolveOpts.configFile = ""
	}
	cfg, err := resolveConfig(&resolveOpts)
	if err != nil {
		return fail(printer, err)
	}

	content := "[]\n"
	if flags.sample {
		content = sampleInput
	}

	steps := []initStep{
		dirStep("data_dir", cfg.InputDir()),
		fileStep("input_file", cfg.InputPath, func() error {
			return os.WriteFile(cfg.InputPath, []byte(content), 0o644)
		}),
		dirStep("output_dir", cfg.OutputDir),
	}
	if !flags.noConfig {
		steps = append(steps, fileStep("config_file", configPath, func() error {
			return config.SaveFile(configPath, config.DefaultFile())
		}))
	}

	if !printer.IsJSON() {
		heading := "Initializing xmlifyme"
		if flags.dryRun {
			heading = "Dry run: xmlifyme init"
		}
		printer.Print("%s\n\n", styles.heading.Render(heading))
	}

	results := make([]initStepResult, 0, len(steps))
	failed := 0
	for _, step := range steps {
		result := step.run(flags.dryRun)
		if result.Status == "failed" {
			failed++
		}
		results = append(results, result)
		if !printer.IsJSON() {
			printStepResult(printer, styles, result)
		}
	}

	if printer.IsJSON() {
		status := "ok"
		switch {
		case failed > 0:
			status = "failed"
		case flags.dryRun:
			status = "dry_run"
		}
		if err := printer.WriteJSON(map[string]any{"status": status, "steps": results}); err != nil {
			return fail(printer, err)
		}
	}

	if failed > 0 {
		err := output.NewSystemError(fmt.Sprintf("%d init steps failed", failed))
		if !printer.IsJSON() {
			printer.Error(err)
		}
		return err
	}
	if !flags.dryRun && !printer.IsJSON() {
		printNextSteps(printer, styles, cfg)
	}
	return nil
}

// initConfigPath returns where init writes the config file: --config if
// given, otherwise config.<format> in the config directory.
func initConfigPath(opts *rootOptions, flags *initFlags) (string, error) {
	if opts.configFile != "" {
		return absPath(opts.configFile), nil
	}
	switch flags.configFormat {
	case "yaml", "toml":
	default:
		return "", output.NewUserError(fmt.Sprintf("--config-format must be yaml or toml (got %q)", flags.configFormat))
	}
	dir := config.Dir()
	if dir == "" {
		return "", output.NewUserError("cannot determine the config directory; pass --config")
	}
	return filepath.Join(dir, "config."+flags.configFormat), nil
}

// initStep creates one path unless it already exists.
type initStep struct {
	name   string
	path   string
	isDir  bool
	create func() error
}

func dirStep(name, path string) initStep {
	return initStep{name: name, path: path, isDir: true, create: func() error {
		return os.MkdirAll(path, 0o755)
	}}
}

func fileStep(name, path string, create func() error) initStep {
	return initStep{name: name, path: path, create: create}
}

// run performs the step, or describes it when dryRun is set.
func (s initStep) run(dryRun bool) initStepResult {
	result := initStepResult{Name: s.name, Path: s.path}

	info, err := os.Stat(s.path)
	switch {
	case err == nil && info.IsDir() != s.isDir:
		result.Status = "failed"
		result.Message = "exists with the wrong type"
		return result
	case err == nil:
		result.Status = "skipped"
		result.Message = "already exists"
		return result
	case !errors.Is(err, os.ErrNotExist):
		result.Status = "failed"
		result.Message = err.Error()
		return result
	}

	if dryRun {
		result.Status = "dry_run"
		result.Message = "would create"
		return result
	}

	if err := s.create(); err != nil {
		result.Status = "failed"
		result.Message = err.Error()
		return result
	}
	result.Status = "ok"
	result.Message = "created"
	return result
}
