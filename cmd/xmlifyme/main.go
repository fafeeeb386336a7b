// Package main provides the entry point for the xmlifyme CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/gorewood/xmlifyme/internal/output"
)

// Build info set via ldflags at build time.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2024-01-01"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	code := run()
	os.Exit(code)
}

func run() int {
	cmd := newRootCmd()
	cmd.SetArgs(normalizeArgs(cmd, os.Args[1:]))
	err := fang.Execute(context.Background(), cmd,
		fang.WithVersion(buildVersion()),
		fang.WithErrorHandler(reportUnprinted),
	)
	return output.GetExitCode(err)
}

// reportUnprinted prints errors that did not come from a command's own
// reporting, such as flag parse failures. Commands return *ExitError
// only after printing it.
func reportUnprinted(w io.Writer, _ fang.Styles, err error) {
	var exitErr *output.ExitError
	if errors.As(err, &exitErr) {
		return
	}
	output.NewPrinter(w, false, output.IsTTY(w)).Error(err)
}

// rootOptions holds flag values shared by all commands.
type rootOptions struct {
	dir              string
	configFile       string
	input            string
	output           string
	extension        string
	color            string
	jsonMode         bool
	stripBackslashes bool
	failFast         bool
	watch            bool
	verbose          bool
}

const rootLong = `xmlifyme reads a JSON array of {"name", "processxml"} records and writes
each record's content to its own file, either wrapped in an XML envelope or
as a plain JSON string.

Modes:
  xml, x      Write <process_data> XML documents
  plain, p    Write the content as a JSON string
  help, h     Show this help

Modes are case-insensitive and may carry leading dashes (--xml, -p).

Paths:
  Input is read from <dir>/data/input.json and output is written to
  <dir>/output/, where <dir> is the directory holding the executable unless
  --dir is given. If the data directory is missing it is created and the
  run stops so you can add input.json.

Configuration (lowest to highest precedence):
  config.yaml, config.yml or config.toml in $XMLIFYME_CONFIG_HOME
  (default ~/.config/xmlifyme), .env and .env.local in <dir>,
  XMLIFYME_INPUT / XMLIFYME_OUTPUT / XMLIFYME_EXTENSION /
  XMLIFYME_STRIP_BACKSLASHES, then flags.`

// newRootCmd creates the root command for the xmlifyme CLI.
func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "xmlifyme [xml|plain|help]",
		Short: "Export JSON records to individual XML or plain files",
		Long:  rootLong,
		Example: `  xmlifyme xml                       # data/input.json -> output/*.xml as XML
  xmlifyme plain --ext .json         # JSON strings in output/*.json
  xmlifyme x --dir ./job --verbose   # use ./job/data and ./job/output
  xmlifyme inspect                   # list records without writing
  xmlifyme init --sample             # scaffold data/, output/ and a config file`,
		Version:       buildVersion(),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, opts, args)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.dir, "dir", "", "Base directory for data/ and output/ (default: executable directory)")
	pf.StringVar(&opts.configFile, "config", "", "Config file (.yaml, .yml or .toml)")
	pf.StringVar(&opts.input, "input", "", "Input JSON file (overrides <dir>/data/input.json)")
	pf.StringVar(&opts.output, "output", "", "Output directory (overrides <dir>/output)")
	pf.StringVar(&opts.extension, "ext", "", "Extension appended to each record name (default: .xml)")
	pf.BoolVar(&opts.stripBackslashes, "strip-backslashes", false, "Remove literal backslashes from the input before parsing")
	pf.BoolVar(&opts.jsonMode, "json", false, "Output in JSON format")
	pf.StringVar(&opts.color, "color", "auto", "Color output: auto, always or never")

	f := cmd.Flags()
	f.BoolVar(&opts.failFast, "fail-fast", false, "Stop at the first record that cannot be written")
	f.BoolVar(&opts.watch, "watch", false, "Keep running and re-export whenever the input file changes")
	f.BoolVar(&opts.verbose, "verbose", false, "Print a line for every record")

	// Configure lipgloss for TTY detection
	lipgloss.SetHasDarkBackground(true)

	cmd.AddCommand(newInitCmd(opts))
	cmd.AddCommand(newInspectCmd(opts))
	cmd.AddCommand(newServeCmd(opts))

	return cmd
}

// runRoot dispatches on the mode argument. No argument, or help, shows
// usage without touching the filesystem.
func runRoot(cmd *cobra.Command, opts *rootOptions, args []string) error {
	if len(args) == 0 {
		return cmd.Help()
	}

	format, help, err := parseModeArg(args[0])
	if err != nil {
		printer := newPlainPrinter(cmd, opts)
		printer.Error(err)
		return err
	}
	if help {
		return cmd.Help()
	}

	return runExport(cmd, opts, format)
}
