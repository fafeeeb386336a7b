package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gorewood/xmlifyme/internal/config"
	"github.com/gorewood/xmlifyme/internal/output"
)

// newPrinter builds the printer for a command from the --json and --color
// flags.
func newPrinter(cmd *cobra.Command, opts *rootOptions) (*output.Printer, error) {
	mode, err := output.ParseColorMode(opts.color)
	if err != nil {
		return nil, output.NewUserError(err.Error())
	}
	w := cmd.OutOrStdout()
	return output.NewPrinter(w, opts.jsonMode, mode.Styled(output.IsTTY(w))).
		WithStderr(cmd.ErrOrStderr()), nil
}

// newPlainPrinter is an unstyled printer for errors raised before the
// flags are known to be valid.
func newPlainPrinter(cmd *cobra.Command, opts *rootOptions) *output.Printer {
	return output.NewPrinter(cmd.OutOrStdout(), opts.jsonMode, false).WithStderr(cmd.ErrOrStderr())
}

// fail prints err and returns it as an *output.ExitError.
func fail(printer *output.Printer, err error) error {
	exitErr := output.FromError(err)
	printer.Error(exitErr)
	return exitErr
}

// resolveConfig layers flag values over config.Resolve.
func resolveConfig(opts *rootOptions) (config.Config, error) {
	cfg, err := config.Resolve(config.Sources{
		BaseDir:    opts.dir,
		ConfigFile: opts.configFile,
	})
	if err != nil {
		return config.Config{}, err
	}

	if opts.input != "" {
		cfg.InputPath = absPath(opts.input)
	}
	if opts.output != "" {
		cfg.OutputDir = absPath(opts.output)
	}
	if opts.extension != "" {
		cfg.Extension = opts.extension
	}
	if opts.stripBackslashes {
		cfg.StripBackslashes = true
	}
	if opts.failFast {
		cfg.FailFast = true
	}
	return cfg, nil
}

// absPath resolves p against the working directory, falling back to p.
func absPath(p string) string {
	abs, err := filepath.Abs(p)
	if err != nil {
		return p
	}
	return abs
}
