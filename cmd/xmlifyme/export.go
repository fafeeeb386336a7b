package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/gorewood/xmlifyme/internal/config"
	"github.com/gorewood/xmlifyme/internal/export"
	"github.com/gorewood/xmlifyme/internal/output"
	"github.com/gorewood/xmlifyme/internal/record"
	"github.com/gorewood/xmlifyme/internal/watch"
)

// failureInfo is the JSON form of an export.Failure.
type failureInfo struct {
	Name     string `json:"name"`
	Filename string `json:"filename"`
	Error    string `json:"error"`
}

// runExport loads the input file and writes one file per record.
func runExport(cmd *cobra.Command, opts *rootOptions, format export.Format) error {
	start := time.Now()

	printer, err := newPrinter(cmd, opts)
	if err != nil {
		return fail(newPlainPrinter(cmd, opts), err)
	}

	cfg, err := resolveConfig(opts)
	if err != nil {
		return fail(printer, err)
	}
	if err := config.CheckInput(cfg); err != nil {
		return fail(printer, err)
	}

	store, err := record.Load(cfg.InputPath, record.WithStripBackslashesIf(cfg.StripBackslashes))
	if err != nil {
		return fail(printer, err)
	}

	runErr := exportRecords(printer, opts, cfg, store.Records, format, start)
	if !opts.watch {
		return runErr
	}
	if err := watchInput(cmd.Context(), printer, opts, cfg, store, format); err != nil {
		return err
	}
	// Exit with the first export's status once watching stops.
	return runErr
}

// exportRecords runs one export and prints its report. Per-record
// failures produce a partial error once every record has been tried.
func exportRecords(printer *output.Printer, opts *rootOptions, cfg config.Config, records []record.Record, format export.Format, start time.Time) error {
	result, err := export.Export(records, cfg.OutputDir, format, cfg.Extension,
		export.WithFailFastIf(cfg.FailFast),
		export.WithObserver(recordObserver(printer, opts.verbose)),
	)
	if result == nil {
		return fail(printer, err)
	}

	if werr := printReport(printer, format, result, time.Since(start)); werr != nil {
		return fail(printer, werr)
	}

	if err != nil {
		return fail(printer, err)
	}
	if len(result.Failures) == 0 {
		return nil
	}

	partial := output.NewPartialError(
		fmt.Sprintf("%d of %d records could not be exported", len(result.Failures), len(records)),
		result.Err(),
	)
	// The JSON report already lists the failures.
	if !printer.IsJSON() {
		printer.Error(partial)
	}
	return partial
}

// recordObserver reports per-record outcomes: every record when verbose,
// otherwise only failures.
func recordObserver(printer *output.Printer, verbose bool) func(export.Event) {
	return func(ev export.Event) {
		switch {
		case ev.Err != nil && verbose:
			printer.Item(false, ev.Name, ev.Err.Error())
		case ev.Err != nil:
			printer.Warn("%s: %v", ev.Name, ev.Err)
		case verbose:
			printer.Item(true, ev.Name, "→ "+ev.Filename)
		}
	}
}

// printReport writes the export statistics.
func printReport(printer *output.Printer, format export.Format, result *export.Result, runtime time.Duration) error {
	snap := result.Stats

	if printer.IsJSON() {
		data := snap.Map()
		data["format"] = format.String()
		data["runtime_ms"] = runtime.Milliseconds()
		failures := make([]failureInfo, 0, len(result.Failures))
		for _, f := range result.Failures {
			failures = append(failures, failureInfo{Name: f.Name, Filename: f.Filename, Error: f.Err.Error()})
		}
		data["failures"] = failures
		return printer.WriteJSON(data)
	}

	printer.Section(fmt.Sprintf("Exported %d records as %s", snap.Exported(), format))
	printer.KeyValue("char_count", strconv.Itoa(snap.Chars()))
	printer.KeyValue("array_length", strconv.Itoa(snap.Bytes()))
	if snap.Failed() > 0 {
		printer.KeyValue("failed", strconv.Itoa(snap.Failed()))
	}
	if snap.Exported() > 0 {
		printer.KeyValue("output_dir", snap.OutputDir())
		printer.KeyValue("output_filename", snap.OutputFilename())
	}
	printer.KeyValue("runtime", runtime.Round(time.Microsecond).String())
	return nil
}

// watchInput re-exports whenever the input file changes until interrupted.
// A reload that fails to parse keeps the previous records and is reported
// as a warning.
func watchInput(ctx context.Context, printer *output.Printer, opts *rootOptions, cfg config.Config, store *record.Store, format export.Format) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	w, err := watch.New(cfg.InputPath, watch.WithErrorHandler(func(err error) {
		printer.Warn("%v", err)
	}))
	if err != nil {
		return fail(printer, output.NewSystemError(fmt.Sprintf("watching %s: %v", cfg.InputPath, err)))
	}

	printer.Stderr("Watching %s for changes (Ctrl+C to stop)\n", w.Path())
	return w.Run(ctx, func() error {
		if err := store.Reload(); err != nil {
			return err
		}
		// Errors are printed by exportRecords; keep watching.
		_ = exportRecords(printer, opts, cfg, store.Records, format, time.Now())
		return nil
	})
}
