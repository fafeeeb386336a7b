package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gorewood/xmlifyme/internal/config"
	"github.com/gorewood/xmlifyme/internal/export"
	"github.com/gorewood/xmlifyme/internal/record"
)

// inspectResult is the JSON form of the inspect command.
type inspectResult struct {
	SourcePath string `json:"source_path"`
	Count      int    `json:"count"`
	export.Plan
}

// newInspectCmd creates the inspect command.
func newInspectCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect",
		Short: "List input records and the files they would produce",
		Long: `Load the input file and list every record with the file it would be
written to and its character and byte counts. Nothing is written.

Records whose names map to the same file are reported, since the last one
would overwrite the others.

Examples:
  xmlifyme inspect                  # Table of records
  xmlifyme inspect --ext .json      # Preview with a different extension
  xmlifyme inspect --json           # Plan as JSON for scripting`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInspect(cmd, opts)
		},
	}
}

// runInspect executes the inspect command.
func runInspect(cmd *cobra.Command, opts *rootOptions) error {
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

	plan := export.PlanExport(store.Records, cfg.Extension)

	if printer.IsJSON() {
		return printer.WriteJSON(inspectResult{
			SourcePath: store.SourcePath,
			Count:      store.Len(),
			Plan:       plan,
		})
	}

	printer.Section(fmt.Sprintf("%d records in %s", store.Len(), store.SourcePath))
	if store.Len() > 0 {
		rows := make([][]string, 0, len(plan.Files))
		for _, f := range plan.Files {
			rows = append(rows, []string{f.Name, f.Filename, strconv.Itoa(f.Chars), strconv.Itoa(f.Bytes)})
		}
		printer.Table([]string{"NAME", "FILE", "CHARS", "BYTES"}, rows)
		printer.Println()
	}
	printer.KeyValue("total chars", strconv.Itoa(plan.TotalChars))
	printer.KeyValue("total bytes", strconv.Itoa(plan.TotalBytes))

	for _, name := range plan.Collisions {
		printer.Warn("%s is produced by more than one record; the last one wins", name)
	}
	return nil
}
