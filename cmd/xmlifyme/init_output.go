package main

import (
	"github.com/gorewood/xmlifyme/internal/config"
	"github.com/gorewood/xmlifyme/internal/output"
)

// printStepResult prints a single step result in human format.
func printStepResult(printer *output.Printer, styles initStyleSet, step initStepResult) {
	icon := styledStepIcon(styles, step.Status)
	printer.Print("  %s %s %s", icon, formatStepName(step.Name), step.Path)
	if step.Message != "" {
		printer.Print(" %s", styles.dim.Render("("+step.Message+")"))
	}
	printer.Println()
}

// styledStepIcon returns a styled icon for a step status.
func styledStepIcon(styles initStyleSet, status string) string {
	switch status {
	case "ok":
		return styles.pass.Render("ok")
	case "skipped":
		return styles.skip.Render("--")
	case "dry_run":
		return styles.accent.Render(">>")
	case "failed":
		return styles.fail.Render("XX")
	default:
		return "??"
	}
}

// formatStepName converts internal step names to display names.
func formatStepName(name string) string {
	switch name {
	case "data_dir":
		return "Data directory"
	case "input_file":
		return "Input file"
	case "output_dir":
		return "Output directory"
	case "config_file":
		return "Config file"
	default:
		return name
	}
}

// printNextSteps outputs the next steps message.
func printNextSteps(printer *output.Printer, styles initStyleSet, cfg config.Config) {
	printer.Println()
	printer.Print("%s\n", styles.heading.Render(styles.pass.Render("xmlifyme initialized!")))
	printer.Println()
	printer.Print("Next steps:\n")
	printer.Print("  1. %s\n", styles.dim.Render("Add records to the input file:"))
	printer.Print("     %s\n", styles.accent.Render(cfg.InputPath))
	printer.Println()
	printer.Print("  2. %s\n", styles.dim.Render("Check what will be written:"))
	printer.Print("     %s\n", styles.accent.Render("xmlifyme inspect"))
	printer.Println()
	printer.Print("  3. %s\n", styles.dim.Render("Export:"))
	printer.Print("     %s\n", styles.accent.Render("xmlifyme xml"))
}
