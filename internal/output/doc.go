// Package output provides terminal and JSON output for the xmlifyme CLI.
//
// # Printer
//
// Commands write through a Printer, which switches between human-readable
// and JSON output based on the --json flag:
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), jsonMode, output.IsTTY(cmd.OutOrStdout()))
//	printer.KeyValue("char_count", "5")
//	printer.Error(err)
//
// Human output is styled with lipgloss when the writer is a terminal; the
// --color flag (auto, always, never) overrides detection.
//
// # Exit Codes
//
//	output.ExitSuccess     // 0: run completed
//	output.ExitUserError   // 1: bad argument, config or input file problem
//	output.ExitSystemError // 2: I/O or encoding failure
//	output.ExitPartial     // 3: some records could not be exported
//
// FromError converts errors classified by package fault into an
// *ExitError carrying the matching code.
package output
