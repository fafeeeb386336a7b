package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gorewood/xmlifyme/internal/export"
	"github.com/gorewood/xmlifyme/internal/output"
)

// normalizeToken lowercases a CLI token and strips its leading dashes.
func normalizeToken(arg string) string {
	return strings.ToLower(strings.TrimLeft(arg, "-"))
}

// parseModeArg interprets the positional mode argument.
func parseModeArg(arg string) (format export.Format, help bool, err error) {
	switch normalizeToken(arg) {
	case "help", "h":
		return 0, true, nil
	}
	format, err = export.ParseFormat(arg)
	if err != nil {
		return 0, false, output.NewUserError(fmt.Sprintf("unknown argument %q: expected xml, plain or help (run 'xmlifyme help' for usage)", arg))
	}
	return format, false, nil
}

// modeAlias maps a dash- or case-decorated mode token to the bare form
// cobra routes on. "-h" and "--help" are left for cobra's own help flag.
func modeAlias(arg string) (string, bool) {
	if arg == "-h" || arg == "--help" {
		return "", false
	}
	switch normalizeToken(arg) {
	case "xml", "x":
		return "xml", true
	case "plain", "p":
		return "plain", true
	case "help", "h":
		return "help", true
	}
	return "", false
}

// normalizeArgs rewrites mode tokens such as "--XML" or "-p" so cobra
// treats them as the positional mode rather than unknown flags. It stops
// at the first other positional (a subcommand) and never touches flag
// values.
func normalizeArgs(root *cobra.Command, args []string) []string {
	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]

		if arg == "--" {
			return append(out, args[i:]...)
		}

		if alias, ok := modeAlias(arg); ok {
			out = append(out, alias)
			continue
		}

		out = append(out, arg)
		if !strings.HasPrefix(arg, "-") {
			// A subcommand; leave the rest alone.
			return append(out, args[i+1:]...)
		}
		if takesValue(root, arg) && i+1 < len(args) {
			i++
			out = append(out, args[i])
		}
	}
	return out
}

// takesValue reports whether flag arg is a non-boolean flag given without
// an inline "=value".
func takesValue(root *cobra.Command, arg string) bool {
	if strings.Contains(arg, "=") {
		return false
	}
	name := strings.TrimLeft(arg, "-")
	flag := root.Flags().Lookup(name)
	if flag == nil {
		flag = root.PersistentFlags().Lookup(name)
	}
	if flag == nil && len(name) == 1 {
		flag = root.Flags().ShorthandLookup(name)
		if flag == nil {
			flag = root.PersistentFlags().ShorthandLookup(name)
		}
	}
	return flag != nil && flag.Value.Type() != "bool"
}
