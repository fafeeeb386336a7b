package export

import (
	"errors"
	"fmt"
	"strings"
)

// Format selects how record content is serialized.
type Format int

const (
	// FormatXML wraps the JSON-encoded content in a <process_data> document.
	FormatXML Format = iota
	// FormatPlain writes the JSON-encoded content as is.
	FormatPlain
)

// ErrUnknownFormat is returned by ParseFormat for unrecognized input.
var ErrUnknownFormat = errors.New("unknown format")

// ParseFormat accepts "xml", "x", "plain" and "p", ignoring case and any
// leading dashes.
func ParseFormat(s string) (Format, error) {
	switch normalizeToken(s) {
	case "xml", "x":
		return FormatXML, nil
	case "plain", "p":
		return FormatPlain, nil
	default:
		return 0, fmt.Errorf("%w: %q (want xml or plain)", ErrUnknownFormat, s)
	}
}

// String returns the canonical name of the format.
func (f Format) String() string {
	switch f {
	case FormatXML:
		return "xml"
	case FormatPlain:
		return "plain"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// normalizeToken lowercases s and strips leading dashes.
func normalizeToken(s string) string {
	return strings.ToLower(strings.TrimLeft(strings.TrimSpace(s), "-"))
}
