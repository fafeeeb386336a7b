// Package record loads the named text payloads that xmlifyme exports.
package record

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/gorewood/xmlifyme/internal/fault"
)

// Record is a named text payload. Name is used to derive the output
// filename and is not required to be unique.
type Record struct {
	Name    string `json:"name"`
	Content string `json:"processxml"`
}

// Option configures how input bytes are parsed.
type Option func(*options)

type options struct {
	stripBackslashes bool
}

// WithStripBackslashesIf removes every literal backslash from the raw input
// before it is parsed when enabled is true. Older exports double-escaped
// their payloads and this undoes that; it also breaks any JSON escape
// sequence in the file.
func WithStripBackslashesIf(enabled bool) Option {
	return func(o *options) { o.stripBackslashes = enabled }
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Parse decodes a JSON array of record objects. Anything else, including
// null or a null element, is a parse error.
func Parse(data []byte, opts ...Option) ([]Record, error) {
	return parse(data, buildOptions(opts))
}

func parse(data []byte, o options) ([]Record, error) {
	if o.stripBackslashes {
		data = bytes.ReplaceAll(data, []byte{'\\'}, nil)
	}

	if leadingByte(data) != '[' {
		return nil, parseError(errors.New("input is not a JSON array"))
	}
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, parseError(err)
	}

	records := make([]Record, 0, len(raw))
	for i, elem := range raw {
		if leadingByte(elem) != '{' {
			return nil, parseError(fmt.Errorf("element %d is not an object", i))
		}
		var rec Record
		if err := json.Unmarshal(elem, &rec); err != nil {
			return nil, parseError(fmt.Errorf("element %d: %w", i, err))
		}
		records = append(records, rec)
	}
	return records, nil
}

func parseError(err error) error {
	return fault.New("record.parse", fault.KindParse, "", fmt.Errorf("expected a JSON array of {name, processxml} objects: %w", err))
}

// leadingByte returns the first non-whitespace byte of data, or 0.
func leadingByte(data []byte) byte {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 {
		return 0
	}
	return trimmed[0]
}

// Store is the ordered record sequence read from SourcePath.
// It is replaced wholesale by Reload and never partially mutated.
type Store struct {
	SourcePath string
	Records    []Record

	opts options
}

// Load reads and parses the file at path.
func Load(path string, opts ...Option) (*Store, error) {
	s := &Store{SourcePath: path, opts: buildOptions(opts)}
	records, err := s.read()
	if err != nil {
		return nil, err
	}
	s.Records = records
	return s, nil
}

// Reload re-reads SourcePath with the options the store was loaded with.
// On failure the previous records are kept.
func (s *Store) Reload() error {
	records, err := s.read()
	if err != nil {
		return err
	}
	s.Records = records
	return nil
}

func (s *Store) read() ([]Record, error) {
	data, err := os.ReadFile(s.SourcePath)
	if err != nil {
		return nil, fault.New("record.load", fault.KindIO, s.SourcePath, err)
	}

	records, err := parse(data, s.opts)
	if err != nil {
		var fe *fault.Error
		if errors.As(err, &fe) {
			fe.Op = "record.load"
			fe.Path = s.SourcePath
		}
		return nil, err
	}
	return records, nil
}

// Len returns the number of records.
func (s *Store) Len() int {
	return len(s.Records)
}
