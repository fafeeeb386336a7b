// Package stats accumulates size metrics over an export run.
package stats

import (
	"fmt"
	"unicode/utf8"
)

// Accumulator is the mutable counter set owned by a single export call.
// The zero value is ready to use.
type Accumulator struct {
	chars    int
	bytes    int
	exported int
	failed   int
	lastDir  string
	lastFile string
}

// Add folds one successfully written record into the totals and records
// its location as the last output.
func (a *Accumulator) Add(content, dir, filename string) {
	a.chars += utf8.RuneCountInString(content)
	a.bytes += len(content)
	a.exported++
	a.lastDir = dir
	a.lastFile = filename
}

// Fail counts a record that could not be exported. Its size is not added.
func (a *Accumulator) Fail() {
	a.failed++
}

// Snapshot returns an immutable copy of the current state.
func (a *Accumulator) Snapshot() Snapshot {
	return Snapshot{
		chars:    a.chars,
		bytes:    a.bytes,
		exported: a.exported,
		failed:   a.failed,
		lastDir:  a.lastDir,
		lastFile: a.lastFile,
	}
}

// Snapshot is a read-only view of an Accumulator.
type Snapshot struct {
	chars    int
	bytes    int
	exported int
	failed   int
	lastDir  string
	lastFile string
}

// Chars returns the total character (rune) count of exported content.
func (s Snapshot) Chars() int { return s.chars }

// Bytes returns the total byte length of exported content.
func (s Snapshot) Bytes() int { return s.bytes }

// Exported returns how many records were written.
func (s Snapshot) Exported() int { return s.exported }

// Failed returns how many records could not be written.
func (s Snapshot) Failed() int { return s.failed }

// OutputDir returns the directory of the last written file.
func (s Snapshot) OutputDir() string { return s.lastDir }

// OutputFilename returns the name of the last written file.
func (s Snapshot) OutputFilename() string { return s.lastFile }

// Map returns the snapshot as a JSON-friendly map. Key names follow the
// report format of earlier releases (char_count, array_length).
func (s Snapshot) Map() map[string]any {
	return map[string]any{
		"char_count":      s.chars,
		"array_length":    s.bytes,
		"exported":        s.exported,
		"failed":          s.failed,
		"output_dir":      s.lastDir,
		"output_filename": s.lastFile,
	}
}

func (s Snapshot) String() string {
	return fmt.Sprintf("char_count: %d, array_length: %d, exported: %d, failed: %d",
		s.chars, s.bytes, s.exported, s.failed)
}
