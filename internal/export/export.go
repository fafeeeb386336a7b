package export

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gorewood/xmlifyme/internal/fault"
	"github.com/gorewood/xmlifyme/internal/record"
	"github.com/gorewood/xmlifyme/internal/stats"
)

// Event describes the outcome of exporting one record.
// Err is nil when the file was written.
type Event struct {
	Index    int
	Name     string
	Filename string
	Path     string
	Err      error
}

// Failure is a record that could not be exported.
type Failure struct {
	Name     string
	Filename string
	Err      error
}

// Result is the outcome of an Export call.
type Result struct {
	Stats    stats.Snapshot
	Failures []Failure
}

// Err joins the errors of all failed records, or returns nil.
func (r *Result) Err() error {
	if r == nil || len(r.Failures) == 0 {
		return nil
	}
	errs := make([]error, 0, len(r.Failures))
	for _, f := range r.Failures {
		errs = append(errs, f.Err)
	}
	return errors.Join(errs...)
}

// Option configures an Export call.
type Option func(*exportOptions)

type exportOptions struct {
	failFast bool
	observer func(Event)
	perm     os.FileMode
}

// WithFailFastIf stops the export at the first record that fails when
// enabled is true.
func WithFailFastIf(enabled bool) Option {
	return func(o *exportOptions) { o.failFast = enabled }
}

// WithObserver registers a callback invoked after each record.
func WithObserver(fn func(Event)) Option {
	return func(o *exportOptions) { o.observer = fn }
}

// WithFileMode sets the permission bits of newly created files (default 0644).
func WithFileMode(perm os.FileMode) Option {
	return func(o *exportOptions) { o.perm = perm }
}

// Export writes every record to its own file in dir, in order.
//
// The returned error is non-nil only when dir cannot be created, or when
// WithFailFastIf is enabled and a record fails; in the latter case the partial
// Result is returned alongside it.
func Export(records []record.Record, dir string, format Format, extension string, opts ...Option) (*Result, error) {
	o := exportOptions{perm: 0o644}
	for _, opt := range opts {
		opt(&o)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fault.New("export.mkdir", fault.KindIO, dir, err)
	}

	var acc stats.Accumulator
	result := &Result{}

	for i, rec := range records {
		filename := DeriveFilename(rec.Name, extension)
		path := filepath.Join(dir, filename)

		err := exportRecord(rec.Content, path, format, o.perm)
		if o.observer != nil {
			o.observer(Event{Index: i, Name: rec.Name, Filename: filename, Path: path, Err: err})
		}

		if err != nil {
			acc.Fail()
			result.Failures = append(result.Failures, Failure{Name: rec.Name, Filename: filename, Err: err})
			if o.failFast {
				result.Stats = acc.Snapshot()
				return result, err
			}
			continue
		}

		acc.Add(rec.Content, dir, filename)
	}

	result.Stats = acc.Snapshot()
	return result, nil
}

// exportRecord encodes content and writes it to path.
func exportRecord(content, path string, format Format, perm os.FileMode) error {
	data, err := Encode(content, format)
	if err != nil {
		return fault.New("export.encode", fault.KindEncoding, path, err)
	}
	if err := writeFile(path, data, perm); err != nil {
		return fault.New("export.write", fault.KindIO, path, err)
	}
	return nil
}

// writeFile truncates or creates path and writes data through a buffered
// writer, flushing before close.
func writeFile(path string, data []byte, perm os.FileMode) (err error) {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()

	w := bufio.NewWriter(file)
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flushing %s: %w", path, err)
	}
	return nil
}
